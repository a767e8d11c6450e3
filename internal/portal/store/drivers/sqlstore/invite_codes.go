package sqlstore

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/store"
)

type inviteCodesRepo struct{ conn }

const inviteColumns = `id, code, email, expires_at, used, used_at, used_by,
	recommended_plan, engagement_letter_path, created_by, created_at`

func (r inviteCodesRepo) CreateInviteCode(ctx context.Context, inv domain.InviteCode) error {
	_, err := r.exec(ctx,
		`INSERT INTO invite_codes (`+inviteColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Code, nullString(strings.ToLower(inv.Email)), ts(inv.ExpiresAt), inv.Used,
		nullTime(inv.UsedAt), nullString(inv.UsedBy),
		nullString(inv.RecommendedPlan), nullString(inv.EngagementLetterPath),
		inv.CreatedBy, ts(inv.CreatedAt),
	)
	return err
}

func (r inviteCodesRepo) GetInviteCode(ctx context.Context, code string) (domain.InviteCode, error) {
	inv, err := scanInvite(r.queryRow(ctx, `SELECT `+inviteColumns+` FROM invite_codes WHERE code = ?`, code))
	return inv, r.mapErr(err)
}

func (r inviteCodesRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM invite_codes WHERE code = ?`, code)
	return n > 0, err
}

func (r inviteCodesRepo) ListInviteCodes(ctx context.Context) ([]domain.InviteCode, error) {
	rows, err := r.query(ctx, `SELECT `+inviteColumns+` FROM invite_codes ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return collect(r.conn, rows, scanInvite)
}

func (r inviteCodesRepo) MarkInviteCodeUsed(ctx context.Context, code, usedBy string, at time.Time) error {
	n, err := r.execCount(ctx,
		`UPDATE invite_codes SET used = ?, used_at = ?, used_by = ? WHERE code = ? AND used = ?`,
		true, ts(at), usedBy, code, false,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrConflict
	}
	return nil
}

func (r inviteCodesRepo) ReleaseInviteCode(ctx context.Context, code, usedBy string) error {
	return r.execOne(ctx,
		`UPDATE invite_codes SET used = ?, used_at = NULL, used_by = NULL WHERE code = ? AND used_by = ?`,
		false, code, usedBy,
	)
}

func scanInvite(s scanner) (domain.InviteCode, error) {
	var (
		inv                         domain.InviteCode
		email, usedBy, plan, letter sql.NullString
		usedAt                      sql.NullTime
	)
	err := s.Scan(&inv.ID, &inv.Code, &email, &inv.ExpiresAt, &inv.Used, &usedAt, &usedBy,
		&plan, &letter, &inv.CreatedBy, &inv.CreatedAt)
	if err != nil {
		return domain.InviteCode{}, err
	}
	inv.Email = fromNullString(email)
	inv.UsedAt = fromNullTime(usedAt)
	inv.UsedBy = fromNullString(usedBy)
	inv.RecommendedPlan = fromNullString(plan)
	inv.EngagementLetterPath = fromNullString(letter)
	inv.ExpiresAt, inv.CreatedAt = inv.ExpiresAt.UTC(), inv.CreatedAt.UTC()
	return inv, nil
}

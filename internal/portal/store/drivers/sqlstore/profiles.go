package sqlstore

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
)

type profilesRepo struct{ conn }

func (r profilesRepo) CreateProfile(ctx context.Context, p domain.Profile) error {
	_, err := r.exec(ctx,
		`INSERT INTO profiles (id, email, full_name, role, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, strings.ToLower(p.Email), p.FullName, string(p.Role), ts(p.CreatedAt), ts(p.UpdatedAt),
	)
	return err
}

func (r profilesRepo) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	var (
		p    domain.Profile
		role string
	)
	err := r.queryRow(ctx,
		`SELECT id, email, full_name, role, created_at, updated_at FROM profiles WHERE id = ?`, id,
	).Scan(&p.ID, &p.Email, &p.FullName, &role, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Profile{}, r.mapErr(err)
	}
	p.Role = domain.Role(role)
	p.CreatedAt, p.UpdatedAt = p.CreatedAt.UTC(), p.UpdatedAt.UTC()
	return p, nil
}

func (r profilesRepo) DeleteProfile(ctx context.Context, id string) error {
	return r.execOne(ctx, `DELETE FROM profiles WHERE id = ?`, id)
}

func (r profilesRepo) CountProfiles(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM profiles`)
}

func (r profilesRepo) AdminEmails(ctx context.Context) ([]string, error) {
	rows, err := r.query(ctx, `SELECT email FROM profiles WHERE role = ? ORDER BY created_at`, string(domain.RoleAdmin))
	if err != nil {
		return nil, err
	}
	return collect(r.conn, rows, func(s scanner) (string, error) {
		var e string
		err := s.Scan(&e)
		return e, err
	})
}

package sqlstore

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
)

type identitiesRepo struct{ conn }

func (r identitiesRepo) CreateIdentity(ctx context.Context, id domain.Identity) error {
	_, err := r.exec(ctx,
		`INSERT INTO auth_users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		id.ID, strings.ToLower(strings.TrimSpace(id.Email)), id.PasswordHash, ts(id.CreatedAt),
	)
	return err
}

func (r identitiesRepo) GetIdentityByID(ctx context.Context, id string) (domain.Identity, error) {
	return r.one(ctx, `SELECT id, email, password_hash, created_at FROM auth_users WHERE id = ?`, id)
}

func (r identitiesRepo) GetIdentityByEmail(ctx context.Context, email string) (domain.Identity, error) {
	return r.one(ctx,
		`SELECT id, email, password_hash, created_at FROM auth_users WHERE email = ?`,
		strings.ToLower(strings.TrimSpace(email)),
	)
}

func (r identitiesRepo) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	return r.execOne(ctx, `UPDATE auth_users SET password_hash = ? WHERE id = ?`, hash, id)
}

func (r identitiesRepo) DeleteIdentity(ctx context.Context, id string) error {
	return r.execOne(ctx, `DELETE FROM auth_users WHERE id = ?`, id)
}

func (r identitiesRepo) one(ctx context.Context, q string, args ...any) (domain.Identity, error) {
	var i domain.Identity
	err := r.queryRow(ctx, q, args...).Scan(&i.ID, &i.Email, &i.PasswordHash, &i.CreatedAt)
	if err != nil {
		return domain.Identity{}, r.mapErr(err)
	}
	i.CreatedAt = i.CreatedAt.UTC()
	return i, nil
}

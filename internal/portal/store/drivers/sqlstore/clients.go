package sqlstore

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
)

type clientsRepo struct{ conn }

const clientColumns = `id, user_id, name, email, phone, company, onboarding_status,
	plan_id, subscription_status, billing_customer_id, billing_subscription_id,
	subscription_current_period_end, subscription_updated_at, created_at, updated_at`

func (r clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	_, err := r.exec(ctx,
		`INSERT INTO clients (`+clientColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Name, strings.ToLower(c.Email), nullString(c.Phone), nullString(c.Company),
		string(c.OnboardingStatus),
		nullString(c.PlanID), nullString(c.SubscriptionStatus),
		nullString(c.BillingCustomerID), nullString(c.BillingSubscriptionID),
		nullTime(c.CurrentPeriodEnd), nullTime(c.SubscriptionUpdatedAt),
		ts(c.CreatedAt), ts(c.UpdatedAt),
	)
	return err
}

func (r clientsRepo) GetClient(ctx context.Context, id string) (domain.Client, error) {
	c, err := scanClient(r.queryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id))
	return c, r.mapErr(err)
}

func (r clientsRepo) GetClientByUserID(ctx context.Context, userID string) (domain.Client, error) {
	c, err := scanClient(r.queryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE user_id = ?`, userID))
	return c, r.mapErr(err)
}

func (r clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return collect(r.conn, rows, scanClient)
}

func (r clientsRepo) UpdateOnboardingStatus(ctx context.Context, id string, status domain.OnboardingStatus) error {
	return r.execOne(ctx,
		`UPDATE clients SET onboarding_status = ?, updated_at = ? WHERE id = ?`,
		string(status), ts(time.Now()), id,
	)
}

func (r clientsRepo) SetBillingCustomer(ctx context.Context, id, customerID, planID string) error {
	return r.execOne(ctx,
		`UPDATE clients SET billing_customer_id = ?, plan_id = ?, updated_at = ? WHERE id = ?`,
		nullString(customerID), nullString(planID), ts(time.Now()), id,
	)
}

func (r clientsRepo) UpdateSubscription(ctx context.Context, id string, s domain.SubscriptionState) error {
	return r.execOne(ctx,
		`UPDATE clients SET
			plan_id = ?, subscription_status = ?, billing_customer_id = ?,
			billing_subscription_id = ?, subscription_current_period_end = ?,
			subscription_updated_at = ?, updated_at = ?
		 WHERE id = ?`,
		nullString(s.PlanID), nullString(s.Status), nullString(s.BillingCustomerID),
		nullString(s.BillingSubscriptionID), nullTime(s.CurrentPeriodEnd),
		ts(s.UpdatedAt), ts(s.UpdatedAt), id,
	)
}

func (r clientsRepo) DeleteClient(ctx context.Context, id string) error {
	return r.execOne(ctx, `DELETE FROM clients WHERE id = ?`, id)
}

func scanClient(s scanner) (domain.Client, error) {
	var (
		c                                    domain.Client
		status                               string
		phone, company, plan, sub, cust, sid sql.NullString
		periodEnd, subUpdated                sql.NullTime
	)
	err := s.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Email, &phone, &company, &status,
		&plan, &sub, &cust, &sid, &periodEnd, &subUpdated, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Client{}, err
	}
	c.Phone = fromNullString(phone)
	c.Company = fromNullString(company)
	c.OnboardingStatus = domain.OnboardingStatus(status)
	c.PlanID = fromNullString(plan)
	c.SubscriptionStatus = fromNullString(sub)
	c.BillingCustomerID = fromNullString(cust)
	c.BillingSubscriptionID = fromNullString(sid)
	c.CurrentPeriodEnd = fromNullTime(periodEnd)
	c.SubscriptionUpdatedAt = fromNullTime(subUpdated)
	c.CreatedAt, c.UpdatedAt = c.CreatedAt.UTC(), c.UpdatedAt.UTC()
	return c, nil
}

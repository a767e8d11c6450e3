package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clientportal/internal/portal/billing"
	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
)

func newBilling(e *env, p billing.Provider) *BillingService {
	return &BillingService{Store: e.store, Provider: p, AppURL: "https://portal.example.com/", Now: e.clock.Now}
}

func TestCheckout(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	p := newFakeProvider()
	svc := newBilling(e, p)
	c := e.createClient(t, "pay@example.com")

	_, err := svc.Checkout(ctx, c, "enterprise")
	require.ErrorIs(t, err, ErrUnknownPlan)

	res, err := svc.Checkout(ctx, c, "growth")
	require.NoError(t, err)
	require.Equal(t, "cs_test", res.SessionID)
	require.Equal(t, 1, p.created)

	require.Len(t, p.checkouts, 1)
	req := p.checkouts[0]
	require.Equal(t, c.ID, req.ClientID)
	require.Equal(t, int64(49900), req.Plan.PriceMinor)
	require.Equal(t, "https://portal.example.com/dashboard/billing?success=true&session_id={CHECKOUT_SESSION_ID}", req.SuccessURL)
	require.Equal(t, "https://portal.example.com/dashboard/billing?canceled=true", req.CancelURL)

	stored, err := e.store.Clients().GetClient(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, req.CustomerID, stored.BillingCustomerID)
	require.Equal(t, "growth", stored.PlanID)

	// The stored customer is reused.
	_, err = svc.Checkout(ctx, stored, "premium")
	require.NoError(t, err)
	require.Equal(t, 1, p.created)
}

func TestPortalRequiresCustomer(t *testing.T) {
	e := newEnv(t)
	svc := newBilling(e, newFakeProvider())
	c := e.createClient(t, "portal@example.com")

	_, err := svc.Portal(context.Background(), c)
	require.ErrorIs(t, err, ErrNoSubscription)

	c.BillingCustomerID = "cus_1"
	url, err := svc.Portal(context.Background(), c)
	require.NoError(t, err)
	require.Contains(t, url, "cus_1")
}

func TestSyncStoresCancelingSubscription(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	p := newFakeProvider()
	svc := newBilling(e, p)
	c := e.createClient(t, "sync@example.com")

	p.customers[c.Email] = billing.Customer{ID: "cus_sync", Email: c.Email}
	end := time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC)
	p.subscriptions["cus_sync"] = []billing.Subscription{
		{ID: "sub_old", Status: "canceled", UnitAmount: 29900},
		{ID: "sub_live", Status: "active", CancelAtPeriodEnd: true, CurrentPeriodEnd: end,
			Metadata: map[string]string{"plan_id": "premium"}, UnitAmount: 79900},
	}

	view, err := svc.Sync(ctx, c)
	require.NoError(t, err)
	require.Equal(t, domain.SubscriptionCanceling, view.Status)
	require.Equal(t, "premium", view.PlanID)
	require.True(t, view.CancelAtPeriodEnd)
	require.Equal(t, end, *view.CurrentPeriodEnd)

	stored, err := e.store.Clients().GetClient(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "canceling", stored.SubscriptionStatus)
	require.Equal(t, "cus_sync", stored.BillingCustomerID)
	require.Equal(t, "sub_live", stored.BillingSubscriptionID)
	require.NotNil(t, stored.SubscriptionUpdatedAt)
}

func TestSyncWithoutCustomer(t *testing.T) {
	e := newEnv(t)
	svc := newBilling(e, newFakeProvider())
	c := e.createClient(t, "nobody@example.com")

	_, err := svc.Sync(context.Background(), c)
	require.ErrorIs(t, err, ErrNoBillingCustomer)
}

func TestSyncWithoutSubscriptionsClearsFields(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	p := newFakeProvider()
	svc := newBilling(e, p)
	c := e.createClient(t, "lapsed@example.com")
	p.customers[c.Email] = billing.Customer{ID: "cus_lapsed", Email: c.Email}

	view, err := svc.Sync(ctx, c)
	require.NoError(t, err)
	require.Equal(t, domain.SubscriptionNone, view.Status)

	stored, err := e.store.Clients().GetClient(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "none", stored.SubscriptionStatus)
	require.Empty(t, stored.BillingSubscriptionID)
	require.Nil(t, stored.CurrentPeriodEnd)
}

func TestSubscriptionStateFrom(t *testing.T) {
	t.Run("plan falls back to unit amount", func(t *testing.T) {
		s := SubscriptionStateFrom([]billing.Subscription{{ID: "sub", Status: "active", UnitAmount: 49900}})
		require.Equal(t, "growth", s.PlanID)
		require.Equal(t, "active", s.Status)
	})

	t.Run("first subscription when none active", func(t *testing.T) {
		s := SubscriptionStateFrom([]billing.Subscription{
			{ID: "a", Status: "past_due"},
			{ID: "b", Status: "canceled"},
		})
		require.Equal(t, "a", s.BillingSubscriptionID)
		require.Equal(t, "past_due", s.Status)
		require.Empty(t, s.PlanID)
	})

	t.Run("no subscriptions", func(t *testing.T) {
		s := SubscriptionStateFrom(nil)
		require.Equal(t, domain.SubscriptionNone, s.Status)
	})
}

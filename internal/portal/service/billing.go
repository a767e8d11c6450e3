package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/clientportal/internal/portal/billing"
	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/store"
	"github.com/aussiebroadwan/clientportal/pkg/slogx"
)

var (
	ErrUnknownPlan       = errors.New("invalid plan")
	ErrNoSubscription    = errors.New("no subscription found")
	ErrNoBillingCustomer = errors.New("no billing customer found")
)

type CheckoutResult struct {
	URL       string
	SessionID string
}

// SubscriptionView is what sync reports back to the caller.
type SubscriptionView struct {
	PlanID            string
	Status            string
	CurrentPeriodEnd  *time.Time
	CancelAtPeriodEnd bool
}

type BillingService struct {
	Store    store.Store
	Provider billing.Provider
	AppURL   string
	Now      func() time.Time
}

func (s *BillingService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *BillingService) url(path string) string {
	return strings.TrimRight(s.AppURL, "/") + path
}

func (s *BillingService) Plans() []domain.Plan {
	return billing.Plans()
}

// Checkout starts a subscription checkout for the client's chosen plan.
func (s *BillingService) Checkout(ctx context.Context, c domain.Client, planID string) (CheckoutResult, error) {
	log := slogx.FromContext(ctx)

	plan, ok := billing.PlanByID(planID)
	if !ok {
		return CheckoutResult{}, ErrUnknownPlan
	}

	customerID, err := s.ensureCustomer(ctx, c)
	if err != nil {
		return CheckoutResult{}, err
	}

	sess, err := s.Provider.CreateCheckoutSession(ctx, billing.CheckoutRequest{
		CustomerID: customerID,
		ClientID:   c.ID,
		Plan:       plan,
		SuccessURL: s.url("/dashboard/billing?success=true&session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  s.url("/dashboard/billing?canceled=true"),
	})
	if err != nil {
		log.Error("failed to create checkout session", slog.String("client_id", c.ID), slog.Any("error", err))
		return CheckoutResult{}, err
	}

	if err := s.Store.Clients().SetBillingCustomer(ctx, c.ID, customerID, plan.ID); err != nil {
		log.Error("failed to store billing customer", slog.String("client_id", c.ID), slog.Any("error", err))
		return CheckoutResult{}, err
	}

	log.Info("checkout session created", slog.String("client_id", c.ID), slog.String("plan_id", plan.ID))
	return CheckoutResult{URL: sess.URL, SessionID: sess.ID}, nil
}

// ensureCustomer reuses the stored customer id, then a customer with the
// client's email, and creates one otherwise.
func (s *BillingService) ensureCustomer(ctx context.Context, c domain.Client) (string, error) {
	if c.BillingCustomerID != "" {
		return c.BillingCustomerID, nil
	}
	cust, err := s.Provider.FindCustomerByEmail(ctx, c.Email)
	if err == nil {
		return cust.ID, nil
	}
	if !errors.Is(err, billing.ErrCustomerNotFound) {
		return "", err
	}
	cust, err = s.Provider.CreateCustomer(ctx, c.Email, c.Name, map[string]string{"client_id": c.ID})
	if err != nil {
		return "", err
	}
	return cust.ID, nil
}

// Portal returns a self-service billing URL for a client with a customer.
func (s *BillingService) Portal(ctx context.Context, c domain.Client) (string, error) {
	if c.BillingCustomerID == "" {
		return "", ErrNoSubscription
	}
	url, err := s.Provider.CreatePortalSession(ctx, c.BillingCustomerID, s.url("/dashboard/billing"))
	if err != nil {
		slogx.FromContext(ctx).Error("failed to create portal session", slog.String("client_id", c.ID), slog.Any("error", err))
		return "", err
	}
	return url, nil
}

// Sync pulls the client's subscription from the provider and stores it.
func (s *BillingService) Sync(ctx context.Context, c domain.Client) (SubscriptionView, error) {
	log := slogx.FromContext(ctx)

	customerID, err := s.findCustomer(ctx, c)
	if err != nil {
		return SubscriptionView{}, err
	}

	subs, err := s.Provider.ListSubscriptions(ctx, customerID)
	if err != nil {
		log.Error("failed to list subscriptions", slog.String("client_id", c.ID), slog.Any("error", err))
		return SubscriptionView{}, err
	}

	state := SubscriptionStateFrom(subs)
	state.BillingCustomerID = customerID
	state.UpdatedAt = s.now()

	if err := s.Store.Clients().UpdateSubscription(ctx, c.ID, state); err != nil {
		log.Error("failed to store subscription", slog.String("client_id", c.ID), slog.Any("error", err))
		return SubscriptionView{}, err
	}

	log.Info("subscription synced", slog.String("client_id", c.ID), slog.String("status", state.Status))
	return SubscriptionView{
		PlanID:            state.PlanID,
		Status:            state.Status,
		CurrentPeriodEnd:  state.CurrentPeriodEnd,
		CancelAtPeriodEnd: state.CancelAtPeriodEnd,
	}, nil
}

func (s *BillingService) findCustomer(ctx context.Context, c domain.Client) (string, error) {
	if c.BillingCustomerID != "" {
		cust, err := s.Provider.GetCustomer(ctx, c.BillingCustomerID)
		if err == nil {
			return cust.ID, nil
		}
		if !errors.Is(err, billing.ErrCustomerNotFound) {
			return "", err
		}
	}
	cust, err := s.Provider.FindCustomerByEmail(ctx, c.Email)
	if errors.Is(err, billing.ErrCustomerNotFound) {
		return "", ErrNoBillingCustomer
	}
	if err != nil {
		return "", err
	}
	return cust.ID, nil
}

// SubscriptionStateFrom picks the subscription that describes the client: the
// active one if any, else the first listed. The plan comes from metadata and
// falls back to matching the unit amount against the plan table.
func SubscriptionStateFrom(subs []billing.Subscription) domain.SubscriptionState {
	if len(subs) == 0 {
		return domain.SubscriptionState{Status: domain.SubscriptionNone}
	}

	sub := subs[0]
	for _, candidate := range subs {
		if candidate.Status == domain.SubscriptionActive {
			sub = candidate
			break
		}
	}

	planID := sub.Metadata["plan_id"]
	if planID == "" {
		if p, ok := billing.PlanByAmount(sub.UnitAmount); ok {
			planID = p.ID
		}
	}

	status := sub.Status
	if status == domain.SubscriptionActive && sub.CancelAtPeriodEnd {
		status = domain.SubscriptionCanceling
	}

	state := domain.SubscriptionState{
		PlanID:                planID,
		Status:                status,
		BillingSubscriptionID: sub.ID,
		CancelAtPeriodEnd:     sub.CancelAtPeriodEnd,
	}
	if !sub.CurrentPeriodEnd.IsZero() {
		end := sub.CurrentPeriodEnd.UTC()
		state.CurrentPeriodEnd = &end
	}
	return state
}

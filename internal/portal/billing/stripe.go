package billing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/aussiebroadwan/clientportal/pkg/idx"
	"github.com/aussiebroadwan/clientportal/pkg/retry"
)

// Stripe implements Provider on the Stripe API. Every call is retried under
// Policy; 4xx responses other than 429 are not retried. The SDK's own network
// retries are off, and each create call reuses one idempotency key across
// attempts.
type Stripe struct {
	api    *client.API
	Policy retry.Policy
}

var _ Provider = (*Stripe)(nil)

func NewStripe(secretKey string) *Stripe {
	return newStripe(secretKey, "")
}

// newStripe points the client at baseURL, or at the Stripe API when empty.
func newStripe(secretKey, baseURL string) *Stripe {
	cfg := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
	}
	if baseURL != "" {
		cfg.URL = stripe.String(baseURL)
	}
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, cfg)
	return &Stripe{
		api: client.New(secretKey, &stripe.Backends{
			API:     backend,
			Connect: backend,
			Uploads: backend,
		}),
		Policy: retry.DefaultPolicy,
	}
}

// idempotencyKey is generated once per logical create so a retried POST that
// Stripe already committed is not applied twice.
func idempotencyKey(op string) string {
	return "portal-" + op + "-" + idx.NewString()
}

// Retryable reports whether a Stripe error is worth another attempt.
func Retryable(err error) bool {
	var se *stripe.Error
	if errors.As(err, &se) {
		return se.HTTPStatusCode == http.StatusTooManyRequests || se.HTTPStatusCode >= 500
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (s *Stripe) do(ctx context.Context, op string, fn func(context.Context) error) error {
	if err := retry.Do(ctx, s.Policy, Retryable, "stripe."+op, fn); err != nil {
		return fmt.Errorf("stripe %s: %w", op, err)
	}
	return nil
}

func (s *Stripe) GetCustomer(ctx context.Context, id string) (Customer, error) {
	var out Customer
	err := s.do(ctx, "get_customer", func(ctx context.Context) error {
		params := &stripe.CustomerParams{}
		params.Context = ctx
		c, err := s.api.Customers.Get(id, params)
		if err != nil {
			var se *stripe.Error
			if errors.As(err, &se) && se.HTTPStatusCode == http.StatusNotFound {
				return retry.Permanent(ErrCustomerNotFound)
			}
			return err
		}
		if c.Deleted {
			return retry.Permanent(ErrCustomerNotFound)
		}
		out = Customer{ID: c.ID, Email: c.Email}
		return nil
	})
	return out, err
}

func (s *Stripe) FindCustomerByEmail(ctx context.Context, email string) (Customer, error) {
	var out Customer
	err := s.do(ctx, "find_customer", func(ctx context.Context) error {
		params := &stripe.CustomerListParams{Email: stripe.String(email)}
		params.Context = ctx
		params.Limit = stripe.Int64(1)
		it := s.api.Customers.List(params)
		for it.Next() {
			c := it.Customer()
			out = Customer{ID: c.ID, Email: c.Email}
			return nil
		}
		if err := it.Err(); err != nil {
			return err
		}
		return retry.Permanent(ErrCustomerNotFound)
	})
	return out, err
}

func (s *Stripe) CreateCustomer(ctx context.Context, email, name string, metadata map[string]string) (Customer, error) {
	var out Customer
	key := idempotencyKey("create_customer")
	err := s.do(ctx, "create_customer", func(ctx context.Context) error {
		params := &stripe.CustomerParams{
			Email: stripe.String(email),
			Name:  stripe.String(name),
		}
		params.Context = ctx
		params.SetIdempotencyKey(key)
		for k, v := range metadata {
			params.AddMetadata(k, v)
		}
		c, err := s.api.Customers.New(params)
		if err != nil {
			return err
		}
		out = Customer{ID: c.ID, Email: c.Email}
		return nil
	})
	return out, err
}

func (s *Stripe) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (CheckoutSession, error) {
	meta := map[string]string{
		"client_id": req.ClientID,
		"plan_id":   req.Plan.ID,
	}

	var out CheckoutSession
	key := idempotencyKey("create_checkout_session")
	err := s.do(ctx, "create_checkout_session", func(ctx context.Context) error {
		params := &stripe.CheckoutSessionParams{
			Customer: stripe.String(req.CustomerID),
			Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
			LineItems: []*stripe.CheckoutSessionLineItemParams{{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Plan.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(req.Plan.Name),
						Description: stripe.String(req.Plan.Description),
					},
					UnitAmount: stripe.Int64(req.Plan.PriceMinor),
					Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
						Interval: stripe.String(req.Plan.Interval),
					},
				},
				Quantity: stripe.Int64(1),
			}},
			SuccessURL: stripe.String(req.SuccessURL),
			CancelURL:  stripe.String(req.CancelURL),
			SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
				Metadata: meta,
			},
		}
		params.Context = ctx
		params.SetIdempotencyKey(key)
		for k, v := range meta {
			params.AddMetadata(k, v)
		}
		sess, err := s.api.CheckoutSessions.New(params)
		if err != nil {
			return err
		}
		out = CheckoutSession{ID: sess.ID, URL: sess.URL}
		return nil
	})
	return out, err
}

func (s *Stripe) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	var url string
	key := idempotencyKey("create_portal_session")
	err := s.do(ctx, "create_portal_session", func(ctx context.Context) error {
		params := &stripe.BillingPortalSessionParams{
			Customer:  stripe.String(customerID),
			ReturnURL: stripe.String(returnURL),
		}
		params.Context = ctx
		params.SetIdempotencyKey(key)
		sess, err := s.api.BillingPortalSessions.New(params)
		if err != nil {
			return err
		}
		url = sess.URL
		return nil
	})
	return url, err
}

func (s *Stripe) ListSubscriptions(ctx context.Context, customerID string) ([]Subscription, error) {
	var out []Subscription
	err := s.do(ctx, "list_subscriptions", func(ctx context.Context) error {
		out = out[:0]
		params := &stripe.SubscriptionListParams{
			Customer: stripe.String(customerID),
			Status:   stripe.String("all"),
		}
		params.Context = ctx
		it := s.api.Subscriptions.List(params)
		for it.Next() {
			out = append(out, fromStripeSubscription(it.Subscription()))
		}
		return it.Err()
	})
	return out, err
}

func fromStripeSubscription(sub *stripe.Subscription) Subscription {
	out := Subscription{
		ID:                sub.ID,
		Status:            string(sub.Status),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
		Metadata:          sub.Metadata,
	}
	if sub.CurrentPeriodEnd > 0 {
		out.CurrentPeriodEnd = time.Unix(sub.CurrentPeriodEnd, 0).UTC()
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		out.UnitAmount = sub.Items.Data[0].Price.UnitAmount
	}
	return out
}

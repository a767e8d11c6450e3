// Package billing talks to the subscription billing provider.
package billing

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
)

var (
	ErrCustomerNotFound = errors.New("billing: customer not found")
	ErrNotConfigured    = errors.New("billing: provider not configured")
)

type Customer struct {
	ID    string
	Email string
}

type Subscription struct {
	ID                string
	Status            string
	CancelAtPeriodEnd bool
	CurrentPeriodEnd  time.Time
	Metadata          map[string]string
	// UnitAmount is the price of the first line item in minor units.
	UnitAmount int64
}

type CheckoutRequest struct {
	CustomerID string
	ClientID   string
	Plan       domain.Plan
	SuccessURL string
	CancelURL  string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// Provider is the subset of the billing API the portal uses.
type Provider interface {
	GetCustomer(ctx context.Context, id string) (Customer, error)
	// FindCustomerByEmail returns ErrCustomerNotFound when no customer has
	// the address.
	FindCustomerByEmail(ctx context.Context, email string) (Customer, error)
	CreateCustomer(ctx context.Context, email, name string, metadata map[string]string) (Customer, error)
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)
	ListSubscriptions(ctx context.Context, customerID string) ([]Subscription, error)
}

// Disabled is used when no provider key is configured.
type Disabled struct{}

var _ Provider = Disabled{}

func (Disabled) GetCustomer(context.Context, string) (Customer, error) {
	return Customer{}, ErrNotConfigured
}
func (Disabled) FindCustomerByEmail(context.Context, string) (Customer, error) {
	return Customer{}, ErrNotConfigured
}
func (Disabled) CreateCustomer(context.Context, string, string, map[string]string) (Customer, error) {
	return Customer{}, ErrNotConfigured
}
func (Disabled) CreateCheckoutSession(context.Context, CheckoutRequest) (CheckoutSession, error) {
	return CheckoutSession{}, ErrNotConfigured
}
func (Disabled) CreatePortalSession(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}
func (Disabled) ListSubscriptions(context.Context, string) ([]Subscription, error) {
	return nil, ErrNotConfigured
}

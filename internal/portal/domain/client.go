package domain

import "time"

type OnboardingStatus string

const (
	OnboardingPending    OnboardingStatus = "pending"
	OnboardingInProgress OnboardingStatus = "in_progress"
	OnboardingComplete   OnboardingStatus = "complete"
)

func (s OnboardingStatus) Valid() bool {
	switch s {
	case OnboardingPending, OnboardingInProgress, OnboardingComplete:
		return true
	}
	return false
}

// Subscription statuses as stored on the client row. Provider statuses are
// passed through except that an active subscription set to cancel at period
// end is stored as SubscriptionCanceling.
const (
	SubscriptionNone      = "none"
	SubscriptionActive    = "active"
	SubscriptionCanceling = "canceling"
)

type Client struct {
	ID      string
	UserID  string // owning identity
	Name    string
	Email   string
	Phone   string
	Company string

	OnboardingStatus OnboardingStatus

	PlanID                string
	SubscriptionStatus    string
	BillingCustomerID     string
	BillingSubscriptionID string
	CurrentPeriodEnd      *time.Time
	SubscriptionUpdatedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubscriptionState is what billing sync writes back onto a client.
type SubscriptionState struct {
	PlanID                string
	Status                string
	BillingCustomerID     string
	BillingSubscriptionID string
	CurrentPeriodEnd      *time.Time
	CancelAtPeriodEnd     bool
	UpdatedAt             time.Time
}

package billing

import "github.com/aussiebroadwan/clientportal/internal/portal/domain"

const (
	PlanStarter = "starter"
	PlanGrowth  = "growth"
	PlanPremium = "premium"
)

var plans = []domain.Plan{
	{
		ID:          PlanStarter,
		Name:        "Starter",
		Description: "Monthly bookkeeping and annual tax filing for small businesses",
		PriceMinor:  29900,
		Currency:    "usd",
		Interval:    "month",
		Features: []string{
			"Monthly bookkeeping",
			"Annual tax return",
			"Quarterly financial reports",
			"Email support",
		},
	},
	{
		ID:          PlanGrowth,
		Name:        "Growth",
		Description: "Full-service accounting for growing businesses",
		PriceMinor:  49900,
		Currency:    "usd",
		Interval:    "month",
		Features: []string{
			"Everything in Starter",
			"Monthly financial reports",
			"Payroll processing",
			"Quarterly tax planning",
			"Priority support",
		},
	},
	{
		ID:          PlanPremium,
		Name:        "Premium",
		Description: "A dedicated accountant and CFO-level advisory",
		PriceMinor:  79900,
		Currency:    "usd",
		Interval:    "month",
		Features: []string{
			"Everything in Growth",
			"Dedicated accountant",
			"CFO advisory sessions",
			"Audit support",
			"Same-day responses",
		},
	},
}

// Plans returns a copy of the plan table, cheapest first.
func Plans() []domain.Plan {
	out := make([]domain.Plan, len(plans))
	copy(out, plans)
	return out
}

func PlanByID(id string) (domain.Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Plan{}, false
}

// PlanByAmount finds the plan whose monthly price equals amount minor units.
func PlanByAmount(amount int64) (domain.Plan, bool) {
	for _, p := range plans {
		if p.PriceMinor == amount {
			return p, true
		}
	}
	return domain.Plan{}, false
}

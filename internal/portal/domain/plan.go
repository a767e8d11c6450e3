package domain

// Plan is a subscription tier. Prices are in minor currency units.
type Plan struct {
	ID          string
	Name        string
	Description string
	PriceMinor  int64
	Currency    string
	Interval    string
	Features    []string
}

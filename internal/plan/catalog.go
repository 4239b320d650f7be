// AngelaMos | 2026
// catalog.go

// Package plan holds the fixed membership catalog. Plans are reference
// data: defined once at compile time, never persisted, never mutated.
package plan

const (
	Monthly   = "Monthly"
	Quarterly = "Quarterly"
	Yearly    = "Yearly"
)

type Plan struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          int      `json:"price"`
	DurationMonths int      `json:"durationMonths"`
	Features       []string `json:"features"`
}

var catalog = []Plan{
	{
		ID:             "plan-monthly",
		Name:           Monthly,
		Price:          1500,
		DurationMonths: 1,
		Features: []string{
			"Access to all gym equipment",
			"Standard Locker room access",
			"1 Free Trainer Consultation",
		},
	},
	{
		ID:             "plan-quarterly",
		Name:           Quarterly,
		Price:          4000,
		DurationMonths: 3,
		Features: []string{
			"Everything in Monthly",
			"2 Guest Passes per month",
			"Diet Plan Consultation",
			"Steam Room Access",
		},
	},
	{
		ID:             "plan-yearly",
		Name:           Yearly,
		Price:          14000,
		DurationMonths: 12,
		Features: []string{
			"Everything in Quarterly",
			"Unlimited Guest Passes",
			"Personal Trainer (2 sessions/mo)",
			"Exclusive Forge Gear Kit",
		},
	},
}

// All returns the catalog in tier order. Callers must treat the result as
// read-only.
func All() []Plan {
	return catalog
}

func ByName(name string) (*Plan, bool) {
	for i := range catalog {
		if catalog[i].Name == name {
			return &catalog[i], true
		}
	}
	return nil, false
}

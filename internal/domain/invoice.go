package domain

import "time"

// SubscriptionPlan platform subscription billing period
type SubscriptionPlan string

const (
	PlanMonthly   SubscriptionPlan = "monthly"
	PlanSixMonths SubscriptionPlan = "six_months"
	PlanAnnual    SubscriptionPlan = "annual"
)

// PlanAmount returns the subscription price in RSD for the plan
func PlanAmount(plan SubscriptionPlan) (int64, bool) {
	switch plan {
	case PlanMonthly:
		return 1200, true
	case PlanSixMonths:
		return 5400, true
	case PlanAnnual:
		return 9600, true
	}
	return 0, false
}

// ValidSubscriptionPlan reports whether p is one of the known plans
func ValidSubscriptionPlan(p string) bool {
	_, ok := PlanAmount(SubscriptionPlan(p))
	return ok
}

// ProformaInvoice is a non-binding payment instruction for the platform
// subscription, settled by manual bank transfer. Reference is the
// reconciliation key printed on the payment slip; it is unique across
// all issued invoices
type ProformaInvoice struct {
	ID        string
	SalonName string
	Plan      SubscriptionPlan
	Amount    int64 // RSD
	Reference string

	// Payment requisites of the platform at issue time
	PlatformIBAN string
	PlatformPIB  string

	TrialDays int
	IssuedAt  time.Time
}

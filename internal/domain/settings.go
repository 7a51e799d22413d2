package domain

// PayoutFrequency how often the owner gets paid out
type PayoutFrequency string

const (
	PayoutDaily   PayoutFrequency = "daily"
	PayoutWeekly  PayoutFrequency = "weekly"
	PayoutMonthly PayoutFrequency = "monthly"
)

// ValidPayoutFrequency reports whether f is one of the known frequencies
func ValidPayoutFrequency(f string) bool {
	switch PayoutFrequency(f) {
	case PayoutDaily, PayoutWeekly, PayoutMonthly:
		return true
	}
	return false
}

// OwnerSettings per-business dashboard settings.
// Backed by the scoped key-value settings store; every field is a
// last-write-wins scalar with a default applied when the key is absent
type OwnerSettings struct {
	BusinessID      string
	AutoConfirm     bool
	ViberNotify     bool
	WhatsappNotify  bool
	IBAN            string
	PIB             string
	PayoutFrequency PayoutFrequency
}

// DefaultOwnerSettings returns the settings used before the owner saves anything
func DefaultOwnerSettings(businessID string) OwnerSettings {
	return OwnerSettings{
		BusinessID:      businessID,
		PayoutFrequency: PayoutWeekly,
	}
}

// PlatformConfig platform-operator payout configuration.
// A single record, mutated only from the operator dashboard
type PlatformConfig struct {
	IBAN         string
	PIB          string
	ProcessorKey string // payment processor secret, optional
}

// DefaultPlatformConfig returns the seed configuration of the platform
func DefaultPlatformConfig() PlatformConfig {
	return PlatformConfig{
		IBAN: "RS35 1600 0000 1234 56",
		PIB:  "109876543",
	}
}

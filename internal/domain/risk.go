package domain

import (
	"fmt"
	"strings"
)

// RiskProfile is the investor's appetite for volatility, used to pick an allocation.
type RiskProfile string

const (
	Conservative RiskProfile = "Conservative"
	Balanced     RiskProfile = "Balanced"
	Aggressive   RiskProfile = "Aggressive"
)

// RiskProfiles lists every supported profile in display order.
func RiskProfiles() []RiskProfile {
	return []RiskProfile{Conservative, Balanced, Aggressive}
}

// Valid reports whether rp is one of the supported profiles.
func (rp RiskProfile) Valid() bool {
	switch rp {
	case Conservative, Balanced, Aggressive:
		return true
	}
	return false
}

// ParseRiskProfile resolves a profile name case-insensitively.
func ParseRiskProfile(s string) (RiskProfile, error) {
	for _, rp := range RiskProfiles() {
		if strings.EqualFold(strings.TrimSpace(s), string(rp)) {
			return rp, nil
		}
	}
	return "", fmt.Errorf("unknown risk profile %q", s)
}

// RiskLevel is the qualitative risk grade shown in the comparison table.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

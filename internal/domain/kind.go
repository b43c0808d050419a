package domain

import (
	"fmt"
	"strings"
)

// Kind identifies one of the projection calculators
type Kind string

const (
	KindBasicFV              Kind = "basic_fv"
	KindCompoundInterest     Kind = "compound_interest"
	KindMonthlyContributions Kind = "monthly_contributions"
	KindWithdrawals          Kind = "withdrawals"
	KindMutualFund           Kind = "mutual_fund"
	KindHomeValue            Kind = "home_value"
	KindCarValue             Kind = "car_value"
	KindInflationAdjusted    Kind = "inflation_adjusted"
	KindAnnuity              Kind = "annuity"
	KindRetirement           Kind = "retirement"
	KindSIP                  Kind = "sip"
)

// allKinds keeps the display order used by menus and listings
var allKinds = []Kind{
	KindBasicFV,
	KindCompoundInterest,
	KindMonthlyContributions,
	KindWithdrawals,
	KindMutualFund,
	KindHomeValue,
	KindCarValue,
	KindInflationAdjusted,
	KindAnnuity,
	KindRetirement,
	KindSIP,
}

var kindTitles = map[Kind]string{
	KindBasicFV:              "Basic FV",
	KindCompoundInterest:     "Compound Interest",
	KindMonthlyContributions: "Monthly Contributions",
	KindWithdrawals:          "Withdrawals",
	KindMutualFund:           "Mutual Fund",
	KindHomeValue:            "Home Value",
	KindCarValue:             "Car Value",
	KindInflationAdjusted:    "Inflation-Adjusted",
	KindAnnuity:              "Annuity",
	KindRetirement:           "Retirement",
	KindSIP:                  "SIP",
}

// AllKinds returns every calculator kind in display order
func AllKinds() []Kind {
	return append([]Kind(nil), allKinds...)
}

// Title returns the human-readable calculator name
func (k Kind) Title() string {
	if title, ok := kindTitles[k]; ok {
		return title
	}
	return string(k)
}

// Valid reports whether k names a known calculator
func (k Kind) Valid() bool {
	_, ok := kindTitles[k]
	return ok
}

// ParseKind accepts either the tag ("compound_interest") or the title ("Compound Interest")
func ParseKind(s string) (Kind, error) {
	needle := strings.TrimSpace(s)
	if Kind(needle).Valid() {
		return Kind(needle), nil
	}
	normalized := normalizeKindName(needle)
	for _, k := range allKinds {
		if normalizeKindName(k.Title()) == normalized || normalizeKindName(string(k)) == normalized {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown calculator kind %q", s)
}

func normalizeKindName(s string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(r.Replace(s))
}

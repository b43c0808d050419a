package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Envelope is the tagged form of an Input used in files, saved records and API payloads
type Envelope struct {
	Kind  Kind   `yaml:"kind" json:"kind"`
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	Input Input  `yaml:"-" json:"-"`
}

type envelopeJSON struct {
	Kind   Kind            `json:"kind"`
	Name   string          `json:"name,omitempty"`
	Inputs json.RawMessage `json:"inputs"`
}

// NewEnvelope wraps in with its kind tag
func NewEnvelope(name string, in Input) Envelope {
	return Envelope{Kind: in.Kind(), Name: name, Input: in}
}

// MarshalJSON writes {"kind": ..., "name": ..., "inputs": {...}}
func (e Envelope) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(e.Input)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelopeJSON{Kind: e.Kind, Name: e.Name, Inputs: raw})
}

// UnmarshalJSON decodes the inputs object into the variant selected by kind
func (e *Envelope) UnmarshalJSON(data []byte) error {
	var raw envelopeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	kind, err := ParseKind(string(raw.Kind))
	if err != nil {
		return err
	}
	in, err := DecodeInput(kind, func(v any) error {
		if len(raw.Inputs) == 0 {
			return nil
		}
		return json.Unmarshal(raw.Inputs, v)
	})
	if err != nil {
		return fmt.Errorf("failed to decode %s inputs: %w", kind, err)
	}
	e.Kind, e.Name, e.Input = kind, raw.Name, in
	return nil
}

// DecodeInput builds the Input variant for kind, filling it through decode.
// decode receives a pointer to the zero value of the variant.
func DecodeInput(kind Kind, decode func(any) error) (Input, error) {
	switch kind {
	case KindBasicFV:
		return decodeAs[BasicFVInput](decode)
	case KindCompoundInterest:
		return decodeAs[CompoundInterestInput](decode)
	case KindMonthlyContributions:
		return decodeAs[MonthlyContributionsInput](decode)
	case KindWithdrawals:
		return decodeAs[WithdrawalsInput](decode)
	case KindMutualFund:
		return decodeAs[MutualFundInput](decode)
	case KindHomeValue:
		return decodeAs[HomeValueInput](decode)
	case KindCarValue:
		return decodeAs[CarValueInput](decode)
	case KindInflationAdjusted:
		return decodeAs[InflationAdjustedInput](decode)
	case KindAnnuity:
		return decodeAs[AnnuityInput](decode)
	case KindRetirement:
		return decodeAs[RetirementInput](decode)
	case KindSIP:
		return decodeAs[SIPInput](decode)
	default:
		return nil, fmt.Errorf("unknown calculator kind %q", kind)
	}
}

// DecodeResult builds the Result variant for kind, filling it through decode
func DecodeResult(kind Kind, decode func(any) error) (Result, error) {
	switch kind {
	case KindBasicFV:
		return decodeAs[BasicFVResult](decode)
	case KindCompoundInterest:
		return decodeAs[CompoundInterestResult](decode)
	case KindMonthlyContributions:
		return decodeAs[MonthlyContributionsResult](decode)
	case KindWithdrawals:
		return decodeAs[WithdrawalsResult](decode)
	case KindMutualFund:
		return decodeAs[MutualFundResult](decode)
	case KindHomeValue:
		return decodeAs[HomeValueResult](decode)
	case KindCarValue:
		return decodeAs[CarValueResult](decode)
	case KindInflationAdjusted:
		return decodeAs[InflationAdjustedResult](decode)
	case KindAnnuity:
		return decodeAs[AnnuityResult](decode)
	case KindRetirement:
		return decodeAs[RetirementResult](decode)
	case KindSIP:
		return decodeAs[SIPResult](decode)
	default:
		return nil, fmt.Errorf("unknown calculator kind %q", kind)
	}
}

func decodeAs[T any](decode func(any) error) (T, error) {
	var v T
	err := decode(&v)
	return v, err
}

// DefaultInput returns the starting parameters shown for a calculator
func DefaultInput(kind Kind) (Input, error) {
	d := decimal.NewFromInt
	switch kind {
	case KindBasicFV:
		return BasicFVInput{Principal: d(10000), Rate: d(5), Years: 10}, nil
	case KindCompoundInterest:
		return CompoundInterestInput{Principal: d(10000), Rate: d(5), Years: 10, CompoundingFrequency: 12}, nil
	case KindMonthlyContributions:
		return MonthlyContributionsInput{InitialAmount: d(1000), MonthlyContribution: d(500), AnnualRate: d(7), Years: 10}, nil
	case KindWithdrawals:
		return WithdrawalsInput{InitialBalance: d(500000), MonthlyWithdrawal: d(2000), AnnualRate: d(5), Years: 20}, nil
	case KindMutualFund:
		return MutualFundInput{
			InitialInvestment: d(10000),
			MonthlyInvestment: d(500),
			Years:             10,
			ExpectedReturn:    d(8),
			ExpenseRatio:      decimal.NewFromFloat(0.75),
			FrontLoad:         decimal.Zero,
		}, nil
	case KindHomeValue:
		return HomeValueInput{
			CurrentValue:            d(500000),
			AnnualAppreciation:      d(3),
			Years:                   10,
			Improvements:            d(25000),
			ImprovementAppreciation: d(50),
			MarketAdjustment:        decimal.Zero,
		}, nil
	case KindCarValue:
		return CarValueInput{
			CurrentValue:      d(30000),
			Age:               0,
			Years:             5,
			AnnualMileage:     12000,
			Condition:         ConditionExcellent,
			MaintenanceBudget: d(1000),
			MarketTrend:       decimal.Zero,
		}, nil
	case KindInflationAdjusted:
		return InflationAdjustedInput{Principal: d(10000), Rate: d(7), InflationRate: d(3), Years: 10}, nil
	case KindAnnuity:
		return AnnuityInput{Payment: d(1000), Rate: d(5), Years: 10, Frequency: 12}, nil
	case KindRetirement:
		return RetirementInput{
			CurrentAge:          30,
			RetirementAge:       65,
			CurrentSavings:      d(50000),
			MonthlyContribution: d(1000),
			ExpectedReturn:      d(7),
			AccountKind:         Account401k,
			AnnualIncome:        d(85000),
		}, nil
	case KindSIP:
		return SIPInput{MonthlyInvestment: d(1000), AnnualRate: d(12), Years: 10}, nil
	default:
		return nil, fmt.Errorf("unknown calculator kind %q", kind)
	}
}

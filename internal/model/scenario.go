package model

import (
	"errors"
	"fmt"
	"math"
)

// ScenarioParams defines the inputs of one buy-vs-rent comparison.
// Units:
// - HousePrice: currency units (RM in the reference scenario)
// - DownPaymentFraction: fraction 0..1 of HousePrice paid upfront
// - Rates: annual fractions (0.04 == 4%)
// - RentYieldAnnual: annual rent as a fraction of HousePrice
// - TermYears: loan term and comparison horizon, years
type ScenarioParams struct {
	HousePrice             float64
	DownPaymentFraction    float64
	MortgageAnnualRate     float64
	TermYears              int
	RentYieldAnnual        float64
	InvestmentAnnualReturn float64
	HomeAppreciationAnnual float64
}

func (p ScenarioParams) Validate() error {
	if p.HousePrice <= 0 {
		return errors.New("HousePrice must be > 0")
	}
	if p.DownPaymentFraction < 0 || p.DownPaymentFraction >= 1 {
		return errors.New("DownPaymentFraction must be in [0, 1)")
	}
	if p.MortgageAnnualRate < 0 {
		return errors.New("MortgageAnnualRate must be >= 0")
	}
	if p.TermYears <= 0 {
		return errors.New("TermYears must be > 0")
	}
	if p.RentYieldAnnual < 0 {
		return errors.New("RentYieldAnnual must be >= 0")
	}
	if p.InvestmentAnnualReturn < 0 {
		return errors.New("InvestmentAnnualReturn must be >= 0")
	}
	if p.HomeAppreciationAnnual < 0 {
		return errors.New("HomeAppreciationAnnual must be >= 0")
	}
	return nil
}

// Field names accepted by WithField and the sensitivity axis selectors.
// Keep these values stable; they appear in configs and API payloads.
const (
	FieldHousePrice   = "house_price"
	FieldDownPayment  = "down_payment"
	FieldMortgageRate = "mortgage_rate"
	FieldTermYears    = "term_years"
	FieldRentYield    = "rent_yield"
	FieldInvestReturn = "investment_return"
	FieldAppreciation = "home_appreciation"
)

// Fields lists every overridable parameter field.
func Fields() []string {
	return []string{
		FieldHousePrice,
		FieldDownPayment,
		FieldMortgageRate,
		FieldTermYears,
		FieldRentYield,
		FieldInvestReturn,
		FieldAppreciation,
	}
}

// KnownField reports whether name is a valid field selector.
func KnownField(name string) bool {
	for _, f := range Fields() {
		if f == name {
			return true
		}
	}
	return false
}

// WithField returns a copy of p with the named field overridden.
// TermYears is rounded to the nearest whole year.
func (p ScenarioParams) WithField(name string, value float64) (ScenarioParams, error) {
	out := p
	switch name {
	case FieldHousePrice:
		out.HousePrice = value
	case FieldDownPayment:
		out.DownPaymentFraction = value
	case FieldMortgageRate:
		out.MortgageAnnualRate = value
	case FieldTermYears:
		out.TermYears = int(math.Round(value))
	case FieldRentYield:
		out.RentYieldAnnual = value
	case FieldInvestReturn:
		out.InvestmentAnnualReturn = value
	case FieldAppreciation:
		out.HomeAppreciationAnnual = value
	default:
		return ScenarioParams{}, fmt.Errorf("unknown parameter field: %q", name)
	}
	return out, nil
}

// ScenarioResult is derived from ScenarioParams on demand and never stored.
type ScenarioResult struct {
	BuyWealth  float64
	RentWealth float64
	// Difference is BuyWealth - RentWealth. Positive means buying leads.
	Difference float64
}

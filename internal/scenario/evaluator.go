package scenario

import (
	"fmt"

	"buyrent-sim/internal/finance"
	"buyrent-sim/internal/model"
)

type Evaluator struct{}

func New() *Evaluator { return &Evaluator{} }

// Evaluate runs the buy-vs-rent comparison for a single parameter set.
//
// Buyer terminal wealth is the appreciated house value; the remaining
// mortgage balance and amortized equity are not modeled separately. That
// is the reference model's simplification and is kept as-is.
func (e *Evaluator) Evaluate(p model.ScenarioParams) (model.ScenarioResult, error) {
	if err := p.Validate(); err != nil {
		return model.ScenarioResult{}, fmt.Errorf("invalid scenario: %w", err)
	}

	loanPrincipal := p.HousePrice * (1 - p.DownPaymentFraction)
	downPayment := p.HousePrice * p.DownPaymentFraction

	monthlyMortgage := finance.MonthlyMortgagePayment(loanPrincipal, p.MortgageAnnualRate, p.TermYears)
	monthlyRent := (p.HousePrice * p.RentYieldAnnual) / 12.0

	// What the renter invests each month instead of paying a mortgage.
	// Negative when rent exceeds the mortgage payment.
	monthlyContribution := monthlyMortgage - monthlyRent

	buyWealth := finance.FutureValueLumpSum(p.HousePrice, p.HomeAppreciationAnnual, p.TermYears)
	rentWealth := finance.FutureValueLumpSum(downPayment, p.InvestmentAnnualReturn, p.TermYears) +
		finance.FutureValueMonthlyAnnuity(monthlyContribution, p.InvestmentAnnualReturn, p.TermYears)

	return model.ScenarioResult{
		BuyWealth:  buyWealth,
		RentWealth: rentWealth,
		Difference: buyWealth - rentWealth,
	}, nil
}

package finance

import "math"

// MonthlyMortgagePayment returns the fixed monthly payment that fully
// amortizes principal at annualRate over years.
//
// The zero-rate branch degenerates to straight-line repayment; it also
// avoids the 0/0 in the closed-form formula. years must be > 0 (a
// violated precondition is a programming error, not a runtime condition).
func MonthlyMortgagePayment(principal, annualRate float64, years int) float64 {
	r := annualRate / 12.0
	n := float64(years * 12)
	if annualRate == 0 {
		return principal / n
	}
	growth := math.Pow(1+r, n)
	return principal * (r * growth) / (growth - 1)
}

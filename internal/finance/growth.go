package finance

import "math"

// FutureValueLumpSum compounds a present value annually for years.
// A zero rate is identity growth.
func FutureValueLumpSum(presentValue, annualRate float64, years int) float64 {
	return presentValue * math.Pow(1+annualRate, float64(years))
}

// FutureValueMonthlyAnnuity returns the future value of a fixed monthly
// contribution compounding monthly at annualRate, contributions at period
// end (ordinary annuity).
//
// monthlyPayment may be negative: the renter's investable surplus goes
// negative whenever rent exceeds the mortgage payment, and the result is
// then negative too.
func FutureValueMonthlyAnnuity(monthlyPayment, annualRate float64, years int) float64 {
	r := annualRate / 12.0
	n := float64(years * 12)
	if annualRate == 0 {
		return monthlyPayment * n
	}
	return monthlyPayment * (math.Pow(1+r, n) - 1) / r
}

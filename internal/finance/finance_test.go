package finance

import (
	"math"
	"testing"
)

func within(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (tol %v)", got, want, tol)
	}
}

func TestMonthlyMortgagePayment_BaseCase(t *testing.T) {
	// 720k at 4% over 30 years is a well-known fixture (~3437.4/month).
	got := MonthlyMortgagePayment(720000, 0.04, 30)
	within(t, got, 3437.39, 0.5)
}

func TestMonthlyMortgagePayment_ZeroRate(t *testing.T) {
	got := MonthlyMortgagePayment(720000, 0, 30)
	if got != 720000.0/360.0 {
		t.Fatalf("zero-rate payment = %v, want straight-line %v", got, 720000.0/360.0)
	}
}

func TestMonthlyMortgagePayment_CoversPrincipal(t *testing.T) {
	cases := []struct {
		principal float64
		rate      float64
		years     int
	}{
		{100000, 0.01, 5},
		{720000, 0.04, 30},
		{1000000, 0.10, 40},
	}
	for _, c := range cases {
		pmt := MonthlyMortgagePayment(c.principal, c.rate, c.years)
		if pmt <= 0 {
			t.Fatalf("payment %v not positive for %+v", pmt, c)
		}
		total := pmt * float64(c.years*12)
		if total < c.principal {
			t.Fatalf("total paid %v < principal %v for %+v", total, c.principal, c)
		}
	}
}

func TestMonthlyMortgagePayment_ZeroPrincipal(t *testing.T) {
	// Full down payment drives the loan to zero; the formula must not blow up.
	got := MonthlyMortgagePayment(0, 0.04, 30)
	if got != 0 {
		t.Fatalf("zero-principal payment = %v, want 0", got)
	}
}

func TestFutureValueLumpSum_ZeroRateIdentity(t *testing.T) {
	for _, years := range []int{1, 10, 30, 40} {
		if got := FutureValueLumpSum(12345.67, 0, years); got != 12345.67 {
			t.Fatalf("FV(pv, 0, %d) = %v, want identity", years, got)
		}
	}
}

func TestFutureValueLumpSum_BaseCase(t *testing.T) {
	// 800k at 2% for 30 years: 800000 * 1.02^30.
	within(t, FutureValueLumpSum(800000, 0.02, 30), 1449089.26, 1)
	// 80k at 6% for 30 years: 80000 * 1.06^30.
	within(t, FutureValueLumpSum(80000, 0.06, 30), 459479.29, 1)
}

func TestFutureValueMonthlyAnnuity_ZeroRate(t *testing.T) {
	got := FutureValueMonthlyAnnuity(250, 0, 30)
	if got != 250*360 {
		t.Fatalf("zero-growth annuity = %v, want %v", got, 250*360)
	}
}

func TestFutureValueMonthlyAnnuity_UnitFactor(t *testing.T) {
	// FV of 1/month at 6% for 30 years: ((1.005)^360 - 1) / 0.005.
	within(t, FutureValueMonthlyAnnuity(1, 0.06, 30), 1004.515, 0.01)
}

func TestFutureValueMonthlyAnnuity_NegativeContribution(t *testing.T) {
	pos := FutureValueMonthlyAnnuity(400, 0.06, 30)
	neg := FutureValueMonthlyAnnuity(-400, 0.06, 30)
	if neg >= 0 {
		t.Fatalf("negative contribution gave non-negative FV %v", neg)
	}
	if neg != -pos {
		t.Fatalf("annuity not odd in payment: %v vs %v", neg, -pos)
	}
}

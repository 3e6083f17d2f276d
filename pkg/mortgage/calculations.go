// Package mortgage implements the monthly affordability math for a home
// purchase: the amortized principal-and-interest payment plus property tax,
// insurance, mortgage insurance, and HOA dues.
package mortgage

import (
	"fmt"
	"math"

	"github.com/iwvelando/mortgage-affordability/pkg/constants"
	"github.com/iwvelando/mortgage-affordability/pkg/mathutil"
)

// Breakdown holds the monthly cost components for one price and rate point.
// Total is the exact sum of the other fields; nothing is rounded until
// display.
type Breakdown struct {
	PrincipalAndInterest float64 `json:"principalAndInterest"`
	PropertyTax          float64 `json:"propertyTaxMonthly"`
	Insurance            float64 `json:"insuranceMonthly"`
	PMI                  float64 `json:"pmiMonthly"`
	HOA                  float64 `json:"hoaMonthly"`
	Total                float64 `json:"totalMonthly"`
}

// LoanAmount returns the financed amount for a purchase price.
func LoanAmount(price float64, a Assumptions) float64 {
	return price * (1 - a.DownPaymentPct)
}

// MonthlyPayment computes the full monthly payment breakdown for a purchase
// price and annual interest rate. Rates are fractions (0.06 means 6%).
func MonthlyPayment(price, annualRate float64, a Assumptions) (Breakdown, error) {
	a = a.WithDefaults()

	if price <= 0 {
		return Breakdown{}, fmt.Errorf("purchase price must be positive, got %.2f", price)
	}
	if annualRate < 0 {
		return Breakdown{}, fmt.Errorf("annual interest rate must not be negative, got %v", annualRate)
	}
	if err := a.Validate(); err != nil {
		return Breakdown{}, err
	}

	loanAmount := LoanAmount(price, a)
	termMonths := a.TermYears * constants.MonthsPerYear

	var breakdown Breakdown
	breakdown.PrincipalAndInterest = calculateMonthlyPI(loanAmount, annualRate, termMonths)
	breakdown.PropertyTax = price * a.PropertyTaxRate / constants.MonthsPerYear
	breakdown.Insurance = (a.HomeownersInsurance + a.FloodInsurance) / constants.MonthsPerYear
	breakdown.PMI = calculateMonthlyPMI(loanAmount, price, a)
	breakdown.HOA = a.HOAMonthly
	breakdown.Total = breakdown.PrincipalAndInterest + breakdown.PropertyTax +
		breakdown.Insurance + breakdown.PMI + breakdown.HOA

	return breakdown, nil
}

// calculateMonthlyPI applies the standard amortization formula.
func calculateMonthlyPI(loanAmount, annualRate float64, termMonths int) float64 {
	if annualRate == 0 {
		// For zero interest, simply divide the loan amount by term
		return loanAmount / float64(termMonths)
	}

	periodicInterestRate := annualRate / constants.MonthsPerYear
	power := math.Pow((1.00 + periodicInterestRate), float64(termMonths))
	discountFactor := (power - 1.00) / power
	return loanAmount * periodicInterestRate / discountFactor
}

// calculateMonthlyPMI returns the mortgage insurance portion of the payment.
func calculateMonthlyPMI(loanAmount, price float64, a Assumptions) float64 {
	if !pmiAppliesAtLTV(loanAmount/price, a) {
		return 0
	}
	return loanAmount * a.PMIRate / constants.MonthsPerYear
}

// PMIApplies reports whether mortgage insurance would be charged under these
// assumptions. Loan-to-value depends only on the down payment fraction, so
// no price is needed.
func PMIApplies(a Assumptions) bool {
	a = a.WithDefaults()
	return pmiAppliesAtLTV(1-a.DownPaymentPct, a)
}

// pmiAppliesAtLTV holds the cutoff policy: strictly above the cutoff charges
// PMI, exactly at the cutoff only when PMIAtCutoff is set. Loan-to-value
// within RateTolerance of the cutoff counts as exactly at the cutoff.
func pmiAppliesAtLTV(ltv float64, a Assumptions) bool {
	if mathutil.WithinTolerance(ltv, a.PMICutoff, constants.RateTolerance) {
		return a.PMIAtCutoff
	}
	return ltv > a.PMICutoff
}

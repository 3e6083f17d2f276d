package mortgage

import (
	"fmt"

	"github.com/iwvelando/mortgage-affordability/pkg/constants"
)

// Assumptions holds the fixed borrower parameters shared by every point of a
// calculation. Rates are annual fractions (0.0125 means 1.25%); insurance
// premiums are per year; HOA dues are per month.
type Assumptions struct {
	DownPaymentPct      float64 `json:"downPaymentPct"`
	TermYears           int     `json:"termYears"`
	PropertyTaxRate     float64 `json:"propertyTaxRate"`
	HomeownersInsurance float64 `json:"homeownersInsurance"`
	FloodInsurance      float64 `json:"floodInsurance"`
	PMIRate             float64 `json:"pmiRate"`
	PMICutoff           float64 `json:"pmiCutoff"`
	PMIAtCutoff         bool    `json:"pmiAtCutoff"`
	HOAMonthly          float64 `json:"hoaMonthly"`
}

// WithDefaults returns a copy with an unset PMI cutoff replaced by the
// standard 80% loan-to-value threshold. The loan term has no implicit
// default; an unset term fails validation.
func (a Assumptions) WithDefaults() Assumptions {
	if a.PMICutoff == 0 {
		a.PMICutoff = constants.DefaultPMICutoff
	}
	return a
}

// Validate checks that the assumptions describe a computable loan.
func (a Assumptions) Validate() error {
	if a.DownPaymentPct < 0 || a.DownPaymentPct >= 1 {
		return fmt.Errorf("downPaymentPct must be at least 0 and below 1, got %v", a.DownPaymentPct)
	}
	if a.TermYears <= 0 {
		return fmt.Errorf("termYears must be positive, got %d", a.TermYears)
	}
	if a.PropertyTaxRate < 0 || a.PropertyTaxRate > 1 {
		return fmt.Errorf("propertyTaxRate must be between 0 and 1, got %v", a.PropertyTaxRate)
	}
	if a.HomeownersInsurance < 0 {
		return fmt.Errorf("homeownersInsurance must not be negative, got %v", a.HomeownersInsurance)
	}
	if a.FloodInsurance < 0 {
		return fmt.Errorf("floodInsurance must not be negative, got %v", a.FloodInsurance)
	}
	if a.PMIRate < 0 || a.PMIRate > 1 {
		return fmt.Errorf("pmiRate must be between 0 and 1, got %v", a.PMIRate)
	}
	if a.PMICutoff <= 0 || a.PMICutoff > 1 {
		return fmt.Errorf("pmiCutoff must be above 0 and at most 1, got %v", a.PMICutoff)
	}
	if a.HOAMonthly < 0 {
		return fmt.Errorf("hoaMonthly must not be negative, got %v", a.HOAMonthly)
	}
	return nil
}

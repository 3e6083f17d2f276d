// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/mortgage-affordability/pkg/constants"
	"github.com/iwvelando/mortgage-affordability/pkg/format"
	"github.com/iwvelando/mortgage-affordability/pkg/mathutil"
	"github.com/iwvelando/mortgage-affordability/pkg/mortgage"
)

// ValidateAssumptions reports suspicious but computable assumption values.
// Hard errors are left to the calculator itself.
func ValidateAssumptions(a mortgage.Assumptions) []string {
	var warnings []string
	a = a.WithDefaults()

	if mortgage.PMIApplies(a) && a.PMIRate == 0 {
		warnings = append(warnings, fmt.Sprintf(
			"PMI applies at loan-to-value %s but pmiRate is 0, so no PMI will be charged",
			format.Percent(1-a.DownPaymentPct)))
	}

	if a.HomeownersInsurance == 0 && a.FloodInsurance == 0 {
		warnings = append(warnings, "Both insurance premiums are 0; the payment excludes insurance")
	}

	if a.PropertyTaxRate == 0 {
		warnings = append(warnings, "propertyTaxRate is 0; the payment excludes property tax")
	}

	return warnings
}

// ValidateGridRanges reports grid axis oddities that remain computable.
func ValidateGridRanges(prices, rates mortgage.Range) []string {
	var warnings []string
	warnings = append(warnings, rangeWarnings("Price", prices)...)
	warnings = append(warnings, rangeWarnings("Rate", rates)...)

	if rates.Max > constants.SuspiciousRateBound {
		warnings = append(warnings, fmt.Sprintf(
			"Rate range max %v exceeds %v; rates are fractions of 1, so 6.5%% is 0.065",
			rates.Max, constants.SuspiciousRateBound))
	}

	if values, err := prices.Values(); err == nil && len(values) > constants.MaxPrettyColumns {
		warnings = append(warnings, fmt.Sprintf(
			"Price range expands to %d columns; the pretty table fits %d per terminal width",
			len(values), constants.MaxPrettyColumns))
	}

	return warnings
}

func rangeWarnings(name string, r mortgage.Range) []string {
	values, err := r.Values()
	if err != nil {
		// Hard errors surface when the grid is evaluated.
		return nil
	}

	var warnings []string
	last := values[len(values)-1]
	if !mathutil.WithinTolerance(last, r.Max, r.Step*constants.RateTolerance) {
		warnings = append(warnings, fmt.Sprintf(
			"%s range max %v does not land on a step boundary; the axis ends at %v", name, r.Max, last))
	}
	return warnings
}

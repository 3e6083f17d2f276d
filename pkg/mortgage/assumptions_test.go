package mortgage

import (
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-affordability/pkg/constants"
)

func TestAssumptionsValidate(t *testing.T) {
	valid := Assumptions{
		DownPaymentPct:      0.20,
		TermYears:           30,
		PropertyTaxRate:     0.0125,
		HomeownersInsurance: 1800,
		PMIRate:             0.005,
		PMICutoff:           0.80,
	}

	tests := []struct {
		name    string
		mutate  func(a *Assumptions)
		wantErr string
	}{
		{"Valid assumptions", func(a *Assumptions) {}, ""},
		{"Down payment at one", func(a *Assumptions) { a.DownPaymentPct = 1.0 }, "downPaymentPct"},
		{"Down payment above one", func(a *Assumptions) { a.DownPaymentPct = 1.5 }, "downPaymentPct"},
		{"Negative down payment", func(a *Assumptions) { a.DownPaymentPct = -0.2 }, "downPaymentPct"},
		{"Zero term", func(a *Assumptions) { a.TermYears = 0 }, "termYears"},
		{"Negative term", func(a *Assumptions) { a.TermYears = -5 }, "termYears"},
		{"Tax rate above one", func(a *Assumptions) { a.PropertyTaxRate = 1.1 }, "propertyTaxRate"},
		{"Negative tax rate", func(a *Assumptions) { a.PropertyTaxRate = -0.01 }, "propertyTaxRate"},
		{"Negative homeowners insurance", func(a *Assumptions) { a.HomeownersInsurance = -100 }, "homeownersInsurance"},
		{"Negative flood insurance", func(a *Assumptions) { a.FloodInsurance = -1 }, "floodInsurance"},
		{"PMI rate above one", func(a *Assumptions) { a.PMIRate = 1.5 }, "pmiRate"},
		{"Negative PMI rate", func(a *Assumptions) { a.PMIRate = -0.005 }, "pmiRate"},
		{"Cutoff above one", func(a *Assumptions) { a.PMICutoff = 1.2 }, "pmiCutoff"},
		{"Negative cutoff", func(a *Assumptions) { a.PMICutoff = -0.8 }, "pmiCutoff"},
		{"Negative HOA", func(a *Assumptions) { a.HOAMonthly = -10 }, "hoaMonthly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assumptions := valid
			tt.mutate(&assumptions)

			err := assumptions.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, expected to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestAssumptionsWithDefaults(t *testing.T) {
	t.Run("Unset cutoff takes the default", func(t *testing.T) {
		a := Assumptions{DownPaymentPct: 0.20, TermYears: 30}.WithDefaults()
		if a.PMICutoff != constants.DefaultPMICutoff {
			t.Errorf("WithDefaults() PMICutoff = %v, expected %v", a.PMICutoff, constants.DefaultPMICutoff)
		}
	})

	t.Run("Explicit cutoff is preserved", func(t *testing.T) {
		a := Assumptions{DownPaymentPct: 0.20, TermYears: 30, PMICutoff: 0.90}.WithDefaults()
		if a.PMICutoff != 0.90 {
			t.Errorf("WithDefaults() PMICutoff = %v, expected 0.90", a.PMICutoff)
		}
	})

	t.Run("Other fields untouched", func(t *testing.T) {
		original := Assumptions{
			DownPaymentPct:      0.19,
			TermYears:           15,
			PropertyTaxRate:     0.0091,
			HomeownersInsurance: 3120,
			FloodInsurance:      400,
			PMIRate:             0.005,
			PMIAtCutoff:         true,
			HOAMonthly:          55,
		}
		defaulted := original.WithDefaults()
		original.PMICutoff = constants.DefaultPMICutoff
		if defaulted != original {
			t.Errorf("WithDefaults() = %+v, expected %+v", defaulted, original)
		}
	})
}

// Package output provides utilities for formatting and displaying grid results.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/mortgage-affordability/internal/grid"
	"github.com/iwvelando/mortgage-affordability/pkg/format"
	"github.com/iwvelando/mortgage-affordability/pkg/mortgage"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
// Purchase prices run across the columns and each row holds one rate.
func PrettyFormat(result *grid.Grid) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Total monthly payment by purchase price and interest rate ---\n")
	fmt.Printf("Rate   |")
	for _, price := range result.Prices {
		fmt.Printf(" %s |", format.WholeCurrency(price))
	}
	fmt.Printf("\n")
	fmt.Printf("____   |")
	for _, price := range result.Prices {
		fmt.Printf(" %s |", strings.Repeat("_", len(format.WholeCurrency(price))))
	}
	fmt.Printf("\n")
	for j, rate := range result.Rates {
		fmt.Printf("%-6s |", format.Percent(rate))
		for i := range result.Prices {
			_, _ = p.Printf(" %8.2f |", result.Cells[i][j])
		}
		fmt.Printf("\n")
	}
}

// CsvString renders the grid in comma-separated value format with one row
// per rate; the header row carries the purchase prices.
func CsvString(result *grid.Grid) string {
	var builder strings.Builder
	builder.WriteString(`"rate"`)
	for _, price := range result.Prices {
		fmt.Fprintf(&builder, `,"%.0f"`, price)
	}
	builder.WriteString("\n")
	for j, rate := range result.Rates {
		fmt.Fprintf(&builder, `"%.4f"`, rate)
		for i := range result.Prices {
			fmt.Fprintf(&builder, `,"%.2f"`, result.Cells[i][j])
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result *grid.Grid) {
	fmt.Print(CsvString(result))
}

// BreakdownFormat outputs the component breakdown for a single payment.
func BreakdownFormat(price, rate float64, breakdown mortgage.Breakdown) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Monthly payment at %s and %s ---\n", format.WholeCurrency(price), format.Percent(rate))
	_, _ = p.Printf("Principal & interest | $%.2f\n", breakdown.PrincipalAndInterest)
	_, _ = p.Printf("Property tax         | $%.2f\n", breakdown.PropertyTax)
	_, _ = p.Printf("Insurance            | $%.2f\n", breakdown.Insurance)
	_, _ = p.Printf("PMI                  | $%.2f\n", breakdown.PMI)
	_, _ = p.Printf("HOA                  | $%.2f\n", breakdown.HOA)
	fmt.Printf("____________________ | _________\n")
	_, _ = p.Printf("Total                | $%.2f\n", breakdown.Total)
}

// BreakdownCsvString renders the component breakdown in comma-separated
// value format with one row per component.
func BreakdownCsvString(breakdown mortgage.Breakdown) string {
	var builder strings.Builder
	builder.WriteString(`"component","monthly"`)
	builder.WriteString("\n")
	components := []struct {
		name   string
		amount float64
	}{
		{"principal & interest", breakdown.PrincipalAndInterest},
		{"property tax", breakdown.PropertyTax},
		{"insurance", breakdown.Insurance},
		{"pmi", breakdown.PMI},
		{"hoa", breakdown.HOA},
		{"total", breakdown.Total},
	}
	for _, component := range components {
		fmt.Fprintf(&builder, `"%s","%.2f"`, component.name, component.amount)
		builder.WriteString("\n")
	}
	return builder.String()
}

// BreakdownCsvFormat outputs the component breakdown in comma-separated
// value format.
func BreakdownCsvFormat(breakdown mortgage.Breakdown) {
	fmt.Print(BreakdownCsvString(breakdown))
}

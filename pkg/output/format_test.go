package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-affordability/internal/grid"
	"github.com/iwvelando/mortgage-affordability/pkg/mortgage"
)

func testGrid() *grid.Grid {
	return &grid.Grid{
		Prices: []float64{300000, 400000},
		Rates:  []float64{0.05, 0.06},
		Cells: [][]float64{
			{1750.87, 1901.42},
			{2284.49, 2485.23},
		},
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestPrettyFormat(t *testing.T) {
	output := captureStdout(t, func() {
		PrettyFormat(testGrid())
	})

	// Should contain the expected format elements
	if !strings.Contains(output, "--- Total monthly payment by purchase price and interest rate ---") {
		t.Errorf("PrettyFormat missing table header")
	}
	if !strings.Contains(output, "$300,000") {
		t.Errorf("PrettyFormat missing first price label")
	}
	if !strings.Contains(output, "$400,000") {
		t.Errorf("PrettyFormat missing second price label")
	}
	if !strings.Contains(output, "5%") {
		t.Errorf("PrettyFormat missing first rate label")
	}
	if !strings.Contains(output, "6%") {
		t.Errorf("PrettyFormat missing second rate label")
	}
	if !strings.Contains(output, "2,485.23") {
		t.Errorf("PrettyFormat missing grouped payment value")
	}
	if !strings.Contains(output, "________") {
		t.Errorf("PrettyFormat missing table separator")
	}
}

func TestPrettyFormatRowPerRate(t *testing.T) {
	output := captureStdout(t, func() {
		PrettyFormat(testGrid())
	})

	// The row for a given rate holds that rate's payment at every price.
	lines := strings.Split(output, "\n")
	var rateRow string
	for _, line := range lines {
		if strings.HasPrefix(line, "5%") {
			rateRow = line
			break
		}
	}
	if rateRow == "" {
		t.Fatalf("PrettyFormat missing row for rate 5%%, output:\n%s", output)
	}
	if !strings.Contains(rateRow, "1,750.87") {
		t.Errorf("Rate row missing payment at first price: %s", rateRow)
	}
	if !strings.Contains(rateRow, "2,284.49") {
		t.Errorf("Rate row missing payment at second price: %s", rateRow)
	}
	if strings.Contains(rateRow, "1,901.42") {
		t.Errorf("Rate row contains payment belonging to another rate: %s", rateRow)
	}
}

func TestPrettyFormatEmptyGrid(t *testing.T) {
	// Shouldn't crash
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("PrettyFormat panicked with empty grid: %v", r)
		}
	}()

	_ = captureStdout(t, func() {
		PrettyFormat(&grid.Grid{})
	})
}

func TestCsvFormat(t *testing.T) {
	output := captureStdout(t, func() {
		CsvFormat(testGrid())
	})

	// Split into lines
	lines := strings.Split(strings.TrimSpace(output), "\n")

	// Should have header + one line per rate
	if len(lines) != 3 {
		t.Fatalf("CsvFormat should produce 3 lines (header + 2 rates), got %d", len(lines))
	}

	// Check header
	header := lines[0]
	expectedHeaderElements := []string{
		`"rate"`,
		`"300000"`,
		`"400000"`,
	}
	for _, element := range expectedHeaderElements {
		if !strings.Contains(header, element) {
			t.Errorf("CsvFormat header missing: %s", element)
		}
	}

	// Check data lines contain expected values
	dataContent := strings.Join(lines[1:], "\n")
	expectedDataElements := []string{
		`"0.0500"`,
		`"0.0600"`,
		`"1750.87"`,
		`"1901.42"`,
		`"2284.49"`,
		`"2485.23"`,
	}
	for _, element := range expectedDataElements {
		if !strings.Contains(dataContent, element) {
			t.Errorf("CsvFormat data missing: %s", element)
		}
	}
}

func TestCsvFormatRowPerRate(t *testing.T) {
	output := captureStdout(t, func() {
		CsvFormat(testGrid())
	})

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 3 {
		t.Fatalf("CsvFormat should produce 3 lines, got %d", len(lines))
	}

	expectedRows := []string{
		`"rate","300000","400000"`,
		`"0.0500","1750.87","2284.49"`,
		`"0.0600","1901.42","2485.23"`,
	}
	for i, expected := range expectedRows {
		if lines[i] != expected {
			t.Errorf("CsvFormat line %d = %s, expected %s", i, lines[i], expected)
		}
	}
}

func TestCsvStringMatchesCsvFormat(t *testing.T) {
	expected := CsvString(testGrid())

	output := captureStdout(t, func() {
		CsvFormat(testGrid())
	})

	if expected != output {
		t.Fatalf("CsvString and CsvFormat output mismatch\nCsvString:\n%s\nCsvFormat:\n%s", expected, output)
	}
}

func TestCsvFormatEmptyGrid(t *testing.T) {
	// Test with empty grid - should not crash
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("CsvFormat panicked with empty grid: %v", r)
		}
	}()

	_ = captureStdout(t, func() {
		CsvFormat(&grid.Grid{})
	})
}

func TestBreakdownFormat(t *testing.T) {
	breakdown := mortgage.Breakdown{
		PrincipalAndInterest: 1918.56,
		PropertyTax:          416.67,
		Insurance:            150.00,
		PMI:                  0.00,
		HOA:                  0.00,
		Total:                2485.23,
	}

	output := captureStdout(t, func() {
		BreakdownFormat(400000, 0.06, breakdown)
	})

	if !strings.Contains(output, "--- Monthly payment at $400,000 and 6% ---") {
		t.Errorf("BreakdownFormat missing header, got %q", output)
	}
	if !strings.Contains(output, "Principal & interest | $1,918.56") {
		t.Errorf("BreakdownFormat missing principal and interest line")
	}
	if !strings.Contains(output, "Property tax         | $416.67") {
		t.Errorf("BreakdownFormat missing property tax line")
	}
	if !strings.Contains(output, "Insurance            | $150.00") {
		t.Errorf("BreakdownFormat missing insurance line")
	}
	if !strings.Contains(output, "Total                | $2,485.23") {
		t.Errorf("BreakdownFormat missing total line")
	}
}

func TestBreakdownCsvFormat(t *testing.T) {
	breakdown := mortgage.Breakdown{
		PrincipalAndInterest: 1918.56,
		PropertyTax:          416.67,
		Insurance:            150.00,
		PMI:                  0.00,
		HOA:                  0.00,
		Total:                2485.23,
	}

	output := captureStdout(t, func() {
		BreakdownCsvFormat(breakdown)
	})

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 7 {
		t.Fatalf("BreakdownCsvFormat should produce 7 lines (header + 6 components), got %d", len(lines))
	}

	expectedRows := []string{
		`"component","monthly"`,
		`"principal & interest","1918.56"`,
		`"property tax","416.67"`,
		`"insurance","150.00"`,
		`"pmi","0.00"`,
		`"hoa","0.00"`,
		`"total","2485.23"`,
	}
	for i, expected := range expectedRows {
		if lines[i] != expected {
			t.Errorf("BreakdownCsvFormat line %d = %s, expected %s", i, lines[i], expected)
		}
	}

	if output != BreakdownCsvString(breakdown) {
		t.Errorf("BreakdownCsvFormat output differs from BreakdownCsvString")
	}
}

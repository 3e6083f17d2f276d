// Package constants provides shared constants for the mortgage-affordability application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// RateDecimals is the number of decimals interest rates are rounded to
	// when expanding a rate axis, keeping labels stable across grids
	RateDecimals = 4

	// DefaultPMICutoff is the default loan-to-value threshold above which
	// private mortgage insurance applies
	DefaultPMICutoff = 0.80

	// DefaultTermYears is the default loan term
	DefaultTermYears = 30
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// RateTolerance is the tolerance for comparing interest rate fractions
	RateTolerance = 1e-9

	// MaxAxisValues caps how many values a single grid axis may expand to
	MaxAxisValues = 500

	// SuspiciousRateBound flags rate inputs that look like percent points
	// rather than fractions (0.25 means 25% annual interest)
	SuspiciousRateBound = 0.25

	// MaxPrettyColumns is the widest price axis the pretty table renders
	// comfortably on a terminal
	MaxPrettyColumns = 16
)

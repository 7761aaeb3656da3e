// Package constants provides shared constants for the nomina application.
package constants

// Calculation defaults
const (
	// DefaultYear is the legal-constants year used when none is configured.
	DefaultYear = 2026

	// DefaultKitCost is the estimated cost of one work-attire kit.
	DefaultKitCost = 180000.0

	// DaysPerMonth is the fixed commercial month used for daily rates.
	DaysPerMonth = 30

	// HoursPerDay is the fixed working day used for hourly rates.
	HoursPerDay = 8

	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// KitsPerYear is the number of attire kits provisioned each year.
	KitsPerYear = 3
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatXLSX is the spreadsheet output format
	OutputFormatXLSX = "xlsx"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// ReportFilePrefix prefixes exported report file names (payroll_2026.csv).
	ReportFilePrefix = "payroll_"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum request or upload size (1 MB)
	DefaultMaxUploadSizeBytes int64 = 1024 * 1024
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// MaxDaysWorked is the upper bound for days worked in one period.
	MaxDaysWorked = 30
)

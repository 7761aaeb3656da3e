// Package legal holds the statutory constants a payroll calculation depends
// on. One constant set exists per year; the known years are embedded as YAML
// documents and any other year can be supplied as a file with the same shape.
package legal

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MaxRiskClass is the highest accident-insurance (ARL) risk class.
const MaxRiskClass = 5

const (
	defaultAllowanceWageMultiple = 2
	defaultExemptionWageMultiple = 10
)

//go:embed data/*.yaml
var embedded embed.FS

// ErrUnknownYear is returned when no constant set is embedded for a year.
var ErrUnknownYear = errors.New("no legal constants for year")

// Constants is one year's statutory values. It is a plain value: copies
// share nothing, so a calculation never observes a change made elsewhere.
type Constants struct {
	Year               int     `json:"year"`
	MinimumWage        float64 `json:"minimumWage"`
	TransportAllowance float64 `json:"transportAllowance"`
	// TaxUnitValue is informational only; no calculation uses it.
	TaxUnitValue     float64 `json:"taxUnitValue"`
	AllowanceWageCap float64 `json:"allowanceWageCap"`
	ExemptionWageCap float64 `json:"exemptionWageCap"`
	// RiskClassRates holds the ARL rate for class i+1 at index i.
	RiskClassRates [MaxRiskClass]float64 `json:"riskClassRates"`
}

type document struct {
	Year                  int             `yaml:"year"`
	MinimumWage           float64         `yaml:"minimumWage"`
	TransportAllowance    float64         `yaml:"transportAllowance"`
	TaxUnitValue          float64         `yaml:"taxUnitValue"`
	AllowanceWageMultiple float64         `yaml:"allowanceWageMultiple"`
	ExemptionWageMultiple float64         `yaml:"exemptionWageMultiple"`
	RiskClassRates        map[int]float64 `yaml:"riskClassRates"`
}

// NormalizeRiskClass maps any class outside 1..MaxRiskClass to class 1.
func NormalizeRiskClass(class int) int {
	if class < 1 || class > MaxRiskClass {
		return 1
	}
	return class
}

// RiskRate returns the ARL rate for a risk class after normalization.
func (c Constants) RiskRate(class int) float64 {
	return c.RiskClassRates[NormalizeRiskClass(class)-1]
}

// Parse decodes and validates a constants document.
func Parse(data []byte) (Constants, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Constants{}, fmt.Errorf("failed to parse legal constants: %w", err)
	}
	return doc.constants()
}

// LoadFile reads a constants document from disk.
func LoadFile(filePath string) (Constants, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Constants{}, fmt.Errorf("failed to read legal constants %s: %w", filePath, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Constants{}, fmt.Errorf("%s: %w", filePath, err)
	}
	return c, nil
}

// ForYear returns the embedded constant set for a year.
func ForYear(year int) (Constants, error) {
	data, err := embedded.ReadFile(path.Join("data", strconv.Itoa(year)+".yaml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Constants{}, fmt.Errorf("%w %d", ErrUnknownYear, year)
		}
		return Constants{}, err
	}
	c, err := Parse(data)
	if err != nil {
		return Constants{}, err
	}
	if c.Year != year {
		return Constants{}, fmt.Errorf("embedded legal constants for %d declare year %d", year, c.Year)
	}
	return c, nil
}

// Resolve loads constants from filePath when it is set, otherwise the
// embedded set for year.
func Resolve(year int, filePath string) (Constants, error) {
	if strings.TrimSpace(filePath) != "" {
		return LoadFile(filePath)
	}
	return ForYear(year)
}

// Years lists the embedded years in ascending order.
func Years() []int {
	entries, err := embedded.ReadDir("data")
	if err != nil {
		return nil
	}
	years := make([]int, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".yaml")
		if year, err := strconv.Atoi(name); err == nil {
			years = append(years, year)
		}
	}
	sort.Ints(years)
	return years
}

func (doc document) constants() (Constants, error) {
	if doc.MinimumWage <= 0 {
		return Constants{}, fmt.Errorf("minimumWage must be positive, got %v", doc.MinimumWage)
	}
	if doc.TransportAllowance <= 0 {
		return Constants{}, fmt.Errorf("transportAllowance must be positive, got %v", doc.TransportAllowance)
	}

	allowanceMultiple := doc.AllowanceWageMultiple
	if allowanceMultiple == 0 {
		allowanceMultiple = defaultAllowanceWageMultiple
	}
	exemptionMultiple := doc.ExemptionWageMultiple
	if exemptionMultiple == 0 {
		exemptionMultiple = defaultExemptionWageMultiple
	}
	if allowanceMultiple < 0 || exemptionMultiple < 0 {
		return Constants{}, fmt.Errorf("wage multiples must not be negative")
	}

	c := Constants{
		Year:               doc.Year,
		MinimumWage:        doc.MinimumWage,
		TransportAllowance: doc.TransportAllowance,
		TaxUnitValue:       doc.TaxUnitValue,
		AllowanceWageCap:   allowanceMultiple * doc.MinimumWage,
		ExemptionWageCap:   exemptionMultiple * doc.MinimumWage,
	}
	for class := 1; class <= MaxRiskClass; class++ {
		rate, ok := doc.RiskClassRates[class]
		if !ok {
			return Constants{}, fmt.Errorf("missing ARL rate for risk class %d", class)
		}
		if rate < 0 || rate >= 1 {
			return Constants{}, fmt.Errorf("ARL rate for risk class %d must be in [0, 1), got %v", class, rate)
		}
		c.RiskClassRates[class-1] = rate
	}
	return c, nil
}

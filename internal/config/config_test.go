package config

import (
	"strings"
	"testing"

	"github.com/iwvelando/nomina/pkg/constants"
)

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
		{
			name:       "Full config file",
			configPath: "testdata/config.yaml",
			wantError:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if config == nil {
				t.Errorf("LoadConfiguration() returned nil config")
			}
		})
	}
}

func TestLoadConfigurationValues(t *testing.T) {
	conf, err := LoadConfiguration("testdata/config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Year != 2026 {
		t.Errorf("Year = %d, expected 2026", conf.Year)
	}
	if !conf.Calculation.AllowanceApplies || conf.Calculation.ExemptionApplies {
		t.Errorf("unexpected calculation switches: %+v", conf.Calculation)
	}
	if conf.Calculation.KitCost != 200000 {
		t.Errorf("KitCost = %v, expected 200000", conf.Calculation.KitCost)
	}
	if !conf.View.IncludeSocialSecurity || conf.View.IncludeBenefits {
		t.Errorf("unexpected view toggles: %+v", conf.View)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("unexpected logging config: %+v", conf.Logging)
	}
	if conf.Output.Format != constants.OutputFormatCSV {
		t.Errorf("Output.Format = %q, expected csv", conf.Output.Format)
	}

	if len(conf.Employees) != 3 {
		t.Fatalf("expected 3 employees, got %d", len(conf.Employees))
	}

	second := conf.Employees[1]
	if second.Name != "Empleado 2" {
		t.Errorf("Name = %q, expected Empleado 2", second.Name)
	}
	if second.HolidayOvertimeHours == nil || *second.HolidayOvertimeHours != 5.5 {
		t.Errorf("HolidayOvertimeHours = %v, expected 5.5", second.HolidayOvertimeHours)
	}
	if second.RiskClass == nil || *second.RiskClass != 3 {
		t.Errorf("RiskClass = %v, expected 3", second.RiskClass)
	}
	if second.NighttimeOvertimeHours != nil {
		t.Errorf("NighttimeOvertimeHours should be missing, got %v", *second.NighttimeOvertimeHours)
	}

	if conf.Employees[2].BaseSalary != nil {
		t.Errorf("null base salary should decode as missing, got %v", *conf.Employees[2].BaseSalary)
	}
}

func TestLoadConfigurationDefaults(t *testing.T) {
	conf, err := LoadConfiguration("testdata/minimal.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Year != constants.DefaultYear {
		t.Errorf("Year = %d, expected %d", conf.Year, constants.DefaultYear)
	}
	if !conf.Calculation.AllowanceApplies || !conf.Calculation.ExemptionApplies {
		t.Errorf("calculation switches should default to true: %+v", conf.Calculation)
	}
	if conf.Calculation.KitCost != constants.DefaultKitCost {
		t.Errorf("KitCost = %v, expected %v", conf.Calculation.KitCost, constants.DefaultKitCost)
	}
	if !conf.View.IncludeSocialSecurity || !conf.View.IncludeBenefits {
		t.Errorf("view toggles should default to true: %+v", conf.View)
	}
	if conf.Output.Format != constants.OutputFormatPretty {
		t.Errorf("Output.Format = %q, expected pretty", conf.Output.Format)
	}
	if conf.Roster.File != "roster.csv" {
		t.Errorf("Roster.File = %q, expected roster.csv", conf.Roster.File)
	}
}

func TestConstantsAndOptions(t *testing.T) {
	conf, err := LoadConfiguration("testdata/config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	lc, err := conf.Constants()
	if err != nil {
		t.Fatalf("Constants() error = %v", err)
	}
	if lc.MinimumWage != 1750905 {
		t.Errorf("MinimumWage = %v, expected 1750905", lc.MinimumWage)
	}

	opts := conf.RosterOptions(lc)
	if opts.Calculation != conf.Calculation || opts.View != conf.View || opts.Constants != lc {
		t.Errorf("RosterOptions() = %+v does not mirror configuration", opts)
	}

	conf.Year = 1990
	if _, err := conf.Constants(); err == nil {
		t.Error("expected error for a year with no constants")
	}
}

func TestReportFileName(t *testing.T) {
	conf := &Configuration{Year: 2026}
	if got := conf.ReportFileName("csv"); got != "payroll_2026.csv" {
		t.Errorf("ReportFileName(csv) = %q, expected payroll_2026.csv", got)
	}
}

func TestValidateConfiguration(t *testing.T) {
	conf, err := LoadConfiguration("testdata/warnings.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	warnings := conf.ValidateConfiguration()
	joined := strings.Join(warnings, "\n")
	for _, want := range []string{"kitCost is negative", "days worked 31.00", "negative night surcharge hours"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected warning containing %q, got %v", want, warnings)
		}
	}

	empty := &Configuration{}
	if warnings := empty.ValidateConfiguration(); len(warnings) != 1 {
		t.Errorf("expected a single no-employees warning, got %v", warnings)
	}
}

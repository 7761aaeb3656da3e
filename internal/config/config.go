// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/nomina/internal/roster"
	"github.com/iwvelando/nomina/pkg/constants"
	"github.com/iwvelando/nomina/pkg/legal"
	"github.com/iwvelando/nomina/pkg/payroll"
	"github.com/iwvelando/nomina/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for a payroll run.
type Configuration struct {
	Year               int                      `yaml:"year" mapstructure:"year"`
	LegalConstantsFile string                   `yaml:"legalConstantsFile,omitempty" mapstructure:"legalConstantsFile"`
	Calculation        payroll.Config           `yaml:"calculation" mapstructure:"calculation"`
	View               roster.ViewOptions       `yaml:"view" mapstructure:"view"`
	Roster             RosterConfig             `yaml:"roster,omitempty" mapstructure:"roster"`
	Employees          []payroll.EmployeeRecord `yaml:"employees,omitempty" mapstructure:"employees"`
	Logging            LoggingConfig            `yaml:"logging,omitempty" mapstructure:"logging"`
	Output             OutputConfig             `yaml:"output,omitempty" mapstructure:"output"`
}

// RosterConfig points at an external roster file (csv or xlsx). When set,
// its rows are appended after any inline employees.
type RosterConfig struct {
	File string `yaml:"file,omitempty" mapstructure:"file"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv, json, xlsx
	File   string `yaml:"file,omitempty" mapstructure:"file"`     // optional; stdout when empty
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("year", constants.DefaultYear)
	v.SetDefault("calculation.allowanceApplies", true)
	v.SetDefault("calculation.exemptionApplies", true)
	v.SetDefault("calculation.kitCost", constants.DefaultKitCost)
	v.SetDefault("view.includeSocialSecurity", true)
	v.SetDefault("view.includeBenefits", true)
	v.SetDefault("output.format", constants.OutputFormatPretty)
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Each call uses its own viper instance.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(configPath)
	v.SetEnvPrefix("NOMINA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Constants resolves the legal constants for this configuration: the file
// override when set, otherwise the embedded set for Year.
func (c *Configuration) Constants() (legal.Constants, error) {
	return legal.Resolve(c.Year, c.LegalConstantsFile)
}

// RosterOptions bundles the calculation switches and view toggles with the
// resolved constants for one aggregation pass.
func (c *Configuration) RosterOptions(lc legal.Constants) roster.Options {
	return roster.Options{
		Calculation: c.Calculation,
		View:        c.View,
		Constants:   lc,
	}
}

// ReportFileName is the default export name for a format, e.g. payroll_2026.csv.
func (c *Configuration) ReportFileName(format string) string {
	return constants.ReportFilePrefix + strconv.Itoa(c.Year) + "." + format
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	if c.Calculation.KitCost < 0 {
		warnings = append(warnings, fmt.Sprintf("kitCost is negative (%.2f); attire-kit provisions will be negative", c.Calculation.KitCost))
	}
	if len(c.Employees) == 0 && strings.TrimSpace(c.Roster.File) == "" {
		warnings = append(warnings, "no employees configured and no roster file set")
	}
	warnings = append(warnings, validation.ValidateRoster(c.Employees)...)
	return warnings
}

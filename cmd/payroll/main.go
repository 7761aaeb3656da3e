package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iwvelando/nomina/internal/config"
	"github.com/iwvelando/nomina/internal/logging"
	"github.com/iwvelando/nomina/internal/roster"
	"github.com/iwvelando/nomina/pkg/constants"
	"github.com/iwvelando/nomina/pkg/output"
	"github.com/iwvelando/nomina/pkg/rosterio"
	"github.com/iwvelando/nomina/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	rosterFile := flag.String("roster", "", "roster file override (csv or xlsx)")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json, xlsx")
	outputFile := flag.String("output", "", "write the report to this file instead of stdout")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	year := flag.Int("year", 0, "legal constants year override")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	// Initialize logging based on config and CLI override
	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *year > 0 {
		conf.Year = *year
	}
	if *rosterFile != "" {
		conf.Roster.File = *rosterFile
	}

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	lc, err := conf.Constants()
	if err != nil {
		logger.Fatal("failed to resolve legal constants",
			zap.String("op", "main"),
			zap.Int("year", conf.Year),
			zap.Error(err),
		)
	}

	records := conf.Employees
	if strings.TrimSpace(conf.Roster.File) != "" {
		fileRecords, err := rosterio.ReadFile(conf.Roster.File)
		if err != nil {
			logger.Fatal("failed to read roster file",
				zap.String("op", "main"),
				zap.String("file", conf.Roster.File),
				zap.Error(err),
			)
		}
		for _, warning := range validation.ValidateRoster(fileRecords) {
			logger.Warn("Roster warning: "+warning,
				zap.String("op", "main"),
				zap.String("file", conf.Roster.File),
			)
		}
		records = append(records, fileRecords...)
	}

	report := roster.Aggregate(logger, records, conf.RosterOptions(lc))

	// Spreadsheets never go to a terminal.
	destination := conf.Output.File
	if *outputFile != "" {
		destination = *outputFile
	}
	if destination == "" && outputFormat == constants.OutputFormatXLSX {
		destination = conf.ReportFileName(outputFormat)
	}

	if err := writeReport(destination, outputFormat, report); err != nil {
		logger.Fatal("failed to write report",
			zap.String("op", "main"),
			zap.String("format", outputFormat),
			zap.String("file", destination),
			zap.Error(err),
		)
	}
	if destination != "" {
		logger.Info("report written",
			zap.String("op", "main"),
			zap.String("file", destination),
		)
	}
}

func writeReport(destination, format string, report roster.Report) (err error) {
	var w io.Writer = os.Stdout
	if destination != "" {
		file, createErr := os.Create(destination)
		if createErr != nil {
			return fmt.Errorf("failed to create %s: %w", destination, createErr)
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()
		w = file
	}

	switch format {
	case constants.OutputFormatCSV:
		return output.CsvFormat(w, report)
	case constants.OutputFormatJSON:
		return output.JSONFormat(w, report)
	case constants.OutputFormatXLSX:
		return output.XlsxFormat(w, report)
	default:
		return output.PrettyFormat(w, report)
	}
}

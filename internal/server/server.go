package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iwvelando/nomina/internal/roster"
	"github.com/iwvelando/nomina/pkg/constants"
	"github.com/iwvelando/nomina/pkg/legal"
	"github.com/iwvelando/nomina/pkg/payroll"
	"github.com/iwvelando/nomina/pkg/payslip"
	"github.com/iwvelando/nomina/pkg/rosterio"
	"github.com/iwvelando/nomina/pkg/validation"
	"go.uber.org/zap"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// Options configures the HTTP handler.
type Options struct {
	MaxUploadSize int64
	Version       string
	// DefaultYear applies to requests that omit a year.
	DefaultYear int
	// LegalConstants replace or extend the embedded sets, keyed by their Year.
	LegalConstants []legal.Constants
}

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
	defaultYear   int
	legal         map[int]legal.Constants
}

// NewHandler constructs the HTTP handler that serves the payroll API.
func NewHandler(logger *zap.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	maxUploadSize := opts.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	defaultYear := opts.DefaultYear
	if defaultYear <= 0 {
		defaultYear = constants.DefaultYear
	}

	overrides := make(map[int]legal.Constants, len(opts.LegalConstants))
	for _, lc := range opts.LegalConstants {
		overrides[lc.Year] = lc
	}

	h := &handler{
		logger:        logger,
		maxUploadSize: maxUploadSize,
		version:       trimmedVersion,
		defaultYear:   defaultYear,
		legal:         overrides,
	}

	router := chi.NewRouter()
	router.Use(requestID)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", h.handleHealth)
	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.handleVersion)
		r.Get("/legal/{year}", h.handleLegal)

		r.Route("/payroll", func(r chi.Router) {
			r.Post("/", h.handlePayroll)
			r.Post("/upload", h.handleUpload)
			r.Post("/export", h.handleExport)
			r.Post("/payslip", h.handlePayslip)
		})
	})

	return router
}

type calculationRequest struct {
	AllowanceApplies *bool    `json:"allowanceApplies"`
	ExemptionApplies *bool    `json:"exemptionApplies"`
	KitCost          *float64 `json:"kitCost"`
}

// config fills unset switches with the same defaults the CLI uses.
func (c calculationRequest) config() payroll.Config {
	cfg := payroll.Config{AllowanceApplies: true, ExemptionApplies: true, KitCost: constants.DefaultKitCost}
	if c.AllowanceApplies != nil {
		cfg.AllowanceApplies = *c.AllowanceApplies
	}
	if c.ExemptionApplies != nil {
		cfg.ExemptionApplies = *c.ExemptionApplies
	}
	if c.KitCost != nil {
		cfg.KitCost = *c.KitCost
	}
	return cfg
}

type viewRequest struct {
	IncludeSocialSecurity *bool `json:"includeSocialSecurity"`
	IncludeBenefits       *bool `json:"includeBenefits"`
}

func (v viewRequest) options() roster.ViewOptions {
	view := roster.ViewOptions{IncludeSocialSecurity: true, IncludeBenefits: true}
	if v.IncludeSocialSecurity != nil {
		view.IncludeSocialSecurity = *v.IncludeSocialSecurity
	}
	if v.IncludeBenefits != nil {
		view.IncludeBenefits = *v.IncludeBenefits
	}
	return view
}

type payrollRequest struct {
	Year        int                      `json:"year"`
	Employees   []payroll.EmployeeRecord `json:"employees"`
	Calculation calculationRequest       `json:"calculation"`
	View        viewRequest              `json:"view"`
}

type payslipRequest struct {
	Year        int                    `json:"year"`
	Employee    payroll.EmployeeRecord `json:"employee"`
	Calculation calculationRequest     `json:"calculation"`
}

type payrollResponse struct {
	Rows      []roster.Row   `json:"rows"`
	Summary   roster.Summary `json:"summary"`
	CSV       string         `json:"csv"`
	Warnings  []string       `json:"warnings,omitempty"`
	Duration  string         `json:"duration"`
	Year      int            `json:"year"`
	RequestID string         `json:"requestId,omitempty"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleLegal(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleLegal"

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("invalid year %q", chi.URLParam(r, "year")), op)
		return
	}

	lc, err := h.constants(year)
	if err != nil {
		h.respondLegalError(w, err, op)
		return
	}
	h.writeJSON(w, http.StatusOK, lc)
}

func (h *handler) handlePayroll(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePayroll"
	start := time.Now()

	var req payrollRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}

	h.runPayroll(w, r, req, start, op)
}

func (h *handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleUpload"
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, "missing roster file", op)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	format, err := rosterio.FormatFromPath(header.Filename)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	records, err := rosterio.Read(format, file)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to read roster: %v", err), op)
		return
	}

	req, err := formRequest(r)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	req.Employees = records

	h.runPayroll(w, r, req, start, op)
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExport"

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = rosterio.FormatCSV
	}
	if format != rosterio.FormatCSV && format != rosterio.FormatXLSX {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("unsupported export format %q", format), op)
		return
	}

	var req payrollRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}

	report, year, ok := h.aggregate(w, r, req, op)
	if !ok {
		return
	}

	var buf bytes.Buffer
	var err error
	contentType := contentTypeCSV
	if format == rosterio.FormatXLSX {
		contentType = contentTypeXLSX
		err = rosterio.WriteXLSX(&buf, report)
	} else {
		err = rosterio.WriteCSV(&buf, report)
	}
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to export report: %v", err), op)
		return
	}

	fileName := fmt.Sprintf("%s%d.%s", constants.ReportFilePrefix, year, format)
	h.writeFile(w, contentType, fileName, buf.Bytes(), op)
}

func (h *handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePayslip"

	var req payslipRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}

	year := h.year(req.Year)
	lc, err := h.constants(year)
	if err != nil {
		h.respondLegalError(w, err, op)
		return
	}

	in := req.Employee.Sanitize()
	if !in.Payable() {
		h.respondErrorWithOp(w, http.StatusBadRequest, "base salary must be positive to issue a payslip", op)
		return
	}

	result := payroll.Calculate(in, req.Calculation.config(), lc)

	var buf bytes.Buffer
	if err := payslip.Write(&buf, result, year); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to render payslip: %v", err), op)
		return
	}

	h.writeFile(w, contentTypePDF, payslipFileName(result.Name, year), buf.Bytes(), op)
}

func (h *handler) runPayroll(w http.ResponseWriter, r *http.Request, req payrollRequest, start time.Time, op string) {
	report, year, ok := h.aggregate(w, r, req, op)
	if !ok {
		return
	}

	csvData, err := rosterio.CSVString(report)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to generate CSV: %v", err), op)
		return
	}

	h.writeJSON(w, http.StatusOK, payrollResponse{
		Rows:      report.Rows,
		Summary:   report.Summary,
		CSV:       csvData,
		Warnings:  validation.ValidateRoster(req.Employees),
		Duration:  time.Since(start).String(),
		Year:      year,
		RequestID: RequestIDFromContext(r.Context()),
	})
}

func (h *handler) aggregate(w http.ResponseWriter, r *http.Request, req payrollRequest, op string) (roster.Report, int, bool) {
	year := h.year(req.Year)
	lc, err := h.constants(year)
	if err != nil {
		h.respondLegalError(w, err, op)
		return roster.Report{}, 0, false
	}

	report := roster.Aggregate(h.logger.With(zap.String("requestId", RequestIDFromContext(r.Context()))), req.Employees, roster.Options{
		Calculation: req.Calculation.config(),
		View:        req.View.options(),
		Constants:   lc,
	})
	return report, year, true
}

func (h *handler) year(requested int) int {
	if requested <= 0 {
		return h.defaultYear
	}
	return requested
}

func (h *handler) constants(year int) (legal.Constants, error) {
	if lc, ok := h.legal[year]; ok {
		return lc, nil
	}
	return legal.ForYear(year)
}

func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize), op)
		case errors.Is(err, io.EOF):
			h.respondErrorWithOp(w, http.StatusBadRequest, "request body is empty", op)
		default:
			h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON payload: %v", err), op)
		}
		return false
	}
	return true
}

func (h *handler) respondLegalError(w http.ResponseWriter, err error, op string) {
	if errors.Is(err, legal.ErrUnknownYear) {
		h.respondErrorWithOp(w, http.StatusNotFound, err.Error(), op)
		return
	}
	h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("payroll request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

// writeJSON encodes before sending headers so an unencodable payload becomes
// a 500 instead of an empty 200.
func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Int("status", status),
			zap.Error(err),
		)
		buf.Reset()
		status = http.StatusInternalServerError
		// A map of strings always encodes.
		_ = json.NewEncoder(&buf).Encode(map[string]string{"error": fmt.Sprintf("failed to encode response: %v", err)})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write JSON response", zap.String("op", "server.writeJSON"), zap.Error(err))
	}
}

func (h *handler) writeFile(w http.ResponseWriter, contentType, fileName string, data []byte, op string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write file response",
			zap.String("op", op),
			zap.String("file", fileName),
			zap.Error(err),
		)
	}
}

// formRequest reads the calculation switches and view toggles of a
// multipart upload. Absent fields keep their defaults.
func formRequest(r *http.Request) (payrollRequest, error) {
	var req payrollRequest

	if raw := strings.TrimSpace(r.FormValue("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("invalid year %q", raw)
		}
		req.Year = year
	}

	req.Calculation.AllowanceApplies = formBool(r, "allowanceApplies")
	req.Calculation.ExemptionApplies = formBool(r, "exemptionApplies")
	req.View.IncludeSocialSecurity = formBool(r, "includeSocialSecurity")
	req.View.IncludeBenefits = formBool(r, "includeBenefits")

	if raw := strings.TrimSpace(r.FormValue("kitCost")); raw != "" {
		kit, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, fmt.Errorf("invalid kitCost %q", raw)
		}
		req.Calculation.KitCost = &kit
	}

	return req, nil
}

func formBool(r *http.Request, key string) *bool {
	if _, present := r.MultipartForm.Value[key]; !present {
		return nil
	}
	value := coerceBool(r.FormValue(key))
	return &value
}

// coerceBool accepts the usual true/false spellings plus "on" from HTML
// checkboxes. Anything unparseable is false.
func coerceBool(value string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	switch trimmed {
	case "":
		return false
	case "on", "yes", "si", "sí":
		return true
	}
	if parsed, err := strconv.ParseBool(trimmed); err == nil {
		return parsed
	}
	if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return parsed != 0
	}
	return false
}

func payslipFileName(name string, year int) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '-', r == '_':
			return '_'
		}
		return -1
	}, strings.TrimSpace(name))
	if slug == "" {
		slug = "employee"
	}
	return fmt.Sprintf("payslip_%s_%d.pdf", slug, year)
}

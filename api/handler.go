package api

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/extract"
	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/models"
	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/report"
)

const (
	MaxUploadSize = 10 * 1024 * 1024 // 10MB cap on the whole request body
	ServiceName   = "invoice-qc-service"
)

// Handler handles HTTP requests for invoice validation and extraction
type Handler struct {
	config    *models.Config
	log       zerolog.Logger
	extractor *extract.Extractor
}

// NewHandler creates a new API handler
func NewHandler(config *models.Config, log zerolog.Logger) *Handler {
	return &Handler{
		config:    config,
		log:       log,
		extractor: extract.New(log),
	}
}

// SetupRoutes configures the HTTP routes
func (h *Handler) SetupRoutes() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", h.Health).Methods("GET")
	router.HandleFunc("/validate-json", h.ValidateJSON).Methods("POST")
	router.HandleFunc("/extract-and-validate", h.ExtractAndValidate).Methods("POST")

	return router
}

// HealthResponse represents the health check response structure
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Health always reports healthy while the process is serving.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: ServiceName,
	})
}

// ValidateJSON validates a JSON array of invoices and returns the QC
// report. A body that does not decode into the invoice shape is a 400.
func (h *Handler) ValidateJSON(w http.ResponseWriter, r *http.Request) {
	var invoices []models.Invoice
	if err := json.NewDecoder(r.Body).Decode(&invoices); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid invoice payload: "+err.Error())
		return
	}

	qcReport := report.Build(invoices)
	h.log.Info().
		Int("total", qcReport.TotalInvoices).
		Int("valid", qcReport.ValidInvoices).
		Msg("validated invoice batch")

	h.sendJSON(w, http.StatusOK, qcReport)
}

// ExtractAndValidate accepts one or more uploaded PDF files, extracts
// each into an invoice record and validates the whole batch. Unlike
// directory mode, a single unreadable upload fails the request: the
// caller gets a 500 and no partial results.
func (h *Handler) ExtractAndValidate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		h.sendError(w, http.StatusBadRequest, "file too large or invalid form data")
		return
	}

	var headers []*multipart.FileHeader
	for _, fieldHeaders := range r.MultipartForm.File {
		headers = append(headers, fieldHeaders...)
	}
	if len(headers) == 0 {
		h.sendError(w, http.StatusBadRequest, "no files provided")
		return
	}

	invoices := make([]models.Invoice, 0, len(headers))
	for _, header := range headers {
		invoice, err := h.extractUpload(header)
		if err != nil {
			h.log.Error().Err(err).Str("file", header.Filename).Msg("extraction failed")
			h.sendError(w, http.StatusInternalServerError, err.Error())
			return
		}
		invoices = append(invoices, invoice)
	}

	qcReport := report.Build(invoices)
	h.log.Info().
		Int("files", len(headers)).
		Msg("extracted and validated upload batch")

	h.sendJSON(w, http.StatusOK, qcReport)
}

// extractUpload spools one uploaded PDF to a uniquely named temp file,
// extracts it and removes the file again.
func (h *Handler) extractUpload(header *multipart.FileHeader) (models.Invoice, error) {
	file, err := header.Open()
	if err != nil {
		return models.Invoice{}, fmt.Errorf("failed to open upload %s: %w", header.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("failed to read upload %s: %w", header.Filename, err)
	}

	filename := fmt.Sprintf("%s_%s.pdf",
		time.Now().Format("20060102_150405"),
		uuid.New().String()[:8],
	)
	tmpPath := filepath.Join(os.TempDir(), filename)
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return models.Invoice{}, fmt.Errorf("failed to write temp file: %w", err)
	}
	defer os.Remove(tmpPath)

	return h.extractor.FromFile(tmpPath)
}

// sendJSON writes a JSON response
func (h *Handler) sendJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// sendError sends an error response
func (h *Handler) sendError(w http.ResponseWriter, statusCode int, message string) {
	h.sendJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

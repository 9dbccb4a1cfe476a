package http

import (
	"encoding/json"
	"net/http"

	"sales-report/internal/reports"

	"github.com/go-chi/chi/v5"
)

const urlParamReportID = "reportID"

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type createReportHandler struct {
	reportService reports.ReportService
}

func NewCreateReportHandler(reportService reports.ReportService) AppHttpHandler {
	return &createReportHandler{reportService: reportService}
}

// Handle processes POST /reports requests.
func (h *createReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.reportService.Generate(r.Context(), idempotencyKey(r), contentType(r), r.Body)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, report)
	return nil
}

type getReportHandler struct {
	reportService reports.ReportService
}

func NewGetReportHandler(reportService reports.ReportService) AppHttpHandler {
	return &getReportHandler{reportService: reportService}
}

// Handle processes GET /reports/{reportID} requests.
func (h *getReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.reportService.Get(r.Context(), chi.URLParam(r, urlParamReportID))
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, report)
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

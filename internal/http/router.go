package http

import (
	"net/http"

	"sales-report/internal/reports"
	"sales-report/internal/shared/loggers"
	"sales-report/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(reportService reports.ReportService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	createReportHandler := NewCreateReportHandler(reportService)
	getReportHandler := NewGetReportHandler(reportService)

	router.Post("/reports", errorHandlingAdapter(createReportHandler))
	router.Get("/reports/{"+urlParamReportID+"}", errorHandlingAdapter(getReportHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}

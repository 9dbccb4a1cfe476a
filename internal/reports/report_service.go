package reports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"sales-report/internal/models"
	"sales-report/internal/shared/loggers"
	"sales-report/internal/shared/metrics"
	"sales-report/internal/shared/svcerrors"
	"sales-report/internal/shared/ulid"
	"sales-report/internal/shared/validators"
	"sales-report/internal/stores"
)

//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	// Generate decodes sales data in the given format, analyzes it and stores the report.
	// A blank reportID gets a fresh ULID.
	Generate(ctx context.Context, reportID string, format string, r io.Reader) (*models.SalesReport, error)
	// Get loads a previously generated report.
	Get(ctx context.Context, reportID string) (*models.SalesReport, error)
}

type reportService struct {
	options      Options
	reportStore  stores.ReportStore
	maxBodyBytes int64
	validate     *validators.Validate
	now          func() time.Time
}

func NewReportService(options Options, reportStore stores.ReportStore, maxBodyBytes int64) ReportService {
	return &reportService{
		options:      options,
		reportStore:  reportStore,
		maxBodyBytes: maxBodyBytes,
		validate:     validators.New(),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *reportService) Generate(ctx context.Context, reportID string, format string, r io.Reader) (*models.SalesReport, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started generating report with id: %q, format: %s", reportID, format)

	report, err := s.generate(ctx, reportID, format, r)
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			metricReportGeneratedTotal.WithLabelValues(svcErr.Code).Inc()
		}
		return nil, err
	}

	metricReportGeneratedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricReportSellers.Observe(float64(len(report.Rows)))
	logger.Info().
		Str(loggers.FieldReportID, report.ReportID).
		Int(loggers.FieldSellerCount, len(report.Rows)).
		Msg("report generated")
	return report, nil
}

func (s *reportService) generate(ctx context.Context, reportID string, format string, r io.Reader) (*models.SalesReport, error) {
	generatedAt := s.now()

	reportID = strings.TrimSpace(reportID)
	if reportID == "" {
		reportID = ulid.NewULIDAt(generatedAt)
	} else if err := s.validate.Var(reportID, validators.TagReportID); err != nil {
		return nil, errInvalidInput("report id must be 1-64 characters of letters, digits, '-' or '_'", err)
	}

	if r == nil {
		return nil, errInvalidInput("empty request body", nil)
	}
	buf, err := s.readWithLimit(r)
	if err != nil {
		return nil, err
	}

	data, err := decodeSalesData(format, buf)
	if err != nil {
		return nil, err
	}

	rows, err := AnalyzeSalesData(data, s.options)
	if err != nil {
		return nil, err
	}

	report := &models.SalesReport{
		ReportID:    reportID,
		GeneratedAt: generatedAt,
		Rows:        rows,
	}
	if err := s.reportStore.Create(ctx, report); err != nil {
		if errors.Is(err, stores.ErrReportAlreadyExists) {
			return nil, errReportAlreadyExists(err)
		}
		return nil, errInternalReportStoreFailed(err)
	}
	return report, nil
}

func (s *reportService) Get(ctx context.Context, reportID string) (*models.SalesReport, error) {
	reportID = strings.TrimSpace(reportID)
	if err := s.validate.Var(reportID, validators.TagReportID); err != nil {
		return nil, errInvalidInput("invalid report id", err)
	}

	report, err := s.reportStore.Get(ctx, reportID)
	if err != nil {
		if errors.Is(err, stores.ErrReportNotFound) {
			return nil, errReportNotFound(err)
		}
		return nil, errInternalReportStoreFailed(err)
	}
	return report, nil
}

// readWithLimit reads all of r, failing once more than maxBodyBytes arrive.
func (s *reportService) readWithLimit(r io.Reader) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, s.maxBodyBytes+1))
	if err != nil {
		return nil, errInvalidInput("unreadable request body", err)
	}
	if int64(len(buf)) > s.maxBodyBytes {
		return nil, errInvalidInput(fmt.Sprintf("sales data too large: must be <= %d bytes", s.maxBodyBytes), nil)
	}
	return buf, nil
}

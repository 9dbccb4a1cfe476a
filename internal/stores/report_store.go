package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"sales-report/internal/models"
	"sales-report/internal/shared/filestorages"
)

var (
	ErrReportAlreadyExists = errors.New("report already exists")
	ErrReportNotFound      = errors.New("report not found")
)

// ReportStore persists generated sales reports, one JSON document per report id.
//
// Create never overwrites: the file storage publishes with create-if-not-exists semantics, so two
// requests racing on the same report id (e.g. a retried POST carrying the same Idempotency-Key)
// store exactly one report and the loser gets ErrReportAlreadyExists.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	Create(ctx context.Context, report *models.SalesReport) error
	Get(ctx context.Context, reportID string) (*models.SalesReport, error)
}

type reportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewReportStore(fileStorage filestorages.FileStorage) ReportStore {
	return &reportStore{fileStorage: fileStorage, dir: "reports"}
}

func (s *reportStore) Create(ctx context.Context, report *models.SalesReport) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = s.fileStorage.Put(ctx, s.getKey(report.ReportID), bytes.NewReader(jsonData))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrReportAlreadyExists
		}
		return fmt.Errorf("failed to put report: %w", err)
	}
	return nil
}

func (s *reportStore) Get(ctx context.Context, reportID string) (*models.SalesReport, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(reportID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	var report models.SalesReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}

func (s *reportStore) getKey(reportID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, reportID)
}

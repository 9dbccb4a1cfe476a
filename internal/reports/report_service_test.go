package reports_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"sales-report/internal/models"
	"sales-report/internal/reports"
	"sales-report/internal/shared/svcerrors"
	"sales-report/internal/stores"
	storemocks "sales-report/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSalesDataJSON = `{
	"sellers": [
		{"id": "seller_1", "first_name": "Alexey", "last_name": "Petrov"},
		{"id": "seller_2", "first_name": "Maria", "last_name": "Ivanova"}
	],
	"products": [{"sku": "SKU_A", "purchase_price": 100}],
	"purchase_records": [
		{"seller_id": "seller_2", "items": [{"sku": "SKU_A", "quantity": 3, "sale_price": 200, "discount": 10}]},
		{"seller_id": "seller_1", "items": [{"sku": "SKU_A", "quantity": 1, "sale_price": 150}]}
	]
}`

const testMaxBodyBytes = 1024 * 1024

func TestGenerate_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reportStore := storemocks.NewMockReportStore(ctrl)
	service := reports.NewReportService(reports.DefaultOptions(), reportStore, testMaxBodyBytes)

	var stored *models.SalesReport
	reportStore.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, report *models.SalesReport) error {
			stored = report
			return nil
		})

	report, err := service.Generate(context.Background(), "q1-2026", "application/json", strings.NewReader(testSalesDataJSON))
	require.NoError(t, err)

	assert.Same(t, stored, report)
	assert.Equal(t, "q1-2026", report.ReportID)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Equal(t, []models.ReportRow{
		{
			SellerID:    "seller_2",
			Name:        "Maria Ivanova",
			Revenue:     540,
			Profit:      240,
			SalesCount:  1,
			TopProducts: []models.TopProduct{{SKU: "SKU_A", Quantity: 3}},
			Bonus:       36,
		},
		{
			SellerID:    "seller_1",
			Name:        "Alexey Petrov",
			Revenue:     150,
			Profit:      50,
			SalesCount:  1,
			TopProducts: []models.TopProduct{{SKU: "SKU_A", Quantity: 1}},
			Bonus:       5, // second place wins over last place
		},
	}, report.Rows)
}

func TestGenerate_BlankReportIDGetsULID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reportStore := storemocks.NewMockReportStore(ctrl)
	service := reports.NewReportService(reports.DefaultOptions(), reportStore, testMaxBodyBytes)

	reportStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	report, err := service.Generate(context.Background(), "  ", "json", strings.NewReader(testSalesDataJSON))
	require.NoError(t, err)
	assert.Len(t, report.ReportID, 26)
}

func TestGenerate_ErrInvalidInput(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// store is never reached
	reportStore := storemocks.NewMockReportStore(ctrl)
	service := reports.NewReportService(reports.DefaultOptions(), reportStore, 512)

	tests := []struct {
		name     string
		reportID string
		format   string
		body     string
	}{
		{name: "path-like report id", reportID: "../escape", format: "json", body: testSalesDataJSON},
		{name: "unsupported format", format: "xml", body: `<sales/>`},
		{name: "body too large", format: "json", body: `{"sellers": [` + strings.Repeat(" ", 600) + `]}`},
		{name: "empty products", format: "json", body: `{"sellers": [{"id": "s1"}], "products": [], "purchase_records": [{"seller_id": "s1", "items": []}]}`},
		{name: "missing purchase records", format: "json", body: `{"sellers": [{"id": "s1"}], "products": [{"sku": "A"}]}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			report, err := service.Generate(context.Background(), tt.reportID, tt.format, strings.NewReader(tt.body))

			assert.Nil(t, report)
			require.Error(t, err)
			assert.ErrorIs(t, err, reports.ErrInvalidInput)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok, "expected ServiceError")
			assert.Equal(t, "RPT_1000", svcErr.Code)
			assert.Equal(t, "invalid_argument", svcErr.Category)
		})
	}
}

func TestGenerate_NilBody(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := reports.NewReportService(reports.DefaultOptions(), storemocks.NewMockReportStore(ctrl), testMaxBodyBytes)

	_, err := service.Generate(context.Background(), "", "json", nil)
	assert.ErrorIs(t, err, reports.ErrInvalidInput)
}

func TestGenerate_ErrMissingStrategy(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := reports.NewReportService(reports.Options{Revenue: reports.SimpleRevenue{}}, storemocks.NewMockReportStore(ctrl), testMaxBodyBytes)

	_, err := service.Generate(context.Background(), "", "json", strings.NewReader(testSalesDataJSON))

	require.Error(t, err)
	assert.ErrorIs(t, err, reports.ErrMissingStrategy)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.True(t, svcErr.IsInternalError())
}

func TestGenerate_StoreErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		storeErr         error
		expectedCode     string
		expectedCategory string
	}{
		{
			name:             "report id already used",
			storeErr:         stores.ErrReportAlreadyExists,
			expectedCode:     "RPT_1001",
			expectedCategory: "resource_conflict",
		},
		{
			name:             "storage failure",
			storeErr:         errors.New("disk full"),
			expectedCode:     "RPT_9001",
			expectedCategory: "internal",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reportStore := storemocks.NewMockReportStore(ctrl)
			service := reports.NewReportService(reports.DefaultOptions(), reportStore, testMaxBodyBytes)

			reportStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(tt.storeErr)

			report, err := service.Generate(context.Background(), "dup", "json", bytes.NewReader([]byte(testSalesDataJSON)))

			assert.Nil(t, report)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.storeErr)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, tt.expectedCode, svcErr.Code)
			assert.Equal(t, tt.expectedCategory, svcErr.Category)
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	stored := &models.SalesReport{ReportID: "q1-2026", Rows: []models.ReportRow{{SellerID: "seller_1"}}}

	tests := []struct {
		name         string
		reportID     string
		expectStore  bool
		storeReport  *models.SalesReport
		storeErr     error
		expectedCode string
	}{
		{name: "found", reportID: "q1-2026", expectStore: true, storeReport: stored},
		{name: "not found", reportID: "q2-2026", expectStore: true, storeErr: stores.ErrReportNotFound, expectedCode: "RPT_1002"},
		{name: "storage failure", reportID: "q3-2026", expectStore: true, storeErr: errors.New("io"), expectedCode: "RPT_9001"},
		{name: "invalid id", reportID: "a/b", expectedCode: "RPT_1000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reportStore := storemocks.NewMockReportStore(ctrl)
			service := reports.NewReportService(reports.DefaultOptions(), reportStore, testMaxBodyBytes)
			if tt.expectStore {
				reportStore.EXPECT().Get(gomock.Any(), tt.reportID).Return(tt.storeReport, tt.storeErr)
			}

			report, err := service.Get(context.Background(), tt.reportID)

			if tt.expectedCode == "" {
				require.NoError(t, err)
				assert.Equal(t, stored, report)
				return
			}
			assert.Nil(t, report)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, tt.expectedCode, svcErr.Code)
		})
	}
}

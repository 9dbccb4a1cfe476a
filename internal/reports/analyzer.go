package reports

import (
	"sales-report/internal/models"
)

// AnalyzeSalesData validates data and opts, aggregates every purchase record per seller and returns
// one row per seller ordered by descending profit.
//
// Errors wrap ErrInvalidInput or ErrMissingStrategy; no rows are returned with an error.
func AnalyzeSalesData(data *models.SalesData, opts Options) ([]models.ReportRow, error) {
	if err := validateSalesData(data, opts); err != nil {
		return nil, err
	}

	stats := aggregate(data, opts.Revenue)
	return rank(stats, opts.Bonus), nil
}

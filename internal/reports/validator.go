package reports

import (
	"sales-report/internal/models"
)

// validateSalesData checks the input bundle first, then the strategies.
func validateSalesData(data *models.SalesData, opts Options) error {
	if data == nil {
		return errInvalidInput("sales data is required", nil)
	}
	if data.Sellers == nil || data.Products == nil || data.PurchaseRecords == nil {
		return errInvalidInput("sellers, products and purchase_records must be lists", nil)
	}
	if len(data.Sellers) == 0 {
		return errInvalidInput("sellers cannot be empty", nil)
	}
	if len(data.Products) == 0 {
		return errInvalidInput("products cannot be empty", nil)
	}
	if len(data.PurchaseRecords) == 0 {
		return errInvalidInput("purchase_records cannot be empty", nil)
	}

	if isNilRevenue(opts.Revenue) {
		return errMissingStrategy("revenue")
	}
	if isNilBonus(opts.Bonus) {
		return errMissingStrategy("bonus")
	}
	return nil
}

// A nil func stored in the interface is non-nil but would panic on call.
func isNilRevenue(c RevenueCalculator) bool {
	if c == nil {
		return true
	}
	f, ok := c.(RevenueFunc)
	return ok && f == nil
}

func isNilBonus(c BonusCalculator) bool {
	if c == nil {
		return true
	}
	f, ok := c.(BonusFunc)
	return ok && f == nil
}

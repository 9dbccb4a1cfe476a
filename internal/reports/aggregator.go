package reports

import (
	"sales-report/internal/models"
	"sales-report/internal/shared/money"
)

// aggregate builds one SellerStat per seller (in seller order) and accumulates every purchase record into it.
//
// Records of unknown sellers and line items of unknown skus are skipped without error.
// Revenue is rounded to cents after every addition; profit is summed unrounded and only
// rounded at projection.
func aggregate(data *models.SalesData, revenue RevenueCalculator) []*models.SellerStat {
	stats := make([]*models.SellerStat, 0, len(data.Sellers))
	sellerIndex := make(map[string]*models.SellerStat, len(data.Sellers))
	for _, seller := range data.Sellers {
		stat := models.NewSellerStat(seller)
		stats = append(stats, stat)
		sellerIndex[seller.ID] = stat
	}

	productIndex := make(map[string]models.Product, len(data.Products))
	for _, product := range data.Products {
		productIndex[product.SKU] = product
	}

	for _, record := range data.PurchaseRecords {
		stat, ok := sellerIndex[record.SellerID]
		if !ok {
			continue
		}
		stat.SalesCount++

		for _, item := range record.Items {
			product, ok := productIndex[item.SKU]
			if !ok {
				continue
			}

			cost := product.PurchasePrice * float64(item.Quantity)
			itemRevenue := revenue.ComputeRevenue(item, product)

			stat.Profit += itemRevenue - cost
			stat.Revenue = money.Round2(stat.Revenue + itemRevenue)
			stat.AddSold(item.SKU, item.Quantity)
		}
	}

	return stats
}

package reports

import (
	"sort"

	"sales-report/internal/models"
	"sales-report/internal/shared/money"
)

const topProductsLimit = 10

// rank orders stats by profit (descending, stable on seller order), assigns bonuses by rank and projects report rows.
func rank(stats []*models.SellerStat, bonus BonusCalculator) []models.ReportRow {
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Profit > stats[j].Profit
	})

	total := len(stats)
	rows := make([]models.ReportRow, 0, total)
	for index, stat := range stats {
		sellerBonus := bonus.ComputeBonus(index, total, *stat)

		rows = append(rows, models.ReportRow{
			SellerID:    stat.ID,
			Name:        stat.Name,
			Revenue:     money.Round2(stat.Revenue),
			Profit:      money.Round2(stat.Profit),
			SalesCount:  stat.SalesCount,
			TopProducts: topProducts(stat, topProductsLimit),
			Bonus:       money.Round2(sellerBonus),
		})
	}
	return rows
}

// topProducts returns up to limit products by quantity sold; ties keep first-sold order.
func topProducts(stat *models.SellerStat, limit int) []models.TopProduct {
	sold := stat.SoldInOrder()
	sort.SliceStable(sold, func(i, j int) bool {
		return sold[i].Quantity > sold[j].Quantity
	})
	if len(sold) > limit {
		sold = sold[:limit]
	}
	return sold
}

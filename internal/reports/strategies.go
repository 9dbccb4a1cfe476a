package reports

import (
	"sales-report/internal/models"
	"sales-report/internal/shared/money"
)

// RevenueCalculator computes the revenue of one line item sold at its product card.
type RevenueCalculator interface {
	ComputeRevenue(item models.LineItem, product models.Product) float64
}

// BonusCalculator computes the bonus of the seller at the 0-based rank index among total sellers.
type BonusCalculator interface {
	ComputeBonus(index, total int, seller models.SellerStat) float64
}

// RevenueFunc adapts a plain function to RevenueCalculator.
type RevenueFunc func(item models.LineItem, product models.Product) float64

func (f RevenueFunc) ComputeRevenue(item models.LineItem, product models.Product) float64 {
	return f(item, product)
}

// BonusFunc adapts a plain function to BonusCalculator.
type BonusFunc func(index, total int, seller models.SellerStat) float64

func (f BonusFunc) ComputeBonus(index, total int, seller models.SellerStat) float64 {
	return f(index, total, seller)
}

// Options carries the two calculation strategies of a report run.
type Options struct {
	Revenue RevenueCalculator
	Bonus   BonusCalculator
}

// DefaultOptions returns SimpleRevenue and ProfitRankBonus.
func DefaultOptions() Options {
	return Options{
		Revenue: SimpleRevenue{},
		Bonus:   ProfitRankBonus{},
	}
}

// SimpleRevenue is sale_price * quantity minus the percentage discount, rounded to cents.
type SimpleRevenue struct{}

func (SimpleRevenue) ComputeRevenue(item models.LineItem, _ models.Product) float64 {
	return money.Round2(item.SalePrice * float64(item.Quantity) * (1 - item.Discount/100))
}

// ProfitRankBonus pays a share of profit by rank:
// 15% for first place, 10% for second and third, nothing for last place, 5% for everyone else.
// First place is checked before last place, so a lone seller gets 15%.
// The share is left unrounded; rank rounds it to cents.
type ProfitRankBonus struct{}

func (ProfitRankBonus) ComputeBonus(index, total int, seller models.SellerStat) float64 {
	switch {
	case index == 0:
		return seller.Profit * 0.15
	case index == 1 || index == 2:
		return seller.Profit * 0.1
	case index == total-1:
		return 0
	default:
		return seller.Profit * 0.05
	}
}

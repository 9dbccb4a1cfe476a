package reports

import (
	"testing"

	"sales-report/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSimpleRevenue_ComputeRevenue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		item     models.LineItem
		expected float64
	}{
		{
			name:     "discounted",
			item:     models.LineItem{SKU: "A", Quantity: 3, SalePrice: 200, Discount: 10},
			expected: 540,
		},
		{
			name:     "no discount",
			item:     models.LineItem{SKU: "A", Quantity: 2, SalePrice: 19.99},
			expected: 39.98,
		},
		{
			name:     "full discount",
			item:     models.LineItem{SKU: "A", Quantity: 4, SalePrice: 10, Discount: 100},
			expected: 0,
		},
		{
			name:     "rounded to cents",
			item:     models.LineItem{SKU: "A", Quantity: 1, SalePrice: 33.33, Discount: 15},
			expected: 28.33, // 28.3305
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, SimpleRevenue{}.ComputeRevenue(tt.item, models.Product{SKU: "A"}))
		})
	}
}

func TestProfitRankBonus_ComputeBonus(t *testing.T) {
	t.Parallel()

	seller := models.SellerStat{Profit: 1000}

	tests := []struct {
		name     string
		index    int
		total    int
		expected float64
	}{
		{name: "first place", index: 0, total: 5, expected: 150},
		{name: "second place", index: 1, total: 5, expected: 100},
		{name: "third place", index: 2, total: 5, expected: 100},
		{name: "middle", index: 3, total: 5, expected: 50},
		{name: "last place", index: 4, total: 5, expected: 0},
		{name: "lone seller is first, not last", index: 0, total: 1, expected: 150},
		{name: "second of two is still second", index: 1, total: 2, expected: 100},
		{name: "third of three is still third", index: 2, total: 3, expected: 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ProfitRankBonus{}.ComputeBonus(tt.index, tt.total, seller))
		})
	}
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSellerStat(t *testing.T) {
	t.Parallel()

	stat := NewSellerStat(Seller{ID: "seller_1", FirstName: "Alexey", LastName: "Petrov"})

	assert.Equal(t, "seller_1", stat.ID)
	assert.Equal(t, "Alexey Petrov", stat.Name)
	assert.Zero(t, stat.Revenue)
	assert.Zero(t, stat.Profit)
	assert.Zero(t, stat.SalesCount)
	assert.Empty(t, stat.ProductsSold)
	assert.Empty(t, stat.SoldInOrder())
}

func TestSellerStat_AddSold_KeepsFirstSeenOrder(t *testing.T) {
	t.Parallel()

	stat := NewSellerStat(Seller{ID: "seller_1"})
	stat.AddSold("A", 2)
	stat.AddSold("B", 9)
	stat.AddSold("A", 3)
	stat.AddSold("C", 9)

	assert.Equal(t, map[string]int{"A": 5, "B": 9, "C": 9}, stat.ProductsSold)
	assert.Equal(t, []TopProduct{
		{SKU: "A", Quantity: 5},
		{SKU: "B", Quantity: 9},
		{SKU: "C", Quantity: 9},
	}, stat.SoldInOrder())
}

func TestSellerStat_AddSold_ZeroQuantityStillRecorded(t *testing.T) {
	t.Parallel()

	stat := NewSellerStat(Seller{ID: "seller_1"})
	stat.AddSold("A", 0)

	assert.Equal(t, map[string]int{"A": 0}, stat.ProductsSold)
	assert.Equal(t, []TopProduct{{SKU: "A", Quantity: 0}}, stat.SoldInOrder())
}

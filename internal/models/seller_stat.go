package models

// SellerStat is the running accumulator for one seller during a single report run.
// It is owned by the pipeline invocation that created it and is never shared.
type SellerStat struct {
	ID           string
	Name         string
	Revenue      float64
	Profit       float64
	SalesCount   int
	ProductsSold map[string]int

	// skuOrder records skus in first-sold order; used to break quantity ties.
	skuOrder []string
}

func NewSellerStat(seller Seller) *SellerStat {
	return &SellerStat{
		ID:           seller.ID,
		Name:         seller.DisplayName(),
		ProductsSold: make(map[string]int),
	}
}

// AddSold increments the sold quantity of sku, remembering the order skus were first seen.
func (s *SellerStat) AddSold(sku string, quantity int) {
	if _, ok := s.ProductsSold[sku]; !ok {
		s.ProductsSold[sku] = 0
		s.skuOrder = append(s.skuOrder, sku)
	}
	s.ProductsSold[sku] += quantity
}

// SoldInOrder returns the sold products as {sku, quantity} pairs in first-sold order.
func (s *SellerStat) SoldInOrder() []TopProduct {
	sold := make([]TopProduct, 0, len(s.skuOrder))
	for _, sku := range s.skuOrder {
		sold = append(sold, TopProduct{SKU: sku, Quantity: s.ProductsSold[sku]})
	}
	return sold
}

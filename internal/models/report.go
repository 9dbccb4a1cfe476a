package models

import "time"

type TopProduct struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// ReportRow is the final, immutable per-seller line of a sales report.
type ReportRow struct {
	SellerID    string       `json:"seller_id"`
	Name        string       `json:"name"`
	Revenue     float64      `json:"revenue"`
	Profit      float64      `json:"profit"`
	SalesCount  int          `json:"sales_count"`
	TopProducts []TopProduct `json:"top_products"`
	Bonus       float64      `json:"bonus"`
}

// SalesReport is a stored report run: rows ordered by descending profit.
//
// Example JSON:
//
//	{
//	  "reportId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "generatedAt": "2026-03-14T09:26:53Z",
//	  "rows": [{
//	    "seller_id": "seller_1",
//	    "name": "Alexey Petrov",
//	    "revenue": 540,
//	    "profit": 178.5,
//	    "sales_count": 1,
//	    "top_products": [{"sku": "SKU_001", "quantity": 3}],
//	    "bonus": 26.77
//	  }]
//	}
type SalesReport struct {
	ReportID    string      `json:"reportId"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Rows        []ReportRow `json:"rows"`
}

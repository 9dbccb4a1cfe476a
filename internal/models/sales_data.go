package models

// SalesData is the input bundle of one report run.
//
// Example JSON:
//
//	{
//	  "sellers": [{"id": "seller_1", "first_name": "Alexey", "last_name": "Petrov"}],
//	  "products": [{"sku": "SKU_001", "purchase_price": 120.5}],
//	  "purchase_records": [{
//	    "receipt_id": "receipt_1",
//	    "seller_id": "seller_1",
//	    "items": [{"sku": "SKU_001", "quantity": 3, "sale_price": 200, "discount": 10}]
//	  }]
//	}
type SalesData struct {
	Sellers         []Seller         `json:"sellers"`
	Products        []Product        `json:"products"`
	PurchaseRecords []PurchaseRecord `json:"purchase_records"`
}

type Seller struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	StartDate string `json:"start_date,omitempty"`
	Position  string `json:"position,omitempty"`
}

// DisplayName is "<first_name> <last_name>".
func (s Seller) DisplayName() string {
	return s.FirstName + " " + s.LastName
}

type Product struct {
	SKU           string  `json:"sku"`
	Name          string  `json:"name,omitempty"`
	Category      string  `json:"category,omitempty"`
	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price,omitempty"`
}

// PurchaseRecord is one receipt issued by a seller.
type PurchaseRecord struct {
	ReceiptID     string     `json:"receipt_id,omitempty"`
	Date          string     `json:"date,omitempty"`
	SellerID      string     `json:"seller_id"`
	CustomerID    string     `json:"customer_id,omitempty"`
	Items         []LineItem `json:"items"`
	TotalAmount   float64    `json:"total_amount,omitempty"`
	TotalDiscount float64    `json:"total_discount,omitempty"`
}

// LineItem is one product entry within a receipt. Discount is a percentage in [0, 100]; absent means 0.
type LineItem struct {
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	SalePrice float64 `json:"sale_price"`
	Discount  float64 `json:"discount,omitempty"`
}

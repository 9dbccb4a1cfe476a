package reports

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"sales-report/internal/models"

	"github.com/xuri/excelize/v2"
)

// Workbook layout: one sheet per list; purchase_records holds one line item per row and rows
// sharing a receipt_id form one purchase record.
const (
	sheetSellers         = "sellers"
	sheetProducts        = "products"
	sheetPurchaseRecords = "purchase_records"
)

var headerAliases = map[string]string{
	"id":             "id",
	"seller id":      "seller_id",
	"seller":         "seller_id",
	"first name":     "first_name",
	"firstname":      "first_name",
	"last name":      "last_name",
	"lastname":       "last_name",
	"start date":     "start_date",
	"position":       "position",
	"sku":            "sku",
	"name":           "name",
	"product name":   "name",
	"category":       "category",
	"purchase price": "purchase_price",
	"cost":           "purchase_price",
	"sale price":     "sale_price",
	"price":          "sale_price",
	"receipt id":     "receipt_id",
	"receipt":        "receipt_id",
	"date":           "date",
	"customer id":    "customer_id",
	"quantity":       "quantity",
	"qty":            "quantity",
	"discount":       "discount",
}

// sheetTable is one worksheet with its header resolved to canonical column names.
type sheetTable struct {
	name    string
	columns map[string]int
	rows    [][]string
}

func decodeSpreadsheet(buf []byte) (*models.SalesData, error) {
	file, err := excelize.OpenReader(bytes.NewReader(buf))
	if err != nil {
		return nil, errInvalidInput("invalid spreadsheet", err)
	}
	defer file.Close()

	sellersTable, err := readSheet(file, sheetSellers, "id")
	if err != nil {
		return nil, err
	}
	productsTable, err := readSheet(file, sheetProducts, "sku", "purchase_price")
	if err != nil {
		return nil, err
	}
	recordsTable, err := readSheet(file, sheetPurchaseRecords, "seller_id", "sku", "quantity", "sale_price")
	if err != nil {
		return nil, err
	}

	data := &models.SalesData{Sellers: parseSellers(sellersTable)}
	if data.Products, err = parseProducts(productsTable); err != nil {
		return nil, err
	}
	if data.PurchaseRecords, err = parsePurchaseRecords(recordsTable); err != nil {
		return nil, err
	}
	return data, nil
}

func readSheet(file *excelize.File, name string, required ...string) (*sheetTable, error) {
	sheetName := ""
	for _, candidate := range file.GetSheetList() {
		if strings.EqualFold(strings.TrimSpace(candidate), name) {
			sheetName = candidate
			break
		}
	}
	if sheetName == "" {
		return nil, errInvalidInput(fmt.Sprintf("missing sheet: %s", name), nil)
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, errInvalidInput(fmt.Sprintf("sheet %s: unreadable rows", name), err)
	}
	if len(rows) == 0 {
		return nil, errInvalidInput(fmt.Sprintf("sheet %s: missing header row", name), nil)
	}

	table := &sheetTable{name: name, columns: mapColumns(rows[0]), rows: rows[1:]}
	for _, column := range required {
		if _, ok := table.columns[column]; !ok {
			return nil, errInvalidInput(fmt.Sprintf("sheet %s: missing required column: %s", name, column), nil)
		}
	}
	return table, nil
}

// cell returns the trimmed value of column in row, or "" when the column or cell is absent.
func (t *sheetTable) cell(row []string, column string) string {
	idx, ok := t.columns[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func (t *sheetTable) floatCell(row []string, rowNumber int, column string, required bool) (float64, error) {
	raw := t.cell(row, column)
	if raw == "" && !required {
		return 0, nil
	}
	value, err := parseFloat(raw)
	if err != nil {
		return 0, errInvalidInput(fmt.Sprintf("sheet %s: row %d invalid %s: %v", t.name, rowNumber, column, err), nil)
	}
	return value, nil
}

func (t *sheetTable) quantityCell(row []string, rowNumber int, column string) (int, error) {
	value, err := parseQuantity(t.cell(row, column))
	if err != nil {
		return 0, errInvalidInput(fmt.Sprintf("sheet %s: row %d invalid %s: %v", t.name, rowNumber, column, err), nil)
	}
	return value, nil
}

func parseSellers(table *sheetTable) []models.Seller {
	sellers := make([]models.Seller, 0, len(table.rows))
	for _, row := range table.rows {
		id := table.cell(row, "id")
		if id == "" {
			continue
		}
		sellers = append(sellers, models.Seller{
			ID:        id,
			FirstName: table.cell(row, "first_name"),
			LastName:  table.cell(row, "last_name"),
			StartDate: table.cell(row, "start_date"),
			Position:  table.cell(row, "position"),
		})
	}
	return sellers
}

func parseProducts(table *sheetTable) ([]models.Product, error) {
	products := make([]models.Product, 0, len(table.rows))
	for index, row := range table.rows {
		sku := table.cell(row, "sku")
		if sku == "" {
			continue
		}
		rowNumber := index + 2

		purchasePrice, err := table.floatCell(row, rowNumber, "purchase_price", true)
		if err != nil {
			return nil, err
		}
		salePrice, err := table.floatCell(row, rowNumber, "sale_price", false)
		if err != nil {
			return nil, err
		}

		products = append(products, models.Product{
			SKU:           sku,
			Name:          table.cell(row, "name"),
			Category:      table.cell(row, "category"),
			PurchasePrice: purchasePrice,
			SalePrice:     salePrice,
		})
	}
	return products, nil
}

func parsePurchaseRecords(table *sheetTable) ([]models.PurchaseRecord, error) {
	records := make([]models.PurchaseRecord, 0)
	byReceipt := make(map[string]int)

	for index, row := range table.rows {
		sellerID := table.cell(row, "seller_id")
		sku := table.cell(row, "sku")
		if sellerID == "" && sku == "" {
			continue
		}
		rowNumber := index + 2

		quantity, err := table.quantityCell(row, rowNumber, "quantity")
		if err != nil {
			return nil, err
		}
		salePrice, err := table.floatCell(row, rowNumber, "sale_price", true)
		if err != nil {
			return nil, err
		}
		discount, err := table.floatCell(row, rowNumber, "discount", false)
		if err != nil {
			return nil, err
		}
		item := models.LineItem{SKU: sku, Quantity: quantity, SalePrice: salePrice, Discount: discount}

		// a blank receipt id makes the row its own record
		receiptID := table.cell(row, "receipt_id")
		if pos, ok := byReceipt[receiptID]; ok && receiptID != "" {
			records[pos].Items = append(records[pos].Items, item)
			continue
		}
		if receiptID != "" {
			byReceipt[receiptID] = len(records)
		}
		records = append(records, models.PurchaseRecord{
			ReceiptID:  receiptID,
			Date:       table.cell(row, "date"),
			SellerID:   sellerID,
			CustomerID: table.cell(row, "customer_id"),
			Items:      []models.LineItem{item},
		})
	}
	return records, nil
}

func mapColumns(header []string) map[string]int {
	mapped := make(map[string]int)
	for idx, col := range header {
		canonical, ok := headerAliases[normalizeHeader(col)]
		if !ok {
			continue
		}
		if _, exists := mapped[canonical]; !exists {
			mapped[canonical] = idx
		}
	}
	return mapped
}

func normalizeHeader(raw string) string {
	value := strings.TrimSpace(raw)
	value = strings.TrimPrefix(value, "\ufeff")
	value = strings.ToLower(value)
	value = strings.ReplaceAll(value, "_", " ")
	return strings.Join(strings.Fields(value), " ")
}

// parseQuantity accepts whole, non-negative numbers that fit in an int.
func parseQuantity(raw string) (int, error) {
	value, err := parseFloat(raw)
	if err != nil {
		return 0, err
	}
	if math.Mod(value, 1) != 0 {
		return 0, fmt.Errorf("must be an integer")
	}
	if value < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	if value >= math.MaxInt {
		return 0, fmt.Errorf("out of range")
	}
	return int(value), nil
}

func parseFloat(raw string) (float64, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, fmt.Errorf("value is empty")
	}
	parsed, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, fmt.Errorf("not a number")
	}
	return parsed, nil
}

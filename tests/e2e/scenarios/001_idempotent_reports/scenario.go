package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
)

// ### Start - fixed configs (no change)
// These values drive the deterministic sales data and must match the checks below.
const (
	sellerCount     = 8
	productCount    = 12
	recordsPerOrder = 400
	itemsPerRecord  = 3
)

// ### End - fixed configs

type seller struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type product struct {
	SKU           string  `json:"sku"`
	Name          string  `json:"name"`
	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price"`
}

type lineItem struct {
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	SalePrice float64 `json:"sale_price"`
	Discount  float64 `json:"discount"`
}

type purchaseRecord struct {
	ReceiptID string     `json:"receipt_id"`
	SellerID  string     `json:"seller_id"`
	Items     []lineItem `json:"items"`
}

type salesData struct {
	Sellers         []seller         `json:"sellers"`
	Products        []product        `json:"products"`
	PurchaseRecords []purchaseRecord `json:"purchase_records"`
}

type reportRow struct {
	SellerID    string  `json:"seller_id"`
	Profit      float64 `json:"profit"`
	SalesCount  int     `json:"sales_count"`
	Bonus       float64 `json:"bonus"`
	TopProducts []struct {
		SKU      string `json:"sku"`
		Quantity int    `json:"quantity"`
	} `json:"top_products"`
}

type salesReport struct {
	ReportID string      `json:"reportId"`
	Rows     []reportRow `json:"rows"`
}

type reportToSend struct {
	reportIndex int
	jsonData    []byte
	isOriginal  bool
}

// main runs the e2e scenario: 001_idempotent_reports
//
// It posts deterministic sales data to POST /reports under fixed Idempotency-Key values,
// resends every report several times in parallel, then reads each report back through
// GET /reports/{reportID}.
//
// Expected results:
//   - Exactly one 201 Created per report id, every duplicate gets 409 Conflict
//   - Each stored report has one row per seller, sorted by profit descending
//   - The last row has a zero bonus and every row has at most 10 top products
//   - Each seller's sales_count equals the number of records generated for it
func main() {
	baseURL := getEnv("BASE_URL", "http://localhost:8080")
	reportCount := getEnvInt("REPORT_COUNT", 20)
	duplicatesPerReport := getEnvInt("DUPLICATES_PER_REPORT", 3)
	parallel := getEnvInt("PARALLEL", 4)
	runID := getEnv("RUN_ID", "e2e")

	fmt.Println("Starting e2e scenario: 001_idempotent_reports")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("REPORT_COUNT: %d\n", reportCount)
	fmt.Printf("DUPLICATES_PER_REPORT: %d\n", duplicatesPerReport)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("RUN_ID: %s\n", runID)
	fmt.Println()

	reportsToSend := make([]reportToSend, 0, reportCount*(duplicatesPerReport+1))
	for reportIndex := 1; reportIndex <= reportCount; reportIndex++ {
		jsonData, err := json.Marshal(generateSalesData(reportIndex))
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to generate JSON for report %d: %v\n", reportIndex, err)
			os.Exit(1)
		}
		for dup := 0; dup <= duplicatesPerReport; dup++ {
			reportsToSend = append(reportsToSend, reportToSend{
				reportIndex: reportIndex,
				jsonData:    jsonData,
				isOriginal:  dup == 0,
			})
		}
	}
	sort.SliceStable(reportsToSend, func(i, j int) bool {
		return reportsToSend[i].reportIndex < reportsToSend[j].reportIndex
	})

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error
	var createdRequest int64  // 201 status code
	var conflictRequest int64 // 409 status code
	var otherRequest int64

	for _, report := range reportsToSend {
		wg.Add(1)
		workerChan <- struct{}{}

		go func(rep reportToSend) {
			defer wg.Done()
			defer func() { <-workerChan }()

			statusCode, err := sendReport(baseURL, reportID(runID, rep.reportIndex), rep.jsonData)
			if err != nil {
				label := fmt.Sprintf("report %d", rep.reportIndex)
				if !rep.isOriginal {
					label += " (duplicate)"
				}
				mu.Lock()
				errors = append(errors, fmt.Errorf("%s: %w", label, err))
				mu.Unlock()
				return
			}

			switch statusCode {
			case http.StatusCreated:
				atomic.AddInt64(&createdRequest, 1)
			case http.StatusConflict:
				atomic.AddInt64(&conflictRequest, 1)
			default:
				atomic.AddInt64(&otherRequest, 1)
			}
		}(report)
	}
	wg.Wait()

	if len(errors) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d report sends failed, first: %v\n", len(errors), errors[0])
		os.Exit(1)
	}

	created := atomic.LoadInt64(&createdRequest)
	conflicted := atomic.LoadInt64(&conflictRequest)
	other := atomic.LoadInt64(&otherRequest)

	fmt.Println("=== Statistics ===")
	fmt.Printf("Created request: %d\n", created)
	fmt.Printf("Conflicted request: %d\n", conflicted)
	fmt.Printf("Other request: %d\n", other)

	if created != int64(reportCount) || conflicted != int64(reportCount*duplicatesPerReport) || other != 0 {
		fmt.Fprintf(os.Stderr, "ERROR: unexpected status distribution\n")
		os.Exit(1)
	}

	for reportIndex := 1; reportIndex <= reportCount; reportIndex++ {
		id := reportID(runID, reportIndex)
		report, err := fetchReport(baseURL, id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: fetch %s: %v\n", id, err)
			os.Exit(1)
		}
		if err := checkReport(report, reportIndex); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: report %s: %v\n", id, err)
			os.Exit(1)
		}
	}

	fmt.Println("Scenario completed successfully")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func reportID(runID string, reportIndex int) string {
	return fmt.Sprintf("%s-report-%04d", runID, reportIndex)
}

// recordSeller spreads records unevenly across sellers.
func recordSeller(reportIndex, recordIndex int) int {
	return (recordIndex*recordIndex + recordIndex/3 + reportIndex) % sellerCount
}

func generateSalesData(reportIndex int) salesData {
	data := salesData{}
	for i := 0; i < sellerCount; i++ {
		data.Sellers = append(data.Sellers, seller{
			ID:        fmt.Sprintf("seller_%d", i+1),
			FirstName: fmt.Sprintf("First%d", i+1),
			LastName:  fmt.Sprintf("Last%d", i+1),
		})
	}
	for i := 0; i < productCount; i++ {
		purchase := float64(10 + i*5)
		data.Products = append(data.Products, product{
			SKU:           fmt.Sprintf("SKU_%03d", i+1),
			Name:          fmt.Sprintf("Product %d", i+1),
			PurchasePrice: purchase,
			SalePrice:     purchase * 1.5,
		})
	}
	for r := 0; r < recordsPerOrder; r++ {
		record := purchaseRecord{
			ReceiptID: fmt.Sprintf("receipt_%d_%d", reportIndex, r),
			SellerID:  data.Sellers[recordSeller(reportIndex, r)].ID,
		}
		for i := 0; i < itemsPerRecord; i++ {
			p := data.Products[(r*7+i*3+reportIndex)%productCount]
			record.Items = append(record.Items, lineItem{
				SKU:       p.SKU,
				Quantity:  1 + (r+i)%4,
				SalePrice: p.SalePrice,
				Discount:  float64((r * i) % 20),
			})
		}
		data.PurchaseRecords = append(data.PurchaseRecords, record)
	}
	return data
}

func sendReport(baseURL, id string, jsonData []byte) (int, error) {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/reports", bytes.NewReader(jsonData))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", id)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

func fetchReport(baseURL, id string) (*salesReport, error) {
	resp, err := http.Get(baseURL + "/reports/" + id)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}

	var report salesReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, err
	}
	return &report, nil
}

func checkReport(report *salesReport, reportIndex int) error {
	if len(report.Rows) != sellerCount {
		return fmt.Errorf("expected %d rows, got %d", sellerCount, len(report.Rows))
	}

	expectedCounts := make(map[string]int, sellerCount)
	for r := 0; r < recordsPerOrder; r++ {
		expectedCounts[fmt.Sprintf("seller_%d", recordSeller(reportIndex, r)+1)]++
	}

	for i, row := range report.Rows {
		if i > 0 && row.Profit > report.Rows[i-1].Profit {
			return fmt.Errorf("row %d not sorted by profit", i)
		}
		if len(row.TopProducts) > 10 {
			return fmt.Errorf("seller %s has %d top products", row.SellerID, len(row.TopProducts))
		}
		if row.SalesCount != expectedCounts[row.SellerID] {
			return fmt.Errorf("seller %s sales_count %d, want %d", row.SellerID, row.SalesCount, expectedCounts[row.SellerID])
		}
	}
	if last := report.Rows[len(report.Rows)-1]; last.Bonus != 0 {
		return fmt.Errorf("last seller %s has bonus %v", last.SellerID, last.Bonus)
	}
	return nil
}

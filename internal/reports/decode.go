package reports

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"sales-report/internal/models"
)

const (
	FormatJSON        = "json"
	FormatSpreadsheet = "spreadsheet"
	FormatXLSX        = "xlsx"
)

// decodeSalesData picks a decoder by (case-insensitive) substring of format, e.g. a Content-Type header.
func decodeSalesData(format string, buf []byte) (*models.SalesData, error) {
	formatLower := strings.ToLower(format)

	switch {
	case strings.Contains(formatLower, FormatJSON):
		return decodeJSON(buf)
	case strings.Contains(formatLower, FormatSpreadsheet), strings.Contains(formatLower, FormatXLSX):
		return decodeSpreadsheet(buf)
	default:
		return nil, errInvalidInput(fmt.Sprintf("unsupported input format: %q", format), nil)
	}
}

// decodeJSON decodes the sales data bundle. A top-level null yields nil data; a list field holding
// anything but an array fails here.
func decodeJSON(buf []byte) (*models.SalesData, error) {
	if len(bytes.TrimSpace(buf)) == 0 {
		return nil, errInvalidInput("empty request body", nil)
	}

	var data *models.SalesData
	if err := json.Unmarshal(buf, &data); err != nil {
		return nil, errInvalidInput("invalid json", err)
	}
	return data, nil
}

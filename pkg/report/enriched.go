package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arvindps/salescan/pkg/models"
)

// enrichedHeader is the fixed column order of the enriched dataset.
var enrichedHeader = []string{
	"TransactionID", "Date", "ProductID", "ProductName",
	"Quantity", "UnitPrice", "CustomerID", "Region",
	"API_Category", "API_Brand", "API_Rating", "API_Match",
}

// WriteEnriched writes the enriched dataset as pipe-delimited text.
// Nil API fields render as empty strings.
func WriteEnriched(w io.Writer, records []models.EnrichedTransaction) error {
	var buf bytes.Buffer
	buf.WriteString(strings.Join(enrichedHeader, "|") + "\n")
	for _, r := range records {
		fields := []string{
			r.TransactionID,
			r.Date,
			r.ProductID,
			r.ProductName,
			strconv.Itoa(r.Quantity),
			formatFloat(r.UnitPrice),
			r.CustomerID,
			r.Region,
			stringOrEmpty(r.APICategory),
			stringOrEmpty(r.APIBrand),
			floatOrEmpty(r.APIRating),
			strconv.FormatBool(r.APIMatch),
		}
		buf.WriteString(strings.Join(fields, "|") + "\n")
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// SaveEnriched writes the enriched dataset to path, creating parent
// directories as needed.
func SaveEnriched(path string, records []models.EnrichedTransaction) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create enriched output file: %w", err)
	}
	defer f.Close()
	return WriteEnriched(f, records)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrEmpty(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

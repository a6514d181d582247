// Package report serializes aggregation results and the enriched dataset to
// flat text files.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arvindps/salescan/pkg/analytics"
	"github.com/arvindps/salescan/pkg/validate"
)

// Results bundles every aggregation view for one pipeline run.
type Results struct {
	Summary       validate.Summary
	TotalRevenue  float64
	Regions       []analytics.RegionStats
	TopProducts   []analytics.ProductStats
	Customers     []analytics.CustomerStats
	DailyTrend    []analytics.DayStats
	PeakDate      string
	PeakRevenue   float64
	PeakCount     int
	LowPerformers []analytics.ProductStats
	EnrichedCount int
	MatchedCount  int
}

// MatchRate is the share of enriched records with a catalog match, in percent.
func (r Results) MatchRate() float64 {
	if r.EnrichedCount == 0 {
		return 0
	}
	return float64(r.MatchedCount) / float64(r.EnrichedCount) * 100
}

// WriteReport renders the human-readable sales report. The layout is
// presentation only; nothing downstream parses it.
func WriteReport(w io.Writer, r Results) error {
	var buf bytes.Buffer
	rule := strings.Repeat("=", 44)

	buf.WriteString(rule + "\n")
	buf.WriteString("SALES ANALYTICS REPORT\n")
	buf.WriteString(rule + "\n\n")

	fmt.Fprintf(&buf, "Records: %d input, %d invalid, %d analyzed\n",
		r.Summary.TotalInput, r.Summary.Invalid, r.Summary.FinalCount)
	if r.Summary.FilteredByRegion > 0 || r.Summary.FilteredByAmount > 0 {
		fmt.Fprintf(&buf, "Filtered out: %d by region, %d by amount\n",
			r.Summary.FilteredByRegion, r.Summary.FilteredByAmount)
	}
	fmt.Fprintf(&buf, "Total Revenue: %.2f\n\n", r.TotalRevenue)

	buf.WriteString("Revenue by Region\n-----------------\n")
	for _, reg := range r.Regions {
		fmt.Fprintf(&buf, "%-16s %14.2f  %4d txns  %6.2f%%\n",
			reg.Region, reg.TotalSales, reg.TransactionCount, reg.Percentage)
	}

	buf.WriteString("\nTop Products by Quantity\n------------------------\n")
	for _, p := range r.TopProducts {
		fmt.Fprintf(&buf, "%-24s %6d units  %14.2f\n", p.Name, p.Quantity, p.Revenue)
	}

	buf.WriteString("\nCustomer Analysis\n-----------------\n")
	for _, c := range r.Customers {
		fmt.Fprintf(&buf, "%-10s spent %14.2f over %4d orders (avg %12.2f, %d products)\n",
			c.CustomerID, c.TotalSpent, c.PurchaseCount, c.AvgOrderValue, len(c.Products))
	}

	buf.WriteString("\nDaily Trend\n-----------\n")
	for _, d := range r.DailyTrend {
		fmt.Fprintf(&buf, "%-12s %14.2f  %4d txns  %4d customers\n",
			d.Date, d.Revenue, d.TransactionCount, d.UniqueCustomers)
	}

	buf.WriteString("\nPeak Sales Day\n--------------\n")
	if r.PeakDate == "" {
		buf.WriteString("No dated transactions.\n")
	} else {
		fmt.Fprintf(&buf, "%s with %.2f revenue over %d transactions\n",
			r.PeakDate, r.PeakRevenue, r.PeakCount)
	}

	buf.WriteString("\nLow Performing Products\n-----------------------\n")
	if len(r.LowPerformers) == 0 {
		buf.WriteString("None.\n")
	} else {
		for _, p := range r.LowPerformers {
			fmt.Fprintf(&buf, "%-24s %6d units  %14.2f\n", p.Name, p.Quantity, p.Revenue)
		}
	}

	buf.WriteString("\nEnrichment\n----------\n")
	fmt.Fprintf(&buf, "Matched %d of %d records (%.1f%%)\n",
		r.MatchedCount, r.EnrichedCount, r.MatchRate())

	_, err := w.Write(buf.Bytes())
	return err
}

// SaveReport writes the report to path, creating parent directories as needed.
func SaveReport(path string, r Results) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()
	return WriteReport(f, r)
}

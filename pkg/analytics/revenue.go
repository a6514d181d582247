package analytics

import (
	"sort"

	"github.com/arvindps/salescan/pkg/models"
)

// TotalRevenue sums quantity times unit price over all records.
func TotalRevenue(records []models.Transaction) float64 {
	var total float64
	for _, r := range records {
		total += r.Amount()
	}
	return round2(total)
}

// RegionBreakdown groups sales by region, sorted by total sales descending.
// Percentage is each region's share of overall sales, 0 when overall sales
// is zero.
func RegionBreakdown(records []models.Transaction) []RegionStats {
	var stats []RegionStats
	index := make(map[string]int)
	var overall float64

	for _, r := range records {
		amount := r.Amount()
		i, ok := index[r.Region]
		if !ok {
			i = len(stats)
			index[r.Region] = i
			stats = append(stats, RegionStats{Region: r.Region})
		}
		stats[i].TotalSales += amount
		stats[i].TransactionCount++
		overall += amount
	}

	// Sort on the unrounded accumulators; rounding happens only at return.
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSales > stats[j].TotalSales
	})

	for i := range stats {
		if overall != 0 {
			stats[i].Percentage = round2(stats[i].TotalSales / overall * 100)
		}
		stats[i].TotalSales = round2(stats[i].TotalSales)
	}
	return stats
}

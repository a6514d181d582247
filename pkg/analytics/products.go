package analytics

import (
	"sort"

	"github.com/arvindps/salescan/pkg/models"
)

// TopProducts returns the n products with the highest total quantity sold,
// quantity descending.
func TopProducts(records []models.Transaction, n int) []ProductStats {
	stats := productTotals(records)
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Quantity > stats[j].Quantity
	})
	if n >= 0 && len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// LowPerformers returns every product whose total quantity sold is strictly
// below threshold, quantity ascending.
func LowPerformers(records []models.Transaction, threshold int) []ProductStats {
	var low []ProductStats
	for _, s := range productTotals(records) {
		if s.Quantity < threshold {
			low = append(low, s)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].Quantity < low[j].Quantity
	})
	return low
}

// productTotals rolls up quantity and revenue per product name, in
// first-encounter order.
func productTotals(records []models.Transaction) []ProductStats {
	var stats []ProductStats
	index := make(map[string]int)

	for _, r := range records {
		i, ok := index[r.ProductName]
		if !ok {
			i = len(stats)
			index[r.ProductName] = i
			stats = append(stats, ProductStats{Name: r.ProductName})
		}
		stats[i].Quantity += r.Quantity
		stats[i].Revenue += r.Amount()
	}

	for i := range stats {
		stats[i].Revenue = round2(stats[i].Revenue)
	}
	return stats
}

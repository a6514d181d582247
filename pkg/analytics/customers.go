package analytics

import (
	"sort"

	"github.com/arvindps/salescan/pkg/models"
)

// CustomerAnalysis summarizes purchase behavior per customer, sorted by total
// spent descending. Records without a customer id are skipped. The Products
// list holds the distinct product names bought, in first-purchase order so
// repeated runs produce identical results.
func CustomerAnalysis(records []models.Transaction) []CustomerStats {
	var stats []CustomerStats
	index := make(map[string]int)
	seen := make(map[string]map[string]struct{})

	for _, r := range records {
		if r.CustomerID == "" {
			continue
		}
		i, ok := index[r.CustomerID]
		if !ok {
			i = len(stats)
			index[r.CustomerID] = i
			stats = append(stats, CustomerStats{CustomerID: r.CustomerID})
			seen[r.CustomerID] = make(map[string]struct{})
		}
		stats[i].TotalSpent += r.Amount()
		stats[i].PurchaseCount++
		if _, bought := seen[r.CustomerID][r.ProductName]; !bought {
			seen[r.CustomerID][r.ProductName] = struct{}{}
			stats[i].Products = append(stats[i].Products, r.ProductName)
		}
	}

	for i := range stats {
		s := &stats[i]
		s.AvgOrderValue = round2(s.TotalSpent / float64(s.PurchaseCount))
		s.TotalSpent = round2(s.TotalSpent)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSpent > stats[j].TotalSpent
	})
	return stats
}

package validate

import (
	"sort"
	"strings"

	"github.com/arvindps/salescan/pkg/models"
)

// Filters are the optional user-supplied record filters. An empty Region and
// nil amounts mean "no filtering".
type Filters struct {
	Region    string
	MinAmount *float64
	MaxAmount *float64
}

// Summary reports what happened to the input set. TotalInput always equals
// Invalid + FilteredByRegion + FilteredByAmount + FinalCount.
type Summary struct {
	TotalInput       int
	Invalid          int
	FilteredByRegion int
	FilteredByAmount int
	FinalCount       int
}

// Apply re-validates parsed records and applies the optional filters.
// Validation and parsing are independent defensive layers: a record failing
// any structural rule is dropped and counted even though the parser should
// never have emitted it.
func Apply(records []models.Transaction, filters Filters) ([]models.Transaction, Summary) {
	summary := Summary{TotalInput: len(records)}

	valid := make([]models.Transaction, 0, len(records))
	for _, r := range records {
		if !isValid(r) {
			summary.Invalid++
			continue
		}
		valid = append(valid, r)
	}

	filtered := valid
	if filters.Region != "" {
		before := len(filtered)
		kept := make([]models.Transaction, 0, before)
		for _, r := range filtered {
			if r.Region == filters.Region {
				kept = append(kept, r)
			}
		}
		filtered = kept
		summary.FilteredByRegion = before - len(filtered)
	}

	if filters.MinAmount != nil || filters.MaxAmount != nil {
		before := len(filtered)
		kept := make([]models.Transaction, 0, before)
		for _, r := range filtered {
			amount := r.Amount()
			// Both bounds are inclusive.
			if filters.MinAmount != nil && amount < *filters.MinAmount {
				continue
			}
			if filters.MaxAmount != nil && amount > *filters.MaxAmount {
				continue
			}
			kept = append(kept, r)
		}
		filtered = kept
		summary.FilteredByAmount = before - len(filtered)
	}

	summary.FinalCount = len(filtered)
	return filtered, summary
}

// isValid applies the structural rules in order; the first failure wins.
func isValid(r models.Transaction) bool {
	switch {
	case r.TransactionID == "" || r.ProductID == "" || r.CustomerID == "" || r.Region == "":
		return false
	case !strings.HasPrefix(r.TransactionID, "T"):
		return false
	case !strings.HasPrefix(r.ProductID, "P"):
		return false
	case !strings.HasPrefix(r.CustomerID, "C"):
		return false
	case r.Quantity <= 0 || r.UnitPrice <= 0:
		return false
	}
	return true
}

// Regions returns the distinct non-empty regions present, sorted.
func Regions(records []models.Transaction) []string {
	seen := make(map[string]struct{})
	var regions []string
	for _, r := range records {
		if r.Region == "" {
			continue
		}
		if _, ok := seen[r.Region]; ok {
			continue
		}
		seen[r.Region] = struct{}{}
		regions = append(regions, r.Region)
	}
	sort.Strings(regions)
	return regions
}

// AmountRange returns the observed min and max transaction amount.
// ok is false when there are no records.
func AmountRange(records []models.Transaction) (min, max float64, ok bool) {
	for i, r := range records {
		amount := r.Amount()
		if i == 0 || amount < min {
			min = amount
		}
		if i == 0 || amount > max {
			max = amount
		}
	}
	return min, max, len(records) > 0
}

// Package analytics computes read-only summary views over a validated
// transaction set. Every view is a pure function recomputed from scratch on
// each call; monetary results are rounded to two decimals only at the point
// of return, and ordering ties keep the order groups were first encountered.
package analytics

import "math"

// RegionStats is one row of the region breakdown.
type RegionStats struct {
	Region           string
	TotalSales       float64
	TransactionCount int
	Percentage       float64
}

// ProductStats is one row of the top-products and low-performers views.
type ProductStats struct {
	Name     string
	Quantity int
	Revenue  float64
}

// CustomerStats is one row of the customer analysis.
type CustomerStats struct {
	CustomerID    string
	TotalSpent    float64
	PurchaseCount int
	AvgOrderValue float64
	Products      []string
}

// DayStats is one row of the daily trend.
type DayStats struct {
	Date             string
	Revenue          float64
	TransactionCount int
	UniqueCustomers  int
}

func round2(f float64) float64 {
	if f == 0 {
		return 0
	}
	return math.Round(f*100) / 100
}

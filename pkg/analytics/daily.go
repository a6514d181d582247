package analytics

import (
	"sort"

	"github.com/arvindps/salescan/pkg/models"
)

// DailyTrend summarizes revenue, transaction count and distinct customers per
// date, sorted by the date token ascending. Dates are opaque grouping keys;
// no calendar parsing happens here.
func DailyTrend(records []models.Transaction) []DayStats {
	days, customers := dailyTotals(records, true)

	for i := range days {
		days[i].Revenue = round2(days[i].Revenue)
		days[i].UniqueCustomers = len(customers[days[i].Date])
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
	return days
}

// PeakDay returns the date with the strictly greatest revenue. The strict
// comparison means the first date encountered with the maximum keeps it.
// With no dated records it returns ("", 0, 0).
func PeakDay(records []models.Transaction) (date string, revenue float64, count int) {
	days, _ := dailyTotals(records, false)

	for _, d := range days {
		if d.Revenue > revenue {
			date, revenue, count = d.Date, d.Revenue, d.TransactionCount
		}
	}
	return date, round2(revenue), count
}

// dailyTotals accumulates per-date revenue and counts in first-encounter
// order. Records without a date are skipped.
func dailyTotals(records []models.Transaction, trackCustomers bool) ([]DayStats, map[string]map[string]struct{}) {
	var days []DayStats
	index := make(map[string]int)
	var customers map[string]map[string]struct{}
	if trackCustomers {
		customers = make(map[string]map[string]struct{})
	}

	for _, r := range records {
		if r.Date == "" {
			continue
		}
		i, ok := index[r.Date]
		if !ok {
			i = len(days)
			index[r.Date] = i
			days = append(days, DayStats{Date: r.Date})
			if trackCustomers {
				customers[r.Date] = make(map[string]struct{})
			}
		}
		days[i].Revenue += r.Amount()
		days[i].TransactionCount++
		if trackCustomers && r.CustomerID != "" {
			customers[r.Date][r.CustomerID] = struct{}{}
		}
	}
	return days, customers
}

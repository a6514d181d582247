package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvindps/salescan/pkg/models"
)

func record(id, productID, customerID, region string, quantity int, price float64) models.Transaction {
	return models.Transaction{
		TransactionID: id,
		Date:          "2024-01-01",
		ProductID:     productID,
		ProductName:   "Widget",
		Quantity:      quantity,
		UnitPrice:     price,
		CustomerID:    customerID,
		Region:        region,
	}
}

func ptr(v float64) *float64 { return &v }

func TestApplyValidationRules(t *testing.T) {
	tests := []struct {
		name string
		in   models.Transaction
		ok   bool
	}{
		{"valid", record("T1", "P1", "C1", "North", 1, 10), true},
		{"missing transaction id", record("", "P1", "C1", "North", 1, 10), false},
		{"missing product id", record("T1", "", "C1", "North", 1, 10), false},
		{"missing customer id", record("T1", "P1", "", "North", 1, 10), false},
		{"missing region", record("T1", "P1", "C1", "", 1, 10), false},
		{"bad transaction prefix", record("X1", "P1", "C1", "North", 1, 10), false},
		{"bad product prefix", record("T1", "X1", "C1", "North", 1, 10), false},
		{"bad customer prefix", record("T1", "P1", "X1", "North", 1, 10), false},
		{"zero quantity", record("T1", "P1", "C1", "North", 0, 10), false},
		{"negative price", record("T1", "P1", "C1", "North", 1, -10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, summary := Apply([]models.Transaction{tt.in}, Filters{})
			if tt.ok {
				assert.Len(t, out, 1)
				assert.Equal(t, 0, summary.Invalid)
			} else {
				assert.Empty(t, out)
				assert.Equal(t, 1, summary.Invalid)
			}
		})
	}
}

func TestApplyCountIdentity(t *testing.T) {
	records := []models.Transaction{
		record("T1", "P1", "C1", "North", 2, 100), // amount 200
		record("T2", "P1", "C2", "South", 1, 50),  // amount 50, dropped by region
		record("T3", "P1", "C3", "North", 1, 10),  // amount 10, dropped by amount
		record("X4", "P1", "C4", "North", 1, 10),  // invalid
	}

	out, summary := Apply(records, Filters{Region: "North", MinAmount: ptr(100)})

	require.Len(t, out, 1)
	assert.Equal(t, 4, summary.TotalInput)
	assert.Equal(t, 1, summary.Invalid)
	assert.Equal(t, 1, summary.FilteredByRegion)
	assert.Equal(t, 1, summary.FilteredByAmount)
	assert.Equal(t, 1, summary.FinalCount)
	assert.Equal(t, summary.TotalInput,
		summary.Invalid+summary.FilteredByRegion+summary.FilteredByAmount+summary.FinalCount)
}

func TestRegionFilterIsCaseSensitive(t *testing.T) {
	records := []models.Transaction{
		record("T1", "P1", "C1", "North", 1, 10),
		record("T2", "P1", "C2", "north", 1, 10),
	}

	out, summary := Apply(records, Filters{Region: "North"})

	require.Len(t, out, 1)
	assert.Equal(t, "T1", out[0].TransactionID)
	assert.Equal(t, 1, summary.FilteredByRegion)
}

func TestAmountBoundsAreInclusive(t *testing.T) {
	records := []models.Transaction{
		record("T1", "P1", "C1", "North", 1, 100),
		record("T2", "P1", "C2", "North", 1, 200),
		record("T3", "P1", "C3", "North", 1, 300),
	}

	out, summary := Apply(records, Filters{MinAmount: ptr(100), MaxAmount: ptr(200)})

	require.Len(t, out, 2)
	assert.Equal(t, "T1", out[0].TransactionID)
	assert.Equal(t, "T2", out[1].TransactionID)
	assert.Equal(t, 1, summary.FilteredByAmount)

	out, _ = Apply(records, Filters{MinAmount: ptr(100.01)})
	require.Len(t, out, 2)
	assert.Equal(t, "T2", out[0].TransactionID)
}

func TestApplyNoFiltersKeepsValidRecords(t *testing.T) {
	records := []models.Transaction{
		record("T1", "P1", "C1", "North", 1, 10),
		record("T2", "P2", "C2", "South", 2, 20),
	}

	out, summary := Apply(records, Filters{})

	assert.Equal(t, records, out)
	assert.Equal(t, 0, summary.FilteredByRegion)
	assert.Equal(t, 0, summary.FilteredByAmount)
	assert.Equal(t, 2, summary.FinalCount)
}

func TestRegions(t *testing.T) {
	records := []models.Transaction{
		record("T1", "P1", "C1", "South", 1, 10),
		record("T2", "P1", "C2", "North", 1, 10),
		record("T3", "P1", "C3", "South", 1, 10),
		record("T4", "P1", "C4", "", 1, 10),
	}

	assert.Equal(t, []string{"North", "South"}, Regions(records))
	assert.Empty(t, Regions(nil))
}

func TestAmountRange(t *testing.T) {
	records := []models.Transaction{
		record("T1", "P1", "C1", "North", 2, 100), // 200
		record("T2", "P1", "C2", "North", 1, 50),  // 50
		record("T3", "P1", "C3", "North", 3, 300), // 900
	}

	min, max, ok := AmountRange(records)
	require.True(t, ok)
	assert.Equal(t, 50.0, min)
	assert.Equal(t, 900.0, max)

	_, _, ok = AmountRange(nil)
	assert.False(t, ok)
}

package models

// Transaction represents a single cleaned sales record.
type Transaction struct {
	TransactionID string
	Date          string
	ProductID     string
	ProductName   string
	Quantity      int
	UnitPrice     float64
	CustomerID    string
	Region        string
}

// Amount returns the monetary value of the transaction.
func (t Transaction) Amount() float64 {
	return float64(t.Quantity) * t.UnitPrice
}

// EnrichedTransaction is a Transaction joined with catalog metadata.
// The API fields are nil when the catalog had no matching product.
type EnrichedTransaction struct {
	Transaction

	APICategory *string
	APIBrand    *string
	APIRating   *float64
	APIMatch    bool
}

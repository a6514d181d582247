package enrich

import (
	"strconv"
	"strings"

	"github.com/arvindps/salescan/pkg/catalog"
	"github.com/arvindps/salescan/pkg/models"
)

// NumericID extracts the digits embedded in a product id and parses them as
// an integer, so "P101" yields 101. ok is false when the id has no digits.
func NumericID(productID string) (int, bool) {
	var digits strings.Builder
	for _, r := range productID {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	id, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return id, true
}

// Enrich joins records against the catalog mapping, driving from the record
// side: every input yields exactly one output, matched or not.
func Enrich(records []models.Transaction, mapping map[int]catalog.Info) []models.EnrichedTransaction {
	enriched := make([]models.EnrichedTransaction, 0, len(records))
	for _, r := range records {
		e := models.EnrichedTransaction{Transaction: r}
		if id, ok := NumericID(r.ProductID); ok {
			if info, found := mapping[id]; found {
				category, brand, rating := info.Category, info.Brand, info.Rating
				e.APICategory = &category
				e.APIBrand = &brand
				e.APIRating = &rating
				e.APIMatch = true
			}
		}
		enriched = append(enriched, e)
	}
	return enriched
}

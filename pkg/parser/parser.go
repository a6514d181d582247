package parser

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/arvindps/salescan/pkg/models"
)

const fieldCount = 8

// Parser turns raw delimited lines into transactions. Malformed lines are
// discarded, never surfaced as errors; order is preserved.
type Parser struct {
	delimiter string
	logger    *log.Logger
}

func New(delimiter string, logger *log.Logger) *Parser {
	return &Parser{
		delimiter: delimiter,
		logger:    logger,
	}
}

// Parse converts lines into transactions, one per well-formed line.
func (p *Parser) Parse(lines []string) []models.Transaction {
	var records []models.Transaction
	for _, line := range lines {
		record, ok := p.parseLine(line)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records
}

func (p *Parser) parseLine(line string) (models.Transaction, bool) {
	fields := strings.Split(line, p.delimiter)
	if len(fields) != fieldCount {
		p.logger.Debug("wrong field count", "row", line, "fields", len(fields))
		return models.Transaction{}, false
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	// Embedded commas in product names would collide with downstream
	// delimited output; commas in numeric fields are grouping separators.
	productName := strings.TrimSpace(strings.ReplaceAll(fields[3], ",", " "))

	quantity, err := strconv.Atoi(strings.ReplaceAll(fields[4], ",", ""))
	if err != nil {
		p.logger.Debug("error parsing quantity", "row", line, "error", err)
		return models.Transaction{}, false
	}
	unitPrice, err := strconv.ParseFloat(strings.ReplaceAll(fields[5], ",", ""), 64)
	if err != nil {
		p.logger.Debug("error parsing unit price", "row", line, "error", err)
		return models.Transaction{}, false
	}
	if quantity <= 0 || unitPrice <= 0 {
		p.logger.Debug("non-positive quantity or price", "row", line)
		return models.Transaction{}, false
	}
	if !strings.HasPrefix(fields[0], "T") {
		p.logger.Debug("bad transaction id", "row", line, "id", fields[0])
		return models.Transaction{}, false
	}

	return models.Transaction{
		TransactionID: fields[0],
		Date:          fields[1],
		ProductID:     fields[2],
		ProductName:   productName,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    fields[6],
		Region:        fields[7],
	}, true
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arvindps/salescan/pkg/models"
	"github.com/arvindps/salescan/pkg/validate"
)

// promptFilters shows the available filter options and asks the user for
// optional region and amount bounds. Invalid numeric input skips that filter
// rather than failing the run. The displayed regions and amount range only
// reflect records that survive validation.
func promptFilters(in io.Reader, out io.Writer, records []models.Transaction) validate.Filters {
	reader := bufio.NewReader(in)

	valid, _ := validate.Apply(records, validate.Filters{})

	if regions := validate.Regions(valid); len(regions) > 0 {
		fmt.Fprintf(out, "Regions: %s\n", strings.Join(regions, ", "))
	} else {
		fmt.Fprintln(out, "Regions: none")
	}
	if min, max, ok := validate.AmountRange(valid); ok {
		fmt.Fprintf(out, "Amount Range: %.2f - %.2f\n", min, max)
	} else {
		fmt.Fprintln(out, "Amount Range: none")
	}

	answer := ask(reader, out, "\nDo you want to filter data? (y/n): ")
	if strings.ToLower(answer) != "y" {
		return validate.Filters{}
	}

	var filters validate.Filters
	filters.Region = ask(reader, out, "Enter region (or press Enter to skip): ")
	filters.MinAmount = askAmount(reader, out, "Enter minimum amount (or press Enter to skip): ")
	filters.MaxAmount = askAmount(reader, out, "Enter maximum amount (or press Enter to skip): ")
	return filters
}

func ask(reader *bufio.Reader, out io.Writer, prompt string) string {
	fmt.Fprint(out, prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func askAmount(reader *bufio.Reader, out io.Writer, prompt string) *float64 {
	raw := ask(reader, out, prompt)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprintln(out, "Invalid amount. Skipping this filter.")
		return nil
	}
	return &v
}

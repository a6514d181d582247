package service

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/arvindps/salescan/pkg/analytics"
	"github.com/arvindps/salescan/pkg/catalog"
	"github.com/arvindps/salescan/pkg/config"
	"github.com/arvindps/salescan/pkg/enrich"
	"github.com/arvindps/salescan/pkg/loader"
	"github.com/arvindps/salescan/pkg/models"
	"github.com/arvindps/salescan/pkg/parser"
	"github.com/arvindps/salescan/pkg/report"
	"github.com/arvindps/salescan/pkg/validate"
)

// Processor runs the whole pipeline: read, parse, validate, aggregate,
// enrich, persist. Stage failures degrade to empty results where the
// contract allows; only unrecoverable I/O surfaces as an error.
type Processor struct {
	cfg    *config.Config
	logger *log.Logger
}

func NewProcessor(cfg *config.Config, logger *log.Logger) *Processor {
	return &Processor{
		cfg:    cfg,
		logger: logger,
	}
}

// LoadRecords reads and parses the configured input file.
func (p *Processor) LoadRecords() ([]models.Transaction, error) {
	p.logger.Info("reading sales data", "path", p.cfg.InputPath)
	lines, err := loader.New(p.cfg.Encodings, p.logger).ReadLines(p.cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read sales data: %w", err)
	}
	p.logger.Info("read raw lines", "count", len(lines))

	p.logger.Info("parsing and cleaning data")
	records := parser.New(p.cfg.Delimiter, p.logger).Parse(lines)
	p.logger.Info("parsed records", "count", len(records), "discarded", len(lines)-len(records))
	return records, nil
}

// Analyze validates and filters records, computes every aggregation view,
// enriches against the catalog and writes both output files.
func (p *Processor) Analyze(ctx context.Context, records []models.Transaction, filters validate.Filters) (report.Results, error) {
	p.logger.Info("validating transactions")
	valid, summary := validate.Apply(records, filters)
	p.logger.Info("validation complete",
		"valid", summary.TotalInput-summary.Invalid,
		"invalid", summary.Invalid,
		"final", summary.FinalCount)

	p.logger.Info("analyzing sales data")
	results := report.Results{
		Summary:       summary,
		TotalRevenue:  analytics.TotalRevenue(valid),
		Regions:       analytics.RegionBreakdown(valid),
		TopProducts:   analytics.TopProducts(valid, p.cfg.TopProducts),
		Customers:     analytics.CustomerAnalysis(valid),
		DailyTrend:    analytics.DailyTrend(valid),
		LowPerformers: analytics.LowPerformers(valid, p.cfg.LowThreshold),
	}
	results.PeakDate, results.PeakRevenue, results.PeakCount = analytics.PeakDay(valid)

	p.logger.Info("fetching product data", "url", p.cfg.CatalogURL)
	products := catalog.NewClient(p.cfg.CatalogURL, p.cfg.CatalogTimeout, p.logger).FetchProducts(ctx)
	p.logger.Info("fetched products", "count", len(products))

	p.logger.Info("enriching sales data")
	enriched := enrich.Enrich(valid, catalog.Mapping(products))
	results.EnrichedCount = len(enriched)
	for _, e := range enriched {
		if e.APIMatch {
			results.MatchedCount++
		}
	}
	p.logger.Info("enrichment complete", "matched", results.MatchedCount, "total", results.EnrichedCount)

	p.logger.Info("saving enriched data", "path", p.cfg.EnrichedPath)
	if err := report.SaveEnriched(p.cfg.EnrichedPath, enriched); err != nil {
		p.logger.Error("failed to save enriched data", "error", err)
	}

	p.logger.Info("generating report", "path", p.cfg.ReportPath)
	if err := report.SaveReport(p.cfg.ReportPath, results); err != nil {
		p.logger.Error("failed to write report", "error", err)
	}

	p.logger.Info("process complete")
	return results, nil
}

// Run executes the pipeline end to end with the given filters.
func (p *Processor) Run(ctx context.Context, filters validate.Filters) (report.Results, error) {
	records, err := p.LoadRecords()
	if err != nil {
		return report.Results{}, err
	}
	return p.Analyze(ctx, records, filters)
}

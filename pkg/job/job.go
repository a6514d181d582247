// Package job loads batch job files so the pipeline can run without
// interactive prompts.
package job

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arvindps/salescan/pkg/config"
	"github.com/arvindps/salescan/pkg/validate"
)

// Job describes one non-interactive pipeline run.
type Job struct {
	Input    string     `yaml:"input"`
	Enriched string     `yaml:"enriched_output"`
	Report   string     `yaml:"report_output"`
	Filter   FilterSpec `yaml:"filters"`
}

// FilterSpec mirrors validate.Filters in YAML form. Absent amounts mean
// "no bound".
type FilterSpec struct {
	Region    string   `yaml:"region"`
	MinAmount *float64 `yaml:"min_amount"`
	MaxAmount *float64 `yaml:"max_amount"`
}

// Load reads and validates a job file.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	var j Job
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}

	if j.Filter.MinAmount != nil && j.Filter.MaxAmount != nil && *j.Filter.MinAmount > *j.Filter.MaxAmount {
		return nil, fmt.Errorf("job file %s: min_amount is greater than max_amount", path)
	}
	return &j, nil
}

// Filters converts the job's filter spec into pipeline filters.
func (j *Job) Filters() validate.Filters {
	return validate.Filters{
		Region:    j.Filter.Region,
		MinAmount: j.Filter.MinAmount,
		MaxAmount: j.Filter.MaxAmount,
	}
}

// ApplyTo overrides the paths the job specifies onto cfg.
func (j *Job) ApplyTo(cfg *config.Config) {
	if j.Input != "" {
		cfg.InputPath = j.Input
	}
	if j.Enriched != "" {
		cfg.EnrichedPath = j.Enriched
	}
	if j.Report != "" {
		cfg.ReportPath = j.Report
	}
}

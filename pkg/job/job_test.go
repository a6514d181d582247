package job

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvindps/salescan/pkg/config"
)

func writeJob(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeJob(t, `
input: testdata/sales.txt
enriched_output: out/enriched.txt
report_output: out/report.txt
filters:
  region: North
  min_amount: 100
  max_amount: 5000
`)

	j, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "testdata/sales.txt", j.Input)

	filters := j.Filters()
	assert.Equal(t, "North", filters.Region)
	require.NotNil(t, filters.MinAmount)
	assert.Equal(t, 100.0, *filters.MinAmount)
	require.NotNil(t, filters.MaxAmount)
	assert.Equal(t, 5000.0, *filters.MaxAmount)
}

func TestLoadNoFilters(t *testing.T) {
	j, err := Load(writeJob(t, "input: sales.txt\n"))
	require.NoError(t, err)

	filters := j.Filters()
	assert.Empty(t, filters.Region)
	assert.Nil(t, filters.MinAmount)
	assert.Nil(t, filters.MaxAmount)
}

func TestLoadRejectsInvertedBounds(t *testing.T) {
	_, err := Load(writeJob(t, `
filters:
  min_amount: 500
  max_amount: 100
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_amount")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApplyTo(t *testing.T) {
	cfg := config.Default()
	j := &Job{Input: "custom.txt", Report: "custom_report.txt"}

	j.ApplyTo(cfg)

	assert.Equal(t, "custom.txt", cfg.InputPath)
	assert.Equal(t, "custom_report.txt", cfg.ReportPath)
	// Unset values keep the defaults.
	assert.Equal(t, "data/enriched_sales_data.txt", cfg.EnrichedPath)
}

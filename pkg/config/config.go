package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds every tunable of the pipeline. Values come from defaults,
// an optional YAML config file, SALESCAN_* environment variables and CLI
// flags, in increasing order of precedence.
type Config struct {
	InputPath      string
	EnrichedPath   string
	ReportPath     string
	Delimiter      string
	Encodings      []string
	CatalogURL     string
	CatalogTimeout time.Duration
	TopProducts    int
	LowThreshold   int
}

// flag name -> viper key, for the flags that override config values.
var flagBindings = map[string]string{
	"input":     "input",
	"top":       "top_products",
	"threshold": "low_quantity_threshold",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input", "data/sales_data.txt")
	v.SetDefault("enriched_output", "data/enriched_sales_data.txt")
	v.SetDefault("report_output", "output/sales_report.txt")
	v.SetDefault("delimiter", "|")
	v.SetDefault("encodings", []string{"utf-8", "latin-1", "utf-16"})
	v.SetDefault("catalog.url", "https://dummyjson.com/products?limit=100")
	v.SetDefault("catalog.timeout", 10*time.Second)
	v.SetDefault("top_products", 5)
	v.SetDefault("low_quantity_threshold", 10)
}

// Build assembles the configuration. cfgFile may be empty, in which case a
// config.yaml in the working directory is used when present. flags may be nil.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SALESCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	if flags != nil {
		for name, key := range flagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	return fromViper(v), nil
}

// Default returns the built-in configuration, untouched by files, env or
// flags. Used by tests and as the base for job files.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		InputPath:      v.GetString("input"),
		EnrichedPath:   v.GetString("enriched_output"),
		ReportPath:     v.GetString("report_output"),
		Delimiter:      v.GetString("delimiter"),
		Encodings:      v.GetStringSlice("encodings"),
		CatalogURL:     v.GetString("catalog.url"),
		CatalogTimeout: v.GetDuration("catalog.timeout"),
		TopProducts:    v.GetInt("top_products"),
		LowThreshold:   v.GetInt("low_quantity_threshold"),
	}
}

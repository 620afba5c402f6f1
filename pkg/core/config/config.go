package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config holds every tunable of the mapping pipeline. Zero values are not
// usable; start from Default().
type Config struct {
	TemporalTolerance float64 `yaml:"temporal_tolerance"`
	TemporalEnabled   bool    `yaml:"temporal_enabled"`

	SummationTolerance float64 `yaml:"summation_tolerance"`
	SummationEnabled   bool    `yaml:"summation_enabled"`

	LLMEnabled                bool    `yaml:"llm_enabled"`
	LLMModel                  string  `yaml:"llm_model"`
	LLMFallbackModel          string  `yaml:"llm_fallback_model"`
	LLMAnalysisModel          string  `yaml:"llm_analysis_model"`
	LLMBaseURL                string  `yaml:"llm_base_url"`
	LLMAmbiguityThreshold     float64 `yaml:"llm_ambiguity_threshold"`
	LLMLowConfidenceThreshold float64 `yaml:"llm_low_confidence_threshold"`

	DiscoveryEnabled bool `yaml:"discovery_enabled"`

	// ExpectedFacts lists, per statement type, the canonical names the
	// discovery pass tries to fill and coverage is judged against.
	ExpectedFacts map[string][]string `yaml:"expected_facts"`
}

// Default returns the pipeline defaults.
func Default() *Config {
	return &Config{
		TemporalTolerance:         0.10,
		TemporalEnabled:           true,
		SummationTolerance:        0.02,
		SummationEnabled:          true,
		LLMEnabled:                true,
		LLMModel:                  "qwen2.5:14b",
		LLMFallbackModel:          "llama3.1:8b",
		LLMAnalysisModel:          "qwen2.5:32b",
		LLMBaseURL:                "http://localhost:11434",
		LLMAmbiguityThreshold:     15,
		LLMLowConfidenceThreshold: 40,
		DiscoveryEnabled:          true,
		ExpectedFacts: map[string][]string{
			"income_statement": {
				"Total revenue", "Cost of revenue", "Gross profit",
				"Operating income", "Income before taxes",
				"Income tax expense", "Net income",
			},
			"balance_sheet": {
				"Cash and cash equivalents", "Total current assets",
				"Total Assets", "Total current liabilities",
				"Total liabilities", "Stockholders Equity",
				"Total liabilities and equity",
			},
			"cash_flow": {
				"Net income", "Net cash from operating activities",
				"Capital expenditures", "Net cash from investing activities",
				"Net cash from financing activities", "Net change in cash",
			},
		},
	}
}

// Load reads a YAML file over the defaults. A missing path is not an error;
// a present but malformed file is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		cfg.ApplyEnv()
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.ApplyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("CONFIG_READ_ERROR: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("CONFIG_PARSE_ERROR: %w", err)
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overlays the FINMAP_LLM_* environment variables. Only the agent
// endpoint and model names are env-tunable; everything else lives in the
// file or on flags.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("FINMAP_LLM_BASE_URL"); v != "" {
		c.LLMBaseURL = v
	}
	if v := os.Getenv("FINMAP_LLM_MODEL"); v != "" {
		c.LLMModel = v
	}
	if v := os.Getenv("FINMAP_LLM_FALLBACK_MODEL"); v != "" {
		c.LLMFallbackModel = v
	}
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.TemporalTolerance < 0 || c.TemporalTolerance >= 1 {
		return fmt.Errorf("CONFIG_INVALID: temporal_tolerance %v outside [0,1)", c.TemporalTolerance)
	}
	if c.SummationTolerance < 0 || c.SummationTolerance >= 1 {
		return fmt.Errorf("CONFIG_INVALID: summation_tolerance %v outside [0,1)", c.SummationTolerance)
	}
	if c.LLMAmbiguityThreshold < 0 || c.LLMLowConfidenceThreshold < 0 {
		return fmt.Errorf("CONFIG_INVALID: agent thresholds must be non-negative")
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.TemporalTolerance != 0.10 {
		t.Errorf("temporal tolerance = %v, want 0.10", cfg.TemporalTolerance)
	}
	if cfg.SummationTolerance != 0.02 {
		t.Errorf("summation tolerance = %v, want 0.02", cfg.SummationTolerance)
	}
	if cfg.LLMAmbiguityThreshold != 15 || cfg.LLMLowConfidenceThreshold != 40 {
		t.Errorf("agent thresholds = %v/%v, want 15/40",
			cfg.LLMAmbiguityThreshold, cfg.LLMLowConfidenceThreshold)
	}
	if cfg.LLMBaseURL != "http://localhost:11434" {
		t.Errorf("base URL = %q, want local ollama default", cfg.LLMBaseURL)
	}
	for _, st := range []string{"income_statement", "balance_sheet", "cash_flow"} {
		if len(cfg.ExpectedFacts[st]) == 0 {
			t.Errorf("expected_facts[%s] must list canonical names by default", st)
		}
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate, got %v", err)
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SummationTolerance != 0.02 {
		t.Error("missing file should fall back to defaults")
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finmap.yaml")
	body := "temporal_tolerance: 0.05\nllm_enabled: false\n" +
		"expected_facts:\n  income_statement: [\"Total revenue\", \"Net income\"]\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TemporalTolerance != 0.05 {
		t.Errorf("temporal tolerance = %v, want file value 0.05", cfg.TemporalTolerance)
	}
	if cfg.LLMEnabled {
		t.Error("llm_enabled: false not applied")
	}
	got := cfg.ExpectedFacts["income_statement"]
	if len(got) != 2 || got[0] != "Total revenue" || got[1] != "Net income" {
		t.Errorf("expected_facts[income_statement] = %v, want the file's two names", got)
	}
	// Untouched keys keep defaults.
	if cfg.SummationTolerance != 0.02 {
		t.Error("unrelated keys must keep their defaults")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("::: not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyEnvOverridesConnectionSettings(t *testing.T) {
	t.Setenv("FINMAP_LLM_BASE_URL", "http://gpu-box:11434")
	t.Setenv("FINMAP_LLM_MODEL", "qwen2.5:72b")
	t.Setenv("FINMAP_LLM_ENABLED", "false")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.LLMBaseURL != "http://gpu-box:11434" {
		t.Errorf("base URL = %q, want env override", cfg.LLMBaseURL)
	}
	if cfg.LLMModel != "qwen2.5:72b" {
		t.Errorf("model = %q, want env override", cfg.LLMModel)
	}
	// The env surface covers endpoint and model names only; the enable
	// toggle lives in the file and on the --no-llm flag.
	if !cfg.LLMEnabled {
		t.Error("FINMAP_LLM_ENABLED must not be honored")
	}
}

func TestValidateBounds(t *testing.T) {
	cfg := Default()
	cfg.TemporalTolerance = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("tolerance above 1 must fail validation")
	}
	cfg = Default()
	cfg.LLMAmbiguityThreshold = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative threshold must fail validation")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().ToModelParams().Validate(); err != nil {
		t.Fatalf("default scenario invalid: %v", err)
	}
}

func TestLoad_MergesScenarioFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", `
scenario:
  name: base
  house_price: 800000
  down_payment: 0.10
  mortgage_rate: 0.04
  term_years: 30
  rent_yield: 0.045
  investment_return: 0.06
  home_appreciation: 0.02
`)
	cfgPath := writeFile(t, dir, "config.yaml", `
scenario_file: base.yaml
scenario:
  mortgage_rate: 0.055
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scenario.MortgageRate != 0.055 {
		t.Errorf("override not applied: mortgage_rate = %v", cfg.Scenario.MortgageRate)
	}
	if cfg.Scenario.HousePrice != 800000 || cfg.Scenario.TermYears != 30 {
		t.Errorf("base values lost: %+v", cfg.Scenario)
	}
	if cfg.Scenario.Name != "base" {
		t.Errorf("name = %q, want base", cfg.Scenario.Name)
	}
}

func TestLoad_InvalidScenarioRejected(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", `
scenario:
  house_price: 800000
  down_payment: 1.5
  term_years: 30
`)
	if _, err := Load(cfgPath); err == nil {
		t.Fatal("expected error for down_payment >= 1")
	}
}

func TestLoad_BadSweepFieldRejected(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", `
scenario:
  house_price: 800000
  down_payment: 0.1
  mortgage_rate: 0.04
  term_years: 30
  rent_yield: 0.045
  investment_return: 0.06
  home_appreciation: 0.02
sweeps:
  - name: bad
    row:
      field: no_such_field
      values: [1, 2]
    col:
      field: mortgage_rate
      values: [0.04]
`)
	if _, err := Load(cfgPath); err == nil {
		t.Fatal("expected error for unknown sweep field")
	}
}

func TestSweepConfig_ToSweep(t *testing.T) {
	s := SweepConfig{
		Name: "custom",
		Row:  AxisConfig{Field: "term_years", Values: []float64{10, 20, 30}},
		Col:  AxisConfig{Field: "mortgage_rate", Start: 0.03, Stop: 0.05, Step: 0.01},
	}
	sw := s.ToSweep()
	if len(sw.Row.Points) != 3 {
		t.Errorf("row points = %d, want 3", len(sw.Row.Points))
	}
	if sw.Row.Points[0].Label != "10" {
		t.Errorf("term label = %q, want plain number", sw.Row.Points[0].Label)
	}
	if len(sw.Col.Points) != 3 {
		t.Errorf("col points = %d, want 3", len(sw.Col.Points))
	}
	if sw.Col.Points[2].Label != "5%" {
		t.Errorf("rate label = %q, want 5%%", sw.Col.Points[2].Label)
	}
}

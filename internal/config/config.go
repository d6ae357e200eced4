package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"buyrent-sim/internal/model"
	"buyrent-sim/internal/sensitivity"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the base scenario from a separate YAML
	// (e.g. examples/scenarios/*.yaml). If both ScenarioFile and
	// Scenario are provided, Scenario overrides ScenarioFile.
	ScenarioFile string         `yaml:"scenario_file"`
	Scenario     ScenarioConfig `yaml:"scenario"`
	// Sweeps to run for `cli grid`. Empty means the reference sweeps.
	Sweeps []SweepConfig `yaml:"sweeps"`
}

type ScenarioConfig struct {
	Name             string  `yaml:"name"`
	HousePrice       float64 `yaml:"house_price"`
	DownPayment      float64 `yaml:"down_payment"`
	MortgageRate     float64 `yaml:"mortgage_rate"`
	TermYears        int     `yaml:"term_years"`
	RentYield        float64 `yaml:"rent_yield"`
	InvestmentReturn float64 `yaml:"investment_return"`
	HomeAppreciation float64 `yaml:"home_appreciation"`
}

type SweepConfig struct {
	Name string     `yaml:"name"`
	Row  AxisConfig `yaml:"row"`
	Col  AxisConfig `yaml:"col"`
}

// AxisConfig describes one swept parameter: either an explicit value list
// or an inclusive start/stop/step range.
type AxisConfig struct {
	Field  string    `yaml:"field"`
	Values []float64 `yaml:"values"`
	Start  float64   `yaml:"start"`
	Stop   float64   `yaml:"stop"`
	Step   float64   `yaml:"step"`
}

// Default returns the Kuala Lumpur reference scenario.
func Default() ScenarioConfig {
	return ScenarioConfig{
		Name:             "kuala-lumpur-base",
		HousePrice:       800000,
		DownPayment:      0.10,
		MortgageRate:     0.04,
		TermYears:        30,
		RentYield:        0.045,
		InvestmentReturn: 0.06,
		HomeAppreciation: 0.02,
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If scenario_file is set, load it and merge in any explicit overrides
	// from c.Scenario.
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, falling back to the path as given (relative to cwd).
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		loaded, err := loadScenarioFile(scenarioPath)
		if err != nil {
			return nil, err
		}
		c.Scenario = MergeScenario(loaded, c.Scenario)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate scenario params by constructing model.ScenarioParams.
	if err := c.Scenario.ToModelParams().Validate(); err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	for i, s := range c.Sweeps {
		if err := s.validate(); err != nil {
			return fmt.Errorf("sweep %d (%s): %w", i, s.Name, err)
		}
	}
	return nil
}

func (s SweepConfig) validate() error {
	if err := s.Row.validate(); err != nil {
		return fmt.Errorf("row: %w", err)
	}
	if err := s.Col.validate(); err != nil {
		return fmt.Errorf("col: %w", err)
	}
	if s.Row.Field == s.Col.Field {
		return fmt.Errorf("row and col select the same field %q", s.Row.Field)
	}
	return nil
}

func (a AxisConfig) validate() error {
	if !model.KnownField(a.Field) {
		return fmt.Errorf("unknown field %q", a.Field)
	}
	if len(a.Values) > 0 {
		return nil
	}
	if a.Step <= 0 {
		return errors.New("step must be > 0 when values are not listed")
	}
	if a.Stop < a.Start {
		return errors.New("stop must be >= start")
	}
	return nil
}

func (s ScenarioConfig) ToModelParams() model.ScenarioParams {
	return model.ScenarioParams{
		HousePrice:             s.HousePrice,
		DownPaymentFraction:    s.DownPayment,
		MortgageAnnualRate:     s.MortgageRate,
		TermYears:              s.TermYears,
		RentYieldAnnual:        s.RentYield,
		InvestmentAnnualReturn: s.InvestmentReturn,
		HomeAppreciationAnnual: s.HomeAppreciation,
	}
}

// ToSweep resolves a sweep config into runnable axes.
func (s SweepConfig) ToSweep() sensitivity.Sweep {
	return sensitivity.Sweep{
		ID:    s.Name,
		Title: s.Name,
		Row:   s.Row.toAxis(),
		Col:   s.Col.toAxis(),
	}
}

func (a AxisConfig) toAxis() sensitivity.Axis {
	label := sensitivity.LabelFor(a.Field)
	if len(a.Values) > 0 {
		return sensitivity.ValuesAxis(a.Field, a.Values, label)
	}
	return sensitivity.RangeAxis(a.Field, a.Start, a.Stop, a.Step, label)
}

type scenarioFileWrapper struct {
	Scenario ScenarioConfig `yaml:"scenario"`
}

func loadScenarioFile(path string) (ScenarioConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, err
	}
	var w scenarioFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ScenarioConfig{}, err
	}
	return w.Scenario, nil
}

// MergeScenario overlays non-zero fields from override onto base.
// A zero down payment or zero rate cannot be expressed as an override;
// put it in the base file instead.
func MergeScenario(base, override ScenarioConfig) ScenarioConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.HousePrice != 0 {
		out.HousePrice = override.HousePrice
	}
	if override.DownPayment != 0 {
		out.DownPayment = override.DownPayment
	}
	if override.MortgageRate != 0 {
		out.MortgageRate = override.MortgageRate
	}
	if override.TermYears != 0 {
		out.TermYears = override.TermYears
	}
	if override.RentYield != 0 {
		out.RentYield = override.RentYield
	}
	if override.InvestmentReturn != 0 {
		out.InvestmentReturn = override.InvestmentReturn
	}
	if override.HomeAppreciation != 0 {
		out.HomeAppreciation = override.HomeAppreciation
	}
	return out
}

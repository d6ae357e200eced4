package main

import (
	"flag"
	"fmt"

	"buyrent-sim/internal/config"
	"buyrent-sim/internal/scenario"
	"buyrent-sim/internal/sensitivity"
)

// Demo:
// - Evaluate the Kuala Lumpur base case
// - Sweep the mortgage rate x investment return table to show how the
//   evaluator and grid runner fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	sc := config.Default()
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		sc = cfg.Scenario
	}
	params := sc.ToModelParams()

	eval := scenario.New()
	res, err := eval.Evaluate(params)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Scenario %q over %d years\n", sc.Name, params.TermYears)
	fmt.Printf("buy=%.0f rent=%.0f diff=%.0f\n\n", res.BuyWealth, res.RentWealth, res.Difference)

	sw := sensitivity.ReferenceSweeps()[0]
	g, err := sensitivity.NewRunner(eval).BuildGrid(params, sw.Row, sw.Col)
	if err != nil {
		panic(err)
	}

	fmt.Println(sw.Title)
	fmt.Printf("%-6s", "")
	for _, cp := range g.Col.Points {
		fmt.Printf(" %12s", cp.Label)
	}
	fmt.Println()
	for i, rp := range g.Row.Points {
		fmt.Printf("%-6s", rp.Label)
		for j := range g.Col.Points {
			fmt.Printf(" %12.0f", g.Cells[i][j])
		}
		fmt.Println()
	}
}

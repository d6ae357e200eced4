package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"buyrent-sim/internal/config"
	"buyrent-sim/internal/finance"
	"buyrent-sim/internal/model"
	"buyrent-sim/internal/scenario"
	"buyrent-sim/internal/sensitivity"

	"github.com/dustin/go-humanize"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "evaluate":
		cmdEvaluate(os.Args[2:])
	case "grid":
		cmdGrid(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli evaluate --config examples/config.yaml")
	fmt.Println("  cli grid --config examples/config.yaml --out results")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - evaluate prints the buy-vs-rent wealth comparison for one scenario")
	fmt.Println("  - grid runs the configured sensitivity sweeps and writes one CSV per sweep")
	fmt.Println("  - without --config, the Kuala Lumpur reference scenario is used")
}

func cmdEvaluate(args []string) {
	fs := flag.NewFlagSet("evaluate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	_ = fs.Parse(args)

	sc := loadScenario(*cfgPath)
	params := sc.ToModelParams()

	eval := scenario.New()
	res, err := eval.Evaluate(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "evaluate: %v\n", err)
		os.Exit(1)
	}

	loan := params.HousePrice * (1 - params.DownPaymentFraction)
	monthlyMortgage := finance.MonthlyMortgagePayment(loan, params.MortgageAnnualRate, params.TermYears)
	monthlyRent := (params.HousePrice * params.RentYieldAnnual) / 12.0

	fmt.Printf("Scenario: %s\n", sc.Name)
	fmt.Printf("  House price        %s\n", formatRM(params.HousePrice))
	fmt.Printf("  Down payment       %.1f%%  Mortgage %.2f%%  Term %dy\n",
		params.DownPaymentFraction*100, params.MortgageAnnualRate*100, params.TermYears)
	fmt.Printf("  Rent yield %.2f%%  Invest %.2f%%  Appreciation %.2f%%\n",
		params.RentYieldAnnual*100, params.InvestmentAnnualReturn*100, params.HomeAppreciationAnnual*100)
	fmt.Println()
	fmt.Printf("Monthly mortgage     %s\n", formatRM(monthlyMortgage))
	fmt.Printf("Monthly rent         %s\n", formatRM(monthlyRent))
	fmt.Printf("Monthly differential %s\n", formatRM(monthlyMortgage-monthlyRent))
	fmt.Println()
	fmt.Printf("Buying wealth        %s\n", formatRM(res.BuyWealth))
	fmt.Printf("Renting wealth       %s\n", formatRM(res.RentWealth))
	fmt.Printf("Buy - Rent           %s  [%s]\n", formatRM(res.Difference),
		model.VerdictFromDifference(res.Difference))
	fmt.Println()
	printCues()
}

func cmdGrid(args []string) {
	fs := flag.NewFlagSet("grid", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outDir := fs.String("out", "results", "Output directory for CSV files")
	_ = fs.Parse(args)

	var sc config.ScenarioConfig
	sweeps := sensitivity.ReferenceSweeps()
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		sc = cfg.Scenario
		if len(cfg.Sweeps) > 0 {
			sweeps = sweeps[:0]
			for _, s := range cfg.Sweeps {
				sweeps = append(sweeps, s.ToSweep())
			}
		}
	} else {
		sc = config.Default()
	}

	base := sc.ToModelParams()
	runner := sensitivity.NewRunner(nil)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir %s: %v\n", *outDir, err)
		os.Exit(1)
	}

	for _, sw := range sweeps {
		g, err := runner.BuildGrid(base, sw.Row, sw.Col)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sweep %s: %v\n", sw.ID, err)
			os.Exit(1)
		}

		fmt.Printf("%s\n", sw.Title)
		printGrid(g)

		path := filepath.Join(*outDir, sw.ID+".csv")
		if err := sensitivity.WriteGridCSV(path, g); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n\n", path)
	}
}

func printGrid(g *sensitivity.Grid) {
	fmt.Printf("%-8s", g.Row.Field)
	for _, cp := range g.Col.Points {
		fmt.Printf(" %14s", cp.Label)
	}
	fmt.Println()
	for i, rp := range g.Row.Points {
		fmt.Printf("%-8s", rp.Label)
		for j := range g.Col.Points {
			fmt.Printf(" %14s", formatRM(g.Cells[i][j]))
		}
		fmt.Println()
	}
}

func printCues() {
	fmt.Println("When buying wins: low mortgage rates (<=4%), steady appreciation (>=2%/yr),")
	fmt.Println("expensive rent (>=4.5% of price), long horizons (~30y).")
	fmt.Println("When renting wins: high mortgage rates (>=5.5%), stagnant prices (~0%),")
	fmt.Println("investment returns >=7-8%, cheap rent (<=3.5% of price).")
}

func loadScenario(cfgPath string) config.ScenarioConfig {
	if cfgPath == "" {
		return config.Default()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	return cfg.Scenario
}

func formatRM(v float64) string {
	if v < 0 {
		return "-RM " + humanize.CommafWithDigits(-v, 0)
	}
	return "RM " + humanize.CommafWithDigits(v, 0)
}

package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/option-pricer/src/models"
	"github.com/jiaming2012/option-pricer/src/pricing"
)

type RunArgs struct {
	Spot       float64
	Strike     float64
	Rate       float64
	Volatility float64
	Maturity   float64
	OptionType string
}

var binomialStepCounts = []int{5, 10, 50, 100, 500, 1000, 5000}
var monteCarloDrawCounts = []int{100, 1000, 10000, 100000, 1000000}

var runCmd = &cobra.Command{
	Use:   "convergence",
	Short: "Measure lattice and Monte Carlo pricing error against the Black-Scholes reference",
	Run: func(cmd *cobra.Command, args []string) {
		spot, _ := cmd.Flags().GetFloat64("spot")
		strike, _ := cmd.Flags().GetFloat64("strike")
		rate, _ := cmd.Flags().GetFloat64("rate")
		volatility, _ := cmd.Flags().GetFloat64("vol")
		maturity, _ := cmd.Flags().GetFloat64("maturity")
		optionType, _ := cmd.Flags().GetString("type")

		if err := Run(RunArgs{
			Spot:       spot,
			Strike:     strike,
			Rate:       rate,
			Volatility: volatility,
			Maturity:   maturity,
			OptionType: optionType,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	contract := models.OptionContract{
		Spot:           args.Spot,
		Strike:         args.Strike,
		Rate:           args.Rate,
		Volatility:     args.Volatility,
		TimeToMaturity: args.Maturity,
		OptionType:     models.OptionType(args.OptionType),
	}

	reference, err := pricing.NewClosedFormPricer().Price(contract)
	if err != nil {
		return fmt.Errorf("failed to compute reference price: %w", err)
	}

	fmt.Printf("Black-Scholes reference price: %.6f\n\n", reference.Price)

	binomialTable := tablewriter.NewWriter(os.Stdout)
	binomialTable.SetHeader([]string{"Steps", "Price", "Abs Error", "Runtime"})

	for _, steps := range binomialStepCounts {
		start := time.Now()
		estimate, err := pricing.NewLatticePricer(steps).Price(contract)
		if err != nil {
			return fmt.Errorf("failed to price with %d lattice steps: %w", steps, err)
		}

		binomialTable.Append([]string{
			fmt.Sprintf("%d", steps),
			fmt.Sprintf("%.6f", estimate.Price),
			fmt.Sprintf("%.6f", math.Abs(estimate.Price-reference.Price)),
			time.Since(start).String(),
		})
	}

	fmt.Println("Binomial (CRR) convergence:")
	binomialTable.Render()

	mcTable := tablewriter.NewWriter(os.Stdout)
	mcTable.SetHeader([]string{"Draws", "Price", "Std Error", "Abs Error", "Runtime"})

	for _, draws := range monteCarloDrawCounts {
		start := time.Now()
		estimate, err := pricing.NewSimulationPricer(draws, nil).Price(contract)
		if err != nil {
			return fmt.Errorf("failed to price with %d draws: %w", draws, err)
		}

		stderr := 0.0
		if estimate.StdError != nil {
			stderr = *estimate.StdError
		}

		mcTable.Append([]string{
			fmt.Sprintf("%d", draws),
			fmt.Sprintf("%.6f", estimate.Price),
			fmt.Sprintf("%.6f", stderr),
			fmt.Sprintf("%.6f", math.Abs(estimate.Price-reference.Price)),
			time.Since(start).String(),
		})
	}

	fmt.Println("\nMonte Carlo convergence:")
	mcTable.Render()

	return nil
}

func main() {
	runCmd.Flags().Float64("spot", 100.0, "Initial stock price")
	runCmd.Flags().Float64("strike", 100.0, "Strike price")
	runCmd.Flags().Float64("rate", 0.05, "Risk-free rate")
	runCmd.Flags().Float64("vol", 0.2, "Volatility")
	runCmd.Flags().Float64("maturity", 1.0, "Time to maturity in years")
	runCmd.Flags().String("type", "call", "Option type: call or put")

	if err := runCmd.Execute(); err != nil {
		log.Fatalf("error executing command: %v", err)
	}
}

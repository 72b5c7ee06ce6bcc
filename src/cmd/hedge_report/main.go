package main

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/option-pricer/src/hedging"
	"github.com/jiaming2012/option-pricer/src/models"
)

type RunArgs struct {
	Spot            float64
	Strike          float64
	Rate            float64
	Volatility      float64
	Maturity        float64
	OptionType      string
	Frequency       string
	TransactionCost float64
	OptionContracts int
	Seed            int64
	CsvOutput       string
	CompareFreqs    []string
	NumSimulations  int
}

var runCmd = &cobra.Command{
	Use:   "hedge_report",
	Short: "Run a delta hedging simulation and print the resulting report",
	Run: func(cmd *cobra.Command, args []string) {
		spot, _ := cmd.Flags().GetFloat64("spot")
		strike, _ := cmd.Flags().GetFloat64("strike")
		rate, _ := cmd.Flags().GetFloat64("rate")
		volatility, _ := cmd.Flags().GetFloat64("vol")
		maturity, _ := cmd.Flags().GetFloat64("maturity")
		optionType, _ := cmd.Flags().GetString("type")
		frequency, _ := cmd.Flags().GetString("freq")
		transactionCost, _ := cmd.Flags().GetFloat64("cost")
		optionContracts, _ := cmd.Flags().GetInt("contracts")
		seed, _ := cmd.Flags().GetInt64("seed")
		csvOutput, _ := cmd.Flags().GetString("csv")
		compareFreqs, _ := cmd.Flags().GetStringSlice("compare")
		numSimulations, _ := cmd.Flags().GetInt("simulations")

		if err := Run(RunArgs{
			Spot:            spot,
			Strike:          strike,
			Rate:            rate,
			Volatility:      volatility,
			Maturity:        maturity,
			OptionType:      optionType,
			Frequency:       frequency,
			TransactionCost: transactionCost,
			OptionContracts: optionContracts,
			Seed:            seed,
			CsvOutput:       csvOutput,
			CompareFreqs:    compareFreqs,
			NumSimulations:  numSimulations,
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

	seed := args.Seed
	simulator := hedging.NewSimulator(contract, args.Frequency, args.TransactionCost, args.OptionContracts, 1.0, &seed)

	result, err := simulator.Run()
	if err != nil {
		return fmt.Errorf("failed to run hedge simulation: %w", err)
	}

	fmt.Printf("Hedge simulation %s (%s, freq=%s, cost=%.4f%%)\n\n",
		result.RunID, args.OptionType, args.Frequency, args.TransactionCost*100)

	summaryTable := tablewriter.NewWriter(os.Stdout)
	summaryTable.SetHeader([]string{"Metric", "Value"})
	summaryTable.Append([]string{"Total P&L", fmt.Sprintf("%.2f", result.Summary.TotalPnl)})
	summaryTable.Append([]string{"Option P&L", fmt.Sprintf("%.2f", result.Summary.OptionPnl)})
	summaryTable.Append([]string{"Hedging P&L", fmt.Sprintf("%.2f", result.Summary.HedgingPnl)})
	summaryTable.Append([]string{"Replication Error", fmt.Sprintf("%.2f", result.Summary.ReplicationError)})
	summaryTable.Append([]string{"Transaction Cost", fmt.Sprintf("%.2f", result.Summary.TotalTransactionCost)})
	summaryTable.Append([]string{"Max Drawdown", fmt.Sprintf("%.2f", result.Summary.MaxDrawdown)})
	summaryTable.Append([]string{"Final Portfolio Value", fmt.Sprintf("%.2f", result.Summary.FinalPortfolioValue)})

	fmt.Println("Summary:")
	summaryTable.Render()

	txTable := tablewriter.NewWriter(os.Stdout)
	txTable.SetHeader([]string{"Time", "Stock", "Delta", "Shares Traded", "Type", "Cost", "Total P&L"})

	for _, tx := range result.Transactions {
		txTable.Append([]string{
			fmt.Sprintf("%.4f", tx.Time),
			fmt.Sprintf("%.4f", tx.StockPrice),
			fmt.Sprintf("%.6f", tx.Delta),
			fmt.Sprintf("%.2f", tx.SharesTraded),
			string(tx.TransactionType),
			fmt.Sprintf("%.2f", tx.TradeCost),
			fmt.Sprintf("%.2f", tx.TotalPnl),
		})
	}

	fmt.Printf("\nTransactions (%d):\n", len(result.Transactions))
	txTable.Render()

	if args.CsvOutput != "" {
		if err := exportTimeSeries(result.TimeSeries, args.CsvOutput); err != nil {
			return fmt.Errorf("failed to export time series: %w", err)
		}

		log.Infof("wrote %d time series rows to %s", len(result.TimeSeries), args.CsvOutput)
	}

	if len(args.CompareFreqs) > 0 {
		statsRows, err := hedging.CompareFrequencies(contract, args.CompareFreqs, args.TransactionCost, args.NumSimulations, args.OptionContracts)
		if err != nil {
			return fmt.Errorf("failed to compare frequencies: %w", err)
		}

		freqTable := tablewriter.NewWriter(os.Stdout)
		freqTable.SetHeader([]string{"Frequency", "Mean P&L", "Std P&L", "Min P&L", "Max P&L", "Mean Cost", "Mean Hedge Error"})

		for _, row := range statsRows {
			freqTable.Append([]string{
				row.Frequency,
				fmt.Sprintf("%.2f", row.MeanPnl),
				fmt.Sprintf("%.2f", row.StdPnl),
				fmt.Sprintf("%.2f", row.MinPnl),
				fmt.Sprintf("%.2f", row.MaxPnl),
				fmt.Sprintf("%.2f", row.MeanTransactionCost),
				fmt.Sprintf("%.2f", row.MeanHedgingError),
			})
		}

		fmt.Printf("\nFrequency comparison (%d simulations each):\n", args.NumSimulations)
		freqTable.Render()
	}

	return nil
}

func exportTimeSeries(records []models.HedgeStepRecord, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	defer file.Close()

	rows := make([]*models.HedgeStepRecord, 0, len(records))
	for i := range records {
		rows = append(rows, &records[i])
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	return nil
}

func main() {
	runCmd.Flags().Float64("spot", 100.0, "Initial stock price")
	runCmd.Flags().Float64("strike", 100.0, "Strike price")
	runCmd.Flags().Float64("rate", 0.05, "Risk-free rate")
	runCmd.Flags().Float64("vol", 0.2, "Volatility")
	runCmd.Flags().Float64("maturity", 0.25, "Time to maturity in years")
	runCmd.Flags().String("type", "call", "Option type: call or put")
	runCmd.Flags().String("freq", "daily", "Rebalancing frequency: daily, weekly, biweekly, monthly, or a day count")
	runCmd.Flags().Float64("cost", 0.001, "Proportional transaction cost")
	runCmd.Flags().Int("contracts", 1, "Number of option contracts")
	runCmd.Flags().Int64("seed", 42, "Random seed for the price path")
	runCmd.Flags().String("csv", "", "Optional path for a CSV export of the hedge time series")
	runCmd.Flags().StringSlice("compare", nil, "Frequencies to compare, e.g. daily,weekly,monthly")
	runCmd.Flags().Int("simulations", 100, "Simulations per frequency in the comparison")

	if err := runCmd.Execute(); err != nil {
		log.Fatalf("error executing command: %v", err)
	}
}

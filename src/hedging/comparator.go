package hedging

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/option-pricer/src/models"
)

// CompareFrequencies runs the hedge simulation numSimulations times per
// frequency, seeding each run with its simulation index so the same paths
// are replayed for every frequency and the aggregates are directly
// comparable.
func CompareFrequencies(contract models.OptionContract, frequencies []string, transactionCost float64, numSimulations int, optionContracts int) ([]models.FrequencyStats, error) {
	if numSimulations <= 0 {
		return nil, models.NewValidationError("num_simulations", "number of simulations must be positive")
	}

	if len(frequencies) == 0 {
		return nil, models.NewValidationError("frequencies", "at least one rebalancing frequency is required")
	}

	results := make([]models.FrequencyStats, 0, len(frequencies))

	for _, freq := range frequencies {
		pnls := make([]float64, 0, numSimulations)
		costs := make([]float64, 0, numSimulations)
		errors := make([]float64, 0, numSimulations)

		for simIdx := 0; simIdx < numSimulations; simIdx++ {
			seed := int64(simIdx)
			simulator := NewSimulator(contract, freq, transactionCost, optionContracts, 1.0, &seed)

			result, err := simulator.Run()
			if err != nil {
				return nil, fmt.Errorf("failed to run simulation %d for frequency %s: %w", simIdx, freq, err)
			}

			pnls = append(pnls, result.Summary.FinalPnl())
			costs = append(costs, result.Summary.TotalTransactionCost)
			errors = append(errors, result.Summary.HedgingError())
		}

		freqStats, err := aggregate(freq, pnls, costs, errors)
		if err != nil {
			return nil, err
		}

		results = append(results, freqStats)
	}

	return results, nil
}

func aggregate(freq string, pnls, costs, errors []float64) (models.FrequencyStats, error) {
	meanPnl, err := stats.Mean(pnls)
	if err != nil {
		return models.FrequencyStats{}, fmt.Errorf("failed to calculate mean pnl: %w", err)
	}

	stdPnl, err := stats.StandardDeviation(pnls)
	if err != nil {
		return models.FrequencyStats{}, fmt.Errorf("failed to calculate pnl standard deviation: %w", err)
	}

	minPnl, err := stats.Min(pnls)
	if err != nil {
		return models.FrequencyStats{}, fmt.Errorf("failed to calculate min pnl: %w", err)
	}

	maxPnl, err := stats.Max(pnls)
	if err != nil {
		return models.FrequencyStats{}, fmt.Errorf("failed to calculate max pnl: %w", err)
	}

	meanCost, err := stats.Mean(costs)
	if err != nil {
		return models.FrequencyStats{}, fmt.Errorf("failed to calculate mean transaction cost: %w", err)
	}

	meanError, err := stats.Mean(errors)
	if err != nil {
		return models.FrequencyStats{}, fmt.Errorf("failed to calculate mean hedging error: %w", err)
	}

	return models.FrequencyStats{
		Frequency:           freq,
		MeanPnl:             meanPnl,
		StdPnl:              stdPnl,
		MinPnl:              minPnl,
		MaxPnl:              maxPnl,
		MeanTransactionCost: meanCost,
		MeanHedgingError:    meanError,
	}, nil
}

package pricing

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/option-pricer/src/models"
)

// SimulationPricer estimates the option price as the discounted mean payoff
// over independent GBM terminal draws. A fixed Seed makes the estimate
// bit-reproducible; a nil Seed draws fresh entropy on every call.
type SimulationPricer struct {
	Draws int
	Seed  *int64
}

func NewSimulationPricer(draws int, seed *int64) *SimulationPricer {
	return &SimulationPricer{
		Draws: draws,
		Seed:  seed,
	}
}

// Price returns the estimate together with the standard error of the
// discounted-payoff mean.
func (p *SimulationPricer) Price(contract models.OptionContract) (models.PriceEstimate, error) {
	if p.Draws <= 0 {
		return models.PriceEstimate{}, models.NewValidationError("N", "number of simulations must be positive")
	}

	if err := contract.Validate(); err != nil {
		return models.PriceEstimate{}, err
	}

	payoffs := make([]float64, p.Draws)

	if contract.TimeToMaturity == 0 {
		// Degenerate case: every terminal price equals the spot.
		payoff := contract.IntrinsicValue(contract.Spot)
		for i := range payoffs {
			payoffs[i] = payoff
		}
	} else {
		normal := NewStandardNormal(p.Seed)
		drift := (contract.Rate - 0.5*contract.Volatility*contract.Volatility) * contract.TimeToMaturity
		diffusion := contract.Volatility * math.Sqrt(contract.TimeToMaturity)

		for i := range payoffs {
			terminal := contract.Spot * math.Exp(drift+diffusion*normal.Rand())
			payoffs[i] = contract.IntrinsicValue(terminal)
		}
	}

	discount := 1.0
	if contract.TimeToMaturity > 0 {
		discount = math.Exp(-contract.Rate * contract.TimeToMaturity)
	}

	mean, err := stats.Mean(payoffs)
	if err != nil {
		return models.PriceEstimate{}, fmt.Errorf("failed to calculate mean payoff: %w", err)
	}

	sampleStd, err := stats.StandardDeviationSample(payoffs)
	if err != nil {
		return models.PriceEstimate{}, fmt.Errorf("failed to calculate payoff standard deviation: %w", err)
	}

	stdError := discount * sampleStd / math.Sqrt(float64(p.Draws))

	return models.PriceEstimate{
		Price:    discount * mean,
		StdError: &stdError,
	}, nil
}

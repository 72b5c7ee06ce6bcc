package hedging

import (
	"math"

	"github.com/jiaming2012/option-pricer/src/models"
	"github.com/jiaming2012/option-pricer/src/pricing"
)

// GeneratePath simulates one GBM trajectory of the underlying over the life
// of the contract: steps+1 points, S_{i+1} = S_i·exp((r-σ²/2)dt + σ√dt·Z).
// The recursion is sequential because each price depends multiplicatively on
// the previous one. The returned path is owned by the run that requested it.
func GeneratePath(contract models.OptionContract, steps int, seed *int64) models.PricePath {
	dt := contract.TimeToMaturity / float64(steps)
	normal := pricing.NewStandardNormal(seed)

	times := make([]float64, steps+1)
	prices := make([]float64, steps+1)
	prices[0] = contract.Spot

	drift := (contract.Rate - 0.5*contract.Volatility*contract.Volatility) * dt
	diffusion := contract.Volatility * math.Sqrt(dt)

	for i := 0; i < steps; i++ {
		times[i+1] = float64(i+1) * dt
		prices[i+1] = prices[i] * math.Exp(drift+diffusion*normal.Rand())
	}
	times[steps] = contract.TimeToMaturity

	return models.PricePath{
		Times:  times,
		Prices: prices,
	}
}

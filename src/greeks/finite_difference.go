package greeks

import (
	"math"

	"github.com/jiaming2012/option-pricer/src/models"
	"github.com/jiaming2012/option-pricer/src/pricing"
)

// timeBump is the one-sided forward step used for theta. T-dT is a
// later-in-life state, so the negative sign of theta falls out naturally.
func timeBump(timeToMaturity, perturbation float64) float64 {
	return math.Max(timeToMaturity*perturbation, 0.001)
}

// rateBump returns the rho step and the lower bump value. Near r=0 a relative
// step degenerates to zero width, so an absolute floor of 0.01 applies and
// the lower bump is clamped to stay non-negative.
func rateBump(rate, perturbation float64) (float64, float64) {
	var dr float64
	if rate > 0 {
		dr = math.Min(math.Max(rate*perturbation, 0.01), rate)
	} else {
		dr = 0.01
	}

	return dr, math.Max(0, rate-dr)
}

// Lattice computes finite-difference Greeks over the binomial pricer.
//
// Gamma uses the parity-averaging policy: binomial prices oscillate between
// odd and even step counts, and a naive second difference on a single tree
// amplifies that oscillation. Averaging an N-step and an (N+1)-step tree
// before differencing cancels the two parities. This is load-bearing for
// correctness, not an optimization.
func (e *Engine) Lattice(contract models.OptionContract, steps int, perturbation float64) (models.GreekSet, error) {
	pricer := pricing.NewLatticePricer(steps)

	price := func(c models.OptionContract, n int) (float64, error) {
		return pricer.PriceWithSteps(c, n)
	}

	base, err := price(contract, steps)
	if err != nil {
		return models.GreekSet{}, err
	}

	dS := contract.Spot * perturbation

	spotUp := contract
	spotUp.Spot += dS
	priceUp, err := price(spotUp, steps)
	if err != nil {
		return models.GreekSet{}, err
	}

	spotDown := contract
	spotDown.Spot -= dS
	priceDown, err := price(spotDown, steps)
	if err != nil {
		return models.GreekSet{}, err
	}

	baseNext, err := price(contract, steps+1)
	if err != nil {
		return models.GreekSet{}, err
	}

	priceUpNext, err := price(spotUp, steps+1)
	if err != nil {
		return models.GreekSet{}, err
	}

	priceDownNext, err := price(spotDown, steps+1)
	if err != nil {
		return models.GreekSet{}, err
	}

	baseAvg := (base + baseNext) / 2.0
	upAvg := (priceUp + priceUpNext) / 2.0
	downAvg := (priceDown + priceDownNext) / 2.0

	dT := timeBump(contract.TimeToMaturity, perturbation)
	shorter := contract
	shorter.TimeToMaturity -= dT
	priceShorter, err := price(shorter, steps)
	if err != nil {
		return models.GreekSet{}, err
	}

	dSigma := contract.Volatility * perturbation

	volUp := contract
	volUp.Volatility += dSigma
	priceVolUp, err := price(volUp, steps)
	if err != nil {
		return models.GreekSet{}, err
	}

	volDown := contract
	volDown.Volatility -= dSigma
	priceVolDown, err := price(volDown, steps)
	if err != nil {
		return models.GreekSet{}, err
	}

	dr, rateLower := rateBump(contract.Rate, perturbation)

	rateUp := contract
	rateUp.Rate += dr
	priceRateUp, err := price(rateUp, steps)
	if err != nil {
		return models.GreekSet{}, err
	}

	rateDown := contract
	rateDown.Rate = rateLower
	priceRateDown, err := price(rateDown, steps)
	if err != nil {
		return models.GreekSet{}, err
	}

	return models.GreekSet{
		Delta: (priceUp - priceDown) / (2 * dS),
		Gamma: (upAvg - 2*baseAvg + downAvg) / (dS * dS),
		Theta: (priceShorter - base) / dT,
		Vega:  (priceVolUp - priceVolDown) / (2 * dSigma) / 100.0,
		Rho:   (priceRateUp - priceRateDown) / (2 * dr) / 100.0,
	}, nil
}

// Simulation computes finite-difference Greeks over the Monte Carlo pricer
// under common random numbers: all evaluations reuse the identical seed, so
// the differences measure the bump and not sampling noise. Gamma here is a
// plain second difference; the parity-averaging policy is lattice-specific
// and is intentionally not applied.
func (e *Engine) Simulation(contract models.OptionContract, draws int, perturbation float64, seed *int64) (models.GreekSet, error) {
	if seed == nil {
		fixed := DefaultMonteCarloSeed
		seed = &fixed
	}

	price := func(c models.OptionContract) (float64, error) {
		estimate, err := pricing.NewSimulationPricer(draws, seed).Price(c)
		if err != nil {
			return 0, err
		}

		return estimate.Price, nil
	}

	base, err := price(contract)
	if err != nil {
		return models.GreekSet{}, err
	}

	dS := contract.Spot * perturbation

	spotUp := contract
	spotUp.Spot += dS
	priceUp, err := price(spotUp)
	if err != nil {
		return models.GreekSet{}, err
	}

	spotDown := contract
	spotDown.Spot -= dS
	priceDown, err := price(spotDown)
	if err != nil {
		return models.GreekSet{}, err
	}

	dT := timeBump(contract.TimeToMaturity, perturbation)
	shorter := contract
	shorter.TimeToMaturity -= dT
	priceShorter, err := price(shorter)
	if err != nil {
		return models.GreekSet{}, err
	}

	dSigma := contract.Volatility * perturbation

	volUp := contract
	volUp.Volatility += dSigma
	priceVolUp, err := price(volUp)
	if err != nil {
		return models.GreekSet{}, err
	}

	volDown := contract
	volDown.Volatility -= dSigma
	priceVolDown, err := price(volDown)
	if err != nil {
		return models.GreekSet{}, err
	}

	dr, rateLower := rateBump(contract.Rate, perturbation)

	rateUp := contract
	rateUp.Rate += dr
	priceRateUp, err := price(rateUp)
	if err != nil {
		return models.GreekSet{}, err
	}

	rateDown := contract
	rateDown.Rate = rateLower
	priceRateDown, err := price(rateDown)
	if err != nil {
		return models.GreekSet{}, err
	}

	return models.GreekSet{
		Delta: (priceUp - priceDown) / (2 * dS),
		Gamma: (priceUp - 2*base + priceDown) / (dS * dS),
		Theta: (priceShorter - base) / dT,
		Vega:  (priceVolUp - priceVolDown) / (2 * dSigma) / 100.0,
		Rho:   (priceRateUp - priceRateDown) / (2 * dr) / 100.0,
	}, nil
}

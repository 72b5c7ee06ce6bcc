package pricing

import (
	"math"

	"github.com/jiaming2012/option-pricer/src/models"
)

// LatticePricer prices vanilla European options on a Cox-Ross-Rubinstein
// binomial tree. Backward induction works on a single layer of the tree, so
// memory stays O(N) while total work is O(N²).
type LatticePricer struct {
	Steps int
}

func NewLatticePricer(steps int) *LatticePricer {
	return &LatticePricer{
		Steps: steps,
	}
}

func (p *LatticePricer) Price(contract models.OptionContract) (models.PriceEstimate, error) {
	price, err := p.PriceWithSteps(contract, p.Steps)
	if err != nil {
		return models.PriceEstimate{}, err
	}

	return models.PriceEstimate{Price: price}, nil
}

// PriceWithSteps prices on a tree of the given depth. The Greeks engine
// calls it with N and N+1 to average out the odd/even parity oscillation of
// binomial prices.
func (p *LatticePricer) PriceWithSteps(contract models.OptionContract, steps int) (float64, error) {
	if steps <= 0 {
		return 0, models.NewValidationError("N", "number of steps must be positive")
	}

	if err := contract.Validate(); err != nil {
		return 0, err
	}

	if contract.TimeToMaturity <= 0 {
		return 0, models.NewValidationError("T", "time to maturity must be positive for the lattice")
	}

	dt := contract.TimeToMaturity / float64(steps)
	up := math.Exp(contract.Volatility * math.Sqrt(dt))
	down := 1.0 / up
	discount := math.Exp(-contract.Rate * dt)

	// Floating round-off can push p marginally outside [0,1] for extreme
	// parameters; clamp instead of failing.
	probUp := (math.Exp(contract.Rate*dt) - down) / (up - down)
	probUp = math.Min(1.0, math.Max(0.0, probUp))

	// Terminal payoffs over the N+1 leaves, computed directly from
	// S0·u^j·d^(N-j) rather than by stepping through the tree.
	values := make([]float64, steps+1)
	for j := 0; j <= steps; j++ {
		terminal := contract.Spot * math.Pow(up, float64(j)) * math.Pow(down, float64(steps-j))
		values[j] = contract.IntrinsicValue(terminal)
	}

	// Each pass blends adjacent nodes and shrinks the working layer by one.
	for layer := steps; layer > 0; layer-- {
		for j := 0; j < layer; j++ {
			values[j] = discount * (probUp*values[j+1] + (1-probUp)*values[j])
		}
		values = values[:layer]
	}

	return values[0], nil
}

package models

import "math"

// OptionContract holds the market and contract parameters of a vanilla
// European option. It is constructed once per request and never mutated:
// perturbed copies are made by value where finite differences need them.
type OptionContract struct {
	Spot           float64    `json:"S0"`
	Strike         float64    `json:"K"`
	Rate           float64    `json:"r"`
	Volatility     float64    `json:"sigma"`
	TimeToMaturity float64    `json:"T"`
	OptionType     OptionType `json:"option_type"`
}

func (c OptionContract) Validate() error {
	if c.Spot <= 0 {
		return NewValidationError("S0", "spot price must be positive")
	}

	if c.Strike <= 0 {
		return NewValidationError("K", "strike price must be positive")
	}

	if c.Rate < 0 {
		return NewValidationError("r", "risk-free rate must be non-negative")
	}

	if c.Volatility <= 0 {
		return NewValidationError("sigma", "volatility must be positive")
	}

	if c.TimeToMaturity < 0 {
		return NewValidationError("T", "time to maturity must be non-negative")
	}

	return c.OptionType.Validate()
}

// IntrinsicValue is the payoff of the contract if exercised at the given
// underlying price.
func (c OptionContract) IntrinsicValue(spot float64) float64 {
	if c.OptionType == Call {
		return math.Max(0, spot-c.Strike)
	}

	return math.Max(0, c.Strike-spot)
}

// BoundaryDelta is the delta at expiry: 1 (call) or -1 (put) when in the
// money, otherwise 0.
func (c OptionContract) BoundaryDelta(spot float64) float64 {
	if c.OptionType == Call {
		if spot > c.Strike {
			return 1.0
		}

		return 0.0
	}

	if spot < c.Strike {
		return -1.0
	}

	return 0.0
}

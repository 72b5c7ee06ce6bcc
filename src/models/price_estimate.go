package models

// PriceEstimate is the output of a pricer. StdError is only set by
// simulation-based pricers; closed-form and lattice prices are exact given
// their inputs.
type PriceEstimate struct {
	Price    float64  `json:"price"`
	StdError *float64 `json:"std_error,omitempty"`
}

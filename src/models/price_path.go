package models

// PricePath is one simulated trajectory of the underlying: N+1 (time, price)
// pairs in time order. It is generated once per hedging run and not modified
// afterwards.
type PricePath struct {
	Times  []float64 `json:"times"`
	Prices []float64 `json:"prices"`
}

func (p PricePath) Steps() int {
	return len(p.Prices) - 1
}

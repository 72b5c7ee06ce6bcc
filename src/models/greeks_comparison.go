package models

// GreeksComparison holds the Greeks of one contract computed by all three
// methods under a single perturbation and theta-period policy.
type GreeksComparison struct {
	BlackScholes GreekSet `json:"black_scholes"`
	Binomial     GreekSet `json:"binomial"`
	MonteCarlo   GreekSet `json:"monte_carlo"`
}

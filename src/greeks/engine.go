package greeks

import (
	"github.com/jiaming2012/option-pricer/src/models"
	"github.com/jiaming2012/option-pricer/src/pricing"
)

const (
	// DefaultPerturbation is the relative bump applied to each input when
	// building finite differences.
	DefaultPerturbation = 0.01

	DefaultBinomialSteps   = 1000
	DefaultMonteCarloDraws = 500000

	// DefaultMonteCarloSeed keeps the common-random-numbers property when the
	// caller did not supply a seed: every evaluation inside one Greeks
	// computation must reuse the identical draw sequence.
	DefaultMonteCarloSeed int64 = 42
)

// Engine derives Greeks three ways: analytically from the closed-form pricer,
// and by finite differences over the lattice and simulation pricers.
type Engine struct {
	closedForm *pricing.ClosedFormPricer
}

func NewEngine() *Engine {
	return &Engine{
		closedForm: pricing.NewClosedFormPricer(),
	}
}

// Analytic returns the Black-Scholes Greeks, theta per year.
func (e *Engine) Analytic(contract models.OptionContract) (models.GreekSet, error) {
	return e.closedForm.Greeks(contract)
}

// CompareParams fixes one perturbation and theta-period policy across all
// three methods so the resulting sets are directly comparable.
type CompareParams struct {
	BinomialSteps   int
	MonteCarloDraws int
	Perturbation    float64
	Seed            *int64
	ThetaPeriod     models.ThetaPeriod
}

func DefaultCompareParams() CompareParams {
	return CompareParams{
		BinomialSteps:   DefaultBinomialSteps,
		MonteCarloDraws: DefaultMonteCarloDraws,
		Perturbation:    DefaultPerturbation,
		ThetaPeriod:     models.ThetaPerYear,
	}
}

// Compare computes the Greeks with all three methods side by side.
func (e *Engine) Compare(contract models.OptionContract, params CompareParams) (models.GreeksComparison, error) {
	if err := params.ThetaPeriod.Validate(); err != nil {
		return models.GreeksComparison{}, err
	}

	analytic, err := e.Analytic(contract)
	if err != nil {
		return models.GreeksComparison{}, err
	}

	lattice, err := e.Lattice(contract, params.BinomialSteps, params.Perturbation)
	if err != nil {
		return models.GreeksComparison{}, err
	}

	simulation, err := e.Simulation(contract, params.MonteCarloDraws, params.Perturbation, params.Seed)
	if err != nil {
		return models.GreeksComparison{}, err
	}

	return models.GreeksComparison{
		BlackScholes: analytic.Scaled(params.ThetaPeriod),
		Binomial:     lattice.Scaled(params.ThetaPeriod),
		MonteCarlo:   simulation.Scaled(params.ThetaPeriod),
	}, nil
}

package handler

import (
	"math"
	"net/http"

	"gonum.org/v1/gonum/stat"

	"github.com/jiaming2012/option-pricer/src/models"
	"github.com/jiaming2012/option-pricer/src/pricing"
	"github.com/jiaming2012/option-pricer/src/utils"
)

type PricingRequest struct {
	ContractRequest
	BinomialSteps int    `json:"binomial_steps"`
	MCSimulations int    `json:"mc_simulations"`
	Seed          *int64 `json:"seed,omitempty"`
}

type PricingComparison struct {
	BinomialDiff      float64 `json:"binomial_diff"`
	MonteCarloDiff    float64 `json:"monte_carlo_diff"`
	BinomialPctDiff   float64 `json:"binomial_pct_diff"`
	MonteCarloPctDiff float64 `json:"monte_carlo_pct_diff"`
}

type PricingResponse struct {
	BlackScholes     float64           `json:"black_scholes"`
	Binomial         float64           `json:"binomial"`
	MonteCarlo       float64           `json:"monte_carlo"`
	MonteCarloStderr float64           `json:"monte_carlo_stderr"`
	Comparison       PricingComparison `json:"comparison"`
}

// CalculatePricing prices the contract with all three methods and reports
// how far the numerical methods land from the closed form.
func CalculatePricing(w http.ResponseWriter, r *http.Request) {
	var request PricingRequest
	if err := decodeRequest(r, &request); err != nil {
		handleError("CalculatePricing", err, w)
		return
	}

	if request.BinomialSteps == 0 {
		request.BinomialSteps = 100
	}

	if request.MCSimulations == 0 {
		request.MCSimulations = 100000
	}

	contract := request.ToContract()

	closedForm, err := pricing.NewClosedFormPricer().Price(contract)
	if err != nil {
		handleError("CalculatePricing: black-scholes", err, w)
		return
	}

	lattice, err := pricing.NewLatticePricer(request.BinomialSteps).Price(contract)
	if err != nil {
		handleError("CalculatePricing: binomial", err, w)
		return
	}

	simulation, err := pricing.NewSimulationPricer(request.MCSimulations, request.Seed).Price(contract)
	if err != nil {
		handleError("CalculatePricing: monte carlo", err, w)
		return
	}

	binomialDiff := math.Abs(lattice.Price - closedForm.Price)
	mcDiff := math.Abs(simulation.Price - closedForm.Price)

	var binomialPct, mcPct float64
	if closedForm.Price > 0 {
		binomialPct = binomialDiff / closedForm.Price * 100
		mcPct = mcDiff / closedForm.Price * 100
	}

	var stderr float64
	if simulation.StdError != nil {
		stderr = *simulation.StdError
	}

	response := PricingResponse{
		BlackScholes:     utils.Round(closedForm.Price, 6),
		Binomial:         utils.Round(lattice.Price, 6),
		MonteCarlo:       utils.Round(simulation.Price, 6),
		MonteCarloStderr: utils.Round(stderr, 6),
		Comparison: PricingComparison{
			BinomialDiff:      utils.Round(binomialDiff, 6),
			MonteCarloDiff:    utils.Round(mcDiff, 6),
			BinomialPctDiff:   utils.Round(binomialPct, 4),
			MonteCarloPctDiff: utils.Round(mcPct, 4),
		},
	}

	if err := setResponse(response, w); err != nil {
		handleError("CalculatePricing: response", err, w)
	}
}

type ConvergenceRequest struct {
	ContractRequest
}

type ConvergencePoint struct {
	N          int     `json:"N"`
	Log10N     float64 `json:"log10_N"`
	Error      float64 `json:"error"`
	Log10Error float64 `json:"log10_error"`
	Price      float64 `json:"price"`
}

type ConvergenceResponse struct {
	Binomial          []ConvergencePoint `json:"binomial"`
	MonteCarlo        []ConvergencePoint `json:"monte_carlo"`
	BinomialSlope     float64            `json:"binomial_slope"`
	MonteCarloSlope   float64            `json:"monte_carlo_slope"`
	BlackScholesPrice float64            `json:"black_scholes_price"`
}

var convergenceBinomialSteps = []int{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000}
var convergenceMCDraws = []int{100, 500, 1000, 2500, 5000, 10000, 25000, 50000, 100000, 250000, 500000}

// PricingConvergence measures how fast the lattice and simulation prices
// approach the closed form, with a fitted log-log slope per method.
func PricingConvergence(w http.ResponseWriter, r *http.Request) {
	var request ConvergenceRequest
	if err := decodeRequest(r, &request); err != nil {
		handleError("PricingConvergence", err, w)
		return
	}

	contract := request.ToContract()

	closedForm, err := pricing.NewClosedFormPricer().Price(contract)
	if err != nil {
		handleError("PricingConvergence: black-scholes", err, w)
		return
	}

	binomialData := make([]ConvergencePoint, 0, len(convergenceBinomialSteps))
	for _, steps := range convergenceBinomialSteps {
		estimate, err := pricing.NewLatticePricer(steps).Price(contract)
		if err != nil {
			continue
		}

		binomialData = append(binomialData, newConvergencePoint(steps, estimate, closedForm.Price))
	}

	mcData := make([]ConvergencePoint, 0, len(convergenceMCDraws))
	for _, draws := range convergenceMCDraws {
		estimate, err := pricing.NewSimulationPricer(draws, nil).Price(contract)
		if err != nil {
			continue
		}

		mcData = append(mcData, newConvergencePoint(draws, estimate, closedForm.Price))
	}

	response := ConvergenceResponse{
		Binomial:          binomialData,
		MonteCarlo:        mcData,
		BinomialSlope:     utils.Round(fitSlope(binomialData), 4),
		MonteCarloSlope:   utils.Round(fitSlope(mcData), 4),
		BlackScholesPrice: utils.Round(closedForm.Price, 6),
	}

	if err := setResponse(response, w); err != nil {
		handleError("PricingConvergence: response", err, w)
	}
}

func newConvergencePoint(n int, estimate models.PriceEstimate, reference float64) ConvergencePoint {
	absError := math.Abs(estimate.Price - reference)

	log10Error := -10.0 // floor for a numerically exact match
	if absError > 0 {
		log10Error = math.Log10(absError)
	}

	return ConvergencePoint{
		N:          n,
		Log10N:     math.Log10(float64(n)),
		Error:      absError,
		Log10Error: log10Error,
		Price:      estimate.Price,
	}
}

func fitSlope(points []ConvergencePoint) float64 {
	if len(points) < 2 {
		return 0
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Log10N
		ys[i] = p.Log10Error
	}

	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return slope
}

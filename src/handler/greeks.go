package handler

import (
	"net/http"

	"github.com/jiaming2012/option-pricer/src/greeks"
	"github.com/jiaming2012/option-pricer/src/models"
	"github.com/jiaming2012/option-pricer/src/utils"
)

type GreeksRequest struct {
	ContractRequest
}

type GreeksResponse struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}

func newGreeksResponse(set models.GreekSet) GreeksResponse {
	return GreeksResponse{
		Delta: utils.Round(set.Delta, 6),
		Gamma: utils.Round(set.Gamma, 6),
		Theta: utils.Round(set.Theta, 6),
		Vega:  utils.Round(set.Vega, 6),
		Rho:   utils.Round(set.Rho, 6),
	}
}

func CalculateGreeks(w http.ResponseWriter, r *http.Request) {
	var request GreeksRequest
	if err := decodeRequest(r, &request); err != nil {
		handleError("CalculateGreeks", err, w)
		return
	}

	set, err := greeks.NewEngine().Analytic(request.ToContract())
	if err != nil {
		handleError("CalculateGreeks", err, w)
		return
	}

	if err := setResponse(newGreeksResponse(set), w); err != nil {
		handleError("CalculateGreeks: response", err, w)
	}
}

type GreeksSensitivityRequest struct {
	ContractRequest
	Parameter string  `json:"parameter"`
	MinValue  float64 `json:"min_value"`
	MaxValue  float64 `json:"max_value"`
	Steps     int     `json:"steps"`
}

type GreeksSensitivityPoint struct {
	ParameterValue float64 `json:"parameter_value"`
	GreeksResponse
}

type GreeksSensitivityResponse struct {
	Data          []GreeksSensitivityPoint `json:"data"`
	ParameterName string                   `json:"parameter_name"`
}

// GreeksSensitivity sweeps one contract parameter across a range and
// reports the analytic Greeks at each point.
func GreeksSensitivity(w http.ResponseWriter, r *http.Request) {
	var request GreeksSensitivityRequest
	if err := decodeRequest(r, &request); err != nil {
		handleError("GreeksSensitivity", err, w)
		return
	}

	if request.Steps < 2 {
		handleError("GreeksSensitivity", models.NewValidationError("steps", "at least 2 steps are required"), w)
		return
	}

	engine := greeks.NewEngine()
	data := make([]GreeksSensitivityPoint, 0, request.Steps)

	for i := 0; i < request.Steps; i++ {
		value := request.MinValue + (request.MaxValue-request.MinValue)*float64(i)/float64(request.Steps-1)

		contract := request.ToContract()
		switch request.Parameter {
		case "S0":
			contract.Spot = value
		case "K":
			contract.Strike = value
		case "r":
			contract.Rate = value
		case "sigma":
			contract.Volatility = value
		case "T":
			contract.TimeToMaturity = value
		default:
			handleError("GreeksSensitivity", models.NewValidationError("parameter", "parameter must be one of: S0, K, r, sigma, T"), w)
			return
		}

		set, err := engine.Analytic(contract)
		if err != nil {
			handleError("GreeksSensitivity", err, w)
			return
		}

		data = append(data, GreeksSensitivityPoint{
			ParameterValue: utils.Round(value, 6),
			GreeksResponse: newGreeksResponse(set),
		})
	}

	response := GreeksSensitivityResponse{
		Data:          data,
		ParameterName: request.Parameter,
	}

	if err := setResponse(response, w); err != nil {
		handleError("GreeksSensitivity: response", err, w)
	}
}

type GreeksCompareOption struct {
	ContractRequest
	Label string `json:"label"`
}

type GreeksCompareRequest struct {
	Options []GreeksCompareOption `json:"options"`
}

type GreeksCompareItem struct {
	Label string `json:"label"`
	ContractRequest
	GreeksResponse
}

type GreeksCompareResponse struct {
	Comparisons []GreeksCompareItem `json:"comparisons"`
}

// CompareGreeks calculates analytic Greeks for multiple labelled contracts
// in one call.
func CompareGreeks(w http.ResponseWriter, r *http.Request) {
	var request GreeksCompareRequest
	if err := decodeRequest(r, &request); err != nil {
		handleError("CompareGreeks", err, w)
		return
	}

	engine := greeks.NewEngine()
	comparisons := make([]GreeksCompareItem, 0, len(request.Options))

	for _, option := range request.Options {
		set, err := engine.Analytic(option.ToContract())
		if err != nil {
			handleError("CompareGreeks", err, w)
			return
		}

		comparisons = append(comparisons, GreeksCompareItem{
			Label:           option.Label,
			ContractRequest: option.ContractRequest,
			GreeksResponse:  newGreeksResponse(set),
		})
	}

	if err := setResponse(GreeksCompareResponse{Comparisons: comparisons}, w); err != nil {
		handleError("CompareGreeks: response", err, w)
	}
}

type GreeksMethodCompareRequest struct {
	ContractRequest
	BinomialSteps int                `json:"binomial_steps"`
	MCSimulations int                `json:"mc_simulations"`
	Seed          *int64             `json:"seed,omitempty"`
	ThetaPeriod   models.ThetaPeriod `json:"theta_period"`
}

type GreeksMethodCompareResponse struct {
	BlackScholes GreeksResponse `json:"black_scholes"`
	Binomial     GreeksResponse `json:"binomial"`
	MonteCarlo   GreeksResponse `json:"monte_carlo"`
}

// CompareGreeksMethods runs the analytic, lattice and Monte Carlo Greeks
// under one perturbation and theta-period policy.
func CompareGreeksMethods(w http.ResponseWriter, r *http.Request) {
	var request GreeksMethodCompareRequest
	if err := decodeRequest(r, &request); err != nil {
		handleError("CompareGreeksMethods", err, w)
		return
	}

	params := greeks.DefaultCompareParams()
	if request.BinomialSteps > 0 {
		params.BinomialSteps = request.BinomialSteps
	}
	if request.MCSimulations > 0 {
		params.MonteCarloDraws = request.MCSimulations
	}
	if request.Seed != nil {
		params.Seed = request.Seed
	}
	if request.ThetaPeriod != "" {
		params.ThetaPeriod = request.ThetaPeriod
	}

	comparison, err := greeks.NewEngine().Compare(request.ToContract(), params)
	if err != nil {
		handleError("CompareGreeksMethods", err, w)
		return
	}

	response := GreeksMethodCompareResponse{
		BlackScholes: newGreeksResponse(comparison.BlackScholes),
		Binomial:     newGreeksResponse(comparison.Binomial),
		MonteCarlo:   newGreeksResponse(comparison.MonteCarlo),
	}

	if err := setResponse(response, w); err != nil {
		handleError("CompareGreeksMethods: response", err, w)
	}
}

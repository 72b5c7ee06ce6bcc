package handler

import "github.com/jiaming2012/option-pricer/src/models"

// ContractRequest is the shared slice of every request body that describes
// the option being priced.
type ContractRequest struct {
	S0         float64           `json:"S0"`
	K          float64           `json:"K"`
	R          float64           `json:"r"`
	Sigma      float64           `json:"sigma"`
	T          float64           `json:"T"`
	OptionType models.OptionType `json:"option_type"`
}

func (r ContractRequest) ToContract() models.OptionContract {
	return models.OptionContract{
		Spot:           r.S0,
		Strike:         r.K,
		Rate:           r.R,
		Volatility:     r.Sigma,
		TimeToMaturity: r.T,
		OptionType:     r.OptionType,
	}
}

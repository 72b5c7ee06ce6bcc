package models

// GreekSet holds the five first and second order sensitivities of an option
// price. Vega and rho are quoted per 1% change; theta per year unless the
// caller asked for a per-day figure.
type GreekSet struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}

type ThetaPeriod string

const (
	ThetaPerYear ThetaPeriod = "year"
	ThetaPerDay  ThetaPeriod = "day"
)

func (p ThetaPeriod) Validate() error {
	if p != ThetaPerYear && p != ThetaPerDay {
		return NewValidationError("theta_period", "theta period must be 'year' or 'day'")
	}

	return nil
}

// Scaled converts a per-year theta to the requested period.
func (g GreekSet) Scaled(period ThetaPeriod) GreekSet {
	if period == ThetaPerDay {
		g.Theta = g.Theta / 365.0
	}

	return g
}

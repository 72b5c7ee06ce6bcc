package pricing

import (
	"math"

	"github.com/chobie/go-gaussian"

	"github.com/jiaming2012/option-pricer/src/models"
)

// ClosedFormPricer prices vanilla European options with the Black-Scholes
// formula and derives the analytic Greeks. At expiry (timeLeft == 0) the
// general formula divides by zero, so price and delta fall back to intrinsic
// value and the boundary delta instead.
type ClosedFormPricer struct {
	norm *gaussian.Gaussian
}

func NewClosedFormPricer() *ClosedFormPricer {
	return &ClosedFormPricer{
		norm: gaussian.NewGaussian(0, 1),
	}
}

func d1(spot, strike, rate, volatility, timeLeft float64) float64 {
	return (math.Log(spot/strike) + (rate+0.5*volatility*volatility)*timeLeft) / (volatility * math.Sqrt(timeLeft))
}

func d2(d1 float64, volatility, timeLeft float64) float64 {
	return d1 - volatility*math.Sqrt(timeLeft)
}

func (p *ClosedFormPricer) Price(contract models.OptionContract) (models.PriceEstimate, error) {
	price, err := p.PriceAt(contract, contract.Spot, contract.TimeToMaturity)
	if err != nil {
		return models.PriceEstimate{}, err
	}

	return models.PriceEstimate{Price: price}, nil
}

// PriceAt prices the contract at an arbitrary underlying price and remaining
// time, which is what the hedging loop needs at every step.
func (p *ClosedFormPricer) PriceAt(contract models.OptionContract, spot float64, timeLeft float64) (float64, error) {
	if err := contract.Validate(); err != nil {
		return 0, err
	}

	if timeLeft < 0 {
		return 0, models.NewValidationError("T", "remaining time must be non-negative")
	}

	if timeLeft == 0 {
		return contract.IntrinsicValue(spot), nil
	}

	td1 := d1(spot, contract.Strike, contract.Rate, contract.Volatility, timeLeft)
	td2 := d2(td1, contract.Volatility, timeLeft)
	discount := math.Exp(-contract.Rate * timeLeft)

	if contract.OptionType == models.Call {
		return spot*p.norm.Cdf(td1) - contract.Strike*discount*p.norm.Cdf(td2), nil
	}

	return contract.Strike*discount*p.norm.Cdf(-td2) - spot*p.norm.Cdf(-td1), nil
}

// DeltaAt returns the hedge ratio at an arbitrary underlying price and
// remaining time. At expiry it returns the boundary delta.
func (p *ClosedFormPricer) DeltaAt(contract models.OptionContract, spot float64, timeLeft float64) (float64, error) {
	if err := contract.Validate(); err != nil {
		return 0, err
	}

	if timeLeft < 0 {
		return 0, models.NewValidationError("T", "remaining time must be non-negative")
	}

	if timeLeft == 0 {
		return contract.BoundaryDelta(spot), nil
	}

	td1 := d1(spot, contract.Strike, contract.Rate, contract.Volatility, timeLeft)

	if contract.OptionType == models.Call {
		return p.norm.Cdf(td1), nil
	}

	return p.norm.Cdf(td1) - 1.0, nil
}

// Greeks computes the five analytic sensitivities. Theta is quoted per year;
// vega and rho per 1% change in volatility and rate respectively.
func (p *ClosedFormPricer) Greeks(contract models.OptionContract) (models.GreekSet, error) {
	if err := contract.Validate(); err != nil {
		return models.GreekSet{}, err
	}

	if contract.TimeToMaturity == 0 {
		return models.GreekSet{}, models.NewValidationError("T", "time to maturity must be positive for Greeks")
	}

	spot := contract.Spot
	strike := contract.Strike
	rate := contract.Rate
	volatility := contract.Volatility
	timeLeft := contract.TimeToMaturity

	td1 := d1(spot, strike, rate, volatility, timeLeft)
	td2 := d2(td1, volatility, timeLeft)
	pdfD1 := p.norm.Pdf(td1)
	discount := math.Exp(-rate * timeLeft)

	greeks := models.GreekSet{
		Gamma: pdfD1 / (spot * volatility * math.Sqrt(timeLeft)),
		Vega:  spot * pdfD1 * math.Sqrt(timeLeft) / 100.0,
	}

	if contract.OptionType == models.Call {
		greeks.Delta = p.norm.Cdf(td1)
		greeks.Theta = -spot*pdfD1*volatility/(2*math.Sqrt(timeLeft)) - rate*strike*discount*p.norm.Cdf(td2)
		greeks.Rho = strike * timeLeft * discount * p.norm.Cdf(td2) / 100.0
	} else {
		greeks.Delta = p.norm.Cdf(td1) - 1.0
		greeks.Theta = -spot*pdfD1*volatility/(2*math.Sqrt(timeLeft)) + rate*strike*discount*p.norm.Cdf(-td2)
		greeks.Rho = -strike * timeLeft * discount * p.norm.Cdf(-td2) / 100.0
	}

	return greeks, nil
}

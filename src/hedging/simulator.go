package hedging

import (
	"math"

	"github.com/google/uuid"

	"github.com/jiaming2012/option-pricer/src/models"
	"github.com/jiaming2012/option-pricer/src/pricing"
)

// TradeEpsilon gates both the transaction-cost charge and the transaction
// log: a trade is recorded if and only if the hedge position changed by more
// than this amount. Keep it single-sourced so the two can never disagree.
const TradeEpsilon = 1e-10

const SharesPerContract = 100

// Simulator replays a discrete-time delta hedge of one option position along
// a simulated price path, rebalancing at the parsed frequency and charging
// TransactionCost (a fraction of notional) on every trade.
type Simulator struct {
	Contract        models.OptionContract
	RebalanceFreq   string
	TransactionCost float64
	OptionContracts int
	Position        float64
	Seed            *int64

	closedForm *pricing.ClosedFormPricer
}

func NewSimulator(contract models.OptionContract, rebalanceFreq string, transactionCost float64, optionContracts int, position float64, seed *int64) *Simulator {
	return &Simulator{
		Contract:        contract,
		RebalanceFreq:   rebalanceFreq,
		TransactionCost: transactionCost,
		OptionContracts: optionContracts,
		Position:        position,
		Seed:            seed,
		closedForm:      pricing.NewClosedFormPricer(),
	}
}

func (s *Simulator) Run() (*models.HedgeResult, error) {
	if err := s.Contract.Validate(); err != nil {
		return nil, err
	}

	if s.Contract.TimeToMaturity <= 0 {
		return nil, models.NewValidationError("T", "time to maturity must be positive for hedging")
	}

	if s.OptionContracts <= 0 {
		return nil, models.NewValidationError("option_contracts", "number of contracts must be positive")
	}

	dt, err := ParseFrequency(s.RebalanceFreq)
	if err != nil {
		return nil, err
	}

	maturity := s.Contract.TimeToMaturity
	steps := int(math.Ceil(maturity / dt))
	dtActual := maturity / float64(steps)
	totalShares := float64(s.OptionContracts * SharesPerContract)

	path := GeneratePath(s.Contract, steps, s.Seed)

	optionValues := make([]float64, steps+1)
	deltas := make([]float64, steps+1)
	hedgeShares := make([]float64, steps+1)
	cash := make([]float64, steps+1)
	cumulativeCost := make([]float64, steps+1)

	value, err := s.closedForm.PriceAt(s.Contract, path.Prices[0], maturity)
	if err != nil {
		return nil, err
	}

	delta, err := s.closedForm.DeltaAt(s.Contract, path.Prices[0], maturity)
	if err != nil {
		return nil, err
	}

	optionValues[0] = value * totalShares * s.Position
	deltas[0] = delta * s.Position

	// Long the option, short delta in the underlying.
	hedgeShares[0] = -deltas[0] * totalShares
	cash[0] = -optionValues[0] - hedgeShares[0]*path.Prices[0]

	if math.Abs(hedgeShares[0]) > TradeEpsilon {
		cumulativeCost[0] = math.Abs(hedgeShares[0]) * path.Prices[0] * s.TransactionCost
		cash[0] -= cumulativeCost[0]
	}

	hedgingPnl := 0.0

	// A parallel ledger without interest isolates the interest earned on
	// cash, which is attributed to the hedging P&L at the end.
	cashWithoutInterest := cash[0]

	for i := 1; i <= steps; i++ {
		spot := path.Prices[i]
		timeLeft := math.Max(0, maturity-path.Times[i])

		value, err := s.closedForm.PriceAt(s.Contract, spot, timeLeft)
		if err != nil {
			return nil, err
		}

		delta, err := s.closedForm.DeltaAt(s.Contract, spot, timeLeft)
		if err != nil {
			return nil, err
		}

		optionValues[i] = value * totalShares * s.Position
		deltas[i] = delta * s.Position

		// Interest accrues on cash over the step before the trade settles.
		cash[i] = cash[i-1] * math.Exp(s.Contract.Rate*dtActual)

		requiredHedge := -deltas[i] * totalShares
		adjustment := requiredHedge - hedgeShares[i-1]

		cash[i] -= adjustment * spot
		cashWithoutInterest -= adjustment * spot

		cumulativeCost[i] = cumulativeCost[i-1]
		if math.Abs(adjustment) > TradeEpsilon {
			tradeCost := math.Abs(adjustment) * spot * s.TransactionCost
			cumulativeCost[i] += tradeCost
			cash[i] -= tradeCost
			cashWithoutInterest -= tradeCost
		}

		hedgeShares[i] = requiredHedge
		hedgingPnl += hedgeShares[i-1] * (spot - path.Prices[i-1])
	}

	interestOnCash := cash[steps] - cashWithoutInterest
	hedgingPnl += interestOnCash

	portfolioValues := make([]float64, steps+1)
	for i := 0; i <= steps; i++ {
		portfolioValues[i] = optionValues[i] + hedgeShares[i]*path.Prices[i] + cash[i]
	}

	timeSeries := make([]models.HedgeStepRecord, steps+1)
	for i := 0; i <= steps; i++ {
		timeSeries[i] = models.HedgeStepRecord{
			Time:                      path.Times[i],
			StockPrice:                path.Prices[i],
			OptionValue:               optionValues[i],
			Delta:                     deltas[i],
			HedgeShares:               hedgeShares[i],
			Cash:                      cash[i],
			PortfolioValue:            portfolioValues[i],
			Pnl:                       portfolioValues[i] - portfolioValues[0],
			CumulativeTransactionCost: cumulativeCost[i],
		}
	}

	var transactions []models.TransactionRecord

	if math.Abs(hedgeShares[0]) > TradeEpsilon {
		transactions = append(transactions, models.TransactionRecord{
			Time:            path.Times[0],
			StockPrice:      path.Prices[0],
			Delta:           deltas[0],
			SharesTraded:    hedgeShares[0],
			TotalShares:     hedgeShares[0],
			TradeCost:       cumulativeCost[0],
			TransactionType: tradeDirection(hedgeShares[0]),
			Cash:            cash[0],
		})
	}

	cumulativeHedgePnl := 0.0
	for i := 1; i <= steps; i++ {
		sharesTraded := hedgeShares[i] - hedgeShares[i-1]
		if math.Abs(sharesTraded) <= TradeEpsilon {
			continue
		}

		stepPnl := hedgeShares[i-1] * (path.Prices[i] - path.Prices[i-1])
		cumulativeHedgePnl += stepPnl

		transactions = append(transactions, models.TransactionRecord{
			Time:               path.Times[i],
			StockPrice:         path.Prices[i],
			Delta:              deltas[i],
			DeltaChange:        deltas[i] - deltas[i-1],
			SharesTraded:       sharesTraded,
			TotalShares:        hedgeShares[i],
			TradeCost:          cumulativeCost[i] - cumulativeCost[i-1],
			TransactionType:    tradeDirection(sharesTraded),
			TransactionPnl:     stepPnl,
			TotalPnl:           cumulativeHedgePnl,
			OptionPnlSinceLast: optionValues[i] - optionValues[i-1],
			PortfolioPnl:       portfolioValues[i] - portfolioValues[0],
			Cash:               cash[i],
		})
	}

	maxDrawdown := 0.0
	peak := portfolioValues[0]
	for _, v := range portfolioValues {
		if v > peak {
			peak = v
		}
		if drawdown := peak - v; drawdown > maxDrawdown {
			maxDrawdown = drawdown
		}
	}

	summary := models.HedgeSummary{
		TotalPnl:             portfolioValues[steps] - portfolioValues[0],
		OptionPnl:            optionValues[steps] - optionValues[0],
		HedgingPnl:           hedgingPnl,
		ReplicationError:     optionValues[steps] + cash[steps] + hedgeShares[steps]*path.Prices[steps],
		TotalTransactionCost: cumulativeCost[steps],
		MaxDrawdown:          maxDrawdown,
		FinalPortfolioValue:  portfolioValues[steps],
	}

	return &models.HedgeResult{
		RunID:        uuid.New(),
		Path:         path,
		TimeSeries:   timeSeries,
		Transactions: transactions,
		Summary:      summary,
	}, nil
}

func tradeDirection(sharesTraded float64) models.TransactionType {
	if sharesTraded > 0 {
		return models.TransactionBuy
	}

	return models.TransactionSell
}

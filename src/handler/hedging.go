package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jiaming2012/option-pricer/src/hedging"
	"github.com/jiaming2012/option-pricer/src/models"
	"github.com/jiaming2012/option-pricer/src/utils"
)

type HedgingSimulateRequest struct {
	ContractRequest
	RebalanceFreq   string  `json:"rebalance_freq"`
	TransactionCost float64 `json:"transaction_cost"`
	OptionContracts int     `json:"option_contracts"`
	Position        float64 `json:"position"`
	Seed            *int64  `json:"seed,omitempty"`
}

type HedgingStepDTO struct {
	Time                      float64 `json:"time"`
	StockPrice                float64 `json:"stock_price"`
	Delta                     float64 `json:"delta"`
	HedgeShares               float64 `json:"hedge_shares"`
	OptionValue               float64 `json:"option_value"`
	Cash                      float64 `json:"cash"`
	PortfolioValue            float64 `json:"portfolio_value"`
	Pnl                       float64 `json:"pnl"`
	CumulativeTransactionCost float64 `json:"cumulative_transaction_cost"`
}

type HedgingTransactionDTO struct {
	Time               float64 `json:"time"`
	StockPrice         float64 `json:"stock_price"`
	Delta              float64 `json:"delta"`
	DeltaChange        float64 `json:"delta_change"`
	SharesTraded       float64 `json:"shares_traded"`
	TotalShares        float64 `json:"total_shares"`
	TradeCost          float64 `json:"trade_cost"`
	TransactionType    string  `json:"transaction_type"`
	TransactionPnl     float64 `json:"transaction_pnl"`
	TotalPnl           float64 `json:"total_pnl"`
	OptionPnlSinceLast float64 `json:"option_pnl_since_last"`
	PortfolioPnl       float64 `json:"portfolio_pnl"`
	Cash               float64 `json:"cash"`
}

// HedgingSummaryDTO exposes the replication error under both of its
// historical names; the underlying summary stores it once.
type HedgingSummaryDTO struct {
	TotalPnl             float64 `json:"total_pnl"`
	FinalPnl             float64 `json:"final_pnl"`
	OptionPnl            float64 `json:"option_pnl"`
	HedgingPnl           float64 `json:"hedging_pnl"`
	ReplicationError     float64 `json:"replication_error"`
	HedgingError         float64 `json:"hedging_error"`
	TotalTransactionCost float64 `json:"total_transaction_cost"`
	MaxDrawdown          float64 `json:"max_drawdown"`
	FinalPortfolioValue  float64 `json:"final_portfolio_value"`
}

type HedgingSimulateResponse struct {
	RunID        uuid.UUID               `json:"run_id"`
	TimeSeries   []HedgingStepDTO        `json:"time_series"`
	Transactions []HedgingTransactionDTO `json:"transactions"`
	Summary      HedgingSummaryDTO       `json:"summary"`
}

func newHedgingSummaryDTO(summary models.HedgeSummary) HedgingSummaryDTO {
	return HedgingSummaryDTO{
		TotalPnl:             utils.Round(summary.TotalPnl, 2),
		FinalPnl:             utils.Round(summary.FinalPnl(), 2),
		OptionPnl:            utils.Round(summary.OptionPnl, 2),
		HedgingPnl:           utils.Round(summary.HedgingPnl, 2),
		ReplicationError:     utils.Round(summary.ReplicationError, 2),
		HedgingError:         utils.Round(summary.HedgingError(), 2),
		TotalTransactionCost: utils.Round(summary.TotalTransactionCost, 2),
		MaxDrawdown:          utils.Round(summary.MaxDrawdown, 2),
		FinalPortfolioValue:  utils.Round(summary.FinalPortfolioValue, 2),
	}
}

func SimulateHedging(w http.ResponseWriter, r *http.Request) {
	var request HedgingSimulateRequest
	if err := decodeRequest(r, &request); err != nil {
		handleError("SimulateHedging", err, w)
		return
	}

	if request.OptionContracts == 0 {
		request.OptionContracts = 1
	}

	if request.Position == 0 {
		request.Position = 1.0
	}

	simulator := hedging.NewSimulator(
		request.ToContract(),
		request.RebalanceFreq,
		request.TransactionCost,
		request.OptionContracts,
		request.Position,
		request.Seed,
	)

	result, err := simulator.Run()
	if err != nil {
		handleError("SimulateHedging", err, w)
		return
	}

	timeSeries := make([]HedgingStepDTO, len(result.TimeSeries))
	for i, step := range result.TimeSeries {
		timeSeries[i] = HedgingStepDTO{
			Time:                      utils.Round(step.Time, 6),
			StockPrice:                utils.Round(step.StockPrice, 4),
			Delta:                     utils.Round(step.Delta, 6),
			HedgeShares:               utils.Round(step.HedgeShares, 2),
			OptionValue:               utils.Round(step.OptionValue, 2),
			Cash:                      utils.Round(step.Cash, 2),
			PortfolioValue:            utils.Round(step.PortfolioValue, 2),
			Pnl:                       utils.Round(step.Pnl, 2),
			CumulativeTransactionCost: utils.Round(step.CumulativeTransactionCost, 2),
		}
	}

	transactions := make([]HedgingTransactionDTO, len(result.Transactions))
	for i, tx := range result.Transactions {
		transactions[i] = HedgingTransactionDTO{
			Time:               utils.Round(tx.Time, 6),
			StockPrice:         utils.Round(tx.StockPrice, 4),
			Delta:              utils.Round(tx.Delta, 6),
			DeltaChange:        utils.Round(tx.DeltaChange, 6),
			SharesTraded:       utils.Round(tx.SharesTraded, 2),
			TotalShares:        utils.Round(tx.TotalShares, 2),
			TradeCost:          utils.Round(tx.TradeCost, 2),
			TransactionType:    string(tx.TransactionType),
			TransactionPnl:     utils.Round(tx.TransactionPnl, 2),
			TotalPnl:           utils.Round(tx.TotalPnl, 2),
			OptionPnlSinceLast: utils.Round(tx.OptionPnlSinceLast, 2),
			PortfolioPnl:       utils.Round(tx.PortfolioPnl, 2),
			Cash:               utils.Round(tx.Cash, 2),
		}
	}

	response := HedgingSimulateResponse{
		RunID:        result.RunID,
		TimeSeries:   timeSeries,
		Transactions: transactions,
		Summary:      newHedgingSummaryDTO(result.Summary),
	}

	if err := setResponse(response, w); err != nil {
		handleError("SimulateHedging: response", err, w)
	}
}

type HedgingCompareRequest struct {
	ContractRequest
	Frequencies     []string `json:"frequencies"`
	TransactionCost float64  `json:"transaction_cost"`
	NumSimulations  int      `json:"num_simulations"`
	OptionContracts int      `json:"option_contracts"`
}

type HedgingFrequencyStatsDTO struct {
	Frequency           string  `json:"frequency"`
	MeanPnl             float64 `json:"mean_pnl"`
	StdPnl              float64 `json:"std_pnl"`
	MinPnl              float64 `json:"min_pnl"`
	MaxPnl              float64 `json:"max_pnl"`
	MeanTransactionCost float64 `json:"mean_transaction_cost"`
	MeanHedgingError    float64 `json:"mean_hedging_error"`
}

type HedgingCompareResponse struct {
	Comparisons []HedgingFrequencyStatsDTO `json:"comparisons"`
}

func CompareHedgingFrequencies(w http.ResponseWriter, r *http.Request) {
	var request HedgingCompareRequest
	if err := decodeRequest(r, &request); err != nil {
		handleError("CompareHedgingFrequencies", err, w)
		return
	}

	if request.NumSimulations == 0 {
		request.NumSimulations = 100
	}

	if request.OptionContracts == 0 {
		request.OptionContracts = 1
	}

	results, err := hedging.CompareFrequencies(
		request.ToContract(),
		request.Frequencies,
		request.TransactionCost,
		request.NumSimulations,
		request.OptionContracts,
	)
	if err != nil {
		handleError("CompareHedgingFrequencies", err, w)
		return
	}

	comparisons := make([]HedgingFrequencyStatsDTO, len(results))
	for i, stats := range results {
		comparisons[i] = HedgingFrequencyStatsDTO{
			Frequency:           stats.Frequency,
			MeanPnl:             utils.Round(stats.MeanPnl, 2),
			StdPnl:              utils.Round(stats.StdPnl, 2),
			MinPnl:              utils.Round(stats.MinPnl, 2),
			MaxPnl:              utils.Round(stats.MaxPnl, 2),
			MeanTransactionCost: utils.Round(stats.MeanTransactionCost, 2),
			MeanHedgingError:    utils.Round(stats.MeanHedgingError, 2),
		}
	}

	if err := setResponse(HedgingCompareResponse{Comparisons: comparisons}, w); err != nil {
		handleError("CompareHedgingFrequencies: response", err, w)
	}
}

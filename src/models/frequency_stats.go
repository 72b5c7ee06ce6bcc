package models

// FrequencyStats aggregates many hedge summaries for a single rebalancing
// frequency.
type FrequencyStats struct {
	Frequency           string  `json:"frequency"`
	MeanPnl             float64 `json:"mean_pnl"`
	StdPnl              float64 `json:"std_pnl"`
	MinPnl              float64 `json:"min_pnl"`
	MaxPnl              float64 `json:"max_pnl"`
	MeanTransactionCost float64 `json:"mean_transaction_cost"`
	MeanHedgingError    float64 `json:"mean_hedging_error"`
}

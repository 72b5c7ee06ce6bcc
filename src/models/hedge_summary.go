package models

// HedgeSummary is the end-of-run P&L attribution of a hedging simulation.
//
// ReplicationError is the single stored copy of the residual left after the
// discrete hedge; HedgingError() exposes the same value under its historical
// name so the two can never drift apart. TotalPnl and FinalPnl() follow the
// same pattern.
type HedgeSummary struct {
	TotalPnl             float64 `json:"total_pnl"`
	OptionPnl            float64 `json:"option_pnl"`
	HedgingPnl           float64 `json:"hedging_pnl"`
	ReplicationError     float64 `json:"replication_error"`
	TotalTransactionCost float64 `json:"total_transaction_cost"`
	MaxDrawdown          float64 `json:"max_drawdown"`
	FinalPortfolioValue  float64 `json:"final_portfolio_value"`
}

func (s HedgeSummary) HedgingError() float64 {
	return s.ReplicationError
}

func (s HedgeSummary) FinalPnl() float64 {
	return s.TotalPnl
}

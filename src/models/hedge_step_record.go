package models

// HedgeStepRecord is the state of the hedged book at one path point. The
// full sequence is the time-series output of a hedging run. Values are kept
// at full precision; the boundary layer rounds for presentation.
type HedgeStepRecord struct {
	Time                      float64 `json:"time" csv:"time"`
	StockPrice                float64 `json:"stock_price" csv:"stock_price"`
	OptionValue               float64 `json:"option_value" csv:"option_value"`
	Delta                     float64 `json:"delta" csv:"delta"`
	HedgeShares               float64 `json:"hedge_shares" csv:"hedge_shares"`
	Cash                      float64 `json:"cash" csv:"cash"`
	PortfolioValue            float64 `json:"portfolio_value" csv:"portfolio_value"`
	Pnl                       float64 `json:"pnl" csv:"pnl"`
	CumulativeTransactionCost float64 `json:"cumulative_transaction_cost" csv:"cumulative_transaction_cost"`
}

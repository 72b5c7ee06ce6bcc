package models

type TransactionType string

const (
	TransactionBuy  TransactionType = "buy"
	TransactionSell TransactionType = "sell"
)

// TransactionRecord is one rebalancing trade. A record exists if and only if
// the hedge position changed by more than the trade epsilon at that step.
type TransactionRecord struct {
	Time               float64         `json:"time"`
	StockPrice         float64         `json:"stock_price"`
	Delta              float64         `json:"delta"`
	DeltaChange        float64         `json:"delta_change"`
	SharesTraded       float64         `json:"shares_traded"`
	TotalShares        float64         `json:"total_shares"`
	TradeCost          float64         `json:"trade_cost"`
	TransactionType    TransactionType `json:"transaction_type"`
	TransactionPnl     float64         `json:"transaction_pnl"`
	TotalPnl           float64         `json:"total_pnl"`
	OptionPnlSinceLast float64         `json:"option_pnl_since_last"`
	PortfolioPnl       float64         `json:"portfolio_pnl"`
	Cash               float64         `json:"cash"`
}

package models

import "github.com/google/uuid"

// HedgeResult is the complete output of one hedging simulation run.
type HedgeResult struct {
	RunID        uuid.UUID           `json:"run_id"`
	Path         PricePath           `json:"-"`
	TimeSeries   []HedgeStepRecord   `json:"time_series"`
	Transactions []TransactionRecord `json:"transactions"`
	Summary      HedgeSummary        `json:"summary"`
}

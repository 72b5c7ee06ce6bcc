package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validHedgingRequest() map[string]interface{} {
	return map[string]interface{}{
		"S0":               100.0,
		"K":                100.0,
		"r":                0.05,
		"sigma":            0.2,
		"T":                0.25,
		"option_type":      "call",
		"rebalance_freq":   "daily",
		"transaction_cost": 0.001,
		"seed":             42,
	}
}

func TestSimulateHedging(t *testing.T) {
	t.Run("daily simulation", func(t *testing.T) {
		recorder := postJSON(t, SimulateHedging, validHedgingRequest())
		require.Equal(t, http.StatusOK, recorder.Code)

		var response HedgingSimulateResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))

		assert.NotEqual(t, uuid.Nil, response.RunID)
		require.Len(t, response.TimeSeries, 64)
		assert.NotEmpty(t, response.Transactions)

		assert.Equal(t, 100.0, response.TimeSeries[0].StockPrice)
		assert.Less(t, response.TimeSeries[0].HedgeShares, 0.0)
		assert.Greater(t, response.Summary.TotalTransactionCost, 0.0)

		// The two names of the replication error always agree.
		assert.Equal(t, response.Summary.ReplicationError, response.Summary.HedgingError)
		assert.Equal(t, response.Summary.TotalPnl, response.Summary.FinalPnl)
	})

	t.Run("same seed is reproducible apart from the run id", func(t *testing.T) {
		first := postJSON(t, SimulateHedging, validHedgingRequest())
		second := postJSON(t, SimulateHedging, validHedgingRequest())

		require.Equal(t, http.StatusOK, first.Code)
		require.Equal(t, http.StatusOK, second.Code)

		var a, b HedgingSimulateResponse
		require.NoError(t, json.NewDecoder(first.Body).Decode(&a))
		require.NoError(t, json.NewDecoder(second.Body).Decode(&b))

		assert.NotEqual(t, a.RunID, b.RunID)
		assert.Equal(t, a.Summary, b.Summary)
		assert.Equal(t, a.TimeSeries, b.TimeSeries)
	})

	t.Run("invalid frequency maps to 400", func(t *testing.T) {
		body := validHedgingRequest()
		body["rebalance_freq"] = "hourly"

		recorder := postJSON(t, SimulateHedging, body)
		require.Equal(t, http.StatusBadRequest, recorder.Code)

		var response errorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
		assert.Contains(t, response.Msg, "rebalance_freq")
	})

	t.Run("zero maturity maps to 400", func(t *testing.T) {
		body := validHedgingRequest()
		body["T"] = 0.0

		recorder := postJSON(t, SimulateHedging, body)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestCompareHedgingFrequencies(t *testing.T) {
	t.Run("daily versus monthly", func(t *testing.T) {
		body := validHedgingRequest()
		delete(body, "rebalance_freq")
		delete(body, "seed")
		body["frequencies"] = []string{"daily", "monthly"}
		body["num_simulations"] = 50

		recorder := postJSON(t, CompareHedgingFrequencies, body)
		require.Equal(t, http.StatusOK, recorder.Code)

		var response HedgingCompareResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))

		require.Len(t, response.Comparisons, 2)
		assert.Equal(t, "daily", response.Comparisons[0].Frequency)
		assert.Equal(t, "monthly", response.Comparisons[1].Frequency)
		assert.Greater(t, response.Comparisons[0].MeanTransactionCost, response.Comparisons[1].MeanTransactionCost)
	})

	t.Run("missing frequencies maps to 400", func(t *testing.T) {
		body := validHedgingRequest()
		delete(body, "rebalance_freq")

		recorder := postJSON(t, CompareHedgingFrequencies, body)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

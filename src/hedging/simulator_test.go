package hedging

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/option-pricer/src/models"
)

func hedgeContract(optionType models.OptionType) models.OptionContract {
	return models.OptionContract{
		Spot:           100.0,
		Strike:         100.0,
		Rate:           0.05,
		Volatility:     0.2,
		TimeToMaturity: 0.25,
		OptionType:     optionType,
	}
}

func TestSimulatorRun(t *testing.T) {
	t.Run("daily hedge structure", func(t *testing.T) {
		seed := int64(42)
		simulator := NewSimulator(hedgeContract(models.Call), "daily", 0.001, 1, 1.0, &seed)

		result, err := simulator.Run()
		require.NoError(t, err)

		// ceil(0.25 * 252) daily steps plus the initial point.
		require.Len(t, result.TimeSeries, 64)

		first := result.TimeSeries[0]
		last := result.TimeSeries[len(result.TimeSeries)-1]

		assert.Equal(t, 0.0, first.Time)
		assert.InDelta(t, 0.25, last.Time, 1e-12)
		assert.Equal(t, 100.0, first.StockPrice)

		// Long the call, so the hedge is short stock from the start.
		assert.Less(t, first.HedgeShares, 0.0)
		assert.Greater(t, first.OptionValue, 0.0)

		// The last option value is intrinsic: tau is exactly zero there.
		intrinsic := math.Max(last.StockPrice-100.0, 0.0) * SharesPerContract
		assert.InDelta(t, intrinsic, last.OptionValue, 1e-9)
	})

	t.Run("transaction log respects the trade epsilon", func(t *testing.T) {
		seed := int64(42)
		simulator := NewSimulator(hedgeContract(models.Call), "daily", 0.001, 1, 1.0, &seed)

		result, err := simulator.Run()
		require.NoError(t, err)
		require.NotEmpty(t, result.Transactions)

		for _, tx := range result.Transactions {
			assert.Greater(t, math.Abs(tx.SharesTraded), TradeEpsilon)
			assert.InDelta(t, math.Abs(tx.SharesTraded)*tx.StockPrice*0.001, tx.TradeCost, 1e-9)

			if tx.SharesTraded > 0 {
				assert.Equal(t, models.TransactionBuy, tx.TransactionType)
			} else {
				assert.Equal(t, models.TransactionSell, tx.TransactionType)
			}
		}
	})

	t.Run("cumulative cost is non-decreasing and matches the summary", func(t *testing.T) {
		seed := int64(42)
		simulator := NewSimulator(hedgeContract(models.Call), "daily", 0.001, 1, 1.0, &seed)

		result, err := simulator.Run()
		require.NoError(t, err)

		previous := 0.0
		for _, record := range result.TimeSeries {
			assert.GreaterOrEqual(t, record.CumulativeTransactionCost, previous)
			previous = record.CumulativeTransactionCost
		}

		assert.InDelta(t, previous, result.Summary.TotalTransactionCost, 1e-9)
		assert.Greater(t, result.Summary.TotalTransactionCost, 0.0)
	})

	t.Run("summary ties out with the time series", func(t *testing.T) {
		seed := int64(42)
		simulator := NewSimulator(hedgeContract(models.Put), "weekly", 0.001, 2, 1.0, &seed)

		result, err := simulator.Run()
		require.NoError(t, err)

		last := result.TimeSeries[len(result.TimeSeries)-1]
		assert.InDelta(t, last.Pnl, result.Summary.TotalPnl, 1e-9)
		assert.InDelta(t, last.PortfolioValue, result.Summary.FinalPortfolioValue, 1e-9)
		assert.GreaterOrEqual(t, result.Summary.MaxDrawdown, 0.0)

		assert.Equal(t, result.Summary.TotalPnl, result.Summary.FinalPnl())
		assert.Equal(t, result.Summary.ReplicationError, result.Summary.HedgingError())
	})

	t.Run("daily hedge at zero cost replicates closely", func(t *testing.T) {
		seed := int64(42)
		simulator := NewSimulator(hedgeContract(models.Call), "daily", 0.0, 1, 1.0, &seed)

		result, err := simulator.Run()
		require.NoError(t, err)

		assert.Equal(t, 0.0, result.Summary.TotalTransactionCost)

		// Discrete daily rebalancing leaves a residual well under the
		// initial option premium.
		initialPremium := result.TimeSeries[0].OptionValue
		assert.Less(t, math.Abs(result.Summary.ReplicationError), 0.25*initialPremium)
	})

	t.Run("same seed reproduces the run", func(t *testing.T) {
		seed := int64(9)

		first, err := NewSimulator(hedgeContract(models.Call), "daily", 0.001, 1, 1.0, &seed).Run()
		require.NoError(t, err)

		second, err := NewSimulator(hedgeContract(models.Call), "daily", 0.001, 1, 1.0, &seed).Run()
		require.NoError(t, err)

		assert.NotEqual(t, first.RunID, second.RunID)
		assert.Equal(t, first.Summary, second.Summary)
		assert.Equal(t, first.TimeSeries, second.TimeSeries)
		assert.Equal(t, first.Transactions, second.Transactions)
	})

	t.Run("validation failures", func(t *testing.T) {
		seed := int64(1)

		expired := hedgeContract(models.Call)
		expired.TimeToMaturity = 0.0
		_, err := NewSimulator(expired, "daily", 0.001, 1, 1.0, &seed).Run()
		require.Error(t, err)

		_, err = NewSimulator(hedgeContract(models.Call), "daily", 0.001, 0, 1.0, &seed).Run()
		require.Error(t, err)

		_, err = NewSimulator(hedgeContract(models.Call), "hourly", 0.001, 1, 1.0, &seed).Run()
		require.Error(t, err)

		var validationErr *models.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

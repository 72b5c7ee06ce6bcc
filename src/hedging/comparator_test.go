package hedging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/option-pricer/src/models"
)

func TestCompareFrequencies(t *testing.T) {
	t.Run("more frequent hedging costs more", func(t *testing.T) {
		results, err := CompareFrequencies(hedgeContract(models.Call), []string{"daily", "monthly"}, 0.001, 100, 1)
		require.NoError(t, err)
		require.Len(t, results, 2)

		daily := results[0]
		monthly := results[1]

		assert.Equal(t, "daily", daily.Frequency)
		assert.Equal(t, "monthly", monthly.Frequency)
		assert.Greater(t, daily.MeanTransactionCost, monthly.MeanTransactionCost)
	})

	t.Run("more frequent hedging replicates more tightly at zero cost", func(t *testing.T) {
		results, err := CompareFrequencies(hedgeContract(models.Call), []string{"daily", "monthly"}, 0.0, 100, 1)
		require.NoError(t, err)
		require.Len(t, results, 2)

		daily := results[0]
		monthly := results[1]

		assert.Less(t, daily.StdPnl, monthly.StdPnl)
		assert.Equal(t, 0.0, daily.MeanTransactionCost)
		assert.GreaterOrEqual(t, daily.MaxPnl, daily.MinPnl)
	})

	t.Run("same frequency replays identical paths", func(t *testing.T) {
		first, err := CompareFrequencies(hedgeContract(models.Put), []string{"weekly"}, 0.001, 20, 1)
		require.NoError(t, err)

		second, err := CompareFrequencies(hedgeContract(models.Put), []string{"weekly"}, 0.001, 20, 1)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("input validation", func(t *testing.T) {
		_, err := CompareFrequencies(hedgeContract(models.Call), nil, 0.001, 10, 1)
		require.Error(t, err)

		_, err = CompareFrequencies(hedgeContract(models.Call), []string{"daily"}, 0.001, 0, 1)
		require.Error(t, err)

		_, err = CompareFrequencies(hedgeContract(models.Call), []string{"hourly"}, 0.001, 10, 1)
		require.Error(t, err)

		var validationErr *models.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

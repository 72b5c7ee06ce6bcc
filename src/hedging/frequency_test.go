package hedging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/option-pricer/src/models"
)

func TestParseFrequency(t *testing.T) {
	t.Run("named frequencies", func(t *testing.T) {
		cases := map[string]float64{
			"daily":    1.0 / 252.0,
			"weekly":   1.0 / 52.0,
			"biweekly": 1.0 / 26.0,
			"monthly":  1.0 / 12.0,
		}

		for freq, expected := range cases {
			dt, err := ParseFrequency(freq)
			require.NoError(t, err, freq)
			assert.InDelta(t, expected, dt, 1e-12, freq)
		}
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		dt, err := ParseFrequency("  Daily ")
		require.NoError(t, err)
		assert.InDelta(t, 1.0/252.0, dt, 1e-12)
	})

	t.Run("numeric day counts", func(t *testing.T) {
		dt, err := ParseFrequency("5")
		require.NoError(t, err)
		assert.InDelta(t, 5.0/252.0, dt, 1e-12)

		dt, err = ParseFrequency("0.5")
		require.NoError(t, err)
		assert.InDelta(t, 0.5/252.0, dt, 1e-12)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseFrequency("hourly")
		require.Error(t, err)

		var validationErr *models.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("rejects non-positive day counts", func(t *testing.T) {
		_, err := ParseFrequency("0")
		require.Error(t, err)

		_, err = ParseFrequency("-3")
		require.Error(t, err)
	})
}

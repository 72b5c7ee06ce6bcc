package greeks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/option-pricer/src/models"
)

func TestLatticeGreeks(t *testing.T) {
	engine := NewEngine()

	t.Run("matches analytic greeks for call and put", func(t *testing.T) {
		for _, optionType := range []models.OptionType{models.Call, models.Put} {
			contract := testContract(optionType)

			analytic, err := engine.Analytic(contract)
			require.NoError(t, err)

			lattice, err := engine.Lattice(contract, 1000, DefaultPerturbation)
			require.NoError(t, err)

			assert.InDelta(t, analytic.Delta, lattice.Delta, 1e-3, "%s delta", optionType)

			// The parity-averaged second difference carries an O(dS²) bias;
			// at a 1% spot bump that leaves gamma ~2e-3 from analytic.
			assert.InDelta(t, analytic.Gamma, lattice.Gamma, 5e-3, "%s gamma", optionType)
			assert.InDelta(t, analytic.Theta, lattice.Theta, 5e-2, "%s theta", optionType)
			assert.InDelta(t, analytic.Vega, lattice.Vega, 1e-3, "%s vega", optionType)
			assert.InDelta(t, analytic.Rho, lattice.Rho, 1e-3, "%s rho", optionType)
		}
	})

	t.Run("parity-averaged gamma is stable at the default bump", func(t *testing.T) {
		lattice, err := engine.Lattice(testContract(models.Call), 1000, DefaultPerturbation)
		require.NoError(t, err)

		assert.InDelta(t, 0.02058339118337571, lattice.Gamma, 1e-9)
	})

	t.Run("zero rate still produces a rho estimate", func(t *testing.T) {
		contract := testContract(models.Call)
		contract.Rate = 0.0

		lattice, err := engine.Lattice(contract, 500, DefaultPerturbation)
		require.NoError(t, err)
		assert.Greater(t, lattice.Rho, 0.0)
	})

	t.Run("propagates pricer validation errors", func(t *testing.T) {
		contract := testContract(models.Call)
		contract.Spot = -1.0

		_, err := engine.Lattice(contract, 500, DefaultPerturbation)
		require.Error(t, err)
	})
}

func TestSimulationGreeks(t *testing.T) {
	engine := NewEngine()

	t.Run("matches analytic greeks under common random numbers", func(t *testing.T) {
		seed := int64(42)
		contract := testContract(models.Call)

		analytic, err := engine.Analytic(contract)
		require.NoError(t, err)

		simulation, err := engine.Simulation(contract, 500000, DefaultPerturbation, &seed)
		require.NoError(t, err)

		assert.InDelta(t, analytic.Delta, simulation.Delta, 5e-2)
		assert.InDelta(t, analytic.Vega, simulation.Vega, 5e-2)
		assert.InDelta(t, analytic.Rho, simulation.Rho, 5e-2)
		assert.InDelta(t, analytic.Theta, simulation.Theta, 0.5)
	})

	t.Run("same seed is reproducible", func(t *testing.T) {
		seed := int64(7)
		contract := testContract(models.Put)

		first, err := engine.Simulation(contract, 100000, DefaultPerturbation, &seed)
		require.NoError(t, err)

		second, err := engine.Simulation(contract, 100000, DefaultPerturbation, &seed)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("nil seed uses the default seed", func(t *testing.T) {
		defaultSeed := DefaultMonteCarloSeed
		contract := testContract(models.Call)

		fromNil, err := engine.Simulation(contract, 100000, DefaultPerturbation, nil)
		require.NoError(t, err)

		fromDefault, err := engine.Simulation(contract, 100000, DefaultPerturbation, &defaultSeed)
		require.NoError(t, err)

		assert.Equal(t, fromDefault, fromNil)
	})
}

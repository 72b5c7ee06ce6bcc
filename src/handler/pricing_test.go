package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/", bytes.NewReader(payload))
	recorder := httptest.NewRecorder()
	handlerFunc(recorder, req)

	return recorder
}

func validPricingRequest() map[string]interface{} {
	return map[string]interface{}{
		"S0":          100.0,
		"K":           100.0,
		"r":           0.05,
		"sigma":       0.2,
		"T":           1.0,
		"option_type": "call",
	}
}

func TestCalculatePricing(t *testing.T) {
	t.Run("all three prices agree", func(t *testing.T) {
		body := validPricingRequest()
		body["binomial_steps"] = 500
		body["mc_simulations"] = 100000
		body["seed"] = 42

		recorder := postJSON(t, CalculatePricing, body)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

		var response PricingResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))

		assert.InDelta(t, 10.450584, response.BlackScholes, 1e-5)
		assert.InDelta(t, response.BlackScholes, response.Binomial, 0.05)
		assert.InDelta(t, response.BlackScholes, response.MonteCarlo, 0.2)
		assert.Greater(t, response.MonteCarloStderr, 0.0)
		assert.GreaterOrEqual(t, response.Comparison.BinomialPctDiff, 0.0)
	})

	t.Run("invalid contract maps to 400", func(t *testing.T) {
		body := validPricingRequest()
		body["sigma"] = -0.2

		recorder := postJSON(t, CalculatePricing, body)
		require.Equal(t, http.StatusBadRequest, recorder.Code)

		var response errorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
		assert.Contains(t, response.Msg, "sigma")
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader("{not json"))
		recorder := httptest.NewRecorder()
		CalculatePricing(recorder, req)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestPricingConvergence(t *testing.T) {
	t.Run("slopes are negative", func(t *testing.T) {
		recorder := postJSON(t, PricingConvergence, validPricingRequest())
		require.Equal(t, http.StatusOK, recorder.Code)

		var response ConvergenceResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))

		assert.Len(t, response.Binomial, 10)
		assert.Len(t, response.MonteCarlo, 11)
		assert.Less(t, response.BinomialSlope, 0.0)
		assert.Less(t, response.MonteCarloSlope, 0.0)
		assert.InDelta(t, 10.450584, response.BlackScholesPrice, 1e-5)

		for i := 1; i < len(response.Binomial); i++ {
			assert.Greater(t, response.Binomial[i].Log10N, response.Binomial[i-1].Log10N)
		}
	})
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/health", nil)
	recorder := httptest.NewRecorder()
	Health(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response HealthResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "healthy", response.Status)
}

package server

import (
	"github.com/gorilla/mux"

	"github.com/jiaming2012/option-pricer/src/handler"
)

func Setup() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", handler.Health).Methods("GET")
	router.HandleFunc("/api/health", handler.Health).Methods("GET")

	router.HandleFunc("/api/pricing/calculate", handler.CalculatePricing).Methods("POST")
	router.HandleFunc("/api/pricing/convergence", handler.PricingConvergence).Methods("POST")

	router.HandleFunc("/api/greeks/calculate", handler.CalculateGreeks).Methods("POST")
	router.HandleFunc("/api/greeks/sensitivity", handler.GreeksSensitivity).Methods("POST")
	router.HandleFunc("/api/greeks/compare", handler.CompareGreeks).Methods("POST")
	router.HandleFunc("/api/greeks/compare-methods", handler.CompareGreeksMethods).Methods("POST")

	router.HandleFunc("/api/hedging/simulate", handler.SimulateHedging).Methods("POST")
	router.HandleFunc("/api/hedging/compare-frequencies", handler.CompareHedgingFrequencies).Methods("POST")

	return router
}

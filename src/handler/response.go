package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/option-pricer/src/models"
)

type errorResponse struct {
	Type string `json:"type"`
	Msg  string `json:"message"`
}

func NewErrorResponse(errType string, message string) *errorResponse {
	return &errorResponse{
		Type: errType,
		Msg:  message,
	}
}

func setResponse(response interface{}, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("setResponse: encode: %w", err)
	}

	return nil
}

func setErrorResponse(errType string, statusCode int, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := NewErrorResponse(errType, err.Error())
	if encodeErr := json.NewEncoder(w).Encode(resp); encodeErr != nil {
		log.Errorf("%s: failed to encode error response: %v", errType, encodeErr)
	}
}

// handleError maps validation failures to 400 and everything else to 500.
func handleError(errType string, err error, w http.ResponseWriter) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		log.Debugf("%s: %v", errType, err)
		setErrorResponse(errType, http.StatusBadRequest, err, w)
		return
	}

	log.Errorf("%s: %v", errType, err)
	setErrorResponse(errType, http.StatusInternalServerError, err, w)
}

func decodeRequest(r *http.Request, request interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		return models.NewValidationError("body", fmt.Sprintf("invalid request body: %v", err))
	}

	return nil
}

type HealthResponse struct {
	Status string `json:"status"`
	Msg    string `json:"message"`
}

func Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status: "healthy",
		Msg:    "API is running",
	}

	if err := setResponse(response, w); err != nil {
		log.Errorf("Health: failed to set response: %v", err)
	}
}

package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/osse101/NexTracker_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req DamageRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Damage ingest"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Debug(LogMsgValidationFailed, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalQueryParam retrieves an optional query parameter, falling back to defaultValue
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseLimit reads ?limit= within [1, max], defaulting when absent
func parseLimit(r *http.Request, defaultLimit, max int) (int, error) {
	raw := GetOptionalQueryParam(r, QueryParamLimit, strconv.Itoa(defaultLimit))
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("limit %q is not a number: %w", raw, err)
	}
	if limit < 1 || limit > max {
		return 0, fmt.Errorf("limit %d outside 1..%d", limit, max)
	}
	return limit, nil
}

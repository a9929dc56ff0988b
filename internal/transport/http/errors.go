package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cimillas/timegrid/internal/domain"
)

const (
	codeMethodNotAllowed   = "method_not_allowed"
	codeNotFound           = "not_found"
	codeInvalidRequestBody = "invalid_request_body"
	codeInvalidStart       = "invalid_start"
	codeInvalidEnd         = "invalid_end"
	codeFieldOutOfRange    = "field_out_of_range"
	codeUnknownTimezone    = "unknown_timezone"
	codeInvalidRange       = "invalid_range"
	codeForbidden          = "forbidden"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeDomainError maps the service error taxonomy onto HTTP statuses
// and stable error codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrFieldOutOfRange):
		writeError(w, http.StatusBadRequest, codeFieldOutOfRange, err.Error())
	case errors.Is(err, domain.ErrUnknownTimezone):
		writeError(w, http.StatusBadRequest, codeUnknownTimezone, err.Error())
	case errors.Is(err, domain.ErrInvalidRange):
		writeError(w, http.StatusBadRequest, codeInvalidRange, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cimillas/timegrid/internal/app"
)

// DateTimeCreator is the minimal interface needed to build a date-time
// from optional parts.
type DateTimeCreator interface {
	CreateZoned(tz string, in app.FieldsInput) (time.Time, error)
}

// HandleCreateDateTime returns an HTTP handler that builds a timestamp
// from optional components, defaulting unset ones to now.
func HandleCreateDateTime(svc DateTimeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req createDateTimeRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		dt, err := svc.CreateZoned(req.Timezone, app.FieldsInput{
			Year:   req.Year,
			Month:  req.Month,
			Day:    req.Day,
			Hour:   req.Hour,
			Minute: req.Minute,
			Second: req.Second,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		resp := createDateTimeResponse{
			DateTime: dt.Format(time.RFC3339),
			Timezone: dt.Location().String(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type createDateTimeRequest struct {
	Timezone string `json:"timezone"`
	Year     *int   `json:"year"`
	Month    *int   `json:"month"`
	Day      *int   `json:"day"`
	Hour     *int   `json:"hour"`
	Minute   *int   `json:"minute"`
	Second   *int   `json:"second"`
}

type createDateTimeResponse struct {
	DateTime string `json:"datetime"`
	Timezone string `json:"timezone"`
}

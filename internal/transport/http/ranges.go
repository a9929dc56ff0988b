package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cimillas/timegrid/internal/app"
	"github.com/cimillas/timegrid/internal/domain"
)

// RangeLister is the minimal interface needed to enumerate calendar
// windows between two instants.
type RangeLister interface {
	WeeklyBetween(q app.RangeQuery) ([]domain.DateRange, error)
	MonthlyBetween(q app.RangeQuery) ([]domain.DateRange, error)
}

// HandleWeeklyRanges returns an HTTP handler listing week-aligned
// windows covering [start, end].
func HandleWeeklyRanges(svc RangeLister) http.HandlerFunc {
	return handleRanges(func(q app.RangeQuery) ([]domain.DateRange, error) {
		return svc.WeeklyBetween(q)
	})
}

// HandleMonthlyRanges returns an HTTP handler listing month-aligned
// windows covering [start, end].
func HandleMonthlyRanges(svc RangeLister) http.HandlerFunc {
	return handleRanges(func(q app.RangeQuery) ([]domain.DateRange, error) {
		return svc.MonthlyBetween(q)
	})
}

func handleRanges(list func(app.RangeQuery) ([]domain.DateRange, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		query := r.URL.Query()
		startAt, err := time.Parse(time.RFC3339, query.Get("start"))
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidStart, "invalid start format, want RFC3339")
			return
		}
		endAt, err := time.Parse(time.RFC3339, query.Get("end"))
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidEnd, "invalid end format, want RFC3339")
			return
		}

		windows, err := list(app.RangeQuery{
			StartAt:  startAt,
			EndAt:    endAt,
			Timezone: query.Get("tz"),
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		resp := make([]rangeResponse, 0, len(windows))
		for _, window := range windows {
			resp = append(resp, rangeResponse{
				Start: window.Start.Format(time.RFC3339),
				End:   window.End.Format(time.RFC3339),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type rangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

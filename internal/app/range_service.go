package app

import (
	"time"

	"github.com/jinzhu/now"

	"github.com/cimillas/timegrid/internal/domain"
)

// RangeService enumerates calendar-aligned windows between two instants
// under a timezone's local week/month boundaries.
type RangeService struct {
	weekStart time.Weekday
}

const defaultWeekStart = time.Monday

func NewRangeService(opts ...RangeServiceOption) *RangeService {
	svc := &RangeService{weekStart: defaultWeekStart}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type RangeServiceOption func(*RangeService)

// WithWeekStart overrides the default Monday week-start convention.
func WithWeekStart(d time.Weekday) RangeServiceOption {
	return func(s *RangeService) {
		s.weekStart = d
	}
}

// RangeQuery bounds an enumeration. Timezone is an IANA name; empty
// means UTC.
type RangeQuery struct {
	StartAt  time.Time
	EndAt    time.Time
	Timezone string
}

// WeeklyBetween returns contiguous half-open week windows covering
// [StartAt, EndAt]. The first window is the timezone-local calendar week
// containing StartAt; windows advance by seven wall-clock days, so a
// window crossing a DST transition is 167 or 169 hours long. The last
// window's end is never earlier than EndAt.
func (s *RangeService) WeeklyBetween(q RangeQuery) ([]domain.DateRange, error) {
	return s.enumerate(q, func(cfg *now.Config, t time.Time) time.Time {
		return cfg.With(t).BeginningOfWeek()
	}, func(t time.Time) time.Time {
		return t.AddDate(0, 0, 7)
	})
}

// MonthlyBetween is WeeklyBetween with calendar-month alignment and
// advancement. Boundaries always sit on the first of a month, so adding
// one calendar month never lands on an invalid day.
func (s *RangeService) MonthlyBetween(q RangeQuery) ([]domain.DateRange, error) {
	return s.enumerate(q, func(cfg *now.Config, t time.Time) time.Time {
		return cfg.With(t).BeginningOfMonth()
	}, func(t time.Time) time.Time {
		return t.AddDate(0, 1, 0)
	})
}

func (s *RangeService) enumerate(
	q RangeQuery,
	align func(*now.Config, time.Time) time.Time,
	advance func(time.Time) time.Time,
) ([]domain.DateRange, error) {
	loc, err := resolveLocation(q.Timezone)
	if err != nil {
		return nil, err
	}
	if q.StartAt.After(q.EndAt) {
		return nil, domain.ErrInvalidRange
	}

	cfg := &now.Config{
		WeekStartDay: s.weekStart,
		TimeLocation: loc,
	}

	cur := align(cfg, q.StartAt.In(loc))
	var windows []domain.DateRange
	for {
		next := advance(cur)
		// Alignment from correct tz rules always moves forward; guard
		// against looping forever if it ever does not.
		if !next.After(cur) {
			return nil, domain.ErrBoundaryNotMonotonic
		}
		windows = append(windows, domain.DateRange{Start: cur, End: next})
		if !next.Before(q.EndAt) {
			return windows, nil
		}
		cur = next
	}
}

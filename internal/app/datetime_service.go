package app

import (
	"fmt"
	"time"

	"github.com/cimillas/timegrid/internal/clock"
	"github.com/cimillas/timegrid/internal/domain"
)

// DateTimeService builds date-times from optional component parts,
// defaulting unset parts to the current UTC instant.
type DateTimeService struct {
	clock clock.Clock
}

func NewDateTimeService(clk clock.Clock) *DateTimeService {
	return &DateTimeService{clock: clk}
}

// FieldsInput carries six independently optional date-time components.
// A nil field means "use the corresponding component of now".
type FieldsInput struct {
	Year   *int
	Month  *int
	Day    *int
	Hour   *int
	Minute *int
	Second *int
}

// CreateUTC constructs a UTC date-time from in. The current instant is
// captured exactly once, so all defaulted fields come from the same
// snapshot of now.
func (s *DateTimeService) CreateUTC(in FieldsInput) (time.Time, error) {
	now := s.clock.Now().UTC()

	year := orDefault(in.Year, now.Year())
	month := orDefault(in.Month, int(now.Month()))
	day := orDefault(in.Day, now.Day())
	hour := orDefault(in.Hour, now.Hour())
	minute := orDefault(in.Minute, now.Minute())
	second := orDefault(in.Second, now.Second())

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)

	// time.Date silently normalizes out-of-range components (Apr 31
	// becomes May 1, hour 24 rolls into the next day). Any component
	// that changed on the round trip was invalid.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d %02d:%02d:%02d",
			domain.ErrFieldOutOfRange, year, month, day, hour, minute, second)
	}

	return t, nil
}

// CreateZoned constructs the same instant CreateUTC would and expresses
// it in the wall-clock of the given timezone. The result is tagged with
// the target location, not UTC.
func (s *DateTimeService) CreateZoned(tz string, in FieldsInput) (time.Time, error) {
	loc, err := resolveLocation(tz)
	if err != nil {
		return time.Time{}, err
	}

	utc, err := s.CreateUTC(in)
	if err != nil {
		return time.Time{}, err
	}

	return utc.In(loc), nil
}

func orDefault(field *int, fallback int) int {
	if field != nil {
		return *field
	}
	return fallback
}

package domain

import "time"

// DateRange is a half-open calendar window [Start, End).
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the range, inclusive of Start
// and exclusive of End.
func (r DateRange) Contains(t time.Time) bool {
	return (r.Start.Before(t) && r.End.After(t)) || r.Start.Equal(t)
}

// Equal reports whether both ranges cover the same instants. The bounds
// may carry different locations; comparison is instant-based.
func (r DateRange) Equal(other DateRange) bool {
	return r.Start.Equal(other.Start) && r.End.Equal(other.End)
}

// Duration returns the absolute length of the window.
func (r DateRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

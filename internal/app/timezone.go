package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/cimillas/timegrid/internal/domain"
)

// resolveLocation maps a user-provided IANA timezone name (e.g.
// "Europe/Madrid", "America/New_York") to a *time.Location. An empty
// name defaults to UTC; anything the tz database does not recognize is
// rejected.
func resolveLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTimezone, name)
	}
	return loc, nil
}

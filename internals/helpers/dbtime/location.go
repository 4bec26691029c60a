// file: internals/helpers/dbtime/location.go
package dbtime

import (
	"strings"
	"time"
)

// DefaultTimezone is where the surveyed schools are.
const DefaultTimezone = "America/Bogota"

// Location resolves name in order:
// 1) the given IANA name
// 2) Fallback: America/Bogota
// 3) Last fallback: time.UTC
func Location(name string) *time.Location {
	if s := strings.TrimSpace(name); s != "" {
		if loc, err := time.LoadLocation(s); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Clock returns a time.Now that reports in loc.
func Clock(loc *time.Location) func() time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return func() time.Time { return time.Now().In(loc) }
}

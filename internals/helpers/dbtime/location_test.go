package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation(t *testing.T) {
	assert.Equal(t, "Europe/Madrid", Location("Europe/Madrid").String())
	assert.Equal(t, DefaultTimezone, Location("Mars/Olympus").String())
	assert.Equal(t, DefaultTimezone, Location("  ").String())
}

func TestClock(t *testing.T) {
	loc := time.FixedZone("COT", -5*3600)
	now := Clock(loc)()
	assert.Equal(t, loc, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Minute)

	assert.Equal(t, time.UTC, Clock(nil)().Location())
}

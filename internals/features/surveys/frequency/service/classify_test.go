package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRating(t *testing.T) {
	tests := []struct {
		in   string
		want Rating
	}{
		{"Siempre", RatingAlways},
		{"  siempre ", RatingAlways},
		{"Casi siempre", RatingAlways},
		{"CASI SIEMPRE", RatingAlways},
		{"A veces", RatingSometimes},
		{"Algunas veces", RatingSometimes},
		{"Nunca", RatingNever},
		{"Casi nunca", RatingNever},
		{"tal vez", RatingUnrecognized},
		{"", RatingUnrecognized},
		{"No sabe / no responde", RatingUnrecognized},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRating(tt.in))
		})
	}
}

func TestClassifyRatingRuleOrder(t *testing.T) {
	// "siempre" is checked before "nunca"
	assert.Equal(t, RatingAlways, ClassifyRating("nunca o siempre"))
	assert.Equal(t, RatingSometimes, ClassifyRating("a veces, casi nunca"))
}

func TestRatingString(t *testing.T) {
	assert.Equal(t, "always", RatingAlways.String())
	assert.Equal(t, "sometimes", RatingSometimes.String())
	assert.Equal(t, "never", RatingNever.String())
	assert.Equal(t, "unrecognized", RatingUnrecognized.String())
}

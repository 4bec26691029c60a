package service

import "strings"

// Rating is the bucket a free-text answer falls into.
type Rating int

const (
	RatingUnrecognized Rating = iota
	RatingAlways
	RatingSometimes
	RatingNever
)

func (r Rating) String() string {
	switch r {
	case RatingAlways:
		return "always"
	case RatingSometimes:
		return "sometimes"
	case RatingNever:
		return "never"
	default:
		return "unrecognized"
	}
}

type ratingRule struct {
	contains string
	rating   Rating
}

// Checked in order; the first substring found wins, so "casi siempre" is Always
// and "casi nunca" is Never.
var ratingRules = []ratingRule{
	{contains: "siempre", rating: RatingAlways},
	{contains: "veces", rating: RatingSometimes},
	{contains: "nunca", rating: RatingNever},
}

// ClassifyRating maps a raw answer (any case, surrounding spaces allowed) to a bucket.
func ClassifyRating(raw string) Rating {
	text := strings.ToLower(strings.TrimSpace(raw))
	for _, rule := range ratingRules {
		if strings.Contains(text, rule.contains) {
			return rule.rating
		}
	}
	return RatingUnrecognized
}

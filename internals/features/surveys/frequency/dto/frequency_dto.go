package dto

import (
	"strings"
	"time"

	"cosmo_stats_backend/internals/features/surveys/frequency/model"
)

// FrequencyQuery is the query string of the frequency endpoints.
type FrequencyQuery struct {
	School string `query:"school" validate:"omitempty,max=255"`
}

func (q *FrequencyQuery) Normalize() {
	q.School = strings.TrimSpace(q.School)
}

type AveragesResponse struct {
	School      string                 `json:"school,omitempty"`
	GeneratedAt time.Time              `json:"generated_at"`
	Sections    []model.SectionAverage `json:"sections"`
}

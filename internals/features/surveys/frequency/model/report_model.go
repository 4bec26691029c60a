package model

import (
	"time"

	"cosmo_stats_backend/internals/constants"
)

type ItemReport struct {
	DisplayText string                             `json:"display_text"`
	Questions   map[constants.Role]string          `json:"questions"`
	Results     map[constants.Role]FrequencyResult `json:"results"`
}

type SectionReport struct {
	Key   constants.SectionKey `json:"key"`
	Title string               `json:"title"`
	Items []ItemReport         `json:"items"`
}

// Report mirrors the catalog with every (item, role) cell replaced by its result.
type Report struct {
	School      string          `json:"school,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
	Sections    []SectionReport `json:"sections"`
}

// SectionAverage is the per-role summary of one section.
type SectionAverage struct {
	Key     constants.SectionKey               `json:"key"`
	Title   string                             `json:"title"`
	Results map[constants.Role]FrequencyResult `json:"results"`
}

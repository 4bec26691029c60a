package model

import "cosmo_stats_backend/internals/constants"

// Slice is one labelled share of a distribution chart.
type Slice struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

func Total(slices []Slice) int64 {
	var n int64
	for _, s := range slices {
		n += s.Value
	}
	return n
}

// Profile describes who answered the survey at one school.
type Profile struct {
	School           string                   `json:"school"`
	Counts           map[constants.Role]int64 `json:"counts"`
	TeacherGrades    []Slice                  `json:"teacher_grades"`
	TeacherSchedules []Slice                  `json:"teacher_schedules"`
	StudentGrades    []Slice                  `json:"student_grades"`
	StudentSchedules []Slice                  `json:"student_schedules"`
	GuardianGrades   []Slice                  `json:"guardian_grades"`
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cosmo_stats_backend/internals/features/surveys/respondents/model"
	"cosmo_stats_backend/internals/features/surveys/submissions"
)

func labels(slices []model.Slice) []string {
	out := make([]string, len(slices))
	for i, s := range slices {
		out[i] = s.Label
	}
	return out
}

func values(slices []model.Slice) []int64 {
	out := make([]int64, len(slices))
	for i, s := range slices {
		out[i] = s.Value
	}
	return out
}

func TestTeacherGradeDistribution(t *testing.T) {
	got := TeacherGradeDistribution([][]string{
		{"Preescolar", "1", "5"},
		{"6", " 9 ", "10"},
		{"12", "Primera infancia", "otro"},
	})
	assert.Equal(t, []string{"Preescolar", "Primaria", "Secundaria", "Media"}, labels(got))
	assert.Equal(t, []int64{2, 2, 2, 2}, values(got))
}

func TestTeacherGradeDistributionEmpty(t *testing.T) {
	got := TeacherGradeDistribution(nil)
	assert.Len(t, got, 4)
	assert.Zero(t, model.Total(got))
}

func TestStudentGradeDistribution(t *testing.T) {
	got := StudentGradeDistribution([]submissions.ValueCount{
		{Value: "11", Count: 3},
		{Value: "5", Count: 2},
		{Value: "raro", Count: 1},
		{Value: "9", Count: 4},
	})
	assert.Equal(t, []string{"Quinto", "Noveno", "Undécimo", "raro"}, labels(got))
	assert.Equal(t, []int64{2, 4, 3, 1}, values(got))
}

func TestGuardianGradeDistribution(t *testing.T) {
	got := GuardianGradeDistribution([][]string{
		{"10", "2"},
		{"Preescolar", "2"},
	})
	assert.Equal(t, []string{"Preescolar", "Grado 2", "Grado 10"}, labels(got))
	assert.Equal(t, []int64{1, 2, 1}, values(got))
}

func TestGuardianGradeDistributionDefaults(t *testing.T) {
	got := GuardianGradeDistribution([][]string{{}, {" "}})
	assert.Len(t, got, 13)
	assert.Equal(t, "Preescolar", got[0].Label)
	assert.Equal(t, "Grado 12", got[12].Label)
	assert.Zero(t, model.Total(got))
}

func TestScheduleDistribution(t *testing.T) {
	got := ScheduleDistribution([]submissions.ValueCount{
		{Value: "TARDE", Count: 2},
		{Value: "MANANA", Count: 3},
		{Value: "Mañana", Count: 1},
		{Value: "Sabatina", Count: 5},
	})
	assert.Equal(t, []string{"Mañana", "Tarde", "Sabatina"}, labels(got))
	assert.Equal(t, []int64{4, 2, 5}, values(got))
}

func TestScheduleDistributionDefaults(t *testing.T) {
	got := ScheduleDistribution(nil)
	assert.Equal(t, []string{"Mañana", "Tarde", "Noche", "Única"}, labels(got))
	assert.Zero(t, model.Total(got))

	// the defaults must not alias the package-level order
	got[0].Value = 9
	assert.Zero(t, ScheduleDistribution(nil)[0].Value)
}

func TestScheduleDistributionBlankJornada(t *testing.T) {
	got := ScheduleDistribution([]submissions.ValueCount{
		{Value: "", Count: 4},
		{Value: "TARDE", Count: 2},
		{Value: "  ", Count: 1},
	})
	assert.Equal(t, []string{"Tarde", "Sin dato"}, labels(got))
	assert.Equal(t, []int64{2, 5}, values(got))
	for _, s := range got {
		assert.NotEmpty(t, s.Label)
	}
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cosmo_stats_backend/internals/constants"
	"cosmo_stats_backend/internals/features/surveys/submissions"
)

type mockStore struct{ mock.Mock }

func (m *mockStore) CountRespondents(ctx context.Context, role constants.Role, school string) (int64, error) {
	args := m.Called(role, school)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) TeacherGrades(ctx context.Context, school string) ([][]string, error) {
	args := m.Called(school)
	rows, _ := args.Get(0).([][]string)
	return rows, args.Error(1)
}

func (m *mockStore) GuardianGrades(ctx context.Context, school string) ([][]string, error) {
	args := m.Called(school)
	rows, _ := args.Get(0).([][]string)
	return rows, args.Error(1)
}

func (m *mockStore) StudentGrades(ctx context.Context, school string) ([]submissions.ValueCount, error) {
	args := m.Called(school)
	rows, _ := args.Get(0).([]submissions.ValueCount)
	return rows, args.Error(1)
}

func (m *mockStore) Schedules(ctx context.Context, role constants.Role, school string) ([]submissions.ValueCount, error) {
	args := m.Called(role, school)
	rows, _ := args.Get(0).([]submissions.ValueCount)
	return rows, args.Error(1)
}

func TestProfile(t *testing.T) {
	const school = "IE Central"
	st := new(mockStore)
	st.On("CountRespondents", constants.RoleTeacher, school).Return(int64(12), nil)
	st.On("CountRespondents", constants.RoleStudent, school).Return(int64(40), nil)
	st.On("CountRespondents", constants.RoleGuardian, school).Return(int64(0), errors.New("boom"))
	st.On("TeacherGrades", school).Return([][]string{{"1", "7"}}, nil)
	st.On("GuardianGrades", school).Return(nil, errors.New("boom"))
	st.On("StudentGrades", school).Return([]submissions.ValueCount{{Value: "6", Count: 40}}, nil)
	st.On("Schedules", constants.RoleTeacher, school).Return([]submissions.ValueCount{{Value: "UNICA", Count: 12}}, nil)
	st.On("Schedules", constants.RoleStudent, school).Return(nil, errors.New("boom"))

	p := NewProfileService(st, nil).Profile(context.Background(), school)

	assert.Equal(t, school, p.School)
	assert.Equal(t, int64(12), p.Counts[constants.RoleTeacher])
	assert.Equal(t, int64(40), p.Counts[constants.RoleStudent])
	assert.Equal(t, int64(0), p.Counts[constants.RoleGuardian])
	assert.Equal(t, []int64{0, 1, 1, 0}, values(p.TeacherGrades))
	assert.Equal(t, []string{"Sexto"}, labels(p.StudentGrades))
	assert.Equal(t, []string{"Única"}, labels(p.TeacherSchedules))
	assert.Len(t, p.StudentSchedules, 4)
	assert.Len(t, p.GuardianGrades, 13)
	st.AssertExpectations(t)
}

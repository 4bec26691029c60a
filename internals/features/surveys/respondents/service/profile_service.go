// file: internals/features/surveys/respondents/service/profile_service.go
package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cosmo_stats_backend/internals/constants"
	"cosmo_stats_backend/internals/features/surveys/respondents/model"
	"cosmo_stats_backend/internals/features/surveys/submissions"
)

type Store interface {
	CountRespondents(ctx context.Context, role constants.Role, school string) (int64, error)
	TeacherGrades(ctx context.Context, school string) ([][]string, error)
	GuardianGrades(ctx context.Context, school string) ([][]string, error)
	StudentGrades(ctx context.Context, school string) ([]submissions.ValueCount, error)
	Schedules(ctx context.Context, role constants.Role, school string) ([]submissions.ValueCount, error)
}

type ProfileService struct {
	Store Store
	Log   *zap.Logger
}

func NewProfileService(store Store, log *zap.Logger) *ProfileService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProfileService{Store: store, Log: log}
}

// Profile never fails: a query that errors yields its empty distribution and
// a zero count.
func (s *ProfileService) Profile(ctx context.Context, school string) model.Profile {
	var (
		teacherGrades, guardianGrades [][]string
		studentGrades                 []submissions.ValueCount
		teacherSched, studentSched    []submissions.ValueCount
		counts                        = make([]int64, len(constants.AllRoles))
	)

	var g errgroup.Group
	for i, role := range constants.AllRoles {
		i, role := i, role
		g.Go(func() error {
			n, err := s.Store.CountRespondents(ctx, role, school)
			if err != nil {
				s.warn("count respondents", school, err, zap.String("role", string(role)))
				return nil
			}
			counts[i] = n
			return nil
		})
	}
	g.Go(func() error {
		rows, err := s.Store.TeacherGrades(ctx, school)
		if err != nil {
			s.warn("teacher grades", school, err)
		}
		teacherGrades = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.Store.GuardianGrades(ctx, school)
		if err != nil {
			s.warn("guardian grades", school, err)
		}
		guardianGrades = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.Store.StudentGrades(ctx, school)
		if err != nil {
			s.warn("student grades", school, err)
		}
		studentGrades = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.Store.Schedules(ctx, constants.RoleTeacher, school)
		if err != nil {
			s.warn("teacher schedules", school, err)
		}
		teacherSched = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.Store.Schedules(ctx, constants.RoleStudent, school)
		if err != nil {
			s.warn("student schedules", school, err)
		}
		studentSched = rows
		return nil
	})
	_ = g.Wait()

	out := model.Profile{
		School:           school,
		Counts:           make(map[constants.Role]int64, len(constants.AllRoles)),
		TeacherGrades:    TeacherGradeDistribution(teacherGrades),
		TeacherSchedules: ScheduleDistribution(teacherSched),
		StudentGrades:    StudentGradeDistribution(studentGrades),
		StudentSchedules: ScheduleDistribution(studentSched),
		GuardianGrades:   GuardianGradeDistribution(guardianGrades),
	}
	for i, role := range constants.AllRoles {
		out.Counts[role] = counts[i]
	}
	return out
}

func (s *ProfileService) warn(what, school string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("school", school), zap.Error(err))
	s.Log.Warn(what+" failed", fields...)
}

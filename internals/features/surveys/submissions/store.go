// file: internals/features/surveys/submissions/store.go
package submissions

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"cosmo_stats_backend/internals/constants"
	database "cosmo_stats_backend/internals/databases"
)

// AnswerQuery selects the answers of one question. School "" means every school.
type AnswerQuery struct {
	Role     constants.Role
	Section  constants.SectionKey
	Question string
	School   string
}

// Store runs the read-only queries against the submission tables.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) Ping(ctx context.Context) error {
	return database.Ping(ctx, s.DB)
}

// buildAnswerQuery expands every submission's section object and groups the
// answers given to one question by their raw text.
func buildAnswerQuery(q AnswerQuery) (string, []interface{}, error) {
	table := q.Role.Table()
	if table == "" {
		return "", nil, fmt.Errorf("unknown role %q", q.Role)
	}
	column := q.Section.Column()
	if column == "" {
		return "", nil, fmt.Errorf("unknown section %q", q.Section)
	}

	b := sq.Select("x.value AS rating", "COUNT(*) AS count").
		From(fmt.Sprintf("%s, jsonb_each_text(%s.%s) AS x(key, value)", table, table, column)).
		Where(sq.Eq{"x.key": q.Question})
	if q.School != "" {
		b = b.Where(sq.Eq{table + "." + constants.SchoolColumn: q.School})
	}
	return b.GroupBy("x.value").OrderBy("x.value").ToSql()
}

func (s *Store) CountAnswers(ctx context.Context, q AnswerQuery) ([]AnswerCount, error) {
	query, args, err := buildAnswerQuery(q)
	if err != nil {
		return nil, err
	}
	var rows []AnswerCount
	if err := s.DB.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count answers %s/%s: %w", q.Role, q.Section, err)
	}
	return rows, nil
}

// CountRespondents counts submissions of a role; school "" counts all of them.
func (s *Store) CountRespondents(ctx context.Context, role constants.Role, school string) (int64, error) {
	table := role.Table()
	if table == "" {
		return 0, fmt.Errorf("unknown role %q", role)
	}
	tx := s.DB.WithContext(ctx).Table(table)
	if school != "" {
		tx = tx.Where(constants.SchoolColumn+" = ?", school)
	}
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// Schools lists the distinct rows of the principals' contact sheet.
func (s *Store) Schools(ctx context.Context) ([]RectorModel, error) {
	var rows []RectorModel
	err := s.DB.WithContext(ctx).
		Model(&RectorModel{}).
		Distinct(rectorColumns).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list schools: %w", err)
	}
	return rows, nil
}

// TeacherGrades returns grados_asignados of every teacher of the school.
func (s *Store) TeacherGrades(ctx context.Context, school string) ([][]string, error) {
	var rows []TeacherSubmissionModel
	err := s.DB.WithContext(ctx).
		Select("grados_asignados").
		Where(constants.SchoolColumn+" = ?", school).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("teacher grades: %w", err)
	}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string(r.GradosAsignados))
	}
	return out, nil
}

// GuardianGrades returns grados_estudiantes of every guardian of the school.
func (s *Store) GuardianGrades(ctx context.Context, school string) ([][]string, error) {
	var rows []GuardianSubmissionModel
	err := s.DB.WithContext(ctx).
		Select("grados_estudiantes").
		Where(constants.SchoolColumn+" = ?", school).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("guardian grades: %w", err)
	}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string(r.GradosEstudiantes))
	}
	return out, nil
}

// StudentGrades groups students of the school by grado_actual.
func (s *Store) StudentGrades(ctx context.Context, school string) ([]ValueCount, error) {
	var rows []ValueCount
	err := s.DB.WithContext(ctx).
		Model(&StudentSubmissionModel{}).
		Select("COALESCE(TRIM(grado_actual), '') AS value, COUNT(*) AS count").
		Where(constants.SchoolColumn+" = ?", school).
		Group("COALESCE(TRIM(grado_actual), '')").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("student grades: %w", err)
	}
	return rows, nil
}

// Schedules groups teachers or students of the school by jornada.
func (s *Store) Schedules(ctx context.Context, role constants.Role, school string) ([]ValueCount, error) {
	if role != constants.RoleTeacher && role != constants.RoleStudent {
		return nil, fmt.Errorf("no schedule column for role %q", role)
	}
	var rows []ValueCount
	err := s.DB.WithContext(ctx).
		Table(role.Table()).
		Select("COALESCE(jornada, '') AS value, COUNT(*) AS count").
		Where(constants.SchoolColumn+" = ?", school).
		Group("jornada").
		Order("jornada").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("schedules %s: %w", role, err)
	}
	return rows, nil
}

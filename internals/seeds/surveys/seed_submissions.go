package surveys

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"cosmo_stats_backend/internals/constants"
	"cosmo_stats_backend/internals/features/surveys/catalog"
	"cosmo_stats_backend/internals/features/surveys/submissions"
)

// RespondentSeed is one demo submission. Answer is given to every question
// the role is asked; Overrides replaces it for single questions.
type RespondentSeed struct {
	School    string            `json:"school"`
	Jornada   string            `json:"jornada,omitempty"`
	Grades    []string          `json:"grades,omitempty"`
	Grade     string            `json:"grade,omitempty"`
	Answer    string            `json:"answer"`
	Overrides map[string]string `json:"overrides,omitempty"`
	Repeat    int               `json:"repeat,omitempty"`
}

type SchoolSeed struct {
	Name   string `json:"name"`
	Rector string `json:"rector"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}

type SeedFile struct {
	Schools   []SchoolSeed     `json:"schools"`
	Teachers  []RespondentSeed `json:"teachers"`
	Students  []RespondentSeed `json:"students"`
	Guardians []RespondentSeed `json:"guardians"`
}

// Rows are the models a SeedFile expands to.
type Rows struct {
	Rectors   []submissions.RectorModel
	Teachers  []submissions.TeacherSubmissionModel
	Students  []submissions.StudentSubmissionModel
	Guardians []submissions.GuardianSubmissionModel
}

// sectionAnswers builds the three JSONB columns for one respondent.
func sectionAnswers(cat *catalog.Catalog, role constants.Role, s RespondentSeed) (map[constants.SectionKey]datatypes.JSON, error) {
	out := make(map[constants.SectionKey]datatypes.JSON, len(constants.AllSections))
	for _, sec := range cat.Sections() {
		answers := map[string]string{}
		for _, it := range sec.Items {
			q := it.Question(role)
			if q == constants.NotApplicable {
				continue
			}
			answers[q] = s.Answer
			if v, ok := s.Overrides[q]; ok {
				answers[q] = v
			}
		}
		b, err := json.Marshal(answers)
		if err != nil {
			return nil, err
		}
		out[sec.Key] = datatypes.JSON(b)
	}
	return out, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func times(s RespondentSeed) int {
	if s.Repeat < 1 {
		return 1
	}
	return s.Repeat
}

// Expand turns the seed file into rows, answering the catalog questions.
func Expand(cat *catalog.Catalog, f SeedFile) (Rows, error) {
	var rows Rows
	position := "Rector"
	for _, s := range f.Schools {
		rows.Rectors = append(rows.Rectors, submissions.RectorModel{
			SchoolName:         s.Name,
			RectorName:         optional(s.Rector),
			CurrentPosition:    &position,
			InstitutionalEmail: optional(s.Email),
			InstitutionalPhone: optional(s.Phone),
		})
	}

	for _, s := range f.Teachers {
		a, err := sectionAnswers(cat, constants.RoleTeacher, s)
		if err != nil {
			return rows, err
		}
		for i := 0; i < times(s); i++ {
			rows.Teachers = append(rows.Teachers, submissions.TeacherSubmissionModel{
				InstitucionEducativa: s.School,
				Jornada:              optional(s.Jornada),
				GradosAsignados:      s.Grades,
				Comunicacion:         a[constants.SectionCommunication],
				PracticasPedagogicas: a[constants.SectionPedagogy],
				Convivencia:          a[constants.SectionClimate],
			})
		}
	}

	for _, s := range f.Students {
		a, err := sectionAnswers(cat, constants.RoleStudent, s)
		if err != nil {
			return rows, err
		}
		for i := 0; i < times(s); i++ {
			rows.Students = append(rows.Students, submissions.StudentSubmissionModel{
				InstitucionEducativa: s.School,
				Jornada:              optional(s.Jornada),
				GradoActual:          optional(s.Grade),
				Comunicacion:         a[constants.SectionCommunication],
				PracticasPedagogicas: a[constants.SectionPedagogy],
				Convivencia:          a[constants.SectionClimate],
			})
		}
	}

	for _, s := range f.Guardians {
		a, err := sectionAnswers(cat, constants.RoleGuardian, s)
		if err != nil {
			return rows, err
		}
		for i := 0; i < times(s); i++ {
			rows.Guardians = append(rows.Guardians, submissions.GuardianSubmissionModel{
				InstitucionEducativa: s.School,
				GradosEstudiantes:    s.Grades,
				Comunicacion:         a[constants.SectionCommunication],
				PracticasPedagogicas: a[constants.SectionPedagogy],
				Convivencia:          a[constants.SectionClimate],
			})
		}
	}
	return rows, nil
}

func SeedSubmissionsFromJSON(db *gorm.DB, cat *catalog.Catalog, filePath string, log *zap.Logger) error {
	log.Info("reading seed file", zap.String("path", filePath))

	file, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var f SeedFile
	if err := json.Unmarshal(file, &f); err != nil {
		return fmt.Errorf("decode seed file: %w", err)
	}

	rows, err := Expand(cat, f)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, batch := range []struct {
			name string
			n    int
			v    interface{}
		}{
			{"rectores", len(rows.Rectors), &rows.Rectors},
			{"docentes", len(rows.Teachers), &rows.Teachers},
			{"estudiantes", len(rows.Students), &rows.Students},
			{"acudientes", len(rows.Guardians), &rows.Guardians},
		} {
			if batch.n == 0 {
				log.Info("nothing to insert", zap.String("table", batch.name))
				continue
			}
			if err := tx.CreateInBatches(batch.v, 200).Error; err != nil {
				return fmt.Errorf("insert %s: %w", batch.name, err)
			}
			log.Info("inserted", zap.String("table", batch.name), zap.Int("rows", batch.n))
		}
		return nil
	})
}

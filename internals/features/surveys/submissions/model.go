// file: internals/features/surveys/submissions/model.go
package submissions

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Submission tables are written by the survey forms; this service only reads them.
// Every section column is a JSONB object keyed by question text.

type TeacherSubmissionModel struct {
	InstitucionEducativa string         `gorm:"column:institucion_educativa"`
	Jornada              *string        `gorm:"column:jornada"`
	GradosAsignados      pq.StringArray `gorm:"column:grados_asignados;type:text[]"`
	Comunicacion         datatypes.JSON `gorm:"column:comunicacion;type:jsonb"`
	PracticasPedagogicas datatypes.JSON `gorm:"column:practicas_pedagogicas;type:jsonb"`
	Convivencia          datatypes.JSON `gorm:"column:convivencia;type:jsonb"`
}

func (TeacherSubmissionModel) TableName() string { return "docentes_form_submissions" }

type StudentSubmissionModel struct {
	InstitucionEducativa string         `gorm:"column:institucion_educativa"`
	Jornada              *string        `gorm:"column:jornada"`
	GradoActual          *string        `gorm:"column:grado_actual"`
	Comunicacion         datatypes.JSON `gorm:"column:comunicacion;type:jsonb"`
	PracticasPedagogicas datatypes.JSON `gorm:"column:practicas_pedagogicas;type:jsonb"`
	Convivencia          datatypes.JSON `gorm:"column:convivencia;type:jsonb"`
}

func (StudentSubmissionModel) TableName() string { return "estudiantes_form_submissions" }

type GuardianSubmissionModel struct {
	InstitucionEducativa string         `gorm:"column:institucion_educativa"`
	GradosEstudiantes    pq.StringArray `gorm:"column:grados_estudiantes;type:text[]"`
	Comunicacion         datatypes.JSON `gorm:"column:comunicacion;type:jsonb"`
	PracticasPedagogicas datatypes.JSON `gorm:"column:practicas_pedagogicas;type:jsonb"`
	Convivencia          datatypes.JSON `gorm:"column:convivencia;type:jsonb"`
}

func (GuardianSubmissionModel) TableName() string { return "acudientes_form_submissions" }

// RectorModel is the school contact sheet filled by each institution's principal.
type RectorModel struct {
	SchoolName         string  `gorm:"column:nombre_de_la_institucion_educativa_en_la_actualmente_desempena_" json:"school_name"`
	RectorName         *string `gorm:"column:nombre_s_y_apellido_s_completo_s" json:"rector_name"`
	CurrentPosition    *string `gorm:"column:cargo_actual" json:"current_position"`
	PersonalEmail      *string `gorm:"column:correo_electronico_personal" json:"personal_email"`
	InstitutionalEmail *string `gorm:"column:correo_electronico_institucional_el_que_usted_usa_en_su_rol_com" json:"institutional_email"`
	PersonalPhone      *string `gorm:"column:numero_de_celular_personal" json:"personal_phone"`
	InstitutionalPhone *string `gorm:"column:telefono_de_contacto_de_la_ie" json:"institutional_phone"`
	PreferredContact   *string `gorm:"column:prefiere_recibir_comunicaciones_en_el_correo" json:"preferred_contact"`
}

func (RectorModel) TableName() string { return "rectores" }

var rectorColumns = []string{
	"nombre_de_la_institucion_educativa_en_la_actualmente_desempena_",
	"nombre_s_y_apellido_s_completo_s",
	"cargo_actual",
	"correo_electronico_personal",
	"correo_electronico_institucional_el_que_usted_usa_en_su_rol_com",
	"numero_de_celular_personal",
	"telefono_de_contacto_de_la_ie",
	"prefiere_recibir_comunicaciones_en_el_correo",
}

// AnswerCount is one distinct raw answer text and how many submissions gave it.
type AnswerCount struct {
	Rating string `gorm:"column:rating"`
	Count  int64  `gorm:"column:count"`
}

// ValueCount is a generic GROUP BY row.
type ValueCount struct {
	Value string `gorm:"column:value"`
	Count int64  `gorm:"column:count"`
}

package constants

import (
	"fmt"
	"strings"
)

// Role is a respondent group of the survey.
type Role string

const (
	RoleTeacher  Role = "teacher"
	RoleStudent  Role = "student"
	RoleGuardian Role = "guardian"
)

// NotApplicable marks a question that was not asked of a role.
const NotApplicable = "NA"

// Column holding the institution a submission belongs to (same name in every submission table).
const SchoolColumn = "institucion_educativa"

// ==========================
// ✅ Grouped Role Slices
// ==========================
var AllRoles = []Role{
	RoleTeacher,
	RoleStudent,
	RoleGuardian,
}

var roleTables = map[Role]string{
	RoleTeacher:  "docentes_form_submissions",
	RoleStudent:  "estudiantes_form_submissions",
	RoleGuardian: "acudientes_form_submissions",
}

var roleLabels = map[Role]string{
	RoleTeacher:  "Docentes",
	RoleStudent:  "Estudiantes",
	RoleGuardian: "Acudientes",
}

// legacy identifiers used by the original dashboards
var roleAliases = map[string]Role{
	"teacher":     RoleTeacher,
	"docentes":    RoleTeacher,
	"student":     RoleStudent,
	"estudiantes": RoleStudent,
	"guardian":    RoleGuardian,
	"acudientes":  RoleGuardian,
}

// Table returns the submission table for the role. Unknown roles yield "".
func (r Role) Table() string {
	return roleTables[r]
}

// Label is the Spanish plural used in reports.
func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return string(r)
}

func (r Role) Valid() bool {
	_, ok := roleTables[r]
	return ok
}

// ParseRole accepts the English identifiers and the Spanish table prefixes.
func ParseRole(s string) (Role, error) {
	r, ok := roleAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// UnmarshalText lets roles be used as YAML/JSON map keys with either spelling.
func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

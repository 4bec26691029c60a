package constants

import (
	"fmt"
	"strings"
)

// SectionKey identifies a thematic section. It doubles as the JSONB column name
// in every submission table, so only keys listed here may reach SQL.
type SectionKey string

const (
	SectionCommunication SectionKey = "comunicacion"
	SectionPedagogy      SectionKey = "practicas_pedagogicas"
	SectionClimate       SectionKey = "convivencia"
)

var AllSections = []SectionKey{
	SectionCommunication,
	SectionPedagogy,
	SectionClimate,
}

func (s SectionKey) Valid() bool {
	for _, k := range AllSections {
		if k == s {
			return true
		}
	}
	return false
}

// Column returns the JSONB column for the section, or "" when the key is not whitelisted.
func (s SectionKey) Column() string {
	if !s.Valid() {
		return ""
	}
	return string(s)
}

func ParseSection(s string) (SectionKey, error) {
	k := SectionKey(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown section %q", s)
	}
	return k, nil
}

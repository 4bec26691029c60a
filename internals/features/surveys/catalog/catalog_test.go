package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmo_stats_backend/internals/constants"
)

func TestDefaultCatalogShape(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	secs := c.Sections()
	require.Len(t, secs, 3)

	assert.Equal(t, constants.SectionCommunication, secs[0].Key)
	assert.Equal(t, constants.SectionPedagogy, secs[1].Key)
	assert.Equal(t, constants.SectionClimate, secs[2].Key)

	assert.Len(t, secs[0].Items, 6)
	assert.Len(t, secs[1].Items, 8)
	assert.Len(t, secs[2].Items, 6)
	assert.Equal(t, 60, c.Cells())
}

func TestDefaultCatalogNotApplicableQuestions(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	var na int
	for _, s := range c.Sections() {
		for _, it := range s.Items {
			for _, r := range constants.AllRoles {
				if it.Question(r) == constants.NotApplicable {
					na++
					assert.Equal(t, constants.RoleGuardian, r, "only guardians skip questions in the default catalog")
				}
			}
		}
	}
	assert.Equal(t, 3, na)
}

func TestSectionsReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	secs := c.Sections()
	secs[0].Title = "changed"
	secs[0].Items[0].Questions[constants.RoleTeacher] = "changed"

	again := c.Sections()
	assert.Equal(t, "COMUNICACIÓN", again[0].Title)
	assert.NotEqual(t, "changed", again[0].Items[0].Questions[constants.RoleTeacher])
}

func TestParseAcceptsSpanishRoleKeys(t *testing.T) {
	c, err := Parse([]byte(`
sections:
  - key: convivencia
    title: CONVIVENCIA
    items:
      - display: Item
        questions:
          docentes: P1
          estudiantes: P2
`))
	require.NoError(t, err)

	sec, ok := c.Section(constants.SectionClimate)
	require.True(t, ok)
	assert.Equal(t, "P1", sec.Items[0].Question(constants.RoleTeacher))
	assert.Equal(t, "P2", sec.Items[0].Question(constants.RoleStudent))
	assert.Equal(t, constants.NotApplicable, sec.Items[0].Question(constants.RoleGuardian))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "sections: [:"},
		{"empty", "sections: []"},
		{"unknown section", "sections:\n  - key: deportes\n    title: X\n    items:\n      - display: a\n        questions: {teacher: q}\n"},
		{"unknown role", "sections:\n  - key: convivencia\n    title: X\n    items:\n      - display: a\n        questions: {rector: q}\n"},
		{"missing title", "sections:\n  - key: convivencia\n    items:\n      - display: a\n        questions: {teacher: q}\n"},
		{"no items", "sections:\n  - key: convivencia\n    title: X\n"},
		{"duplicate", "sections:\n  - key: convivencia\n    title: X\n    items:\n      - display: a\n        questions: {teacher: q}\n  - key: convivencia\n    title: Y\n    items:\n      - display: a\n        questions: {teacher: q}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, defaultCatalog, 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, c.Cells())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

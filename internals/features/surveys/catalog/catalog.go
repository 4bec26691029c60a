// Package catalog holds the survey question catalog: sections, their items and
// the question text each respondent group was asked. A Catalog never changes
// after it is built.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"cosmo_stats_backend/internals/constants"
)

type Item struct {
	DisplayText string                    `json:"display_text" validate:"required"`
	Questions   map[constants.Role]string `json:"questions" validate:"required"`
}

// Question returns the text asked of role, or "NA" when the role has none.
func (it Item) Question(role constants.Role) string {
	q, ok := it.Questions[role]
	if !ok || strings.TrimSpace(q) == "" {
		return constants.NotApplicable
	}
	return q
}

type Section struct {
	Key   constants.SectionKey `json:"key" validate:"required"`
	Title string               `json:"title" validate:"required"`
	Items []Item               `json:"items" validate:"required,min=1,dive"`
}

type Catalog struct {
	sections []Section
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// New validates and freezes sections into a Catalog. The input is copied.
func New(sections []Section) (*Catalog, error) {
	if len(sections) == 0 {
		return nil, errors.New("catalog: no sections")
	}
	seen := make(map[constants.SectionKey]bool, len(sections))
	for i, s := range sections {
		if err := validate.Struct(s); err != nil {
			return nil, fmt.Errorf("catalog: section %d: %w", i, err)
		}
		if !s.Key.Valid() {
			return nil, fmt.Errorf("catalog: section %d: unknown key %q", i, s.Key)
		}
		if seen[s.Key] {
			return nil, fmt.Errorf("catalog: duplicate section %q", s.Key)
		}
		seen[s.Key] = true
		for j, it := range s.Items {
			for role := range it.Questions {
				if !role.Valid() {
					return nil, fmt.Errorf("catalog: %s item %d: unknown role %q", s.Key, j, role)
				}
			}
		}
	}
	return &Catalog{sections: cloneSections(sections)}, nil
}

// Sections returns a copy of the sections in catalog order.
func (c *Catalog) Sections() []Section {
	return cloneSections(c.sections)
}

func (c *Catalog) Section(key constants.SectionKey) (Section, bool) {
	for _, s := range c.sections {
		if s.Key == key {
			return cloneSections([]Section{s})[0], true
		}
	}
	return Section{}, false
}

// Cells is the number of (item, role) pairs in the catalog.
func (c *Catalog) Cells() int {
	n := 0
	for _, s := range c.sections {
		n += len(s.Items) * len(constants.AllRoles)
	}
	return n
}

func cloneSections(in []Section) []Section {
	out := make([]Section, len(in))
	for i, s := range in {
		items := make([]Item, len(s.Items))
		for j, it := range s.Items {
			qs := make(map[constants.Role]string, len(it.Questions))
			for r, q := range it.Questions {
				qs[r] = q
			}
			items[j] = Item{DisplayText: it.DisplayText, Questions: qs}
		}
		out[i] = Section{Key: s.Key, Title: s.Title, Items: items}
	}
	return out
}

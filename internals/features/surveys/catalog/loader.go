package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cosmo_stats_backend/internals/constants"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type fileItem struct {
	Display   string            `yaml:"display"`
	Questions map[string]string `yaml:"questions"`
}

type fileSection struct {
	Key   string     `yaml:"key"`
	Title string     `yaml:"title"`
	Items []fileItem `yaml:"items"`
}

type fileCatalog struct {
	Sections []fileSection `yaml:"sections"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog file; an empty path means the embedded default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(b)
}

func Parse(b []byte) (*Catalog, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	sections := make([]Section, 0, len(fc.Sections))
	for _, fs := range fc.Sections {
		key, err := constants.ParseSection(fs.Key)
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		sec := Section{Key: key, Title: fs.Title, Items: make([]Item, 0, len(fs.Items))}
		for _, fi := range fs.Items {
			qs := make(map[constants.Role]string, len(fi.Questions))
			for rawRole, q := range fi.Questions {
				role, err := constants.ParseRole(rawRole)
				if err != nil {
					return nil, fmt.Errorf("catalog: section %s: %w", key, err)
				}
				qs[role] = q
			}
			sec.Items = append(sec.Items, Item{DisplayText: fi.Display, Questions: qs})
		}
		sections = append(sections, sec)
	}
	return New(sections)
}

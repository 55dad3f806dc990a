package interpret

import (
	"fmt"
	"os"
	"strings"

	_ "embed"

	"gopkg.in/yaml.v3"

	"ledgerbot/internal/core"
)

//go:embed categories.yml
var defaultCategoriesYAML []byte

// categoryConfig is the YAML shape of the keyword table.
type categoryConfig struct {
	Categories []categoryEntry `yaml:"categories"`
}

type categoryEntry struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Classifier maps message text to a spending category via an ordered
// keyword table. The first entry whose keyword appears in the text wins;
// insertion order in the YAML file is the tie-break.
type Classifier struct {
	entries []categoryEntry
}

// NewClassifier builds a classifier from the embedded default table.
func NewClassifier() *Classifier {
	c, err := newClassifierFromYAML(defaultCategoriesYAML)
	if err != nil {
		// The embedded table is validated by tests; a parse failure here
		// is a build defect.
		panic(fmt.Sprintf("embedded categories.yml: %v", err))
	}
	return c
}

// NewClassifierFromFile builds a classifier from an external YAML file so
// the vocabulary can grow without a code change.
func NewClassifierFromFile(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read categories file: %w", err)
	}
	c, err := newClassifierFromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parse categories file %s: %w", path, err)
	}
	return c, nil
}

func newClassifierFromYAML(data []byte) (*Classifier, error) {
	var cfg categoryConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal categories: %w", err)
	}
	if len(cfg.Categories) == 0 {
		return nil, fmt.Errorf("categories table is empty")
	}
	for _, e := range cfg.Categories {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("category with empty name")
		}
		if len(e.Keywords) == 0 {
			return nil, fmt.Errorf("category %q has no keywords", e.Name)
		}
	}
	return &Classifier{entries: cfg.Categories}, nil
}

// Classify returns the first category whose keyword set intersects the
// text, or DefaultCategory when nothing matches.
func (c *Classifier) Classify(text string) string {
	lower := strings.ToLower(text)
	for _, entry := range c.entries {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return entry.Name
			}
		}
	}
	return core.DefaultCategory
}

// Categories returns the category names in table order.
func (c *Classifier) Categories() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

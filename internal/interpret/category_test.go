package interpret

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClassifierDefaults(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		text string
		want string
	}{
		{"spent 50 on market", "market"},
		{"paid the electricity bill", "bills"},
		{"bought a shirt", "clothing"},
		{"paid rent", "housing"},
		{"taxi to the airport", "transport"},
		{"xyz", "other"},
		{"", "other"},
		{"SUPERMARKET run", "market"},
	}

	for _, tt := range tests {
		if got := c.Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestClassifierOrderIsTieBreak(t *testing.T) {
	c := NewClassifier()
	// "market" appears before "food" in the table, so a message matching
	// both resolves to market.
	if got := c.Classify("lunch from the market"); got != "market" {
		t.Errorf("Classify overlapping keywords = %q, want %q", got, "market")
	}
}

func TestNewClassifierFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yml")
	content := `categories:
  - name: pets
    keywords: [vet, kibble]
  - name: garden
    keywords: [seeds]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := NewClassifierFromFile(path)
	if err != nil {
		t.Fatalf("NewClassifierFromFile: %v", err)
	}
	if got := c.Classify("took the dog to the vet"); got != "pets" {
		t.Errorf("Classify with custom table = %q, want %q", got, "pets")
	}
	if got := c.Categories(); len(got) != 2 || got[0] != "pets" || got[1] != "garden" {
		t.Errorf("Categories() = %v, want [pets garden]", got)
	}
}

func TestNewClassifierFromFileErrors(t *testing.T) {
	if _, err := NewClassifierFromFile(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "empty.yml")
	if err := os.WriteFile(path, []byte("categories: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewClassifierFromFile(path); err == nil {
		t.Error("expected error for empty table")
	}
}

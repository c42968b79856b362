package profile_test

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/sreecharan/portfolio-agent/profile"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestLoadReadsProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	doc := `{
		"name": "Sree Charan",
		"title": "Full Stack Developer",
		"technologies": ["Go", "React"],
		"contact": {"email": "sree@example.com", "phone": "123", "location": "Hyderabad"},
		"projects": [{"name": "Study Buddy", "category": "Web"}]
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	store := profile.Load(path, discardLogger())

	if store.UsingDefault() {
		t.Fatal("expected on-disk profile, got default")
	}

	p := store.Profile()
	if p.Name != "Sree Charan" {
		t.Fatalf("unexpected name: %q", p.Name)
	}
	if len(p.Projects) != 1 || p.Projects[0].Name != "Study Buddy" {
		t.Fatalf("unexpected projects: %+v", p.Projects)
	}
}

func TestLoadFallsBackOnMissingFile(t *testing.T) {
	store := profile.Load(filepath.Join(t.TempDir(), "missing.json"), discardLogger())

	if !store.UsingDefault() {
		t.Fatal("expected default profile for missing file")
	}
	if store.Profile().Name == "" {
		t.Fatal("default profile must still carry a name")
	}
	if len(store.Profile().Projects) != 0 {
		t.Fatalf("default profile must have zero projects, got %d", len(store.Profile().Projects))
	}
}

func TestLoadFallsBackOnMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := profile.Load(path, discardLogger())

	if !store.UsingDefault() {
		t.Fatal("expected default profile for malformed JSON")
	}
}

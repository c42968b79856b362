package profile

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// Store holds the profile document for the process lifetime. The document
// never changes after Load, so readers need no locking.
type Store struct {
	profile  Profile
	fallback bool
}

// Load reads the profile document from disk. A missing file or malformed
// JSON is logged and replaced by the built-in default profile; the process
// keeps running either way.
func Load(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}

	p, err := readProfile(path)
	if err != nil {
		logger.Printf("load profile from %s: %v (using default profile)", path, err)
		return &Store{profile: Default(), fallback: true}
	}

	return &Store{profile: p}
}

func readProfile(path string) (Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile file: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile json: %w", err)
	}
	return p, nil
}

func (s *Store) Profile() Profile { return s.profile }

// UsingDefault reports whether the built-in default profile replaced the
// on-disk document.
func (s *Store) UsingDefault() bool { return s.fallback }

// Default is the in-memory profile used when the data file cannot be read.
func Default() Profile {
	return Profile{
		Name:  "Sree Charan",
		Title: "Software Engineer",
		Contact: Contact{
			Email:    "sreecharan@example.com",
			Location: "India",
		},
		Skills: Skills{},
	}
}

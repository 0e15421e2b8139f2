// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wordlist

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/namelists/internal/corpus"
)

// Manifest is the on-disk description of which wordlists to build. The
// operator can keep one next to the config file instead of editing code.
type Manifest struct {
	// OutputDir overrides the configured output directory when non-empty.
	OutputDir string `yaml:"output_dir,omitempty"`

	Lists []ListSpec `yaml:"lists"`
}

// ListSpec names one output file and the synset categories merged into it.
type ListSpec struct {
	File          string   `yaml:"file"`
	PartsOfSpeech []string `yaml:"parts_of_speech"`
}

// POS resolves the category names to their PartOfSpeech tags.
func (l ListSpec) POS() ([]corpus.PartOfSpeech, error) {
	if len(l.PartsOfSpeech) == 0 {
		return nil, fmt.Errorf("list %q selects no parts of speech", l.File)
	}
	pos := make([]corpus.PartOfSpeech, 0, len(l.PartsOfSpeech))
	for _, name := range l.PartsOfSpeech {
		p, err := corpus.ParsePOS(name)
		if err != nil {
			return nil, fmt.Errorf("list %q: %w", l.File, err)
		}
		pos = append(pos, p)
	}
	return pos, nil
}

// DefaultManifest builds adjectives.txt (regular plus satellite
// adjectives) and nouns.txt.
func DefaultManifest() Manifest {
	return Manifest{
		Lists: []ListSpec{
			{File: "adjectives.txt", PartsOfSpeech: []string{"adjective", "adjective-satellite"}},
			{File: "nouns.txt", PartsOfSpeech: []string{"noun"}},
		},
	}
}

// ReadManifest loads and validates a manifest file.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest: %w", err)
	}
	if len(m.Lists) == 0 {
		return Manifest{}, fmt.Errorf("manifest %s defines no lists", path)
	}
	for _, l := range m.Lists {
		if l.File == "" {
			return Manifest{}, fmt.Errorf("manifest %s: list with empty file name", path)
		}
		if _, err := l.POS(); err != nil {
			return Manifest{}, fmt.Errorf("manifest %s: %w", path, err)
		}
	}
	return m, nil
}

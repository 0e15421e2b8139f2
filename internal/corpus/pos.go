// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import "fmt"

// PartOfSpeech identifies a WordNet synset category by its ss_type tag.
type PartOfSpeech string

const (
	// Noun covers synsets from data.noun.
	Noun PartOfSpeech = "n"

	// Adjective covers head adjective synsets from data.adj.
	Adjective PartOfSpeech = "a"

	// AdjectiveSatellite covers satellite adjective synsets, which share
	// data.adj with head adjectives but carry the "s" tag.
	AdjectiveSatellite PartOfSpeech = "s"
)

// String returns the human-readable category name.
func (p PartOfSpeech) String() string {
	switch p {
	case Noun:
		return "noun"
	case Adjective:
		return "adjective"
	case AdjectiveSatellite:
		return "adjective-satellite"
	}
	return string(p)
}

// ParsePOS converts a category name (as used in list manifests) to its
// PartOfSpeech tag. Both the long names and the raw ss_type tags are accepted.
func ParsePOS(name string) (PartOfSpeech, error) {
	switch name {
	case "noun", "n":
		return Noun, nil
	case "adjective", "adj", "a":
		return Adjective, nil
	case "adjective-satellite", "satellite", "s":
		return AdjectiveSatellite, nil
	}
	return "", fmt.Errorf("unknown part of speech %q", name)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wordlist builds naming-dictionary wordlists from the corpus:
// collect lemmas by part of speech, normalize and deduplicate them, and
// write one newline-delimited file per list.
package wordlist

import (
	"context"
	"regexp"
	"strings"

	"github.com/pdiddy/namelists/internal/corpus"
	"github.com/pdiddy/namelists/pkg/types"
)

// Source yields the lemma strings for one part of speech in corpus
// traversal order. *corpus.Corpus satisfies it.
type Source interface {
	Lemmas(ctx context.Context, pos corpus.PartOfSpeech) ([]string, error)
}

// wordPattern accepts lowercase Latin letters only. Anything with spaces,
// digits, or punctuation fails.
var wordPattern = regexp.MustCompile(`^[a-z]+$`)

// Collect traverses all lemmas for the given parts of speech, replaces
// underscores with spaces, and collapses duplicates, keeping first-seen
// order. Several categories may be merged into one candidate list (regular
// and satellite adjectives).
func Collect(ctx context.Context, src Source, pos ...corpus.PartOfSpeech) ([]string, error) {
	seen := make(map[string]struct{})
	var candidates []string
	for _, p := range pos {
		lemmas, err := src.Lemmas(ctx, p)
		if err != nil {
			return nil, err
		}
		for _, lemma := range lemmas {
			word := strings.ReplaceAll(lemma, "_", " ")
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			candidates = append(candidates, word)
		}
	}
	return candidates, nil
}

// Normalize lowercases each candidate and keeps it only if it is letters
// only and within the configured length bounds, dropping case-insensitive
// duplicates. First occurrence wins; output order is first-seen input
// order.
//
// Multi-word candidates carry the spaces Collect substituted for
// underscores and therefore fail the letters-only pattern. They are
// dropped silently; that net effect is relied on downstream and must not
// change.
func Normalize(candidates []string, cfg types.WordlistConfig) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		w := strings.ToLower(c)
		if !wordPattern.MatchString(w) {
			continue
		}
		if len(w) < cfg.MinLength || len(w) > cfg.MaxLength {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

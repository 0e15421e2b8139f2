// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Synset is one lemma group read from a WordNet data file.
type Synset struct {
	// Offset is the byte offset that identifies the synset within its
	// data file.
	Offset int64

	// POS is the synset category from the ss_type field (n, a, or s).
	POS PartOfSpeech

	// Lemmas holds the member word forms, with syntactic markers such as
	// "(ip)" stripped. Multi-word lemmas keep their underscores.
	Lemmas []string
}

// ParseData reads a WordNet 3.x data file (data.noun, data.adj) and calls
// fn once per synset. License-header lines, which begin with two spaces,
// are skipped. Verb and adverb synsets are skipped if present.
//
// Each data line has the form
//
//	synset_offset lex_filenum ss_type w_cnt word lex_id [word lex_id ...] p_cnt ...
//
// where w_cnt is a two-digit hexadecimal count.
func ParseData(r io.Reader, fn func(Synset) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(line, "  ") || line == "" {
			continue
		}

		syn, err := parseSynsetLine(line)
		if err != nil {
			return fmt.Errorf("data line %d: %w", lineNo, err)
		}
		if syn.POS != Noun && syn.POS != Adjective && syn.POS != AdjectiveSatellite {
			continue
		}
		if err := fn(syn); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading data file: %w", err)
	}
	return nil
}

func parseSynsetLine(line string) (Synset, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Synset{}, fmt.Errorf("malformed synset line: %q", line)
	}

	offset, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Synset{}, fmt.Errorf("invalid synset offset %q: %w", fields[0], err)
	}

	wcnt, err := strconv.ParseInt(fields[3], 16, 32)
	if err != nil {
		return Synset{}, fmt.Errorf("invalid word count %q: %w", fields[3], err)
	}
	if len(fields) < 4+2*int(wcnt) {
		return Synset{}, fmt.Errorf("truncated synset line: %q", line)
	}

	syn := Synset{
		Offset: offset,
		POS:    PartOfSpeech(fields[2]),
		Lemmas: make([]string, 0, wcnt),
	}
	for i := 0; i < int(wcnt); i++ {
		syn.Lemmas = append(syn.Lemmas, stripMarker(fields[4+2*i]))
	}
	return syn, nil
}

// stripMarker removes the trailing adjective syntax marker, e.g.
// "galore(ip)" becomes "galore". Markers only occur on adjective lemmas.
func stripMarker(word string) string {
	if i := strings.IndexByte(word, '('); i >= 0 {
		return word[:i]
	}
	return word
}

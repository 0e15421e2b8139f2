// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wordlist

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/namelists/pkg/types"
)

// WriteList writes words as newline-joined UTF-8 to dir/file, creating
// dir and any missing parents. An existing file is overwritten. Returns
// the written path.
func WriteList(dir, file string, words []string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, file)
	if err := os.WriteFile(path, []byte(strings.Join(words, "\n")), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Build runs the pipeline for every list in the manifest: collect the
// selected categories, normalize, and write the file, printing one summary
// line per list. Lists are processed in manifest order; a failure leaves
// earlier files in place.
func Build(ctx context.Context, src Source, m Manifest, cfg types.WordlistConfig, w io.Writer) error {
	outDir := cfg.OutputDir
	if m.OutputDir != "" {
		outDir = m.OutputDir
	}

	for _, list := range m.Lists {
		pos, err := list.POS()
		if err != nil {
			return err
		}

		candidates, err := Collect(ctx, src, pos...)
		if err != nil {
			return fmt.Errorf("collecting %s: %w", list.File, err)
		}
		words := Normalize(candidates, cfg)

		path, err := WriteList(outDir, list.File, words)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(list.File, filepath.Ext(list.File))
		fmt.Fprintf(w, "%s: %d words -> %s\n", name, len(words), path)
	}
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/pdiddy/namelists/internal/httputil"
	"github.com/pdiddy/namelists/pkg/types"
)

// dataFiles lists the dict package members loaded into the index. Verb and
// adverb data files ship in the same tarball but are not needed.
var dataFiles = map[string]bool{
	"data.adj":  true,
	"data.noun": true,
}

const (
	metaSourceURL   = "source_url"
	metaInstalledAt = "installed_at"
)

// fetchAndIngest downloads the WordNet dict tarball to dataDir, loads the
// noun and adjective data files into the store, and removes the tarball.
// Progress lines go to w.
func fetchAndIngest(ctx context.Context, client *http.Client, store *Store, cfg types.CorpusConfig, w io.Writer) error {
	archivePath := filepath.Join(cfg.DataDir, "wn.dict.tar.gz")

	fmt.Fprintf(w, "downloading: %s\n", cfg.SourceURL)
	if err := httputil.Download(ctx, client, cfg.SourceURL, archivePath, cfg.UserAgent); err != nil {
		return fmt.Errorf("downloading corpus: %w", err)
	}
	defer os.Remove(archivePath)

	f, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("opening corpus archive: %w", err)
	}
	defer f.Close()

	if err := store.Reset(ctx); err != nil {
		return err
	}

	loaded, err := ingestArchive(ctx, f, store, w)
	if err != nil {
		return err
	}
	if loaded < len(dataFiles) {
		return fmt.Errorf("corpus archive missing data files (found %d of %d)", loaded, len(dataFiles))
	}

	if err := store.SetMeta(ctx, metaSourceURL, cfg.SourceURL); err != nil {
		return err
	}
	return store.SetMeta(ctx, metaInstalledAt, time.Now().UTC().Format(time.RFC3339))
}

// ingestArchive walks the gzipped tarball and ingests each wanted data
// file. Returns the number of data files loaded.
func ingestArchive(ctx context.Context, r io.Reader, store *Store, w io.Writer) (int, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf("reading corpus archive: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	loaded := 0
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return loaded, nil
		}
		if err != nil {
			return loaded, fmt.Errorf("reading corpus archive: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg || !dataFiles[path.Base(hdr.Name)] {
			continue
		}

		synsets, err := store.Ingest(ctx, tr)
		if err != nil {
			return loaded, fmt.Errorf("indexing %s: %w", hdr.Name, err)
		}
		fmt.Fprintf(w, "indexed: %s (%d synsets)\n", path.Base(hdr.Name), synsets)
		loaded++
	}
}

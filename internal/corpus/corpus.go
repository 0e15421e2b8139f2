// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/namelists/pkg/types"
)

// probeLemma is the trivial lookup used to decide whether the corpus is
// installed. If "dog" is not a known noun, the index is absent or empty.
const probeLemma = "dog"

// Corpus is a handle on the local WordNet index, able to install it on
// first use.
type Corpus struct {
	store  *Store
	client *http.Client
	cfg    types.CorpusConfig
}

// Open opens the corpus index under cfg.DataDir, creating an empty index
// if none exists. It does not download anything; see Ensure.
func Open(cfg types.CorpusConfig) (*Corpus, error) {
	store, err := OpenStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	return &Corpus{
		store:  store,
		client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
	}, nil
}

// Close releases the underlying index.
func (c *Corpus) Close() error {
	return c.store.Close()
}

// Installed probes the index for a known lemma and reports whether the
// corpus data is present.
func (c *Corpus) Installed(ctx context.Context) (bool, error) {
	return c.store.HasLemma(ctx, probeLemma, Noun)
}

// Ensure makes the corpus available: if the probe fails, it downloads and
// indexes the WordNet data. A failed install is fatal to the caller; there
// is no fallback corpus.
func (c *Corpus) Ensure(ctx context.Context, w io.Writer) error {
	ok, err := c.Installed(ctx)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	fmt.Fprintln(w, "corpus not installed, fetching WordNet")
	return c.Install(ctx, w)
}

// Install downloads the WordNet dict package and rebuilds the index,
// replacing any previous contents.
func (c *Corpus) Install(ctx context.Context, w io.Writer) error {
	return fetchAndIngest(ctx, c.client, c.store, c.cfg, w)
}

// Lemmas returns every lemma indexed under pos in corpus traversal order.
func (c *Corpus) Lemmas(ctx context.Context, pos PartOfSpeech) ([]string, error) {
	return c.store.Lemmas(ctx, pos)
}

// Status describes the installed corpus.
type Status struct {
	Installed   bool
	SourceURL   string
	InstalledAt string
	Counts      map[PartOfSpeech]int
}

// Status reports whether the corpus is installed and how many lemma
// entries each category holds.
func (c *Corpus) Status(ctx context.Context) (Status, error) {
	installed, err := c.Installed(ctx)
	if err != nil {
		return Status{}, err
	}

	st := Status{
		Installed: installed,
		Counts:    make(map[PartOfSpeech]int),
	}
	if !installed {
		return st, nil
	}

	if st.SourceURL, err = c.store.Meta(ctx, metaSourceURL); err != nil {
		return Status{}, err
	}
	if st.InstalledAt, err = c.store.Meta(ctx, metaInstalledAt); err != nil {
		return Status{}, err
	}
	for _, pos := range []PartOfSpeech{Noun, Adjective, AdjectiveSatellite} {
		n, err := c.store.CountLemmas(ctx, pos)
		if err != nil {
			return Status{}, err
		}
		st.Counts[pos] = n
	}
	return st, nil
}

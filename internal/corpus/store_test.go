// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_IngestAndProbe(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	synsets, err := s.Ingest(ctx, strings.NewReader(sampleNounData))
	require.NoError(t, err)
	assert.Equal(t, 3, synsets)

	ok, err := s.HasLemma(ctx, "dog", Noun)
	require.NoError(t, err)
	assert.True(t, ok)

	// Right lemma, wrong category.
	ok, err = s.HasLemma(ctx, "dog", Adjective)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.HasLemma(ctx, "unicorn", Noun)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_LemmasPreserveFileOrder(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, err := s.Ingest(ctx, strings.NewReader(sampleNounData))
	require.NoError(t, err)

	lemmas, err := s.Lemmas(ctx, Noun)
	require.NoError(t, err)
	assert.Equal(t, []string{"dog", "cat", "true_cat", "dogs_breath"}, lemmas)
}

func TestStore_CategoriesAreSeparate(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, err := s.Ingest(ctx, strings.NewReader(sampleAdjData))
	require.NoError(t, err)

	adj, err := s.Lemmas(ctx, Adjective)
	require.NoError(t, err)
	assert.Equal(t, []string{"able", "galore"}, adj)

	sat, err := s.Lemmas(ctx, AdjectiveSatellite)
	require.NoError(t, err)
	assert.Equal(t, []string{"happy", "glad"}, sat)

	nAdj, err := s.CountLemmas(ctx, Adjective)
	require.NoError(t, err)
	assert.Equal(t, 2, nAdj)
}

func TestStore_Reset(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, err := s.Ingest(ctx, strings.NewReader(sampleNounData))
	require.NoError(t, err)
	require.NoError(t, s.SetMeta(ctx, "source_url", "http://example.test"))

	require.NoError(t, s.Reset(ctx))

	n, err := s.CountLemmas(ctx, Noun)
	require.NoError(t, err)
	assert.Zero(t, n)

	v, err := s.Meta(ctx, "source_url")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestStore_MetaRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	v, err := s.Meta(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.SetMeta(ctx, "source_url", "http://a.test"))
	require.NoError(t, s.SetMeta(ctx, "source_url", "http://b.test"))

	v, err = s.Meta(ctx, "source_url")
	require.NoError(t, err)
	assert.Equal(t, "http://b.test", v)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"

	"github.com/pdiddy/seo-filler/pkg/types"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// testStore builds a Store over a tab-separated copy of sampleRows and
// counts how many times the raw table is read.
func testStore(t *testing.T, cacheName string) (*Store, types.LexiconConfig, *int) {
	t.Helper()
	dir := t.TempDir()

	var content string
	for _, row := range sampleRows {
		for i, cell := range row {
			if i > 0 {
				content += "\t"
			}
			content += cell
		}
		content += "\n"
	}
	cfg := types.LexiconConfig{
		SourcePath:     writeFile(t, dir, "lexique.tsv", content),
		CachePath:      filepath.Join(dir, "cache", cacheName),
		SpellingColumn: 0,
		GrammarColumn:  3,
	}

	store, err := NewStore(cfg, quietLogger)
	require.NoError(t, err)

	reads := 0
	store.readTable = func(path, sheet string, enc encoding.Encoding) ([][]string, error) {
		reads++
		return ReadTable(path, sheet, enc)
	}
	return store, cfg, &reads
}

func TestStoreBuildsAndCaches(t *testing.T) {
	store, cfg, reads := testStore(t, "lexique.json")
	ctx := context.Background()

	lex, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, *reads)
	assert.Equal(t, Build(sampleRows, DefaultColumns), lex)
	assert.Equal(t, cfg.CachePath, store.CachePath())

	// A fresh store sees the cache and never reads the raw table.
	cold, err := NewStore(cfg, quietLogger)
	require.NoError(t, err)
	cold.readTable = func(string, string, encoding.Encoding) ([][]string, error) {
		t.Fatal("raw table read despite cache")
		return nil, nil
	}
	fromCache, err := cold.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, lex, fromCache)
}

func TestStoreLoadIsIdempotent(t *testing.T) {
	store, cfg, reads := testStore(t, "lexique.yaml")
	ctx := context.Background()

	first, err := store.Load(ctx)
	require.NoError(t, err)

	info, err := os.Stat(cfg.CachePath)
	require.NoError(t, err)

	// Remove every file; a second Load must not need them.
	require.NoError(t, os.Remove(cfg.SourcePath))
	require.NoError(t, os.Remove(cfg.CachePath))

	second, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, *reads)

	_, err = os.Stat(cfg.CachePath)
	assert.True(t, os.IsNotExist(err), "second Load must not rewrite the cache (was %v)", info.ModTime())
}

func TestStoreCorruptCacheRebuilds(t *testing.T) {
	store, cfg, reads := testStore(t, "lexique.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.CachePath), 0o755))
	require.NoError(t, os.WriteFile(cfg.CachePath, []byte("{truncated"), 0o644))

	lex, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, *reads)
	assert.Equal(t, []string{"chat"}, lex.Words("NOM"))

	cache, err := OpenCache(cfg.CachePath)
	require.NoError(t, err)
	repaired, err := cache.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, lex, repaired)
}

func TestStoreSQLiteCache(t *testing.T) {
	store, cfg, _ := testStore(t, "lexique.db")
	ctx := context.Background()

	lex, err := store.Load(ctx)
	require.NoError(t, err)

	cold, err := NewStore(cfg, quietLogger)
	require.NoError(t, err)
	got, err := cold.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, lex, got)
}

func TestStoreRebuildIgnoresCache(t *testing.T) {
	store, cfg, reads := testStore(t, "lexique.json")
	ctx := context.Background()

	cache, err := OpenCache(cfg.CachePath)
	require.NoError(t, err)
	require.NoError(t, cache.Save(ctx, Lexicon{"NOM": {"stale"}}))

	lex, err := store.Rebuild(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, *reads)
	assert.Equal(t, []string{"chat"}, lex.Words("NOM"))

	saved, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, lex, saved)
}

func TestStoreUnavailable(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, cfg *types.LexiconConfig)
	}{
		{
			name: "source missing and no cache",
			setup: func(t *testing.T, cfg *types.LexiconConfig) {
				require.NoError(t, os.Remove(cfg.SourcePath))
			},
		},
		{
			name: "source missing and cache corrupt",
			setup: func(t *testing.T, cfg *types.LexiconConfig) {
				require.NoError(t, os.Remove(cfg.SourcePath))
				require.NoError(t, os.MkdirAll(filepath.Dir(cfg.CachePath), 0o755))
				require.NoError(t, os.WriteFile(cfg.CachePath, []byte("garbage"), 0o644))
			},
		},
		{
			name: "source holds only a header",
			setup: func(t *testing.T, cfg *types.LexiconConfig) {
				require.NoError(t, os.WriteFile(cfg.SourcePath, []byte("ortho\tphon\tlemme\tcgram\n"), 0o644))
			},
		},
		{
			name: "no source configured",
			setup: func(t *testing.T, cfg *types.LexiconConfig) {
				cfg.SourcePath = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cfg, _ := testStore(t, "lexique.json")
			tt.setup(t, &cfg)

			store, err := NewStore(cfg, quietLogger)
			require.NoError(t, err)

			_, err = store.Load(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrLexiconUnavailable), "got %v", err)
		})
	}
}

func TestStoreCacheWriteFailureIsNotFatal(t *testing.T) {
	_, cfg, _ := testStore(t, "lexique.json")
	// A regular file where the cache directory should be makes Save fail.
	blocker := filepath.Dir(cfg.CachePath)
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	store, err := NewStore(cfg, quietLogger)
	require.NoError(t, err)

	lex, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, lex)
}

func TestNewStoreRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  types.LexiconConfig
	}{
		{"no paths", types.LexiconConfig{}},
		{"negative column", types.LexiconConfig{SourcePath: "a.tsv", SpellingColumn: -1}},
		{"unknown cache format", types.LexiconConfig{SourcePath: "a.tsv", CachePath: "cache.bin"}},
		{"unknown encoding", types.LexiconConfig{SourcePath: "a.tsv", Encoding: "ebcdic"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStore(tt.cfg, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrInvalidConfig))
		})
	}
}

func TestStoreWithoutCache(t *testing.T) {
	_, cfg, _ := testStore(t, "lexique.json")
	cfg.CachePath = ""

	store, err := NewStore(cfg, quietLogger)
	require.NoError(t, err)
	assert.Equal(t, "", store.CachePath())

	lex, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"rouge"}, lex.Words("ADJ"))
}

// latin1Table is a Lexique export saved as ISO-8859-1: "café" and "élève"
// carry single-byte accents.
const latin1Table = "ortho\tphon\tlemme\tcgram\n" +
	"caf\xe9\tkafe\tcaf\xe9\tNOM\n" +
	"\xe9l\xe8ve\telEv\t\xe9l\xe8ve\tNOM\n" +
	"court\tkuR\tcourir\tVER\n"

func TestStoreSourceEncoding(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		want     Lexicon
	}{
		{
			name:     "latin1 is decoded",
			encoding: "latin1",
			want:     Lexicon{"NOM": {"café", "élève"}, "VER": {"court"}},
		},
		{
			name:     "undecoded rows are skipped",
			encoding: "",
			want:     Lexicon{"VER": {"court"}},
		},
	}

	for _, tt := range tests {
		for _, cacheName := range []string{"lexique.json", "lexique.yaml", "lexique.db"} {
			t.Run(tt.name+"/"+cacheName, func(t *testing.T) {
				dir := t.TempDir()
				cfg := types.LexiconConfig{
					SourcePath:    writeFile(t, dir, "Lexique380.txt", latin1Table),
					CachePath:     filepath.Join(dir, cacheName),
					Encoding:      tt.encoding,
					GrammarColumn: 3,
				}
				ctx := context.Background()

				built, err := NewStore(cfg, quietLogger)
				require.NoError(t, err)
				fromSource, err := built.Load(ctx)
				require.NoError(t, err)
				assert.Equal(t, tt.want, fromSource)

				cached, err := NewStore(cfg, quietLogger)
				require.NoError(t, err)
				cached.readTable = func(string, string, encoding.Encoding) ([][]string, error) {
					t.Fatal("raw table read despite cache")
					return nil, nil
				}
				fromCache, err := cached.Load(ctx)
				require.NoError(t, err)
				assert.Equal(t, fromSource, fromCache)
			})
		}
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleLexicon = Lexicon{
	"PRO:per": {"il", "elle"},
	"VER":     {"court", "mange", "court"},
	"NOM":     {"chat", "élève"},
	"ART:ind": {"un"},
}

func TestCacheRoundTrip(t *testing.T) {
	for _, name := range []string{"lexique.json", "lexique.yaml", "lexique.yml", "lexique.db", "lexique.sqlite"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "assets", name)

			cache, err := OpenCache(path)
			require.NoError(t, err)
			assert.Equal(t, path, cache.Path())
			assert.False(t, cache.Exists())

			require.NoError(t, cache.Save(ctx, sampleLexicon))
			assert.True(t, cache.Exists())

			got, err := cache.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, sampleLexicon, got)
		})
	}
}

func TestCacheDropsEmptyTags(t *testing.T) {
	for _, name := range []string{"lexique.json", "lexique.yaml", "lexique.db"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			cache, err := OpenCache(filepath.Join(t.TempDir(), name))
			require.NoError(t, err)

			require.NoError(t, cache.Save(ctx, Lexicon{"NOM": {"chat"}, "VER": {}, "ADV": nil}))

			got, err := cache.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, Lexicon{"NOM": {"chat"}}, got)
		})
	}
}

func TestCacheRefusesInvalidUTF8(t *testing.T) {
	tests := []struct {
		name string
		lex  Lexicon
	}{
		{"word", Lexicon{"NOM": {"chat", "caf\xe9"}}},
		{"tag", Lexicon{"N\xd4M": {"chat"}}},
	}

	for _, tt := range tests {
		for _, name := range []string{"lexique.json", "lexique.yaml", "lexique.db"} {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				ctx := context.Background()
				cache, err := OpenCache(filepath.Join(t.TempDir(), name))
				require.NoError(t, err)

				err = cache.Save(ctx, tt.lex)
				require.Error(t, err)
				assert.Contains(t, err.Error(), "not valid UTF-8")
				assert.False(t, cache.Exists())
			})
		}
	}
}

func TestCacheSaveReplaces(t *testing.T) {
	for _, name := range []string{"lexique.json", "lexique.db"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			cache, err := OpenCache(filepath.Join(t.TempDir(), name))
			require.NoError(t, err)

			require.NoError(t, cache.Save(ctx, sampleLexicon))
			replacement := Lexicon{"ADV": {"vite"}}
			require.NoError(t, cache.Save(ctx, replacement))

			got, err := cache.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, replacement, got)
		})
	}
}

func TestJSONCacheFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexique.json")
	cache, err := OpenCache(path)
	require.NoError(t, err)
	require.NoError(t, cache.Save(context.Background(), Lexicon{"NOM": {"chat"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"NOM\": [\n        \"chat\"\n    ]\n}", string(data))
}

func TestCacheLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"corrupt json", "lexique.json", "{not json"},
		{"empty json object", "lexique.json", "{}"},
		{"corrupt yaml", "lexique.yaml", "NOM: [chat\n"},
		{"not a database", "lexique.db", "plain text, not sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			cache, err := OpenCache(path)
			require.NoError(t, err)
			assert.True(t, cache.Exists())

			_, err = cache.Load(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestOpenCacheUnsupported(t *testing.T) {
	_, err := OpenCache("assets/lexique.gob")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unsupported"))
}

func TestCacheExistsIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexique.json")
	require.NoError(t, os.Mkdir(path, 0o755))

	cache, err := OpenCache(path)
	require.NoError(t, err)
	assert.False(t, cache.Exists())
}

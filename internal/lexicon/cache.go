// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Cache persists a built Lexicon so later runs skip the raw table.
// The cache is a derived artifact: losing or corrupting it only costs a
// rebuild.
type Cache interface {
	// Path returns the cache location.
	Path() string

	// Exists reports whether a cache file is present.
	Exists() bool

	// Load reads the cached lexicon.
	Load(ctx context.Context) (Lexicon, error)

	// Save replaces the cache with lex. Empty tags are not stored, and a
	// lexicon holding text that is not valid UTF-8 is refused.
	Save(ctx context.Context, lex Lexicon) error
}

// OpenCache returns the cache codec for path, chosen by extension:
// .json, .yaml/.yml or .db/.sqlite/.sqlite3.
func OpenCache(path string) (Cache, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return &fileCache{path: path, marshal: marshalJSON, unmarshal: json.Unmarshal}, nil
	case ".yaml", ".yml":
		return &fileCache{path: path, marshal: yaml.Marshal, unmarshal: yaml.Unmarshal}, nil
	case ".db", ".sqlite", ".sqlite3":
		return &sqliteCache{path: path}, nil
	default:
		return nil, fmt.Errorf("unsupported lexicon cache format %q", ext)
	}
}

func marshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "    ")
}

// fileCache stores the lexicon as a single serialized document.
type fileCache struct {
	path      string
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

func (c *fileCache) Path() string { return c.path }

func (c *fileCache) Exists() bool {
	info, err := os.Stat(c.path)
	return err == nil && !info.IsDir()
}

func (c *fileCache) Load(_ context.Context) (Lexicon, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon cache: %w", err)
	}
	var lex Lexicon
	if err := c.unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("parsing lexicon cache %s: %w", filepath.Base(c.path), err)
	}
	if len(lex) == 0 {
		return nil, fmt.Errorf("lexicon cache %s is empty", filepath.Base(c.path))
	}
	return lex, nil
}

// Save writes to a temporary sibling and renames it over the cache, so a
// reader never observes a half-written file.
func (c *fileCache) Save(_ context.Context, lex Lexicon) error {
	lex, err := normalized(lex)
	if err != nil {
		return fmt.Errorf("saving lexicon cache: %w", err)
	}
	data, err := c.marshal(lex)
	if err != nil {
		return fmt.Errorf("marshaling lexicon: %w", err)
	}
	return writeAtomic(c.path, data)
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp cache file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing lexicon cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing lexicon cache: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("setting cache permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing lexicon cache: %w", err)
	}
	return nil
}

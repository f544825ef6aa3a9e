// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/text/encoding"

	"github.com/pdiddy/seo-filler/pkg/types"
)

// Store resolves the lexicon for a process: from memory after the first
// call, else from the cache, else by building it from the raw table and
// caching the result.
//
// Store does not lock the cache. Two processes building at the same time
// both write a complete, equivalent file; the second rename wins and the
// only cost is the duplicated build.
type Store struct {
	source   string
	sheet    string
	encoding encoding.Encoding
	columns  Columns
	cache    Cache
	logger   *slog.Logger

	// readTable is swapped in tests to count or fail raw reads.
	readTable func(path, sheet string, enc encoding.Encoding) ([][]string, error)

	loaded Lexicon
}

// NewStore creates a Store from cfg. logger may be nil.
func NewStore(cfg types.LexiconConfig, logger *slog.Logger) (*Store, error) {
	if cfg.SourcePath == "" && cfg.CachePath == "" {
		return nil, fmt.Errorf("%w: lexicon source and cache paths are both empty", types.ErrInvalidConfig)
	}
	if cfg.SpellingColumn < 0 || cfg.GrammarColumn < 0 {
		return nil, fmt.Errorf("%w: lexicon columns must be >= 0", types.ErrInvalidConfig)
	}
	enc, err := SourceEncoding(cfg.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidConfig, err)
	}

	var cache Cache
	if cfg.CachePath != "" {
		c, err := OpenCache(cfg.CachePath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrInvalidConfig, err)
		}
		cache = c
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		source:    cfg.SourcePath,
		sheet:     cfg.Sheet,
		encoding:  enc,
		columns:   Columns{Spelling: cfg.SpellingColumn, Grammar: cfg.GrammarColumn},
		cache:     cache,
		logger:    logger,
		readTable: ReadTable,
	}, nil
}

// Load returns the lexicon. The first successful call pins the result;
// later calls return it without touching the filesystem.
//
// A cache that exists but cannot be read is treated like a missing one:
// the lexicon is rebuilt from the raw table and the cache rewritten.
func (s *Store) Load(ctx context.Context) (Lexicon, error) {
	if s.loaded != nil {
		return s.loaded, nil
	}

	if s.cache != nil && s.cache.Exists() {
		lex, err := s.cache.Load(ctx)
		if err == nil {
			s.logger.Debug("lexicon: loaded from cache",
				"path", s.cache.Path(), "tags", len(lex), "words", lex.Size())
			s.loaded = lex
			return lex, nil
		}
		s.logger.Warn("lexicon: cache unreadable, rebuilding", "path", s.cache.Path(), "error", err)
	}

	return s.Rebuild(ctx)
}

// Rebuild parses the raw table regardless of the cache state, saves the
// result to the cache and pins it as the loaded lexicon. A failed cache
// write is logged and does not fail the call.
func (s *Store) Rebuild(ctx context.Context) (Lexicon, error) {
	if s.source == "" {
		return nil, fmt.Errorf("%w: no usable cache and no source configured", types.ErrLexiconUnavailable)
	}

	s.logger.Info("lexicon: building from source, this can take a while the first time", "path", s.source)
	rows, err := s.readTable(s.source, s.sheet, s.encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", types.ErrLexiconUnavailable, s.source, err)
	}

	lex := Build(rows, s.columns)
	if len(lex) == 0 {
		return nil, fmt.Errorf("%w: %s holds no tagged words", types.ErrLexiconUnavailable, s.source)
	}
	s.logger.Info("lexicon: built", "rows", len(rows), "tags", len(lex), "words", lex.Size())
	if skipped := len(rows) - 1 - lex.Size(); skipped > 0 {
		s.logger.Debug("lexicon: rows skipped", "count", skipped)
	}

	if s.cache != nil {
		if err := s.cache.Save(ctx, lex); err != nil {
			s.logger.Warn("lexicon: cache write failed", "path", s.cache.Path(), "error", err)
		} else {
			s.logger.Debug("lexicon: cache written", "path", s.cache.Path())
		}
	}

	s.loaded = lex
	return lex, nil
}

// CachePath returns the configured cache location, or "" when caching is
// disabled.
func (s *Store) CachePath() string {
	if s.cache == nil {
		return ""
	}
	return s.cache.Path()
}

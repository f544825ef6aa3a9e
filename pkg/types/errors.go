package types

import "errors"

var (
	// ErrLexiconUnavailable is returned when neither the lexicon cache nor
	// the raw lexicon source can be read.
	ErrLexiconUnavailable = errors.New("seo-filler: lexicon unavailable")

	// ErrUnknownTag is returned when a sentence pattern references a
	// grammar tag that has no words in the lexicon.
	ErrUnknownTag = errors.New("seo-filler: unknown grammar tag")

	// ErrInvalidConfig is returned for invalid configuration values.
	ErrInvalidConfig = errors.New("seo-filler: invalid configuration")
)

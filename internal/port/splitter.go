package port

import "lexfreq/internal/domain"

type Splitter interface {
	// Split tokenizes text into delimiter-terminated sentences.
	Split(text string) domain.Corpus

	// Fold normalizes a word the way Split normalizes tokens, so
	// user-supplied target words compare against corpus tokens.
	Fold(word string) string
}

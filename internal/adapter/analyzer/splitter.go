package analyzer

import (
	"strings"
	"unicode"

	"lexfreq/internal/domain"
)

// Splitter tokenizes text into delimiter-terminated sentences.
type Splitter struct {
	delimiters map[string]struct{}
	foldCase   bool
}

// NewSplitter creates a Splitter. An empty delimiter list falls back
// to DefaultDelimiters.
func NewSplitter(delimiters []string, foldCase bool) *Splitter {
	if len(delimiters) == 0 {
		delimiters = DefaultDelimiters()
	}
	set := make(map[string]struct{}, len(delimiters))
	for _, d := range delimiters {
		if foldCase {
			d = strings.ToLower(d)
		}
		set[d] = struct{}{}
	}
	return &Splitter{
		delimiters: set,
		foldCase:   foldCase,
	}
}

// DefaultDelimiters returns the sentence delimiters used when none
// are configured.
func DefaultDelimiters() []string {
	return []string{".", "?", "!", ";"}
}

// FoldCase reports whether tokens are lowercase-folded.
func (s *Splitter) FoldCase() bool {
	return s.foldCase
}

// Fold normalizes a word the way Split normalizes tokens, so callers
// can compare user-supplied target words against corpus tokens.
func (s *Splitter) Fold(word string) string {
	if s.foldCase {
		return strings.ToLower(word)
	}
	return word
}

// Split tokenizes text into sentences. A token matching a delimiter
// closes the current sentence and is kept as its final token. The
// trailing sentence is kept even when it never sees a delimiter, so
// an empty input yields a corpus of one empty sentence.
func (s *Splitter) Split(text string) domain.Corpus {
	corpus := domain.Corpus{domain.Sentence{}}

	for _, token := range scanTokens(text) {
		if s.foldCase {
			token = strings.ToLower(token)
		}
		last := len(corpus) - 1
		corpus[last] = append(corpus[last], token)
		if _, isDelim := s.delimiters[token]; isDelim {
			corpus = append(corpus, domain.Sentence{})
		}
	}

	// A text ending on a delimiter leaves an empty open sentence
	// behind; drop it unless it is the only one.
	if last := len(corpus) - 1; last > 0 && len(corpus[last]) == 0 {
		corpus = corpus[:last]
	}

	return corpus
}

// scanTokens extracts tokens left to right: maximal runs of word
// characters (letters, digits, underscore) are one token, any other
// non-whitespace rune is its own single-rune token, whitespace is
// discarded.
func scanTokens(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		switch {
		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			current.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()

	return tokens
}

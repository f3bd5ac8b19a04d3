package analyzer

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"lexfreq/internal/domain"
)

// ErrInvalidPhraseLen reports a phrase length below 1.
var ErrInvalidPhraseLen = errors.New("phrase length must be at least 1")

// Counter accumulates counts while remembering first-seen order, so
// ranked output is deterministic: descending count, insertion order
// as the tiebreak.
type Counter struct {
	counts map[string]int
	order  []string
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

func (c *Counter) Inc(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// Ranked returns the accumulated counts sorted by descending count,
// ties in first-seen order.
func (c *Counter) Ranked() []domain.Entry {
	entries := make([]domain.Entry, 0, len(c.order))
	for _, key := range c.order {
		entries = append(entries, domain.Entry{Key: key, Count: c.counts[key]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// PhraseFrequency counts every phrase of phraseLen consecutive tokens
// within single sentences. Sentences shorter than phraseLen contribute
// nothing; windows never cross sentence boundaries.
func PhraseFrequency(corpus domain.Corpus, phraseLen int) ([]domain.Entry, error) {
	if phraseLen < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPhraseLen, phraseLen)
	}

	c := NewCounter()
	for _, sentence := range corpus {
		for i := 0; i+phraseLen <= len(sentence); i++ {
			c.Inc(strings.Join(sentence[i:i+phraseLen], " "))
		}
	}
	return c.Ranked(), nil
}

// NextWordFrequency counts the token immediately following each
// occurrence of target within a sentence. A sentence-final occurrence
// has no successor and contributes nothing.
func NextWordFrequency(corpus domain.Corpus, target string) []domain.Entry {
	c := NewCounter()
	for _, sentence := range corpus {
		for i := 0; i+1 < len(sentence); i++ {
			if sentence[i] == target {
				c.Inc(sentence[i+1])
			}
		}
	}
	return c.Ranked()
}

// WordFrequencyGivenWord counts every token of every sentence that
// contains target at least once, target itself included and repeats
// counted per occurrence.
func WordFrequencyGivenWord(corpus domain.Corpus, target string) []domain.Entry {
	c := NewCounter()
	for _, sentence := range corpus {
		if !slices.Contains(sentence, target) {
			continue
		}
		for _, token := range sentence {
			c.Inc(token)
		}
	}
	return c.Ranked()
}

package analyzer

import (
	"errors"
	"reflect"
	"testing"

	"lexfreq/internal/domain"
)

func exampleCorpus() domain.Corpus {
	s := NewSplitter([]string{".", "!"}, true)
	return s.Split("The cat sat. The cat ran!")
}

func TestPhraseFrequency_Bigrams(t *testing.T) {
	entries, err := PhraseFrequency(exampleCorpus(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) == 0 {
		t.Fatal("expected entries, got none")
	}
	if entries[0].Key != "the cat" || entries[0].Count != 2 {
		t.Errorf("top entry = %+v, want {the cat 2}", entries[0])
	}
}

func TestPhraseFrequency_LenOneIsWordCount(t *testing.T) {
	corpus := exampleCorpus()

	entries, err := PhraseFrequency(corpus, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Build the flat word count directly.
	want := NewCounter()
	for _, sentence := range corpus {
		for _, token := range sentence {
			want.Inc(token)
		}
	}
	if !reflect.DeepEqual(entries, want.Ranked()) {
		t.Errorf("phrase length 1 table %v differs from flat word count %v", entries, want.Ranked())
	}
}

func TestPhraseFrequency_CountSumMatchesWindows(t *testing.T) {
	corpus := exampleCorpus()

	for n := 1; n <= 5; n++ {
		entries, err := PhraseFrequency(corpus, n)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		sum := 0
		for _, e := range entries {
			sum += e.Count
		}

		windows := 0
		for _, sentence := range corpus {
			if w := len(sentence) - n + 1; w > 0 {
				windows += w
			}
		}

		if sum != windows {
			t.Errorf("n=%d: count sum = %d, want %d windows", n, sum, windows)
		}
	}
}

func TestPhraseFrequency_ShortSentencesSkipped(t *testing.T) {
	corpus := domain.Corpus{{"a", "."}, {"b", "c", "d", "."}}

	entries, err := PhraseFrequency(corpus, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.Entry{
		{Key: "b c d", Count: 1},
		{Key: "c d .", Count: 1},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %v, want %v", entries, want)
	}
}

func TestPhraseFrequency_InvalidLength(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := PhraseFrequency(exampleCorpus(), n)
		if !errors.Is(err, ErrInvalidPhraseLen) {
			t.Errorf("n=%d: err = %v, want ErrInvalidPhraseLen", n, err)
		}
	}
}

func TestPhraseFrequency_EmptyCorpus(t *testing.T) {
	entries, err := PhraseFrequency(domain.Corpus{{}}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty table, got %v", entries)
	}
}

func TestNextWordFrequency(t *testing.T) {
	entries := NextWordFrequency(exampleCorpus(), "the")

	want := []domain.Entry{{Key: "cat", Count: 2}}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %v, want %v", entries, want)
	}
}

func TestNextWordFrequency_SentenceFinalTargetIgnored(t *testing.T) {
	// "end" closes the first sentence's token run; its next token
	// belongs to the following sentence and must not be counted.
	corpus := domain.Corpus{
		{"the", "end"},
		{"start", "again", "."},
	}

	entries := NextWordFrequency(corpus, "end")
	if len(entries) != 0 {
		t.Errorf("expected no successors for sentence-final target, got %v", entries)
	}
}

func TestNextWordFrequency_AbsentTarget(t *testing.T) {
	entries := NextWordFrequency(exampleCorpus(), "dog")
	if len(entries) != 0 {
		t.Errorf("expected empty table for absent target, got %v", entries)
	}
}

func TestNextWordFrequency_CountSum(t *testing.T) {
	corpus := domain.Corpus{
		{"a", "b", "a", "c", "a"},
		{"a", "d", "."},
	}

	entries := NextWordFrequency(corpus, "a")

	sum := 0
	for _, e := range entries {
		sum += e.Count
	}
	// Occurrences of "a" followed by a token: b, c, d. The trailing
	// "a" of the first sentence has no successor.
	if sum != 3 {
		t.Errorf("count sum = %d, want 3", sum)
	}
}

func TestWordFrequencyGivenWord(t *testing.T) {
	entries := WordFrequencyGivenWord(exampleCorpus(), "sat")

	want := []domain.Entry{
		{Key: "the", Count: 1},
		{Key: "cat", Count: 1},
		{Key: "sat", Count: 1},
		{Key: ".", Count: 1},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %v, want %v", entries, want)
	}
}

func TestWordFrequencyGivenWord_AbsentTarget(t *testing.T) {
	entries := WordFrequencyGivenWord(exampleCorpus(), "dog")
	if len(entries) != 0 {
		t.Errorf("expected empty table, got %v", entries)
	}
}

func TestWordFrequencyGivenWord_SumEqualsSentenceLength(t *testing.T) {
	corpus := domain.Corpus{
		{"one", "two", "three", "four", "."},
		{"no", "match", "here", "."},
	}

	entries := WordFrequencyGivenWord(corpus, "three")

	sum := 0
	for _, e := range entries {
		sum += e.Count
	}
	if sum != 5 {
		t.Errorf("count sum = %d, want sentence length 5", sum)
	}
}

func TestWordFrequencyGivenWord_RepeatsCountedPerOccurrence(t *testing.T) {
	corpus := domain.Corpus{{"tick", "tock", "tick", "."}}

	entries := WordFrequencyGivenWord(corpus, "tock")

	want := []domain.Entry{
		{Key: "tick", Count: 2},
		{Key: "tock", Count: 1},
		{Key: ".", Count: 1},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %v, want %v", entries, want)
	}
}

// Ties rank in first-seen order, stable across repeated calls.
func TestRanking_Deterministic(t *testing.T) {
	corpus := domain.Corpus{{"z", "m", "a", "z", "."}}

	first, err := PhraseFrequency(corpus, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.Entry{
		{Key: "z", Count: 2},
		{Key: "m", Count: 1},
		{Key: "a", Count: 1},
		{Key: ".", Count: 1},
	}
	if !reflect.DeepEqual(first, want) {
		t.Fatalf("entries = %v, want %v", first, want)
	}

	for i := 0; i < 10; i++ {
		again, err := PhraseFrequency(corpus, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(again, first) {
			t.Fatalf("run %d produced %v, earlier run produced %v", i, again, first)
		}
	}
}

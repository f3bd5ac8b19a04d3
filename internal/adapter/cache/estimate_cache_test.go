package cache

import (
	"path/filepath"
	"testing"
)

type countingEstimator struct {
	calls int
}

func (e *countingEstimator) EstimateImportantWord(line string) (string, error) {
	e.calls++
	return "word", nil
}

func (e *countingEstimator) ModelName() string { return "counting" }

func newTestCache(t *testing.T) *EstimateCache {
	t.Helper()
	c, err := NewEstimateCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestEstimateCache_PutGet(t *testing.T) {
	c := newTestCache(t)

	if _, found := c.Get("m", "a line"); found {
		t.Fatal("expected miss on empty cache")
	}

	if err := c.Put("m", "a line", "line"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	word, found := c.Get("m", "a line")
	if !found || word != "line" {
		t.Errorf("Get = (%q, %v), want (line, true)", word, found)
	}
}

func TestEstimateCache_KeyedByModel(t *testing.T) {
	c := newTestCache(t)

	if err := c.Put("model-a", "same line", "alpha"); err != nil {
		t.Fatal(err)
	}

	if _, found := c.Get("model-b", "same line"); found {
		t.Error("reply for model-a must not answer model-b")
	}
}

func TestCachedEstimator_SecondCallHitsCache(t *testing.T) {
	c := newTestCache(t)
	inner := &countingEstimator{}
	est := NewCachedEstimator(inner, c)

	for i := 0; i < 3; i++ {
		word, err := est.EstimateImportantWord("the same line")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if word != "word" {
			t.Errorf("word = %q, want %q", word, "word")
		}
	}

	if inner.calls != 1 {
		t.Errorf("inner estimator called %d times, want 1", inner.calls)
	}
	if est.Hits() != 2 {
		t.Errorf("Hits = %d, want 2", est.Hits())
	}
}

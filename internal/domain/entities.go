package domain

// Sentence is an ordered sequence of tokens. A complete sentence ends
// with a delimiter token; the trailing sentence of a text may be
// incomplete and end without one.
type Sentence []string

// Corpus is the ordered list of sentences derived from one or more
// input texts. It is read-only once built.
type Corpus []Sentence

// Entry is one row of a ranked frequency table.
type Entry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// EstimateReport summarizes one importance-estimation run over a file.
type EstimateReport struct {
	Lines     int     `json:"lines"`
	Skipped   int     `json:"skipped"`
	CacheHits int     `json:"cache_hits"`
	Words     []Entry `json:"words"`
}

package llm

import "strings"

// MockEstimator is a deterministic offline estimator: it picks the
// longest word of the line, first wins on ties.
type MockEstimator struct{}

func NewMockEstimator() *MockEstimator {
	return &MockEstimator{}
}

func (e *MockEstimator) EstimateImportantWord(line string) (string, error) {
	longest := ""
	for _, word := range strings.Fields(line) {
		if len(word) > len(longest) {
			longest = word
		}
	}
	return longest, nil
}

func (e *MockEstimator) ModelName() string {
	return "mock"
}

package usecase

import (
	"fmt"
	"os"

	"lexfreq/internal/adapter/analyzer"
	"lexfreq/internal/adapter/fs"
	"lexfreq/internal/domain"
	"lexfreq/internal/port"
)

// AnalyzeUseCase loads text corpora and runs frequency analyses over
// them. Input may be a single file or a directory, in which case the
// walker selects the corpus files.
type AnalyzeUseCase struct {
	splitter port.Splitter
	walker   port.FileWalker
}

func NewAnalyzeUseCase(splitter port.Splitter, walker port.FileWalker) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		splitter: splitter,
		walker:   walker,
	}
}

// LoadCorpus reads path (file or directory) and tokenizes it into a
// corpus. Directory files are concatenated sentence-wise in walk
// order; sentences never span file boundaries.
func (u *AnalyzeUseCase) LoadCorpus(path string) (domain.Corpus, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	if !info.IsDir() {
		text, err := fs.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		return u.splitter.Split(text), nil
	}

	files, err := u.walker.Walk(path)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}
	if len(files) == 0 {
		return domain.Corpus{domain.Sentence{}}, nil
	}

	var corpus domain.Corpus
	for _, file := range files {
		text, err := fs.ReadFile(file.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file.Path, err)
		}
		corpus = append(corpus, u.splitter.Split(text)...)
	}
	return corpus, nil
}

// Phrases ranks phrases of phraseLen consecutive tokens.
func (u *AnalyzeUseCase) Phrases(path string, phraseLen int) ([]domain.Entry, error) {
	corpus, err := u.LoadCorpus(path)
	if err != nil {
		return nil, err
	}
	return analyzer.PhraseFrequency(corpus, phraseLen)
}

// NextWords ranks the words that follow target within sentences.
func (u *AnalyzeUseCase) NextWords(path, target string) ([]domain.Entry, error) {
	corpus, err := u.LoadCorpus(path)
	if err != nil {
		return nil, err
	}
	return analyzer.NextWordFrequency(corpus, u.splitter.Fold(target)), nil
}

// CoWords ranks the words of sentences that contain target.
func (u *AnalyzeUseCase) CoWords(path, target string) ([]domain.Entry, error) {
	corpus, err := u.LoadCorpus(path)
	if err != nil {
		return nil, err
	}
	return analyzer.WordFrequencyGivenWord(corpus, u.splitter.Fold(target)), nil
}

package usecase

import (
	"fmt"
	"strings"

	"lexfreq/internal/adapter/analyzer"
	"lexfreq/internal/adapter/fs"
	"lexfreq/internal/domain"
	"lexfreq/internal/port"
)

// ProgressFunc reports completed lines out of the total.
type ProgressFunc func(done, total int)

// EstimateUseCase runs the importance estimator over a file line by
// line, sequentially, and accumulates a ranked table of the replies.
type EstimateUseCase struct {
	estimator port.Estimator
}

func NewEstimateUseCase(estimator port.Estimator) *EstimateUseCase {
	return &EstimateUseCase{estimator: estimator}
}

// EstimateFile estimates the most important word of every non-blank
// line of the file. The first estimator error aborts the run.
func (u *EstimateUseCase) EstimateFile(path string, progress ProgressFunc) (*domain.EstimateReport, error) {
	text, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	lines := strings.Split(text, "\n")

	report := &domain.EstimateReport{}
	counter := analyzer.NewCounter()

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			report.Skipped++
			continue
		}

		word, err := u.estimator.EstimateImportantWord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		counter.Inc(word)
		report.Lines++

		if progress != nil {
			progress(i+1, len(lines))
		}
	}

	report.Words = counter.Ranked()
	return report, nil
}

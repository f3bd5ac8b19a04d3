package port

// Estimator answers "which word matters most in this line" for a
// single line of text. Implementations may call an external service.
type Estimator interface {
	// EstimateImportantWord returns the most important word of the
	// line, trimmed of surrounding whitespace.
	EstimateImportantWord(line string) (string, error)

	// ModelName returns the name of the underlying model.
	ModelName() string
}

package cli

import (
	"github.com/spf13/cobra"

	"lexfreq/internal/adapter/analyzer"
	"lexfreq/internal/adapter/fs"
	"lexfreq/internal/usecase"
)

var (
	phrasesLen  int
	phrasesTop  int
	phrasesJSON bool
)

var phrasesCmd = &cobra.Command{
	Use:   "phrases <file-or-dir>",
	Short: "Rank phrases of n consecutive tokens",
	Long: `Slide a window of n tokens over every sentence and rank the phrases
by occurrence count. Windows never cross sentence boundaries.

Examples:
  lexfreq phrases book.txt -n 2
  lexfreq phrases ./corpus -n 3 --top 20 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runPhrases,
}

func init() {
	rootCmd.AddCommand(phrasesCmd)
	phrasesCmd.Flags().IntVarP(&phrasesLen, "len", "n", 1, "phrase length in tokens")
	phrasesCmd.Flags().IntVar(&phrasesTop, "top", 0, "show only the top N entries (default from config)")
	phrasesCmd.Flags().BoolVar(&phrasesJSON, "json", false, "output as JSON")
}

func runPhrases(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	splitter := analyzer.NewSplitter(cfg.Tokenize.Delimiters, cfg.FoldCase())
	walker := fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes)
	analyzeUC := usecase.NewAnalyzeUseCase(splitter, walker)

	entries, err := analyzeUC.Phrases(args[0], phrasesLen)
	if err != nil {
		return err
	}

	top := cfg.Output.Top
	if phrasesTop > 0 {
		top = phrasesTop
	}
	return printEntries(entries, top, phrasesJSON)
}

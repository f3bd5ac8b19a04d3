package cli

import (
	"github.com/spf13/cobra"

	"lexfreq/internal/adapter/analyzer"
	"lexfreq/internal/adapter/fs"
	"lexfreq/internal/usecase"
)

var (
	cowordsTarget string
	cowordsTop    int
	cowordsJSON   bool
)

var cowordsCmd = &cobra.Command{
	Use:   "cowords <file-or-dir>",
	Short: "Rank the words of sentences containing a target word",
	Long: `For every sentence containing the target word, count every token of
that sentence (the target itself included). Sentences without the
target contribute nothing.

Examples:
  lexfreq cowords book.txt -w whale
  lexfreq cowords ./corpus -w storm --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCowords,
}

func init() {
	rootCmd.AddCommand(cowordsCmd)
	cowordsCmd.Flags().StringVarP(&cowordsTarget, "word", "w", "", "target word (required)")
	cowordsCmd.Flags().IntVar(&cowordsTop, "top", 0, "show only the top N entries (default from config)")
	cowordsCmd.Flags().BoolVar(&cowordsJSON, "json", false, "output as JSON")
	cowordsCmd.MarkFlagRequired("word")
}

func runCowords(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	splitter := analyzer.NewSplitter(cfg.Tokenize.Delimiters, cfg.FoldCase())
	walker := fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes)
	analyzeUC := usecase.NewAnalyzeUseCase(splitter, walker)

	entries, err := analyzeUC.CoWords(args[0], cowordsTarget)
	if err != nil {
		return err
	}

	top := cfg.Output.Top
	if cowordsTop > 0 {
		top = cowordsTop
	}
	return printEntries(entries, top, cowordsJSON)
}

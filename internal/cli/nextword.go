package cli

import (
	"github.com/spf13/cobra"

	"lexfreq/internal/adapter/analyzer"
	"lexfreq/internal/adapter/fs"
	"lexfreq/internal/usecase"
)

var (
	nextwordTarget string
	nextwordTop    int
	nextwordJSON   bool
)

var nextwordCmd = &cobra.Command{
	Use:   "nextword <file-or-dir>",
	Short: "Rank the words that follow a target word",
	Long: `Count the token immediately following each occurrence of the target
word within a sentence. Occurrences at the end of a sentence have no
successor and are ignored.

Examples:
  lexfreq nextword book.txt -w the
  lexfreq nextword ./corpus -w captain --top 10`,
	Args: cobra.ExactArgs(1),
	RunE: runNextword,
}

func init() {
	rootCmd.AddCommand(nextwordCmd)
	nextwordCmd.Flags().StringVarP(&nextwordTarget, "word", "w", "", "target word (required)")
	nextwordCmd.Flags().IntVar(&nextwordTop, "top", 0, "show only the top N entries (default from config)")
	nextwordCmd.Flags().BoolVar(&nextwordJSON, "json", false, "output as JSON")
	nextwordCmd.MarkFlagRequired("word")
}

func runNextword(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	splitter := analyzer.NewSplitter(cfg.Tokenize.Delimiters, cfg.FoldCase())
	walker := fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes)
	analyzeUC := usecase.NewAnalyzeUseCase(splitter, walker)

	entries, err := analyzeUC.NextWords(args[0], nextwordTarget)
	if err != nil {
		return err
	}

	top := cfg.Output.Top
	if nextwordTop > 0 {
		top = nextwordTop
	}
	return printEntries(entries, top, nextwordJSON)
}

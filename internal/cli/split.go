package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lexfreq/internal/adapter/analyzer"
	"lexfreq/internal/adapter/fs"
	"lexfreq/internal/usecase"
)

var splitJSON bool

var splitCmd = &cobra.Command{
	Use:   "split <file-or-dir>",
	Short: "Show the tokenized sentences of a text",
	Long: `Tokenize the input into sentences and print them, one sentence per
line with tokens separated by spaces. Useful for checking delimiter
and case-folding configuration.

Examples:
  lexfreq split book.txt
  lexfreq split ./corpus --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().BoolVar(&splitJSON, "json", false, "output as JSON")
}

func runSplit(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	splitter := analyzer.NewSplitter(cfg.Tokenize.Delimiters, cfg.FoldCase())
	walker := fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes)
	analyzeUC := usecase.NewAnalyzeUseCase(splitter, walker)

	corpus, err := analyzeUC.LoadCorpus(args[0])
	if err != nil {
		return err
	}

	if splitJSON {
		output, err := json.MarshalIndent(corpus, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(output))
		return nil
	}

	for _, sentence := range corpus {
		fmt.Println(strings.Join(sentence, " "))
	}
	return nil
}

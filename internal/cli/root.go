package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lexfreq/config"
	"lexfreq/internal/domain"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "lexfreq",
	Short: "Tokenize text into sentences and rank lexical frequencies",
	Long: `lexfreq splits plain-text files into sentences and computes simple
lexical statistics: phrase (n-gram) frequency, next-word frequency
after a target word, and co-occurrence frequency within sentences
containing a target word. The important command asks a language model
for the most important word of each line and ranks the answers.

Example usage:
  lexfreq split book.txt                 # Show the tokenized sentences
  lexfreq phrases book.txt -n 2          # Rank bigrams
  lexfreq nextword book.txt -w the       # What follows "the"?
  lexfreq cowords book.txt -w whale      # Words sharing a sentence with "whale"
  lexfreq important notes.txt            # Most important word per line (LLM)`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./lexfreq.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

// printEntries writes a ranked table, truncated to top rows when
// top > 0.
func printEntries(entries []domain.Entry, top int, asJSON bool) error {
	if top > 0 && top < len(entries) {
		entries = entries[:top]
	}

	if asJSON {
		output, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(output))
		return nil
	}

	if len(entries) == 0 {
		fmt.Println("No results.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%6d  %s\n", e.Count, e.Key)
	}
	return nil
}

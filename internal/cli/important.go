package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"lexfreq/config"
	"lexfreq/internal/adapter/cache"
	"lexfreq/internal/adapter/llm"
	"lexfreq/internal/port"
	"lexfreq/internal/usecase"
)

var (
	importantProvider string
	importantModel    string
	importantBaseURL  string
	importantNoCache  bool
	importantTop      int
	importantJSON     bool
)

var importantCmd = &cobra.Command{
	Use:   "important <file>",
	Short: "Rank the most important word of each line, per a language model",
	Long: `Ask a language model for the most important word of every line of the
file and rank the answers by how often they come back. Requests run
sequentially, one per line; replies are cached in .lexfreq/ so reruns
skip lines already answered.

The API key is read from the environment variable named by the
llm.api_key_env config setting (default API_KEY).

Examples:
  lexfreq important notes.txt
  lexfreq important notes.txt --model gpt-4o --no-cache
  lexfreq important notes.txt --provider local --model llama3`,
	Args: cobra.ExactArgs(1),
	RunE: runImportant,
}

func init() {
	rootCmd.AddCommand(importantCmd)
	importantCmd.Flags().StringVar(&importantProvider, "provider", "", "LLM provider: openai, deepseek, local, mock (default from config)")
	importantCmd.Flags().StringVar(&importantModel, "model", "", "model name (default from config)")
	importantCmd.Flags().StringVar(&importantBaseURL, "base-url", "", "custom OpenAI-compatible endpoint")
	importantCmd.Flags().BoolVar(&importantNoCache, "no-cache", false, "disable the response cache")
	importantCmd.Flags().IntVar(&importantTop, "top", 0, "show only the top N entries (default from config)")
	importantCmd.Flags().BoolVar(&importantJSON, "json", false, "output as JSON")
}

func runImportant(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	rootDir := GetRootDir()

	estimator, err := newEstimator(cfg)
	if err != nil {
		return err
	}

	var cached *cache.CachedEstimator
	if cfg.Cache.Enabled && !importantNoCache {
		if err := config.EnsureDataDir(rootDir); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
		store, err := cache.NewEstimateCache(cfg.CacheDBPath(rootDir))
		if err != nil {
			return fmt.Errorf("failed to open response cache: %w", err)
		}
		defer store.Close()

		cached = cache.NewCachedEstimator(estimator, store)
		estimator = cached
	}

	estimateUC := usecase.NewEstimateUseCase(estimator)

	var bar *progressbar.ProgressBar
	progress := func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("Estimating"),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(done)
	}
	if importantJSON {
		progress = nil // keep stdout parseable
	}

	report, err := estimateUC.EstimateFile(args[0], progress)
	if err != nil {
		return fmt.Errorf("estimation failed: %w", err)
	}
	if cached != nil {
		report.CacheHits = cached.Hits()
	}

	top := cfg.Output.Top
	if importantTop > 0 {
		top = importantTop
	}

	if importantJSON {
		if top > 0 && top < len(report.Words) {
			report.Words = report.Words[:top]
		}
		output, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Estimated %d lines (%d skipped, %d from cache) with %s\n\n",
		report.Lines, report.Skipped, report.CacheHits, estimator.ModelName())
	return printEntries(report.Words, top, false)
}

// newEstimator builds the configured estimator client. The credential
// is resolved here, at the boundary, and handed to the client
// explicitly.
func newEstimator(cfg *config.Config) (port.Estimator, error) {
	provider := cfg.LLM.Provider
	if importantProvider != "" {
		provider = importantProvider
	}
	model := cfg.LLM.Model
	if importantModel != "" {
		model = importantModel
	}
	baseURL := cfg.LLM.BaseURL
	if importantBaseURL != "" {
		baseURL = importantBaseURL
	}

	switch provider {
	case "mock":
		return llm.NewMockEstimator(), nil
	case "local":
		return llm.NewOllamaClient(model, baseURL)
	}

	apiKey := os.Getenv(cfg.LLM.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("API key not found in environment variable: %s", cfg.LLM.APIKeyEnv)
	}

	switch provider {
	case "openai":
		if baseURL != "" {
			return llm.NewCompatibleClient(apiKey, model, baseURL)
		}
		return llm.NewOpenAIClient(apiKey, model)
	case "deepseek":
		return llm.NewDeepSeekClient(apiKey, model)
	default:
		if baseURL != "" {
			return llm.NewCompatibleClient(apiKey, model, baseURL)
		}
		return nil, fmt.Errorf("unknown provider: %s (use --base-url for custom endpoints)", provider)
	}
}

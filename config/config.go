package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the lexfreq tool.
type Config struct {
	Tokenize TokenizeConfig `yaml:"tokenize"`
	Corpus   CorpusConfig   `yaml:"corpus"`
	Output   OutputConfig   `yaml:"output"`
	LLM      LLMConfig      `yaml:"llm"`
	Cache    CacheConfig    `yaml:"cache"`
}

// TokenizeConfig holds sentence-splitting configuration.
type TokenizeConfig struct {
	Delimiters []string `yaml:"delimiters"`
	FoldCase   *bool    `yaml:"fold_case"` // pointer so yaml `false` is distinguishable from unset
}

// CorpusConfig selects files when the input is a directory.
type CorpusConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// OutputConfig holds result display configuration.
type OutputConfig struct {
	Top int `yaml:"top"` // 0 means all entries
}

// LLMConfig holds importance-estimator configuration.
type LLMConfig struct {
	Provider  string `yaml:"provider"`    // "openai", "deepseek", "local", "mock"
	Model     string `yaml:"model"`       // e.g. "gpt-4o-mini"
	BaseURL   string `yaml:"base_url"`    // overrides the provider default
	APIKeyEnv string `yaml:"api_key_env"` // environment variable holding the key
}

// CacheConfig holds estimator response cache configuration.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // defaults to .lexfreq/estimates.db
}

// FoldCase reports the effective folding setting (default true).
func (c *Config) FoldCase() bool {
	if c.Tokenize.FoldCase == nil {
		return true
	}
	return *c.Tokenize.FoldCase
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tokenize: TokenizeConfig{
			Delimiters: []string{".", "?", "!", ";"},
		},
		Corpus: CorpusConfig{
			Includes: []string{"**/*.txt", "**/*.md"},
			Excludes: []string{"**/.git/**", "**/.lexfreq/**"},
		},
		Output: OutputConfig{
			Top: 0,
		},
		LLM: LLMConfig{
			Provider:  "openai",
			Model:     "gpt-4o-mini",
			APIKeyEnv: "API_KEY",
		},
		Cache: CacheConfig{
			Enabled: true,
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults
// when the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (lexfreq.yaml,
// then .lexfreq/config.yaml, then defaults).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "lexfreq.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".lexfreq", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CacheDBPath returns the estimator cache location for a directory,
// honoring an explicit configured path.
func (c *Config) CacheDBPath(dir string) string {
	if c.Cache.Path != "" {
		return c.Cache.Path
	}
	return filepath.Join(dir, ".lexfreq", "estimates.db")
}

// EnsureDataDir ensures the .lexfreq directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".lexfreq"), 0755)
}

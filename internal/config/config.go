package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/huimingz/aicommit/pkg/lang"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// FileName is the configuration file looked up in the working and home directories
	FileName = ".aicommit.yaml"

	// EnvPrefix is the prefix for environment overrides (AICOMMIT_VERBOSITY, ...)
	EnvPrefix = "AICOMMIT"

	DefaultBranch = "main"
	DefaultRemote = "origin"
)

// Supported providers
var supportedProviders = map[string]bool{
	"openai":   true,
	"deepseek": true,
	"ollama":   true,
	"gemini":   true,
	"grok":     true,
}

// SupportedProviders returns a sorted list of supported providers
func SupportedProviders() []string {
	providers := make([]string, 0, len(supportedProviders))
	for p := range supportedProviders {
		providers = append(providers, p)
	}
	sort.Strings(providers)
	return providers
}

// Verbosity controls how long and detailed the generated commit message should be
type Verbosity string

const (
	VerbosityQuiet   Verbosity = "quiet"
	VerbosityNormal  Verbosity = "normal"
	VerbosityVerbose Verbosity = "verbose"
)

// ParseVerbosity converts a user supplied string into a Verbosity.
// Matching is case-insensitive; an empty string yields VerbosityNormal.
func ParseVerbosity(s string) (Verbosity, error) {
	switch Verbosity(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return VerbosityNormal, nil
	case VerbosityQuiet:
		return VerbosityQuiet, nil
	case VerbosityNormal:
		return VerbosityNormal, nil
	case VerbosityVerbose:
		return VerbosityVerbose, nil
	default:
		return "", fmt.Errorf("invalid verbosity %q (expected quiet, normal or verbose)", s)
	}
}

// Config represents the application configuration
type Config struct {
	DefaultModel  string                 `yaml:"default_model" mapstructure:"default_model" json:"default_model"`
	Models        map[string]ModelConfig `yaml:"models" mapstructure:"models" json:"models"`
	Verbosity     Verbosity              `yaml:"verbosity" mapstructure:"verbosity" json:"verbosity"`
	DefaultBranch string                 `yaml:"default_branch" mapstructure:"default_branch" json:"default_branch"`
	Remote        string                 `yaml:"remote" mapstructure:"remote" json:"remote"`
	Language      string                 `yaml:"language" mapstructure:"language" json:"language"`
}

// ModelConfig represents a single model configuration
type ModelConfig struct {
	Provider string `yaml:"provider" mapstructure:"provider" json:"provider"`
	APIKey   string `yaml:"api_key" mapstructure:"api_key" json:"-"`
	Model    string `yaml:"model" mapstructure:"model" json:"model"`
	BaseURL  string `yaml:"base_url" mapstructure:"base_url" json:"base_url,omitempty"`
}

// Validate validates the model configuration
func (m *ModelConfig) Validate() error {
	if m.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	if !supportedProviders[m.Provider] {
		return fmt.Errorf("unsupported provider: %s (supported: %s)", m.Provider, strings.Join(SupportedProviders(), ", "))
	}
	if m.Model == "" {
		return fmt.Errorf("model is required")
	}
	// API key is required for all providers except ollama
	if m.Provider != "ollama" && m.APIKey == "" {
		return fmt.Errorf("api_key is required for provider %s", m.Provider)
	}
	return nil
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	if len(c.Models) == 0 {
		return fmt.Errorf("no models configured")
	}

	var result error

	if c.DefaultModel != "" {
		if _, ok := c.Models[c.DefaultModel]; !ok {
			result = multierror.Append(result, fmt.Errorf("default model '%s' not found in models configuration", c.DefaultModel))
		}
	}

	names := make([]string, 0, len(c.Models))
	for name := range c.Models {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		model := c.Models[name]
		if err := model.Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid model '%s': %w", name, err))
		}
	}

	if _, err := ParseVerbosity(string(c.Verbosity)); err != nil {
		result = multierror.Append(result, err)
	}

	if _, err := lang.Parse(c.Language); err != nil {
		result = multierror.Append(result, err)
	}

	return result
}

// GetModel returns the model configuration by name
// Priority: parameter > env variable (AICOMMIT_MODEL) > default_model
func (c *Config) GetModel(modelName string) (*ModelConfig, error) {
	if modelName == "" {
		modelName = os.Getenv(EnvPrefix + "_MODEL")
	}

	if modelName == "" {
		modelName = c.DefaultModel
	}

	if modelName == "" {
		return nil, fmt.Errorf("no model specified and no default model configured")
	}

	model, ok := c.Models[modelName]
	if !ok {
		return nil, fmt.Errorf("model '%s' not found in configuration", modelName)
	}

	// Expand environment variables in API key
	model.APIKey = expandEnv(model.APIKey)

	return &model, nil
}

// GetVerbosity returns the verbosity to use
// Priority: parameter > config file (which already includes AICOMMIT_VERBOSITY) > normal
func (c *Config) GetVerbosity(param string) (Verbosity, error) {
	if param != "" {
		return ParseVerbosity(param)
	}
	return ParseVerbosity(string(c.Verbosity))
}

// GetLanguage returns the output language
// Priority: parameter > config file (which already includes AICOMMIT_LANGUAGE) > en
func (c *Config) GetLanguage(param string) (lang.Language, error) {
	if param != "" {
		return lang.Parse(param)
	}
	return lang.Parse(c.Language)
}

// GetDefaultBranch returns the branch pushed to when the current branch cannot be resolved
func (c *Config) GetDefaultBranch() string {
	if c.DefaultBranch == "" {
		return DefaultBranch
	}
	return c.DefaultBranch
}

// GetRemote returns the remote that commits are pushed to
func (c *Config) GetRemote() string {
	if c.Remote == "" {
		return DefaultRemote
	}
	return c.Remote
}

// expandEnv expands environment variables in the format ${VAR} or $VAR
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		envName := s[2 : len(s)-1]
		return os.Getenv(envName)
	}
	if strings.HasPrefix(s, "$") {
		envName := s[1:]
		return os.Getenv(envName)
	}
	return s
}

// newViper returns a viper instance with defaults and env overrides applied
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("verbosity", string(VerbosityNormal))
	v.SetDefault("default_branch", DefaultBranch)
	v.SetDefault("remote", DefaultRemote)
	v.SetDefault("language", string(lang.DefaultLanguage()))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// LoadEnvFile loads variables from a dotenv file so that api_key: ${VAR}
// can reference them. Variables already set in the environment win.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// LoadFromFile loads configuration from a file
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Load loads configuration with the following priority:
// 1. Custom path if provided
// 2. Current directory .aicommit.yaml
// 3. Home directory ~/.aicommit.yaml
func Load(customPath string) (*Config, error) {
	if customPath != "" {
		return LoadFromFile(customPath)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return loadFirst(FileName, filepath.Join(homeDir, FileName))
}

// loadFirst loads the first candidate that exists. A candidate that exists
// but cannot be read or parsed is an error rather than skipped.
func loadFirst(candidates ...string) (*Config, error) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return cfg, nil
	}

	return nil, fmt.Errorf("no configuration file found. Run 'aicommit init' to create one")
}

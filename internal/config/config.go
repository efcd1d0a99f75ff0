package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Vectorizer names accepted in similarity.vectorizer.
const (
	VectorizerTFIDF     = "tfidf"
	VectorizerEmbedding = "embedding"
)

// Embedding provider names accepted in embedding.provider.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds the talentflow engine configuration.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Database   DatabaseConfig   `yaml:"database"`
	Storage    StorageConfig    `yaml:"storage"`
	Corpus     CorpusConfig     `yaml:"corpus"`
	Similarity SimilarityConfig `yaml:"similarity"`
	Embedding  EmbeddingConfig  `yaml:"embedding"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds the backend Postgres connection settings.
type DatabaseConfig struct {
	URL              string `yaml:"url"`
	MaxConns         int32  `yaml:"max_conns"`
	ReadinessTimeout int    `yaml:"readiness_timeout_sec"`
}

// StorageConfig holds the CV file bucket settings. An empty URL disables CV extraction.
type StorageConfig struct {
	URL    string `yaml:"url"`
	Key    string `yaml:"key"`
	Bucket string `yaml:"bucket"`
}

// CorpusConfig holds corpus building settings.
type CorpusConfig struct {
	ExtractConcurrency int           `yaml:"extract_concurrency"`
	Weights            WeightsConfig `yaml:"weights"`
}

// WeightsConfig sets how many times each seeker field is repeated in the text blob.
type WeightsConfig struct {
	Bio    int `yaml:"bio"`
	Skills int `yaml:"skills"`
	CV     int `yaml:"cv"`
}

// SimilarityConfig selects the vectorizer.
type SimilarityConfig struct {
	Vectorizer string `yaml:"vectorizer"` // tfidf (default) | embedding
}

// EmbeddingConfig holds embedding provider settings, used when similarity.vectorizer is "embedding".
type EmbeddingConfig struct {
	Provider     string `yaml:"provider"` // openai | gemini
	APIKey       string `yaml:"api_key"`
	BaseURL      string `yaml:"base_url"`
	Model        string `yaml:"model"`
	Dimensions   int    `yaml:"dimensions"`
	MaxBatchSize int    `yaml:"max_batch_size"`
}

// LoadDotEnv loads variables from a .env file in the working directory, if present.
// Variables already set in the process environment win.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration, expanding ${VAR} references, applying defaults and validating.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8000
	}
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 60
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Database.MaxConns <= 0 {
		c.Database.MaxConns = 8
	}
	if c.Storage.Bucket == "" {
		c.Storage.Bucket = "cvs"
	}
	if c.Corpus.ExtractConcurrency <= 0 {
		c.Corpus.ExtractConcurrency = 4
	}
	if c.Corpus.Weights == (WeightsConfig{}) {
		c.Corpus.Weights = WeightsConfig{Bio: 3, Skills: 5, CV: 1}
	}
	if c.Similarity.Vectorizer == "" {
		c.Similarity.Vectorizer = VectorizerTFIDF
	}
	if c.Embedding.Provider == "" {
		c.Embedding.Provider = ProviderOpenAI
	}
	if c.Embedding.MaxBatchSize <= 0 {
		c.Embedding.MaxBatchSize = 256
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Database.URL == "" {
		return fmt.Errorf("database.url is required")
	}
	w := c.Corpus.Weights
	if w.Bio < 0 || w.Skills < 0 || w.CV < 0 {
		return fmt.Errorf("corpus.weights must not be negative, got %+v", w)
	}
	if d := c.Embedding.Dimensions; d < 0 || d > math.MaxInt32 {
		return fmt.Errorf("embedding.dimensions must be between 0 and %d, got %d", math.MaxInt32, d)
	}

	switch c.Similarity.Vectorizer {
	case VectorizerTFIDF:
		return nil
	case VectorizerEmbedding:
	default:
		return fmt.Errorf(
			"similarity.vectorizer must be %q or %q, got %q",
			VectorizerTFIDF, VectorizerEmbedding, c.Similarity.Vectorizer,
		)
	}

	switch c.Embedding.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf(
			"embedding.provider must be %q or %q, got %q",
			ProviderOpenAI, ProviderGemini, c.Embedding.Provider,
		)
	}
	if c.Embedding.Model == "" {
		return fmt.Errorf("embedding.model is required when similarity.vectorizer is %q", VectorizerEmbedding)
	}
	if c.Embedding.APIKey == "" {
		return fmt.Errorf("embedding.api_key is required when similarity.vectorizer is %q", VectorizerEmbedding)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}

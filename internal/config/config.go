// Package config holds the immutable configuration value the pipeline
// components are constructed with. Defaults cover a stock local Ollama
// install; a YAML file and environment variables can override them.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type FileConfig struct {
	AllowedExtensions []string `yaml:"allowed_extensions"`
	MaxFileSizeMB     int64    `yaml:"max_file_size_mb"`
}

type OllamaConfig struct {
	Host  string `yaml:"host"`
	Port  int    `yaml:"port"`
	Model string `yaml:"model"`
}

// URL is the generate endpoint the model client posts to.
func (o OllamaConfig) URL() string {
	return fmt.Sprintf("http://%s:%d/api/generate", o.Host, o.Port)
}

type AnalysisConfig struct {
	Temperature    float64  `yaml:"temperature"`
	TopP           float64  `yaml:"top_p"`
	NumPredict     int      `yaml:"num_predict"`
	NumCtx         int      `yaml:"num_ctx"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
	MaxWords       int      `yaml:"max_words"`
	StopPhrases    []string `yaml:"stop_phrases"`
	SectionHeaders []string `yaml:"section_headers"`
}

func (a AnalysisConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

type Config struct {
	// Provider selects the model client: "ollama" (native /api/generate)
	// or "openai" (any OpenAI-compatible gateway, e.g. Ollama's /v1).
	Provider      string `yaml:"provider"`
	OpenAIBaseURL string `yaml:"openai_base_url"`

	Files    FileConfig     `yaml:"files"`
	Ollama   OllamaConfig   `yaml:"ollama"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

// Default returns the stock configuration for a local llama3.1:8b setup.
func Default() Config {
	return Config{
		Provider: "ollama",
		Files: FileConfig{
			AllowedExtensions: []string{".pdf"},
			MaxFileSizeMB:     20,
		},
		Ollama: OllamaConfig{
			Host:  "localhost",
			Port:  11434,
			Model: "llama3.1:8b",
		},
		Analysis: AnalysisConfig{
			Temperature:    0.3,
			TopP:           0.9,
			NumPredict:     700,
			NumCtx:         4096,
			TimeoutSeconds: 120,
			MaxWords:       3000,
			StopPhrases: []string{
				"certificate of",
				"to whom it may concern",
				"letter of recommendation",
				"this is to certify",
				"reference letter",
			},
			SectionHeaders: []string{
				"education", "experience", "work experience",
				"professional experience", "employment history",
				"skills", "technical skills", "summary",
				"professional summary", "objective", "certifications",
				"projects", "awards", "publications", "languages",
				"interests", "references", "contact", "profile",
				"achievements", "volunteer experience",
			},
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// non-empty), then environment overrides. A .env file in the working
// directory is picked up first so env overrides work in dev setups too.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("OLLAMA_HOST"); v != "" {
		c.Ollama.Host = v
	}
	if v := os.Getenv("OLLAMA_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Ollama.Port = port
		}
	}
	if v := os.Getenv("OLLAMA_MODEL"); v != "" {
		c.Ollama.Model = v
	}
	if v := os.Getenv("DOCSCAN_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		c.OpenAIBaseURL = v
	}
}

// Validate rejects configurations the pipeline cannot run with.
func (c Config) Validate() error {
	if c.Provider != "ollama" && c.Provider != "openai" {
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	if c.Ollama.Model == "" {
		return fmt.Errorf("model name must not be empty")
	}
	if c.Analysis.MaxWords <= 0 {
		return fmt.Errorf("max_words must be positive, got %d", c.Analysis.MaxWords)
	}
	if c.Analysis.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.Analysis.TimeoutSeconds)
	}
	if c.Files.MaxFileSizeMB <= 0 {
		return fmt.Errorf("max_file_size_mb must be positive, got %d", c.Files.MaxFileSizeMB)
	}
	if len(c.Files.AllowedExtensions) == 0 {
		return fmt.Errorf("allowed_extensions must not be empty")
	}
	return nil
}

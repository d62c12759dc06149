// Package config loads runtime settings from an optional YAML file with
// environment variable overrides. Environment wins so deployments can tweak
// a single value without shipping a new file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
	"speech2sense-go/internal/scoring"
)

type LLM struct {
	URL         string  `yaml:"url"`
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	TimeoutSec  int     `yaml:"timeout_sec"`
	Temperature float64 `yaml:"temperature"`
}

type Speech struct {
	TranscribeURL string `yaml:"transcribe_url"`
	DiarizeURL    string `yaml:"diarize_url"`
	TimeoutSec    int    `yaml:"timeout_sec"`
}

type Analysis struct {
	// Concurrency bounds the in-flight classifier calls per conversation.
	Concurrency   int    `yaml:"concurrency"`
	TranscriptDir string `yaml:"transcript_dir"`
}

type Root struct {
	Port     string         `yaml:"port"`
	Dataset  string         `yaml:"dataset"`
	LLM      LLM            `yaml:"llm"`
	Speech   Speech         `yaml:"speech"`
	Analysis Analysis       `yaml:"analysis"`
	Scoring  scoring.Config `yaml:"scoring"`
}

// Load reads CONFIG_PATH (when set and present), fills defaults, then
// applies environment overrides.
func Load() (*Root, error) {
	cfg := &Root{
		Port: "8080",
		LLM: LLM{
			Model:       "llama3-8b-8192",
			TimeoutSec:  25,
			Temperature: 0.2,
		},
		Speech:   Speech{TimeoutSec: 60},
		Analysis: Analysis{Concurrency: 4},
		Scoring:  scoring.DefaultConfig(),
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	overrideString(&cfg.Port, "PORT")
	overrideString(&cfg.Dataset, "DATASET_PATH")
	overrideString(&cfg.LLM.URL, "LLM_GATEWAY_URL")
	overrideString(&cfg.LLM.APIKey, "LLM_API_KEY")
	overrideString(&cfg.LLM.Model, "LLM_MODEL")
	overrideString(&cfg.Speech.TranscribeURL, "TRANSCRIBE_URL")
	overrideString(&cfg.Speech.DiarizeURL, "DIARIZE_URL")
	overrideString(&cfg.Analysis.TranscriptDir, "TRANSCRIPT_DIR")
	overrideInt(&cfg.Analysis.Concurrency, "ANALYSIS_CONCURRENCY")
	overrideInt(&cfg.LLM.TimeoutSec, "LLM_TIMEOUT_SEC")

	if cfg.Analysis.Concurrency < 1 {
		cfg.Analysis.Concurrency = 1
	}
	if len(cfg.Scoring.CSATRatings) == 0 || len(cfg.Scoring.PerformanceRatings) == 0 {
		def := scoring.DefaultConfig()
		if len(cfg.Scoring.CSATRatings) == 0 {
			cfg.Scoring.CSATRatings = def.CSATRatings
		}
		if len(cfg.Scoring.PerformanceRatings) == 0 {
			cfg.Scoring.PerformanceRatings = def.PerformanceRatings
		}
	}
	if cfg.Scoring.RecencySpan == 0 {
		cfg.Scoring.RecencySpan = scoring.DefaultConfig().RecencySpan
	}
	return cfg, nil
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

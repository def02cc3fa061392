package llm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the remote inference client.
type Config struct {
	Enabled   bool
	LogCalls  bool
	Endpoint  string
	Model     string
	APIKey    string
	TimeoutMs int
}

// DefaultConfig returns a Config pointed at the hosted inference API.
// Remote inference stays disabled until an API key is supplied.
func DefaultConfig() Config {
	return Config{
		Enabled:   false,
		LogCalls:  false,
		Endpoint:  "https://api-inference.huggingface.co/models",
		Model:     "cardiffnlp/twitter-roberta-base-sentiment-latest",
		TimeoutMs: 10000,
	}
}

// LoadConfig reads inference configuration from environment variables,
// falling back to defaults for any unset values. Setting an API key
// implicitly enables the remote tier unless FINOVA_INFERENCE_ENABLED
// says otherwise.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("FINOVA_INFERENCE_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("FINOVA_INFERENCE_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("FINOVA_INFERENCE_API_KEY"); v != "" {
		cfg.APIKey = v
	} else if v := os.Getenv("HUGGINGFACE_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	cfg.Enabled = cfg.APIKey != ""
	if v := os.Getenv("FINOVA_INFERENCE_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FINOVA_INFERENCE_LOG"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FINOVA_INFERENCE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	return cfg
}

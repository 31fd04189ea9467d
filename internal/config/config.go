package config

import (
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"vitaforge/internal/logging"
)

// Config represents the application configuration.
type Config struct {
	Server struct {
		Port         int           `yaml:"port"`
		Host         string        `yaml:"host"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
	} `yaml:"server"`

	LLM struct {
		DefaultProvider string        `yaml:"default_provider"`
		Timeout         time.Duration `yaml:"timeout"`
		MaxTokens       int           `yaml:"max_tokens"`
		Temperature     float32       `yaml:"temperature"`
		MaxRetries      int           `yaml:"max_retries"`
		RatePerMinute   int           `yaml:"rate_per_minute"`
	} `yaml:"llm"`

	Providers struct {
		Gemini struct {
			APIKey string   `yaml:"api_key"`
			Models []string `yaml:"models"`
		} `yaml:"gemini"`

		OpenAI struct {
			APIKey  string   `yaml:"api_key"`
			BaseURL string   `yaml:"base_url"`
			Models  []string `yaml:"models"`
		} `yaml:"openai"`

		Claude struct {
			APIKey string   `yaml:"api_key"`
			Models []string `yaml:"models"`
		} `yaml:"claude"`

		OllamaLocal struct {
			Enabled bool     `yaml:"enabled"`
			BaseURL string   `yaml:"base_url"`
			Models  []string `yaml:"models"`
		} `yaml:"ollama_local"`

		OllamaCloud struct {
			APIKey  string   `yaml:"api_key"`
			BaseURL string   `yaml:"base_url"`
			Models  []string `yaml:"models"`
		} `yaml:"ollama_cloud"`
	} `yaml:"providers"`

	Logging logging.Config `yaml:"logging"`

	Redis struct {
		URL      string        `yaml:"url"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"redis"`

	Storage struct {
		// StatePath is where the provider selection is persisted when
		// Redis is not configured.
		StatePath string `yaml:"state_path"`
	} `yaml:"storage"`
}

// expandEnvVars expands environment variables in a string using ${VAR}
// or $VAR syntax.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.LLM.Timeout = 120 * time.Second
	config.LLM.MaxTokens = 8192
	config.LLM.Temperature = 0.3
	config.LLM.MaxRetries = 3
	config.LLM.RatePerMinute = 60

	config.Providers.Gemini.Models = []string{"gemini-2.5-pro", "gemini-2.5-flash"}
	config.Providers.OpenAI.Models = []string{"gpt-4o", "gpt-4o-mini"}
	config.Providers.Claude.Models = []string{"claude-sonnet-4-20250514"}
	config.Providers.OllamaLocal.BaseURL = "http://localhost:11434"
	config.Providers.OllamaLocal.Models = []string{"llama3.1", "mistral-nemo"}
	config.Providers.OllamaCloud.BaseURL = "https://ollama.com"
	config.Providers.OllamaCloud.Models = []string{"gpt-oss:120b"}

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second

	config.Storage.StatePath = "data/provider_selection.json"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))
			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables.
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if provider := os.Getenv("DEFAULT_PROVIDER"); provider != "" {
		c.LLM.DefaultProvider = provider
	}

	if timeout := os.Getenv("LLM_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.LLM.Timeout = d
		}
	}

	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		c.Providers.Gemini.APIKey = apiKey
	}
	if models := os.Getenv("GEMINI_MODELS"); models != "" {
		c.Providers.Gemini.Models = splitModels(models)
	}

	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		c.Providers.OpenAI.APIKey = apiKey
	}
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		c.Providers.OpenAI.BaseURL = baseURL
	}
	if models := os.Getenv("OPENAI_MODELS"); models != "" {
		c.Providers.OpenAI.Models = splitModels(models)
	}

	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		c.Providers.Claude.APIKey = apiKey
	}
	if models := os.Getenv("CLAUDE_MODELS"); models != "" {
		c.Providers.Claude.Models = splitModels(models)
	}

	if enabled := os.Getenv("OLLAMA_ENABLED"); enabled != "" {
		c.Providers.OllamaLocal.Enabled = enabled == "true" || enabled == "1"
	}
	if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
		c.Providers.OllamaLocal.BaseURL = baseURL
	}
	if models := os.Getenv("OLLAMA_MODELS"); models != "" {
		c.Providers.OllamaLocal.Models = splitModels(models)
	}

	if apiKey := os.Getenv("OLLAMA_CLOUD_API_KEY"); apiKey != "" {
		c.Providers.OllamaCloud.APIKey = apiKey
	}
	if baseURL := os.Getenv("OLLAMA_CLOUD_BASE_URL"); baseURL != "" {
		c.Providers.OllamaCloud.BaseURL = baseURL
	}
	if models := os.Getenv("OLLAMA_CLOUD_MODELS"); models != "" {
		c.Providers.OllamaCloud.Models = splitModels(models)
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}
	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		c.Logging.File = logFile
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}
	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if statePath := os.Getenv("STATE_PATH"); statePath != "" {
		c.Storage.StatePath = statePath
	}
}

// splitModels parses a comma-separated model list, trimming whitespace
// and dropping empty entries.
func splitModels(s string) []string {
	parts := strings.Split(s, ",")
	models := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			models = append(models, trimmed)
		}
	}
	return models
}

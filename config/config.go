package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

const (
	RetrievalKeyword   = "keyword"
	RetrievalEmbedding = "embedding"
)

type LLMConfig struct {
	Provider string
	Model    string
}

type EmbeddingsConfig struct {
	Provider string
	Model    string
}

type Config struct {
	Host          string
	Port          string
	Debug         bool
	Version       string
	DataFile      string
	AssetsDir     string
	RetrievalMode string

	LLM        LLMConfig
	Embeddings EmbeddingsConfig

	GeminiAPIKey  string
	OpenAIAPIKey  string
	OpenAIBaseURL string
}

func Load() Config {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	return Config{
		Host:          getEnv("HOST", "0.0.0.0"),
		Port:          getEnv("PORT", "10000"),
		Debug:         getEnvAsBool("DEBUG", false),
		Version:       getEnv("APP_VERSION", "1.0.0"),
		DataFile:      getEnv("DATA_FILE", "data/profile.json"),
		AssetsDir:     getEnv("ASSETS_DIR", "static"),
		RetrievalMode: getEnv("RETRIEVAL_MODE", RetrievalKeyword),
		LLM: LLMConfig{
			Provider: getEnv("LLM_PROVIDER", ProviderGemini),
			Model:    getEnv("LLM_MODEL", "gemini-1.5-flash"),
		},
		Embeddings: EmbeddingsConfig{
			Provider: getEnv("EMBEDDINGS_PROVIDER", ProviderGemini),
			Model:    getEnv("EMBEDDINGS_MODEL", "text-embedding-004"),
		},
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
	}
}

// LLMConfigured reports whether a credential is present for the selected
// provider. Without one the chat service serves canned answers only.
func (c Config) LLMConfigured() bool {
	switch c.LLM.Provider {
	case ProviderOpenAI:
		return c.OpenAIAPIKey != ""
	default:
		return c.GeminiAPIKey != ""
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("warning: invalid boolean for %s, using default: %t", key, fallback)
		return fallback
	}
	return parsed
}

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultEmbeddingModel     = "text-embedding-3-small"
	defaultEmbeddingDimension = 1536
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	databaseURL := os.Getenv("DATABASE_URL")
	environment := os.Getenv("ENVIRONMENT")

	if openaiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	model := os.Getenv("EMBEDDING_MODEL")
	if model == "" {
		model = defaultEmbeddingModel
	}

	dimension := defaultEmbeddingDimension

	if dimStr := os.Getenv("EMBEDDING_DIMENSION"); dimStr != "" {
		val, err := strconv.Atoi(dimStr)
		if err != nil || val <= 0 {
			return nil, fmt.Errorf("EMBEDDING_DIMENSION must be a positive integer, got %q", dimStr)
		}

		dimension = val
	}

	return &Config{
		OpenAIKey:          openaiKey,
		DatabaseURL:        databaseURL,
		EmbeddingModel:     model,
		EmbeddingDimension: dimension,
		Environment:        environment,
	}, nil
}

package config

type Config struct {
	OpenAIKey          string
	DatabaseURL        string
	EmbeddingModel     string
	EmbeddingDimension int
	Environment        string
}

type Flags struct {
	OwnerID    string
	All        bool
	ClearCache bool
}

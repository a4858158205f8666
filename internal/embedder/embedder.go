package embedder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"strings"
	"time"

	"codeberg.org/resumatch/server/internal/logger"
	"codeberg.org/resumatch/server/internal/normalizer"
	"golang.org/x/time/rate"
)

const (
	defaultEmbeddingsURL = "https://api.openai.com/v1/embeddings"
	defaultModel         = "text-embedding-3-small"
	defaultDimension     = 1536

	// number of leading characters of the original text used for the cache key
	cacheKeyPrefixLen = 200

	// 429 is the only retried failure class
	maxRetries = 3
)

// backoff between 429 retries, indexed by attempt
var backoffSchedule = []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second}

// shared HTTP client for embedding API calls
// reuses connection pool and timeout configuration
var embeddingHTTPClient = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// local request budget ahead of the remote endpoint's own limit
// (3 requests/second with burst capacity of 3)
var embeddingRateLimiter = rate.NewLimiter(3, 3)

type embeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

type Config struct {
	APIKey    string
	BaseURL   string // defaults to the OpenAI embeddings endpoint
	Model     string // e.g., "text-embedding-3-small"
	Dimension int    // expected output dimension for the model
}

// Client generates embeddings through a remote model endpoint, checking
// the injected cache before every network call.
type Client struct {
	config     Config
	httpClient *http.Client
	cache      *Cache
	normalizer *normalizer.Normalizer
	limiter    *rate.Limiter
	sleep      func(time.Duration)
}

func NewClient(config Config, cache *Cache, norm *normalizer.Normalizer) *Client {
	if config.BaseURL == "" {
		config.BaseURL = defaultEmbeddingsURL
	}

	if config.Model == "" {
		config.Model = defaultModel
	}

	if config.Dimension == 0 {
		config.Dimension = defaultDimension
	}

	return &Client{
		config:     config,
		httpClient: embeddingHTTPClient,
		cache:      cache,
		normalizer: norm,
		limiter:    embeddingRateLimiter,
		sleep:      time.Sleep,
	}
}

// returns the cache backing this client
func (c *Client) Cache() *Cache {
	return c.cache
}

// returns the model identity and dimension tag used in cache keys
func (c *Client) ModelTag() string {
	return fmt.Sprintf("%s:%d", c.config.Model, c.config.Dimension)
}

// derives the cache key from the first 200 characters of the original
// (pre-normalization) text plus the model/dimension tag
func (c *Client) cacheKey(text string) string {
	prefix := text
	if len(prefix) > cacheKeyPrefixLen {
		prefix = prefix[:cacheKeyPrefixLen]
	}

	h := fnv.New64a()
	h.Write([]byte(prefix))       //nolint:errcheck,gosec // hash.Hash never errors
	h.Write([]byte{0})            //nolint:errcheck,gosec // separator
	h.Write([]byte(c.ModelTag())) //nolint:errcheck,gosec // hash.Hash never errors

	return fmt.Sprintf("%x", h.Sum64())
}

// generates an embedding for the given text. The cache is consulted
// before normalization or any network call. On HTTP 429 the request is
// retried up to 3 times with exponential backoff; every other failure
// surfaces immediately. Callers must treat any error as "no embedding
// produced" and proceed without one.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	key := c.cacheKey(text)

	if vec, ok := c.cache.Get(key); ok {
		return vec, nil
	}

	input := c.normalizer.Normalize(text)
	if input == "" {
		return nil, ErrEmptyInput
	}

	vec, err := c.requestEmbedding(ctx, input)
	if err != nil {
		return nil, err
	}

	// soft validation: downstream scoring guards against mismatches,
	// so accept an anomalous dimension rather than discard usable data
	if len(vec) != c.config.Dimension {
		logger.Warn("embedding dimension mismatch",
			"model", c.config.Model,
			"expected", c.config.Dimension,
			"got", len(vec),
		)
	}

	c.cache.Put(key, vec)

	return vec, nil
}

func (c *Client) requestEmbedding(ctx context.Context, input string) ([]float32, error) {
	reqBody := embeddingRequest{
		Model: c.config.Model,
		Input: input,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, "POST", c.config.BaseURL, bytes.NewReader(jsonData))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to send request: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close() //nolint:errcheck,gosec // drained on retry path

			if attempt >= maxRetries {
				return nil, ErrRateLimited
			}

			logger.Warn("embedding endpoint rate limited, backing off",
				"attempt", attempt+1,
				"delay", backoffSchedule[attempt].String(),
			)
			c.sleep(backoffSchedule[attempt])

			continue
		}

		vec, err := decodeEmbedding(resp)
		if err != nil {
			return nil, err
		}

		return vec, nil
	}
}

func decodeEmbedding(resp *http.Response) ([]float32, error) {
	defer resp.Body.Close() //nolint:errcheck,gosec

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var embResp embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&embResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(embResp.Data) == 0 || len(embResp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}

	return embResp.Data[0].Embedding, nil
}

package embedder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"codeberg.org/resumatch/server/internal/normalizer"
	"golang.org/x/time/rate"
)

// builds a client pointed at a test server, with the throttle and
// backoff sleeps neutralized
func newTestClient(t *testing.T, baseURL string, dimension int) *Client {
	t.Helper()

	c := NewClient(Config{
		APIKey:    "test-key",
		BaseURL:   baseURL,
		Model:     "test-model",
		Dimension: dimension,
	}, NewCache(10), normalizer.New(normalizer.DefaultVocabulary()))

	c.limiter = rate.NewLimiter(rate.Inf, 0)
	c.sleep = func(time.Duration) {}

	return c
}

func embeddingHandler(vec []float32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"data": []map[string]any{{"embedding": vec}},
		}
		json.NewEncoder(w).Encode(resp) //nolint:errcheck,gosec
	}
}

func TestEmbedEmptyInput(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)

	for _, input := range []string{"", "   ", "\n"} {
		_, err := c.Embed(context.Background(), input)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Embed(%q) error = %v, want ErrEmptyInput", input, err)
		}
	}

	if calls.Load() != 0 {
		t.Errorf("empty input must fail fast, got %d remote calls", calls.Load())
	}
}

func TestEmbedSuccess(t *testing.T) {
	srv := httptest.NewServer(embeddingHandler([]float32{0.1, 0.2, 0.3}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)

	vec, err := c.Embed(context.Background(), "skills in Go and distributed systems")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(vec) != 3 {
		t.Errorf("len(vec) = %d, want 3", len(vec))
	}
}

func TestEmbedCacheHitSkipsNetwork(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		embeddingHandler([]float32{1, 2, 3})(w, r)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)

	text := "skills in Go"

	if _, err := c.Embed(context.Background(), text); err != nil {
		t.Fatalf("first embed failed: %v", err)
	}

	if _, err := c.Embed(context.Background(), text); err != nil {
		t.Fatalf("second embed failed: %v", err)
	}

	if calls.Load() != 1 {
		t.Errorf("remote calls = %d, want 1 (second call served from cache)", calls.Load())
	}
}

func TestEmbedRetriesOn429(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}

		embeddingHandler([]float32{1, 2, 3})(w, r)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)

	var delays []time.Duration
	c.sleep = func(d time.Duration) { delays = append(delays, d) }

	vec, err := c.Embed(context.Background(), "skills in Go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(vec) != 3 {
		t.Errorf("len(vec) = %d, want 3", len(vec))
	}

	if calls.Load() != 3 {
		t.Errorf("remote calls = %d, want 3", calls.Load())
	}

	want := []time.Duration{2 * time.Second, 4 * time.Second}
	if len(delays) != len(want) {
		t.Fatalf("backoff delays = %v, want %v", delays, want)
	}

	for i := range want {
		if delays[i] != want[i] {
			t.Errorf("delay[%d] = %v, want %v", i, delays[i], want[i])
		}
	}
}

func TestEmbedRateLimitExhausted(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)

	_, err := c.Embed(context.Background(), "skills in Go")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("error = %v, want ErrRateLimited", err)
	}

	// initial attempt plus 3 retries
	if calls.Load() != 4 {
		t.Errorf("remote calls = %d, want 4", calls.Load())
	}
}

func TestEmbedServerErrorFailsImmediately(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)

	_, err := c.Embed(context.Background(), "skills in Go")

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v, want *RequestError", err)
	}

	if reqErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", reqErr.StatusCode)
	}

	// only 429 is retried
	if calls.Load() != 1 {
		t.Errorf("remote calls = %d, want 1", calls.Load())
	}
}

func TestEmbedDimensionMismatchSoftAccepted(t *testing.T) {
	srv := httptest.NewServer(embeddingHandler([]float32{1, 2}))
	defer srv.Close()

	// expected dimension 3, endpoint returns 2
	c := newTestClient(t, srv.URL, 3)

	vec, err := c.Embed(context.Background(), "skills in Go")
	if err != nil {
		t.Fatalf("dimension anomaly should be accepted, got error: %v", err)
	}

	if len(vec) != 2 {
		t.Errorf("len(vec) = %d, want the vector as returned", len(vec))
	}
}

func TestEmbedEmptyVectorRejected(t *testing.T) {
	srv := httptest.NewServer(embeddingHandler([]float32{}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)

	if _, err := c.Embed(context.Background(), "skills in Go"); err == nil {
		t.Fatal("expected error for empty embedding vector")
	}
}

func TestEmbedNormalizedTextSentToEndpoint(t *testing.T) {
	var gotInput string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model string `json:"model"`
			Input string `json:"input"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}

		gotInput = req.Input
		embeddingHandler([]float32{1, 2, 3})(w, r)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)

	if _, err := c.Embed(context.Background(), "Skills: Go, SQL"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the endpoint receives the sectioned representation, not raw text
	if gotInput == "" || gotInput == "Skills: Go, SQL" {
		t.Errorf("expected normalized input, got %q", gotInput)
	}
}

func TestCacheKeyUsesPrefixAndModelTag(t *testing.T) {
	c := newTestClient(t, "http://unused", 3)

	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}

	keyA := c.cacheKey(string(long) + "tail-one")
	keyB := c.cacheKey(string(long) + "tail-two")

	// differences beyond the first 200 chars do not change the key
	if keyA != keyB {
		t.Error("cache key should depend only on the 200-char prefix")
	}

	other := NewClient(Config{
		APIKey:    "test-key",
		Model:     "other-model",
		Dimension: 3,
	}, NewCache(10), normalizer.New(normalizer.DefaultVocabulary()))

	if c.cacheKey("same text") == other.cacheKey("same text") {
		t.Error("cache key must include the model/dimension tag")
	}
}

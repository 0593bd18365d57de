package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func completionBody(content string) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return body
}

func newTestClient(url string) *Client {
	return NewClient(ClientOptions{
		BaseURL: url,
		APIKey:  "test-key",
		Retry: RetryPolicy{
			MaxAttempts: 3,
			BaseDelay:   time.Millisecond,
		},
		RateLimit: rate.Inf,
	})
}

func TestChatCompletionSuccess(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Messages, 2)

		w.Write(completionBody("generierter Text"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	content, err := client.ChatCompletion(context.Background(), "google/gemini-2.5-flash", []Message{
		{Role: "system", Content: "Du bist SEO-Texter."},
		{Role: "user", Content: "Schreibe etwas."},
	})

	require.NoError(t, err)
	assert.Equal(t, "generierter Text", content)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestChatCompletionRetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write(completionBody("nach zwei Fehlversuchen"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	content, err := client.ChatCompletion(context.Background(), "", []Message{{Role: "user", Content: "x"}})

	require.NoError(t, err)
	assert.Equal(t, "nach zwei Fehlversuchen", content)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestChatCompletionExhaustsRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ChatCompletion(context.Background(), "", []Message{{Role: "user", Content: "x"}})

	assert.ErrorIs(t, err, ErrGatewayFailed)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

// Rate-limit responses must not be retried: the provider asked us to back
// off, and hammering it again only extends the penalty.
func TestChatCompletionRateLimitFailsFast(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ChatCompletion(context.Background(), "", []Message{{Role: "user", Content: "x"}})

	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestChatCompletionPaymentRequiredFailsFast(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ChatCompletion(context.Background(), "", []Message{{Role: "user", Content: "x"}})

	assert.ErrorIs(t, err, ErrPaymentRequired)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestChatCompletionEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ChatCompletion(context.Background(), "", []Message{{Role: "user", Content: "x"}})
	assert.Error(t, err)
}

func TestBackoffDoubles(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 3, BaseDelay: 2 * time.Second}
	assert.Equal(t, 2*time.Second, policy.Backoff(1))
	assert.Equal(t, 4*time.Second, policy.Backoff(2))
	assert.Equal(t, 8*time.Second, policy.Backoff(3))
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status    int
		retryable bool
		err       error
	}{
		{http.StatusTooManyRequests, false, ErrRateLimited},
		{http.StatusPaymentRequired, false, ErrPaymentRequired},
		{http.StatusInternalServerError, true, ErrGatewayFailed},
		{http.StatusServiceUnavailable, true, ErrGatewayFailed},
		{http.StatusBadRequest, false, ErrGatewayFailed},
	}

	for _, tt := range tests {
		cls := classifyStatus(tt.status)
		assert.Equal(t, tt.retryable, cls.Retry, "status %d", tt.status)
		assert.ErrorIs(t, cls.Err, tt.err, "status %d", tt.status)
	}
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	// 35 characters at 3.5 chars per token.
	assert.Equal(t, 10, EstimateTokens(string(make([]byte, 35))))
}

func TestLookupModelFallback(t *testing.T) {
	known := LookupModel("google/gemini-2.5-pro")
	assert.Equal(t, "google/gemini-2.5-pro", known.ID)

	unknown := LookupModel("acme/imaginary-model")
	assert.Equal(t, DefaultModelID, unknown.ID)
}

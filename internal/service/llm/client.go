package llm

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/time/rate"
)

// Completer is the gateway surface the orchestrator depends on. It is the
// only component performing outbound network I/O to the AI provider.
type Completer interface {
	ChatCompletion(ctx context.Context, modelID string, messages []Message) (string, error)
}

// Message represents a single message in a chat-completion exchange.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is the request body sent to the gateway.
type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

// ChatCompletionResponse is the subset of the gateway response we consume.
type ChatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// Client talks to the AI gateway's chat-completions endpoint with caching,
// rate limiting and a typed retry policy.
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	retry       RetryPolicy
	limiter     *rate.Limiter
	redisClient *redis.Client
	cacheTTL    time.Duration
	logger      Logger
}

// ClientOptions contains configuration for the gateway client.
type ClientOptions struct {
	BaseURL     string
	APIKey      string
	HTTPTimeout time.Duration
	Retry       RetryPolicy
	RateLimit   rate.Limit
	RateBurst   int
	RedisClient *redis.Client
	CacheTTL    time.Duration
	Logger      Logger
}

// NewClient creates a gateway client with the specified options.
func NewClient(opts ClientOptions) *Client {
	if opts.HTTPTimeout == 0 {
		opts.HTTPTimeout = 120 * time.Second
	}
	if opts.Retry.MaxAttempts == 0 {
		opts.Retry = DefaultRetryPolicy()
	}
	if opts.Retry.Classify == nil {
		opts.Retry.Classify = classifyStatus
	}
	if opts.RateLimit == 0 {
		opts.RateLimit = rate.Limit(10)
	}
	if opts.RateBurst == 0 {
		opts.RateBurst = 1
	}
	if opts.CacheTTL == 0 {
		opts.CacheTTL = 24 * time.Hour
	}
	if opts.Logger == nil {
		opts.Logger = NewDefaultLogger()
	}

	return &Client{
		baseURL:     opts.BaseURL,
		apiKey:      opts.APIKey,
		httpClient:  &http.Client{Timeout: opts.HTTPTimeout},
		retry:       opts.Retry,
		limiter:     rate.NewLimiter(opts.RateLimit, opts.RateBurst),
		redisClient: opts.RedisClient,
		cacheTTL:    opts.CacheTTL,
		logger:      opts.Logger,
	}
}

// ChatCompletion sends the messages to the gateway and returns the raw text
// of the first choice. Transient upstream failures are retried with
// exponential backoff; rate-limit and billing failures are surfaced
// immediately so the caller can propagate them unchanged.
func (c *Client) ChatCompletion(ctx context.Context, modelID string, messages []Message) (string, error) {
	model := LookupModel(modelID)

	cacheKey := c.cacheKey(model.Name, messages)
	if c.redisClient != nil {
		if cached, err := c.redisClient.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			c.logger.Debug("Cache hit for chat completion", "model", model.Name)
			return cached, nil
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGatewayFailed, err)
	}

	var content string
	var lastErr error

	for attempt := 1; attempt <= c.retry.MaxAttempts; attempt++ {
		if attempt > 1 {
			c.logger.Info("Retrying gateway request",
				"attempt", attempt,
				"model", model.Name)

			select {
			case <-time.After(c.retry.Backoff(attempt - 1)):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		var statusCode int
		content, statusCode, lastErr = c.doRequest(ctx, model, messages)
		if lastErr == nil {
			break
		}

		c.logger.Error("Gateway request failed",
			"error", lastErr,
			"status", statusCode,
			"model", model.Name,
			"attempt", attempt)

		// Network-level errors are treated like 5xx.
		cls := Classification{Retry: true, Err: ErrGatewayFailed}
		if statusCode != 0 {
			cls = c.retry.Classify(statusCode)
		}
		if !cls.Retry {
			return "", fmt.Errorf("%w: %v", cls.Err, lastErr)
		}
	}

	if lastErr != nil {
		return "", fmt.Errorf("%w: %v", ErrGatewayFailed, lastErr)
	}

	usage := c.estimateUsage(model, messages, content)
	c.logger.Info("Chat completion succeeded",
		"model", model.Name,
		"prompt_tokens", usage.PromptTokens,
		"completion_tokens", usage.CompletionTokens,
		"cost_usd", usage.Cost)

	if c.redisClient != nil && content != "" {
		if err := c.redisClient.Set(ctx, cacheKey, content, c.cacheTTL).Err(); err != nil {
			c.logger.Error("Failed to cache gateway response", "error", err)
		}
	}

	return content, nil
}

// doRequest performs a single HTTP exchange with the gateway. The returned
// status code is zero for transport-level failures.
func (c *Client) doRequest(ctx context.Context, model ModelConfig, messages []Message) (string, int, error) {
	body, err := json.Marshal(ChatCompletionRequest{
		Model:       model.Name,
		Messages:    messages,
		Temperature: model.Temperature,
	})
	if err != nil {
		return "", 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", resp.StatusCode, fmt.Errorf("gateway returned %s: %s", resp.Status, string(detail))
	}

	var result ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", resp.StatusCode, err
	}
	if len(result.Choices) == 0 {
		return "", resp.StatusCode, ErrEmptyResponse
	}

	return result.Choices[0].Message.Content, resp.StatusCode, nil
}

func (c *Client) cacheKey(modelName string, messages []Message) string {
	h := sha256.New()
	h.Write([]byte(modelName))
	for _, m := range messages {
		h.Write([]byte(m.Role))
		h.Write([]byte{0})
		h.Write([]byte(m.Content))
		h.Write([]byte{0})
	}
	return "llm:chat:" + hex.EncodeToString(h.Sum(nil))
}

func (c *Client) estimateUsage(model ModelConfig, messages []Message, content string) Usage {
	prompt := 0
	for _, m := range messages {
		prompt += EstimateTokens(m.Content)
	}
	completion := EstimateTokens(content)

	return Usage{
		PromptTokens:     prompt,
		CompletionTokens: completion,
		Cost:             model.Cost(prompt, completion),
	}
}

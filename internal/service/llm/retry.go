package llm

import "time"

// RetryPolicy decides how gateway failures are handled. The constants are
// configurable because the backoff base and attempt cap carry no hard
// requirement beyond "do not hammer a failing upstream".
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Classify    func(statusCode int) Classification
}

// Classification is the verdict for one failed attempt.
type Classification struct {
	Retry bool
	Err   error
}

// DefaultRetryPolicy retries server-side failures up to three attempts with
// exponential backoff and fails fast on rate-limit and billing errors.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   2 * time.Second,
		Classify:    classifyStatus,
	}
}

// classifyStatus maps an HTTP status from the gateway to a retry verdict.
// 429 and 402 are passed through so the caller can react (its own backoff,
// billing UI); retrying them would only make things worse.
func classifyStatus(statusCode int) Classification {
	switch {
	case statusCode == 429:
		return Classification{Retry: false, Err: ErrRateLimited}
	case statusCode == 402:
		return Classification{Retry: false, Err: ErrPaymentRequired}
	case statusCode >= 500:
		return Classification{Retry: true, Err: ErrGatewayFailed}
	default:
		return Classification{Retry: false, Err: ErrGatewayFailed}
	}
}

// Backoff returns the delay before the given retry (1-based: the delay
// preceding attempt n+1). Doubles per attempt: base, 2*base, 4*base, ...
func (p RetryPolicy) Backoff(retry int) time.Duration {
	return p.BaseDelay * time.Duration(1<<uint(retry-1))
}

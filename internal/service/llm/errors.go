package llm

import "errors"

// Common errors returned by the gateway client. Handlers map these to HTTP
// statuses with errors.Is.
var (
	ErrRateLimited     = errors.New("ai gateway rate limit exceeded")
	ErrPaymentRequired = errors.New("ai gateway credits exhausted")
	ErrGatewayFailed   = errors.New("ai gateway request failed")
	ErrEmptyResponse   = errors.New("ai gateway returned no content")
)

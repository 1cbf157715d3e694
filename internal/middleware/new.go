package middleware

import (
	"inventory-tracker/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin caps mutating requests per
// client IP; zero or negative disables limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	var limiter *rateLimiter
	if requestsPerMin > 0 {
		limiter = newRateLimiter(requestsPerMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}

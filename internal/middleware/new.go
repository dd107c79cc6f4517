package middleware

import (
	"event-task-suggester/config"
	"event-task-suggester/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, rlCfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(rlCfg.RequestsPerMin),
	}
}

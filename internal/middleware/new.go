package middleware

import "daily-planner/pkg/log"

type Config struct {
	RateLimitPerMin int // Requests per client per minute; <= 0 disables limiting
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}

package rest

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/speedmeet/internal/common/clock"
	"github.com/KirkDiggler/speedmeet/internal/services/messaging"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// tokenBucketScript refills KEYS[1] by whole intervals and takes one token.
// Returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local interval_ms = tonumber(ARGV[3])
local ttl_seconds = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

local elapsed = math.max(0, now_ms - last_refill)
local intervals = math.floor(elapsed / interval_ms)
if intervals > 0 then
	tokens = math.min(capacity, tokens + intervals)
	last_refill = last_refill + (intervals * interval_ms)
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

// RateLimitConfig configures the per-client token bucket
type RateLimitConfig struct {
	RedisClient *redis.Client
	Clock       clock.Clock

	// Messages renders the 429 detail
	Messages messaging.Service

	// Requests is the bucket size; one token comes back every Window/Requests
	Requests int
	Window   time.Duration

	// Prefix namespaces the bucket keys
	Prefix string
}

// NewRateLimiter returns middleware that limits each client IP per route.
// Redis failures let the request through.
func NewRateLimiter(cfg *RateLimitConfig) (echo.MiddlewareFunc, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.Messages == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Requests < 1 || cfg.Window <= 0 {
		return nil, errors.New("requests and window must be positive")
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "rl"
	}

	interval := cfg.Window / time.Duration(cfg.Requests)
	if interval < time.Millisecond {
		interval = time.Millisecond
	}

	// Keep idle buckets long enough to refill completely
	ttl := int64(math.Ceil(cfg.Window.Seconds()))
	if ttl < 1 {
		ttl = 1
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := rateKey(prefix, c)
			ctx := c.Request().Context()

			vals, err := tokenBucketScript.Run(ctx, cfg.RedisClient, []string{key},
				cfg.Clock.Now().UnixMilli(),
				cfg.Requests,
				interval.Milliseconds(),
				ttl,
			).Int64Slice()
			if err != nil || len(vals) != 3 {
				log.Printf("Rate limiter unavailable for %s: %v", key, err)
				return next(c)
			}

			allowed, remaining, retryMs := vals[0] == 1, vals[1], vals[2]

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Requests))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if !allowed {
				secs := int(math.Ceil(float64(retryMs) / 1000.0))
				c.Response().Header().Set("Retry-After", strconv.Itoa(secs))

				msg, err := cfg.Messages.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
					ErrorType: messaging.ErrorTypeRateLimited,
				})
				if err != nil {
					return err
				}
				return c.JSON(http.StatusTooManyRequests, errorResponse{Detail: msg.Detail})
			}

			return next(c)
		}
	}, nil
}

func rateKey(prefix string, c echo.Context) string {
	ip := c.RealIP()
	if ip == "" {
		ip = "unknown"
	}
	return strings.Join([]string{prefix, "ip", ip, "route", c.Request().Method + " " + c.Path()}, ":")
}

// Package ratelimit provides a redis-backed sliding-window request limiter
// for the generation endpoints.
package ratelimit

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/sketchboard/ai-backend/internal/config"
	"github.com/sketchboard/ai-backend/internal/models"
)

type Limiter struct {
	logger *log.Logger
	client *redis.Client
	limit  int
	window time.Duration
}

func NewLimiter(logger *log.Logger, cfg config.RateLimitConfig) *Limiter {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Limiter{
		logger: logger,
		client: rdb,
		limit:  cfg.Limit,
		window: cfg.Window,
	}
}

func (l *Limiter) Limit() int { return l.limit }

// Allow records the request and reports whether it fits in the current
// window (sliding window over a sorted set).
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now().UnixMilli()
	windowStart := now - l.window.Milliseconds()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	countCmd := pipe.ZCard(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	if countCmd.Val() >= int64(l.limit) {
		return false, nil
	}

	l.client.ZAdd(ctx, key, redis.Z{
		Score:  float64(now),
		Member: strconv.FormatInt(now, 10),
	})
	l.client.Expire(ctx, key, l.window*2)
	return true, nil
}

// Remaining reports the unused quota in the current window.
func (l *Limiter) Remaining(ctx context.Context, key string) (int, error) {
	now := time.Now().UnixMilli()
	windowStart := now - l.window.Milliseconds()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	countCmd := pipe.ZCard(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	remaining := l.limit - int(countCmd.Val())
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// Middleware throttles by client IP and endpoint. Redis errors fail open:
// the limiter protects upstream quota, it must not take the service down.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		key := RequestKey(r)
		allowed, err := l.Allow(r.Context(), key)
		if err != nil {
			l.logger.Printf("rate limiter error: %v\n", err)
			next.ServeHTTP(w, r)
			return
		}

		remaining, err := l.Remaining(r.Context(), key)
		if err == nil {
			w.Header().Set("X-Ratelimit-Limit", strconv.Itoa(l.limit))
			w.Header().Set("X-Ratelimit-Remaining", strconv.Itoa(remaining))
		}

		if !allowed {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			body, _ := sonic.Marshal(models.RateLimitedBody{
				StatusCode: http.StatusTooManyRequests,
				Message:    models.RateLimitMessage,
			})
			w.Write(body)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequestKey builds the limiter key from the client IP and endpoint.
func RequestKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return fmt.Sprintf("ratelimit:%s:%s", host, r.URL.Path)
}

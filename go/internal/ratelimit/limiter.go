// Package ratelimit throttles public lookups per client IP.
package ratelimit

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"connectrpc.com/connect"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	// cleanupThreshold is the minimum map size before a cleanup pass runs.
	cleanupThreshold = 500
	// maxIdleAge is how long an IP may stay idle before its entry is pruned.
	maxIdleAge = 10 * time.Minute
)

// ErrLimited is returned to callers that exceeded their budget.
var ErrLimited = errors.New("too many requests")

type ipEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per client IP and prunes idle entries
// inline once the map grows past cleanupThreshold.
type IPRateLimiter struct {
	mu    sync.Mutex
	ips   map[string]*ipEntry
	r     rate.Limit
	b     int
	clock clockwork.Clock
}

// NewIPRateLimiter creates a limiter allowing r requests per second with
// bursts of b for each IP.
func NewIPRateLimiter(r rate.Limit, b int, clock clockwork.Clock) *IPRateLimiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &IPRateLimiter{
		ips:   make(map[string]*ipEntry),
		r:     r,
		b:     b,
		clock: clock,
	}
}

// Allow reports whether ip may make another request now.
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	if len(l.ips) > cleanupThreshold {
		cutoff := now.Add(-maxIdleAge)
		for k, e := range l.ips {
			if e.lastSeen.Before(cutoff) {
				delete(l.ips, k)
			}
		}
	}

	e, ok := l.ips[ip]
	if !ok {
		e = &ipEntry{limiter: rate.NewLimiter(l.r, l.b)}
		l.ips[ip] = e
	}
	e.lastSeen = now

	return e.limiter.AllowN(now, 1)
}

// Len returns the number of tracked IPs.
func (l *IPRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.ips)
}

// Interceptor rejects calls to the listed procedures with
// CodeResourceExhausted once the caller's IP is over budget. Other
// procedures pass through untouched.
func Interceptor(l *IPRateLimiter, procedures ...string) connect.UnaryInterceptorFunc {
	limited := make(map[string]struct{}, len(procedures))
	for _, p := range procedures {
		limited[p] = struct{}{}
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if _, ok := limited[req.Spec().Procedure]; !ok || req.Spec().IsClient {
				return next(ctx, req)
			}

			ip := clientIP(req.Peer().Addr)
			if !l.Allow(ip) {
				log.Warn().Str("ip", ip).Str("procedure", req.Spec().Procedure).Msg("rate limited")
				return nil, connect.NewError(connect.CodeResourceExhausted, ErrLimited)
			}
			return next(ctx, req)
		}
	}
}

func clientIP(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

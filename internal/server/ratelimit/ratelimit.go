// Package ratelimit limits requests per client and route with token buckets.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/jonathan/priority-matching/internal/config"
)

// Rule overrides the default limit for one route. A Path ending in "/"
// matches every path under it. A Limit of zero means unlimited.
type Rule struct {
	Method string
	Path   string
	Limit  int
	Window time.Duration
	Burst  int // defaults to Limit when zero
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	Rules           []Rule
}

// NewConfig builds a Config from environment options with the default rules.
func NewConfig(opts config.RateLimitOptions) *Config {
	return &Config{
		Enabled:         opts.Enabled,
		DefaultLimit:    opts.DefaultLimit,
		DefaultWindow:   opts.DefaultWindow,
		CleanupInterval: opts.CleanupInterval,
		Whitelist:       toSet(opts.Whitelist),
		Blacklist:       toSet(opts.Blacklist),
		Rules:           DefaultRules(),
	}
}

// DefaultRules returns the per-route limits of the service.
func DefaultRules() []Rule {
	return []Rule{
		{Method: "GET", Path: "/health"},
		{Method: "GET", Path: "/metrics"},
		// Credential guessing.
		{Method: "POST", Path: "/auth/login", Limit: 10, Window: time.Minute, Burst: 5},
		// Every willingness submission is a write.
		{Method: "POST", Path: "/me/willingness", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

// MatchRule returns the rule for a request, preferring an exact path match
// over a prefix match. Returns nil when no rule applies.
func MatchRule(method, path string, rules []Rule) *Rule {
	for i := range rules {
		if rules[i].Method == method && rules[i].Path == path {
			return &rules[i]
		}
	}
	for i := range rules {
		r := &rules[i]
		if r.Method == method && len(r.Path) > 1 && r.Path[len(r.Path)-1] == '/' &&
			len(path) >= len(r.Path) && path[:len(r.Path)] == r.Path {
			return r
		}
	}
	return nil
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages one token bucket per client and route.
type Limiter struct {
	config *Config
	now    func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

// NewLimiter creates a new rate limiter. A nil config allows 1000 requests a
// minute per client and route.
func NewLimiter(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}
	return &Limiter{
		config:  cfg,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

// Allow consumes a token for the client on the given route.
func (l *Limiter) Allow(clientID, method, path string) Info {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return Info{Allowed: false}
	}

	rule := MatchRule(method, path, l.config.Rules)
	if rule == nil {
		rule = &Rule{Limit: l.config.DefaultLimit, Window: l.config.DefaultWindow}
	}
	if rule.Limit <= 0 || rule.Window <= 0 {
		return Info{Allowed: true}
	}

	// Prefix rules share one bucket across the paths they cover.
	key := clientID + " " + method + " " + path
	if rule.Path != "" {
		key = clientID + " " + method + " " + rule.Path
	}

	now := l.now()
	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		burst := rule.Burst
		if burst <= 0 {
			burst = rule.Limit
		}
		b = newBucket(burst, float64(rule.Limit)/rule.Window.Seconds(), now)
		l.buckets[key] = b
	}
	allowed, remaining, wait, full := b.take(now)
	l.mu.Unlock()

	info := Info{
		Allowed:   allowed,
		Limit:     rule.Limit,
		Remaining: remaining,
		ResetTime: now.Add(full),
	}
	if !allowed {
		info.RetryAfter = wait
	}
	return info
}

// Sweep drops buckets idle since before cutoff and returns how many were removed.
func (l *Limiter) Sweep(cutoff time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, b := range l.buckets {
		if b.last.Before(cutoff) {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}

// Run sweeps idle buckets every CleanupInterval until ctx is done.
func (l *Limiter) Run(ctx context.Context) {
	if !l.config.Enabled || l.config.CleanupInterval <= 0 {
		return
	}
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep(l.now().Add(-time.Hour))
		}
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if v != "" {
			set[v] = true
		}
	}
	return set
}

package ratelimit

import (
	"math"
	"time"
)

// bucket is a token bucket. It is not safe for concurrent use; the Limiter
// serializes access.
type bucket struct {
	capacity float64
	rate     float64 // tokens per second
	tokens   float64
	last     time.Time
}

func newBucket(capacity int, rate float64, now time.Time) *bucket {
	return &bucket{
		capacity: float64(capacity),
		rate:     rate,
		tokens:   float64(capacity),
		last:     now,
	}
}

func (b *bucket) refill(now time.Time) {
	if elapsed := now.Sub(b.last); elapsed > 0 {
		b.tokens = math.Min(b.capacity, b.tokens+elapsed.Seconds()*b.rate)
	}
	b.last = now
}

// take consumes one token if available. It returns the tokens left, the wait
// until the next token, and the time until the bucket is full again.
func (b *bucket) take(now time.Time) (allowed bool, remaining int, wait, full time.Duration) {
	b.refill(now)
	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	}

	remaining = int(b.tokens)
	if b.tokens < 1 {
		wait = b.duration(1 - b.tokens)
	}
	full = b.duration(b.capacity - b.tokens)
	return allowed, remaining, wait, full
}

func (b *bucket) duration(tokens float64) time.Duration {
	if b.rate <= 0 || tokens <= 0 {
		return 0
	}
	return time.Duration(tokens / b.rate * float64(time.Second))
}

package rate_limiter

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Definition describes the write throttling applied to a sink
type Definition struct {
	// the limiter name
	Name string
	// the actual limiter config
	FillRate   rate.Limit
	BucketSize int64
	// the max concurrent writes supported
	MaxConcurrency int64
}

func (d *Definition) String() string {
	limiterString := ""
	concurrencyString := ""
	if d.FillRate > 0 {
		limiterString = fmt.Sprintf("Limit(/s): %v, Burst: %d", d.FillRate, d.BucketSize)
	}
	if d.MaxConcurrency > 0 {
		concurrencyString = fmt.Sprintf("MaxConcurrency: %d", d.MaxConcurrency)
	}
	return strings.Join([]string{limiterString, concurrencyString}, " ")
}

func (d *Definition) Validate() []string {
	var validationErrors []string
	if d.Name == "" {
		validationErrors = append(validationErrors, "rate limiter definition must specify a name")
	}
	if (d.FillRate == 0 || d.BucketSize == 0) && d.MaxConcurrency == 0 {
		validationErrors = append(validationErrors, "rate limiter definition must define either a rate limit or max concurrency")
	}
	return validationErrors
}

// WriteLimiter throttles sink writes with a token bucket and, optionally,
// bounds the number of writes in flight
type WriteLimiter struct {
	Name string

	// underlying rate limiter
	limiter *rate.Limiter
	// semaphore to control concurrency
	sem *semaphore.Weighted
}

func NewWriteLimiter(d *Definition) *WriteLimiter {
	res := &WriteLimiter{
		Name: d.Name,
	}
	if d.FillRate != 0 {
		res.limiter = rate.NewLimiter(d.FillRate, int(d.BucketSize))
	}
	if d.MaxConcurrency != 0 {
		res.sem = semaphore.NewWeighted(d.MaxConcurrency)
	}
	return res
}

// Wait blocks until a write may proceed. Every successful Wait must be
// paired with a Release.
func (l *WriteLimiter) Wait(ctx context.Context) error {
	if l.limiter != nil {
		if err := l.limiter.Wait(ctx); err != nil {
			return err
		}
	}
	if l.sem != nil {
		if err := l.sem.Acquire(ctx, 1); err != nil {
			return err
		}
	}
	return nil
}

func (l *WriteLimiter) Release() {
	if l.sem != nil {
		l.sem.Release(1)
	}
}

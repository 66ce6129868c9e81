package exporter

import (
	"github.com/plotpipe/plotpipe-sdk/rate_limiter"
)

type ExportOption func(*Exporter)

// WithFailFast aborts the export on the first render or persist failure
// instead of collecting per-group outcomes. Fail-fast exports run
// sequentially so "first" is well defined.
func WithFailFast() ExportOption {
	return func(e *Exporter) {
		e.failFast = true
	}
}

// WithMaxConcurrency renders and persists up to n groups in parallel.
// Groups are independent and destinations are verified unique up front, so
// no two workers touch the same destination. Outcome ordering still follows
// the requested key value order.
func WithMaxConcurrency(n int) ExportOption {
	return func(e *Exporter) {
		if n > 1 {
			e.maxConcurrency = n
		}
	}
}

// WithWriteLimiter throttles sink writes, e.g. to stay within a bucket
// provider's request rate
func WithWriteLimiter(l *rate_limiter.WriteLimiter) ExportOption {
	return func(e *Exporter) {
		e.writeLimiter = l
	}
}

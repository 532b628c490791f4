package http

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/runready/internal/infra/config"
)

// withRetry replays idempotent GET requests that fail with a 5xx status.
// Upstream forecast and geocoding hiccups are the usual cause.
func withRetry(handler http.Handler, cfg config.RetryConfig, logger *slog.Logger) http.Handler {
	if !cfg.Enabled || cfg.MaxAttempts <= 1 {
		return handler
	}
	exclusions := make(map[string]struct{}, len(cfg.Exclude))
	for _, path := range cfg.Exclude {
		exclusions[path] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, skip := exclusions[r.URL.Path]; skip || r.Method != http.MethodGet {
			handler.ServeHTTP(w, r)
			return
		}

		for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
			if attempt > 1 {
				delay := cfg.BaseBackoff * time.Duration(1<<(attempt-2))
				if delay > 0 {
					timer := time.NewTimer(delay)
					select {
					case <-r.Context().Done():
						timer.Stop()
						http.Error(w, r.Context().Err().Error(), http.StatusServiceUnavailable)
						return
					case <-timer.C:
					}
				}
			}

			recorder := newRetryResponseRecorder(w)
			attemptCtx := context.WithValue(r.Context(), retryAttemptKey{}, retryAttempt{n: attempt, max: cfg.MaxAttempts})
			handler.ServeHTTP(recorder, r.Clone(attemptCtx))
			if !recorder.retryable() || attempt == cfg.MaxAttempts {
				recorder.Commit()
				return
			}

			logger.Warn("transient failure, retrying request", "path", r.URL.Path, "status", recorder.statusCode, "attempt", attempt)
		}
	})
}

type retryAttemptKey struct{}

// retryAttempt tells the middleware chain which pass over a request it is
// serving.
type retryAttempt struct {
	n   int
	max int
}

func attemptFrom(ctx context.Context) (retryAttempt, bool) {
	attempt, ok := ctx.Value(retryAttemptKey{}).(retryAttempt)
	return attempt, ok
}

// replay reports whether an earlier attempt already passed the chain.
func (a retryAttempt) replay() bool {
	return a.n > 1
}

// superseded reports whether a response with status will be discarded in
// favour of another attempt.
func (a retryAttempt) superseded(status int) bool {
	return a.n < a.max && retryableStatus(status)
}

// 501 is a permanent answer and is not retried.
func retryableStatus(status int) bool {
	return status >= http.StatusInternalServerError && status != http.StatusNotImplemented
}

type retryResponseRecorder struct {
	dst        http.ResponseWriter
	header     http.Header
	body       bytes.Buffer
	statusCode int
	wroteHead  bool
}

func newRetryResponseRecorder(dst http.ResponseWriter) *retryResponseRecorder {
	return &retryResponseRecorder{
		dst:        dst,
		header:     make(http.Header),
		statusCode: http.StatusOK,
	}
}

func (r *retryResponseRecorder) Header() http.Header {
	return r.header
}

func (r *retryResponseRecorder) WriteHeader(status int) {
	if r.wroteHead {
		return
	}
	r.statusCode = status
	r.wroteHead = true
}

func (r *retryResponseRecorder) Write(b []byte) (int, error) {
	return r.body.Write(b)
}

func (r *retryResponseRecorder) Commit() {
	dstHeader := r.dst.Header()
	for k := range dstHeader {
		dstHeader.Del(k)
	}
	for k, values := range r.header {
		copied := make([]string, len(values))
		copy(copied, values)
		dstHeader[k] = copied
	}
	if !r.wroteHead {
		r.statusCode = http.StatusOK
	}
	r.dst.WriteHeader(r.statusCode)
	if r.body.Len() > 0 {
		_, _ = r.dst.Write(r.body.Bytes())
	}
}

func (r *retryResponseRecorder) retryable() bool {
	return retryableStatus(r.statusCode)
}

func (r *retryResponseRecorder) Flush() {}

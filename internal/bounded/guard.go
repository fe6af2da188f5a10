// Package bounded wraps calls to external collaborators with a timeout and
// a circuit breaker, returning a caller-supplied fallback on failure.
package bounded

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/soartv/internal/domain"
	"github.com/kailas-cloud/soartv/internal/metrics"
)

// Settings configures a Guard.
type Settings struct {
	Name string
	// Timeout bounds every call made through the guard.
	Timeout time.Duration
	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
	// HalfOpenRequests is the number of probes allowed while half-open.
	HalfOpenRequests uint32
}

// Defaults used for zero Settings fields.
const (
	DefaultTimeout          = 3 * time.Second
	DefaultFailureThreshold = 5
	DefaultOpenTimeout      = 30 * time.Second
	DefaultHalfOpenRequests = 1
)

// Guard applies one timeout and one circuit breaker to a family of calls.
type Guard struct {
	name    string
	timeout time.Duration
	cb      *gobreaker.CircuitBreaker[any]
	logger  *zap.Logger
}

// NewGuard creates a guard. A nil logger disables logging.
func NewGuard(s Settings, logger *zap.Logger) *Guard {
	if s.Timeout <= 0 {
		s.Timeout = DefaultTimeout
	}
	if s.FailureThreshold == 0 {
		s.FailureThreshold = DefaultFailureThreshold
	}
	if s.OpenTimeout <= 0 {
		s.OpenTimeout = DefaultOpenTimeout
	}
	if s.HalfOpenRequests == 0 {
		s.HalfOpenRequests = DefaultHalfOpenRequests
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &Guard{name: s.Name, timeout: s.Timeout, logger: logger}
	metrics.CircuitBreakerState.WithLabelValues(s.Name).Set(0)

	g.cb = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: s.HalfOpenRequests,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			g.logger.Warn("circuit breaker state change",
				zap.String("guard", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: isSuccessful,
	})
	return g
}

// Name returns the guard name.
func (g *Guard) Name() string { return g.name }

// State reports the breaker state.
func (g *Guard) State() gobreaker.State { return g.cb.State() }

// Open reports whether the breaker currently rejects calls.
func (g *Guard) Open() bool { return g.cb.State() == gobreaker.StateOpen }

// Call runs fn under the guard. On error, timeout or an open breaker it
// returns fallback together with the error. fn receives a context that is
// cancelled when the timeout expires; Call returns at the deadline even if
// fn does not honour it.
func Call[T any](ctx context.Context, g *Guard, op string, fallback T, fn func(ctx context.Context) (T, error)) (T, error) {
	res, err := g.cb.Execute(func() (any, error) {
		cctx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()

		type outcome struct {
			val T
			err error
		}
		done := make(chan outcome, 1)
		go func() {
			v, err := fn(cctx)
			done <- outcome{val: v, err: err}
		}()

		select {
		case o := <-done:
			return o.val, o.err
		case <-cctx.Done():
			return nil, fmt.Errorf("%s %s: %w", g.name, op, cctx.Err())
		}
	})
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			metrics.StoreFallbacksTotal.WithLabelValues(g.name, op).Inc()
			g.logger.Warn("guarded call failed, using fallback",
				zap.String("guard", g.name),
				zap.String("op", op),
				zap.Error(err),
			)
		}
		return fallback, err
	}

	val, ok := res.(T)
	if !ok {
		// fn returned a nil interface or pointer typed as T
		var zero T
		return zero, nil
	}
	return val, nil
}

// isSuccessful keeps legitimate absences and caller cancellations from tripping the breaker.
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, context.Canceled)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

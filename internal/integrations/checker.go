// Package integrations probes the health endpoints of external systems.
package integrations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/advising-studio/engine/internal/metrics"
	"github.com/advising-studio/engine/internal/models"
	"github.com/advising-studio/engine/internal/services"
	"github.com/advising-studio/engine/pkg/logger"
)

// Prober checks a single integration.
type Prober interface {
	Probe(ctx context.Context, it models.Integration) services.CheckResult
}

// ErrNoHealthURL is reported for integrations without a probe target.
var ErrNoHealthURL = errors.New("integration has no health url")

// statusError marks a reachable endpoint that answered with a failure status.
type statusError struct{ code int }

func (e statusError) Error() string { return fmt.Sprintf("health endpoint returned %d", e.code) }

// Settings tune the checker.
type Settings struct {
	Timeout     time.Duration
	MaxFailures uint32
	OpenFor     time.Duration
}

// Checker probes over HTTP. Each integration gets its own circuit breaker so
// one flapping system does not get hammered by every sweep.
type Checker struct {
	client   *http.Client
	settings Settings
	now      func() time.Time

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

func NewChecker(client *http.Client, settings Settings) *Checker {
	if client == nil {
		client = &http.Client{}
	}
	if settings.Timeout <= 0 {
		settings.Timeout = 10 * time.Second
	}
	if settings.MaxFailures == 0 {
		settings.MaxFailures = 3
	}
	if settings.OpenFor <= 0 {
		settings.OpenFor = time.Minute
	}
	return &Checker{client: client, settings: settings, now: time.Now, breakers: map[string]*gobreaker.CircuitBreaker{}}
}

var _ Prober = (*Checker)(nil)

func (c *Checker) breaker(name string) *gobreaker.CircuitBreaker {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cb, ok := c.breakers[name]; ok {
		return cb
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     c.settings.OpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= c.settings.MaxFailures
		},
		// A probe cut short by its caller says nothing about the endpoint.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
			logger.L().Warn("integration circuit state changed",
				zap.String("integration", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	c.breakers[name] = cb
	return cb
}

// Probe maps the outcome onto an integration status: 2xx/3xx healthy, other
// statuses degraded, transport failures and open circuits down.
func (c *Checker) Probe(ctx context.Context, it models.Integration) services.CheckResult {
	res := services.CheckResult{CheckedAt: c.now().UTC()}
	if it.HealthURL == "" {
		res.Status = models.IntegrationUnknown
		res.Err = ErrNoHealthURL
		return res
	}

	start := c.now()
	code, err := c.breaker(it.Name).Execute(func() (interface{}, error) {
		return c.get(ctx, it.HealthURL)
	})
	if n, ok := code.(int); ok && n > 0 {
		res.Details = map[string]any{
			"http_status": n,
			"latency_ms":  c.now().Sub(start).Milliseconds(),
		}
	}

	var se statusError
	switch {
	case err == nil:
		res.Status = models.IntegrationHealthy
	case errors.As(err, &se):
		res.Status = models.IntegrationDegraded
		res.Err = err
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		res.Status = models.IntegrationDown
		res.Err = fmt.Errorf("circuit open: %w", err)
	default:
		res.Status = models.IntegrationDown
		res.Err = err
	}
	metrics.IntegrationChecks.WithLabelValues(it.Name, res.Status).Inc()
	return res
}

// get returns the response status code alongside any failure so callers can
// record it even when the endpoint reports an error.
func (c *Checker) get(ctx context.Context, url string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.settings.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build health request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode >= http.StatusBadRequest {
		return resp.StatusCode, statusError{code: resp.StatusCode}
	}
	return resp.StatusCode, nil
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

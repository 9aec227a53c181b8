package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"monetrix-dashboard/internal/models"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

type CircuitBreakerConfig struct {
	Name            string
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
	// OnStateChange is called outside the breaker lock after every transition.
	OnStateChange func(name string, from, to models.CircuitBreakerState)
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:            "feed_store",
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 2,
	}
}

type CircuitBreaker struct {
	mu                sync.RWMutex
	config            CircuitBreakerConfig
	state             models.CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	now               func() time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) CircuitBreakerInterface {
	return &CircuitBreaker{
		config: config,
		state:  models.CircuitBreakerClosed,
		now:    time.Now,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	from := cb.state
	if cb.state == models.CircuitBreakerOpen && cb.now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.state = models.CircuitBreakerHalfOpen
		cb.halfOpenSuccesses = 0
	}
	to := cb.state
	cb.mu.Unlock()

	cb.notify(from, to)
	return to == models.CircuitBreakerOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	from := cb.state
	switch cb.state {
	case models.CircuitBreakerHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.state = models.CircuitBreakerClosed
			cb.failures = 0
			cb.halfOpenSuccesses = 0
		}
	case models.CircuitBreakerClosed:
		cb.failures = 0
	}
	to := cb.state
	cb.mu.Unlock()

	cb.notify(from, to)
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	from := cb.state
	cb.lastFailureTime = cb.now()

	switch cb.state {
	case models.CircuitBreakerHalfOpen:
		cb.state = models.CircuitBreakerOpen
		cb.halfOpenSuccesses = 0
	case models.CircuitBreakerClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.state = models.CircuitBreakerOpen
			cb.halfOpenSuccesses = 0
		}
	}
	to := cb.state
	cb.mu.Unlock()

	cb.notify(from, to)
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	from := cb.state
	cb.state = models.CircuitBreakerClosed
	cb.failures = 0
	cb.halfOpenSuccesses = 0
	cb.mu.Unlock()

	cb.notify(from, models.CircuitBreakerClosed)
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}

func (cb *CircuitBreaker) notify(from, to models.CircuitBreakerState) {
	if from != to && cb.config.OnStateChange != nil {
		cb.config.OnStateChange(cb.config.Name, from, to)
	}
}

// ObserveStateChanges returns an OnStateChange hook that exports the breaker
// state as a gauge and logs every transition.
func ObserveStateChanges(metrics MetricsRecorderInterface, feedLogger FeedLoggerInterface) func(name string, from, to models.CircuitBreakerState) {
	return func(name string, from, to models.CircuitBreakerState) {
		if metrics != nil {
			metrics.RecordGauge(MetricCircuitBreakerState, float64(to), map[string]string{"service": name})
		}
		if feedLogger != nil {
			feedLogger.LogCircuitBreakerStateChange(context.Background(), name, from.String(), to.String())
		}
	}
}

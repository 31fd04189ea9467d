package llm

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"vitaforge/internal/logging"
	"vitaforge/pkg/utils"
)

// RetryPolicy controls retry behavior for a dispatch. Retries apply only
// to classified-retryable transport failures (timeouts, 429/503-class
// upstream statuses); malformed model output is never retried here.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// NoRetry performs exactly one attempt.
var NoRetry = RetryPolicy{MaxAttempts: 1}

// DefaultRetryPolicy is the policy extraction calls use: 3 attempts,
// exponential backoff starting at 1s capped at 10s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    10 * time.Second,
	}
}

// Dispatcher routes a single prompt to the requested provider and model.
// It applies one shared rate limiter and a per-call timeout; retry is an
// explicit caller policy, never transport-internal.
type Dispatcher struct {
	registry *Registry
	limiter  *rate.Limiter
	timeout  time.Duration
	logger   logging.Logger
}

// NewDispatcher creates a dispatcher over the registry. ratePerMinute
// bounds outbound LLM calls process-wide.
func NewDispatcher(registry *Registry, ratePerMinute int, timeout time.Duration) *Dispatcher {
	if ratePerMinute <= 0 {
		ratePerMinute = 60
	}

	return &Dispatcher{
		registry: registry,
		limiter:  rate.NewLimiter(rate.Limit(float64(ratePerMinute)/60.0), ratePerMinute),
		timeout:  timeout,
		logger:   logging.GetGlobalLogger(),
	}
}

// Dispatch performs one live round trip to the given provider/model. An
// unknown provider id is a programming error surfaced as a plain error,
// not part of the user-facing taxonomy.
func (d *Dispatcher) Dispatch(ctx context.Context, providerID, modelID, prompt string, shape ResponseShape) (string, error) {
	provider, ok := d.registry.Provider(providerID)
	if !ok {
		return "", fmt.Errorf("dispatch: unknown provider %q", providerID)
	}

	if err := d.limiter.Wait(ctx); err != nil {
		return "", utils.NewTransportError(providerID, err)
	}

	callCtx := ctx
	if d.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := provider.Complete(callCtx, modelID, prompt, shape)
	elapsed := time.Since(start)

	if err != nil {
		d.logger.Warn("Provider call failed", map[string]interface{}{
			"provider": providerID,
			"model":    modelID,
			"elapsed":  utils.FormatDuration(elapsed),
			"error":    err.Error(),
		})
		return "", err
	}

	if text == "" {
		return "", utils.NewTransportError(providerID, fmt.Errorf("empty response from model %s", modelID))
	}

	d.logger.Debug("Provider call completed", map[string]interface{}{
		"provider":        providerID,
		"model":           modelID,
		"elapsed":         utils.FormatDuration(elapsed),
		"response_length": len(text),
	})

	return text, nil
}

// DispatchWithRetry applies the policy to transient transport failures.
// Backoff doubles from BaseDelay up to MaxDelay between attempts.
func (d *Dispatcher) DispatchWithRetry(ctx context.Context, providerID, modelID, prompt string, shape ResponseShape, policy RetryPolicy) (string, error) {
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	delay := policy.BaseDelay
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		text, err := d.Dispatch(ctx, providerID, modelID, prompt, shape)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if attempt == attempts || !utils.IsRetryable(err) {
			break
		}

		d.logger.Warn("Retrying provider call", map[string]interface{}{
			"provider": providerID,
			"model":    modelID,
			"attempt":  attempt,
			"delay":    delay.String(),
		})

		select {
		case <-ctx.Done():
			return "", utils.NewTransportError(providerID, ctx.Err())
		case <-time.After(delay):
		}

		delay *= 2
		if policy.MaxDelay > 0 && delay > policy.MaxDelay {
			delay = policy.MaxDelay
		}
	}

	return "", lastErr
}

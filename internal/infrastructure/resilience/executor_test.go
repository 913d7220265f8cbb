package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
)

var errBrokerDown = errors.New("nats: no servers available for connection")

func publishClassifier(err error) ErrorClassification {
	return ErrorClassification{
		Retryable:     errors.Is(err, errBrokerDown),
		RecordFailure: true,
	}
}

// Provider errors are never retried by the executor; the OCR gateway falls
// back to the next provider instead.
func providerClassifier(error) ErrorClassification {
	return ErrorClassification{
		Retryable:     false,
		RecordFailure: true,
	}
}

func TestExecuteRetriesTransientPublishFailure(t *testing.T) {
	exec := NewExecutor(Config{
		RetryMaxAttempts:    3,
		RetryInitialBackoff: 1 * time.Millisecond,
		RetryMaxBackoff:     2 * time.Millisecond,
		RetryMultiplier:     2,
		BreakerEnabled:      false,
	})

	attempts := 0
	err := exec.Execute(context.Background(), "nats.publish", func(context.Context) error {
		attempts++
		if attempts < 3 {
			return errBrokerDown
		}
		return nil
	}, publishClassifier)
	if err != nil {
		t.Fatalf("expected publish to succeed after reconnect, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestExecuteDoesNotRetryProviderRejection(t *testing.T) {
	exec := NewExecutor(Config{
		RetryMaxAttempts:    3,
		RetryInitialBackoff: 1 * time.Millisecond,
		RetryMaxBackoff:     2 * time.Millisecond,
		RetryMultiplier:     2,
		BreakerEnabled:      false,
	})

	attempts := 0
	errRejected := errors.New("ocr.space: unable to recognize the file type")
	err := exec.Execute(context.Background(), "ocr.ocrspace", func(context.Context) error {
		attempts++
		return errRejected
	}, providerClassifier)
	if !errors.Is(err, errRejected) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("a rejected upload must not be retried, got %d attempts", attempts)
	}
}

func TestExecuteStopsRetryingWhenCallerGivesUp(t *testing.T) {
	exec := NewExecutor(Config{
		RetryMaxAttempts:    5,
		RetryInitialBackoff: 50 * time.Millisecond,
		RetryMaxBackoff:     50 * time.Millisecond,
		RetryMultiplier:     2,
		BreakerEnabled:      false,
	})

	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	err := exec.Execute(ctx, "nats.publish", func(context.Context) error {
		attempts++
		cancel()
		return errBrokerDown
	}, publishClassifier)
	if !errors.Is(err, errBrokerDown) {
		t.Fatalf("expected the publish error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt before cancellation, got %d", attempts)
	}
}

func TestExecuteOpensBreakerAfterProviderFailures(t *testing.T) {
	exec := NewExecutor(Config{
		RetryMaxAttempts:        1,
		RetryInitialBackoff:     1 * time.Millisecond,
		RetryMaxBackoff:         1 * time.Millisecond,
		RetryMultiplier:         2,
		BreakerEnabled:          true,
		BreakerMinRequests:      2,
		BreakerFailureRatio:     0.5,
		BreakerOpenTimeout:      50 * time.Millisecond,
		BreakerHalfOpenMaxCalls: 1,
	})

	errQuota := errors.New("ocr.space: quota exhausted")
	for i := 0; i < 2; i++ {
		err := exec.Execute(context.Background(), "ocr.ocrspace", func(context.Context) error {
			return errQuota
		}, providerClassifier)
		if !errors.Is(err, errQuota) {
			t.Fatalf("expected provider error on request %d, got %v", i, err)
		}
	}

	err := exec.Execute(context.Background(), "ocr.ocrspace", func(context.Context) error {
		t.Fatalf("open breaker must not reach the provider")
		return nil
	}, providerClassifier)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected open breaker, got %v", err)
	}
	if !IsCircuitOpen(err) {
		t.Fatalf("IsCircuitOpen(%v) = false", err)
	}
}

func TestExecuteKeepsBreakersPerOperation(t *testing.T) {
	exec := NewExecutor(Config{
		RetryMaxAttempts:        1,
		RetryInitialBackoff:     1 * time.Millisecond,
		RetryMaxBackoff:         1 * time.Millisecond,
		RetryMultiplier:         2,
		BreakerEnabled:          true,
		BreakerMinRequests:      2,
		BreakerFailureRatio:     0.5,
		BreakerOpenTimeout:      time.Minute,
		BreakerHalfOpenMaxCalls: 1,
	})

	errQuota := errors.New("ocr.space: quota exhausted")
	for i := 0; i < 3; i++ {
		_ = exec.Execute(context.Background(), "ocr.ocrspace", func(context.Context) error {
			return errQuota
		}, providerClassifier)
	}

	err := exec.Execute(context.Background(), "ocr.tesseract", func(context.Context) error {
		return nil
	}, providerClassifier)
	if err != nil {
		t.Fatalf("ocrspace breaker must not affect tesseract, got %v", err)
	}
}

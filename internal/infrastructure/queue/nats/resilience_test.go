package nats

import (
	"context"
	"errors"
	"testing"

	"github.com/nats-io/nats.go"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
)

func TestClassifyNATSError(t *testing.T) {
	cases := []struct {
		name          string
		err           error
		retryable     bool
		recordFailure bool
	}{
		{"nil", nil, false, false},
		{"caller cancelled", context.Canceled, false, false},
		{"deadline", context.DeadlineExceeded, false, false},
		{"no servers", nats.ErrNoServers, true, true},
		{"broker timeout", nats.ErrTimeout, true, true},
		{"connection closed", nats.ErrConnectionClosed, true, true},
		{"disconnected", nats.ErrDisconnected, true, true},
		{"bad subject", nats.ErrBadSubject, false, true},
	}

	for _, tc := range cases {
		class := classifyNATSError(tc.err)
		if class.Retryable != tc.retryable || class.RecordFailure != tc.recordFailure {
			t.Fatalf("%s: classification = %+v, want retryable=%v recordFailure=%v",
				tc.name, class, tc.retryable, tc.recordFailure)
		}
	}
}

func TestAsTemporaryTagsRetryableFailures(t *testing.T) {
	err := asTemporary(nats.ErrNoServers)
	if !domain.IsKind(err, domain.ErrTemporary) {
		t.Fatalf("asTemporary(no servers) = %v, want temporary kind", err)
	}

	permanent := errors.New("payload too large")
	if got := asTemporary(permanent); !errors.Is(got, permanent) || domain.IsKind(got, domain.ErrTemporary) {
		t.Fatalf("permanent error must pass through untagged, got %v", got)
	}

	already := domain.WrapError(domain.ErrTemporary, "publish analysis event", nats.ErrTimeout)
	if got := asTemporary(already); got != already {
		t.Fatalf("already-tagged error must not be rewrapped")
	}

	if got := asTemporary(nil); got != nil {
		t.Fatalf("asTemporary(nil) = %v", got)
	}
}

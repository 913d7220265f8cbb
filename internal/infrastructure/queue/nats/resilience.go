package nats

import (
	"context"
	"errors"

	"github.com/nats-io/nats.go"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
	"github.com/nyaysathi/nyaysathi/internal/infrastructure/resilience"
)

// Broker errors worth retrying: the client reconnects on its own, so a
// publish that raced a disconnect usually succeeds moments later.
var transientBrokerErrors = []error{
	nats.ErrNoServers,
	nats.ErrTimeout,
	nats.ErrConnectionClosed,
	nats.ErrDisconnected,
}

func classifyNATSError(err error) resilience.ErrorClassification {
	switch {
	case err == nil:
		return resilience.ErrorClassification{}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// The uploader gave up; not the broker's fault.
		return resilience.ErrorClassification{Retryable: false, RecordFailure: false}
	case resilience.IsCircuitOpen(err), isTransientBrokerError(err):
		return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
	default:
		return resilience.ErrorClassification{Retryable: false, RecordFailure: true}
	}
}

func isTransientBrokerError(err error) bool {
	for _, target := range transientBrokerErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// asTemporary tags retryable publish failures so the HTTP layer answers 503
// and the frontend tells the user to resubmit the document.
func asTemporary(err error) error {
	if err == nil || domain.IsKind(err, domain.ErrTemporary) {
		return err
	}
	if classifyNATSError(err).Retryable {
		return domain.WrapError(domain.ErrTemporary, "publish analysis event", err)
	}
	return err
}

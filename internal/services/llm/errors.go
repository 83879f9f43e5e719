package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrUpstream matches every UpstreamError
var ErrUpstream = errors.New("upstream service error")

// UpstreamError represents a failed call to an external model, embedding or
// transcript service
type UpstreamError struct {
	Service   string
	Op        string
	Err       error
	Retryable bool
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%s %s failed: %v", e.Service, e.Op, e.Err)
	if e.Retryable {
		msg += " (retryable)"
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// NewUpstreamError wraps err. Deadline and cancellation errors are marked
// retryable.
func NewUpstreamError(service, op string, err error) error {
	if err == nil {
		return nil
	}
	var existing *UpstreamError
	if errors.As(err, &existing) {
		return err
	}
	return &UpstreamError{
		Service:   service,
		Op:        op,
		Err:       err,
		Retryable: errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled),
	}
}

// IsRetryable reports whether err is an upstream failure worth retrying
func IsRetryable(err error) bool {
	var upstream *UpstreamError
	return errors.As(err, &upstream) && upstream.Retryable
}

package image

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential means no API key resolved from any source. The
	// request is failed before any network I/O happens.
	ErrMissingCredential = errors.New("no api credential resolved: set gemini.api_key in the config file or the GEMINI_API_KEY environment variable")

	// ErrNoImageProduced means the call succeeded but no content part
	// carried inline image data. Callers should ask the user to retry
	// with a different instruction.
	ErrNoImageProduced = errors.New("model produced no image, try a different instruction")
)

// ServiceError wraps a failure reported by the remote service or its
// transport. The underlying message is preserved verbatim.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("image service error: %s", e.Message)
}

func NewServiceError(statusCode int, message string) *ServiceError {
	return &ServiceError{StatusCode: statusCode, Message: message}
}

// Classify folds an arbitrary failure into the closed error set
// {ErrMissingCredential, ErrNoImageProduced, ServiceError, unknown}.
// Unrecognized errors are wrapped rather than propagated raw.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var svcErr *ServiceError
	if errors.Is(err, ErrMissingCredential) || errors.Is(err, ErrNoImageProduced) || errors.As(err, &svcErr) {
		return err
	}
	return fmt.Errorf("unexpected image edit failure: %w", err)
}

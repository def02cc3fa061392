package llm

import "errors"

var (
	// ErrUnavailable indicates the inference endpoint is unreachable or
	// refused the request.
	ErrUnavailable = errors.New("inference endpoint unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("inference request timed out")

	// ErrInvalidOutput indicates the response body could not be parsed
	// into ranked label scores.
	ErrInvalidOutput = errors.New("invalid inference output format")

	// ErrDisabled indicates remote inference is switched off by config.
	ErrDisabled = errors.New("remote inference disabled")
)

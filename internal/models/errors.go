package models

import (
	"errors"
	"net/http"
)

// ErrorKind partitions every failure the generation pipeline can produce.
type ErrorKind int

const (
	// KindInvalidInput is the caller's fault; no upstream call was made.
	KindInvalidInput ErrorKind = iota
	// KindRateLimited means the synthesis backend returned 429.
	KindRateLimited
	// KindUpstreamEmpty means a backend answered 2xx with no usable content.
	KindUpstreamEmpty
	// KindUpstreamFailure covers network errors, timeouts and any other
	// non-2xx or malformed upstream response.
	KindUpstreamFailure
)

// GenerationError is constructed at the point of failure and never mutated
// afterwards; the handler layer consumes it exactly once to build the HTTP
// response.
type GenerationError struct {
	Kind    ErrorKind
	Message string
}

func (e *GenerationError) Error() string { return e.Message }

func (e *GenerationError) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func InvalidInput(message string) *GenerationError {
	return &GenerationError{Kind: KindInvalidInput, Message: message}
}

func RateLimited(message string) *GenerationError {
	return &GenerationError{Kind: KindRateLimited, Message: message}
}

func UpstreamEmpty(message string) *GenerationError {
	return &GenerationError{Kind: KindUpstreamEmpty, Message: message}
}

func UpstreamFailure(message string) *GenerationError {
	return &GenerationError{Kind: KindUpstreamFailure, Message: message}
}

// GenericFailureMessage is what callers see when an error reaches the
// boundary unclassified. Raw upstream error bodies are never forwarded.
const GenericFailureMessage = "AI service temporarily unavailable"

// RateLimitMessage is the fixed user-facing text attached to every
// rate-limited response, whether the 429 came from the synthesis backend
// or the local limiter.
const RateLimitMessage = "AI service rate limit exceeded, please try again later!"

// ErrorBody is the response shape for 400 and 500 failures.
type ErrorBody struct {
	Error string `json:"error"`
}

// RateLimitedBody is the response shape for 429 failures.
type RateLimitedBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// Classify returns err as a *GenerationError, folding anything unrecognized
// into an upstream failure with a generic message.
func Classify(err error) *GenerationError {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr
	}
	return UpstreamFailure(GenericFailureMessage)
}

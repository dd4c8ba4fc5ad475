package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"

	openai "github.com/sashabaranov/go-openai"
)

// Reason classifies why an invocation failed
type Reason string

const (
	ReasonNetwork      Reason = "network-error"
	ReasonTimeout      Reason = "timeout"
	ReasonProvider     Reason = "provider-error"
	ReasonMalformed    Reason = "malformed-response"
	ReasonNoCredential Reason = "no-credential"
)

// InvocationError is the single failure signal returned by Invoke
type InvocationError struct {
	Reason  Reason
	Status  int    // provider HTTP status, set for provider-error
	Message string // provider or local message
	Err     error
}

func (e *InvocationError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("%s: status %d: %s", e.Reason, e.Status, e.Message)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Reason, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	default:
		return string(e.Reason)
	}
}

func (e *InvocationError) Unwrap() error { return e.Err }

// ErrNoCredential is returned without any network call when no API key is configured
var ErrNoCredential = &InvocationError{Reason: ReasonNoCredential, Message: "no API credential configured"}

// ReasonOf extracts the failure reason from err, or "" when err is not an InvocationError
func ReasonOf(err error) Reason {
	var ie *InvocationError
	if errors.As(err, &ie) {
		return ie.Reason
	}
	return ""
}

// classify maps client errors onto the failure taxonomy
func classify(err error) *InvocationError {
	var ie *InvocationError
	if errors.As(err, &ie) {
		return ie
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &InvocationError{Reason: ReasonTimeout, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &InvocationError{Reason: ReasonTimeout, Err: err}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &InvocationError{Reason: ReasonProvider, Status: apiErr.HTTPStatusCode, Message: apiErr.Message, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &InvocationError{Reason: ReasonProvider, Status: reqErr.HTTPStatusCode, Message: string(reqErr.Body), Err: err}
	}

	var urlErr *url.Error
	var opErr *net.OpError
	if errors.As(err, &urlErr) || errors.As(err, &opErr) {
		return &InvocationError{Reason: ReasonNetwork, Err: err}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &InvocationError{Reason: ReasonMalformed, Err: err}
	}

	return &InvocationError{Reason: ReasonNetwork, Err: err}
}

package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Classification is the normalized kind assigned to every failed call.
// The set is closed: no other value ever leaves the gateway.
type Classification string

const (
	ClassBadRequest   Classification = "bad_request"
	ClassUnauthorized Classification = "unauthorized"
	ClassNotFound     Classification = "not_found"
	ClassServerError  Classification = "server_error"
	ClassNetworkError Classification = "network_error"
)

// BackendError is the single error shape produced by the gateway.
//
// For ClassBadRequest, Messages holds the flattened field violation list
// and Message is empty. For every other classification, Message holds a
// single human-readable string and Messages is nil.
type BackendError struct {
	Status   Classification
	Message  string
	Messages []string
}

func (e *BackendError) Error() string {
	if e.Status == ClassBadRequest {
		return fmt.Sprintf("%s: %s", e.Status, strings.Join(e.Messages, "; "))
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

// AsBackendError unwraps err into a *BackendError, if it is one.
func AsBackendError(err error) (*BackendError, bool) {
	var be *BackendError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is a gateway error classified
// as Unauthorized. Callers use it to decide on session teardown; the
// gateway itself never logs anyone out.
func IsUnauthorized(err error) bool {
	be, ok := AsBackendError(err)
	return ok && be.Status == ClassUnauthorized
}

// IsNetworkError reports whether err means no response was received at
// all. Retry policy for such failures belongs to callers, never to the
// gateway.
func IsNetworkError(err error) bool {
	be, ok := AsBackendError(err)
	return ok && be.Status == ClassNetworkError
}

func networkError(err error) *BackendError {
	return &BackendError{Status: ClassNetworkError, Message: err.Error()}
}

// classify maps a received HTTP status and body to a BackendError.
// Unrecognized statuses land in ClassServerError so that the closed
// set holds for any transport status.
func classify(status int, body []byte) *BackendError {
	switch {
	case status == http.StatusUnprocessableEntity:
		return &BackendError{Status: ClassBadRequest, Messages: flattenFieldErrors(body)}
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &BackendError{Status: ClassUnauthorized, Message: bodyMessage(body, "unauthorized")}
	case status == http.StatusNotFound:
		return &BackendError{Status: ClassNotFound, Message: bodyMessage(body, "not found")}
	default:
		return &BackendError{Status: ClassServerError, Message: bodyMessage(body, http.StatusText(status))}
	}
}

// bodyMessage extracts {"message": "..."} from an error body, falling
// back to the given default when the body is empty or not that shape.
func bodyMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fallback
}

// flattenFieldErrors turns a 422 body, a JSON object mapping field name
// to a list of violation strings, into one ordered list: fields in
// document order, then messages in their order within each field.
// A map[string][]string would lose field order, so the object is walked
// with the decoder token stream instead.
func flattenFieldErrors(body []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return []string{string(bytes.TrimSpace(body))}
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return []string{string(bytes.TrimSpace(body))}
	}

	var out []string
	for dec.More() {
		if _, err := dec.Token(); err != nil { // field name
			break
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			break
		}
		var msgs []string
		if err := json.Unmarshal(raw, &msgs); err == nil {
			out = append(out, msgs...)
			continue
		}
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil {
			out = append(out, msg)
		}
	}
	return out
}

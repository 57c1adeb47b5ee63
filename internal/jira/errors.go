package jira

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/danielolaszy/tix/pkg/models"
)

// RequestError is a non-2xx response from the Jira API. The status code and
// message are decided once at the transport boundary; callers branch on
// StatusCode rather than parsing error text.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// newRequestError extracts the first errorMessages entry from a Jira
// failure body, falling back to the HTTP status text.
func newRequestError(statusCode int, body []byte) *RequestError {
	message := http.StatusText(statusCode)

	var envelope struct {
		ErrorMessages []string `json:"errorMessages"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.ErrorMessages) > 0 {
		message = envelope.ErrorMessages[0]
	}

	return &RequestError{StatusCode: statusCode, Message: message}
}

// LinkTypeNotFoundError reports a link type name that matched nothing in
// the catalog. Available carries the full catalog so callers can list the
// valid names before exiting.
type LinkTypeNotFoundError struct {
	Query     string
	Available []models.LinkType
}

func (e *LinkTypeNotFoundError) Error() string {
	return fmt.Sprintf("unknown link type %q", e.Query)
}

// TransitionNotFoundError reports a target status with no matching
// transition from the ticket's current state. Available carries the
// transitions that were legal at fetch time.
type TransitionNotFoundError struct {
	Key       string
	Query     string
	Available []models.Transition
}

func (e *TransitionNotFoundError) Error() string {
	return fmt.Sprintf("cannot transition %s to %q", e.Key, e.Query)
}

// LinkNotFoundError reports a link id that is not present on the ticket.
// Links carries the ticket's current links for listing.
type LinkNotFoundError struct {
	Key    string
	LinkID string
	Links  []models.IssueLink
}

func (e *LinkNotFoundError) Error() string {
	return fmt.Sprintf("link %s not found on %s", e.LinkID, e.Key)
}

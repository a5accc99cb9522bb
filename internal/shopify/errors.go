package shopify

import (
	"errors"
	"fmt"
	"strings"
)

// TransportError reports a failure to carry a request to the platform or to
// read its response: connection problems, non-200 statuses, malformed bodies.
type TransportError struct {
	Op         string // failing operation, e.g. "listCustomers"
	StatusCode int    // HTTP status when a response arrived, 0 otherwise
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: platform returned HTTP %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// GraphQLError is one entry of a GraphQL top-level error envelope.
type GraphQLError struct {
	Message string `json:"message"`
}

// APIError reports a request the platform accepted at the HTTP layer but
// rejected at the GraphQL layer.
type APIError struct {
	Op     string
	Errors []GraphQLError
}

func (e *APIError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		msgs = append(msgs, ge.Message)
	}
	return fmt.Sprintf("%s: platform rejected the request: %s", e.Op, strings.Join(msgs, "; "))
}

// UserError is a field-level validation failure attached to a mutation result.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

func (e UserError) String() string {
	if len(e.Field) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", strings.Join(e.Field, "."), e.Message)
}

// OrderCreationError reports userErrors returned by the draft order creation
// mutation.
type OrderCreationError struct {
	UserErrors []UserError
}

func (e *OrderCreationError) Error() string {
	return fmt.Sprintf("draft order creation rejected: %s", joinUserErrors(e.UserErrors))
}

// OrderCompletionError reports userErrors returned by the draft order
// completion mutation.
type OrderCompletionError struct {
	DraftOrderID string
	UserErrors   []UserError
}

func (e *OrderCompletionError) Error() string {
	return fmt.Sprintf("completing draft order %s rejected: %s", e.DraftOrderID, joinUserErrors(e.UserErrors))
}

func joinUserErrors(errs []UserError) string {
	parts := make([]string, 0, len(errs))
	for _, ue := range errs {
		parts = append(parts, ue.String())
	}
	return strings.Join(parts, "; ")
}

// ErrDraftOrderNotReturned means the creation mutation reported success but
// carried no draft order object.
var ErrDraftOrderNotReturned = errors.New("draft order creation returned no draft order")

// ErrOrderNotReturned means the completion mutation reported success but
// carried no resulting order object.
var ErrOrderNotReturned = errors.New("draft order completion returned no order")

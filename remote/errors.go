package remote

import "fmt"

const excerptLen = 100

// TransportError is a non-success HTTP response from the record store.
type TransportError struct {
	StatusCode int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("record store: HTTP error, status %d", e.StatusCode)
}

// APIError is an application-level error reported by the record store
// ({status: "error"}). The store's message is passed through verbatim.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// DecodeError is a response body that could not be parsed as the
// expected structure. It carries a truncated excerpt of the raw body for
// diagnosis.
type DecodeError struct {
	Excerpt string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf(
		"record store returned an invalid response. The URL might be wrong. Response: %s",
		e.Excerpt,
	)
}

func excerpt(body []byte) string {
	if len(body) > excerptLen {
		return string(body[:excerptLen]) + "..."
	}

	return string(body)
}

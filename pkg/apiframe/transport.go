package apiframe

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// statusTransport records the status of a single exchange. When the service
// answers with an error status and a JSON body, the status is rewritten so
// the body is decoded as the response.
type statusTransport struct {
	next   http.RoundTripper
	status int
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// wrap is passed to client.OptReqTransport
func (t *statusTransport) wrap(next http.RoundTripper) http.RoundTripper {
	t.next = next
	return t
}

func (t *statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusBadRequest {
		t.status = resp.StatusCode
		return resp, nil
	}

	// Read the error body
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	t.status = resp.StatusCode
	resp.Body = io.NopCloser(bytes.NewReader(data))

	// Let a JSON body through
	if json.Valid(data) {
		resp.StatusCode = http.StatusOK
		resp.Status = http.StatusText(http.StatusOK)
	}
	return resp, nil
}

// failed returns true if the service answered with an error status
func (t *statusTransport) failed() bool {
	return t.status >= http.StatusBadRequest
}

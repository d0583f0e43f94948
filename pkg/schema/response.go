package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Response is a JSON response body, kept exactly as it was received. The
// shape is owned by the remote service: usually an object, an array for
// fetch-many.
type Response struct {
	raw json.RawMessage
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	// ErrInvalidJSON is returned when a body is not a JSON document
	ErrInvalidJSON = errors.New("invalid JSON")
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewResponse returns a response for a JSON document, or an error if data
// is not valid JSON
func NewResponse(data []byte) (*Response, error) {
	r := new(Response)
	if err := r.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return r, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Unmarshal reads the response body from an HTTP response
func (r *Response) Unmarshal(header http.Header, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	return r.UnmarshalJSON(data)
}

func (r *Response) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if !json.Valid(data) {
		return ErrInvalidJSON
	}
	r.raw = append(r.raw[:0], data...)
	return nil
}

func (r Response) MarshalJSON() ([]byte, error) {
	if len(r.raw) == 0 {
		return []byte("null"), nil
	}
	return r.raw, nil
}

// Bytes returns the response body
func (r *Response) Bytes() []byte {
	return r.raw
}

// IsArray returns true if the response is a JSON array
func (r *Response) IsArray() bool {
	return len(r.raw) > 0 && r.raw[0] == '['
}

// Value returns the generic decoded value of the response: a map for an
// object, a slice for an array
func (r *Response) Value() any {
	var v any
	if err := json.Unmarshal(r.raw, &v); err != nil {
		return nil
	}
	return v
}

// Decode the response into v
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.raw, v)
}

// Task returns the response as a task
func (r *Response) Task() (*Task, error) {
	var task Task
	if err := r.Decode(&task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Tasks returns the response as a list of tasks. A single object is
// returned as a list with one element.
func (r *Response) Tasks() ([]Task, error) {
	if !r.IsArray() {
		if task, err := r.Task(); err != nil {
			return nil, err
		} else {
			return []Task{*task}, nil
		}
	}
	var tasks []Task
	if err := r.Decode(&tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Account returns the response as account details
func (r *Response) Account() (*Account, error) {
	var account Account
	if err := r.Decode(&account); err != nil {
		return nil, err
	}
	return &account, nil
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Response) String() string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, r.raw, "", "  "); err != nil {
		return string(r.raw)
	}
	return buf.String()
}

package schema

import (
	"encoding/json"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Task is a typed view of a task response. Fields which the service did not
// return are left empty.
type Task struct {
	TaskId           string      `json:"task_id,omitempty"`
	TaskType         string      `json:"task_type,omitempty"`
	Status           string      `json:"status,omitempty"`
	Percentage       json.Number `json:"percentage,omitempty"`
	OriginalImageUrl string      `json:"original_image_url,omitempty"`
	ImageUrl         string      `json:"image_url,omitempty"`
	ImageUrls        []string    `json:"image_urls,omitempty"`
	Seed             string      `json:"seed,omitempty"`
	Sref             string      `json:"sref,omitempty"`
	Content          string      `json:"content,omitempty"`
	Message          string      `json:"message,omitempty"`
	Errors           []Error     `json:"errors,omitempty"`
}

// Error is an error reported by the service
type Error struct {
	Msg string `json:"msg"`
}

// Account is a typed view of the account response
type Account struct {
	Email           string  `json:"email"`
	Credits         int     `json:"credits"`
	Plan            string  `json:"plan"`
	NextBillingDate *string `json:"next_billing_date"`
	TotalImages     int     `json:"total_images"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Finished returns true if the task has completed, successfully or not
func (t Task) Finished() bool {
	return t.Status == StatusFinished || t.Status == StatusFailed
}

// Done returns true when there is nothing left to wait for: the task has
// finished, or the service reported errors
func (t Task) Done() bool {
	return t.Finished() || len(t.Errors) > 0
}

// Err returns the errors reported by the service joined into one string,
// or an empty string
func (t Task) Err() string {
	msgs := make([]string, 0, len(t.Errors))
	for _, e := range t.Errors {
		if e.Msg != "" {
			msgs = append(msgs, e.Msg)
		}
	}
	return strings.Join(msgs, "; ")
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t Task) String() string {
	return Stringify(t)
}

func (a Account) String() string {
	return Stringify(a)
}

package apiframe

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-apiframe/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Fetch returns the result or status of a task
func (c *Client) Fetch(ctx context.Context, req schema.FetchRequest) (*schema.Response, error) {
	return c.post(ctx, "fetch", req)
}

// FetchMany returns the results or statuses of several tasks. The task
// identifiers are sent as given.
func (c *Client) FetchMany(ctx context.Context, req schema.FetchManyRequest) (*schema.Response, error) {
	return c.post(ctx, "fetch-many", req)
}

// Account returns details about the account: credits remaining, plan and
// usage
func (c *Client) Account(ctx context.Context) (*schema.Response, error) {
	return c.get(ctx, "account")
}

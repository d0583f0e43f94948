/*
apiframe implements an API client for the Apiframe Midjourney API.
https://docs.apiframe.pro/
*/
package apiframe

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	// Packages
	af "github.com/mutablelogic/go-apiframe"
	logger "github.com/mutablelogic/go-apiframe/pkg/logger"
	schema "github.com/mutablelogic/go-apiframe/pkg/schema"
	client "github.com/mutablelogic/go-client"
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	verbose bool
	log     zerolog.Logger
}

var _ af.Client = (*Client)(nil)

// Ensure response bodies are kept as received
var _ client.Unmarshaler = (*schema.Response)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://api.apiframe.pro"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new Apiframe client with the given API key, which is sent
// verbatim in the Authorization header of every request
func New(apiKey string, opts ...Opt) (*Client, error) {
	// Check for missing API key
	if apiKey == "" {
		return nil, af.ErrBadParameter.With("missing API key")
	}

	// Apply options
	o, err := applyOpts(opts...)
	if err != nil {
		return nil, err
	}

	// Create client
	clientopts := append(append([]client.ClientOpt{}, o.clientopts...),
		client.OptEndpoint(o.endpoint),
		client.OptHeader("Authorization", apiKey),
	)
	c, err := client.New(clientopts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client:  c,
		verbose: o.verbose,
		log:     logger.WithComponent(o.log, "apiframe"),
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// post sends body as JSON to the path and returns the response
func (c *Client) post(ctx context.Context, path string, body any) (*schema.Response, error) {
	payload, err := client.NewJSONRequest(body)
	if err != nil {
		return nil, c.fail(http.MethodPost, path, nil, af.ErrBadParameter.With(err))
	}
	return c.do(ctx, http.MethodPost, path, payload)
}

// get requests the path without a body and returns the response
func (c *Client) get(ctx context.Context, path string) (*schema.Response, error) {
	return c.do(ctx, http.MethodGet, path, nil,
		client.OptReqHeader("Content-Type", client.ContentTypeJson),
	)
}

func (c *Client) do(ctx context.Context, method, path string, payload client.Payload, opts ...client.RequestOpt) (*schema.Response, error) {
	var response schema.Response

	// Request -> Response, error statuses with a JSON body are returned as
	// the response
	status := new(statusTransport)
	opts = append(opts, client.OptPath(path), client.OptReqTransport(status.wrap))
	if err := c.DoWithContext(ctx, payload, &response, opts...); err != nil {
		return nil, c.fail(method, path, status, err)
	}

	// Log the response
	if status.failed() {
		c.log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", status.status).
			RawJSON("response", response.Bytes()).
			Msg("service returned an error")
	} else if c.verbose {
		c.log.Info().
			Str("method", method).
			Str("path", path).
			RawJSON("response", response.Bytes()).
			Msg("response")
	}

	// Return success
	return &response, nil
}

// fail logs the error and returns it wrapped with an error code. A body which
// could not be decoded is ErrDecode, any other failure is ErrTransport.
func (c *Client) fail(method, path string, status *statusTransport, err error) error {
	var code af.Err
	var syntax *json.SyntaxError
	switch {
	case errors.As(err, &code):
		// Already has a code
	case errors.Is(err, schema.ErrInvalidJSON), errors.As(err, &syntax), status != nil && status.failed():
		err = af.ErrDecode.With(err)
	default:
		err = af.ErrTransport.With(err)
	}
	c.log.Error().
		Str("method", method).
		Str("path", path).
		Err(err).
		Msg("request failed")
	return err
}

package httphandler

import (
	"context"
	"errors"
	"net/http"

	// Packages
	af "github.com/mutablelogic/go-apiframe"
	schema "github.com/mutablelogic/go-apiframe/pkg/schema"
	tool "github.com/mutablelogic/go-apiframe/pkg/tool"
	server "github.com/mutablelogic/go-server"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Router interface {
	RegisterFunc(path string, handler http.HandlerFunc, middleware bool, spec *openapi.PathItem) error
}

// WebhookFunc is called with each task result delivered to the webhook
type WebhookFunc func(context.Context, *schema.Response) error

// RegisterHandlers registers the webhook receiver, and the tool endpoints
// when toolkit is not nil
func RegisterHandlers(router server.HTTPRouter, middleware bool, secret string, fn WebhookFunc, toolkit *tool.Toolkit) error {
	var result error

	// Convenience function to register a handler and accumulate any errors
	register := func(path string, handler http.HandlerFunc, spec *openapi.PathItem) {
		result = errors.Join(result, router.(Router).RegisterFunc(path, handler, middleware, spec))
	}

	// Register handlers
	register(WebhookHandler(secret, fn))
	if toolkit != nil {
		register(ToolListHandler(toolkit))
		register(ToolHandler(toolkit))
	}

	// Return any errors
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// httpErr converts an apiframe.Err to an httpresponse.Err, preserving the
// original error message. Unknown error codes map to 500.
func httpErr(err error) error {
	var code af.Err
	if !errors.As(err, &code) {
		return err
	}
	switch code {
	case af.ErrNotFound:
		return httpresponse.ErrNotFound.With(err)
	case af.ErrBadParameter:
		return httpresponse.ErrBadRequest.With(err)
	case af.ErrConflict:
		return httpresponse.ErrConflict.With(err)
	case af.ErrNotImplemented:
		return httpresponse.ErrNotImplemented.With(err)
	case af.ErrUnauthorized:
		return httpresponse.Err(http.StatusUnauthorized).With(err)
	case af.ErrTransport, af.ErrDecode:
		return httpresponse.Err(http.StatusBadGateway).With(err)
	default:
		return httpresponse.ErrInternalError.With(err)
	}
}

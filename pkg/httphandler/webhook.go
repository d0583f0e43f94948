package httphandler

import (
	"crypto/subtle"
	"io"
	"net/http"

	// Packages
	schema "github.com/mutablelogic/go-apiframe/pkg/schema"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// WebhookResponse acknowledges a delivery
type WebhookResponse struct {
	Ok bool `json:"ok"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	maxWebhookBody = 1 << 20
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /webhook
//
// Receives task results posted by the service. When secret is not empty,
// deliveries without a matching secret header are rejected.
func WebhookHandler(secret string, fn WebhookFunc) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/webhook", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost:
				if secret != "" && subtle.ConstantTimeCompare([]byte(r.Header.Get(schema.WebhookSecretHeader)), []byte(secret)) != 1 {
					_ = httpresponse.Error(w, httpresponse.Err(http.StatusUnauthorized), "invalid webhook secret")
					return
				}
				data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
				if err != nil {
					_ = httpresponse.Error(w, httpresponse.ErrBadRequest.With(err))
					return
				}
				resp, err := schema.NewResponse(data)
				if err != nil {
					_ = httpresponse.Error(w, httpresponse.ErrBadRequest.With(err))
					return
				}
				if fn != nil {
					if err := fn(r.Context(), resp); err != nil {
						_ = httpresponse.Error(w, httpresponse.ErrInternalError.With(err))
						return
					}
				}
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), WebhookResponse{Ok: true})
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Post: &openapi.Operation{
				Description: "Receive a task result",
			},
		})
}

package httphandler

import (
	"net/http"

	// Packages
	tool "github.com/mutablelogic/go-apiframe/pkg/tool"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
	lo "github.com/samber/lo"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /tool
func ToolListHandler(toolkit *tool.Toolkit) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/tool", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				resp := lo.Map(toolkit.Tools(), func(t tool.Tool, _ int) tool.Meta {
					return tool.Meta{Name: t.Name(), Description: t.Description()}
				})
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), resp)
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "List all tools",
			},
		})
}

// Path: /tool/{name}
func ToolHandler(toolkit *tool.Toolkit) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/tool/{name}", func(w http.ResponseWriter, r *http.Request) {
			name := r.PathValue("name")
			switch r.Method {
			case http.MethodGet:
				resp, err := toolkit.Meta(name)
				if err != nil {
					_ = httpresponse.Error(w, httpErr(err))
					return
				}
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), resp)
			case http.MethodPost:
				var input map[string]any
				if r.ContentLength != 0 {
					if err := httprequest.Read(r, &input); err != nil {
						_ = httpresponse.Error(w, err)
						return
					}
				}
				var args any
				if input != nil {
					args = input
				}
				resp, err := toolkit.Run(r.Context(), name, args)
				if err != nil {
					_ = httpresponse.Error(w, httpErr(err))
					return
				}
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), resp)
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "Get a tool by name",
			},
			Post: &openapi.Operation{
				Description: "Run a tool with JSON input",
			},
		})
}

package serverdebug

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/buildinfo"
	internalerrors "github.com/DanishKodeMonkey/webserver-node-experiment/internal/errors"
	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/routes"
)

const htmlMIME = "text/html"

// PagesSchema describes the public pages server. Paths that are not valid
// OpenAPI paths (the catch-all, anything with a query) are left out, they
// are covered by the 404 response of every operation.
func PagesSchema(ctx context.Context, rr []routes.Route) (*openapi3.T, error) {
	version := buildinfo.Version()
	if version == "" {
		version = "(devel)"
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Pages",
			Description: "Static pages. Paths are matched verbatim, anything else gets the not found page.",
			Version:     version,
		},
		Paths: openapi3.NewPaths(),
	}

	for _, r := range rr {
		if !strings.HasPrefix(r.Path, "/") || strings.ContainsAny(r.Path, "?#{}") {
			continue
		}
		if !internalerrors.IsHTTPStatus(r.Status) {
			return nil, fmt.Errorf("route %q: invalid status %d", r.Path, r.Status)
		}

		responses := []openapi3.NewResponsesOption{
			openapi3.WithStatus(r.Status, htmlResponse(r.File)),
		}
		if r.Status != http.StatusNotFound {
			responses = append(responses, openapi3.WithStatus(http.StatusNotFound, htmlResponse("not found page")))
		}

		op := openapi3.NewOperation()
		op.Summary = r.File
		op.Responses = openapi3.NewResponses(responses...)

		doc.Paths.Set(r.Path, &openapi3.PathItem{Get: op, Head: op})
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate schema: %v", err)
	}
	return doc, nil
}

func htmlResponse(description string) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription(description).
			WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema(), []string{htmlMIME})),
	}
}

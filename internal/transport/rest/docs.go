package rest

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openapiSpec []byte

// DocsHandler serves the API documentation. The embedded OpenAPI document is
// parsed and validated once at startup, so a malformed spec fails the boot
// instead of a random request.
type DocsHandler struct {
	specJSON []byte
}

// NewDocsHandler parses the embedded OpenAPI document.
func NewDocsHandler() (*DocsHandler, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, fmt.Errorf("docs: parse openapi spec: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("docs: validate openapi spec: %w", err)
	}

	specJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("docs: marshal openapi spec: %w", err)
	}

	return &DocsHandler{specJSON: specJSON}, nil
}

// SpecJSON handles GET /docs-json.
func (h *DocsHandler) SpecJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(h.specJSON) //nolint:errcheck
}

const docsPage = `<!DOCTYPE html>
<html>
<head>
  <title>Blog Backend API</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
  <redoc spec-url="/docs-json"></redoc>
  <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>`

// Page handles GET /docs.
func (h *DocsHandler) Page(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, docsPage) //nolint:errcheck
}

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-json"
)

// SwaggerJSON renders the registered Swagger 2 document.
func SwaggerJSON() []byte {
	return []byte(SwaggerInfo.ReadDoc())
}

// OpenAPI3 converts the Swagger 2 document and validates the result.
func OpenAPI3(ctx context.Context) (*openapi3.T, error) {
	var doc2 openapi2.T
	if err := json.Unmarshal(SwaggerJSON(), &doc2); err != nil {
		return nil, fmt.Errorf("failed to parse swagger document: %w", err)
	}

	doc3, err := openapi2conv.ToV3(&doc2)
	if err != nil {
		return nil, fmt.Errorf("failed to convert swagger document: %w", err)
	}

	if err := doc3.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}

	return doc3, nil
}

// RegisterDocsRoutes serves both documents under /docs.
func RegisterDocsRoutes(mux *http.ServeMux) error {
	swagger := SwaggerJSON()

	doc3, err := OpenAPI3(context.Background())
	if err != nil {
		return err
	}
	openapi, err := json.Marshal(doc3)
	if err != nil {
		return fmt.Errorf("failed to encode openapi document: %w", err)
	}

	mux.HandleFunc("GET /docs/swagger.json", serveJSON(swagger))
	mux.HandleFunc("GET /docs/openapi.json", serveJSON(openapi))
	return nil
}

func serveJSON(body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}

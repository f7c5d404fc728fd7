package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DanielPopoola/paygate/internal/api"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAPI3_ConvertsAndValidates(t *testing.T) {
	doc, err := api.OpenAPI3(context.Background())
	require.NoError(t, err)

	for _, path := range []string{
		"/v1/payments",
		"/v1/webhooks/{gateway}",
		"/v1/transactions/{transactionRef}",
		"/v1/transactions/{transactionRef}/verify",
		"/healthz",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}

	payments := doc.Paths.Find("/v1/payments").Post
	require.NotNil(t, payments)
	require.NotNil(t, payments.RequestBody)
	assert.NotNil(t, payments.RequestBody.Value.Content.Get("application/json"))
	assert.NotNil(t, payments.Responses.Status(http.StatusPaymentRequired))

	assert.Contains(t, doc.Components.Schemas, "handlers.InitiatePaymentRequest")
}

func TestRegisterDocsRoutes(t *testing.T) {
	mux := http.NewServeMux()
	require.NoError(t, api.RegisterDocsRoutes(mux))

	for path, versionKey := range map[string]string{
		"/docs/swagger.json": "swagger",
		"/docs/openapi.json": "openapi",
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), path)
		assert.Contains(t, body, versionKey, path)
	}
}

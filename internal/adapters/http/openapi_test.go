package http

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The embedded OpenAPI document is served to clients; it must stay a valid
// spec and keep describing the routes the router actually mounts.
func TestOpenAPISpecIsValid(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiSpec)
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	for _, path := range []string{
		"/documents",
		"/documents/{documentID}",
		"/documents/{documentID}/next",
		"/documents/{documentID}/validate",
		"/documents/{documentID}/progress",
		"/documents/{documentID}/generate",
		"/sessions",
		"/sessions/{sessionID}",
		"/sessions/{sessionID}/answers",
		"/sessions/{sessionID}/generate",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

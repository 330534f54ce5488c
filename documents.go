package uibuilder

import (
	"context"

	"github.com/goliatone/go-uibuilder/pkg/document"
	"github.com/goliatone/go-uibuilder/pkg/document/openapi"
)

// LoadDocument reads a JSON or YAML form document from disk.
func LoadDocument(filename string) (Document, error) {
	return document.Load(filename)
}

// ImportOpenAPI converts an OpenAPI operation's request body into a document.
func ImportOpenAPI(ctx context.Context, data []byte, operationID string, options ...openapi.Option) (Document, error) {
	return openapi.Import(ctx, data, operationID, options...)
}

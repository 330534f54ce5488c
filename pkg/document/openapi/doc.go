// Package openapi imports OpenAPI 3 request bodies as form documents. Each
// top-level property of an operation's JSON request body becomes one field;
// schema types map onto host field types and the x-uibuilder extension can
// override the mapping per property.
package openapi

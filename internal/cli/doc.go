// Package cli holds the cobra commands behind cmd/uibuilder.
package cli

// Package preview renders forms built against the in-memory host as static
// HTML. Labels are reduced to plain text and rich-text defaults pass through
// a UGC sanitizing policy before they reach the page. An optional go-theme
// selection contributes CSS custom properties.
package preview

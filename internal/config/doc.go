// Package config loads the uibuilder CLI configuration from an optional file
// and UIBUILDER_* environment variables.
package config

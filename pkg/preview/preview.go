package preview

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uibuilder/pkg/host/memory"
)

//go:embed templates/form.html
var defaultTemplate string

// Option configures a Renderer.
type Option func(*Renderer)

// WithTemplate replaces the embedded page template. The template receives a
// single "page" value.
func WithTemplate(source string) Option {
	return func(r *Renderer) {
		r.source = source
	}
}

// WithThemeSelector resolves name/variant through selector on every render
// and exposes the resulting tokens as CSS custom properties.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(r *Renderer) {
		r.selector = selector
		r.themeName = name
		r.variant = variant
	}
}

// Renderer turns an in-memory form into a static HTML page.
type Renderer struct {
	source    string
	tpl       *pongo2.Template
	selector  theme.ThemeSelector
	themeName string
	variant   string
}

// New compiles the page template.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{source: defaultTemplate}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	tpl, err := pongo2.FromString(r.source)
	if err != nil {
		return nil, fmt.Errorf("preview: compile template: %w", err)
	}
	r.tpl = tpl
	return r, nil
}

// RenderForm renders the current state of form.
func (r *Renderer) RenderForm(form *memory.Form) ([]byte, error) {
	if form == nil {
		return nil, errors.New("preview: form is nil")
	}
	return r.Render(form.Definition())
}

// Render renders a form snapshot.
func (r *Renderer) Render(def memory.Definition) ([]byte, error) {
	page := buildView(def)
	if r.selector != nil {
		selection, err := r.selector.Select(r.themeName, r.variant)
		if err != nil {
			return nil, fmt.Errorf("preview: select theme: %w", err)
		}
		if selection != nil {
			page.Theme = selection.Theme
			page.Variant = selection.Variant
			page.CSS = cssVariables(themeTokens(selection))
		}
	}

	out, err := r.tpl.ExecuteBytes(pongo2.Context{"page": page})
	if err != nil {
		return nil, fmt.Errorf("preview: render: %w", err)
	}
	return out, nil
}

// themeTokens merges the manifest tokens with the selected variant's.
func themeTokens(selection *theme.Selection) map[string]string {
	if selection.Manifest == nil {
		return nil
	}
	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}
	return tokens
}

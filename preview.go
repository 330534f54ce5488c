package uibuilder

import (
	"fmt"

	"github.com/goliatone/go-uibuilder/pkg/builder"
	"github.com/goliatone/go-uibuilder/pkg/host/memory"
	"github.com/goliatone/go-uibuilder/pkg/preview"
)

// PreviewHTML builds doc against an in-memory form and renders it. The
// reports are returned even when rendering fails.
func PreviewHTML(doc Document, builderOptions []Option, previewOptions ...preview.Option) ([]byte, builder.Reports, error) {
	form := memory.NewForm(doc.Title)
	_, reports := builder.New(builderOptions...).Build(form, doc)

	renderer, err := preview.New(previewOptions...)
	if err != nil {
		return nil, reports, err
	}
	out, err := renderer.RenderForm(form)
	if err != nil {
		return nil, reports, fmt.Errorf("uibuilder: preview: %w", err)
	}
	return out, reports, nil
}

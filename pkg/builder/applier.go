package builder

import (
	"github.com/goliatone/go-uibuilder/pkg/host"
	"github.com/goliatone/go-uibuilder/pkg/logging"
	"github.com/goliatone/go-uibuilder/pkg/model"
)

// ApplyField creates spec in container and applies every declared attribute.
// Options are appended before the default value so the default can name one
// of them. The first host error is returned as is; the field handle is
// returned alongside it when creation itself succeeded.
func (b *Builder) ApplyField(container host.FieldContainer, spec model.FieldSpec) (host.Field, error) {
	fld, err := container.AddField(spec.Props)
	if err != nil {
		return nil, err
	}

	steps := []func() error{
		func() error {
			if v, ok := spec.IsMandatory.Get(); ok {
				return fld.SetMandatory(v)
			}
			return nil
		},
		func() error {
			if v, ok := spec.BreakType.Get(); ok {
				return fld.UpdateBreakType(v)
			}
			return nil
		},
		func() error {
			if v, ok := spec.DisplayType.Get(); ok {
				return fld.UpdateDisplayType(v)
			}
			return nil
		},
		func() error {
			if v, ok := spec.LayoutType.Get(); ok {
				return fld.UpdateLayoutType(v)
			}
			return nil
		},
		func() error {
			height, hasHeight := spec.Height.Get()
			width, hasWidth := spec.Width.Get()
			if hasHeight && hasWidth {
				return fld.UpdateDisplaySize(host.DisplaySize{Height: height, Width: width})
			}
			return nil
		},
		func() error {
			if v, ok := spec.RichTextHeight.Get(); ok {
				return fld.SetRichTextHeight(v)
			}
			return nil
		},
		func() error {
			if v, ok := spec.RichTextWidth.Get(); ok {
				return fld.SetRichTextWidth(v)
			}
			return nil
		},
		func() error {
			if v, ok := spec.LinkText.Get(); ok {
				return fld.SetLinkText(v)
			}
			return nil
		},
		func() error {
			if v, ok := spec.MaxLength.Get(); ok {
				return fld.SetMaxLength(v)
			}
			return nil
		},
		func() error {
			if v, ok := spec.Padding.Get(); ok {
				return fld.SetPadding(v)
			}
			return nil
		},
		func() error {
			if v, ok := spec.Alias.Get(); ok {
				return fld.SetAlias(v)
			}
			return nil
		},
		func() error { return b.addOptions(fld, spec.Options) },
		// default value last: it may reference an option added above
		func() error {
			if v, ok := spec.Value.Get(); ok {
				return fld.SetDefaultValue(v)
			}
			return nil
		},
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return fld, err
		}
	}
	return fld, nil
}

func (b *Builder) addOptions(fld host.Field, options []model.OptionSpec) error {
	if len(options) == 0 {
		return nil
	}
	if b.traceOptions {
		b.logger.Debug("options", logging.Details(options))
	}
	for _, opt := range options {
		err := fld.AddSelectOption(host.SelectOption{
			Value:    opt.ID,
			Text:     opt.Txt,
			Selected: opt.Selected,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

package memory

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-uibuilder/pkg/host"
)

// FieldState is the snapshot of a field's configuration.
type FieldState struct {
	ID             string              `json:"id"`
	Type           host.FieldType      `json:"type"`
	Label          string              `json:"label"`
	Source         string              `json:"source,omitempty"`
	Container      string              `json:"container,omitempty"`
	Mandatory      bool                `json:"mandatory"`
	BreakType      host.BreakType      `json:"breakType,omitempty"`
	DisplayType    host.DisplayType    `json:"displayType,omitempty"`
	LayoutType     host.LayoutType     `json:"layoutType,omitempty"`
	Size           *host.DisplaySize   `json:"size,omitempty"`
	RichTextHeight int                 `json:"richTextHeight,omitempty"`
	RichTextWidth  int                 `json:"richTextWidth,omitempty"`
	LinkText       string              `json:"linkText,omitempty"`
	MaxLength      int                 `json:"maxLength,omitempty"`
	Padding        int                 `json:"padding,omitempty"`
	Alias          string              `json:"alias,omitempty"`
	Options        []host.SelectOption `json:"options,omitempty"`
	Default        any                 `json:"default,omitempty"`
	HasDefault     bool                `json:"hasDefault,omitempty"`
}

type field struct {
	form   *Form
	target string
	state  FieldState
}

var _ host.Field = (*field)(nil)

func newField(form *Form, props host.FieldProps) *field {
	return &field{
		form:   form,
		target: "field:" + props.ID,
		state: FieldState{
			ID:        props.ID,
			Type:      props.Type,
			Label:     props.Label,
			Source:    props.Source,
			Container: props.Container,
		},
	}
}

func findField(fields []*field, id string) *field {
	for _, fld := range fields {
		if fld.state.ID == id {
			return fld
		}
	}
	return nil
}

func (f *field) ID() string {
	return f.state.ID
}

func (f *field) mutate(method string, args any, apply func(*FieldState) error) error {
	return f.form.journal.record(f.target, method, args, func() error {
		f.form.mu.Lock()
		defer f.form.mu.Unlock()
		return apply(&f.state)
	})
}

func (f *field) SetMandatory(mandatory bool) error {
	return f.mutate("SetMandatory", mandatory, func(s *FieldState) error {
		s.Mandatory = mandatory
		return nil
	})
}

func (f *field) UpdateBreakType(breakType host.BreakType) error {
	return f.mutate("UpdateBreakType", breakType, func(s *FieldState) error {
		if !breakType.Valid() {
			return fmt.Errorf("field %q break type %q: %w", s.ID, breakType, ErrUnknownType)
		}
		s.BreakType = breakType
		return nil
	})
}

func (f *field) UpdateDisplayType(displayType host.DisplayType) error {
	return f.mutate("UpdateDisplayType", displayType, func(s *FieldState) error {
		if !displayType.Valid() {
			return fmt.Errorf("field %q display type %q: %w", s.ID, displayType, ErrUnknownType)
		}
		s.DisplayType = displayType
		return nil
	})
}

func (f *field) UpdateLayoutType(layoutType host.LayoutType) error {
	return f.mutate("UpdateLayoutType", layoutType, func(s *FieldState) error {
		if !layoutType.Valid() {
			return fmt.Errorf("field %q layout type %q: %w", s.ID, layoutType, ErrUnknownType)
		}
		s.LayoutType = layoutType
		return nil
	})
}

func (f *field) UpdateDisplaySize(size host.DisplaySize) error {
	return f.mutate("UpdateDisplaySize", size, func(s *FieldState) error {
		if size.Height < 0 || size.Width < 0 {
			return fmt.Errorf("field %q display size %dx%d: %w", s.ID, size.Height, size.Width, ErrInvalidValue)
		}
		applied := size
		s.Size = &applied
		return nil
	})
}

func (f *field) SetRichTextHeight(height int) error {
	return f.mutate("SetRichTextHeight", height, func(s *FieldState) error {
		if height < 0 {
			return fmt.Errorf("field %q rich text height %d: %w", s.ID, height, ErrInvalidValue)
		}
		s.RichTextHeight = height
		return nil
	})
}

func (f *field) SetRichTextWidth(width int) error {
	return f.mutate("SetRichTextWidth", width, func(s *FieldState) error {
		if width < 0 {
			return fmt.Errorf("field %q rich text width %d: %w", s.ID, width, ErrInvalidValue)
		}
		s.RichTextWidth = width
		return nil
	})
}

func (f *field) SetLinkText(text string) error {
	return f.mutate("SetLinkText", text, func(s *FieldState) error {
		s.LinkText = text
		return nil
	})
}

func (f *field) SetMaxLength(length int) error {
	return f.mutate("SetMaxLength", length, func(s *FieldState) error {
		if length < 0 {
			return fmt.Errorf("field %q max length %d: %w", s.ID, length, ErrInvalidValue)
		}
		s.MaxLength = length
		return nil
	})
}

func (f *field) SetPadding(padding int) error {
	return f.mutate("SetPadding", padding, func(s *FieldState) error {
		if padding < 0 {
			return fmt.Errorf("field %q padding %d: %w", s.ID, padding, ErrInvalidValue)
		}
		s.Padding = padding
		return nil
	})
}

func (f *field) SetAlias(alias string) error {
	return f.mutate("SetAlias", alias, func(s *FieldState) error {
		s.Alias = alias
		return nil
	})
}

func (f *field) AddSelectOption(option host.SelectOption) error {
	return f.mutate("AddSelectOption", option, func(s *FieldState) error {
		if !s.Type.AcceptsOptions() {
			return fmt.Errorf("field %q (%s): %w", s.ID, s.Type, ErrOptionsUnsupported)
		}
		s.Options = append(s.Options, option)
		return nil
	})
}

func (f *field) SetDefaultValue(value any) error {
	return f.mutate("SetDefaultValue", value, func(s *FieldState) error {
		if err := checkDefault(s, value); err != nil {
			return err
		}
		s.Default = value
		s.HasDefault = true
		return nil
	})
}

// checkDefault rejects defaults on option-bearing fields that name none of
// the added options. Sourced selects carry no local options and accept any
// value.
func checkDefault(s *FieldState, value any) error {
	if !s.Type.AcceptsOptions() || len(s.Options) == 0 {
		return nil
	}
	for _, candidate := range defaultCandidates(value) {
		if !hasOption(s.Options, candidate) {
			return fmt.Errorf("field %q default %q: %w", s.ID, candidate, ErrUnknownOption)
		}
	}
	return nil
}

func defaultCandidates(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, defaultCandidates(item)...)
		}
		return out
	case float64:
		return []string{strconv.FormatFloat(v, 'f', -1, 64)}
	case float32:
		return []string{strconv.FormatFloat(float64(v), 'f', -1, 32)}
	default:
		text := fmt.Sprint(v)
		if text == "" {
			return nil
		}
		return []string{text}
	}
}

func hasOption(options []host.SelectOption, value string) bool {
	for _, opt := range options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

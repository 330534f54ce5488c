package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-uibuilder/pkg/host"
)

// TabSpec declares a tab.
type TabSpec = host.TabOptions

// GroupSpec declares a field group.
type GroupSpec = host.FieldGroupOptions

// ColumnSpec declares a list column.
type ColumnSpec = host.ColumnProps

// ButtonSpec declares a custom button.
type ButtonSpec = host.ButtonOptions

// SubmitSpec declares the submit button.
type SubmitSpec = host.SubmitButtonOptions

// FieldSpec describes one field. Props is handed to the host unchanged; every
// other member is applied only when declared.
type FieldSpec struct {
	Props          host.FieldProps            `json:"props" yaml:"props"`
	Value          Optional[any]              `json:"value,omitzero" yaml:"value,omitempty"`
	Options        []OptionSpec               `json:"options,omitempty" yaml:"options,omitempty"`
	IsMandatory    Optional[bool]             `json:"isMandatory,omitzero" yaml:"isMandatory,omitempty"`
	BreakType      Optional[host.BreakType]   `json:"updateBreakType,omitzero" yaml:"updateBreakType,omitempty"`
	DisplayType    Optional[host.DisplayType] `json:"updateDisplayType,omitzero" yaml:"updateDisplayType,omitempty"`
	LayoutType     Optional[host.LayoutType]  `json:"updateLayoutType,omitzero" yaml:"updateLayoutType,omitempty"`
	Height         Optional[int]              `json:"height,omitzero" yaml:"height,omitempty"`
	Width          Optional[int]              `json:"width,omitzero" yaml:"width,omitempty"`
	RichTextHeight Optional[int]              `json:"richTextHeight,omitzero" yaml:"richTextHeight,omitempty"`
	RichTextWidth  Optional[int]              `json:"richTextWidth,omitzero" yaml:"richTextWidth,omitempty"`
	LinkText       Optional[string]           `json:"linkText,omitzero" yaml:"linkText,omitempty"`
	MaxLength      Optional[int]              `json:"maxLength,omitzero" yaml:"maxLength,omitempty"`
	Padding        Optional[int]              `json:"padding,omitzero" yaml:"padding,omitempty"`
	Alias          Optional[string]           `json:"alias,omitzero" yaml:"alias,omitempty"`
}

// OptionSpec is one select option. ID accepts JSON strings and numbers since
// host record ids are commonly numeric.
type OptionSpec struct {
	ID       string `json:"id" yaml:"id"`
	Txt      string `json:"txt" yaml:"txt"`
	Selected bool   `json:"selected,omitempty" yaml:"selected,omitempty"`
}

func (o *OptionSpec) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       json.RawMessage `json:"id"`
		Txt      string          `json:"txt"`
		Selected *bool           `json:"selected"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	id, err := scalarString(raw.ID)
	if err != nil {
		return fmt.Errorf("model: option id: %w", err)
	}
	o.ID = id
	o.Txt = raw.Txt
	o.Selected = raw.Selected != nil && *raw.Selected
	return nil
}

func scalarString(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return "", fmt.Errorf("expected string or number, got %s", string(trimmed))
	}
	return n.String(), nil
}

// SublistSpec declares a sublist and the fields created inside it.
type SublistSpec struct {
	Props  host.SublistProps `json:"props" yaml:"props"`
	Fields []FieldSpec       `json:"fields" yaml:"fields"`
}

// SublistValuesSpec carries the rows to write into a named sublist. The row
// index is the sublist line number.
type SublistValuesSpec struct {
	SublistID string `json:"sublistId" yaml:"sublistId"`
	Values    []Row  `json:"values" yaml:"values"`
}

// HasPrefixedID reports whether id follows the host's custom-field naming
// convention.
func HasPrefixedID(id string) bool {
	return strings.Contains(id, CustomFieldMarker)
}

// CustomFieldMarker is the substring that identifies custom page fields.
const CustomFieldMarker = "custpage"

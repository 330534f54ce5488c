package host

// FieldType enumerates the field kinds a host form accepts.
type FieldType string

const (
	FieldTypeCheckbox    FieldType = "checkbox"
	FieldTypeCurrency    FieldType = "currency"
	FieldTypeDate        FieldType = "date"
	FieldTypeDateTime    FieldType = "datetimetz"
	FieldTypeEmail       FieldType = "email"
	FieldTypeFile        FieldType = "file"
	FieldTypeFloat       FieldType = "float"
	FieldTypeHelp        FieldType = "help"
	FieldTypeImage       FieldType = "image"
	FieldTypeInlineHTML  FieldType = "inlinehtml"
	FieldTypeInteger     FieldType = "integer"
	FieldTypeLabel       FieldType = "label"
	FieldTypeLongText    FieldType = "longtext"
	FieldTypeMultiSelect FieldType = "multiselect"
	FieldTypePassword    FieldType = "password"
	FieldTypePercent     FieldType = "percent"
	FieldTypePhone       FieldType = "phone"
	FieldTypeRadio       FieldType = "radio"
	FieldTypeRichText    FieldType = "richtext"
	FieldTypeSelect      FieldType = "select"
	FieldTypeText        FieldType = "text"
	FieldTypeTextArea    FieldType = "textarea"
	FieldTypeTimeOfDay   FieldType = "timeofday"
	FieldTypeURL         FieldType = "url"
)

var fieldTypes = map[FieldType]struct{}{
	FieldTypeCheckbox: {}, FieldTypeCurrency: {}, FieldTypeDate: {}, FieldTypeDateTime: {},
	FieldTypeEmail: {}, FieldTypeFile: {}, FieldTypeFloat: {}, FieldTypeHelp: {},
	FieldTypeImage: {}, FieldTypeInlineHTML: {}, FieldTypeInteger: {}, FieldTypeLabel: {},
	FieldTypeLongText: {}, FieldTypeMultiSelect: {}, FieldTypePassword: {}, FieldTypePercent: {},
	FieldTypePhone: {}, FieldTypeRadio: {}, FieldTypeRichText: {}, FieldTypeSelect: {},
	FieldTypeText: {}, FieldTypeTextArea: {}, FieldTypeTimeOfDay: {}, FieldTypeURL: {},
}

// FieldTypes lists every known field type in a stable order.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText, FieldTypeTextArea, FieldTypeLongText, FieldTypeRichText,
		FieldTypeSelect, FieldTypeMultiSelect, FieldTypeRadio, FieldTypeCheckbox,
		FieldTypeInteger, FieldTypeFloat, FieldTypeCurrency, FieldTypePercent,
		FieldTypeDate, FieldTypeDateTime, FieldTypeTimeOfDay, FieldTypeEmail,
		FieldTypePhone, FieldTypeURL, FieldTypePassword, FieldTypeFile,
		FieldTypeImage, FieldTypeInlineHTML, FieldTypeHelp, FieldTypeLabel,
	}
}

// Valid reports whether the host knows the field type.
func (t FieldType) Valid() bool {
	_, ok := fieldTypes[t]
	return ok
}

// AcceptsOptions reports whether select options may be appended to fields of
// this type.
func (t FieldType) AcceptsOptions() bool {
	switch t {
	case FieldTypeSelect, FieldTypeMultiSelect, FieldTypeRadio:
		return true
	default:
		return false
	}
}

// SublistType selects how the host renders a sublist.
type SublistType string

const (
	SublistTypeList         SublistType = "list"
	SublistTypeStatic       SublistType = "staticlist"
	SublistTypeEditor       SublistType = "editor"
	SublistTypeInlineEditor SublistType = "inlineeditor"
)

// Valid reports whether the host knows the sublist type.
func (t SublistType) Valid() bool {
	switch t {
	case SublistTypeList, SublistTypeStatic, SublistTypeEditor, SublistTypeInlineEditor:
		return true
	default:
		return false
	}
}

// BreakType controls where a field sits in the column flow.
type BreakType string

const (
	BreakTypeNone     BreakType = "none"
	BreakTypeStartCol BreakType = "startcol"
	BreakTypeStartRow BreakType = "startrow"
)

// Valid reports whether the host knows the break type.
func (t BreakType) Valid() bool {
	switch t {
	case BreakTypeNone, BreakTypeStartCol, BreakTypeStartRow:
		return true
	default:
		return false
	}
}

// DisplayType controls field visibility and editability.
type DisplayType string

const (
	DisplayTypeDisabled DisplayType = "disabled"
	DisplayTypeEntry    DisplayType = "entry"
	DisplayTypeHidden   DisplayType = "hidden"
	DisplayTypeInline   DisplayType = "inline"
	DisplayTypeNormal   DisplayType = "normal"
	DisplayTypeReadOnly DisplayType = "readonly"
)

// DisplayTypes lists every known display type in a stable order.
func DisplayTypes() []DisplayType {
	return []DisplayType{
		DisplayTypeNormal, DisplayTypeInline, DisplayTypeHidden,
		DisplayTypeDisabled, DisplayTypeReadOnly, DisplayTypeEntry,
	}
}

// Valid reports whether the host knows the display type.
func (t DisplayType) Valid() bool {
	switch t {
	case DisplayTypeDisabled, DisplayTypeEntry, DisplayTypeHidden,
		DisplayTypeInline, DisplayTypeNormal, DisplayTypeReadOnly:
		return true
	default:
		return false
	}
}

// LayoutType positions a field relative to its neighbours.
type LayoutType string

const (
	LayoutTypeEndRow       LayoutType = "endrow"
	LayoutTypeMidRow       LayoutType = "midrow"
	LayoutTypeNormal       LayoutType = "normal"
	LayoutTypeOutside      LayoutType = "outside"
	LayoutTypeOutsideAbove LayoutType = "outsideabove"
	LayoutTypeOutsideBelow LayoutType = "outsidebelow"
	LayoutTypeStartRow     LayoutType = "startrow"
)

// Valid reports whether the host knows the layout type.
func (t LayoutType) Valid() bool {
	switch t {
	case LayoutTypeEndRow, LayoutTypeMidRow, LayoutTypeNormal, LayoutTypeOutside,
		LayoutTypeOutsideAbove, LayoutTypeOutsideBelow, LayoutTypeStartRow:
		return true
	default:
		return false
	}
}

// FieldProps is the payload handed to AddField.
type FieldProps struct {
	ID        string    `json:"id" yaml:"id"`
	Type      FieldType `json:"type" yaml:"type"`
	Label     string    `json:"label" yaml:"label"`
	Source    string    `json:"source,omitempty" yaml:"source,omitempty"`
	Container string    `json:"container,omitempty" yaml:"container,omitempty"`
}

// TabOptions is the payload handed to AddTab.
type TabOptions struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// FieldGroupOptions is the payload handed to AddFieldGroup. Tab places the
// group inside a previously added tab.
type FieldGroupOptions struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Tab   string `json:"tab,omitempty" yaml:"tab,omitempty"`
}

// SublistProps is the payload handed to AddSublist.
type SublistProps struct {
	ID    string      `json:"id" yaml:"id"`
	Type  SublistType `json:"type" yaml:"type"`
	Label string      `json:"label" yaml:"label"`
	Tab   string      `json:"tab,omitempty" yaml:"tab,omitempty"`
}

// ColumnProps is the payload handed to List.AddColumn.
type ColumnProps struct {
	ID    string    `json:"id" yaml:"id"`
	Type  FieldType `json:"type" yaml:"type"`
	Label string    `json:"label" yaml:"label"`
	Align string    `json:"align,omitempty" yaml:"align,omitempty"`
}

// SelectOption is a single entry appended to a select-like field.
type SelectOption struct {
	Value    string `json:"value"`
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
}

// DisplaySize sets the rendered height and width of a field.
type DisplaySize struct {
	Height int `json:"height"`
	Width  int `json:"width"`
}

// SublistValue addresses one sublist cell.
type SublistValue struct {
	ID    string `json:"id"`
	Line  int    `json:"line"`
	Value any    `json:"value"`
}

// ButtonOptions is the payload handed to AddButton.
type ButtonOptions struct {
	ID           string `json:"id" yaml:"id"`
	Label        string `json:"label" yaml:"label"`
	FunctionName string `json:"functionName,omitempty" yaml:"functionName,omitempty"`
}

// SubmitButtonOptions is the payload handed to AddSubmitButton.
type SubmitButtonOptions struct {
	Label string `json:"label" yaml:"label"`
}

package host

// Form is the host-owned form definition under construction. Methods return
// an error where the host would raise one; the builder treats every error as
// the same "host call failed" kind.
type Form interface {
	SetTitle(title string) error
	AddTab(opts TabOptions) error
	AddFieldGroup(opts FieldGroupOptions) error
	AddField(props FieldProps) (Field, error)
	GetField(id string) (Field, bool)
	AddSublist(props SublistProps) (Sublist, error)
	GetSublist(id string) (Sublist, bool)
	AddSubmitButton(opts SubmitButtonOptions) error
	AddButton(opts ButtonOptions) error
}

// FieldContainer is any scope fields can be created in: the form itself or
// one of its sublists.
type FieldContainer interface {
	AddField(props FieldProps) (Field, error)
}

// Sublist is a repeating-row section of a form.
type Sublist interface {
	FieldContainer
	ID() string
	SetSublistValue(value SublistValue) error
}

// List is a list style page that only carries columns.
type List interface {
	SetTitle(title string) error
	AddColumn(props ColumnProps) error
	AddButton(opts ButtonOptions) error
}

// Field is a single field handle returned by AddField.
type Field interface {
	ID() string
	SetMandatory(mandatory bool) error
	UpdateBreakType(breakType BreakType) error
	UpdateDisplayType(displayType DisplayType) error
	UpdateLayoutType(layoutType LayoutType) error
	UpdateDisplaySize(size DisplaySize) error
	SetRichTextHeight(height int) error
	SetRichTextWidth(width int) error
	SetLinkText(text string) error
	SetMaxLength(length int) error
	SetPadding(padding int) error
	SetAlias(alias string) error
	AddSelectOption(option SelectOption) error
	SetDefaultValue(value any) error
}

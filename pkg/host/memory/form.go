package memory

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-uibuilder/pkg/host"
)

var (
	// ErrMissingID is returned when a call omits a required identifier.
	ErrMissingID = errors.New("memory: id is required")
	// ErrDuplicateID is returned when an identifier is reused within a scope.
	ErrDuplicateID = errors.New("memory: duplicate id")
	// ErrUnknownType is returned for enumeration values the host does not know.
	ErrUnknownType = errors.New("memory: unknown type")
	// ErrUnknownContainer is returned when a field, group or sublist references
	// a tab or group that was never added.
	ErrUnknownContainer = errors.New("memory: unknown container")
	// ErrOptionsUnsupported is returned when options are added to a field type
	// that cannot carry them.
	ErrOptionsUnsupported = errors.New("memory: field type does not accept options")
	// ErrUnknownOption is returned when a default value does not match any
	// option added to the field.
	ErrUnknownOption = errors.New("memory: default value is not an option")
	// ErrUnknownField is returned when a sublist value targets a field the
	// sublist does not have.
	ErrUnknownField = errors.New("memory: unknown field")
	// ErrInvalidValue is returned for negative sizes and lines.
	ErrInvalidValue = errors.New("memory: invalid value")
)

const formTarget = "form"

// Form is an in-process host form. It enforces the rules a hosting runtime
// applies to form construction and journals every call it receives. It is
// safe for concurrent reads while a single caller builds it.
type Form struct {
	mu      sync.RWMutex
	journal *journal

	title    string
	tabs     []host.TabOptions
	groups   []host.FieldGroupOptions
	fields   []*field
	sublists []*sublist
	submit   *host.SubmitButtonOptions
	buttons  []host.ButtonOptions
}

var _ host.Form = (*Form)(nil)

// NewForm returns an empty form with the given title.
func NewForm(title string, opts ...Option) *Form {
	return &Form{
		title:   title,
		journal: newJournal(opts),
	}
}

// Calls returns every call the form and its handles received, in order.
func (f *Form) Calls() []Call {
	return f.journal.snapshot()
}

// SetTitle replaces the form title.
func (f *Form) SetTitle(title string) error {
	return f.journal.record(formTarget, "SetTitle", title, func() error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.title = title
		return nil
	})
}

// AddTab registers a tab.
func (f *Form) AddTab(opts host.TabOptions) error {
	return f.journal.record(formTarget, "AddTab", opts, func() error {
		f.mu.Lock()
		defer f.mu.Unlock()
		id := strings.TrimSpace(opts.ID)
		if id == "" {
			return fmt.Errorf("add tab: %w", ErrMissingID)
		}
		if f.hasTab(id) {
			return fmt.Errorf("add tab %q: %w", id, ErrDuplicateID)
		}
		f.tabs = append(f.tabs, opts)
		return nil
	})
}

// AddFieldGroup registers a field group, optionally inside a tab.
func (f *Form) AddFieldGroup(opts host.FieldGroupOptions) error {
	return f.journal.record(formTarget, "AddFieldGroup", opts, func() error {
		f.mu.Lock()
		defer f.mu.Unlock()
		id := strings.TrimSpace(opts.ID)
		if id == "" {
			return fmt.Errorf("add field group: %w", ErrMissingID)
		}
		if f.hasGroup(id) {
			return fmt.Errorf("add field group %q: %w", id, ErrDuplicateID)
		}
		if opts.Tab != "" && !f.hasTab(opts.Tab) {
			return fmt.Errorf("add field group %q in tab %q: %w", id, opts.Tab, ErrUnknownContainer)
		}
		f.groups = append(f.groups, opts)
		return nil
	})
}

// AddField creates a field on the form body.
func (f *Form) AddField(props host.FieldProps) (host.Field, error) {
	var created *field
	err := f.journal.record(formTarget, "AddField", props, func() error {
		f.mu.Lock()
		defer f.mu.Unlock()
		if err := validateFieldProps(props); err != nil {
			return err
		}
		if findField(f.fields, props.ID) != nil {
			return fmt.Errorf("add field %q: %w", props.ID, ErrDuplicateID)
		}
		if props.Container != "" && !f.hasGroup(props.Container) && !f.hasTab(props.Container) {
			return fmt.Errorf("add field %q in %q: %w", props.ID, props.Container, ErrUnknownContainer)
		}
		created = newField(f, props)
		f.fields = append(f.fields, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetField looks up a form body field.
func (f *Form) GetField(id string) (host.Field, bool) {
	f.journal.note(formTarget, "GetField", id)
	f.mu.RLock()
	defer f.mu.RUnlock()
	if fld := findField(f.fields, id); fld != nil {
		return fld, true
	}
	return nil, false
}

// AddSublist creates a sublist, optionally inside a tab.
func (f *Form) AddSublist(props host.SublistProps) (host.Sublist, error) {
	var created *sublist
	err := f.journal.record(formTarget, "AddSublist", props, func() error {
		f.mu.Lock()
		defer f.mu.Unlock()
		id := strings.TrimSpace(props.ID)
		if id == "" {
			return fmt.Errorf("add sublist: %w", ErrMissingID)
		}
		if !props.Type.Valid() {
			return fmt.Errorf("add sublist %q type %q: %w", id, props.Type, ErrUnknownType)
		}
		if f.findSublist(id) != nil {
			return fmt.Errorf("add sublist %q: %w", id, ErrDuplicateID)
		}
		if props.Tab != "" && !f.hasTab(props.Tab) {
			return fmt.Errorf("add sublist %q in tab %q: %w", id, props.Tab, ErrUnknownContainer)
		}
		created = &sublist{form: f, props: props, rows: make(map[int]map[string]any)}
		f.sublists = append(f.sublists, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetSublist looks up a sublist by id.
func (f *Form) GetSublist(id string) (host.Sublist, bool) {
	f.journal.note(formTarget, "GetSublist", id)
	f.mu.RLock()
	defer f.mu.RUnlock()
	if list := f.findSublist(id); list != nil {
		return list, true
	}
	return nil, false
}

// AddSubmitButton sets the submit button. A second call replaces the first.
func (f *Form) AddSubmitButton(opts host.SubmitButtonOptions) error {
	return f.journal.record(formTarget, "AddSubmitButton", opts, func() error {
		f.mu.Lock()
		defer f.mu.Unlock()
		submit := opts
		f.submit = &submit
		return nil
	})
}

// AddButton adds a custom button.
func (f *Form) AddButton(opts host.ButtonOptions) error {
	return f.journal.record(formTarget, "AddButton", opts, func() error {
		f.mu.Lock()
		defer f.mu.Unlock()
		var err error
		f.buttons, err = appendButton(f.buttons, opts)
		return err
	})
}

func (f *Form) hasTab(id string) bool {
	for _, tab := range f.tabs {
		if tab.ID == id {
			return true
		}
	}
	return false
}

func (f *Form) hasGroup(id string) bool {
	for _, group := range f.groups {
		if group.ID == id {
			return true
		}
	}
	return false
}

func (f *Form) findSublist(id string) *sublist {
	for _, list := range f.sublists {
		if list.props.ID == id {
			return list
		}
	}
	return nil
}

func appendButton(buttons []host.ButtonOptions, opts host.ButtonOptions) ([]host.ButtonOptions, error) {
	id := strings.TrimSpace(opts.ID)
	if id == "" {
		return buttons, fmt.Errorf("add button: %w", ErrMissingID)
	}
	for _, existing := range buttons {
		if existing.ID == id {
			return buttons, fmt.Errorf("add button %q: %w", id, ErrDuplicateID)
		}
	}
	return append(buttons, opts), nil
}

func validateFieldProps(props host.FieldProps) error {
	if strings.TrimSpace(props.ID) == "" {
		return fmt.Errorf("add field: %w", ErrMissingID)
	}
	if !props.Type.Valid() {
		return fmt.Errorf("add field %q type %q: %w", props.ID, props.Type, ErrUnknownType)
	}
	return nil
}

package memory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-uibuilder/pkg/host"
)

const listTarget = "list"

// List is an in-process list page carrying columns and buttons.
type List struct {
	mu      sync.RWMutex
	journal *journal

	title   string
	columns []host.ColumnProps
	buttons []host.ButtonOptions
}

var _ host.List = (*List)(nil)

// NewList returns an empty list page.
func NewList(title string, opts ...Option) *List {
	return &List{title: title, journal: newJournal(opts)}
}

// Calls returns every call the list received, in order.
func (l *List) Calls() []Call {
	return l.journal.snapshot()
}

func (l *List) SetTitle(title string) error {
	return l.journal.record(listTarget, "SetTitle", title, func() error {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.title = title
		return nil
	})
}

func (l *List) AddColumn(props host.ColumnProps) error {
	return l.journal.record(listTarget, "AddColumn", props, func() error {
		l.mu.Lock()
		defer l.mu.Unlock()
		id := strings.TrimSpace(props.ID)
		if id == "" {
			return fmt.Errorf("add column: %w", ErrMissingID)
		}
		if !props.Type.Valid() {
			return fmt.Errorf("add column %q type %q: %w", id, props.Type, ErrUnknownType)
		}
		for _, existing := range l.columns {
			if existing.ID == id {
				return fmt.Errorf("add column %q: %w", id, ErrDuplicateID)
			}
		}
		l.columns = append(l.columns, props)
		return nil
	})
}

func (l *List) AddButton(opts host.ButtonOptions) error {
	return l.journal.record(listTarget, "AddButton", opts, func() error {
		l.mu.Lock()
		defer l.mu.Unlock()
		var err error
		l.buttons, err = appendButton(l.buttons, opts)
		return err
	})
}

// ListDefinition is the snapshot of a List.
type ListDefinition struct {
	Title   string               `json:"title"`
	Columns []host.ColumnProps   `json:"columns,omitempty"`
	Buttons []host.ButtonOptions `json:"buttons,omitempty"`
}

// Definition returns a snapshot of the list.
func (l *List) Definition() ListDefinition {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return ListDefinition{
		Title:   l.title,
		Columns: append([]host.ColumnProps(nil), l.columns...),
		Buttons: append([]host.ButtonOptions(nil), l.buttons...),
	}
}

package memory

import (
	"fmt"

	"github.com/goliatone/go-uibuilder/pkg/host"
)

type sublist struct {
	form   *Form
	props  host.SublistProps
	fields []*field
	rows   map[int]map[string]any
	lines  int
}

var _ host.Sublist = (*sublist)(nil)

func (s *sublist) ID() string {
	return s.props.ID
}

func (s *sublist) target() string {
	return "sublist:" + s.props.ID
}

// AddField creates a field in the sublist's own scope. Containers do not
// apply inside a sublist and are ignored.
func (s *sublist) AddField(props host.FieldProps) (host.Field, error) {
	var created *field
	err := s.form.journal.record(s.target(), "AddField", props, func() error {
		s.form.mu.Lock()
		defer s.form.mu.Unlock()
		if err := validateFieldProps(props); err != nil {
			return err
		}
		if findField(s.fields, props.ID) != nil {
			return fmt.Errorf("sublist %q add field %q: %w", s.props.ID, props.ID, ErrDuplicateID)
		}
		created = newField(s.form, props)
		created.target = s.target() + "/field:" + props.ID
		s.fields = append(s.fields, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *sublist) SetSublistValue(value host.SublistValue) error {
	return s.form.journal.record(s.target(), "SetSublistValue", value, func() error {
		s.form.mu.Lock()
		defer s.form.mu.Unlock()
		if findField(s.fields, value.ID) == nil {
			return fmt.Errorf("sublist %q field %q: %w", s.props.ID, value.ID, ErrUnknownField)
		}
		if value.Line < 0 {
			return fmt.Errorf("sublist %q line %d: %w", s.props.ID, value.Line, ErrInvalidValue)
		}
		row, ok := s.rows[value.Line]
		if !ok {
			row = make(map[string]any)
			s.rows[value.Line] = row
		}
		row[value.ID] = value.Value
		if value.Line >= s.lines {
			s.lines = value.Line + 1
		}
		return nil
	})
}

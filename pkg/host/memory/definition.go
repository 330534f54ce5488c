package memory

import (
	"github.com/goliatone/go-uibuilder/pkg/host"
)

// Definition is a point-in-time copy of everything added to a Form.
type Definition struct {
	Title    string                    `json:"title"`
	Tabs     []host.TabOptions         `json:"tabs,omitempty"`
	Groups   []host.FieldGroupOptions  `json:"groups,omitempty"`
	Fields   []FieldState              `json:"fields,omitempty"`
	Sublists []SublistState            `json:"sublists,omitempty"`
	Submit   *host.SubmitButtonOptions `json:"submit,omitempty"`
	Buttons  []host.ButtonOptions      `json:"buttons,omitempty"`
}

// SublistState is the snapshot of one sublist. Rows is dense: lines that
// never received a value are empty maps.
type SublistState struct {
	ID     string           `json:"id"`
	Type   host.SublistType `json:"type"`
	Label  string           `json:"label"`
	Tab    string           `json:"tab,omitempty"`
	Fields []FieldState     `json:"fields,omitempty"`
	Rows   []map[string]any `json:"rows,omitempty"`
}

// Field returns the snapshot of a form body field.
func (d Definition) Field(id string) (FieldState, bool) {
	for _, fld := range d.Fields {
		if fld.ID == id {
			return fld, true
		}
	}
	return FieldState{}, false
}

// Sublist returns the snapshot of a sublist.
func (d Definition) Sublist(id string) (SublistState, bool) {
	for _, list := range d.Sublists {
		if list.ID == id {
			return list, true
		}
	}
	return SublistState{}, false
}

// Definition returns a snapshot of the form.
func (f *Form) Definition() Definition {
	f.mu.RLock()
	defer f.mu.RUnlock()

	def := Definition{
		Title:   f.title,
		Tabs:    append([]host.TabOptions(nil), f.tabs...),
		Groups:  append([]host.FieldGroupOptions(nil), f.groups...),
		Fields:  snapshotFields(f.fields),
		Buttons: append([]host.ButtonOptions(nil), f.buttons...),
	}
	if f.submit != nil {
		submit := *f.submit
		def.Submit = &submit
	}
	for _, list := range f.sublists {
		state := SublistState{
			ID:     list.props.ID,
			Type:   list.props.Type,
			Label:  list.props.Label,
			Tab:    list.props.Tab,
			Fields: snapshotFields(list.fields),
		}
		if list.lines > 0 {
			state.Rows = make([]map[string]any, list.lines)
			for line := range state.Rows {
				row := make(map[string]any, len(list.rows[line]))
				for key, value := range list.rows[line] {
					row[key] = value
				}
				state.Rows[line] = row
			}
		}
		def.Sublists = append(def.Sublists, state)
	}
	return def
}

func snapshotFields(fields []*field) []FieldState {
	if len(fields) == 0 {
		return nil
	}
	out := make([]FieldState, len(fields))
	for i, fld := range fields {
		state := fld.state
		state.Options = append([]host.SelectOption(nil), fld.state.Options...)
		if fld.state.Size != nil {
			size := *fld.state.Size
			state.Size = &size
		}
		out[i] = state
	}
	return out
}

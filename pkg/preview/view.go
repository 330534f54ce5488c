package preview

import (
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-uibuilder/pkg/host"
	"github.com/goliatone/go-uibuilder/pkg/host/memory"
)

var (
	policyOnce   sync.Once
	textPolicy   *bluemonday.Policy
	markupPolicy *bluemonday.Policy
)

func policies() (*bluemonday.Policy, *bluemonday.Policy) {
	policyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
		markupPolicy = bluemonday.UGCPolicy()
	})
	return textPolicy, markupPolicy
}

// plain strips every tag. The template escapes the result again, so the
// entities bluemonday emits are decoded first.
func plain(raw string) string {
	strict, _ := policies()
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(raw)))
}

func markup(raw string) string {
	_, ugc := policies()
	return ugc.Sanitize(raw)
}

type pageView struct {
	Title     string
	Theme     string
	Variant   string
	CSS       string
	Sections  []sectionView
	HasSubmit bool
	Submit    string
	Buttons   []buttonView
}

// sectionView is a tab, or the untabbed page body when ID is empty.
// Groups[0] holds fields placed directly in the section.
type sectionView struct {
	ID       string
	Label    string
	Groups   []groupView
	Sublists []sublistView
}

type groupView struct {
	ID     string
	Label  string
	Fields []fieldView
}

type fieldView struct {
	ID        string
	Label     string
	Type      string
	Input     string
	Value     string
	Mandatory bool
	Hidden    bool
	ReadOnly  bool
	Disabled  bool
	Multiple  bool
	Multiline bool
	Markup    bool
	Checked   bool
	MaxLength int
	Options   []optionView
	StartCol  bool
	StartRow  bool
}

type optionView struct {
	Value    string
	Text     string
	Selected bool
}

type sublistView struct {
	ID      string
	Label   string
	Type    string
	Columns []fieldView
	Rows    [][]string
}

type buttonView struct {
	ID       string
	Label    string
	Function string
}

func buildView(def memory.Definition) pageView {
	page := pageView{
		Title:    plain(def.Title),
		Sections: []sectionView{{Groups: []groupView{{}}}},
	}

	sectionIndex := make(map[string]int, len(def.Tabs))
	for _, tab := range def.Tabs {
		sectionIndex[tab.ID] = len(page.Sections)
		page.Sections = append(page.Sections, sectionView{
			ID:     tab.ID,
			Label:  plain(tab.Label),
			Groups: []groupView{{}},
		})
	}

	type slot struct{ section, group int }
	groupSlot := make(map[string]slot, len(def.Groups))
	for _, group := range def.Groups {
		idx := sectionIndex[group.Tab]
		owner := &page.Sections[idx]
		owner.Groups = append(owner.Groups, groupView{ID: group.ID, Label: plain(group.Label)})
		groupSlot[group.ID] = slot{section: idx, group: len(owner.Groups) - 1}
	}

	for _, fld := range def.Fields {
		s, ok := groupSlot[fld.Container]
		if !ok {
			s = slot{section: sectionIndex[fld.Container]}
		}
		group := &page.Sections[s.section].Groups[s.group]
		group.Fields = append(group.Fields, fieldViewOf(fld))
	}

	for _, list := range def.Sublists {
		owner := &page.Sections[sectionIndex[list.Tab]]
		owner.Sublists = append(owner.Sublists, sublistViewOf(list))
	}

	if def.Submit != nil {
		page.HasSubmit = true
		page.Submit = plain(def.Submit.Label)
		if page.Submit == "" {
			page.Submit = "Submit"
		}
	}
	for _, b := range def.Buttons {
		page.Buttons = append(page.Buttons, buttonView{ID: b.ID, Label: plain(b.Label), Function: b.FunctionName})
	}
	return page
}

func fieldViewOf(fld memory.FieldState) fieldView {
	view := fieldView{
		ID:        fld.ID,
		Label:     plain(fld.Label),
		Type:      string(fld.Type),
		Input:     inputType(fld.Type),
		Mandatory: fld.Mandatory,
		MaxLength: fld.MaxLength,
		StartCol:  fld.BreakType == host.BreakTypeStartCol,
		StartRow:  fld.BreakType == host.BreakTypeStartRow,
	}
	switch fld.DisplayType {
	case host.DisplayTypeHidden:
		view.Hidden = true
	case host.DisplayTypeInline, host.DisplayTypeReadOnly:
		view.ReadOnly = true
	case host.DisplayTypeDisabled:
		view.Disabled = true
	}

	switch fld.Type {
	case host.FieldTypeTextArea, host.FieldTypeLongText:
		view.Multiline = true
	case host.FieldTypeRichText, host.FieldTypeInlineHTML:
		view.Markup = true
	case host.FieldTypeMultiSelect:
		view.Multiple = true
	}

	selected := defaultSet(fld.Default)
	for _, opt := range fld.Options {
		view.Options = append(view.Options, optionView{
			Value:    opt.Value,
			Text:     plain(opt.Text),
			Selected: opt.Selected || selected[opt.Value],
		})
	}

	if fld.HasDefault {
		if view.Markup {
			view.Value = markup(text(fld.Default))
		} else {
			view.Value = text(fld.Default)
		}
		if fld.Type == host.FieldTypeCheckbox {
			view.Checked = checked(fld.Default)
		}
	}
	return view
}

func sublistViewOf(list memory.SublistState) sublistView {
	view := sublistView{ID: list.ID, Label: plain(list.Label), Type: string(list.Type)}
	for _, fld := range list.Fields {
		if fld.DisplayType == host.DisplayTypeHidden {
			continue
		}
		view.Columns = append(view.Columns, fieldViewOf(fld))
	}
	for _, row := range list.Rows {
		cells := make([]string, 0, len(view.Columns))
		for _, col := range view.Columns {
			cells = append(cells, text(row[col.ID]))
		}
		view.Rows = append(view.Rows, cells)
	}
	return view
}

func inputType(t host.FieldType) string {
	switch t {
	case host.FieldTypeCheckbox:
		return "checkbox"
	case host.FieldTypeDate:
		return "date"
	case host.FieldTypeDateTime:
		return "datetime-local"
	case host.FieldTypeTimeOfDay:
		return "time"
	case host.FieldTypeEmail:
		return "email"
	case host.FieldTypeURL:
		return "url"
	case host.FieldTypePassword:
		return "password"
	case host.FieldTypePhone:
		return "tel"
	case host.FieldTypeInteger, host.FieldTypeFloat, host.FieldTypeCurrency, host.FieldTypePercent:
		return "number"
	case host.FieldTypeFile, host.FieldTypeImage:
		return "file"
	}
	return "text"
}

func text(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case []any:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			parts = append(parts, text(item))
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(value, ", ")
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	}
	return fmt.Sprint(v)
}

func defaultSet(v any) map[string]bool {
	out := map[string]bool{}
	switch value := v.(type) {
	case nil:
	case []any:
		for _, item := range value {
			out[text(item)] = true
		}
	case []string:
		for _, item := range value {
			out[item] = true
		}
	default:
		out[text(value)] = true
	}
	return out
}

func checked(v any) bool {
	switch value := v.(type) {
	case bool:
		return value
	case string:
		return value == "T" || strings.EqualFold(value, "true")
	}
	return false
}

var cssUnsafe = strings.NewReplacer("<", "", ">", "", "{", "", "}", "", ";", "")

// cssVariables turns theme tokens into a sorted :root declaration block.
func cssVariables(tokens map[string]string) string {
	if len(tokens) == 0 {
		return ""
	}
	keys := make([]string, 0, len(tokens))
	for key := range tokens {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		name := key
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		fmt.Fprintf(&b, "  %s: %s;\n", cssUnsafe.Replace(name), cssUnsafe.Replace(tokens[key]))
	}
	b.WriteString("}")
	return b.String()
}

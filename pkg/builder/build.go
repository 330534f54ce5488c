package builder

import (
	"github.com/goliatone/go-uibuilder/pkg/document"
	"github.com/goliatone/go-uibuilder/pkg/host"
)

// Build applies a whole document to form: title, tabs, groups, fields,
// sublists, sublist rows, then buttons. Containers come first so fields and
// sublists can reference them. Each stage runs even if an earlier one
// failed, matching a caller issuing the operations one after another.
func (b *Builder) Build(form host.Form, doc document.Document) (host.Form, Reports) {
	var reports Reports

	if doc.Title != "" {
		reports = append(reports, b.each("title", TitleTitle, 1,
			func(int) string { return "title" },
			func(int) error { return form.SetTitle(doc.Title) },
		))
	}

	var report Report
	if len(doc.Tabs) > 0 {
		_, report = b.AddTabs(form, doc.Tabs)
		reports = append(reports, report)
	}
	if len(doc.Groups) > 0 {
		_, report = b.AddGroups(form, doc.Groups)
		reports = append(reports, report)
	}
	if len(doc.Fields) > 0 {
		_, report = b.AddFields(form, doc.Fields)
		reports = append(reports, report)
	}
	if len(doc.Sublists) > 0 {
		_, report = b.AddSublists(form, doc.Sublists)
		reports = append(reports, report)
	}
	if len(doc.SublistValues) > 0 {
		_, report = b.PopulateSublist(form, doc.SublistValues)
		reports = append(reports, report)
	}

	if doc.Submit != nil || len(doc.Buttons) > 0 {
		reports = append(reports, b.addFormButtons(form, doc))
	}
	return form, reports
}

// BuildList applies the list parts of a document (title, columns, buttons)
// to a list page.
func (b *Builder) BuildList(list host.List, doc document.Document) (host.List, Reports) {
	var reports Reports
	if doc.Title != "" {
		reports = append(reports, b.each("title", TitleTitle, 1,
			func(int) string { return "title" },
			func(int) error { return list.SetTitle(doc.Title) },
		))
	}
	if len(doc.Columns) > 0 {
		_, report := b.AddColumns(list, doc.Columns)
		reports = append(reports, report)
	}
	if len(doc.Buttons) > 0 {
		reports = append(reports, b.each("buttons", TitleButtons, len(doc.Buttons),
			func(i int) string { return doc.Buttons[i].ID },
			func(i int) error { return list.AddButton(doc.Buttons[i]) },
		))
	}
	return list, reports
}

func (b *Builder) addFormButtons(form host.Form, doc document.Document) Report {
	offset := 0
	if doc.Submit != nil {
		offset = 1
	}
	return b.each("buttons", TitleButtons, offset+len(doc.Buttons),
		func(i int) string {
			if i < offset {
				return "submit"
			}
			return doc.Buttons[i-offset].ID
		},
		func(i int) error {
			if i < offset {
				return form.AddSubmitButton(*doc.Submit)
			}
			return form.AddButton(doc.Buttons[i-offset])
		},
	)
}

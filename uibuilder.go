package uibuilder

import (
	"github.com/goliatone/go-uibuilder/pkg/builder"
	"github.com/goliatone/go-uibuilder/pkg/document"
	"github.com/goliatone/go-uibuilder/pkg/host"
	"github.com/goliatone/go-uibuilder/pkg/model"
)

// Form is the host form handle the helpers mutate.
type Form = host.Form

// List is the host list page handle.
type List = host.List

// FieldSpec describes one field.
type FieldSpec = model.FieldSpec

// GroupSpec declares a field group.
type GroupSpec = model.GroupSpec

// TabSpec declares a tab.
type TabSpec = model.TabSpec

// ColumnSpec declares a list column.
type ColumnSpec = model.ColumnSpec

// SublistSpec declares a sublist and its fields.
type SublistSpec = model.SublistSpec

// SublistValuesSpec carries rows for one sublist.
type SublistValuesSpec = model.SublistValuesSpec

// Document is a whole declarative form.
type Document = document.Document

// Report records the outcome of one operation.
type Report = builder.Report

// Option configures the builder behind the helpers.
type Option = builder.Option

// NewBuilder exposes the builder constructor for callers that want reports or
// a shared configured instance.
func NewBuilder(options ...Option) *builder.Builder {
	return builder.New(options...)
}

// AddGroups adds every group to form in order. Failures are logged through
// the configured logger; the form is always returned.
func AddGroups(groups []GroupSpec, form Form, options ...Option) Form {
	out, _ := builder.New(options...).AddGroups(form, groups)
	return out
}

// AddTabs adds every tab to form in order.
func AddTabs(tabs []TabSpec, form Form, options ...Option) Form {
	out, _ := builder.New(options...).AddTabs(form, tabs)
	return out
}

// AddFields creates and configures every field on form.
func AddFields(fields []FieldSpec, form Form, options ...Option) Form {
	out, _ := builder.New(options...).AddFields(form, fields)
	return out
}

// AddColumns adds every column to a list page.
func AddColumns(columns []ColumnSpec, list List, options ...Option) List {
	out, _ := builder.New(options...).AddColumns(list, columns)
	return out
}

// AddSublists creates every sublist and its fields.
func AddSublists(sublists []SublistSpec, form Form, options ...Option) Form {
	out, _ := builder.New(options...).AddSublists(form, sublists)
	return out
}

// PopulateSublist writes rows into existing sublists. Sublists the form does
// not have are skipped.
func PopulateSublist(values []SublistValuesSpec, form Form, options ...Option) Form {
	out, _ := builder.New(options...).PopulateSublist(form, values)
	return out
}

// Build applies a whole document to form and returns the per-stage reports.
func Build(doc Document, form Form, options ...Option) (Form, builder.Reports) {
	return builder.New(options...).Build(form, doc)
}

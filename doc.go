// Package uibuilder builds host forms from declarative descriptions. The
// helpers in this package mirror the operations of pkg/builder with the
// descriptors first and the host handle second, and always return the handle.
//
// A typical page:
//
//	form = uibuilder.AddTabs(tabs, form)
//	form = uibuilder.AddGroups(groups, form)
//	form = uibuilder.AddFields(fields, form)
//	form = uibuilder.AddSublists(sublists, form)
//	form = uibuilder.PopulateSublist(rows, form)
//
// Pass builder.WithLogger to see failures; without it they are dropped.
package uibuilder

package document

import (
	"github.com/goliatone/go-uibuilder/pkg/model"
)

// Document is a complete declarative form: everything the builder needs to
// produce one form or list page in a single pass.
type Document struct {
	Title         string                    `json:"title,omitempty" yaml:"title,omitempty"`
	Tabs          []model.TabSpec           `json:"tabs,omitempty" yaml:"tabs,omitempty"`
	Groups        []model.GroupSpec         `json:"groups,omitempty" yaml:"groups,omitempty"`
	Fields        []model.FieldSpec         `json:"fields,omitempty" yaml:"fields,omitempty"`
	Columns       []model.ColumnSpec        `json:"columns,omitempty" yaml:"columns,omitempty"`
	Sublists      []model.SublistSpec       `json:"sublists,omitempty" yaml:"sublists,omitempty"`
	SublistValues []model.SublistValuesSpec `json:"sublistValues,omitempty" yaml:"sublistValues,omitempty"`
	Submit        *model.SubmitSpec         `json:"submit,omitempty" yaml:"submit,omitempty"`
	Buttons       []model.ButtonSpec        `json:"buttons,omitempty" yaml:"buttons,omitempty"`
}

// Empty reports whether the document declares nothing at all.
func (d Document) Empty() bool {
	return d.Title == "" &&
		len(d.Tabs) == 0 &&
		len(d.Groups) == 0 &&
		len(d.Fields) == 0 &&
		len(d.Columns) == 0 &&
		len(d.Sublists) == 0 &&
		len(d.SublistValues) == 0 &&
		d.Submit == nil &&
		len(d.Buttons) == 0
}

// IsList reports whether the document describes a list page: columns but no
// form body.
func (d Document) IsList() bool {
	return len(d.Columns) > 0 && len(d.Fields) == 0 && len(d.Sublists) == 0
}

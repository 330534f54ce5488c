package openapi

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-uibuilder/pkg/document"
	"github.com/goliatone/go-uibuilder/pkg/host"
	"github.com/goliatone/go-uibuilder/pkg/model"
)

// DefaultPrefix is prepended to every imported field id.
const DefaultPrefix = "custpage_"

// ExtensionKey is the schema extension carrying per-property overrides.
// Recognised keys: type, displayType, breakType, layoutType, order.
const ExtensionKey = "x-uibuilder"

var (
	// ErrOperationNotFound is returned when no operation matches the requested id.
	ErrOperationNotFound = errors.New("openapi import: operation not found")
	// ErrNoRequestBody is returned when the operation has no object request body.
	ErrNoRequestBody = errors.New("openapi import: operation has no object request body")
)

// Option configures an import.
type Option func(*importer)

// WithPrefix overrides DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(i *importer) {
		i.prefix = prefix
	}
}

// WithGroup places every imported field inside a field group which is added
// to the document.
func WithGroup(id, label string) Option {
	return func(i *importer) {
		i.group = &model.GroupSpec{ID: id, Label: label}
	}
}

// WithSubmitLabel sets the submit button label. An empty label omits the button.
func WithSubmitLabel(label string) Option {
	return func(i *importer) {
		i.submit = label
	}
}

type importer struct {
	prefix string
	group  *model.GroupSpec
	submit string
}

// Operations lists the operation ids declared by an OpenAPI document, sorted.
// Operations without an id are reported as "<method> <path>".
func Operations(ctx context.Context, data []byte) ([]string, error) {
	spec, err := load(ctx, data)
	if err != nil {
		return nil, err
	}
	var ids []string
	eachOperation(spec, func(method, path string, op *openapi3.Operation) bool {
		ids = append(ids, operationKey(method, path, op))
		return true
	})
	sort.Strings(ids)
	return ids, nil
}

// Import converts the JSON request body of operationID into a form document:
// one field per top-level property, in property order.
func Import(ctx context.Context, data []byte, operationID string, opts ...Option) (document.Document, error) {
	imp := &importer{prefix: DefaultPrefix, submit: "Submit"}
	for _, opt := range opts {
		if opt != nil {
			opt(imp)
		}
	}

	spec, err := load(ctx, data)
	if err != nil {
		return document.Document{}, err
	}

	var found *openapi3.Operation
	eachOperation(spec, func(method, path string, op *openapi3.Operation) bool {
		if operationKey(method, path, op) == operationID {
			found = op
			return false
		}
		return true
	})
	if found == nil {
		return document.Document{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	body := requestSchema(found.RequestBody)
	if body == nil || len(body.Properties) == 0 {
		return document.Document{}, fmt.Errorf("%w: %q", ErrNoRequestBody, operationID)
	}

	doc := document.Document{Title: found.Summary}
	if doc.Title == "" {
		doc.Title = Label(operationID)
	}
	if imp.group != nil {
		doc.Groups = append(doc.Groups, *imp.group)
	}

	required := make(map[string]bool, len(body.Required))
	for _, name := range body.Required {
		required[name] = true
	}

	for _, name := range orderedProperties(body.Properties) {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		field, ok := imp.field(name, ref.Value, required[name])
		if !ok {
			continue
		}
		doc.Fields = append(doc.Fields, field)
	}

	if imp.submit != "" {
		doc.Submit = &model.SubmitSpec{Label: imp.submit}
	}
	return doc, nil
}

func load(ctx context.Context, data []byte) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("openapi import: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi import: load document: %w", err)
	}
	return spec, nil
}

func eachOperation(spec *openapi3.T, fn func(method, path string, op *openapi3.Operation) bool) {
	if spec.Paths == nil {
		return
	}
	paths := spec.Paths.Map()
	keys := make([]string, 0, len(paths))
	for path := range paths {
		keys = append(keys, path)
	}
	sort.Strings(keys)

	for _, path := range keys {
		item := paths[path]
		if item == nil {
			continue
		}
		for _, method := range []string{"GET", "PUT", "POST", "DELETE", "PATCH"} {
			op := item.GetOperation(method)
			if op == nil {
				continue
			}
			if !fn(method, path, op) {
				return
			}
		}
	}
}

func operationKey(method, path string, op *openapi3.Operation) string {
	if op.OperationID != "" {
		return op.OperationID
	}
	return strings.ToLower(method) + " " + path
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := body.Value.Content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// orderedProperties sorts by the extension "order" first, then by name.
func orderedProperties(props openapi3.Schemas) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	order := func(name string) float64 {
		ref := props[name]
		if ref == nil || ref.Value == nil {
			return math.MaxFloat64
		}
		if v, ok := extension(ref.Value)["order"].(float64); ok {
			return v
		}
		return math.MaxFloat64
	}
	sort.SliceStable(names, func(a, b int) bool {
		oa, ob := order(names[a]), order(names[b])
		if oa != ob {
			return oa < ob
		}
		return names[a] < names[b]
	})
	return names
}

func (imp *importer) field(name string, schema *openapi3.Schema, required bool) (model.FieldSpec, bool) {
	ext := extension(schema)

	fieldType, ok := mapType(schema)
	if override, has := ext["type"].(string); has && host.FieldType(override).Valid() {
		fieldType, ok = host.FieldType(override), true
	}
	if !ok {
		return model.FieldSpec{}, false
	}

	label := schema.Title
	if label == "" {
		label = Label(name)
	}
	spec := model.FieldSpec{
		Props: host.FieldProps{
			ID:    FieldID(imp.prefix, name),
			Type:  fieldType,
			Label: label,
		},
	}
	if imp.group != nil {
		spec.Props.Container = imp.group.ID
	}

	if required {
		spec.IsMandatory = model.Some(true)
	}
	if schema.MaxLength != nil {
		spec.MaxLength = model.Some(int(*schema.MaxLength))
	}
	if schema.Default != nil {
		spec.Value = model.Some(schema.Default)
	}
	if schema.ReadOnly {
		spec.DisplayType = model.Some(host.DisplayTypeInline)
	}
	if v, has := ext["displayType"].(string); has {
		spec.DisplayType = model.Some(host.DisplayType(v))
	}
	if v, has := ext["breakType"].(string); has {
		spec.BreakType = model.Some(host.BreakType(v))
	}
	if v, has := ext["layoutType"].(string); has {
		spec.LayoutType = model.Some(host.LayoutType(v))
	}

	enum := schema.Enum
	if fieldType == host.FieldTypeMultiSelect && schema.Items != nil && schema.Items.Value != nil {
		enum = schema.Items.Value.Enum
	}
	if fieldType.AcceptsOptions() {
		for _, v := range enum {
			id := scalar(v)
			spec.Options = append(spec.Options, model.OptionSpec{ID: id, Txt: Label(id)})
		}
	}
	return spec, true
}

func mapType(schema *openapi3.Schema) (host.FieldType, bool) {
	switch {
	case schema.Type.Is(openapi3.TypeString):
		if len(schema.Enum) > 0 {
			return host.FieldTypeSelect, true
		}
		switch schema.Format {
		case "date":
			return host.FieldTypeDate, true
		case "date-time":
			return host.FieldTypeDateTime, true
		case "time":
			return host.FieldTypeTimeOfDay, true
		case "email":
			return host.FieldTypeEmail, true
		case "uri", "url":
			return host.FieldTypeURL, true
		case "password":
			return host.FieldTypePassword, true
		}
		return host.FieldTypeText, true
	case schema.Type.Is(openapi3.TypeInteger):
		if len(schema.Enum) > 0 {
			return host.FieldTypeSelect, true
		}
		return host.FieldTypeInteger, true
	case schema.Type.Is(openapi3.TypeNumber):
		return host.FieldTypeFloat, true
	case schema.Type.Is(openapi3.TypeBoolean):
		return host.FieldTypeCheckbox, true
	case schema.Type.Is(openapi3.TypeArray):
		if schema.Items != nil && schema.Items.Value != nil && len(schema.Items.Value.Enum) > 0 {
			return host.FieldTypeMultiSelect, true
		}
	}
	return "", false
}

func extension(schema *openapi3.Schema) map[string]any {
	if schema == nil || schema.Extensions == nil {
		return nil
	}
	mapped, _ := schema.Extensions[ExtensionKey].(map[string]any)
	return mapped
}

// scalar renders an enum value. Numbers are decoded as float64 and must not
// come out in exponent form.
func scalar(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

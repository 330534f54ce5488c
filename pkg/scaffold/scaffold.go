package scaffold

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-uibuilder/pkg/document"
	"github.com/goliatone/go-uibuilder/pkg/document/openapi"
	"github.com/goliatone/go-uibuilder/pkg/host"
	"github.com/goliatone/go-uibuilder/pkg/model"
)

var (
	// ErrAborted signals the user interrupted the prompts.
	ErrAborted = errors.New("scaffold: aborted")
	// ErrNoDriver is returned when Run is called without a prompt driver.
	ErrNoDriver = errors.New("scaffold: prompt driver is required")
)

// Option configures Run.
type Option func(*session)

// WithPrefix sets the suggested field id prefix.
func WithPrefix(prefix string) Option {
	return func(s *session) {
		s.prefix = prefix
	}
}

// WithMaxFields stops asking for more fields once n have been declared.
func WithMaxFields(n int) Option {
	return func(s *session) {
		s.maxFields = n
	}
}

type session struct {
	driver    PromptDriver
	prefix    string
	maxFields int
	ids       map[string]struct{}
}

// Run walks the user through a new form document: title, an optional field
// group, a sequence of fields and the submit button.
func Run(ctx context.Context, driver PromptDriver, opts ...Option) (document.Document, error) {
	if driver == nil {
		return document.Document{}, ErrNoDriver
	}
	s := &session{driver: driver, prefix: openapi.DefaultPrefix, ids: map[string]struct{}{}}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	var doc document.Document
	title, err := driver.Input(ctx, InputConfig{Message: "Form title", Validator: required})
	if err != nil {
		return document.Document{}, err
	}
	doc.Title = strings.TrimSpace(title)

	container := ""
	withGroup, err := driver.Confirm(ctx, ConfirmConfig{Message: "Place fields in a field group?"})
	if err != nil {
		return document.Document{}, err
	}
	if withGroup {
		group, err := s.group(ctx)
		if err != nil {
			return document.Document{}, err
		}
		doc.Groups = append(doc.Groups, group)
		container = group.ID
	}

	for s.maxFields <= 0 || len(doc.Fields) < s.maxFields {
		more, err := driver.Confirm(ctx, ConfirmConfig{Message: "Add a field?", Default: len(doc.Fields) == 0})
		if err != nil {
			return document.Document{}, err
		}
		if !more {
			break
		}
		field, err := s.field(ctx, container)
		if err != nil {
			return document.Document{}, err
		}
		doc.Fields = append(doc.Fields, field)
	}

	submit, err := driver.Confirm(ctx, ConfirmConfig{Message: "Add a submit button?", Default: true})
	if err != nil {
		return document.Document{}, err
	}
	if submit {
		label, err := driver.Input(ctx, InputConfig{Message: "Submit label", Default: "Submit"})
		if err != nil {
			return document.Document{}, err
		}
		doc.Submit = &model.SubmitSpec{Label: strings.TrimSpace(label)}
	}
	return doc, nil
}

func (s *session) group(ctx context.Context) (model.GroupSpec, error) {
	label, err := s.driver.Input(ctx, InputConfig{Message: "Group label", Default: "Filters", Validator: required})
	if err != nil {
		return model.GroupSpec{}, err
	}
	id, err := s.driver.Input(ctx, InputConfig{
		Message:   "Group id",
		Default:   openapi.FieldID("", label),
		Validator: s.unique,
	})
	if err != nil {
		return model.GroupSpec{}, err
	}
	id = strings.TrimSpace(id)
	s.ids[id] = struct{}{}
	return model.GroupSpec{ID: id, Label: strings.TrimSpace(label)}, nil
}

func (s *session) field(ctx context.Context, container string) (model.FieldSpec, error) {
	label, err := s.driver.Input(ctx, InputConfig{Message: "Field label", Validator: required})
	if err != nil {
		return model.FieldSpec{}, err
	}
	label = strings.TrimSpace(label)

	id, err := s.driver.Input(ctx, InputConfig{
		Message:   "Field id",
		Default:   openapi.FieldID(s.prefix, label),
		Help:      "Ids containing " + model.CustomFieldMarker + " are treated as custom page fields.",
		Validator: s.unique,
	})
	if err != nil {
		return model.FieldSpec{}, err
	}
	id = strings.TrimSpace(id)
	s.ids[id] = struct{}{}

	types := host.FieldTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: "Field type", Options: names, PageSize: 12})
	if err != nil {
		return model.FieldSpec{}, err
	}
	if idx < 0 || idx >= len(types) {
		return model.FieldSpec{}, fmt.Errorf("scaffold: field type choice %d out of range", idx)
	}

	spec := model.FieldSpec{
		Props: host.FieldProps{ID: id, Type: types[idx], Label: label, Container: container},
	}

	if spec.Props.Type.AcceptsOptions() {
		raw, err := s.driver.Input(ctx, InputConfig{Message: "Options (comma separated)", Validator: required})
		if err != nil {
			return model.FieldSpec{}, err
		}
		for _, opt := range strings.Split(raw, ",") {
			opt = strings.TrimSpace(opt)
			if opt == "" {
				continue
			}
			spec.Options = append(spec.Options, model.OptionSpec{ID: openapi.FieldID("", opt), Txt: opt})
		}
	}

	mandatory, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Mandatory?"})
	if err != nil {
		return model.FieldSpec{}, err
	}
	if mandatory {
		spec.IsMandatory = model.Some(true)
	}
	return spec, nil
}

func required(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("a value is required")
	}
	return nil
}

func (s *session) unique(value string) error {
	if err := required(value); err != nil {
		return err
	}
	if _, taken := s.ids[strings.TrimSpace(value)]; taken {
		return fmt.Errorf("id %q is already used", value)
	}
	return nil
}

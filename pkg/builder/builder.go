package builder

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-uibuilder/pkg/host"
	"github.com/goliatone/go-uibuilder/pkg/logging"
	"github.com/goliatone/go-uibuilder/pkg/model"
)

// Policy decides what happens to the rest of a collection after one item
// fails.
type Policy int

const (
	// AbortOnError stops the collection at the first failing item. Items
	// already applied stay applied.
	AbortOnError Policy = iota
	// ContinueOnError logs the failure and moves on to the next item.
	ContinueOnError
)

func (p Policy) String() string {
	switch p {
	case AbortOnError:
		return "abort"
	case ContinueOnError:
		return "continue"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy maps "abort" and "continue" to a Policy.
func ParsePolicy(raw string) (Policy, error) {
	switch raw {
	case "", "abort":
		return AbortOnError, nil
	case "continue":
		return ContinueOnError, nil
	default:
		return AbortOnError, fmt.Errorf("builder: unknown policy %q", raw)
	}
}

// Log titles emitted when an operation hits a host failure.
const (
	TitleGroups   = "error in field groups..."
	TitleTabs     = "error in tabs..."
	TitleFields   = "error in fields..."
	TitleColumns  = "error in columns..."
	TitleSublists = "error in sublist..."
	TitleTitle    = "error in title..."
	TitleButtons  = "error in buttons..."
)

// Option customises a Builder.
type Option func(*Builder)

// WithLogger routes failures and debug traces to lggr.
func WithLogger(lggr logging.Logger) Option {
	return func(b *Builder) {
		if lggr != nil {
			b.logger = lggr
		}
	}
}

// WithPolicy selects abort-on-error or continue-on-error iteration.
func WithPolicy(policy Policy) Option {
	return func(b *Builder) {
		b.policy = policy
	}
}

// WithColumnMatcher overrides which row keys PopulateSublist writes. The
// default accepts keys containing "custpage".
func WithColumnMatcher(match func(string) bool) Option {
	return func(b *Builder) {
		if match != nil {
			b.matchColumn = match
		}
	}
}

// WithOptionTrace logs each field's option list before the options are
// added, and the input of every PopulateSublist call, at debug level.
func WithOptionTrace(enabled bool) Option {
	return func(b *Builder) {
		b.traceOptions = enabled
	}
}

// Builder turns descriptors into ordered calls on a host handle. It holds no
// per-form state and can be shared.
type Builder struct {
	logger       logging.Logger
	policy       Policy
	matchColumn  func(string) bool
	traceOptions bool
}

// New constructs a Builder. Without options it logs nowhere, aborts a
// collection on its first failure and writes only custpage row keys.
func New(options ...Option) *Builder {
	b := &Builder{
		logger:      logging.Nop(),
		policy:      AbortOnError,
		matchColumn: model.HasPrefixedID,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Policy returns the configured iteration policy.
func (b *Builder) Policy() Policy {
	return b.policy
}

// AddGroups adds every group to form in order.
func (b *Builder) AddGroups(form host.Form, groups []model.GroupSpec) (host.Form, Report) {
	report := b.each("groups", TitleGroups, len(groups),
		func(i int) string { return groups[i].ID },
		func(i int) error { return form.AddFieldGroup(groups[i]) },
	)
	return form, report
}

// AddTabs adds every tab to form in order.
func (b *Builder) AddTabs(form host.Form, tabs []model.TabSpec) (host.Form, Report) {
	report := b.each("tabs", TitleTabs, len(tabs),
		func(i int) string { return tabs[i].ID },
		func(i int) error { return form.AddTab(tabs[i]) },
	)
	return form, report
}

// AddFields creates every field on the form body through the shared field
// applier.
func (b *Builder) AddFields(form host.Form, fields []model.FieldSpec) (host.Form, Report) {
	report := b.each("fields", TitleFields, len(fields),
		func(i int) string { return fields[i].Props.ID },
		func(i int) error {
			_, err := b.ApplyField(form, fields[i])
			return err
		},
	)
	return form, report
}

// AddColumns adds every column to a list page in order.
func (b *Builder) AddColumns(list host.List, columns []model.ColumnSpec) (host.List, Report) {
	report := b.each("columns", TitleColumns, len(columns),
		func(i int) string { return columns[i].ID },
		func(i int) error { return list.AddColumn(columns[i]) },
	)
	return list, report
}

// AddSublists creates each sublist and then its fields inside the sublist's
// own scope. A failing field fails its whole sublist item.
func (b *Builder) AddSublists(form host.Form, sublists []model.SublistSpec) (host.Form, Report) {
	report := b.each("sublists", TitleSublists, len(sublists),
		func(i int) string { return sublists[i].Props.ID },
		func(i int) error { return b.addSublist(form, sublists[i]) },
	)
	return form, report
}

func (b *Builder) addSublist(form host.Form, spec model.SublistSpec) error {
	list, err := form.AddSublist(spec.Props)
	if err != nil {
		return err
	}
	var errs []error
	for _, fieldSpec := range spec.Fields {
		err := guard(func() error {
			_, err := b.ApplyField(list, fieldSpec)
			return err
		})
		if err != nil {
			err = fmt.Errorf("sublist %q field %q: %w", spec.Props.ID, fieldSpec.Props.ID, err)
			if b.policy == AbortOnError {
				return err
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// each runs apply for n items under the builder's policy. Failures are
// logged with title and recorded in the returned report.
func (b *Builder) each(operation, title string, n int, id func(int) string, apply func(int) error) Report {
	report := Report{Operation: operation, Total: n}
	for i := 0; i < n; i++ {
		err := guard(func() error { return apply(i) })
		report.Items = append(report.Items, ItemResult{Index: i, ID: id(i), Err: err})
		if err == nil {
			continue
		}
		b.logger.Error(title, err.Error())
		if b.policy == AbortOnError {
			report.Aborted = i < n-1
			break
		}
	}
	return report
}

// guard turns a panicking host call into an error so one bad item cannot
// take down the caller.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("builder: host panic: %v", r)
		}
	}()
	return fn()
}

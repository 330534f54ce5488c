package builder_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-uibuilder/pkg/builder"
	"github.com/goliatone/go-uibuilder/pkg/host"
	"github.com/goliatone/go-uibuilder/pkg/host/memory"
	"github.com/goliatone/go-uibuilder/pkg/logging"
	"github.com/goliatone/go-uibuilder/pkg/model"
)

func newObservedBuilder(t *testing.T, options ...builder.Option) (*builder.Builder, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	options = append([]builder.Option{builder.WithLogger(logging.NewZap(zap.New(core)))}, options...)
	return builder.New(options...), logs
}

// trace renders journal entries as "target method args" lines, dropping the
// lookups the builder performs.
func trace(calls []memory.Call) []string {
	out := make([]string, 0, len(calls))
	for _, call := range calls {
		if strings.HasPrefix(call.Method, "Get") {
			continue
		}
		out = append(out, fmt.Sprintf("%s %s %v", call.Target, call.Method, call.Args))
	}
	return out
}

func errorEntries(logs *observer.ObservedLogs) []observer.LoggedEntry {
	return logs.FilterLevelExact(zapcore.ErrorLevel).AllUntimed()
}

func TestAddGroups_InvokesEachGroupInOrder(t *testing.T) {
	b, logs := newObservedBuilder(t)
	form := memory.NewForm("Groups")

	groups := []model.GroupSpec{
		{ID: "filters", Label: "Filters"},
		{ID: "results", Label: "Results"},
		{ID: "totals", Label: "Totals"},
	}

	got, report := b.AddGroups(form, groups)
	if got != form {
		t.Fatalf("expected the same form handle back")
	}

	want := []string{
		"form AddFieldGroup {filters Filters }",
		"form AddFieldGroup {results Results }",
		"form AddFieldGroup {totals Totals }",
	}
	if diff := cmp.Diff(want, trace(form.Calls())); diff != "" {
		t.Fatalf("call trace mismatch (-want +got):\n%s", diff)
	}
	if report.Applied() != 3 || report.Failed() != 0 || report.Aborted {
		t.Fatalf("unexpected report: %+v", report)
	}
	if n := logs.Len(); n != 0 {
		t.Fatalf("expected no log entries, got %d", n)
	}
}

func TestAddGroups_FailureOnSecondAbortsRemaining(t *testing.T) {
	b, logs := newObservedBuilder(t)
	boom := errors.New("group rejected")
	form := memory.NewForm("Groups", memory.WithFault(memory.FailNth("AddFieldGroup", 2, boom)))

	groups := []model.GroupSpec{
		{ID: "first", Label: "First"},
		{ID: "second", Label: "Second"},
		{ID: "third", Label: "Third"},
	}

	var (
		got    host.Form
		report builder.Report
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("AddGroups panicked: %v", r)
			}
		}()
		got, report = b.AddGroups(form, groups)
	}()
	if got != form {
		t.Fatalf("expected the form handle back after a failure")
	}

	def := form.Definition()
	if diff := cmp.Diff([]host.FieldGroupOptions{{ID: "first", Label: "First"}}, def.Groups); diff != "" {
		t.Fatalf("applied groups mismatch (-want +got):\n%s", diff)
	}
	for _, call := range form.Calls() {
		if args, ok := call.Args.(host.FieldGroupOptions); ok && args.ID == "third" {
			t.Fatalf("third group must never be attempted")
		}
	}

	if !report.Aborted || report.Failed() != 1 || report.Applied() != 1 || report.Total != 3 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if !errors.Is(report.Err(), boom) {
		t.Fatalf("expected report error to wrap the host failure, got %v", report.Err())
	}

	entries := errorEntries(logs)
	if len(entries) != 1 {
		t.Fatalf("expected one error entry, got %d", len(entries))
	}
	if entries[0].Message != builder.TitleGroups {
		t.Fatalf("unexpected title %q", entries[0].Message)
	}
	if details := entries[0].ContextMap()[logging.DetailsKey]; details != "group rejected" {
		t.Fatalf("unexpected details %v", details)
	}
}

func TestAddGroups_ContinueOnErrorAppliesLaterItems(t *testing.T) {
	b, logs := newObservedBuilder(t, builder.WithPolicy(builder.ContinueOnError))
	form := memory.NewForm("Groups", memory.WithFault(memory.FailNth("AddFieldGroup", 2, errors.New("nope"))))

	_, report := b.AddGroups(form, []model.GroupSpec{
		{ID: "first"}, {ID: "second"}, {ID: "third"},
	})

	var ids []string
	for _, group := range form.Definition().Groups {
		ids = append(ids, group.ID)
	}
	if diff := cmp.Diff([]string{"first", "third"}, ids); diff != "" {
		t.Fatalf("applied groups mismatch (-want +got):\n%s", diff)
	}
	if report.Aborted || report.Applied() != 2 || report.Failed() != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(errorEntries(logs)) != 1 {
		t.Fatalf("expected one logged failure")
	}
}

func TestAddTabs_InvokesEachTabInOrder(t *testing.T) {
	b := builder.New()
	form := memory.NewForm("Tabs")

	_, report := b.AddTabs(form, []model.TabSpec{{ID: "main", Label: "Main"}, {ID: "more", Label: "More"}})

	want := []string{"form AddTab {main Main}", "form AddTab {more More}"}
	if diff := cmp.Diff(want, trace(form.Calls())); diff != "" {
		t.Fatalf("call trace mismatch (-want +got):\n%s", diff)
	}
	if report.Operation != "tabs" || report.Applied() != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestAddTabs_DuplicateIsLoggedAndStops(t *testing.T) {
	b, logs := newObservedBuilder(t)
	form := memory.NewForm("Tabs")

	_, report := b.AddTabs(form, []model.TabSpec{{ID: "main"}, {ID: "main"}, {ID: "other"}})

	if !errors.Is(report.Err(), memory.ErrDuplicateID) {
		t.Fatalf("expected duplicate id error, got %v", report.Err())
	}
	if len(form.Definition().Tabs) != 1 {
		t.Fatalf("expected only the first tab applied")
	}
	entries := errorEntries(logs)
	if len(entries) != 1 || entries[0].Message != builder.TitleTabs {
		t.Fatalf("unexpected log entries: %+v", entries)
	}
}

func TestAddColumns_InvokesEachColumnInOrder(t *testing.T) {
	b := builder.New()
	list := memory.NewList("Accounts")

	got, report := b.AddColumns(list, []model.ColumnSpec{
		{ID: "custpage_name", Type: host.FieldTypeText, Label: "Name"},
		{ID: "custpage_amount", Type: host.FieldTypeCurrency, Label: "Amount", Align: "right"},
	})
	if got != list {
		t.Fatalf("expected the same list handle back")
	}
	want := []string{
		"list AddColumn {custpage_name text Name }",
		"list AddColumn {custpage_amount currency Amount right}",
	}
	if diff := cmp.Diff(want, trace(list.Calls())); diff != "" {
		t.Fatalf("call trace mismatch (-want +got):\n%s", diff)
	}
	if report.Applied() != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestAddColumns_FailureIsLogged(t *testing.T) {
	b, logs := newObservedBuilder(t)
	list := memory.NewList("Accounts")

	_, report := b.AddColumns(list, []model.ColumnSpec{
		{ID: "custpage_a", Type: "bogus"},
		{ID: "custpage_b", Type: host.FieldTypeText},
	})
	if !report.Aborted || report.Failed() != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(list.Definition().Columns) != 0 {
		t.Fatalf("expected no columns after an aborted first item")
	}
	entries := errorEntries(logs)
	if len(entries) != 1 || entries[0].Message != builder.TitleColumns {
		t.Fatalf("unexpected log entries: %+v", entries)
	}
}

type panickingForm struct {
	*memory.Form
}

func (p panickingForm) AddTab(host.TabOptions) error {
	panic("host exploded")
}

func TestOperations_RecoverHostPanics(t *testing.T) {
	b, logs := newObservedBuilder(t)
	form := panickingForm{Form: memory.NewForm("Panics")}

	_, report := b.AddTabs(form, []model.TabSpec{{ID: "main"}})
	if report.Failed() != 1 {
		t.Fatalf("expected the panic to be reported as a failure")
	}
	if !strings.Contains(report.Err().Error(), "host exploded") {
		t.Fatalf("unexpected error %v", report.Err())
	}
	if len(errorEntries(logs)) != 1 {
		t.Fatalf("expected the panic to be logged")
	}
}

func TestParsePolicy(t *testing.T) {
	cases := map[string]builder.Policy{
		"":         builder.AbortOnError,
		"abort":    builder.AbortOnError,
		"continue": builder.ContinueOnError,
	}
	for raw, want := range cases {
		got, err := builder.ParsePolicy(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: want %v got %v", raw, want, got)
		}
	}
	if _, err := builder.ParsePolicy("retry"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
	if builder.ContinueOnError.String() != "continue" {
		t.Fatalf("unexpected policy string %q", builder.ContinueOnError.String())
	}
}

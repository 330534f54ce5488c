package scaffold_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uibuilder/pkg/document"
	"github.com/goliatone/go-uibuilder/pkg/host"
	"github.com/goliatone/go-uibuilder/pkg/model"
	"github.com/goliatone/go-uibuilder/pkg/scaffold"
)

// scriptedDriver answers prompts from fixed queues. An empty input answer
// takes the prompt default and a rejected answer is re-asked with the next
// scripted value, as the terminal driver would.
type scriptedDriver struct {
	inputs   []string
	confirms []bool
	selects  []int
	rejected []string
	err      error
}

func (s *scriptedDriver) Input(_ context.Context, cfg scaffold.InputConfig) (string, error) {
	for {
		if s.err != nil {
			return "", s.err
		}
		if len(s.inputs) == 0 {
			return "", errors.New("no input scripted for " + cfg.Message)
		}
		answer := s.inputs[0]
		s.inputs = s.inputs[1:]
		if answer == "" {
			answer = cfg.Default
		}
		if cfg.Validator != nil {
			if err := cfg.Validator(answer); err != nil {
				s.rejected = append(s.rejected, answer)
				continue
			}
		}
		return answer, nil
	}
}

func (s *scriptedDriver) Confirm(_ context.Context, cfg scaffold.ConfirmConfig) (bool, error) {
	if len(s.confirms) == 0 {
		return false, errors.New("no confirm scripted for " + cfg.Message)
	}
	answer := s.confirms[0]
	s.confirms = s.confirms[1:]
	return answer, nil
}

func (s *scriptedDriver) Select(_ context.Context, cfg scaffold.SelectConfig) (int, error) {
	if len(s.selects) == 0 {
		return -1, errors.New("no select scripted for " + cfg.Message)
	}
	answer := s.selects[0]
	s.selects = s.selects[1:]
	return answer, nil
}

func indexOfType(t *testing.T, want host.FieldType) int {
	t.Helper()
	for i, ft := range host.FieldTypes() {
		if ft == want {
			return i
		}
	}
	t.Fatalf("field type %q not listed", want)
	return -1
}

func TestRun_BuildsDocument(t *testing.T) {
	driver := &scriptedDriver{
		inputs: []string{
			"Account Search",
			"Filters", "",
			"Account Name", "", "Open, On Hold",
			"Note", "custpage_account_name", "custpage_note",
			"",
		},
		confirms: []bool{true, true, true, true, false, false, true},
		selects:  []int{indexOfType(t, host.FieldTypeSelect), indexOfType(t, host.FieldTypeText)},
	}

	doc, err := scaffold.Run(context.Background(), driver)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := document.Document{
		Title:  "Account Search",
		Groups: []model.GroupSpec{{ID: "filters", Label: "Filters"}},
		Fields: []model.FieldSpec{
			{
				Props: host.FieldProps{
					ID: "custpage_account_name", Type: host.FieldTypeSelect,
					Label: "Account Name", Container: "filters",
				},
				Options:     []model.OptionSpec{{ID: "open", Txt: "Open"}, {ID: "on_hold", Txt: "On Hold"}},
				IsMandatory: model.Some(true),
			},
			{
				Props: host.FieldProps{
					ID: "custpage_note", Type: host.FieldTypeText,
					Label: "Note", Container: "filters",
				},
			},
		},
		Submit: &model.SubmitSpec{Label: "Submit"},
	}
	if diff := cmp.Diff(want, doc, cmp.AllowUnexported(model.Optional[bool]{}, model.Optional[any]{},
		model.Optional[int]{}, model.Optional[string]{}, model.Optional[host.BreakType]{},
		model.Optional[host.DisplayType]{}, model.Optional[host.LayoutType]{})); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"custpage_account_name"}, driver.rejected); diff != "" {
		t.Fatalf("expected the duplicate id to be re-asked (-want +got):\n%s", diff)
	}
}

func TestRun_MaxFieldsStopsAsking(t *testing.T) {
	driver := &scriptedDriver{
		inputs:   []string{"Quick", "Name", ""},
		confirms: []bool{false, true, false, false},
		selects:  []int{indexOfType(t, host.FieldTypeText)},
	}
	doc, err := scaffold.Run(context.Background(), driver,
		scaffold.WithMaxFields(1), scaffold.WithPrefix("custpage_07_"))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(doc.Fields) != 1 || doc.Fields[0].Props.ID != "custpage_07_name" {
		t.Fatalf("unexpected fields: %+v", doc.Fields)
	}
	if doc.Submit != nil {
		t.Fatalf("expected no submit button")
	}
}

func TestRun_PropagatesAbort(t *testing.T) {
	_, err := scaffold.Run(context.Background(), &scriptedDriver{err: scaffold.ErrAborted})
	if !errors.Is(err, scaffold.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRun_RequiresDriver(t *testing.T) {
	if _, err := scaffold.Run(context.Background(), nil); !errors.Is(err, scaffold.ErrNoDriver) {
		t.Fatalf("expected ErrNoDriver, got %v", err)
	}
}

package model_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-uibuilder/pkg/model"
)

func TestOptional_JSONPresence(t *testing.T) {
	var payload struct {
		A model.Optional[bool] `json:"a"`
		B model.Optional[bool] `json:"b"`
		C model.Optional[any]  `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a": false, "c": null}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if v, ok := payload.A.Get(); !ok || v {
		t.Fatalf("expected a declared false, got %v %v", v, ok)
	}
	if payload.B.IsSet() {
		t.Fatalf("expected b undeclared")
	}
	if !payload.C.IsSet() || payload.C.Value() != nil {
		t.Fatalf("expected c declared as null")
	}
}

func TestOptional_YAMLNonNull(t *testing.T) {
	var payload struct {
		Width model.Optional[int] `yaml:"width"`
	}
	if err := yaml.Unmarshal([]byte("width: 40\n"), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, ok := payload.Width.Get(); !ok || v != 40 {
		t.Fatalf("expected width 40, got %v %v", v, ok)
	}
}

func TestOptional_Zero(t *testing.T) {
	var unset model.Optional[string]
	if !unset.IsZero() {
		t.Fatalf("unset optional must be zero")
	}
	if model.Some("").IsZero() {
		t.Fatalf("declared empty string must not be zero")
	}
}

func TestRow_JSONKeepsOrder(t *testing.T) {
	var row model.Row
	if err := json.Unmarshal([]byte(`{"custpage_b": "x", "custpage_a": 7, "flag": true, "ratio": 1.5}`), &row); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := model.Row{
		{Key: "custpage_b", Value: "x"},
		{Key: "custpage_a", Value: int64(7)},
		{Key: "flag", Value: true},
		{Key: "ratio", Value: 1.5},
	}
	if diff := cmp.Diff(want, row); diff != "" {
		t.Fatalf("row mismatch (-want +got):\n%s", diff)
	}

	encoded, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(encoded) != `{"custpage_b":"x","custpage_a":7,"flag":true,"ratio":1.5}` {
		t.Fatalf("unexpected encoding %s", encoded)
	}
}

func TestRow_RejectsNonObject(t *testing.T) {
	var row model.Row
	if err := json.Unmarshal([]byte(`["custpage_a"]`), &row); err == nil {
		t.Fatalf("expected an error for a JSON array")
	}
}

func TestRow_YAMLKeepsOrder(t *testing.T) {
	var row model.Row
	if err := yaml.Unmarshal([]byte("custpage_z: 1\ncustpage_a: two\n"), &row); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := model.RowOf("custpage_z", 1, "custpage_a", "two")
	if diff := cmp.Diff(want, row); diff != "" {
		t.Fatalf("row mismatch (-want +got):\n%s", diff)
	}
	if v, ok := row.Get("custpage_a"); !ok || v != "two" {
		t.Fatalf("unexpected lookup %v %v", v, ok)
	}
}

func TestOptionSpec_NumericID(t *testing.T) {
	var opts []model.OptionSpec
	if err := json.Unmarshal([]byte(`[{"id": 12, "txt": "Twelve"}, {"id": "x", "txt": "X", "selected": true}]`), &opts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []model.OptionSpec{{ID: "12", Txt: "Twelve"}, {ID: "x", Txt: "X", Selected: true}}
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestHasPrefixedID(t *testing.T) {
	if !model.HasPrefixedID("custpage_07_account") || !model.HasPrefixedID("x_custpage") {
		t.Fatalf("expected custpage keys to match")
	}
	if model.HasPrefixedID("internalid") {
		t.Fatalf("expected non custpage key to be rejected")
	}
}

func TestOptional_AnyKeepsIntegerPrecision(t *testing.T) {
	var payload struct {
		ID   model.Optional[any] `json:"id"`
		List model.Optional[any] `json:"list"`
		Rate model.Optional[any] `json:"rate"`
	}
	if err := json.Unmarshal([]byte(`{"id": 1234567, "list": [9876543, "x"], "rate": 0.25}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := []any{payload.ID.Value(), payload.List.Value(), payload.Rate.Value()}
	want := []any{int64(1234567), []any{int64(9876543), "x"}, 0.25}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decoded values mismatch (-want +got):\n%s", diff)
	}
}

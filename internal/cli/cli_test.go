package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-uibuilder/pkg/builder"
	"github.com/goliatone/go-uibuilder/pkg/document"
	"github.com/goliatone/go-uibuilder/pkg/host/memory"
	"github.com/goliatone/go-uibuilder/pkg/scaffold"
)

const formYAML = `
title: Search
groups:
  - id: filters
    label: Filters
fields:
  - props: {id: custpage_name, type: text, label: Name, container: filters}
    isMandatory: true
`

const brokenYAML = `
groups:
  - id: a
    tab: missing
  - id: b
`

const apiYAML = `
openapi: 3.0.3
info: {title: Items, version: 1.0.0}
paths:
  /items:
    post:
      operationId: createItem
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                itemName: {type: string}
      responses:
        "201": {description: created}
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, opts []Option, args ...string) (string, *observer.ObservedLogs, error) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	opts = append([]Option{WithLogger(zap.New(core))}, opts...)
	root := NewRootCmd(opts...)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs, err
}

func TestBuild_JSON(t *testing.T) {
	out, _, err := run(t, nil, "build", "--file", writeTemp(t, "form.yaml", formYAML))
	require.NoError(t, err)

	var def memory.Definition
	require.NoError(t, json.Unmarshal([]byte(out), &def))
	require.Equal(t, "Search", def.Title)
	field, ok := def.Field("custpage_name")
	require.True(t, ok)
	require.True(t, field.Mandatory)
	require.Equal(t, "filters", field.Container)
}

func TestBuild_HTML(t *testing.T) {
	out, _, err := run(t, nil, "build", "--file", writeTemp(t, "form.yaml", formYAML), "--format", "html")
	require.NoError(t, err)
	require.Contains(t, out, `<fieldset class="uib-group" id="filters">`)
}

func TestBuild_ReportsFailuresAndLogs(t *testing.T) {
	path := writeTemp(t, "broken.yaml", brokenYAML)

	out, logs, err := run(t, nil, "build", "--file", path, "--format", "calls")
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 item(s) failed")
	require.Len(t, logs.FilterMessage(builder.TitleGroups).All(), 1)

	var calls []memory.Call
	require.NoError(t, json.Unmarshal([]byte(out), &calls))
	require.Len(t, calls, 1, "abort stops after the failing group")

	out, _, err = run(t, nil, "build", "--file", path, "--format", "calls", "--policy", "continue")
	require.Error(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &calls))
	require.Len(t, calls, 2)
}

func TestBuild_UnknownPolicy(t *testing.T) {
	_, _, err := run(t, nil, "build", "--file", writeTemp(t, "form.yaml", formYAML), "--policy", "retry")
	require.Error(t, err)
}

func TestImport_ListsAndConverts(t *testing.T) {
	api := writeTemp(t, "api.yaml", apiYAML)

	out, _, err := run(t, nil, "import", "--openapi", api)
	require.NoError(t, err)
	require.Equal(t, "createItem\n", out)

	target := filepath.Join(t.TempDir(), "item.json")
	_, logs, err := run(t, nil, "import", "--openapi", api, "--operation", "createItem", "--group", "main", "-o", target)
	require.NoError(t, err)
	require.Len(t, logs.FilterMessage("imported operation").All(), 1)

	doc, err := document.Load(target)
	require.NoError(t, err)
	require.Equal(t, "custpage_item_name", doc.Fields[0].Props.ID)
	require.Equal(t, "main", doc.Fields[0].Props.Container)
}

type answers struct {
	inputs   []string
	confirms []bool
	selects  []int
}

func (a *answers) Input(_ context.Context, cfg scaffold.InputConfig) (string, error) {
	v := a.inputs[0]
	a.inputs = a.inputs[1:]
	if v == "" {
		v = cfg.Default
	}
	return v, nil
}

func (a *answers) Confirm(context.Context, scaffold.ConfirmConfig) (bool, error) {
	v := a.confirms[0]
	a.confirms = a.confirms[1:]
	return v, nil
}

func (a *answers) Select(context.Context, scaffold.SelectConfig) (int, error) {
	v := a.selects[0]
	a.selects = a.selects[1:]
	return v, nil
}

func TestScaffold_WritesDocument(t *testing.T) {
	driver := &answers{
		inputs:   []string{"Quick form", "Name", ""},
		confirms: []bool{false, true, false, false},
		selects:  []int{0},
	}
	out, _, err := run(t, []Option{WithPromptDriver(driver)}, "scaffold", "--max-fields", "1")
	require.NoError(t, err)

	doc, err := document.Parse([]byte(out), "scaffold.yaml")
	require.NoError(t, err)
	require.Equal(t, "Quick form", doc.Title)
	require.Len(t, doc.Fields, 1)
	require.Equal(t, "custpage_name", doc.Fields[0].Props.ID)
}

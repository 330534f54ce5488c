package preview_test

import (
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uibuilder/pkg/builder"
	"github.com/goliatone/go-uibuilder/pkg/document"
	"github.com/goliatone/go-uibuilder/pkg/host"
	"github.com/goliatone/go-uibuilder/pkg/host/memory"
	"github.com/goliatone/go-uibuilder/pkg/model"
	"github.com/goliatone/go-uibuilder/pkg/preview"
)

func builtForm(t *testing.T) *memory.Form {
	t.Helper()
	doc := document.Document{
		Title:  "Account <b>search</b>",
		Tabs:   []model.TabSpec{{ID: "custpage_tab", Label: "Details"}},
		Groups: []model.GroupSpec{{ID: "filters", Label: "Filters", Tab: "custpage_tab"}},
		Fields: []model.FieldSpec{
			{
				Props:       host.FieldProps{ID: "custpage_name", Type: host.FieldTypeText, Label: "<b>Name</b> & Co", Container: "filters"},
				IsMandatory: model.Some(true),
				MaxLength:   model.Some(40),
			},
			{
				Props:   host.FieldProps{ID: "custpage_status", Type: host.FieldTypeSelect, Label: "Status", Container: "filters"},
				Options: []model.OptionSpec{{ID: "open", Txt: "Open"}, {ID: "closed", Txt: "Closed"}},
				Value:   model.Some[any]("closed"),
			},
			{
				Props: host.FieldProps{ID: "custpage_notes", Type: host.FieldTypeRichText, Label: "Notes"},
				Value: model.Some[any](`<p>ok</p><script>alert(1)</script>`),
			},
			{
				Props:       host.FieldProps{ID: "custpage_token", Type: host.FieldTypeText, Label: "Token"},
				DisplayType: model.Some(host.DisplayTypeHidden),
				Value:       model.Some[any]("abc"),
			},
		},
		Sublists: []model.SublistSpec{{
			Props: host.SublistProps{ID: "custpage_rows", Type: host.SublistTypeList, Label: "Results"},
			Fields: []model.FieldSpec{
				{Props: host.FieldProps{ID: "custpage_account", Type: host.FieldTypeText, Label: "Account"}},
				{Props: host.FieldProps{ID: "custpage_tenant", Type: host.FieldTypeText, Label: "Tenant"}, DisplayType: model.Some(host.DisplayTypeHidden)},
			},
		}},
		SublistValues: []model.SublistValuesSpec{{
			SublistID: "custpage_rows",
			Values:    []model.Row{model.RowOf("custpage_account", "1000 <Cash>", "custpage_tenant", "7")},
		}},
		Submit:  &model.SubmitSpec{Label: "Search"},
		Buttons: []model.ButtonSpec{{ID: "custpage_back", Label: "Back", FunctionName: "backToMain"}},
	}
	form := memory.NewForm("")
	_, reports := builder.New().Build(form, doc)
	if err := reports.Err(); err != nil {
		t.Fatalf("build: %v", err)
	}
	return form
}

func render(t *testing.T, r *preview.Renderer, def memory.Definition) string {
	t.Helper()
	out, err := r.Render(def)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func newRenderer(t *testing.T, opts ...preview.Option) *preview.Renderer {
	t.Helper()
	r, err := preview.New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func assertContains(t *testing.T, page string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(page, w) {
			t.Fatalf("expected page to contain %q:\n%s", w, page)
		}
	}
}

func assertLacks(t *testing.T, page string, unwanted ...string) {
	t.Helper()
	for _, u := range unwanted {
		if strings.Contains(page, u) {
			t.Fatalf("expected page not to contain %q:\n%s", u, page)
		}
	}
}

func TestRender_EscapesAndSanitizes(t *testing.T) {
	page := render(t, newRenderer(t), builtForm(t).Definition())

	assertContains(t, page,
		"<title>Account search</title>",
		"Name &amp; Co",
		"<p>ok</p>",
		"1000 &lt;Cash&gt;",
	)
	assertLacks(t, page, "<b>", "<script>")
}

func TestRender_Layout(t *testing.T) {
	page := render(t, newRenderer(t), builtForm(t).Definition())

	assertContains(t, page,
		`id="custpage_tab"`,
		`<fieldset class="uib-group" id="filters">`,
		`maxlength="40"`,
		`<option value="closed" selected>Closed</option>`,
		`<input type="hidden" id="custpage_token" name="custpage_token" value="abc">`,
		`data-field="custpage_account"`,
		`<button type="submit">Search</button>`,
		`data-function="backToMain"`,
	)
	assertLacks(t, page, `data-field="custpage_tenant"`)

	if strings.Index(page, `id="custpage_tab"`) > strings.Index(page, `id="filters"`) {
		t.Fatalf("groups must render inside their tab")
	}
}

func TestRender_NumericDefaultSelectsOption(t *testing.T) {
	def := memory.Definition{Fields: []memory.FieldState{{
		ID:         "custpage_sub",
		Type:       host.FieldTypeSelect,
		Label:      "Subsidiary",
		Options:    []host.SelectOption{{Value: "1234567", Text: "Parent"}, {Value: "7654321", Text: "Child"}},
		Default:    float64(1234567),
		HasDefault: true,
	}}}
	page := render(t, newRenderer(t), def)

	assertContains(t, page, `<option value="1234567" selected>Parent</option>`)
	assertLacks(t, page, "e+06")
}

type stubSelector struct {
	selection *theme.Selection
	err       error
	name      string
	variant   string
}

func (s *stubSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.name, s.variant = name, variant
	return s.selection, s.err
}

func TestRender_ThemeTokensBecomeCSSVariables(t *testing.T) {
	selector := &stubSelector{selection: &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:    "acme",
			Version: "1.0.0",
			Tokens:  map[string]string{"brand": "#123456", "surface": "#ffffff"},
			Variants: map[string]theme.Variant{
				"dark": {Tokens: map[string]string{"surface": "#000000"}},
			},
		},
	}}

	page := render(t, newRenderer(t, preview.WithThemeSelector(selector, "acme", "dark")), memory.Definition{Title: "Themed"})

	if selector.name != "acme" || selector.variant != "dark" {
		t.Fatalf("selector asked for %q/%q", selector.name, selector.variant)
	}
	assertContains(t, page,
		`data-theme="acme"`,
		"--brand: #123456;",
		"--surface: #000000;",
	)
}

func TestRender_ThemeSelectionError(t *testing.T) {
	boom := errors.New("unknown theme")
	r := newRenderer(t, preview.WithThemeSelector(&stubSelector{err: boom}, "nope", ""))
	if _, err := r.Render(memory.Definition{}); !errors.Is(err, boom) {
		t.Fatalf("expected theme error, got %v", err)
	}
}

func TestNew_RejectsBrokenTemplate(t *testing.T) {
	if _, err := preview.New(preview.WithTemplate("{% if %}")); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestRenderForm_Nil(t *testing.T) {
	if _, err := newRenderer(t).RenderForm(nil); err == nil {
		t.Fatalf("expected error for nil form")
	}
}

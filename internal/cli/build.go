package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-uibuilder/internal/config"
	"github.com/goliatone/go-uibuilder/pkg/builder"
	"github.com/goliatone/go-uibuilder/pkg/document"
	"github.com/goliatone/go-uibuilder/pkg/host/memory"
	"github.com/goliatone/go-uibuilder/pkg/preview"
)

const (
	formatJSON  = "json"
	formatHTML  = "html"
	formatCalls = "calls"
)

func newBuildCmd(app *App) *cobra.Command {
	var (
		file   string
		format string
		policy string
		output string
		theme  string
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Apply a form document to an in-memory host and print the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := document.Load(file)
			if err != nil {
				return err
			}
			if policy != "" {
				app.Config.Builder.Policy = policy
			}
			if err := app.Config.Validate(); err != nil {
				return err
			}
			b := builder.New(app.Config.BuilderOptions(app.Log)...)

			var (
				payload []byte
				reports builder.Reports
			)
			if doc.IsList() {
				payload, reports, err = buildList(b, doc, format)
			} else {
				payload, reports, err = buildForm(app, b, doc, format, theme)
			}
			if err != nil {
				return err
			}
			if err := writeOutput(cmd.OutOrStdout(), output, payload); err != nil {
				return err
			}
			if failed := reports.Failed(); failed > 0 {
				return fmt.Errorf("build: %d item(s) failed: %w", failed, reports.Err())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "form document (JSON or YAML)")
	cmd.Flags().StringVar(&format, "format", formatJSON, "output format: json, html or calls")
	cmd.Flags().StringVar(&policy, "policy", "", "override builder.policy: abort or continue")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&theme, "theme", "", "theme manifest for html output (overrides preview.theme_file)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func buildForm(app *App, b *builder.Builder, doc document.Document, format, themeFile string) ([]byte, builder.Reports, error) {
	form := memory.NewForm("")
	_, reports := b.Build(form, doc)

	switch format {
	case formatJSON:
		out, err := marshal(form.Definition())
		return out, reports, err
	case formatCalls:
		out, err := marshal(form.Calls())
		return out, reports, err
	case formatHTML:
		opts, err := previewOptions(app.Config, themeFile)
		if err != nil {
			return nil, reports, err
		}
		renderer, err := preview.New(opts...)
		if err != nil {
			return nil, reports, err
		}
		out, err := renderer.RenderForm(form)
		return out, reports, err
	}
	return nil, reports, fmt.Errorf("build: unknown format %q", format)
}

func buildList(b *builder.Builder, doc document.Document, format string) ([]byte, builder.Reports, error) {
	list := memory.NewList("")
	_, reports := b.BuildList(list, doc)

	switch format {
	case formatJSON:
		out, err := marshal(list.Definition())
		return out, reports, err
	case formatCalls:
		out, err := marshal(list.Calls())
		return out, reports, err
	case formatHTML:
		return nil, reports, errors.New("build: html output is only available for forms")
	}
	return nil, reports, fmt.Errorf("build: unknown format %q", format)
}

func previewOptions(cfg *config.Config, themeFile string) ([]preview.Option, error) {
	if themeFile == "" {
		themeFile = cfg.Preview.ThemeFile
	}
	if themeFile == "" {
		return nil, nil
	}
	manifest, err := config.LoadTheme(themeFile)
	if err != nil {
		return nil, err
	}
	selector := config.ManifestSelector{Manifest: manifest}
	return []preview.Option{preview.WithThemeSelector(selector, manifest.Name, cfg.Preview.Variant)}, nil
}

func marshal(v any) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

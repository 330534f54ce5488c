package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-uibuilder/pkg/document"
	"github.com/goliatone/go-uibuilder/pkg/document/openapi"
)

func newImportCmd(app *App) *cobra.Command {
	var (
		source    string
		operation string
		prefix    string
		group     string
		output    string
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Create a form document from an OpenAPI request body",
		Long: "Reads an OpenAPI 3 document and converts the request body of one operation\n" +
			"into a form document. Without --operation the available operations are listed.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(source)
			if err != nil {
				return fmt.Errorf("import: read %s: %w", source, err)
			}

			if operation == "" {
				ids, err := openapi.Operations(cmd.Context(), data)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(ids, "\n"))
				return err
			}

			if prefix == "" {
				prefix = app.Config.Import.Prefix
			}
			opts := []openapi.Option{openapi.WithPrefix(prefix)}
			if group != "" {
				opts = append(opts, openapi.WithGroup(group, openapi.Label(group)))
			}
			doc, err := openapi.Import(cmd.Context(), data, operation, opts...)
			if err != nil {
				return err
			}
			app.Log.Debug("imported operation", fmt.Sprintf("%s: %d field(s)", operation, len(doc.Fields)))

			format := document.FormatYAML
			if output != "" {
				format = document.FormatFromPath(output)
			}
			var buf bytes.Buffer
			if err := document.Encode(&buf, doc, format); err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, buf.Bytes())
		},
	}
	cmd.Flags().StringVar(&source, "openapi", "", "OpenAPI 3 document (JSON or YAML)")
	cmd.Flags().StringVar(&operation, "operation", "", "operation id to import")
	cmd.Flags().StringVar(&prefix, "prefix", "", "field id prefix (overrides import.prefix)")
	cmd.Flags().StringVar(&group, "group", "", "place fields in a field group with this id")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; format follows the extension (stdout YAML if empty)")
	_ = cmd.MarkFlagRequired("openapi")
	return cmd
}

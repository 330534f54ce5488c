package cli

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-uibuilder/pkg/document"
	"github.com/goliatone/go-uibuilder/pkg/scaffold"
)

func newScaffoldCmd(app *App) *cobra.Command {
	var (
		output    string
		maxFields int
	)
	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Answer a few questions to create a starter form document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			driver := app.prompts
			if driver == nil {
				driver = scaffold.NewSurveyDriver()
			}
			doc, err := scaffold.Run(cmd.Context(), driver,
				scaffold.WithPrefix(app.Config.Import.Prefix),
				scaffold.WithMaxFields(maxFields),
			)
			if err != nil {
				return err
			}

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
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; format follows the extension (stdout YAML if empty)")
	cmd.Flags().IntVar(&maxFields, "max-fields", 0, "stop after this many fields (0 means ask until declined)")
	return cmd
}

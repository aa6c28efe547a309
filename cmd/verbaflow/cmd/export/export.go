package export

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"verbaflow/cmd/verbaflow/cmd/common"
	"verbaflow/internal/app"
	apperrors "verbaflow/internal/app/errors"
	"verbaflow/internal/app/export"
)

var (
	formats   string
	outputDir string
)

func init() {
	Cmd.Flags().StringVarP(&formats, "format", "f", "txt", "comma separated formats: txt, pdf, docx")
	Cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (overrides the configured export sink)")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a saved transcription as TXT, PDF or DOCX",
	Long: `Export a saved transcription as TXT, PDF or DOCX.

- Files are named after the source media and today's date, e.g. interview_2024-03-05.pdf
- Use "history export" for a spreadsheet of the whole history`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := export.ParseFormats(formats)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			return fmt.Errorf("no export format given")
		}
		for _, f := range list {
			if !lo.Contains(export.TextFormats, f) {
				return fmt.Errorf("a transcript cannot be exported as %s (use txt, pdf or docx)", f)
			}
		}

		cfg, err := common.LoadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		h, cleanup, err := app.InitializeOffline(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()
		defer h.Logger.Sync()

		entry, ok := h.Store.Get(args[0])
		if !ok {
			return apperrors.NotFound("history entry", args[0])
		}

		exporter := h.Exporter
		if outputDir != "" {
			exporter = app.DirExporter(outputDir, nil, h.Logger)
		}
		return exportAll(ctx, cmd, exporter, exporter.Document(entry.Text, entry.FileName), list)
	},
}

func exportAll(ctx context.Context, cmd *cobra.Command, exporter *export.Exporter, doc export.Document, list []export.Format) error {
	for _, f := range list {
		res, err := exporter.Export(ctx, f, doc)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %s to %s\n", f, res.Location)
	}
	return nil
}

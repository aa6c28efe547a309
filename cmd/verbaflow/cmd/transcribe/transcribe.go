package transcribe

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"verbaflow/cmd/verbaflow/cmd/common"
	"verbaflow/internal/app"
	"verbaflow/internal/app/export"
	"verbaflow/internal/app/intake"
	"verbaflow/internal/app/model"
	"verbaflow/internal/app/progress"
)

var (
	language      string
	exportFormats string
	outputDir     string
	forceProgress bool
	noProgress    bool
)

func init() {
	Cmd.Flags().StringVarP(&language, "language", "l", "",
		"audio language, by name or code (e.g. \"English (US)\", en-US, auto); defaults to the configured language")
	Cmd.Flags().StringVarP(&exportFormats, "export", "e", "",
		"comma separated export formats: txt, pdf, docx")
	Cmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"directory for exported files (overrides the configured export sink)")
	Cmd.Flags().BoolVar(&forceProgress, "progress", false, "show progress even when stderr is not a terminal")
	Cmd.Flags().BoolVar(&noProgress, "no-progress", false, "never show progress")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <file>",
	Short: "Transcribe an audio or video file",
	Long: `Transcribe an audio or video file and print the text to stdout.

- The file must be audio or video and at most the configured size (20MB by default)
- The transcript is saved to the history
- Use -e to also export it, e.g. -e txt,pdf`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	formats, err := export.ParseFormats(exportFormats)
	if err != nil {
		return err
	}
	for _, f := range formats {
		if !lo.Contains(export.TextFormats, f) {
			return fmt.Errorf("a transcript cannot be exported as %s (use txt, pdf or docx)", f)
		}
	}

	cfg, err := common.LoadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	application, cleanup, err := app.InitializeApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	defer application.Logger.Sync()

	ctrl := application.Controller
	if language != "" {
		lang, err := model.ParseLanguage(language)
		if err != nil {
			return err
		}
		if _, err := ctrl.SetLanguage(lang); err != nil {
			return err
		}
	}

	input, err := intake.ReadFile(args[0], ctrl.Intake().MaxBytes())
	if err != nil {
		return err
	}
	if _, err := ctrl.SelectMedia(input); err != nil {
		return err
	}
	defer ctrl.Reset()

	pm := progress.NewManager(progress.Config{
		Enabled: !noProgress && progress.ShouldShow(forceProgress),
		Writer:  cmd.ErrOrStderr(),
	})
	spinner := pm.Spinner("Transcribing " + input.Name)

	st, err := ctrl.SubmitAndWait(ctx)
	if st.Status == model.RunCompleted {
		spinner.Complete()
	} else {
		spinner.Abort()
	}
	pm.Wait()

	if err != nil {
		return err
	}
	if st.Status != model.RunCompleted {
		return errors.New(st.Error)
	}
	if st.Warning != "" {
		common.Warn(cmd.ErrOrStderr(), "%s", st.Warning)
	}

	fmt.Fprintln(cmd.OutOrStdout(), st.Text)

	if len(formats) == 0 {
		return nil
	}
	exporter := application.Exporter
	if outputDir != "" {
		exporter = app.DirExporter(outputDir, application.Metrics, application.Logger)
	}
	doc := exporter.Document(st.Text, st.FileName())
	for _, f := range formats {
		res, err := exporter.Export(ctx, f, doc)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "exported %s to %s\n", f, res.Location)
	}
	return nil
}

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"verbaflow/cmd/verbaflow/cmd/common"
	"verbaflow/internal/app"
	apperrors "verbaflow/internal/app/errors"
	"verbaflow/internal/app/model"
)

const dateLayout = "2006-01-02 15:04"

var (
	asJSON    bool
	editText  string
	editFile  string
	outputDir string
)

// Cmd represents the history command
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "List, show, edit, delete or export saved transcriptions",
	Long: `Manage the transcription history.

- Entries are listed newest first
- history commands never call the transcription service, so no API key is needed`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved transcriptions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistory(cmd, func(ctx context.Context, h *app.Offline) error {
			entries := h.Store.List()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transcriptions saved yet.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tLANGUAGE\tFILE\tTEXT")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.ID, e.CreatedAt.Local().Format(dateLayout), e.Language, e.FileName, common.Excerpt(e.Text, 48))
			}
			return w.Flush()
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the text of a saved transcription",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistory(cmd, func(ctx context.Context, h *app.Offline) error {
			entry, err := lookup(h, args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), entry)
			}
			fmt.Fprintln(cmd.OutOrStdout(), entry.Text)
			return nil
		})
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Replace the text of a saved transcription",
	Long: `Replace the text of a saved transcription.

The new text comes from --text, or from --file (use - for stdin).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := newText(cmd)
		if err != nil {
			return err
		}
		return withHistory(cmd, func(ctx context.Context, h *app.Offline) error {
			updated, err := h.Store.Update(ctx, args[0], text)
			if err != nil {
				return err
			}
			if !updated {
				return apperrors.NotFound("history entry", args[0])
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "updated %s\n", args[0])
			return nil
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved transcription",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistory(cmd, func(ctx context.Context, h *app.Offline) error {
			removed, err := h.Store.Remove(ctx, args[0])
			if err != nil {
				return err
			}
			if !removed {
				return apperrors.NotFound("history entry", args[0])
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "deleted %s\n", args[0])
			return nil
		})
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the whole history to an Excel spreadsheet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistory(cmd, func(ctx context.Context, h *app.Offline) error {
			exporter := h.Exporter
			if outputDir != "" {
				exporter = app.DirExporter(outputDir, nil, h.Logger)
			}
			res, err := exporter.ExportHistory(ctx, h.Store.List())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "export finished, exported file path: %s\n", res.Location)
			return nil
		})
	},
}

func init() {
	Cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print entries as JSON")
	editCmd.Flags().StringVarP(&editText, "text", "t", "", "new text")
	editCmd.Flags().StringVarP(&editFile, "file", "f", "", "read the new text from a file, - for stdin")
	editCmd.MarkFlagsMutuallyExclusive("text", "file")
	exportCmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory for the spreadsheet (overrides the configured export sink)")

	Cmd.AddCommand(listCmd, showCmd, editCmd, deleteCmd, exportCmd)
}

func withHistory(cmd *cobra.Command, fn func(context.Context, *app.Offline) error) error {
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
	return fn(ctx, h)
}

func lookup(h *app.Offline, id string) (model.HistoryEntry, error) {
	entry, ok := h.Store.Get(id)
	if !ok {
		return model.HistoryEntry{}, apperrors.NotFound("history entry", id)
	}
	return entry, nil
}

func newText(cmd *cobra.Command) (string, error) {
	switch {
	case cmd.Flags().Changed("text"):
		return editText, nil
	case editFile == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		return strings.TrimRight(string(data), "\n"), err
	case editFile != "":
		data, err := os.ReadFile(editFile)
		return strings.TrimRight(string(data), "\n"), err
	default:
		return "", fmt.Errorf("pass the new text with --text or --file")
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package languages

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"verbaflow/cmd/verbaflow/cmd/common"
	"verbaflow/internal/app/model"
)

// Cmd represents the languages command
var Cmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages accepted by --language",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		selected := model.DefaultLanguage
		if cfg, err := common.LoadConfig(); err == nil {
			if lang, err := cfg.Language(); err == nil {
				selected = lang
			}
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tLANGUAGE\t")
		for _, l := range model.Languages() {
			mark := ""
			if l == selected {
				mark = "(default)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", l.Code(), l, mark)
		}
		return w.Flush()
	},
}

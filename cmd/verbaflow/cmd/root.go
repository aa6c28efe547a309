package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"verbaflow/cmd/verbaflow/cmd/common"
	"verbaflow/cmd/verbaflow/cmd/export"
	"verbaflow/cmd/verbaflow/cmd/history"
	"verbaflow/cmd/verbaflow/cmd/languages"
	"verbaflow/cmd/verbaflow/cmd/serve"
	"verbaflow/cmd/verbaflow/cmd/transcribe"
	"verbaflow/cmd/verbaflow/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "verbaflow",
	Short: "Transcribe audio and video files with a speech model",
	Long: `VerbaFlow transcribes audio and video files with Gemini (or OpenAI Whisper).

- transcribe a file and print the text, optionally exporting TXT, PDF or DOCX
- browse, edit, delete and export the saved transcription history
- serve a local HTTP API for browser clients`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(history.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(languages.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().StringVarP(&common.ConfigPath, "config", "c", "", "config file (default is ./"+common.DefaultConfigFile+" when present)")
	rootCmd.PersistentFlags().BoolVarP(&common.Verbose, "verbose", "V", false, "verbose output")
}

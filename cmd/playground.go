package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/josephlewis42/myshell/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// playgroundCmd runs the shell inside a scratch directory with event logging
// and prints a report of the session before the directory is removed.
var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Run the shell in a temporary directory with event logging enabled.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		dir, err := os.MkdirTemp("", "playground")
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)

		playgroundLogger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "playground"})
		cfg, err := config.Initialize(afero.NewOsFs(), dir, playgroundLogger)
		if err != nil {
			return err
		}
		cfg.EventLog = config.EventLogName
		cfg.HistoryFile = config.HistoryName

		playgroundLogger.Infof("Working in: file://%s", dir)
		playgroundLogger.Infof("Events are logged to %s and summarized on exit", filepath.Join(dir, config.EventLogName))
		playgroundLogger.Print(strings.Repeat("=", 80))

		orig, err := os.Getwd()
		if err != nil {
			return err
		}
		if err := os.Chdir(dir); err != nil {
			return err
		}
		defer os.Chdir(orig)

		if err := runShell(cmd, cfg); err != nil {
			return err
		}

		// The directory is removed on return, so summarize the log first.
		playgroundLogger.Print(strings.Repeat("=", 80))
		return writeReport(cmd.ErrOrStderr(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}

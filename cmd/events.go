package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/josephlewis42/myshell/core/config"
	"github.com/josephlewis42/myshell/core/logger"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Explore the command event log.",
}

var reportCommand = &cobra.Command{
	Use:   "report",
	Short: "Show a report of events.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		return writeReport(cmd.OutOrStdout(), cfg)
	},
}

// writeReport summarizes the configured event log as YAML.
func writeReport(w io.Writer, cfg *config.Configuration) error {
	if cfg.EventLogPath() == "" {
		return errors.New("event_log is not set in the configuration")
	}

	fd, err := cfg.ReadEventLog()
	if err != nil {
		return err
	}
	defer fd.Close()

	var report logger.Report
	if err := logger.ReadJSONLinesLog(fd, report.Update); err != nil {
		return err
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(out))
	return err
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(reportCommand)
}

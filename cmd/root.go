package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/josephlewis42/myshell/core/config"
	"github.com/josephlewis42/myshell/core/logger"
	"github.com/josephlewis42/myshell/core/shell"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgPath     string
	commandLine string
	verbose     bool
)

// loadConfig reads the configuration named by --config, or the built-in
// defaults when no path was given.
func loadConfig() (*config.Configuration, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}

	return config.Load(afero.NewOsFs(), cfgPath)
}

func newLogger(w io.Writer, cfg *config.Configuration) *log.Logger {
	diag := log.NewWithOptions(w, log.Options{
		Prefix: shell.Name,
	})

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	if verbose {
		level = log.DebugLevel
	}
	diag.SetLevel(level)

	return diag
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// runShell starts a session on the process's standard streams with the
// given configuration.
func runShell(cmd *cobra.Command, cfg *config.Configuration) error {
	diag := newLogger(cmd.ErrOrStderr(), cfg)

	opts := []shell.Option{
		shell.WithPrompt(cfg.Prompt),
		shell.WithMaxLineLength(cfg.MaxLineLength),
		shell.WithLogger(diag),
	}

	if cfg.EventLogPath() != "" {
		logFd, err := cfg.OpenEventLog()
		if err != nil {
			return fmt.Errorf("opening event log: %w", err)
		}
		defer logFd.Close()

		recorder := newEventRecorder(logFd)
		diag.Debug("recording events", "path", cfg.EventLogPath(), "session", recorder.SessionID())
		opts = append(opts, shell.WithEventRecorder(recorder))
	}

	// -c "" still means a single (empty) command, not an interactive session.
	single := cmd.Flags().Changed("command")

	if !single && isTerminal() {
		reader, err := shell.NewTerminalReader(cfg.HistoryPath())
		if err != nil {
			return err
		}
		defer reader.Close()

		opts = append(opts, shell.WithLineReader(reader), shell.WithColorPrompt(cfg.Color))
	}

	s := shell.New(os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts...)

	if single {
		s.RunCommand(commandLine)
		return nil
	}

	return s.Run()
}

func newEventRecorder(w io.Writer) *logger.SessionLogger {
	return logger.NewJsonLinesLogRecorder(w).NewSession()
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "myshell",
	Short: "A minimal interactive command interpreter",
	Long: `myshell reads a line, splits it on whitespace and either runs a builtin
(cd, help, exit) or starts the named program with the words as its arguments,
waiting for it to finish before prompting again.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		return runShell(cmd, cfg)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var fatal *shell.FatalError
		// Fatal shell errors were already reported by the shell.
		if !errors.As(err, &fatal) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", shell.Name, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file or directory (default: built-in configuration)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug diagnostics to stderr")
	rootCmd.PersistentFlags().StringVarP(&commandLine, "command", "c", "", "run a single command line and exit")
}

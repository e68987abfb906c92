package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"tablesort/internal/config"
	"tablesort/internal/log"
)

const (
	cmdName     = "tablesort"
	cmdDesc     = `Sort HTML, web and SQLite tables by column.`
	cmdExamples = `
	# Browse the tables of a page and sort them interactively.
	tablesort ./report.html

	# Browse every table of a SQLite database.
	tablesort ./scholar.db

	# Sort table "pubs" by its third column as numbers, twice (descending).
	tablesort sort ./report.html --table pubs --column 2,2 --numeric
`
)

// RootArgs holds flags shared by every command.
type RootArgs struct {
	LogLevel   string
	LogFormat  string
	LogFile    string
	ConfigPath string
	Timeout    time.Duration

	Config  *config.Config
	logFile *os.File
}

func NewRootArgs() *RootArgs {
	return &RootArgs{}
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	defaultConfig, err := config.DefaultPath()
	if err != nil {
		defaultConfig = ""
	}

	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log-level", "info", fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().
		StringVar(&ra.LogFormat, "log-format", "text", fmt.Sprintf("Log format, one of: %s", log.AllFormats))
	cmd.PersistentFlags().
		StringVar(&ra.LogFile, "log-file", "", "Write logs to this file instead of stderr")
	cmd.PersistentFlags().
		StringVar(&ra.ConfigPath, "config", defaultConfig, "Path to the YAML config file")
	cmd.PersistentFlags().
		DurationVar(&ra.Timeout, "timeout", 10*time.Second, "HTTP timeout for URL sources")

	must(cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	))
	must(cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	))
}

// logWriter picks the log destination. The viewer owns the terminal, so it
// discards logs unless a file was given.
func (ra *RootArgs) logWriter(cmd *cobra.Command, interactive bool) (io.Writer, error) {
	if ra.LogFile != "" {
		f, err := os.OpenFile(ra.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		ra.logFile = f
		return f, nil
	}
	if interactive {
		return io.Discard, nil
	}
	return cmd.ErrOrStderr(), nil
}

func (ra *RootArgs) close() {
	if ra.logFile != nil {
		_ = ra.logFile.Close()
		ra.logFile = nil
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	args := NewRootArgs()
	viewArgs := NewViewArgs(args)

	cmd := &cobra.Command{
		Use:               cmdName + " [source]",
		Short:             cmdDesc,
		Example:           cmdExamples,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: setup(args),
		PersistentPostRun: func(*cobra.Command, []string) { args.close() },
		RunE:              viewArgs.Run,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	args.AddFlags(cmd)
	cmd.AddCommand(NewSortCmd(NewSortArgs(args)))

	bindEnvVars(cmd)

	return cmd
}

// setup loads the config file and installs the logger.
func setup(ra *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		interactive := cmd.Name() == cmdName
		w, err := ra.logWriter(cmd, interactive)
		if err != nil {
			return err
		}

		handler, err := log.NewHandler(w, ra.LogLevel, ra.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}
		slog.SetDefault(slog.New(handler))

		cfg, err := config.Load(ra.ConfigPath)
		if err != nil {
			return err
		}
		ra.Config = cfg

		slog.Debug("configured",
			slog.String("config", ra.ConfigPath),
			slog.String("comparator", cfg.Comparator),
		)
		return nil
	}
}

// Execute runs the CLI and returns the process exit code.
func Execute(version string) int {
	// .env must be loaded before flags pick up their environment defaults.
	_ = godotenv.Load()

	root := NewRootCmd()
	root.Version = version
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/persistorai/mantle-explorer/internal/config"
	"github.com/persistorai/mantle-explorer/internal/metrics"
	"github.com/persistorai/mantle-explorer/internal/service"
)

// Build-time variables set via ldflags.
var (
	commit    = ""
	buildDate = ""
)

var (
	cfg      *config.Config
	log      *logrus.Logger
	explorer *service.Explorer

	flagConfig   string
	flagFmt      string
	flagLogLevel string
	flagMetrics  string
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("mantle-explorer version %s (commit: %s, built: %s)", config.Version, commit, buildDate)
	}
	return fmt.Sprintf("mantle-explorer version %s", config.Version)
}

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs root and then writes the metrics textfile, also when the
// command failed so error counters reach the file.
func execute(root *cobra.Command) error {
	_, err := root.ExecuteC()

	if flagMetrics != "" {
		if werr := metrics.WriteTextfile(flagMetrics); werr != nil {
			fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", werr)
			if err == nil {
				err = werr
			}
		}
	}

	return err
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mantle-explorer",
		Short: "Explore the dependency network of a Mantle benefit items export",
		Long: `mantle-explorer reads a CSV export of Mantle benefit items, links items
through their relationship columns and writes an interactive network page.`,
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd.ErrOrStderr())
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (env: MANTLE_CONFIG, default ~/.mantle-explorer/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "json", "Output format: json|table|quiet")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level, overrides config (env: MANTLE_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flagMetrics, "metrics-file", "", "Write build metrics in Prometheus text format to this file")

	versionCmd := newVersionCmd()
	versionCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error { return nil } // no config needed

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newExploreCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newInspectCmd())

	return rootCmd
}

func setup(logOut io.Writer) error {
	var err error

	cfg, err = config.Load(resolveConfigPath())
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}

	log, err = newLogger(level, logOut)
	if err != nil {
		return err
	}

	explorer = service.NewExplorer(cfg, log)

	return nil
}

// resolveConfigPath picks the config file: flag first, then env, then the
// home directory file when it exists.
func resolveConfigPath() string {
	if flagConfig != "" {
		return flagConfig
	}

	if v := os.Getenv("MANTLE_CONFIG"); v != "" {
		return v
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	path := filepath.Join(home, ".mantle-explorer", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}

	return path
}

func newLogger(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return l, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}

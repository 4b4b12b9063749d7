package cmd

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"tasktracker/internal/cli"
	"tasktracker/internal/config"
	"tasktracker/internal/tracker"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "tasktracker",
	Short: "An in-memory task tracker with undo and redo",
	Long: `tasktracker keeps a list of tasks in memory and records every change,
so any sequence of adds, deletes and edits can be undone and redone.
Without a subcommand it starts the interactive shell.`,
	SilenceUsage: true,
	RunE:         runShell,
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell",
	RunE:  runShell,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("TASKS_CONFIG"), "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every tracker change to stderr")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(serveCmd)
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

// newTracker builds the tracker shared by a front end.
func newTracker(cfg *config.Config) *tracker.Tracker {
	logger := log.New(io.Discard, "", 0)
	if verbose && !cfg.Quiet {
		logger = log.New(os.Stderr, "tasktracker: ", log.LstdFlags)
	}
	return tracker.New(tracker.WithLogger(logger))
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sh := cli.NewShell(newTracker(cfg), cmd.InOrStdin(), cmd.OutOrStdout(), cli.Options{
		DateLayout:  cfg.DateLayout,
		DefaultSort: cfg.SortKey(),
		Quiet:       cfg.Quiet,
	})
	return sh.Run()
}

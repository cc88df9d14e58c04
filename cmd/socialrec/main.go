// Command socialrec generates friend recommendations from an edge-list
// social graph and scores them against a held-out graph.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("socialrec version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("socialrec version %s-dev", version)
}

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	format     string
}

func main() {
	if err := newRootCmd(os.Getenv).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree; getenv is injected so tests can
// control SOCIALREC_* overrides.
func newRootCmd(getenv func(string) string) *cobra.Command {
	rf := &rootFlags{}
	root := &cobra.Command{
		Use:          "socialrec",
		Short:        "socialrec: bounded-BFS friend recommendations with precision and recall scoring",
		Version:      versionString(),
		SilenceUsage: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().StringVar(&rf.configPath, "config", "", "Run config file, .yaml or .toml (env: SOCIALREC_CONFIG)")
	root.PersistentFlags().StringVar(&rf.logLevel, "log-level", "", "Log level: debug|info|warn|error")
	root.PersistentFlags().StringVar(&rf.logFormat, "log-format", "", "Log format: text|json")
	root.PersistentFlags().StringVar(&rf.format, "format", "json", "Output format: json|table")

	root.AddCommand(newRecommendCmd(rf, getenv))
	root.AddCommand(newEvaluateCmd(rf, getenv))
	root.AddCommand(newReachCmd(rf, getenv))
	root.AddCommand(newStatsCmd(rf))

	return root
}

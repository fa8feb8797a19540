// Package cli implements the confluence-export command surface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/confluence-tools/confluence-md-export/pkg/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	envFile  string
	logLevel string
	pretty   bool
)

var rootCmd = &cobra.Command{
	Use:   "confluence-export",
	Short: "Export Confluence pages to Markdown",
	Long: `confluence-export reads wiki page URLs from a text file, fetches each
page from the Confluence Cloud REST API, converts its body to Markdown, and
appends the formatted result to a timestamped output file.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logging.Setup(logging.Config{
			Level:  logging.LogLevel(logLevel),
			Pretty: pretty,
			Output: cmd.ErrOrStderr(),
		})
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path of the .env file with API credentials")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", true, "human-readable log output instead of JSON")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

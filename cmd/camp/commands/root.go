package commands

import (
	"github.com/spf13/cobra"
)

var (
	rosterPath string
	logLevel   string
	asJSON     bool
)

var rootCmd = &cobra.Command{
	Use:   "camp",
	Short: "camp - day camp staff scheduler",
	Long: `camp edits a staff roster kept in a YAML file and builds the daily
role schedule and the cabin chore groups from it.

The roster holds four day-off groups (red, blue, orange, green) of up to
six staff each. One group may be on break and is left out of scheduling.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersion sets the version reported by --version
func SetVersion(v string) {
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rosterPath, "roster", "r", "roster.yaml", "Path to the roster YAML file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level (debug, info, warn, error)")
}

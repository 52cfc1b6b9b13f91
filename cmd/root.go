package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mu-template",
	Short: "mu microservice template: loads the APP_ENTRYPOINT extension and serves it",
	// Running the binary without a subcommand starts the server.
	RunE:         runServe,
	SilenceUsage: true,
}

// Execute runs the root command. Registered extension commands are added first.
func Execute() error {
	Apply()
	return rootCmd.Execute()
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lblod/mu-go-template/config"
	"github.com/lblod/mu-go-template/extension"
)

var extensionsCmd = &cobra.Command{
	Use:   "extensions",
	Short: "List the extensions linked into this binary",
	Run: func(cmd *cobra.Command, args []string) {
		selected := extension.ModulePath(config.FromEnv().Entrypoint)
		out := cmd.OutOrStdout()
		names := extension.Names()
		if len(names) == 0 {
			fmt.Fprintln(out, "no extensions registered")
			return
		}
		for _, name := range names {
			marker := " "
			if name == selected {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s\n", marker, name)
		}
	},
}

func init() {
	rootCmd.AddCommand(extensionsCmd)
}

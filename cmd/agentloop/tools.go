package main

import (
	"fmt"

	"github.com/agentloop/agentloop"
	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List available tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, def := range agentloop.BuiltinRegistry(cfg).Definitions() {
			fmt.Println(toolStyle.Render(def.Name))
			fmt.Println(subtleStyle.Render("  " + def.Description))
		}
		if !cfg.AllowShell {
			fmt.Println()
			fmt.Println(subtleStyle.Render("shell_run is disabled; pass --allow-shell or set allow_shell."))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

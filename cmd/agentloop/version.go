package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information - set at build time
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(promptStyle.Render("agentloop"))
		fmt.Printf("%s %s\n", subtleStyle.Render("Version:"), Version)
		fmt.Printf("%s %s\n", subtleStyle.Render("Commit:"), GitCommit)
		fmt.Printf("%s %s\n", subtleStyle.Render("Built:"), BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

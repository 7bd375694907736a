package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/agentloop/agentloop"
	"github.com/spf13/cobra"
)

var taskJSON bool

var taskCmd = &cobra.Command{
	Use:   "task <description>",
	Short: "Run a multi-step task autonomously",
	Long: `Runs the agent in a loop until it answers with a plain reply or the
step ceiling is reached. Tool approval is disabled for the run; use
--allow-shell deliberately.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Autonomous runs cannot stop to ask for approval.
		cfg.ApproveTools = false

		loop, err := agentloop.New(cfg, func(o *agentloop.Options) {
			o.Logger = logger
		})
		if err != nil {
			return err
		}
		defer loop.Close()

		steps, runErr := loop.RunTask(cmd.Context(), strings.Join(args, " "))

		if taskJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(steps); err != nil {
				return err
			}
		} else {
			for _, s := range steps {
				header := fmt.Sprintf("[%d] %s", s.Step, s.Action)
				if s.Action == "reply" {
					fmt.Println(replyStyle.Render(header))
				} else {
					fmt.Println(toolStyle.Render(header))
				}
				fmt.Println(s.Output)
				fmt.Println()
			}
		}
		return runErr
	},
}

func init() {
	taskCmd.Flags().BoolVar(&taskJSON, "json", false, "emit steps as JSON")
	rootCmd.AddCommand(taskCmd)
}

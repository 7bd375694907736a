package main

import (
	"fmt"

	"github.com/agentloop/agentloop/config"
	"github.com/agentloop/agentloop/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile    string
	verbose    bool
	workspace  string
	allowShell bool
	autoRun    bool

	cfg    config.Config
	logger logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "agentloop",
	Short: "Local LLM agent with tools, approval gating and memory",
	Long: `agentloop is a local coding and automation assistant. A language model
drives a bounded set of tools (files, shell, web, git) through a structured
action protocol, with optional human approval before every tool call and a
persistent memory of past context.

Usage:
  agentloop chat               Start an interactive conversation
  agentloop task "..."         Run a multi-step task autonomously
  agentloop tools              List available tools
  agentloop version            Show version info`,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if workspace != "" {
			cfg.Workspace = workspace
		}
		if allowShell {
			cfg.AllowShell = true
		}
		if autoRun {
			cfg.ApproveTools = false
		}

		if verbose {
			zl, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			logger = logging.NewZapAdapter(zl)
		} else {
			logger = logging.NewSlogLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, nil)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose (debug) logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "workspace directory for file tools")
	rootCmd.PersistentFlags().BoolVar(&allowShell, "allow-shell", false, "enable the shell_run tool")
	rootCmd.PersistentFlags().BoolVar(&autoRun, "auto", false, "execute tools without asking for approval")
}

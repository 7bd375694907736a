package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/agentloop/agentloop"
	"github.com/agentloop/agentloop/agent"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive conversation",
	RunE: func(cmd *cobra.Command, args []string) error {
		loop, err := agentloop.New(cfg, func(o *agentloop.Options) {
			o.Logger = logger
		})
		if err != nil {
			return err
		}
		defer loop.Close()

		fmt.Println(subtleStyle.Render("agentloop chat. Type 'exit' to quit."))
		if cfg.ApproveTools {
			fmt.Println(subtleStyle.Render("Tool calls will ask for approval (y/n)."))
		}
		fmt.Println()

		scanner := bufio.NewScanner(os.Stdin)
		for {
			if loop.Engine().HasPending() {
				fmt.Print(approvalStyle.Render("approve? (y/n) "))
			} else {
				fmt.Print(promptStyle.Render("you> "))
			}
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				break
			}

			if loop.Engine().HasPending() && (line == "y" || line == "n") {
				res, err := loop.Resolve(cmd.Context(), line == "y")
				if err != nil {
					fmt.Println(errorStyle.Render("error: " + err.Error()))
					continue
				}
				printResult(res)
				continue
			}

			if err := streamTurn(cmd.Context(), loop, line); err != nil {
				fmt.Println(errorStyle.Render("error: " + err.Error()))
			}
		}
		return scanner.Err()
	},
}

// streamTurn renders a streaming turn. Prose fragments print as they
// arrive; once the accumulated reply looks like a structured action object,
// the raw JSON is held back and only the dispatched result (reply content,
// tool output or approval prompt) is shown, so nothing renders twice.
func streamTurn(ctx context.Context, loop *agentloop.AgentLoop, text string) error {
	events, errCh := loop.TurnStream(ctx, text)

	var prefix strings.Builder
	decided := false
	holdBack := false
	streamed := false
	var final *agent.Result
	finalText := ""

	for ev := range events {
		if ev.Partial {
			if !decided {
				prefix.WriteString(ev.Text)
				trimmed := strings.TrimSpace(prefix.String())
				if trimmed == "" {
					continue
				}
				decided = true
				holdBack = strings.HasPrefix(trimmed, "{")
				if !holdBack {
					fmt.Print(replyStyle.Render(prefix.String()))
					streamed = true
				}
				continue
			}
			if !holdBack {
				fmt.Print(replyStyle.Render(ev.Text))
				streamed = true
			}
			continue
		}
		final = ev.Result
		finalText = ev.Text
	}
	if err := <-errCh; err != nil {
		return err
	}
	if final == nil {
		return fmt.Errorf("stream ended without a result")
	}

	if streamed {
		fmt.Println()
	}
	switch {
	case holdBack:
		printResult(*final)
	case finalText != "":
		printResult(agent.Result{Output: finalText, UsedTool: final.UsedTool})
	}
	fmt.Println()
	return nil
}

func printResult(res agent.Result) {
	switch {
	case res.UsedTool != "":
		fmt.Println(toolStyle.Render(res.Output))
	case strings.HasPrefix(res.Output, "ERR: "):
		fmt.Println(errorStyle.Render(res.Output))
	default:
		fmt.Println(replyStyle.Render(res.Output))
	}
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

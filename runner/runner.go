package runner

import (
	"context"
	"fmt"

	"github.com/agentloop/agentloop/agent"
	"github.com/agentloop/agentloop/logging"
)

// StepResult is one step of an orchestrated run. The slice of these returned
// by RunTask serializes directly for transports.
type StepResult struct {
	Step   int    `json:"step"`
	Action string `json:"action"`
	Output string `json:"output"`
}

// Options configures a Runner.
type Options struct {
	// MaxSteps is the hard ceiling on turns per task. Reaching it is not an
	// error; the partial step history is returned as-is.
	MaxSteps int

	// Logger for run diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Runner repeatedly invokes an agent engine until a task completes. The
// engine should run with approval mode off; the runner never answers
// approval prompts.
type Runner struct {
	engine   *agent.Engine
	maxSteps int
	logger   logging.Logger
}

// New creates a Runner around an engine with a default ceiling of 10 steps.
func New(engine *agent.Engine, optFns ...func(o *Options)) *Runner {
	opts := Options{MaxSteps: 10}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Runner{
		engine:   engine,
		maxSteps: opts.MaxSteps,
		logger:   opts.Logger,
	}
}

// RunTask runs a multi-step task until the agent answers with a plain reply
// or the step ceiling is reached. Each turn's tool output is echoed back as
// the next turn's input. A provider failure aborts the run; the steps taken
// so far are returned alongside the error.
func (r *Runner) RunTask(ctx context.Context, description string) ([]StepResult, error) {
	history := make([]StepResult, 0, r.maxSteps)
	input := fmt.Sprintf("Task: %s\n\nPlease make a plan and execute it step by step.", description)

	for i := 0; i < r.maxSteps; i++ {
		res, err := r.engine.Turn(ctx, input)
		if err != nil {
			return history, fmt.Errorf("step %d: %w", i+1, err)
		}

		action := res.UsedTool
		if action == "" {
			action = "reply"
		}
		history = append(history, StepResult{Step: i + 1, Action: action, Output: res.Output})
		r.logger.Debug("task step", "step", i+1, "action", action)

		if res.UsedTool == "" {
			break
		}
		input = fmt.Sprintf("Tool Output: %s", res.Output)
	}
	return history, nil
}

package runner

import (
	"context"
	"testing"

	"github.com/agentloop/agentloop/agent"
	"github.com/agentloop/agentloop/model"
	"github.com/agentloop/agentloop/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTool() tool.Tool {
	return tool.NewFunctionTool(
		"echo_tool",
		"Echo the text argument",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string"},
			},
			"required": []string{"text"},
		},
		func(_ context.Context, args map[string]any) (string, error) {
			text, _ := args["text"].(string)
			return "Echo: " + text, nil
		},
	)
}

func TestRunTaskStopsAtFirstReply(t *testing.T) {
	provider := model.NewScriptedProvider(
		`{"type":"tool","name":"echo_tool","args":{"text":"step1"}}`,
		`{"type":"reply","content":"Task complete."}`,
	)
	engine := agent.New(provider, func(o *agent.Options) {
		o.Registry = tool.NewRegistry(echoTool())
	})
	r := New(engine)

	steps, err := r.RunTask(context.Background(), "echo step1 then finish")
	require.NoError(t, err)
	require.Len(t, steps, 2)

	assert.Equal(t, 1, steps[0].Step)
	assert.Equal(t, "echo_tool", steps[0].Action)
	assert.Contains(t, steps[0].Output, "Echo: step1")

	assert.Equal(t, 2, steps[1].Step)
	assert.Equal(t, "reply", steps[1].Action)
	assert.Contains(t, steps[1].Output, "Task complete.")
}

func TestRunTaskMaxStepsCeiling(t *testing.T) {
	// The scripted provider repeats its last response, so the agent calls
	// a tool forever; the ceiling must cut the run off without error.
	provider := model.NewScriptedProvider(`{"type":"tool","name":"echo_tool","args":{"text":"again"}}`)
	engine := agent.New(provider, func(o *agent.Options) {
		o.Registry = tool.NewRegistry(echoTool())
	})
	r := New(engine, func(o *Options) { o.MaxSteps = 4 })

	steps, err := r.RunTask(context.Background(), "loop forever")
	require.NoError(t, err)
	require.Len(t, steps, 4)
	for i, s := range steps {
		assert.Equal(t, i+1, s.Step)
		assert.Equal(t, "echo_tool", s.Action)
	}
}

func TestRunTaskSeedsAndFeedsBack(t *testing.T) {
	provider := model.NewScriptedProvider(
		`{"type":"tool","name":"echo_tool","args":{"text":"one"}}`,
		"done",
	)
	engine := agent.New(provider, func(o *agent.Options) {
		o.Registry = tool.NewRegistry(echoTool())
	})
	r := New(engine)

	_, err := r.RunTask(context.Background(), "demo")
	require.NoError(t, err)

	var userMsgs []string
	for _, m := range engine.History() {
		if m.Role == "user" {
			userMsgs = append(userMsgs, m.Content)
		}
	}
	require.Len(t, userMsgs, 2)
	assert.Equal(t, "Task: demo\n\nPlease make a plan and execute it step by step.", userMsgs[0])
	assert.Equal(t, "Tool Output: OK: Echo: one", userMsgs[1])
}

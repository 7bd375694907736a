package main

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/agentloop/agentloop"
	"github.com/agentloop/agentloop/config"
	"github.com/agentloop/agentloop/model"
	"github.com/agentloop/agentloop/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything fn printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func newTestLoop(t *testing.T, provider model.Provider, optFns ...func(o *agentloop.Options)) *agentloop.AgentLoop {
	t.Helper()
	loop, err := agentloop.New(config.Config{Provider: "echo"}, append([]func(o *agentloop.Options){
		func(o *agentloop.Options) { o.Provider = provider },
	}, optFns...)...)
	require.NoError(t, err)
	t.Cleanup(func() { loop.Close() })
	return loop
}

func TestStreamTurnRendersReplyObjectOnce(t *testing.T) {
	provider := model.NewScriptedProvider(`{"type":"reply","content":"All set."}`)
	loop := newTestLoop(t, provider)

	out := captureStdout(t, func() {
		require.NoError(t, streamTurn(context.Background(), loop, "hello"))
	})

	// A whole-text action object must render its extracted content exactly
	// once, with the raw JSON never shown.
	assert.Equal(t, 1, strings.Count(out, "All set."))
	assert.NotContains(t, out, `"type":"reply"`)
}

func TestStreamTurnRendersProseLive(t *testing.T) {
	provider := model.NewScriptedProvider("Just a plain answer.")
	loop := newTestLoop(t, provider)

	out := captureStdout(t, func() {
		require.NoError(t, streamTurn(context.Background(), loop, "hello"))
	})

	assert.Equal(t, 1, strings.Count(out, "Just a plain answer."))
}

func TestStreamTurnRendersToolResultOnce(t *testing.T) {
	provider := model.NewScriptedProvider(`{"type":"tool","name":"greet","args":{}}`)
	greet := tool.NewFunctionTool("greet", "Says hi.", map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}, func(_ context.Context, _ map[string]any) (string, error) {
		return "hi there", nil
	})
	loop := newTestLoop(t, provider, func(o *agentloop.Options) {
		o.Registry = tool.NewRegistry(greet)
	})

	out := captureStdout(t, func() {
		require.NoError(t, streamTurn(context.Background(), loop, "greet me"))
	})

	assert.Equal(t, 1, strings.Count(out, "OK: hi there"))
	assert.NotContains(t, out, `"type":"tool"`)
}

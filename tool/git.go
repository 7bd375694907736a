package tool

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agentloop/agentloop/core"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// GitOps performs lightweight git operations (status/log/commit) on a
// repository under the workspace, via go-git; no git binary required.
type GitOps struct {
	workspace string
}

// NewGitOps creates a GitOps tool rooted at workspace.
func NewGitOps(workspace string) *GitOps {
	return &GitOps{workspace: workspace}
}

// Name implements Tool.
func (t *GitOps) Name() string { return "git_ops" }

// Description implements Tool.
func (t *GitOps) Description() string {
	return "Lightweight git operations (status/log/commit) within a workspace-relative repo path"
}

// Parameters implements Tool.
func (t *GitOps) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"action": map[string]any{
				"type":        "string",
				"enum":        []string{"status", "log", "commit"},
				"description": "Which git action to run",
			},
			"repo_path": map[string]any{"type": "string", "default": "."},
			"paths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Paths to stage for commit",
			},
			"message": map[string]any{"type": "string", "description": "Commit message"},
		},
		"required": []string{"action"},
	}
}

// Invoke implements Tool.
func (t *GitOps) Invoke(_ context.Context, args map[string]any) core.ToolResult {
	var req struct {
		Action   string   `mapstructure:"action"`
		RepoPath string   `mapstructure:"repo_path"`
		Paths    []string `mapstructure:"paths"`
		Message  string   `mapstructure:"message"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return core.Errf("invalid arguments: %v", err)
	}
	if req.RepoPath == "" {
		req.RepoPath = "."
	}

	path, err := jail(t.workspace, req.RepoPath)
	if err != nil {
		return core.Errf("git error: %v", err)
	}
	repo, err := git.PlainOpen(path)
	if err != nil {
		return core.Errf("Not a git repository: %s", req.RepoPath)
	}

	switch req.Action {
	case "status":
		return t.status(repo)
	case "log":
		return t.log(repo)
	case "commit":
		return t.commit(repo, req.Paths, req.Message)
	default:
		return core.Errf("Unknown git action: %s", req.Action)
	}
}

func (t *GitOps) status(repo *git.Repository) core.ToolResult {
	wt, err := repo.Worktree()
	if err != nil {
		return core.Errf("git status failed: %v", err)
	}
	st, err := wt.Status()
	if err != nil {
		return core.Errf("git status failed: %v", err)
	}
	if st.IsClean() {
		return core.OK("clean")
	}
	return core.OK(strings.TrimSpace(st.String()))
}

func (t *GitOps) log(repo *git.Repository) core.ToolResult {
	iter, err := repo.Log(&git.LogOptions{})
	if err != nil {
		return core.Errf("git log failed: %v", err)
	}
	defer iter.Close()

	const maxCommits = 10
	var b strings.Builder
	count := 0
	err = iter.ForEach(func(c *object.Commit) error {
		if count >= maxCommits {
			return storer.ErrStop
		}
		if count > 0 {
			b.WriteByte('\n')
		}
		subject, _, _ := strings.Cut(c.Message, "\n")
		fmt.Fprintf(&b, "%s %s", c.Hash.String()[:8], subject)
		count++
		return nil
	})
	if err != nil {
		return core.Errf("git log failed: %v", err)
	}
	return core.OK(b.String())
}

func (t *GitOps) commit(repo *git.Repository, paths []string, message string) core.ToolResult {
	if message == "" {
		return core.Errf("Commit message is required")
	}
	wt, err := repo.Worktree()
	if err != nil {
		return core.Errf("git commit failed: %v", err)
	}
	if len(paths) > 0 {
		for _, p := range paths {
			if _, err := wt.Add(p); err != nil {
				return core.Errf("git add failed: %v", err)
			}
		}
	} else {
		if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
			return core.Errf("git add failed: %v", err)
		}
	}
	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "agentloop",
			Email: "agentloop@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return core.Errf("git commit failed: %v", err)
	}
	return core.OK("Committed " + hash.String()[:8])
}

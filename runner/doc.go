// Package runner drives the agent engine across multiple turns to complete
// a task autonomously. Tool outputs are fed back as the next turn's input;
// the loop stops at the first plain reply or when the step ceiling is hit.
package runner

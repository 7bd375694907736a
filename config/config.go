// Package config loads runtime settings from defaults, an optional YAML
// file, and AGENTLOOP_* environment variables, in increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all agentloop settings.
type Config struct {
	// Provider selects the model backend: "anthropic", "openai" or "echo".
	Provider string `mapstructure:"provider"`

	// Model is the provider-specific model identifier; empty uses the
	// provider default.
	Model string `mapstructure:"model"`

	// APIKey overrides the provider SDK's environment lookup.
	APIKey string `mapstructure:"api_key"`

	// Temperature and MaxTokens are passed through to the provider.
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`

	// ApproveTools gates every tool call behind a y/n prompt.
	ApproveTools bool `mapstructure:"approve_tools"`

	// AllowShell enables the shell_run tool.
	AllowShell bool `mapstructure:"allow_shell"`

	// AllowedDomains restricts web_fetch; empty allows every domain.
	AllowedDomains []string `mapstructure:"allowed_domains"`

	// Workspace is the root directory file tools are jailed to.
	Workspace string `mapstructure:"workspace"`

	// MemoryPath is the SQLite memory database file; empty selects the
	// volatile in-memory store.
	MemoryPath string `mapstructure:"memory_path"`

	// MaxSteps caps autonomous task runs.
	MaxSteps int `mapstructure:"max_steps"`

	// LogLevel and LogFormat configure diagnostics output
	// (debug/info/warn/error, text/json).
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Load reads configuration from the given file (optional; pass "" to skip),
// environment variables prefixed AGENTLOOP_, and built-in defaults.
func Load(file string) (Config, error) {
	v := viper.New()

	v.SetDefault("provider", "anthropic")
	v.SetDefault("model", "")
	v.SetDefault("api_key", "")
	v.SetDefault("temperature", 0.2)
	v.SetDefault("max_tokens", 4096)
	v.SetDefault("approve_tools", true)
	v.SetDefault("allow_shell", false)
	v.SetDefault("allowed_domains", []string{})
	v.SetDefault("workspace", ".")
	v.SetDefault("memory_path", "agent_memory.db")
	v.SetDefault("max_steps", 10)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetEnvPrefix("AGENTLOOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

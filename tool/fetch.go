package tool

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/agentloop/agentloop/core"
)

// WebFetch retrieves a URL over HTTP(S) with a domain allowlist, a response
// size cap and a content-type restriction to textual payloads. An empty
// allowlist permits every domain.
type WebFetch struct {
	allowedDomains map[string]bool
	client         *http.Client
}

// NewWebFetch creates a WebFetch tool restricted to the given domains.
func NewWebFetch(allowedDomains []string) *WebFetch {
	allowed := make(map[string]bool, len(allowedDomains))
	for _, d := range allowedDomains {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			allowed[d] = true
		}
	}
	return &WebFetch{
		allowedDomains: allowed,
		client:         &http.Client{},
	}
}

// Name implements Tool.
func (t *WebFetch) Name() string { return "web_fetch" }

// Description implements Tool.
func (t *WebFetch) Description() string {
	return "Fetch a URL over HTTP(S) with domain allowlist, size/time limits"
}

// Parameters implements Tool.
func (t *WebFetch) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"url":       map[string]any{"type": "string"},
			"timeout":   map[string]any{"type": "integer", "default": 10},
			"max_bytes": map[string]any{"type": "integer", "default": 500000},
		},
		"required": []string{"url"},
	}
}

// Invoke implements Tool.
func (t *WebFetch) Invoke(ctx context.Context, args map[string]any) core.ToolResult {
	var req struct {
		URL      string `mapstructure:"url"`
		Timeout  int    `mapstructure:"timeout"`
		MaxBytes int64  `mapstructure:"max_bytes"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return core.Errf("invalid arguments: %v", err)
	}
	if req.Timeout <= 0 {
		req.Timeout = 10
	}
	if req.MaxBytes <= 0 {
		req.MaxBytes = 500000
	}

	parsed, err := url.Parse(req.URL)
	if err != nil {
		return core.Errf("Invalid URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return core.Errf("Only http/https schemes are allowed")
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return core.Errf("Invalid URL")
	}
	if len(t.allowedDomains) > 0 && !t.allowedDomains[host] {
		return core.Errf("Domain '%s' not allowed. Add it to allowed_domains to fetch it.", host)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(req.Timeout)*time.Second)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return core.Errf("Request error: %v", err)
	}
	resp, err := t.client.Do(httpReq)
	if err != nil {
		return core.Errf("Request error: %v", err)
	}
	defer resp.Body.Close()

	ctype := resp.Header.Get("Content-Type")
	if !strings.Contains(ctype, "text/") && !strings.Contains(ctype, "json") {
		return core.Errf("Blocked content-type: %s", ctype)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, req.MaxBytes+1))
	if err != nil {
		return core.Errf("Request error: %v", err)
	}
	if int64(len(body)) > req.MaxBytes {
		return core.Errf("Response too large (> %d bytes)", req.MaxBytes)
	}
	return core.OK(string(body))
}

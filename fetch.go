package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1769-performance/logchart/logging"
)

// LogDescriptor is what the host hands us: a display label and where the
// raw bytes live. ContentURL is either an http(s) URL into the portal or a
// local file path.
type LogDescriptor struct {
	Name       string
	ContentURL string
}

type logLoadedMsg struct {
	parsed *ParsedData
}

type logFailedMsg struct {
	err error
}

const fetchTimeout = 60 * time.Second

// loadLogCmd fetches the raw log bytes and parses them, sequentially.
// Fetch and parse failures surface as the same logFailedMsg. The context
// is cancelled when the view closes; a late result is dropped by the
// Update loop via the model's load generation counter.
func loadLogCmd(ctx context.Context, desc LogDescriptor, auth AuthConfig, gen int) tea.Cmd {
	return func() tea.Msg {
		raw, err := fetchLog(ctx, desc, auth)
		if err != nil {
			return loadResultMsg{gen: gen, msg: logFailedMsg{err: err}}
		}
		parsed, err := ParseLog(raw)
		if err != nil {
			return loadResultMsg{gen: gen, msg: logFailedMsg{err: err}}
		}
		logging.Infof("load: %q parsed, %d rows, %d channels", desc.Name, parsed.TotalRows, len(parsed.Columns))
		return loadResultMsg{gen: gen, msg: logLoadedMsg{parsed: parsed}}
	}
}

// loadResultMsg wraps the outcome with the load generation so results that
// resolve after a close are ignored instead of mutating fresh state.
type loadResultMsg struct {
	gen int
	msg tea.Msg
}

func fetchLog(ctx context.Context, desc LogDescriptor, auth AuthConfig) (string, error) {
	if strings.HasPrefix(desc.ContentURL, "http://") || strings.HasPrefix(desc.ContentURL, "https://") {
		return fetchRemote(ctx, desc.ContentURL, auth)
	}
	data, err := os.ReadFile(desc.ContentURL)
	if err != nil {
		return "", fmt.Errorf("failed to load log: %w", err)
	}
	return string(data), nil
}

func fetchRemote(ctx context.Context, url string, auth AuthConfig) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to load log: %w", err)
	}
	if auth.CookieName != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: auth.CookieValue})
	}
	if auth.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+auth.BearerToken)
	}

	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to load log: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("failed to load log: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to load log: %w", err)
	}
	return string(body), nil
}

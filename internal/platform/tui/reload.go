package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// ReloadMsg carries a config re-read after a file change.
type ReloadMsg struct {
	Config config.Config
	Source string
	Err    error
}

// LoadFunc reads the current config and reports where it came from.
type LoadFunc func() (config.Config, string, error)

// WatchConfig converts watcher events into reloads. The returned channel is
// closed when the watcher is.
func WatchConfig(w *config.Watcher, load LoadFunc) <-chan ReloadMsg {
	out := make(chan ReloadMsg, 1)
	go func() {
		defer close(out)
		for {
			select {
			case path, ok := <-w.Events:
				if !ok {
					return
				}
				log.Debug("config changed", "path", path)
				cfg, src, err := load()
				out <- ReloadMsg{Config: cfg, Source: src, Err: err}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("config watcher", "err", err)
			}
		}
	}()
	return out
}

// waitForReload blocks on the next reload. A nil or closed channel yields
// no message.
func waitForReload(ch <-chan ReloadMsg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

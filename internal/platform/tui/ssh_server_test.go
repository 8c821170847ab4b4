package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	updated, _ := m.Update(msg)
	out, ok := updated.(SessionModel)
	require.True(t, ok)
	return out
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(config.Default(), core.DefaultConfig(), nil)
	assert.Contains(t, m.View(), "prototype")

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.gameModel)
	assert.Contains(t, m.View(), "█")

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.gameModel)
	assert.Contains(t, m.View(), "P L A T F O R M E R")
}

func TestSessionReloadUpdatesNextGame(t *testing.T) {
	m := NewSessionModel(config.Default(), core.DefaultConfig(), nil)
	cfg := config.Default()
	cfg.Physics.JumpSpeed = 222

	m = sendSession(t, m, ReloadMsg{Config: cfg, Source: "x.yaml"})
	assert.Equal(t, 222.0, m.cfg.Physics.JumpSpeed)

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.gameModel)
	assert.Equal(t, 222.0, m.gameModel.cfg.Physics.JumpSpeed)
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := NewSessionModel(config.Default(), core.DefaultConfig(), nil)

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

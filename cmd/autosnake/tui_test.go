package main

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brensch/pathsnake/config"
	"github.com/brensch/pathsnake/game"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func testModel(t *testing.T, maxTurns int) (model, *[]*game.Frame) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Width, cfg.Height = 8, 8
	cfg.MaxTurns = maxTurns
	var frames []*game.Frame
	m := initialModel(cfg, 11, quiet, func(f *game.Frame) { frames = append(frames, f) })
	require.NoError(t, m.err)
	return m, &frames
}

func send(m model, msg tea.Msg) (model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_TickSteps(t *testing.T) {
	m, frames := testModel(t, 0)
	require.Len(t, *frames, 1, "initial frame is published")

	m, cmd := send(m, TickMsg(time.Now()))
	require.NotNil(t, cmd, "ticks keep coming")
	assert.Equal(t, 1, m.eng.State().Turn)
	assert.Len(t, *frames, 2)
	assert.Contains(t, m.View(), "Strategy: shortest  Heading: "+m.eng.Heading().String())
}

func TestModel_PauseAndRestart(t *testing.T) {
	m, _ := testModel(t, 0)

	m, _ = send(m, key("p"))
	require.True(t, m.paused)
	m, _ = send(m, TickMsg(time.Now()))
	assert.Equal(t, 0, m.eng.State().Turn, "paused model must not step")
	assert.Contains(t, m.View(), "[paused]")

	m, _ = send(m, key("p"))
	m, _ = send(m, TickMsg(time.Now()))
	assert.Equal(t, 1, m.eng.State().Turn)

	m, _ = send(m, key("r"))
	assert.Equal(t, int64(12), m.seed)
	assert.Equal(t, 0, m.eng.State().Turn)
}

func TestModel_TurnLimitEndsEpisode(t *testing.T) {
	m, _ := testModel(t, 3)
	for i := 0; i < 10; i++ {
		m, _ = send(m, TickMsg(time.Now()))
	}
	assert.True(t, m.truncated)
	assert.Equal(t, 3, m.eng.State().Turn)
	assert.Equal(t, 1, m.episodes)
	require.Len(t, m.recent, 1)
	assert.True(t, strings.HasPrefix(m.recent[0], "seed 11:"), m.recent[0])
	assert.Contains(t, m.View(), "(turn limit)")
}

func TestModel_Quit(t *testing.T) {
	m, _ := testModel(t, 0)
	_, cmd := send(m, key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brensch/pathsnake/config"
	"github.com/brensch/pathsnake/engine"
	"github.com/brensch/pathsnake/game"
	"github.com/brensch/pathsnake/selfplay"
)

type TickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type model struct {
	cfg     config.Config
	log     *slog.Logger
	publish func(*game.Frame)

	seed    int64
	eng     *engine.Engine
	rng     *rand.Rand
	started time.Time

	paused    bool
	truncated bool
	episodes  int
	best      int
	recent    []string
	err       error
}

func initialModel(cfg config.Config, seed int64, logger *slog.Logger, publish func(*game.Frame)) model {
	m := model{cfg: cfg, log: logger, publish: publish, seed: seed}
	return m.newEpisode(seed)
}

func (m model) newEpisode(seed int64) model {
	m.seed = seed
	m.truncated = false
	m.started = time.Now()
	m.eng, m.rng, m.err = selfplay.NewEpisode(m.cfg, seed, m.log)
	if m.err == nil {
		m.log.Info("episode started", "seed", seed, "strategy", m.cfg.Strategy)
		m.publish(m.eng.Frame())
	}
	return m
}

func (m model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickInterval())
}

func (m model) over() bool {
	return m.eng == nil || m.truncated || m.eng.State().Status.Terminal()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m.newEpisode(m.seed + 1), nil
		case "p":
			m.paused = !m.paused
		}
	case TickMsg:
		if !m.paused && !m.over() {
			m = m.step()
		}
		return m, tickCmd(m.cfg.TickInterval())
	}
	return m, nil
}

func (m model) step() model {
	st := m.eng.Step(m.rng)
	m.publish(m.eng.Frame())
	if m.cfg.MaxTurns > 0 && st.Turn >= m.cfg.MaxTurns && !st.Status.Terminal() {
		m.truncated = true
	}
	if !m.over() {
		return m
	}

	m.episodes++
	if st.Score > m.best {
		m.best = st.Score
	}
	res := selfplay.Result{
		Status:    st.Status,
		Score:     st.Score,
		Turns:     st.Turn,
		Cause:     st.Cause,
		Truncated: m.truncated,
		Strategy:  m.eng.StrategyName(),
		Duration:  time.Since(m.started),
	}
	m.log.Info("episode finished", "seed", m.seed, "status", st.Status.String(), "score", st.Score, "turns", st.Turn, "cause", string(st.Cause), "truncated", m.truncated)
	line := fmt.Sprintf("seed %d: %s", m.seed, res)
	m.recent = append([]string{line}, m.recent...)
	if len(m.recent) > 5 {
		m.recent = m.recent[:5]
	}
	return m
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Cannot start episode: %v\n\nPress q to quit.\n", m.err)
	}

	var sb strings.Builder
	f := m.eng.Frame()
	sb.WriteString(game.Render(f))
	sb.WriteString(game.Summary(f))
	if m.truncated {
		sb.WriteString(" (turn limit)")
	}
	if m.paused {
		sb.WriteString(" [paused]")
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Strategy: %s  Heading: %s  Plan: %d steps  Seed: %d\n", f.Strategy, m.eng.Heading(), f.PlanSteps, m.seed)
	fmt.Fprintf(&sb, "Episodes: %d  Best score: %d\n", m.episodes, m.best)

	if len(m.recent) > 0 {
		sb.WriteString("\nRecent episodes:\n")
		for _, r := range m.recent {
			sb.WriteString(r + "\n")
		}
	}

	sb.WriteString("\nr restart  p pause  q quit\n")
	return sb.String()
}

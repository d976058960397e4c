package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/env"
	"github.com/vovakirdan/tui-pacman/internal/input"
	"github.com/vovakirdan/tui-pacman/internal/session"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	statusStyle = lipgloss.NewStyle().Bold(true)
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	reportStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Model is the Bubble Tea model running one interactive session. It owns
// the fixed-cadence loop: each TickMsg polls the accumulated input frame,
// advances the episode controller, and the following View renders the
// resulting state.
type Model struct {
	ctrl     *session.Controller
	store    *storage.Store
	cfg      config.PlayConfig
	keys     *KeyMapper
	frame    input.Frame
	report   *session.Result // Last finished episode, shown until the next one
	quitting bool
}

// NewModel creates a model for the given environment and starts the
// session. A nil store disables episode persistence.
func NewModel(environment env.Environment, store *storage.Store, cfg config.PlayConfig, masterSeed int64) Model {
	// Use time-based seed if not specified
	if masterSeed == 0 {
		masterSeed = time.Now().UnixNano()
	}

	ctrl := session.NewController(environment)
	ctrl.Start(masterSeed)

	return Model{
		ctrl:  ctrl,
		store: store,
		cfg:   cfg,
		keys:  NewKeyMapper(),
		frame: input.NewFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Pause, reset, and quit are control
// signals handled immediately; directions accumulate in the input frame
// until the next tick consumes them.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)

	if isQuit {
		m.quitting = true
		m.ctrl.Stop()
		return m, tea.Quit
	}

	switch action {
	case input.ActionPause:
		m.ctrl.TogglePause()
	case input.ActionReset:
		m.ctrl.Reset()
		m.report = nil
	case input.ActionNone:
	default:
		m.frame.Set(action)
	}

	return m, nil
}

// handleTick runs one loop iteration: resolve input, advance, persist a
// finished episode, schedule the next tick. While paused the input frame
// is not resolved, so no action source value is consumed.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.ctrl.Running() {
		action := session.ResolveFrame(m.frame)
		res := m.ctrl.Advance(action)

		if res.Done {
			report := res
			m.report = &report
			m.saveEpisode(res)
		}
	}

	// Clear input for next tick
	m.frame.Clear()

	// Continue ticking
	return m, tickCmd(m.cfg.TickRate)
}

// saveEpisode persists a finished episode, best-effort.
func (m Model) saveEpisode(res session.Result) {
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveEpisode(storage.EpisodeEntry{
		EnvID:      m.ctrl.Environment().ID(),
		Score:      res.FinalScore,
		Reward:     res.FinalReward,
		Steps:      res.FinalSteps,
		MasterSeed: m.ctrl.MasterSeed(),
		ResetIndex: int64(res.ResetIndex),
	})
}

// View renders the current frame plus the status surface. A failed render
// (nil frame) skips the image but keeps the session alive.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	out := RenderFrame(m.ctrl.Render(), m.cfg.Scale)
	if out != "" {
		out += "\n"
	}

	out += m.statusLine() + "\n"
	if m.report != nil {
		out += reportStyle.Render(fmt.Sprintf(
			"Game over! Final score: %d  Total reward: %.2f",
			m.report.FinalScore, m.report.FinalReward,
		)) + "\n"
	}
	out += helpStyle.Render("arrows/wasd move · p pause · r reset · q quit")
	return out
}

// statusLine shows score, lives, and cumulative reward after every step.
func (m Model) statusLine() string {
	t := m.ctrl.Telemetry()
	line := fmt.Sprintf("%s | Score: %d | Lives: %d | Reward: %.1f",
		m.ctrl.Environment().Title(), t.Score, t.Lives, t.CumulativeReward)

	if m.ctrl.Paused() {
		return pausedStyle.Render(line + " | PAUSED")
	}
	return statusStyle.Render(line)
}

// Run starts the Bubble Tea program for one interactive session.
func Run(environment env.Environment, store *storage.Store, cfg config.PlayConfig, masterSeed int64) error {
	model := NewModel(environment, store, cfg, masterSeed)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

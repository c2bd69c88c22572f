package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ferrovax/huematch/internal/analysis"
	"github.com/ferrovax/huematch/internal/colorspace"
	"github.com/ferrovax/huematch/internal/config"
	"github.com/ferrovax/huematch/internal/game"
	"github.com/ferrovax/huematch/internal/storage"
)

// Model is the Bubble Tea model for the game. It owns a single Session
// and maps terminal events onto session operations: key presses, the
// one-second countdown tick, the delayed round reset and focus loss.
type Model struct {
	session *game.Session
	store   *storage.Store // nil when running without a database
	cfg     config.Config

	keys     KeyMap
	menuKeys MenuKeyMap
	help     help.Model
	hexInput textinput.Model

	scoreboard *ScoreboardModel // non-nil while the scores view is open

	channel      int    // selected slider channel
	countdownGen uint64 // current countdown chain; stale ticks are dropped
	lastSuccess  bool   // whether the last submit scored
	width        int
	height       int
	quitting     bool
	sessionSaved bool // session result persisted for the current game over
}

// NewModel creates the game model.
func NewModel(session *game.Session, store *storage.Store, cfg config.Config, width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "#RRGGBB"
	ti.CharLimit = 7
	ti.Width = 9
	ti.Prompt = ""

	h := help.New()

	return Model{
		session:  session,
		store:    store,
		cfg:      cfg,
		keys:     DefaultKeyMap(),
		menuKeys: DefaultMenuKeyMap(),
		help:     h,
		hexInput: ti,
		width:    width,
		height:   height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The scores view swallows everything except resize until closed.
	if m.scoreboard != nil {
		if wsm, ok := msg.(tea.WindowSizeMsg); ok {
			m.width = wsm.Width
			m.height = wsm.Height
		}
		sb, cmd := m.scoreboard.Update(msg)
		m.scoreboard = sb
		if m.scoreboard != nil && m.scoreboard.quitting {
			m.quitting = true
			return m, tea.Quit
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.BlurMsg:
		// One-way per session; the engine ignores it outside of play.
		m.session.NoteFocusLost()
		return m, nil

	case CountdownMsg:
		return m.handleCountdown(msg)

	case RoundResetMsg:
		m.session.CompleteReset(msg.Gen)
		return m, nil
	}

	return m, nil
}

// handleCountdown advances the one-second timer and keeps ticking while
// the session is in play. A tick from a superseded chain (scheduled
// before a restart) is dropped so the timer never runs twice as fast.
func (m Model) handleCountdown(msg CountdownMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.countdownGen {
		return m, nil
	}

	m.session.Tick()

	if m.session.State() != game.StatePlaying {
		m.saveSessionResult()
		return m, nil
	}
	return m, countdownCmd(msg.Gen)
}

// saveSessionResult records the finished session, once per game over.
func (m *Model) saveSessionResult() {
	if m.sessionSaved || m.session.State() != game.StateGameOver {
		return
	}
	if m.store != nil && m.session.Rounds() > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveSession(m.session.Score(), m.session.Rounds(), m.session.BestMatch())
	}
	m.sessionSaved = true
}

// handleKey routes keyboard input by session state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The hex field captures all input while focused.
	if m.hexInput.Focused() {
		return m.handleHexKey(msg)
	}

	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.session.State() {
	case game.StateMenu:
		return m.handleMenuKey(msg)
	case game.StatePlaying:
		return m.handlePlayKey(msg)
	case game.StateGameOver:
		return m.handleGameOverKey(msg)
	}
	return m, nil
}

// handleHexKey feeds keystrokes into the hex field and mirrors the raw
// text into the round engine.
func (m Model) handleHexKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "tab":
		m.blurHex()
		return m, nil
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.hexInput, cmd = m.hexInput.Update(msg)
	m.session.Round().SetHexText(m.hexInput.Value())
	return m, cmd
}

// focusHex gives the hex field focus and suspends mirror-driven sync.
func (m *Model) focusHex() tea.Cmd {
	round := m.session.Round()
	round.SetEditingHex(true)
	m.hexInput.SetValue(round.HexText())
	m.hexInput.CursorEnd()
	return m.hexInput.Focus()
}

// blurHex drops focus and reconciles the field with the canonical color.
func (m *Model) blurHex() {
	m.hexInput.Blur()
	round := m.session.Round()
	round.SetEditingHex(false)
	m.hexInput.SetValue(round.HexText())
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session.Settings()

	switch {
	case key.Matches(msg, m.menuKeys.Start):
		return m.startGame()
	case key.Matches(msg, m.menuKeys.ToggleBlind):
		s.SetBlindMode(!s.BlindMode())
	case key.Matches(msg, m.menuKeys.ToggleStrict):
		s.SetStrictMode(!s.StrictMode())
	case key.Matches(msg, m.menuKeys.TimerDown):
		s.SetTimerDuration(s.TimerDuration() - 5)
	case key.Matches(msg, m.menuKeys.TimerUp):
		s.SetTimerDuration(s.TimerDuration() + 5)
	case key.Matches(msg, m.menuKeys.ThresholdDown):
		// Out-of-range values are rejected and the prior value kept.
		s.SetScoreThreshold(s.ScoreThreshold() - 0.5)
	case key.Matches(msg, m.menuKeys.ThresholdUp):
		s.SetScoreThreshold(s.ScoreThreshold() + 0.5)
	case key.Matches(msg, m.menuKeys.Scores):
		sb := NewScoreboardModel(m.store, m.width, m.height)
		m.scoreboard = &sb
	}
	return m, nil
}

// startGame begins a fresh session and kicks off a new countdown chain,
// superseding any tick still in flight from the previous game.
func (m Model) startGame() (tea.Model, tea.Cmd) {
	m.session.Start()
	m.sessionSaved = false
	m.blurHex()
	m.channel = colorspace.ChannelR
	m.countdownGen++

	if m.session.Settings().TimerDuration() > 0 {
		return m, countdownCmd(m.countdownGen)
	}
	return m, nil
}

func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	round := m.session.Round()

	switch {
	case key.Matches(msg, m.keys.PrevChannel):
		if m.channel > 0 {
			m.channel--
		}
	case key.Matches(msg, m.keys.NextChannel):
		if m.channel < colorspace.ChannelCount-1 {
			m.channel++
		}
	case key.Matches(msg, m.keys.Decrease):
		round.AdjustChannel(m.channel, -1)
	case key.Matches(msg, m.keys.Increase):
		round.AdjustChannel(m.channel, +1)
	case key.Matches(msg, m.keys.DecreaseBig):
		round.AdjustChannel(m.channel, -10)
	case key.Matches(msg, m.keys.IncreaseBig):
		round.AdjustChannel(m.channel, +10)
	case key.Matches(msg, m.keys.EditHex):
		return m, m.focusHex()
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.EndGame):
		m.session.EndGame()
		m.saveSessionResult()
	}
	return m, nil
}

// submit scores the round and schedules the delayed reset.
func (m Model) submit() (tea.Model, tea.Cmd) {
	out, ok := m.session.Submit()
	if !ok {
		return m, nil
	}
	m.lastSuccess = out.Success
	return m, roundResetCmd(m.cfg.PostRoundDelay(), out.ResetGen)
}

func (m Model) handleGameOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Start):
		return m.startGame()
	case key.Matches(msg, m.keys.Scores):
		sb := NewScoreboardModel(m.store, m.width, m.height)
		m.scoreboard = &sb
	}
	return m, nil
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	var body string
	switch m.session.State() {
	case game.StateMenu:
		body = m.viewMenu()
	case game.StatePlaying:
		body = m.viewPlaying()
	case game.StateGameOver:
		body = m.viewGameOver()
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) viewMenu() string {
	s := m.session.Settings()

	var b strings.Builder
	b.WriteString(titleStyle.Render("H U E M A T C H"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Match the target color before the clock runs out."))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Blind mode:"), valueStyle.Render(onOff(s.BlindMode()))))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Strict mode:"), valueStyle.Render(onOff(s.StrictMode()))))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Threshold:"), valueStyle.Render(fmt.Sprintf("%.1f%%", s.ScoreThreshold()))))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Timer:"), valueStyle.Render(timerLabel(s.TimerDuration()))))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("High score:"), valueStyle.Render(fmt.Sprintf("%d", s.HighScore()))))

	b.WriteString("\n")
	b.WriteString(m.help.View(m.menuKeys))
	return b.String()
}

func (m Model) viewPlaying() string {
	s := m.session.Settings()
	round := m.session.Round()

	var b strings.Builder

	// HUD
	hud := fmt.Sprintf("Score %d    High %d    Time %s",
		m.session.Score(), m.session.HighScore(), countdownLabel(s.TimerDuration(), m.session.TimeLeft()))
	if s.StrictMode() && m.session.FocusLost() {
		hud += "    " + failStyle.Render("focus lost")
	}
	b.WriteString(hudStyle.Render(hud))
	b.WriteString("\n\n")

	// Swatches: the target never reveals its hex code, and blind mode
	// hides the player's color until the outcome of the round is on screen.
	target := renderSwatch(round.Target(), "TARGET", false)
	var yours string
	if s.BlindMode() && round.Outcome() == "" {
		yours = renderHiddenSwatch("YOURS")
	} else {
		yours = renderSwatch(round.UserColor(), "YOURS", true)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, target, "    ", yours))
	b.WriteString("\n\n")

	// Channel sliders
	user := round.UserColor()
	for ch := 0; ch < colorspace.ChannelCount; ch++ {
		b.WriteString(renderSlider(ch, user.Channel(ch), ch == m.channel && !m.hexInput.Focused()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Hex field
	hexLabel := labelStyle.Render("hex ")
	if m.hexInput.Focused() {
		b.WriteString(hexLabel + m.hexInput.View())
	} else {
		b.WriteString(hexLabel + valueStyle.Render(round.HexText()))
	}
	b.WriteString("\n\n")

	// Last round outcome, shown during the feedback delay
	if out := round.Outcome(); out != "" {
		style := failStyle
		if m.lastSuccess {
			style = successStyle
		}
		b.WriteString(style.Render(out + "% match"))
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewGameOver() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Final score:"), valueStyle.Render(fmt.Sprintf("%d", m.session.Score()))))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Rounds:"), valueStyle.Render(fmt.Sprintf("%d", m.session.Rounds()))))

	if m.session.Score() > 0 && m.session.Score() == m.session.HighScore() {
		b.WriteString(successStyle.Render("New high score!"))
		b.WriteString("\n")
	}

	// Per-channel accuracy report
	rep := analysis.Analyze(m.session.History(), analysis.CurveByName(m.cfg.Analysis.Curve))
	if rep.SampleCount > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Accuracy"))
		b.WriteString("\n")
		for ch := 0; ch < colorspace.ChannelCount; ch++ {
			b.WriteString(fmt.Sprintf("  %s mean error %5.1f\n", channelNames[ch], rep.MeanErr[ch]))
		}
		b.WriteString(fmt.Sprintf("  overall %s\n", valueStyle.Render(fmt.Sprintf("%.0f/100", rep.Score))))
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("r restart    s scores    q quit"))
	return b.String()
}

// onOff formats a toggle.
func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// timerLabel formats a configured duration, with infinite mode marked.
func timerLabel(duration int) string {
	if duration == 0 {
		return "∞"
	}
	return fmt.Sprintf("%ds", duration)
}

// countdownLabel formats the in-game countdown.
func countdownLabel(duration, left int) string {
	if duration == 0 {
		return "∞"
	}
	return fmt.Sprintf("%ds", left)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(session *game.Session, store *storage.Store, cfg config.Config, width, height int) error {
	model := NewModel(session, store, cfg, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(), // Blur events feed the strict-mode rule
	)

	_, err := p.Run()
	return err
}

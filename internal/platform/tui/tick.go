// Package tui provides the Bubble Tea integration for huematch. It handles
// the terminal UI loop, input mapping, timers and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// CountdownMsg is sent once per second to drive the session countdown.
// Gen identifies the chain that scheduled it; a restart supersedes the
// old chain and its in-flight tick is dropped, so only one chain ever
// decrements the timer.
type CountdownMsg struct {
	Gen uint64
}

// countdownCmd returns a command that sends the next countdown tick for
// the given chain.
func countdownCmd(gen uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return CountdownMsg{Gen: gen}
	})
}

// RoundResetMsg fires after the post-round feedback delay. Gen identifies
// the submit that scheduled it; the session discards stale generations.
type RoundResetMsg struct {
	Gen uint64
}

// roundResetCmd schedules the delayed round reset for the given generation.
func roundResetCmd(delay time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return RoundResetMsg{Gen: gen}
	})
}

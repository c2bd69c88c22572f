package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	PrevChannel key.Binding
	NextChannel key.Binding
	Decrease    key.Binding
	Increase    key.Binding
	DecreaseBig key.Binding
	IncreaseBig key.Binding
	EditHex     key.Binding
	Submit      key.Binding
	EndGame     key.Binding
	Start       key.Binding
	Scores      key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevChannel, k.Decrease, k.Increase, k.EditHex, k.Submit, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevChannel, k.NextChannel, k.Decrease, k.Increase},
		{k.DecreaseBig, k.IncreaseBig, k.EditHex, k.Submit},
		{k.Start, k.EndGame, k.Scores, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevChannel: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev channel"),
		),
		NextChannel: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next channel"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "-1"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "+1"),
		),
		DecreaseBig: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("S-left/H", "-10"),
		),
		IncreaseBig: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("S-right/L", "+10"),
		),
		EditHex: key.NewBinding(
			key.WithKeys("tab", "#"),
			key.WithHelp("tab", "edit hex"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "submit"),
		),
		EndGame: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "end game"),
		),
		Start: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Scores: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuKeyMap defines the key bindings for the start menu.
type MenuKeyMap struct {
	Start         key.Binding
	ToggleBlind   key.Binding
	ToggleStrict  key.Binding
	TimerDown     key.Binding
	TimerUp       key.Binding
	ThresholdDown key.Binding
	ThresholdUp   key.Binding
	Scores        key.Binding
	Quit          key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.ToggleBlind, k.ToggleStrict, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.ToggleBlind, k.ToggleStrict},
		{k.TimerDown, k.TimerUp, k.ThresholdDown, k.ThresholdUp},
		{k.Scores, k.Quit},
	}
}

// DefaultMenuKeyMap returns the default menu key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		ToggleBlind: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "blind mode"),
		),
		ToggleStrict: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "strict mode"),
		),
		TimerDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "timer -5s"),
		),
		TimerUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "timer +5s"),
		),
		ThresholdDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "threshold -0.5"),
		),
		ThresholdUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "threshold +0.5"),
		),
		Scores: key.NewBinding(
			key.WithKeys("s", "tab"),
			key.WithHelp("s", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

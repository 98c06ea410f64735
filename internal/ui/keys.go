package ui

import "github.com/charmbracelet/bubbles/key"

type playerKeyMap struct {
	Play   key.Binding
	Reset  key.Binding
	Faster key.Binding
	Next   key.Binding
	Prev   key.Binding
	Tab    key.Binding
	Quit   key.Binding
}

func (k playerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Reset, k.Faster, k.Tab, k.Quit}
}

func (k playerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Reset, k.Faster},
		{k.Prev, k.Next, k.Tab, k.Quit},
	}
}

var playerKeys = playerKeyMap{
	Play: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "play/pause"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Faster: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "faster"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "step"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "back"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab", "1", "2", "3"),
		key.WithHelp("tab/1-3", "algorithm"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "quit"),
	),
}

type runKeyMap struct {
	Quit key.Binding
}

func (k runKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

func (k runKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit}}
}

var runKeys = runKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "quit"),
	),
}

package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit           key.Binding
	PanLeft        key.Binding
	PanRight       key.Binding
	ChannelUp      key.Binding
	ChannelDown    key.Binding
	ToggleSpectrum key.Binding
	CopyWindow     key.Binding
	ExportWindow   key.Binding
	OpenHelp       key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	PanLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous window"),
	),
	PanRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next window"),
	),
	ChannelUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous channels"),
	),
	ChannelDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next channels"),
	),
	ToggleSpectrum: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "toggle power spectra"),
	),
	CopyWindow: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "copy window summary to clipboard"),
	),
	ExportWindow: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export window to CSV"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.PanLeft,
		k.PanRight,
		k.ChannelUp,
		k.ChannelDown,
		k.ToggleSpectrum,
		k.CopyWindow,
		k.ExportWindow,
	}
}

package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Close         key.Binding
	Quit          key.Binding
	ZoomIn        key.Binding
	ZoomOut       key.Binding
	ResetZoom     key.Binding
	ChannelUp     key.Binding
	ChannelDown   key.Binding
	ToggleChannel key.Binding
	ToggleShown   key.Binding
	CycleAxis     key.Binding
	ShowAll       key.Binding
	HideAll       key.Binding
	Export        key.Binding
	CopyReadout   key.Binding
	OpenHelp      key.Binding
}

var Keys = Keymap{
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close the chart"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+/=", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out"),
	),
	ResetZoom: key.NewBinding(
		key.WithKeys("r", "R"),
		key.WithHelp("r", "reset zoom"),
	),
	ChannelUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous channel"),
	),
	ChannelDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next channel"),
	),
	ToggleChannel: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "select/deselect channel"),
	),
	ToggleShown: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "show/hide selected channel line"),
	),
	CycleAxis: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "cycle Y axis slot"),
	),
	ShowAll: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "select all channels"),
	),
	HideAll: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "deselect all channels"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export filtered CSV"),
	),
	CopyReadout: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy readout to clipboard"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Close,
		k.Quit,
		k.ZoomIn,
		k.ZoomOut,
		k.ResetZoom,
		k.ChannelUp,
		k.ChannelDown,
		k.ToggleChannel,
		k.ToggleShown,
		k.CycleAxis,
		k.ShowAll,
		k.HideAll,
		k.Export,
		k.CopyReadout,
	}
}

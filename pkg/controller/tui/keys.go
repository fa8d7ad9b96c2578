package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit       key.Binding
	Attach       key.Binding
	ClearImage   key.Binding
	AddOption    key.Binding
	RemoveOption key.Binding
	SwitchTab    key.Binding
	Variant      key.Binding
	Emoji        key.Binding
	NextChannel  key.Binding
	PrevChannel  key.Binding
	Refresh      key.Binding
	NextField    key.Binding
	PrevField    key.Binding
	Cancel       key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send")),
		Attach:       key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "attach image")),
		ClearImage:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove image")),
		AddOption:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add option")),
		RemoveOption: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "remove option")),
		SwitchTab:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "switch tab")),
		Variant:      key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "message type")),
		Emoji:        key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "veto emoji")),
		NextChannel:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "next channel")),
		PrevChannel:  key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "prev channel")),
		Refresh:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload channels")),
		NextField:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Cancel:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.SwitchTab, k.Variant, k.Attach, k.NextField, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.SwitchTab, k.Variant, k.Emoji},
		{k.Attach, k.ClearImage, k.AddOption, k.RemoveOption},
		{k.NextChannel, k.PrevChannel, k.Refresh},
		{k.NextField, k.PrevField, k.Quit},
	}
}

package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the common interface the modal dialogs (Export, Help) implement
// so the model can host whichever one is active without caring which.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/saressalo/chandiff/diffview"
	"github.com/saressalo/chandiff/logging"
)

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	rows := m.activeFrame().Window(*m.activeState())

	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.chartsView(rows),
		m.footerView(rows),
	))
}

func (m *model) headerView() string {
	pill := "TIME"
	if m.mode == modeSpectrum {
		pill = "PSD"
	}

	labels := m.datasetLabels()
	parts := make([]string, len(labels))
	for i, label := range labels {
		parts[i] = traceStyle(i).Render("── " + label)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		modePillStyle.Render(pill),
		" ",
		titleStyle.Render("chandiff"),
		"  ",
		strings.Join(parts, "   "),
	)
}

func (m *model) footerView(rows []diffview.Row) string {
	frame := m.activeFrame()

	windowCount := frame.Samples() / frame.WindowWidth()
	windowIndex := rows[0].Start/frame.WindowWidth() + 1

	position := fmt.Sprintf("window %d/%d · channel %d of %d (%d rows)",
		windowIndex, windowCount, rows[0].Channel+1, frame.Channels(), frame.WindowRows())
	if logging.IsDebugMode() {
		st := m.activeState()
		position += fmt.Sprintf(" | dbg term=%dx%d x=%d y=%d start=%d",
			m.terminalWidth, m.terminalHeight, st.X, st.Y, rows[0].Start)
	}

	status := noticeText(m.ui.noticeMsg, m.ui.noticeType)
	if status == "" {
		status = position
	}

	legend := "(? help · ←/→ pan · ↑/↓ channels · p spectra · e export · ctrl+c copy · q quit)"
	return statusStyle.Render(status) + "\n" + legendStyle.Render(legend)
}

package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	app, topBar, topTitle, topStatus lipgloss.Style
	sidebar, sidebarTitle            lipgloss.Style
	panel, panelFocused              lipgloss.Style
	navItem, navSel                  lipgloss.Style
	previewTitle                     lipgloss.Style
	summary                          lipgloss.Style
	statusBar, statusErr             lipgloss.Style
	toast                            lipgloss.Style
}

func newStyles() styles {
	base := lipgloss.NewStyle()
	panelBorder := lipgloss.NormalBorder()
	focusedBorder := lipgloss.DoubleBorder()

	return styles{
		app:          base,
		topBar:       base.Padding(0, 1),
		topTitle:     base.Copy().Bold(true),
		topStatus:    base.Copy().Faint(true),
		sidebar:      base.BorderStyle(panelBorder).Padding(0, 1),
		sidebarTitle: base.Copy().Bold(true).Padding(0, 1),
		panel:        base.BorderStyle(panelBorder),
		panelFocused: base.BorderStyle(focusedBorder),
		navItem:      base.Padding(0, 1),
		navSel:       base.Copy().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("212")),
		previewTitle: base.Copy().Bold(true).Padding(0, 1),
		summary:      base.Copy().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("114")),
		statusBar:    base.Padding(0, 1).Faint(true),
		statusErr:    base.Padding(0, 1).Foreground(lipgloss.Color("203")),
		toast:        base.Border(lipgloss.RoundedBorder()).Padding(0, 2),
	}
}

package datatable

import "github.com/charmbracelet/lipgloss"

type paletteColors struct {
	text      lipgloss.Color
	textMuted lipgloss.Color
	border    lipgloss.Color
	selection lipgloss.Color
	good      lipgloss.Color
	bad       lipgloss.Color
	neutral   lipgloss.Color
	accent    lipgloss.Color
}

var palette = paletteColors{
	text:      lipgloss.Color("252"),
	textMuted: lipgloss.Color("245"),
	border:    lipgloss.Color("240"),
	selection: lipgloss.Color("57"),
	good:      lipgloss.Color("35"),
	bad:       lipgloss.Color("160"),
	neutral:   lipgloss.Color("244"),
	accent:    lipgloss.Color("39"),
}

// Styles carries every lipgloss style the table renders with. Owners
// may replace individual entries before handing the struct to NewShell.
type Styles struct {
	Header       lipgloss.Style
	HeaderActive lipgloss.Style
	Cell         lipgloss.Style
	RowSelected  lipgloss.Style
	BadgeGood    lipgloss.Style
	BadgeBad     lipgloss.Style
	BadgeNeutral lipgloss.Style
	Link         lipgloss.Style
	ImageToken   lipgloss.Style
	Chip         lipgloss.Style
	ChipLabel    lipgloss.Style
	SearchBox    lipgloss.Style
	Popover      lipgloss.Style
	Modal        lipgloss.Style
	Pagination   lipgloss.Style
	StatusLine   lipgloss.Style
	Error        lipgloss.Style
}

func DefaultStyles() Styles {
	base := lipgloss.NewStyle()
	badge := base.Copy().Padding(0, 1).Bold(true)

	return Styles{
		Header:       base.Copy().Bold(true).Foreground(palette.textMuted).Padding(0, 1),
		HeaderActive: base.Copy().Bold(true).Foreground(palette.accent).Padding(0, 1),
		Cell:         base.Copy().Padding(0, 1),
		RowSelected:  base.Copy().Foreground(palette.text).Background(palette.selection).Padding(0, 1),
		BadgeGood:    badge.Copy().Foreground(palette.good),
		BadgeBad:     badge.Copy().Foreground(palette.bad),
		BadgeNeutral: badge.Copy().Foreground(palette.neutral),
		Link:         base.Copy().Foreground(palette.accent).Underline(true),
		ImageToken:   base.Copy().Foreground(palette.textMuted),
		Chip:         base.Copy().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		ChipLabel:    base.Copy().Bold(true),
		SearchBox:    base.Copy().Border(lipgloss.NormalBorder()).BorderForeground(palette.border).Padding(0, 1),
		Popover:      base.Copy().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		Modal:        base.Copy().Border(lipgloss.DoubleBorder()).Padding(1, 2),
		Pagination:   base.Copy().Foreground(palette.textMuted).Padding(0, 1),
		StatusLine:   base.Copy().Foreground(palette.textMuted),
		Error:        base.Copy().Foreground(palette.bad),
	}
}

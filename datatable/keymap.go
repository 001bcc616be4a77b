package datatable

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	focusSearch  key.Binding
	close        key.Binding
	up           key.Binding
	down         key.Binding
	prevPage     key.Binding
	nextPage     key.Binding
	prevColumn   key.Binding
	nextColumn   key.Binding
	sortColumn   key.Binding
	filterColumn key.Binding
	hideColumn   key.Binding
	columnMenu   key.Binding
	clearFilters key.Binding
	removeChip   key.Binding
	exportCSV    key.Binding
	exportXLSX   key.Binding
	copyCell     key.Binding
	copyRow      key.Binding
	activate     key.Binding
	deleteRow    key.Binding
	download     key.Binding
	menuToggle   key.Binding
	menuAll      key.Binding
	menuNone     key.Binding
	menuReset    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		focusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "row up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "row down"),
		),
		prevPage: key.NewBinding(
			key.WithKeys("left", "pgup"),
			key.WithHelp("←", "prev page"),
		),
		nextPage: key.NewBinding(
			key.WithKeys("right", "pgdown"),
			key.WithHelp("→", "next page"),
		),
		prevColumn: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev column"),
		),
		nextColumn: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next column"),
		),
		sortColumn: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		filterColumn: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		hideColumn: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "hide column"),
		),
		columnMenu: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "columns"),
		),
		clearFilters: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "clear filters"),
		),
		removeChip: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "drop last filter"),
		),
		exportCSV: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export csv"),
		),
		exportXLSX: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "export xlsx"),
		),
		copyCell: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy cell"),
		),
		copyRow: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "copy row"),
		),
		activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open/edit"),
		),
		deleteRow: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete row"),
		),
		download: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "download"),
		),
		menuToggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		menuAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "show all"),
		),
		menuNone: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "hide all"),
		),
		menuReset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
	}
}

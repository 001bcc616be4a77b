package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Maishelbayeh/BringUs-sub000/datatable"
	"github.com/Maishelbayeh/BringUs-sub000/internal/catalog"
)

type focusArea int

const (
	focusSidebar focusArea = iota
	focusTable
	focusPreview
)

type rowsLoadedMsg struct {
	key  string
	rows []datatable.Row
	err  error
}

type filteredStatsMsg struct {
	key     string
	summary string
	count   int
}

type rowMutatedMsg struct {
	key string
	err error
}

type appKeyMap struct {
	quit       key.Binding
	focusNext  key.Binding
	navUp      key.Binding
	navDown    key.Binding
	reload     key.Binding
	reseed     key.Binding
	langSwap   key.Binding
	openExport key.Binding
	toggleHelp key.Binding
}

func newAppKeyMap() appKeyMap {
	return appKeyMap{
		quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		focusNext:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		navUp:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		navDown:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		reload:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reload")),
		reseed:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reseed demo data")),
		langSwap:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "en/ar")),
		openExport: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open last export")),
		toggleHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.focusNext, k.langSwap, k.toggleHelp, k.quit}
}

func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.focusNext, k.navUp, k.navDown},
		{k.reload, k.reseed, k.langSwap},
		{k.openExport, k.toggleHelp, k.quit},
	}
}

// model is the dashboard root: a sidebar of catalog screens, the table
// shell in the middle and a markdown detail pane on the right.
type model struct {
	store     *catalog.Store
	screens   []screen
	screenIdx int

	shell   *datatable.Shell
	preview viewport.Model
	spin    spinner.Model
	help    help.Model

	cfg     *uiConfig
	cfgPath string

	jobs      *jobManager
	telemetry *telemetryLogger

	styles styles
	keys   appKeyMap

	focus      focusArea
	lang       datatable.Lang
	direction  datatable.TextDirection
	exportDir  string
	lastExport string

	summary string
	toast   string
	err     string

	width  int
	height int
}

func newModel(store *catalog.Store, cfg *uiConfig, cfgPath string, lang datatable.Lang, direction datatable.TextDirection, exportDir string, telemetry *telemetryLogger) *model {
	m := &model{
		store:     store,
		screens:   dashboardScreens(),
		cfg:       cfg,
		cfgPath:   cfgPath,
		jobs:      newJobManager(),
		telemetry: telemetry,
		styles:    newStyles(),
		keys:      newAppKeyMap(),
		focus:     focusTable,
		lang:      lang,
		direction: direction,
		exportDir: exportDir,
		preview:   viewport.New(40, 20),
	}
	m.spin = spinner.New()
	m.spin.Spinner = spinner.MiniDot
	m.help = help.New()
	m.shell = m.buildShell(m.screens[0])
	return m
}

// buildShell wires the table component to this screen's columns,
// callbacks and persisted column layout.
func (m *model) buildShell(sc screen) *datatable.Shell {
	screenKey := sc.key
	summarize := sc.summarize
	shell := datatable.NewShell(datatable.Config{
		Columns:          sc.columns,
		Lang:             m.lang,
		Direction:        m.direction,
		ExportDir:        m.exportDir,
		ShowColumnToggle: true,
		LinkConfig:       sc.links,
		OnEdit:           m.toggleStatusCmd(screenKey),
		OnDelete:         m.deleteRowCmd(screenKey),
		OnImageDownload:  m.downloadImageCmd,
		OnColumnsChange:  m.persistColumnsCmd(screenKey),
		OnFilteredDataChange: func(rows []datatable.Row) tea.Cmd {
			return func() tea.Msg {
				summary := ""
				if summarize != nil {
					summary = summarize(rows, m.lang)
				}
				return filteredStatsMsg{key: screenKey, summary: summary, count: len(rows)}
			}
		},
	})
	if hidden := m.cfg.screenColumns(screenKey); hidden != nil {
		shell.RestoreVisibility(hidden)
	}
	return shell
}

func (m *model) currentScreen() screen {
	return m.screens[m.screenIdx]
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.loadScreenCmd(m.currentScreen()), m.spin.Tick)
}

func (m *model) loadScreenCmd(sc screen) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		rows, err := sc.load(store)
		return rowsLoadedMsg{key: sc.key, rows: rows, err: err}
	}
}

// toggleStatusCmd is the dashboard's quick edit: activating a row flips
// its status between the screen's two states.
func (m *model) toggleStatusCmd(screenKey string) func(datatable.Row) tea.Cmd {
	return func(row datatable.Row) tea.Cmd {
		id, ok := row["id"].(int64)
		if !ok {
			return nil
		}
		current, _ := row["status"].(string)
		next := nextStatus(current)
		store := m.store
		return func() tea.Msg {
			err := store.SetStatus(screenKey, id, next)
			return rowMutatedMsg{key: screenKey, err: err}
		}
	}
}

func nextStatus(current string) string {
	switch current {
	case "Active", "نشط":
		return "Inactive"
	case "Inactive", "غير نشط":
		return "Active"
	case "Paid", "مدفوع":
		return "Unpaid"
	case "Unpaid", "غير مدفوع":
		return "Paid"
	}
	return "Active"
}

func (m *model) deleteRowCmd(screenKey string) func(datatable.Row) tea.Cmd {
	return func(row datatable.Row) tea.Cmd {
		id, ok := row["id"].(int64)
		if !ok {
			return nil
		}
		store := m.store
		return func() tea.Msg {
			err := store.Delete(screenKey, id)
			return rowMutatedMsg{key: screenKey, err: err}
		}
	}
}

// downloadImageCmd fetches the product image into the export directory
// with curl so the modal's download action has a real effect.
func (m *model) downloadImageCmd(src, alt string) tea.Cmd {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return '-'
	}, alt)
	dest := filepath.Join(m.exportDir, name+filepath.Ext(src))
	return m.jobs.Enqueue(jobRequest{
		title:   "download " + alt,
		command: "curl",
		args:    []string{"-fsSL", "-o", dest, src},
		onFinish: func(err error) {
			m.telemetry.Emit(telemetryEvent{
				Event:  "image_download",
				Screen: m.currentScreen().key,
				ExtraJSON: map[string]string{
					"src": src, "ok": fmt.Sprint(err == nil),
				},
			})
		},
	})
}

func (m *model) persistColumnsCmd(screenKey string) func([]datatable.Column) tea.Cmd {
	return func(columns []datatable.Column) tea.Cmd {
		hidden := make(map[string]bool, len(columns))
		for _, col := range columns {
			hidden[col.Key] = col.Hidden
		}
		m.cfg.setScreenColumns(screenKey, hidden)
		cfg, path := m.cfg, m.cfgPath
		return func() tea.Msg {
			_ = saveUIConfig(cfg, path)
			return nil
		}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case rowsLoadedMsg:
		if msg.key != m.currentScreen().key {
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		cmd := m.shell.SetRows(msg.rows)
		m.refreshPreview()
		return m, cmd

	case rowMutatedMsg:
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.toast = "saved"
		return m, m.loadScreenCmd(m.currentScreen())

	case filteredStatsMsg:
		if msg.key == m.currentScreen().key {
			m.summary = msg.summary
			m.telemetry.Emit(telemetryEvent{
				Event:  "filtered",
				Screen: msg.key,
				ExtraJSON: map[string]string{
					"rows": fmt.Sprint(msg.count),
				},
			})
		}
		return m, nil

	case datatable.ExportedMsg:
		if msg.Err != nil {
			m.shell.SetStatus("export: "+msg.Err.Error(), true)
			return m, nil
		}
		m.lastExport = msg.Path
		m.toast = "exported " + filepath.Base(msg.Path) + " (o to open)"
		m.telemetry.Emit(telemetryEvent{
			Event:  "export",
			Screen: m.currentScreen().key,
			ExtraJSON: map[string]string{
				"format": msg.Format,
			},
		})
		return m, nil

	case jobMsg:
		switch jm := msg.(type) {
		case jobFinishedMsg:
			if jm.Err != nil {
				m.err = jm.Title + ": " + jm.Err.Error()
			} else {
				m.toast = jm.Title + " done"
			}
		case jobLogMsg:
			m.telemetry.Emit(telemetryEvent{Event: "job_log", ExtraJSON: map[string]string{
				"title": jm.Title, "line": jm.Line,
			}})
		}
		return m, m.jobs.Handle(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.shell.Update(msg)
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.shell.InputActive() {
		cmd := m.shell.Update(msg)
		m.refreshPreview()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.focusNext):
		m.focus = (m.focus + 1) % 3
		return m, nil
	case key.Matches(msg, m.keys.reload):
		return m, m.loadScreenCmd(m.currentScreen())
	case key.Matches(msg, m.keys.reseed):
		store := m.store
		sc := m.currentScreen()
		return m, func() tea.Msg {
			err := store.Reseed()
			return rowMutatedMsg{key: sc.key, err: err}
		}
	case key.Matches(msg, m.keys.langSwap):
		m.swapLang()
		return m, m.loadScreenCmd(m.currentScreen())
	case key.Matches(msg, m.keys.openExport):
		if m.lastExport != "" {
			return m, m.openExportCmd()
		}
		return m, nil
	case key.Matches(msg, m.keys.toggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.focus {
	case focusSidebar:
		switch {
		case key.Matches(msg, m.keys.navUp):
			return m, m.switchScreen(m.screenIdx - 1)
		case key.Matches(msg, m.keys.navDown):
			return m, m.switchScreen(m.screenIdx + 1)
		}
		return m, nil
	case focusPreview:
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	cmd := m.shell.Update(msg)
	m.refreshPreview()
	return m, cmd
}

func (m *model) switchScreen(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.screens) || idx == m.screenIdx {
		return nil
	}
	m.screenIdx = idx
	m.summary = ""
	m.toast = ""
	m.err = ""
	sc := m.currentScreen()
	m.shell = m.buildShell(sc)
	m.shell.SetSize(m.tableWidth())
	m.telemetry.Emit(telemetryEvent{Event: "screen_open", Screen: sc.key})
	return m.loadScreenCmd(sc)
}

func (m *model) swapLang() {
	if m.lang == datatable.LangAr {
		m.lang = datatable.LangEn
		m.direction = datatable.DirectionLTR
	} else {
		m.lang = datatable.LangAr
		m.direction = datatable.DirectionRTL
	}
	m.cfg.Lang = string(m.lang)
	m.cfg.Direction = string(m.direction)
	_ = saveUIConfig(m.cfg, m.cfgPath)
	m.shell = m.buildShell(m.currentScreen())
	m.shell.SetSize(m.tableWidth())
}

func (m *model) openExportCmd() tea.Cmd {
	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "less"
	}
	return m.jobs.Enqueue(jobRequest{
		title:   "open " + filepath.Base(m.lastExport),
		command: editor,
		args:    []string{m.lastExport},
	})
}

const sidebarWidth = 22
const previewWidth = 44

func (m *model) tableWidth() int {
	w := m.width - sidebarWidth - previewWidth - 6
	if w < 40 {
		w = 40
	}
	return w
}

func (m *model) resize(width, height int) {
	m.width = width
	m.height = height
	m.shell.SetSize(m.tableWidth())
	m.help.Width = width
	m.preview.Width = previewWidth
	m.preview.Height = height - 6
	setMarkdownWordWrap(previewWidth - 4)
	m.refreshPreview()
}

// refreshPreview re-renders the markdown pane for the cursor row.
func (m *model) refreshPreview() {
	sc := m.currentScreen()
	if sc.preview == nil {
		m.preview.SetContent("")
		return
	}
	row, ok := m.shell.CursorRow()
	if !ok {
		m.preview.SetContent("")
		return
	}
	m.preview.SetContent(renderMarkdown(sc.preview(row, m.lang)))
}

func (m *model) View() string {
	top := m.viewTopBar()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewSidebar(),
		m.viewTablePane(),
		m.viewPreviewPane(),
	)
	status := m.viewStatusBar()
	return m.styles.app.Render(lipgloss.JoinVertical(lipgloss.Left, top, body, status))
}

func (m *model) viewTopBar() string {
	title := m.styles.topTitle.Render("BringUs Admin")
	state := fmt.Sprintf("%s • %s", m.currentScreen().title.In(m.lang), m.lang)
	if m.jobs.Busy() {
		state = m.spin.View() + " " + state
	}
	return m.styles.topBar.Render(title + "  " + m.styles.topStatus.Render(state))
}

func (m *model) viewSidebar() string {
	var b strings.Builder
	b.WriteString(m.styles.sidebarTitle.Render("Screens") + "\n")
	for i, sc := range m.screens {
		label := sc.title.In(m.lang)
		if i == m.screenIdx {
			b.WriteString(m.styles.navSel.Render("› "+label) + "\n")
		} else {
			b.WriteString(m.styles.navItem.Render("  "+label) + "\n")
		}
	}
	style := m.styles.panel
	if m.focus == focusSidebar {
		style = m.styles.panelFocused
	}
	return style.Width(sidebarWidth).Render(b.String())
}

func (m *model) viewTablePane() string {
	sections := []string{m.shell.View()}
	if m.summary != "" {
		sections = append(sections, m.styles.summary.Render(m.summary))
	}
	style := m.styles.panel
	if m.focus == focusTable {
		style = m.styles.panelFocused
	}
	return style.Width(m.tableWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *model) viewPreviewPane() string {
	style := m.styles.panel
	if m.focus == focusPreview {
		style = m.styles.panelFocused
	}
	title := m.styles.previewTitle.Render("Details")
	return style.Width(previewWidth).Render(lipgloss.JoinVertical(lipgloss.Left, title, m.preview.View()))
}

func (m *model) viewStatusBar() string {
	if m.err != "" {
		return m.styles.statusErr.Render(m.err)
	}
	line := m.help.View(m.keys)
	if m.toast != "" {
		line = m.styles.toast.Render(m.toast) + "  " + line
	}
	return m.styles.statusBar.Render(line)
}

package datatable

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// notifyDebounce coalesces bursts of search/filter changes into a
// single OnFilteredDataChange call; only the last scheduled tick fires.
const notifyDebounce = 200 * time.Millisecond

const (
	minCellWidth = 4
	maxCellWidth = 28
)

// LinkTarget resolves the navigation path of a link column per row.
type LinkTarget struct {
	Column string
	Path   func(Row) string
}

// Config wires a Shell to its owner. All callbacks are optional.
type Config struct {
	Columns   []Column
	Rows      []Row
	Lang      Lang
	Direction TextDirection
	ExportDir string

	// ShowColumnToggle enables the column-visibility menu and the
	// per-column hide binding.
	ShowColumnToggle bool

	OnEdit               func(Row) tea.Cmd
	OnDelete             func(Row) tea.Cmd
	OnFilteredDataChange func([]Row) tea.Cmd
	OnColumnsChange      func([]Column) tea.Cmd
	OnImageDownload      func(src, alt string) tea.Cmd
	LinkConfig           []LinkTarget
}

// ExportedMsg reports the outcome of a CSV/XLSX export back to the
// owning model.
type ExportedMsg struct {
	Path   string
	Format string
	Err    error
}

type filteredNotifyMsg struct {
	seq int
}

type imageModal struct {
	open bool
	src  string
	alt  string
}

type filterEditor struct {
	open      bool
	key       string
	isRange   bool
	from      textinput.Model
	to        textinput.Model
	editingTo bool
	hint      string
}

// Shell owns all interactive table state and recomputes the
// filter → sort → paginate pipeline from that state on every render.
type Shell struct {
	cfg    Config
	styles Styles
	keys   keyMap

	search     textinput.Model
	filters    FilterState
	sortCfg    *SortConfig
	page       int
	visibility Visibility
	pager      paginator.Model

	editor    filterEditor
	menuOpen  bool
	menuIndex int
	modal     imageModal

	cursor    int
	activeCol int

	notifySeq    int
	lastNotified []Row

	status      string
	statusIsErr bool
	width       int
}

// NewShell builds a table component. The column list and rows are
// treated as immutable; replace them with SetRows / SetColumns.
func NewShell(cfg Config) *Shell {
	if cfg.Lang == "" {
		cfg.Lang = LangEn
	}
	if cfg.Direction == "" {
		cfg.Direction = DirectionLTR
	}

	search := textinput.New()
	search.Prompt = "⌕ "
	search.Placeholder = searchPlaceholder(cfg.Lang)
	search.CharLimit = 128

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = PageSize

	return &Shell{
		cfg:        cfg,
		styles:     DefaultStyles(),
		keys:       newKeyMap(),
		search:     search,
		filters:    FilterState{},
		page:       1,
		visibility: NewVisibility(cfg.Columns),
		pager:      pager,
		width:      80,
	}
}

func searchPlaceholder(lang Lang) string {
	if lang == LangAr {
		return "بحث..."
	}
	return "Search..."
}

// SetStyles replaces the default style set.
func (s *Shell) SetStyles(st Styles) {
	s.styles = st
}

// SetSize informs the shell of the available width.
func (s *Shell) SetSize(width int) {
	if width < 20 {
		width = 20
	}
	s.width = width
	s.search.Width = width - 8
}

// SetRows swaps the dataset. Filters, sort and visibility survive; the
// page clamps into the new range and a fresh notification is scheduled.
func (s *Shell) SetRows(rows []Row) tea.Cmd {
	s.cfg.Rows = rows
	s.clampPage()
	return s.scheduleNotify()
}

// SetColumns swaps the column model and reseeds visibility from it.
func (s *Shell) SetColumns(columns []Column) {
	s.cfg.Columns = columns
	s.visibility = NewVisibility(columns)
	if s.activeCol >= len(s.visibleColumns()) {
		s.activeCol = 0
	}
}

// RestoreVisibility applies a persisted column layout. Locked columns
// stay visible regardless of what the saved layout says.
func (s *Shell) RestoreVisibility(hidden map[string]bool) {
	v := NewVisibility(s.cfg.Columns)
	for _, col := range s.cfg.Columns {
		if col.Locked {
			continue
		}
		if h, ok := hidden[col.Key]; ok {
			v[col.Key] = !h
		}
	}
	s.visibility = v
}

// Rows returns the current raw dataset.
func (s *Shell) Rows() []Row {
	return s.cfg.Rows
}

// FilteredRows runs the filter stage over the full dataset with the
// current search term and filter map.
func (s *Shell) FilteredRows() []Row {
	return Filter(s.cfg.Rows, s.search.Value(), s.filters, s.cfg.Columns)
}

// SortedRows runs filter then sort.
func (s *Shell) SortedRows() []Row {
	return Sort(s.FilteredRows(), s.sortCfg, s.cfg.Columns, s.cfg.Lang)
}

// PageRows runs the full pipeline and returns the current page slice
// plus the page count.
func (s *Shell) PageRows() ([]Row, int) {
	sorted := s.SortedRows()
	total := TotalPages(len(sorted), PageSize)
	if s.page > total {
		s.page = total
	}
	return Paginate(sorted, s.page, PageSize), total
}

// Page reports the current 1-based page.
func (s *Shell) Page() int {
	return s.page
}

// Filters returns a copy of the active filter map.
func (s *Shell) Filters() FilterState {
	out := make(FilterState, len(s.filters))
	for k, v := range s.filters {
		out[k] = v
	}
	return out
}

// Sort returns the active sort config, nil when unsorted.
func (s *Shell) Sort() *SortConfig {
	return s.sortCfg
}

// ColumnVisibility returns the live visibility map.
func (s *Shell) ColumnVisibility() Visibility {
	return s.visibility
}

func (s *Shell) visibleColumns() []Column {
	return VisibleColumns(s.cfg.Columns, s.visibility)
}

// SetSearch replaces the free-text search term, resets to page 1 and
// schedules the debounced owner notification.
func (s *Shell) SetSearch(term string) tea.Cmd {
	s.search.SetValue(term)
	s.page = 1
	return s.scheduleNotify()
}

// ApplyFilter sets one filter entry (empty value clears it), resets to
// page 1 and schedules the owner notification.
func (s *Shell) ApplyFilter(key, value string) tea.Cmd {
	if value == "" {
		delete(s.filters, key)
	} else {
		s.filters[key] = value
	}
	s.page = 1
	return s.scheduleNotify()
}

// RemoveFilterChip drops the filter behind one chip; range chips clear
// both bounds at once.
func (s *Shell) RemoveFilterChip(key string) tea.Cmd {
	s.filters = RemoveChip(s.filters, key)
	s.page = 1
	return s.scheduleNotify()
}

// ClearAllFilters empties the filter map in one step. The search term
// is independent state and stays as typed.
func (s *Shell) ClearAllFilters() tea.Cmd {
	s.filters = ClearFilters()
	s.page = 1
	return s.scheduleNotify()
}

// ToggleSort activates or flips the sort on a column. Sorting does not
// reset the page.
func (s *Shell) ToggleSort(key string) {
	s.sortCfg = s.sortCfg.Toggled(key)
}

// ToggleColumn flips one column's visibility and notifies the owner
// with the re-annotated column list.
func (s *Shell) ToggleColumn(key string) tea.Cmd {
	s.visibility = s.visibility.Toggle(key, s.cfg.Columns)
	return s.columnsChanged()
}

// ShowAllColumns, HideAllColumns and ResetColumns are the bulk
// visibility actions of the column menu.
func (s *Shell) ShowAllColumns() tea.Cmd {
	s.visibility = SelectAll(s.cfg.Columns)
	return s.columnsChanged()
}

func (s *Shell) HideAllColumns() tea.Cmd {
	s.visibility = SelectNone(s.cfg.Columns)
	return s.columnsChanged()
}

func (s *Shell) ResetColumns() tea.Cmd {
	s.visibility = ResetVisibility(s.cfg.Columns)
	return s.columnsChanged()
}

func (s *Shell) columnsChanged() tea.Cmd {
	if s.activeCol >= len(s.visibleColumns()) {
		s.activeCol = 0
	}
	if s.cfg.OnColumnsChange == nil {
		return nil
	}
	return s.cfg.OnColumnsChange(AnnotateColumns(s.cfg.Columns, s.visibility))
}

func (s *Shell) scheduleNotify() tea.Cmd {
	if s.cfg.OnFilteredDataChange == nil {
		return nil
	}
	s.notifySeq++
	seq := s.notifySeq
	return tea.Tick(notifyDebounce, func(time.Time) tea.Msg {
		return filteredNotifyMsg{seq: seq}
	})
}

func (s *Shell) clampPage() {
	total := TotalPages(len(s.FilteredRows()), PageSize)
	if s.page > total {
		s.page = total
	}
	if s.page < 1 {
		s.page = 1
	}
}

// Update handles one bubbletea message. The shell never swallows
// unrelated messages; unrecognized input falls through untouched.
func (s *Shell) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case filteredNotifyMsg:
		return s.handleNotify(m)
	case tea.KeyMsg:
		return s.handleKey(m)
	}
	return nil
}

func (s *Shell) handleNotify(msg filteredNotifyMsg) tea.Cmd {
	if msg.seq != s.notifySeq {
		return nil
	}
	filtered := s.FilteredRows()
	if reflect.DeepEqual(filtered, s.lastNotified) {
		return nil
	}
	s.lastNotified = filtered
	if s.cfg.OnFilteredDataChange == nil {
		return nil
	}
	return s.cfg.OnFilteredDataChange(filtered)
}

func (s *Shell) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case s.modal.open:
		return s.handleModalKey(msg)
	case s.editor.open:
		return s.handleEditorKey(msg)
	case s.menuOpen:
		return s.handleMenuKey(msg)
	case s.search.Focused():
		return s.handleSearchKey(msg)
	}
	return s.handleTableKey(msg)
}

func (s *Shell) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.download):
		if s.cfg.OnImageDownload != nil {
			return s.cfg.OnImageDownload(s.modal.src, s.modal.alt)
		}
		return nil
	case key.Matches(msg, s.keys.close), msg.String() == "q":
		s.modal = imageModal{}
	}
	return nil
}

func (s *Shell) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.close):
		s.search.Blur()
		return nil
	case msg.Type == tea.KeyEnter:
		s.search.Blur()
		return nil
	}
	before := s.search.Value()
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	if s.search.Value() != before {
		s.page = 1
		return tea.Batch(cmd, s.scheduleNotify())
	}
	return cmd
}

func (s *Shell) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.close):
		s.editor = filterEditor{}
		return nil
	case msg.Type == tea.KeyTab && s.editor.isRange:
		s.editor.editingTo = !s.editor.editingTo
		if s.editor.editingTo {
			s.editor.from.Blur()
			s.editor.to.Focus()
		} else {
			s.editor.to.Blur()
			s.editor.from.Focus()
		}
		return nil
	case msg.Type == tea.KeyEnter:
		return s.applyEditor()
	}
	var cmd tea.Cmd
	if s.editor.isRange && s.editor.editingTo {
		s.editor.to, cmd = s.editor.to.Update(msg)
	} else {
		s.editor.from, cmd = s.editor.from.Update(msg)
	}
	return cmd
}

func (s *Shell) applyEditor() tea.Cmd {
	editor := s.editor
	s.editor = filterEditor{}
	if editor.isRange {
		cmd := s.ApplyFilter(editor.key+rangeFromSuffix, strings.TrimSpace(editor.from.Value()))
		return tea.Batch(cmd, s.ApplyFilter(editor.key+rangeToSuffix, strings.TrimSpace(editor.to.Value())))
	}
	return s.ApplyFilter(editor.key, strings.TrimSpace(editor.from.Value()))
}

func (s *Shell) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	columns := s.cfg.Columns
	switch {
	case key.Matches(msg, s.keys.close), key.Matches(msg, s.keys.columnMenu):
		s.menuOpen = false
	case key.Matches(msg, s.keys.up):
		if s.menuIndex > 0 {
			s.menuIndex--
		}
	case key.Matches(msg, s.keys.down):
		if s.menuIndex < len(columns)-1 {
			s.menuIndex++
		}
	case key.Matches(msg, s.keys.menuAll):
		return s.ShowAllColumns()
	case key.Matches(msg, s.keys.menuNone):
		return s.HideAllColumns()
	case key.Matches(msg, s.keys.menuReset):
		return s.ResetColumns()
	case key.Matches(msg, s.keys.menuToggle):
		if s.menuIndex < len(columns) {
			return s.ToggleColumn(columns[s.menuIndex].Key)
		}
	}
	return nil
}

func (s *Shell) handleTableKey(msg tea.KeyMsg) tea.Cmd {
	visible := s.visibleColumns()
	pageRows, totalPages := s.PageRows()

	switch {
	case key.Matches(msg, s.keys.focusSearch):
		s.search.Focus()
		return textinput.Blink
	case key.Matches(msg, s.keys.up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(msg, s.keys.down):
		if s.cursor < len(pageRows)-1 {
			s.cursor++
		}
	case key.Matches(msg, s.keys.prevPage):
		if s.page > 1 {
			s.page--
			s.cursor = 0
		}
	case key.Matches(msg, s.keys.nextPage):
		if s.page < totalPages {
			s.page++
			s.cursor = 0
		}
	case key.Matches(msg, s.keys.prevColumn):
		if s.activeCol > 0 {
			s.activeCol--
		}
	case key.Matches(msg, s.keys.nextColumn):
		if s.activeCol < len(visible)-1 {
			s.activeCol++
		}
	case key.Matches(msg, s.keys.sortColumn):
		if col, ok := s.activeColumn(visible); ok && !col.NoControls {
			s.ToggleSort(col.Key)
		}
	case key.Matches(msg, s.keys.filterColumn):
		if col, ok := s.activeColumn(visible); ok && !col.NoControls {
			s.openFilterEditor(col)
			return textinput.Blink
		}
	case key.Matches(msg, s.keys.hideColumn):
		if !s.cfg.ShowColumnToggle {
			return nil
		}
		if col, ok := s.activeColumn(visible); ok && !col.NoControls {
			return s.ToggleColumn(col.Key)
		}
	case key.Matches(msg, s.keys.columnMenu):
		if s.cfg.ShowColumnToggle {
			s.menuOpen = true
			s.menuIndex = 0
		}
	case key.Matches(msg, s.keys.clearFilters):
		return s.ClearAllFilters()
	case key.Matches(msg, s.keys.removeChip):
		chips := SummarizeFilters(s.filters, s.cfg.Columns, s.cfg.Lang)
		if len(chips) > 0 {
			return s.RemoveFilterChip(chips[len(chips)-1].Key)
		}
	case key.Matches(msg, s.keys.exportCSV):
		return s.exportCmd("csv")
	case key.Matches(msg, s.keys.exportXLSX):
		return s.exportCmd("xlsx")
	case key.Matches(msg, s.keys.copyCell):
		s.copyCell(visible, pageRows)
	case key.Matches(msg, s.keys.copyRow):
		s.copyRow(visible, pageRows)
	case key.Matches(msg, s.keys.activate):
		return s.activateRow(visible, pageRows)
	case key.Matches(msg, s.keys.deleteRow):
		if row, ok := s.cursorRow(pageRows); ok && s.cfg.OnDelete != nil {
			return s.cfg.OnDelete(row)
		}
	}
	return nil
}

func (s *Shell) activeColumn(visible []Column) (Column, bool) {
	if s.activeCol < 0 || s.activeCol >= len(visible) {
		return Column{}, false
	}
	return visible[s.activeCol], true
}

func (s *Shell) cursorRow(pageRows []Row) (Row, bool) {
	if s.cursor < 0 || s.cursor >= len(pageRows) {
		return nil, false
	}
	return pageRows[s.cursor], true
}

func (s *Shell) openFilterEditor(col Column) {
	from := textinput.New()
	from.CharLimit = 64
	from.Width = 24
	to := textinput.New()
	to.CharLimit = 64
	to.Width = 24

	editor := filterEditor{
		open:    true,
		key:     col.Key,
		isRange: col.Type == TypeDate,
		from:    from,
		to:      to,
	}
	if editor.isRange {
		editor.from.SetValue(s.filters[col.Key+rangeFromSuffix])
		editor.to.SetValue(s.filters[col.Key+rangeToSuffix])
		editor.from.Placeholder = "YYYY-MM-DD"
		editor.to.Placeholder = "YYYY-MM-DD"
	} else {
		editor.from.SetValue(s.filters[col.Key])
		editor.hint = s.editorHint(col)
	}
	editor.from.Focus()
	s.editor = editor
}

// editorHint lists a few known values so the same text box doubles as a
// pick list; typing one of them switches the filter to exact-match mode.
func (s *Shell) editorHint(col Column) string {
	if col.Key == "stock" {
		return StockUnder10 + " • " + Stock10To50 + " • " + StockOver50
	}
	distinct := DistinctValues(s.cfg.Rows, col.Key)
	if len(distinct) == 0 || len(distinct) > 8 {
		return ""
	}
	values := make([]string, 0, len(distinct))
	for v := range distinct {
		values = append(values, v)
	}
	sort.Strings(values)
	return strings.Join(values, " • ")
}

func (s *Shell) exportCmd(format string) tea.Cmd {
	rows := s.SortedRows()
	columns := s.visibleColumns()
	lang := s.cfg.Lang
	dir := s.cfg.ExportDir
	return func() tea.Msg {
		var (
			path string
			err  error
		)
		if format == "xlsx" {
			path, err = ExportXLSX(rows, columns, lang, dir)
		} else {
			path, err = ExportCSV(rows, columns, lang, dir)
		}
		return ExportedMsg{Path: path, Format: format, Err: err}
	}
}

func (s *Shell) copyCell(visible []Column, pageRows []Row) {
	row, okRow := s.cursorRow(pageRows)
	col, okCol := s.activeColumn(visible)
	if !okRow || !okCol {
		return
	}
	if err := clipboard.WriteAll(ExportValue(col, row)); err != nil {
		s.setStatus("clipboard: "+err.Error(), true)
		return
	}
	s.setStatus("cell copied", false)
}

func (s *Shell) copyRow(visible []Column, pageRows []Row) {
	row, ok := s.cursorRow(pageRows)
	if !ok {
		return
	}
	parts := make([]string, len(visible))
	for i, col := range visible {
		parts[i] = ExportValue(col, row)
	}
	if err := clipboard.WriteAll(strings.Join(parts, ",")); err != nil {
		s.setStatus("clipboard: "+err.Error(), true)
		return
	}
	s.setStatus("row copied", false)
}

func (s *Shell) activateRow(visible []Column, pageRows []Row) tea.Cmd {
	row, okRow := s.cursorRow(pageRows)
	if !okRow {
		return nil
	}
	if col, okCol := s.activeColumn(visible); okCol {
		switch col.Type {
		case TypeImage:
			s.modal = imageModal{
				open: true,
				src:  valueString(row[col.Key]),
				alt:  s.imageAlt(row),
			}
			return nil
		case TypeLink:
			if path := s.linkPath(col.Key, row); path != "" {
				s.setStatus("→ "+path, false)
				return nil
			}
		}
	}
	if s.cfg.OnEdit != nil {
		return s.cfg.OnEdit(row)
	}
	return nil
}

func (s *Shell) imageAlt(row Row) string {
	for _, key := range []string{"name", "nameAr", "title"} {
		if v, ok := row[key]; ok {
			if text := valueString(v); text != "" {
				return text
			}
		}
	}
	return "image"
}

// CursorRow returns the row under the cursor on the current page.
func (s *Shell) CursorRow() (Row, bool) {
	rows, _ := s.PageRows()
	return s.cursorRow(rows)
}

// InputActive reports whether the shell currently owns the keyboard
// (search focused or an overlay open), so owners can suppress their
// own hotkeys.
func (s *Shell) InputActive() bool {
	return s.search.Focused() || s.editor.open || s.menuOpen || s.modal.open
}

// SetStatus lets the owner surface a message on the table's inline
// status line (export results, job failures).
func (s *Shell) SetStatus(text string, isErr bool) {
	s.setStatus(text, isErr)
}

func (s *Shell) setStatus(text string, isErr bool) {
	s.status = text
	s.statusIsErr = isErr
}

// View renders the whole component: search, chips, header, body,
// pagination, status and any open overlay.
func (s *Shell) View() string {
	sections := []string{
		s.styles.SearchBox.Render(s.search.View()),
	}
	if chips := s.viewChips(); chips != "" {
		sections = append(sections, chips)
	}
	sections = append(sections, s.viewTable())
	sections = append(sections, s.viewPagination())
	if s.status != "" {
		style := s.styles.StatusLine
		if s.statusIsErr {
			style = s.styles.Error
		}
		sections = append(sections, style.Render(s.status))
	}
	if overlay := s.viewOverlay(); overlay != "" {
		sections = append(sections, overlay)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *Shell) viewChips() string {
	chips := SummarizeFilters(s.filters, s.cfg.Columns, s.cfg.Lang)
	if len(chips) == 0 {
		return ""
	}
	rendered := make([]string, len(chips))
	for i, chip := range chips {
		rendered[i] = s.styles.Chip.Render(
			s.styles.ChipLabel.Render(chip.Label) + ": " + chip.Value + " ✕",
		)
	}
	if s.cfg.Direction == DirectionRTL {
		reverseStrings(rendered)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
}

func (s *Shell) viewTable() string {
	visible := s.visibleColumns()
	if len(visible) == 0 {
		return s.styles.StatusLine.Render("(no visible columns)")
	}
	pageRows, _ := s.PageRows()
	widths := s.columnWidths(visible, pageRows)

	display := make([]int, len(visible))
	for i := range visible {
		display[i] = i
	}
	if s.cfg.Direction == DirectionRTL {
		reverseInts(display)
	}

	var headerCells []string
	for _, idx := range display {
		headerCells = append(headerCells, s.headerCell(visible[idx], idx == s.activeCol, widths[idx]))
	}
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Center, headerCells...)}

	for rowIdx, row := range pageRows {
		var cells []string
		for _, idx := range display {
			cells = append(cells, s.bodyCell(visible[idx], row, widths[idx]))
		}
		line := lipgloss.JoinHorizontal(lipgloss.Center, cells...)
		if rowIdx == s.cursor {
			line = s.styles.RowSelected.Render(line)
		}
		lines = append(lines, line)
	}
	if len(pageRows) == 0 {
		lines = append(lines, s.styles.StatusLine.Render("(no rows match)"))
	}
	return strings.Join(lines, "\n")
}

func (s *Shell) headerCell(col Column, active bool, width int) string {
	label := col.Label.In(s.cfg.Lang)
	if !col.NoControls {
		if s.sortCfg != nil && s.sortCfg.Key == col.Key {
			if s.sortCfg.Direction == Ascending {
				label += " ▲"
			} else {
				label += " ▼"
			}
		}
		if s.columnFiltered(col.Key) {
			label += " ●"
		}
	}
	style := s.styles.Header
	if active {
		style = s.styles.HeaderActive
	}
	return style.Render(pad(label, width, col.Align))
}

func (s *Shell) columnFiltered(key string) bool {
	if s.filters[key] != "" {
		return true
	}
	return s.filters[key+rangeFromSuffix] != "" || s.filters[key+rangeToSuffix] != ""
}

func (s *Shell) bodyCell(col Column, row Row, width int) string {
	content := RenderCell(col, row, s.styles)
	return s.styles.Cell.Render(pad(content, width, col.Align))
}

func (s *Shell) linkPath(column string, row Row) string {
	for _, target := range s.cfg.LinkConfig {
		if target.Column == column && target.Path != nil {
			return target.Path(row)
		}
	}
	return ""
}

func (s *Shell) columnWidths(visible []Column, pageRows []Row) []int {
	widths := make([]int, len(visible))
	for i, col := range visible {
		w := lipgloss.Width(col.Label.In(s.cfg.Lang)) + 2
		for _, row := range pageRows {
			if cw := lipgloss.Width(RenderCell(col, row, s.styles)); cw > w {
				w = cw
			}
		}
		if w < minCellWidth {
			w = minCellWidth
		}
		if w > maxCellWidth {
			w = maxCellWidth
		}
		widths[i] = w
	}
	return widths
}

func (s *Shell) viewPagination() string {
	sorted := s.SortedRows()
	total := TotalPages(len(sorted), PageSize)
	s.pager.SetTotalPages(len(sorted))
	s.pager.Page = s.page - 1
	return s.styles.Pagination.Render(fmt.Sprintf(
		"%s  Page %d/%d • %d rows", s.pager.View(), s.page, total, len(sorted),
	))
}

func (s *Shell) viewOverlay() string {
	switch {
	case s.modal.open:
		body := fmt.Sprintf("%s\n%s\n\nd download • esc close", s.modal.alt, s.modal.src)
		return s.styles.Modal.Render(body)
	case s.editor.open:
		return s.viewEditor()
	case s.menuOpen:
		return s.viewMenu()
	}
	return ""
}

func (s *Shell) viewEditor() string {
	label := s.editor.key
	if col, ok := columnByKey(s.cfg.Columns, s.editor.key); ok {
		label = col.Label.In(s.cfg.Lang)
	}
	var b strings.Builder
	b.WriteString("Filter: " + label + "\n\n")
	if s.editor.isRange {
		b.WriteString("From " + s.editor.from.View() + "\n")
		b.WriteString("To   " + s.editor.to.View() + "\n")
		b.WriteString("\ntab switch bound • enter apply • esc cancel")
	} else {
		b.WriteString(s.editor.from.View() + "\n")
		if s.editor.hint != "" {
			b.WriteString("\nKnown values: " + s.editor.hint + "\n")
		}
		b.WriteString("\nenter apply • esc cancel")
	}
	return s.styles.Popover.Render(b.String())
}

func (s *Shell) viewMenu() string {
	var b strings.Builder
	b.WriteString("Columns\n\n")
	for i, col := range s.cfg.Columns {
		marker := "[ ]"
		if s.visibility[col.Key] {
			marker = "[x]"
		}
		line := fmt.Sprintf("%s %s", marker, col.Label.In(s.cfg.Lang))
		if col.Locked {
			line += " (always shown)"
		}
		if i == s.menuIndex {
			line = s.styles.RowSelected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\nspace toggle • a all • n none • r reset • esc close")
	return s.styles.Popover.Render(b.String())
}

func pad(content string, width int, align Align) string {
	pos := lipgloss.Center
	switch align {
	case AlignLeft:
		pos = lipgloss.Left
	case AlignRight:
		pos = lipgloss.Right
	}
	if lipgloss.Width(content) > width {
		return lipgloss.NewStyle().MaxWidth(width).Render(content)
	}
	return lipgloss.PlaceHorizontal(width, pos, content)
}

func reverseStrings(items []string) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}

func reverseInts(items []int) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}

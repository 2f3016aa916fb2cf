package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"braindrop/internal/adapter"
	"braindrop/internal/config"
	"braindrop/internal/logger"
	"braindrop/internal/service"
	"braindrop/models"
)

type paneFocus int

const (
	focusNavigation paneFocus = iota
	focusList
	focusDetails
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayHelp
	overlaySearch
	overlayConfirm
	overlayForm
)

// mainModel drives the whole main screen: the three panes, the download
// overlay, the add/edit form, search, confirmation dialogs and the help
// view.
type mainModel struct {
	ctx     context.Context
	data    service.DataService
	sync    service.SyncService
	wayback adapter.WaybackClient
	logger  *logger.Logger

	uiState     config.UIState
	uiStatePath string

	width  int
	height int

	downloading   bool
	downloadCount int
	downloadCh    chan tea.Msg
	spinner       spinner.Model

	group    models.Raindrops
	navItems []navItem
	navIdx   int
	listIdx  int
	focus    paneFocus

	overlay overlayKind
	search  textinput.Model
	form    *raindropForm
	confirm confirmModel
	help    help.Model

	// draft survives a cancelled or failed save so reopening the form
	// does not lose work.
	draft *models.Raindrop

	status     string
	errMsg     string
	statusSeq  int
	refreshDue bool

	logout     bool
	quitByUser bool

	needDownload bool
}

func newMainModel(
	ctx context.Context,
	services *service.Services,
	wayback adapter.WaybackClient,
	uiState config.UIState,
	uiStatePath string,
	needDownload bool,
	log *logger.Logger,
) mainModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "search titles, notes, links, tags…"
	search.Width = 50

	m := mainModel{
		ctx:          ctx,
		data:         services.Data,
		sync:         services.Sync,
		wayback:      wayback,
		logger:       log,
		uiState:      uiState,
		uiStatePath:  uiStatePath,
		spinner:      s,
		search:       search,
		help:         help.New(),
		focus:        focusList,
		needDownload: needDownload,
	}
	m.group = m.data.InCollection(uiState.LastCollection)
	m.navItems = buildNavigation(m.data, m.group, uiState.TagsByCount)
	m.navIdx = m.navIndexOf(m.group.Collection)
	return m
}

func (m mainModel) Init() tea.Cmd {
	if m.needDownload {
		return func() tea.Msg { return startDownloadMsg{} }
	}
	return nil
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startDownloadMsg:
		return m, m.cmdStartDownload()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.downloading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case downloadProgressMsg:
		m.downloadCount = msg.count
		return m, m.cmdAwaitDownload()

	case downloadDoneMsg:
		m.downloading = false
		m.refreshDue = false
		if msg.err != nil {
			m.setError(friendlyError(msg.err))
			return m, nil
		}
		m.group = m.data.Rebuild(m.group)
		m.refreshViews()
		return m, m.setStatus(fmt.Sprintf("downloaded %d raindrops", m.data.All().Len()))

	case raindropSavedMsg:
		if m.form != nil {
			m.form.saving = false
		}
		if msg.err != nil {
			if m.form != nil {
				m.form.errMsg = friendlyError(msg.err)
				draft := m.form.draft()
				m.draft = &draft
			}
			return m, nil
		}
		m.closeForm(false)
		m.draft = nil
		m.refreshViews()
		return m, m.setStatus(fmt.Sprintf("saved %q", fitText(msg.raindrop.Title, 40)))

	case raindropDeletedMsg:
		if msg.err != nil {
			m.setError(friendlyError(msg.err))
			return m, nil
		}
		m.refreshViews()
		return m, m.setStatus("raindrop deleted")

	case suggestionsMsg:
		if msg.err != nil || m.form == nil {
			return m, nil
		}
		if strings.TrimSpace(m.form.url.Value()) == msg.link {
			m.form.suggested = models.DedupeTags(msg.suggestions.Tags)
		}
		return m, nil

	case waybackMsg:
		if msg.err != nil {
			m.setError(friendlyError(msg.err))
			return m, nil
		}
		if msg.available {
			return m, m.setStatus("the Wayback Machine has a copy of that link")
		}
		return m, m.setStatus("the Wayback Machine has no copy of that link")

	case linkCopiedMsg:
		if msg.err != nil {
			m.setError("could not copy to the clipboard: " + msg.err.Error())
			return m, nil
		}
		return m, m.setStatus("link copied")

	case linkOpenedMsg:
		if msg.err != nil {
			m.setError(msg.err.Error())
		}
		return m, nil

	case refreshDueMsg:
		m.refreshDue = true
		return m, m.setStatus("raindrop.io has new data, ctrl+r to redownload")

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.errMsg = ""
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.overlay == overlayForm && m.form != nil {
			return m, m.form.updateFocused(msg)
		}
		if m.overlay == overlaySearch {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.Matches(keyMsg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.downloading {
		// Everything else waits for the download.
		return m, nil
	}

	switch m.overlay {
	case overlayHelp:
		return m.updateHelp(keyMsg)
	case overlayConfirm:
		return m.updateConfirm(keyMsg)
	case overlaySearch:
		return m.updateSearch(keyMsg)
	case overlayForm:
		return m.updateForm(keyMsg)
	}

	return m.updateMain(keyMsg)
}

// ── overlay updates ─────────────────────────────────────────────────────────

func (m mainModel) updateHelp(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.help):
		m.overlay = overlayNone
		m.help.ShowAll = false
	}
	return m, nil
}

func (m mainModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y", "enter":
		action := m.confirm.action
		m.overlay = overlayNone
		m.confirm = confirmModel{}
		switch action {
		case confirmDelete:
			if raindrop, ok := m.current(); ok {
				return m, m.cmdDelete(raindrop)
			}
		case confirmLogout:
			m.logout = true
			return m, tea.Quit
		}
	case "n", "esc":
		m.overlay = overlayNone
		m.confirm = confirmModel{}
	}
	return m, nil
}

func (m mainModel) updateSearch(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.overlay = overlayNone
		m.search.Reset()
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.search.Value())
		m.overlay = overlayNone
		m.search.Reset()
		if text != "" {
			m.setGroup(m.group.Containing(text))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(keyMsg)
	return m, cmd
}

func (m mainModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := m.form
	if form == nil {
		m.overlay = overlayNone
		return m, nil
	}
	if form.saving {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.closeForm(true)
		return m, nil

	case "tab", "shift+tab":
		step := 1
		if keyMsg.String() == "shift+tab" {
			step = -1
		}
		var cmd tea.Cmd
		if form.focus == fieldURL {
			if link, ok := form.wantsSuggestions(); ok {
				cmd = m.cmdSuggestions(link)
			}
		}
		form.setFocus(form.nextField(step))
		return m, cmd

	case "left", "right":
		if form.focus == fieldCollection {
			step := 1
			if keyMsg.String() == "left" {
				step = -1
			}
			form.cycleCollection(step)
			return m, nil
		}

	case "ctrl+s":
		return m.submitForm()

	case "enter":
		// The textareas take enter as a newline; everywhere else it
		// submits.
		if form.focus != fieldExcerpt && form.focus != fieldNote {
			return m.submitForm()
		}
	}

	return m, form.updateFocused(keyMsg)
}

func (m mainModel) submitForm() (tea.Model, tea.Cmd) {
	form := m.form
	if problem := form.validate(); problem != "" {
		form.errMsg = problem
		return m, nil
	}

	form.errMsg = ""
	form.saving = true
	return m, m.cmdSave(form.draft())
}

// ── main screen keys ────────────────────────────────────────────────────────

func (m mainModel) updateMain(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.help):
		m.overlay = overlayHelp
		m.help.ShowAll = true
		return m, nil

	case key.Matches(keyMsg, keys.visitApp):
		return m, cmdOpenLink(raindropAppURL)

	case key.Matches(keyMsg, keys.details):
		m.uiState.DetailsVisible = !m.uiState.DetailsVisible
		if !m.uiState.DetailsVisible && m.focus == focusDetails {
			m.focus = focusList
		}
		m.saveUIState()
		return m, nil

	case key.Matches(keyMsg, keys.tagOrder):
		m.uiState.TagsByCount = !m.uiState.TagsByCount
		m.saveUIState()
		m.refreshViews()
		if m.uiState.TagsByCount {
			return m, m.setStatus("tags ordered by count")
		}
		return m, m.setStatus("tags ordered by name")

	case key.Matches(keyMsg, keys.compact):
		m.uiState.CompactMode = !m.uiState.CompactMode
		m.saveUIState()
		return m, nil

	case key.Matches(keyMsg, keys.logout):
		m.confirm = confirmDialog("Forget the API token and wipe the local cache?", confirmLogout)
		m.overlay = overlayConfirm
		return m, nil

	case key.Matches(keyMsg, keys.redownload):
		return m, m.cmdStartDownload()

	case key.Matches(keyMsg, keys.search):
		m.overlay = overlaySearch
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(keyMsg, keys.searchTags):
		if idx := m.firstTagIndex(); idx >= 0 {
			m.focus = focusNavigation
			m.navIdx = idx
		}
		return m, nil

	case key.Matches(keyMsg, keys.clearFilters):
		if m.group.IsFiltered() {
			m.setGroup(m.group.Unfiltered())
			return m, m.setStatus("filters cleared")
		}
		return m, nil

	case key.Matches(keyMsg, keys.add):
		return m.openForm(m.newDraft())

	case key.Matches(keyMsg, keys.edit):
		if raindrop, ok := m.current(); ok {
			return m.openForm(raindrop)
		}
		return m, nil

	case key.Matches(keyMsg, keys.delete):
		if raindrop, ok := m.current(); ok {
			question := fmt.Sprintf("Move %q to the trash?", fitText(raindrop.Title, 40))
			if raindrop.Collection == int64(models.CollectionTrash) {
				question = fmt.Sprintf("Delete %q for good?", fitText(raindrop.Title, 40))
			}
			m.confirm = confirmDialog(question, confirmDelete)
			m.overlay = overlayConfirm
		}
		return m, nil

	case key.Matches(keyMsg, keys.visitLink):
		if raindrop, ok := m.current(); ok && raindrop.Link != "" {
			return m, cmdOpenLink(raindrop.Link)
		}
		return m, nil

	case key.Matches(keyMsg, keys.copyLink):
		if raindrop, ok := m.current(); ok && raindrop.Link != "" {
			return m, cmdCopyLink(raindrop.Link)
		}
		return m, nil

	case key.Matches(keyMsg, keys.wayback):
		if raindrop, ok := m.current(); ok && raindrop.Link != "" {
			return m, tea.Batch(
				m.setStatus("asking the Wayback Machine…"),
				m.cmdWayback(raindrop.Link),
			)
		}
		return m, nil

	case key.Matches(keyMsg, keys.showAll):
		m.setGroup(m.data.All())
		return m, nil
	case key.Matches(keyMsg, keys.showUnsorted):
		m.setGroup(m.data.Unsorted())
		return m, nil
	case key.Matches(keyMsg, keys.showUntagged):
		m.setGroup(m.data.Untagged())
		return m, nil
	case key.Matches(keyMsg, keys.showBroken):
		m.setGroup(m.data.Broken())
		return m, nil
	case key.Matches(keyMsg, keys.showTrash):
		m.setGroup(m.data.Trash())
		return m, nil

	case key.Matches(keyMsg, keys.tab):
		m.focus = m.nextPane(1)
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.focus = m.nextPane(-1)
		return m, nil

	case key.Matches(keyMsg, keys.esc):
		// Step outwards; at the outermost level esc leaves the app.
		switch m.focus {
		case focusDetails:
			m.focus = focusList
		case focusList:
			m.focus = focusNavigation
		case focusNavigation:
			m.quitByUser = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.focus {
	case focusNavigation:
		return m.updateNavigation(keyMsg)
	case focusList:
		return m.updateList(keyMsg)
	}
	return m, nil
}

func (m mainModel) updateNavigation(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		m.navIdx = nextSelectable(m.navItems, m.navIdx, -1)
	case key.Matches(keyMsg, keys.down):
		m.navIdx = nextSelectable(m.navItems, m.navIdx, 1)
	case key.Matches(keyMsg, keys.enter):
		if m.navIdx < 0 || m.navIdx >= len(m.navItems) {
			return m, nil
		}
		switch item := m.navItems[m.navIdx]; item.kind {
		case navSpecial, navCollection:
			m.setGroup(m.data.InCollection(item.id))
			m.focus = focusList
		case navTag:
			m.setGroup(m.group.Tagged(item.tag))
			m.focus = focusList
		}
	}
	return m, nil
}

func (m mainModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.listIdx > 0 {
			m.listIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.listIdx < m.group.Len()-1 {
			m.listIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.uiState.DetailsVisible {
			m.focus = focusDetails
		}
	}
	return m, nil
}

// ── state helpers ───────────────────────────────────────────────────────────

func (m *mainModel) current() (models.Raindrop, bool) {
	items := m.group.Items()
	if len(items) == 0 || m.listIdx < 0 || m.listIdx >= len(items) {
		return models.Raindrop{}, false
	}
	return items[m.listIdx], true
}

// setGroup switches the active group, remembering the collection for the
// next session.
func (m *mainModel) setGroup(group models.Raindrops) {
	m.group = group
	m.listIdx = 0
	m.refreshViews()

	if m.uiState.LastCollection != group.Collection {
		m.uiState.LastCollection = group.Collection
		m.saveUIState()
	}
}

// refreshViews re-bases the active group on fresh data and rebuilds the
// navigation rows.
func (m *mainModel) refreshViews() {
	m.group = m.data.Rebuild(m.group)
	m.navItems = buildNavigation(m.data, m.group, m.uiState.TagsByCount)
	if m.navIdx >= len(m.navItems) {
		m.navIdx = nextSelectable(m.navItems, len(m.navItems), -1)
	}
	if m.listIdx >= m.group.Len() {
		m.listIdx = m.group.Len() - 1
	}
	if m.listIdx < 0 {
		m.listIdx = 0
	}
}

func (m *mainModel) navIndexOf(collection int64) int {
	for i, item := range m.navItems {
		if item.kind != navTag && item.selectable() && item.id == collection {
			return i
		}
	}
	return 0
}

func (m *mainModel) firstTagIndex() int {
	for i, item := range m.navItems {
		if item.kind == navTag {
			return i
		}
	}
	return -1
}

func (m *mainModel) nextPane(step int) paneFocus {
	panes := []paneFocus{focusNavigation, focusList}
	if m.uiState.DetailsVisible {
		panes = append(panes, focusDetails)
	}
	for i, pane := range panes {
		if pane == m.focus {
			return panes[(i+step+len(panes))%len(panes)]
		}
	}
	return focusList
}

// newDraft is the raindrop the add form opens with: the preserved draft
// if one exists, otherwise a fresh one filed into the current collection.
func (m *mainModel) newDraft() models.Raindrop {
	if m.draft != nil {
		return *m.draft
	}

	collection := m.group.Collection
	if models.SpecialCollection(collection).IsLocal() || collection == int64(models.CollectionAll) {
		collection = int64(models.CollectionUnsorted)
	}
	return models.Raindrop{Collection: collection}
}

func (m mainModel) openForm(raindrop models.Raindrop) (tea.Model, tea.Cmd) {
	form := newRaindropForm(raindrop, pickerCollections(m.data))
	if raindrop.IsBrandNew() {
		form.suggestClipboardURL()
	}

	var cmd tea.Cmd
	if link, ok := form.wantsSuggestions(); ok {
		cmd = m.cmdSuggestions(link)
	}

	m.form = form
	m.overlay = overlayForm
	return m, tea.Batch(cmd, textinput.Blink)
}

// closeForm dismisses the form, optionally keeping the draft around for
// the next open.
func (m *mainModel) closeForm(keepDraft bool) {
	if keepDraft && m.form != nil && !m.form.editing {
		draft := m.form.draft()
		m.draft = &draft
	}
	m.form = nil
	m.overlay = overlayNone
}

func (m *mainModel) setStatus(status string) tea.Cmd {
	m.status = status
	m.errMsg = ""
	m.statusSeq++
	return m.cmdClearStatusLater()
}

func (m *mainModel) setError(errMsg string) {
	m.errMsg = errMsg
	m.status = ""
	m.statusSeq++
}

func (m *mainModel) saveUIState() {
	if m.uiStatePath == "" {
		return
	}
	if err := config.SaveUIState(m.uiStatePath, m.uiState); err != nil {
		m.logger.Warn().Err(err).Msg("could not save UI state")
	}
}

// ── view ────────────────────────────────────────────────────────────────────

func (m mainModel) View() string {
	if m.downloading {
		return appStyle.Render(fmt.Sprintf(
			"%s Downloading from raindrop.io… %d raindrops",
			m.spinner.View(), m.downloadCount,
		))
	}

	switch m.overlay {
	case overlayForm:
		if m.form != nil {
			return appStyle.Render(m.form.View())
		}
	case overlayConfirm:
		return appStyle.Render(m.confirm.View())
	case overlaySearch:
		return appStyle.Render(overlayBoxStyle.Render(
			titleStyle.Render("Search") + "\n\n" + m.search.View() + "\n\n" +
				helpStyle.Render("enter apply · esc cancel"),
		))
	case overlayHelp:
		return appStyle.Render(
			titleStyle.Render("Keys") + "\n\n" + m.help.View(keys) + "\n\n" +
				helpStyle.Render("esc close"),
		)
	}

	width := m.width
	if width <= 0 {
		width = 120
	}
	height := m.height
	if height <= 0 {
		height = 30
	}

	contentHeight := height - 6
	if contentHeight < 5 {
		contentHeight = 5
	}

	navWidth := 26
	detailsWidth := 0
	if m.uiState.DetailsVisible {
		detailsWidth = width * 3 / 8
	}
	listWidth := width - navWidth - detailsWidth - 12
	if listWidth < 20 {
		listWidth = 20
	}

	columns := []string{
		m.renderPane(m.viewNavigation(navWidth, contentHeight), navWidth, contentHeight, m.focus == focusNavigation),
		m.renderPane(m.viewList(listWidth, contentHeight), listWidth, contentHeight, m.focus == focusList),
	}
	if m.uiState.DetailsVisible {
		columns = append(columns,
			m.renderPane(m.viewDetails(detailsWidth), detailsWidth, contentHeight, m.focus == focusDetails))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("braindrop"))
	b.WriteString("  ")
	b.WriteString(faintStyle.Render(m.group.Description()))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")

	switch {
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))

	return appStyle.Render(b.String())
}

func (m mainModel) renderPane(content string, width, height int, focused bool) string {
	style := paneStyle
	if focused {
		style = focusedPaneStyle
	}
	return style.Width(width).Height(height).Render(content)
}

func (m mainModel) viewNavigation(width, height int) string {
	if len(m.navItems) == 0 {
		return faintStyle.Render("nothing here yet")
	}

	offset := scrollOffset(m.navIdx, len(m.navItems), height)
	var b strings.Builder
	for i := offset; i < len(m.navItems) && i-offset < height; i++ {
		b.WriteString(renderNavItem(m.navItems[i], i == m.navIdx && m.focus == focusNavigation, width))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainModel) viewList(width, height int) string {
	items := m.group.Items()
	if len(items) == 0 {
		if m.group.IsFiltered() {
			return faintStyle.Render("nothing matches the filters")
		}
		return faintStyle.Render("no raindrops here")
	}

	rowsPerItem := 2
	if m.uiState.CompactMode {
		rowsPerItem = 1
	}
	visible := height / rowsPerItem
	offset := scrollOffset(m.listIdx, len(items), visible)

	var b strings.Builder
	for i := offset; i < len(items) && i-offset < visible; i++ {
		raindrop := items[i]
		selected := i == m.listIdx

		title := fitText(raindrop.Title, width-2)
		if title == "" {
			title = fitText(raindrop.Link, width-2)
		}
		cursor := "  "
		if selected {
			cursor = "> "
			title = selectedStyle.Render(title)
		}
		b.WriteString(cursor)
		b.WriteString(title)
		b.WriteString("\n")

		if !m.uiState.CompactMode {
			meta := humanTime(raindrop.Created)
			if raindrop.Domain != "" {
				meta = raindrop.Domain + " · " + meta
			}
			if len(raindrop.Tags) > 0 {
				meta += " · " + tagLine(raindrop.Tags)
			}
			if raindrop.Broken {
				meta += " · " + brokenTag
			}
			b.WriteString("  ")
			b.WriteString(faintStyle.Render(fitText(meta, width-2)))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainModel) viewDetails(width int) string {
	raindrop, ok := m.current()
	if !ok {
		return faintStyle.Render("nothing selected")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fitText(raindrop.Title, width)))
	b.WriteString("\n\n")

	if raindrop.Excerpt != "" {
		b.WriteString(raindrop.Excerpt)
		b.WriteString("\n\n")
	}
	if raindrop.Note != "" {
		b.WriteString(faintStyle.Render("note: "))
		b.WriteString(raindrop.Note)
		b.WriteString("\n\n")
	}

	b.WriteString(tagStyle.Render(fitText(raindrop.Link, width)))
	b.WriteString("\n")
	if raindrop.Broken {
		b.WriteString(brokenTag)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(faintStyle.Render("added:   "))
	b.WriteString(fmt.Sprintf("%s (%s)\n", humanTime(raindrop.Created), exactTime(raindrop.Created)))
	b.WriteString(faintStyle.Render("updated: "))
	b.WriteString(fmt.Sprintf("%s (%s)\n", humanTime(raindrop.LastUpdate), exactTime(raindrop.LastUpdate)))

	if len(raindrop.Tags) > 0 {
		b.WriteString(faintStyle.Render("tags:    "))
		b.WriteString(tagStyle.Render(tagLine(raindrop.Tags)))
		b.WriteString("\n")
	}
	if raindrop.Type != "" {
		b.WriteString(faintStyle.Render("type:    "))
		b.WriteString(string(raindrop.Type))
		b.WriteString("\n")
	}

	return b.String()
}

// scrollOffset keeps the selected row inside a window of the given
// height.
func scrollOffset(selected, total, height int) int {
	if height <= 0 || total <= height {
		return 0
	}
	offset := selected - height/2
	if offset < 0 {
		offset = 0
	}
	if offset > total-height {
		offset = total - height
	}
	return offset
}

package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding of the main screen. The function keys mirror
// the footer actions; everything else is a plain letter the way the web
// application's keyboard map works.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding

	help     key.Binding
	visitApp key.Binding
	details  key.Binding
	tagOrder key.Binding
	compact  key.Binding
	logout   key.Binding

	add          key.Binding
	edit         key.Binding
	delete       key.Binding
	visitLink    key.Binding
	copyLink     key.Binding
	wayback      key.Binding
	search       key.Binding
	searchTags   key.Binding
	clearFilters key.Binding
	redownload   key.Binding

	showAll      key.Binding
	showUnsorted key.Binding
	showUntagged key.Binding
	showBroken   key.Binding
	showTrash    key.Binding

	quit key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	esc:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
	backtab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous pane")),

	help:     key.NewBinding(key.WithKeys("f1", "?"), key.WithHelp("f1", "help")),
	visitApp: key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "raindrop.io")),
	details:  key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "details")),
	tagOrder: key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "tag order")),
	compact:  key.NewBinding(key.WithKeys("f5"), key.WithHelp("f5", "compact")),
	logout:   key.NewBinding(key.WithKeys("f12"), key.WithHelp("f12", "logout")),

	add:          key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	edit:         key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	delete:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	visitLink:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "visit link")),
	copyLink:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy link")),
	wayback:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wayback check")),
	search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	searchTags:   key.NewBinding(key.WithKeys("t", "#"), key.WithHelp("t/#", "tags")),
	clearFilters: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "clear filters")),
	redownload:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "redownload")),

	showAll:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
	showUnsorted: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "unsorted")),
	showUntagged: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "untagged")),
	showBroken:   key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "broken")),
	showTrash:    key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "trash")),

	quit: key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
}

// ShortHelp returns the footer bindings, function keys first.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.help, k.visitApp, k.details, k.tagOrder, k.compact, k.logout, k.quit,
	}
}

// FullHelp returns bindings grouped by columns for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.esc, k.tab, k.backtab},
		{k.add, k.edit, k.delete, k.visitLink, k.copyLink, k.wayback},
		{k.search, k.searchTags, k.clearFilters, k.redownload, k.showAll, k.showUnsorted},
		{k.showUntagged, k.showBroken, k.showTrash, k.details, k.tagOrder, k.compact},
		{k.help, k.visitApp, k.logout, k.quit},
	}
}

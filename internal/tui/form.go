package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"braindrop/models"
)

type formField int

const (
	fieldTitle formField = iota
	fieldURL
	fieldCollection
	fieldTags
	fieldExcerpt
	fieldNote

	formFieldCount
)

// raindropForm is the add/edit modal. It edits a draft raindrop; the
// main model turns a submitted draft into an Add or Update call and
// keeps the draft around when a save is cancelled or fails.
type raindropForm struct {
	original models.Raindrop
	editing  bool

	title   textinput.Model
	url     textinput.Model
	tags    textinput.Model
	excerpt textarea.Model
	note    textarea.Model

	// Collection picker: unsorted first, the sidebar collections in
	// order, trash last.
	collections   []models.Collection
	collectionIdx int

	focus formField

	suggested     []models.Tag
	lastSuggested string

	saving bool
	errMsg string

	readClipboard func() (string, error)
}

// newRaindropForm builds the form for adding (zero raindrop) or editing.
// For a brand-new raindrop with no link yet, the clipboard is peeked at
// and its first line pasted in silently when it looks like an http(s)
// URL.
func newRaindropForm(raindrop models.Raindrop, collections []models.Collection) *raindropForm {
	f := &raindropForm{
		original:      raindrop,
		editing:       !raindrop.IsBrandNew(),
		collections:   collections,
		readClipboard: clipboard.ReadAll,
	}

	f.title = textinput.New()
	f.title.Placeholder = "title"
	f.title.Width = 60
	f.title.SetValue(raindrop.Title)
	f.title.Focus()

	f.url = textinput.New()
	f.url.Placeholder = "https://…"
	f.url.Width = 60
	f.url.SetValue(raindrop.Link)

	f.tags = textinput.New()
	f.tags.Placeholder = "tags (" + models.TagSeparatorTitle + "-separated)"
	f.tags.Width = 60
	f.tags.SetValue(models.TagsToString(raindrop.Tags))

	f.excerpt = textarea.New()
	f.excerpt.Placeholder = "excerpt"
	f.excerpt.SetWidth(60)
	f.excerpt.SetHeight(3)
	f.excerpt.SetValue(raindrop.Excerpt)

	f.note = textarea.New()
	f.note.Placeholder = "note"
	f.note.SetWidth(60)
	f.note.SetHeight(3)
	f.note.SetValue(raindrop.Note)

	f.collectionIdx = f.indexOfCollection(raindrop.Collection)
	return f
}

// suggestClipboardURL fills an empty URL field from the clipboard when
// its first line looks like a link. Anything else on the clipboard is
// ignored without a notification.
func (f *raindropForm) suggestClipboardURL() {
	if f.url.Value() != "" || f.readClipboard == nil {
		return
	}

	text, err := f.readClipboard()
	if err != nil {
		return
	}
	if line := firstLine(text); looksLikeURL(line) {
		f.url.SetValue(line)
	}
}

func (f *raindropForm) indexOfCollection(id int64) int {
	for i, collection := range f.collections {
		if collection.ID == id {
			return i
		}
	}
	return 0
}

// draft assembles the raindrop the form currently describes.
func (f *raindropForm) draft() models.Raindrop {
	raindrop := f.original
	raindrop.Title = strings.TrimSpace(f.title.Value())
	raindrop.Link = strings.TrimSpace(f.url.Value())
	raindrop.Excerpt = strings.TrimSpace(f.excerpt.Value())
	raindrop.Note = strings.TrimSpace(f.note.Value())
	raindrop.Tags = models.StringToTags(f.tags.Value())
	if len(f.collections) > 0 {
		raindrop.Collection = f.collections[f.collectionIdx].ID
	}
	return raindrop
}

// validate reports the first problem with the draft, empty when it is
// good to save.
func (f *raindropForm) validate() string {
	if strings.TrimSpace(f.title.Value()) == "" {
		return "a title is required"
	}
	if strings.TrimSpace(f.url.Value()) == "" {
		return "a URL is required"
	}
	return ""
}

// wantsSuggestions reports whether leaving the URL field should ask the
// server for tag suggestions, and remembers the link it asked about.
func (f *raindropForm) wantsSuggestions() (string, bool) {
	link := strings.TrimSpace(f.url.Value())
	if !looksLikeURL(link) || link == f.lastSuggested {
		return "", false
	}
	f.lastSuggested = link
	return link, true
}

func (f *raindropForm) setFocus(field formField) {
	f.focus = field

	f.title.Blur()
	f.url.Blur()
	f.tags.Blur()
	f.excerpt.Blur()
	f.note.Blur()

	switch field {
	case fieldTitle:
		f.title.Focus()
	case fieldURL:
		f.url.Focus()
	case fieldTags:
		f.tags.Focus()
	case fieldExcerpt:
		f.excerpt.Focus()
	case fieldNote:
		f.note.Focus()
	}
}

func (f *raindropForm) nextField(step int) formField {
	return formField((int(f.focus) + step + int(formFieldCount)) % int(formFieldCount))
}

// cycleCollection moves the collection picker.
func (f *raindropForm) cycleCollection(step int) {
	if len(f.collections) == 0 {
		return
	}
	f.collectionIdx = (f.collectionIdx + step + len(f.collections)) % len(f.collections)
}

// updateFocused forwards msg to whichever input has focus.
func (f *raindropForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldURL:
		f.url, cmd = f.url.Update(msg)
	case fieldTags:
		f.tags, cmd = f.tags.Update(msg)
	case fieldExcerpt:
		f.excerpt, cmd = f.excerpt.Update(msg)
	case fieldNote:
		f.note, cmd = f.note.Update(msg)
	}
	return cmd
}

func (f *raindropForm) View() string {
	var b strings.Builder

	heading := "Add raindrop"
	if f.editing {
		heading = "Edit raindrop"
	}
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n\n")

	b.WriteString(formLabel("Title", f.focus == fieldTitle))
	b.WriteString(f.title.View())
	b.WriteString("\n")
	b.WriteString(formLabel("URL", f.focus == fieldURL))
	b.WriteString(f.url.View())
	b.WriteString("\n")

	b.WriteString(formLabel("Collection", f.focus == fieldCollection))
	b.WriteString(f.collectionView())
	b.WriteString("\n")

	b.WriteString(formLabel("Tags", f.focus == fieldTags))
	b.WriteString(f.tags.View())
	b.WriteString("\n")
	if len(f.suggested) > 0 {
		b.WriteString(faintStyle.Render("  suggested: "))
		b.WriteString(tagStyle.Render(models.TagsToString(f.suggested)))
		b.WriteString("\n")
	}

	b.WriteString(formLabel("Excerpt", f.focus == fieldExcerpt))
	b.WriteString(f.excerpt.View())
	b.WriteString("\n")
	b.WriteString(formLabel("Note", f.focus == fieldNote))
	b.WriteString(f.note.View())
	b.WriteString("\n\n")

	if f.errMsg != "" {
		b.WriteString(errorStyle.Render(f.errMsg))
		b.WriteString("\n")
	}
	if f.saving {
		b.WriteString(statusStyle.Render("saving…"))
		b.WriteString("\n")
	}

	hint := "tab next field · ctrl+s save · esc cancel"
	if f.focus == fieldCollection {
		hint = "←/→ choose collection · " + hint
	}
	b.WriteString(helpStyle.Render(hint))

	return overlayBoxStyle.Render(b.String())
}

func (f *raindropForm) collectionView() string {
	if len(f.collections) == 0 {
		return faintStyle.Render("‹ Unsorted ›")
	}
	return "‹ " + f.collections[f.collectionIdx].Title + " ›"
}

func formLabel(name string, focused bool) string {
	label := name + ":"
	if focused {
		return selectedStyle.Render(label) + "\n"
	}
	return faintStyle.Render(label) + "\n"
}

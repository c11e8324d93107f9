package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"go.uber.org/zap"

	"github.com/pluqqy/testimonials/pkg/collection"
	"github.com/pluqqy/testimonials/pkg/i18n"
	"github.com/pluqqy/testimonials/pkg/models"
)

// editor focus order
const (
	editAuthor = iota
	editTitle
	editSubtitle
	editQuote
	editRating
	editImage
	editDone
	editFieldCount
)

// Intents emitted by the record editor. The app owns the store
// transitions they trigger.
type (
	closeEditorMsg struct{}
	openPickerMsg  struct{ index int }
)

// RecordEditorModel is the overlay that edits exactly one record. Every
// change is pushed to the store as it happens.
type RecordEditorModel struct {
	store  *collection.Store
	tr     i18n.Translator
	logger *zap.Logger
	index  int
	focus  int
	keys   editorKeyMap
	width  int

	inputs map[models.Field]*textinput.Model
	quote  textarea.Model
}

// NewRecordEditorModel seeds the controls from the record at index. The
// controls have no length limit so a seeded value is never cut.
func NewRecordEditorModel(store *collection.Store, index int, tr i18n.Translator, logger *zap.Logger) *RecordEditorModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &RecordEditorModel{
		store:  store,
		tr:     tr,
		logger: logger,
		index:  index,
		keys:   defaultEditorKeyMap(),
		width:  60,
		inputs: map[models.Field]*textinput.Model{},
	}

	record := m.record()
	for _, f := range []models.Field{models.FieldAuthor, models.FieldTitle, models.FieldSubtitle} {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 0
		in.Width = m.width - 8
		in.SetValue(record.Get(f))
		m.inputs[f] = &in
	}

	m.quote = textarea.New()
	m.quote.ShowLineNumbers = false
	m.quote.CharLimit = 0
	m.quote.MaxHeight = 0
	m.quote.SetWidth(m.width - 8)
	m.quote.SetHeight(4)
	m.quote.SetValue(record.Quote)

	m.updateFocus()
	return m
}

// Index returns the record being edited
func (m *RecordEditorModel) Index() int {
	return m.index
}

// SetWidth resizes the overlay
func (m *RecordEditorModel) SetWidth(width int) {
	m.width = max(40, min(width-4, 80))
	for _, in := range m.inputs {
		in.Width = m.width - 8
	}
	m.quote.SetWidth(m.width - 8)
}

func (m *RecordEditorModel) fieldAt(focus int) (models.Field, bool) {
	switch focus {
	case editAuthor:
		return models.FieldAuthor, true
	case editTitle:
		return models.FieldTitle, true
	case editSubtitle:
		return models.FieldSubtitle, true
	}
	return "", false
}

func (m *RecordEditorModel) updateFocus() {
	for _, in := range m.inputs {
		in.Blur()
	}
	m.quote.Blur()

	if f, ok := m.fieldAt(m.focus); ok {
		m.inputs[f].Focus()
	} else if m.focus == editQuote {
		m.quote.Focus()
	}
}

func (m *RecordEditorModel) record() models.Testimonial {
	snap := m.store.Snapshot()
	if !snap.Attributes.Testimonials.Valid(m.index) {
		return models.Testimonial{}
	}
	return snap.Attributes.Testimonials[m.index]
}

func (m *RecordEditorModel) Update(msg tea.Msg) (*RecordEditorModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Close):
		return m, func() tea.Msg { return closeEditorMsg{} }

	case keyMsg.String() == "tab" || keyMsg.String() == "shift+tab":
		m.moveFocus(keyMsg.String() == "tab")
		return m, nil

	// Arrow keys move between single-line controls but belong to the
	// quote textarea while it has focus.
	case m.focus != editQuote && key.Matches(keyMsg, m.keys.Next):
		m.moveFocus(true)
		return m, nil

	case m.focus != editQuote && key.Matches(keyMsg, m.keys.Prev):
		m.moveFocus(false)
		return m, nil
	}

	switch m.focus {
	case editAuthor, editTitle, editSubtitle:
		field, _ := m.fieldAt(m.focus)
		if key.Matches(keyMsg, m.keys.Select) {
			m.moveFocus(true)
			return m, nil
		}
		in := m.inputs[field]
		updated, cmd := in.Update(keyMsg)
		*in = updated
		m.push(field, in.Value())
		return m, cmd

	case editQuote:
		var cmd tea.Cmd
		m.quote, cmd = m.quote.Update(keyMsg)
		m.push(models.FieldQuote, m.quote.Value())
		return m, cmd

	case editRating:
		rating := m.record().Rating
		switch {
		case key.Matches(keyMsg, m.keys.Lower):
			rating--
		case key.Matches(keyMsg, m.keys.Raise):
			rating++
		case len(keyMsg.Runes) == 1 && keyMsg.Runes[0] >= '1' && keyMsg.Runes[0] <= '5':
			rating = int(keyMsg.Runes[0] - '0')
		default:
			return m, nil
		}
		m.report(string(models.FieldRating), m.store.SetRating(m.index, rating))
		return m, nil

	case editImage:
		if key.Matches(keyMsg, m.keys.Select) {
			index := m.index
			return m, func() tea.Msg { return openPickerMsg{index: index} }
		}

	case editDone:
		if key.Matches(keyMsg, m.keys.Select) {
			return m, func() tea.Msg { return closeEditorMsg{} }
		}
	}
	return m, nil
}

func (m *RecordEditorModel) moveFocus(forward bool) {
	if forward {
		m.focus = (m.focus + 1) % editFieldCount
	} else {
		m.focus = (m.focus - 1 + editFieldCount) % editFieldCount
	}
	m.updateFocus()
}

func (m *RecordEditorModel) push(field models.Field, value string) {
	if m.record().Get(field) == value {
		return
	}
	m.report(string(field), m.store.UpdateField(m.index, field, value))
}

// report logs a failed store write. A stale index only means the record
// is gone and is not worth a warning.
func (m *RecordEditorModel) report(field string, err error) {
	if err == nil || errors.Is(err, collection.ErrIndexOutOfRange) {
		return
	}
	m.logger.Warn("failed to update testimonial",
		zap.Int("index", m.index),
		zap.String("field", field),
		zap.Error(err))
}

func (m *RecordEditorModel) label(focus int, text string) string {
	return GetActiveHeaderStyle(m.focus == focus).Render(m.tr.T(text))
}

func (m *RecordEditorModel) View() string {
	record := m.record()
	var b strings.Builder

	b.WriteString(GetActiveHeaderStyle(true).Render(i18n.Tf(m.tr, "Edit Testimonial %d", m.index+1)))
	b.WriteString("\n\n")

	for _, row := range []struct {
		focus int
		label string
		field models.Field
	}{
		{editAuthor, "Author", models.FieldAuthor},
		{editTitle, "Title", models.FieldTitle},
		{editSubtitle, "Sub Title", models.FieldSubtitle},
	} {
		b.WriteString(m.label(row.focus, row.label) + "\n")
		b.WriteString(m.inputs[row.field].View() + "\n\n")
	}

	b.WriteString(m.label(editQuote, "Quote") + "\n")
	b.WriteString(m.quote.View() + "\n\n")

	b.WriteString(m.label(editRating, "Rating") + "\n")
	b.WriteString(ratingControl(record.Rating, m.focus == editRating) + "\n\n")

	imageLabel := "Set Image"
	if record.HasImage() {
		imageLabel = "Replace Image"
	}
	b.WriteString(lipgloss.NewStyle().Width(m.width - 6).Align(lipgloss.Center).
		Render(secondaryButton(m.tr.T(imageLabel), m.focus == editImage)))
	b.WriteString("\n")
	if record.HasImage() {
		thumb := fmt.Sprintf("🖼 %s", truncate.StringWithTail(record.Image, uint(m.width-12), "…"))
		b.WriteString(DescriptionStyle.Render(thumb) + "\n")
	}
	b.WriteString("\n")

	done := buttonStyle(m.focus == editDone).Width(m.width - 6).Align(lipgloss.Center).Render(m.tr.T("Done"))
	b.WriteString(done)

	return ModalStyle.Width(m.width).Render(b.String())
}

// ratingControl draws the 1-5 range control
func ratingControl(rating int, focused bool) string {
	rating = models.ClampRating(rating)
	filled := StarStyle.Render(strings.Repeat("★", rating))
	empty := DescriptionStyle.Render(strings.Repeat("☆", models.MaxRating-rating))
	value := fmt.Sprintf(" %d/%d", rating, models.MaxRating)
	if focused {
		return "◀ " + filled + empty + " ▶" + value
	}
	return "  " + filled + empty + "  " + value
}

func secondaryButton(text string, focused bool) string {
	style := SecondaryButtonStyle
	if focused {
		style = style.BorderForeground(lipgloss.Color(ColorActive)).Bold(true)
	}
	return style.Render(text)
}

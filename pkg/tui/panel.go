package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/pluqqy/testimonials/pkg/collection"
	"github.com/pluqqy/testimonials/pkg/i18n"
	"github.com/pluqqy/testimonials/pkg/models"
	"github.com/pluqqy/testimonials/pkg/render"
)

type panelFocus int

const (
	focusHeading panelFocus = iota
	focusList
	focusAdd
	focusStyle
	panelFocusCount
)

// EditorPanelModel is the settings panel: heading field, testimonial
// rows, add button and design selector
type EditorPanelModel struct {
	store   *collection.Store
	tr      i18n.Translator
	keys    panelKeyMap
	focus   panelFocus
	cursor  int
	heading textinput.Model
	width   int
}

// NewEditorPanelModel creates the panel with the list focused
func NewEditorPanelModel(store *collection.Store, tr i18n.Translator) *EditorPanelModel {
	heading := textinput.New()
	heading.Prompt = ""
	heading.CharLimit = 0
	heading.Placeholder = render.HeadingOrDefault("", tr)
	heading.SetValue(store.Snapshot().Attributes.HeadingBlock)

	return &EditorPanelModel{
		store:   store,
		tr:      tr,
		keys:    defaultPanelKeyMap(),
		focus:   focusList,
		heading: heading,
		width:   40,
	}
}

// SetWidth resizes the panel
func (m *EditorPanelModel) SetWidth(width int) {
	m.width = max(24, width)
	m.heading.Width = m.width - 6
}

// Focus returns the focused section
func (m *EditorPanelModel) Focus() panelFocus {
	return m.focus
}

// Cursor returns the selected row
func (m *EditorPanelModel) Cursor() int {
	return m.cursor
}

// CapturesText reports whether key presses are text input
func (m *EditorPanelModel) CapturesText() bool {
	return m.focus == focusHeading
}

func (m *EditorPanelModel) setFocus(f panelFocus) {
	m.focus = (f + panelFocusCount) % panelFocusCount
	if m.focus == focusHeading {
		m.heading.Focus()
	} else {
		m.heading.Blur()
	}
}

func (m *EditorPanelModel) clampCursor() {
	n := m.store.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *EditorPanelModel) Update(msg tea.KeyMsg) (*EditorPanelModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextFocus):
		m.setFocus(m.focus + 1)
		return m, nil
	case key.Matches(msg, m.keys.PrevFocus):
		m.setFocus(m.focus - 1)
		return m, nil
	}

	if m.focus == focusHeading {
		if msg.String() == "esc" || msg.String() == "enter" {
			m.setFocus(focusList)
			return m, nil
		}
		var cmd tea.Cmd
		m.heading, cmd = m.heading.Update(msg)
		if m.heading.Value() != m.store.Snapshot().Attributes.HeadingBlock {
			m.store.SetHeading(m.heading.Value())
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Add):
		m.cursor = m.store.AddTestimonial()
		return m, nil

	case key.Matches(msg, m.keys.Style):
		m.cycleStyle()
		return m, nil
	}

	switch m.focus {
	case focusList:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.store.Len()-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Edit):
			_ = m.store.OpenEditingSession(m.cursor)
		case key.Matches(msg, m.keys.Delete):
			_ = m.store.RemoveTestimonial(m.cursor)
			m.clampCursor()
		}

	case focusAdd:
		if msg.String() == "enter" || msg.String() == " " {
			m.cursor = m.store.AddTestimonial()
		}

	case focusStyle:
		switch msg.String() {
		case "enter", " ", "left", "right", "h", "l":
			m.cycleStyle()
		}
	}
	return m, nil
}

func (m *EditorPanelModel) cycleStyle() {
	m.store.SetStyle(m.store.Snapshot().Attributes.Style.Next())
}

// SyncHeading reloads the heading field from the store
func (m *EditorPanelModel) SyncHeading() {
	if m.focus != focusHeading {
		m.heading.SetValue(m.store.Snapshot().Attributes.HeadingBlock)
	}
}

func (m *EditorPanelModel) View() string {
	snap := m.store.Snapshot()
	rowWidth := m.width - 4
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(m.tr.T("Settings")))
	b.WriteString("\n\n")

	b.WriteString(GetActiveHeaderStyle(m.focus == focusHeading).Render(m.tr.T("Title")) + "\n")
	b.WriteString(m.heading.View() + "\n")
	b.WriteString(DescriptionStyle.Render(strings.Repeat("─", rowWidth)) + "\n")

	b.WriteString(GetActiveHeaderStyle(m.focus == focusList).Render(m.tr.T("Testimonials")) + "\n")
	if len(snap.Attributes.Testimonials) == 0 {
		b.WriteString(EmptyInactiveStyle.Render(m.tr.T("No testimonials yet")) + "\n")
	}
	for i, t := range snap.Attributes.Testimonials {
		b.WriteString(m.row(i, t, rowWidth) + "\n")
	}
	b.WriteString("\n")

	add := buttonStyle(m.focus == focusAdd).Width(rowWidth).Align(lipgloss.Center).Render(m.tr.T("Add Testimonial"))
	b.WriteString(add + "\n")
	b.WriteString(DescriptionStyle.Render(strings.Repeat("─", rowWidth)) + "\n")

	b.WriteString(GetActiveHeaderStyle(m.focus == focusStyle).Render(m.tr.T("Design")) + "\n")
	b.WriteString(m.styleSelector(snap.Attributes.Style))

	return b.String()
}

// row renders one compact testimonial row: the author clamped to a single
// line followed by the edit and delete actions
func (m *EditorPanelModel) row(i int, t models.Testimonial, width int) string {
	actions := " ✎ ―"
	labelWidth := max(4, width-lipgloss.Width(actions)-2)

	label := strings.ReplaceAll(t.Author, "\n", " ")
	if label == "" {
		label = fmt.Sprintf("#%d", i+1)
	}
	label = truncate.StringWithTail(label, uint(labelWidth), "…")
	line := lipgloss.NewStyle().Width(labelWidth).Render(label) + actions

	if m.focus == focusList && i == m.cursor {
		return SelectedStyle.Render("▸ " + line)
	}
	return NormalStyle.Render("  " + line)
}

func (m *EditorPanelModel) styleSelector(current models.Style) string {
	var parts []string
	for _, s := range models.Styles {
		label := m.tr.T(s.Label())
		if s == current {
			parts = append(parts, SelectedStyle.Render("● "+label))
		} else {
			parts = append(parts, NormalStyle.Render("○ "+label))
		}
	}
	return strings.Join(parts, "  ")
}

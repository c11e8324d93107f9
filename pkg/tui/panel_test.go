package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/testimonials/pkg/collection"
	"github.com/pluqqy/testimonials/pkg/i18n"
	"github.com/pluqqy/testimonials/pkg/models"
	th "github.com/pluqqy/testimonials/pkg/tui/testhelpers"
)

func newTestPanel(attrs models.Attributes) (*EditorPanelModel, *collection.Store) {
	store := collection.NewStore(collection.NewMemoryHost(attrs))
	return NewEditorPanelModel(store, i18n.Identity{}), store
}

func TestEditorPanelFocusCycle(t *testing.T) {
	panel, _ := newTestPanel(models.Attributes{})

	th.AssertEqual(t, focusList, panel.Focus())

	want := []panelFocus{focusAdd, focusStyle, focusHeading, focusList}
	for _, f := range want {
		panel.Update(th.Key(tea.KeyTab))
		th.AssertEqual(t, f, panel.Focus())
	}

	panel.Update(th.Key(tea.KeyShiftTab))
	th.AssertEqual(t, focusHeading, panel.Focus())
	th.AssertTrue(t, panel.CapturesText(), "heading captures text")
}

func TestEditorPanelHeading(t *testing.T) {
	panel, store := newTestPanel(models.Attributes{})

	panel.Update(th.Key(tea.KeyShiftTab))
	th.Type(func(msg tea.Msg) tea.Cmd {
		_, cmd := panel.Update(msg.(tea.KeyMsg))
		return cmd
	}, "Kind words")
	th.AssertEqual(t, "Kind words", store.Snapshot().Attributes.HeadingBlock)

	// shortcut letters are text while the heading has focus
	th.AssertEqual(t, 0, store.Len())

	panel.Update(th.Key(tea.KeyEsc))
	th.AssertEqual(t, focusList, panel.Focus())
}

func TestEditorPanelHeadingPlaceholder(t *testing.T) {
	panel, _ := newTestPanel(models.Attributes{})
	th.AssertViewContains(t, panel.View(), "What They Say")
}

func TestEditorPanelListActions(t *testing.T) {
	tests := []struct {
		name       string
		keys       []tea.KeyMsg
		wantAuthor []string
		wantCursor int
		wantOpen   int
	}{
		{
			name:       "enter edits selected row",
			keys:       []tea.KeyMsg{th.Key(tea.KeyDown), th.Key(tea.KeyEnter)},
			wantAuthor: []string{"A", "B", "C"},
			wantCursor: 1,
			wantOpen:   1,
		},
		{
			name:       "delete removes selected row",
			keys:       []tea.KeyMsg{th.Key(tea.KeyDown), th.Runes("d")},
			wantAuthor: []string{"A", "C"},
			wantCursor: 1,
			wantOpen:   -1,
		},
		{
			name:       "delete last row clamps cursor",
			keys:       []tea.KeyMsg{th.Key(tea.KeyDown), th.Key(tea.KeyDown), th.Runes("d")},
			wantAuthor: []string{"A", "B"},
			wantCursor: 1,
			wantOpen:   -1,
		},
		{
			name:       "cursor stops at bounds",
			keys:       []tea.KeyMsg{th.Key(tea.KeyUp), th.Key(tea.KeyDown), th.Key(tea.KeyDown), th.Key(tea.KeyDown)},
			wantAuthor: []string{"A", "B", "C"},
			wantCursor: 2,
			wantOpen:   -1,
		},
		{
			name:       "add appends and opens",
			keys:       []tea.KeyMsg{th.Runes("a")},
			wantAuthor: []string{"A", "B", "C", ""},
			wantCursor: 3,
			wantOpen:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel, store := newTestPanel(models.Attributes{Testimonials: th.MakeTestimonials("A", "B", "C")})

			for _, k := range tt.keys {
				panel.Update(k)
			}

			th.AssertAuthors(t, store.Snapshot().Attributes.Testimonials, tt.wantAuthor...)
			th.AssertEqual(t, tt.wantCursor, panel.Cursor())

			idx, open := store.OpenIndex()
			if tt.wantOpen < 0 {
				th.AssertFalse(t, open, "no session expected")
			} else {
				th.AssertTrue(t, open, "session expected")
				th.AssertEqual(t, tt.wantOpen, idx)
			}
		})
	}
}

func TestEditorPanelStyle(t *testing.T) {
	panel, store := newTestPanel(models.Attributes{})

	panel.Update(th.Runes("s"))
	th.AssertEqual(t, models.StylePlain, store.Snapshot().Attributes.Style)

	panel.Update(th.Key(tea.KeyTab))
	panel.Update(th.Key(tea.KeyTab))
	th.AssertEqual(t, focusStyle, panel.Focus())
	panel.Update(th.Key(tea.KeyRight))
	th.AssertEqual(t, models.StyleDefault, store.Snapshot().Attributes.Style)

	view := panel.View()
	th.AssertViewContains(t, view, "● Default")
	th.AssertViewContains(t, view, "○ Plain")
}

func TestEditorPanelRowTruncation(t *testing.T) {
	long := strings.Repeat("Very Long Author Name ", 10)
	panel, _ := newTestPanel(models.Attributes{Testimonials: models.Collection{
		th.NewTestimonialBuilder(long).Build(),
		{Quote: "no author"},
	}})
	panel.SetWidth(40)

	view := panel.View()
	th.AssertViewContains(t, view, "…")
	th.AssertViewNotContains(t, view, long)
	th.AssertViewContains(t, view, "#2")
}

func TestEditorPanelEmpty(t *testing.T) {
	panel, _ := newTestPanel(models.Attributes{})
	th.AssertViewContains(t, panel.View(), "No testimonials yet")
}

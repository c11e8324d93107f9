package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pluqqy/testimonials/pkg/collection"
	"github.com/pluqqy/testimonials/pkg/i18n"
	"github.com/pluqqy/testimonials/pkg/models"
	th "github.com/pluqqy/testimonials/pkg/tui/testhelpers"
)

func newTestEditor(t *testing.T, records models.Collection, index int) (*RecordEditorModel, *collection.Store) {
	t.Helper()
	store := collection.NewStore(collection.NewMemoryHost(models.Attributes{Testimonials: records}))
	if err := store.OpenEditingSession(index); err != nil {
		t.Fatal(err)
	}
	return NewRecordEditorModel(store, index, i18n.Identity{}, nil), store
}

func focusEditor(m *RecordEditorModel, focus int) {
	for m.focus != focus {
		m.Update(th.Key(tea.KeyTab))
	}
}

func TestRecordEditorSeedsFromRecord(t *testing.T) {
	record := th.NewTestimonialBuilder("Grace").WithTitle("Admiral").WithSubtitle("Navy").Build()
	m, _ := newTestEditor(t, models.Collection{th.NewTestimonialBuilder("Ada").Build(), record}, 1)

	th.AssertEqual(t, "Grace", m.inputs[models.FieldAuthor].Value())
	th.AssertEqual(t, "Admiral", m.inputs[models.FieldTitle].Value())
	th.AssertEqual(t, "Navy", m.inputs[models.FieldSubtitle].Value())
	th.AssertEqual(t, record.Quote, m.quote.Value())

	view := m.View()
	th.AssertViewContains(t, view, "Edit Testimonial 2")
	th.AssertViewContains(t, view, "Sub Title")
}

func TestRecordEditorPushesEdits(t *testing.T) {
	m, store := newTestEditor(t, models.Collection{models.NewTestimonial()}, 0)
	update := func(msg tea.Msg) tea.Cmd {
		_, cmd := m.Update(msg)
		return cmd
	}

	th.Type(update, "Ada")
	focusEditor(m, editSubtitle)
	th.Type(update, "Engines")
	focusEditor(m, editQuote)
	th.Type(update, "Superb")

	got := store.Snapshot().Attributes.Testimonials[0]
	th.AssertEqual(t, "Ada", got.Author)
	th.AssertEqual(t, "", got.Title)
	th.AssertEqual(t, "Engines", got.Subtitle)
	th.AssertEqual(t, "Superb", got.Quote)
}

func TestRecordEditorRating(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{"raise is clamped at max", []tea.KeyMsg{th.Key(tea.KeyRight)}, 5},
		{"lower", []tea.KeyMsg{th.Key(tea.KeyLeft), th.Key(tea.KeyLeft)}, 3},
		{"lower is clamped at min", []tea.KeyMsg{th.Runes("1"), th.Runes("-")}, 1},
		{"digit sets value", []tea.KeyMsg{th.Runes("2")}, 2},
		{"other digits ignored", []tea.KeyMsg{th.Runes("9")}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, store := newTestEditor(t, models.Collection{models.NewTestimonial()}, 0)
			focusEditor(m, editRating)

			for _, k := range tt.keys {
				m.Update(k)
			}
			th.AssertEqual(t, tt.want, store.Snapshot().Attributes.Testimonials[0].Rating)
		})
	}
}

func TestRecordEditorImageButton(t *testing.T) {
	t.Run("set image requests picker for own index", func(t *testing.T) {
		m, _ := newTestEditor(t, th.MakeTestimonials("A", "B"), 1)
		focusEditor(m, editImage)
		th.AssertViewContains(t, m.View(), "Set Image")

		_, cmd := m.Update(th.Key(tea.KeyEnter))
		if cmd == nil {
			t.Fatal("expected picker request")
		}
		msg, ok := cmd().(openPickerMsg)
		if !ok {
			t.Fatalf("expected openPickerMsg, got %T", cmd())
		}
		th.AssertEqual(t, 1, msg.index)
	})

	t.Run("record with image offers replace", func(t *testing.T) {
		rec := th.NewTestimonialBuilder("A").WithImage("img/a.png").Build()
		m, _ := newTestEditor(t, models.Collection{rec}, 0)

		view := m.View()
		th.AssertViewContains(t, view, "Replace Image")
		th.AssertViewContains(t, view, "img/a.png")
	})
}

func TestRecordEditorClose(t *testing.T) {
	tests := []struct {
		name  string
		focus int
		key   tea.KeyMsg
	}{
		{"esc from a field", editAuthor, th.Key(tea.KeyEsc)},
		{"esc from quote", editQuote, th.Key(tea.KeyEsc)},
		{"done button", editDone, th.Key(tea.KeyEnter)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestEditor(t, th.MakeTestimonials("A"), 0)
			focusEditor(m, tt.focus)

			_, cmd := m.Update(tt.key)
			if cmd == nil {
				t.Fatal("expected close request")
			}
			if _, ok := cmd().(closeEditorMsg); !ok {
				t.Errorf("expected closeEditorMsg, got %T", cmd())
			}
		})
	}
}

func TestRecordEditorQuoteKeepsArrows(t *testing.T) {
	m, _ := newTestEditor(t, th.MakeTestimonials("A"), 0)
	focusEditor(m, editQuote)

	m.Update(th.Key(tea.KeyDown))
	th.AssertEqual(t, editQuote, m.focus)

	m.Update(th.Key(tea.KeyTab))
	th.AssertEqual(t, editRating, m.focus)
}

func TestRecordEditorKeepsLongValues(t *testing.T) {
	author := strings.Repeat("a", 250)
	quote := strings.Repeat("Lovely work.\n", 150) + "End"
	record := th.NewTestimonialBuilder(author).WithQuote(quote).Build()
	m, store := newTestEditor(t, models.Collection{record}, 0)

	th.AssertEqual(t, author, m.inputs[models.FieldAuthor].Value())
	th.AssertEqual(t, quote, m.quote.Value())

	m.Update(th.Key(tea.KeyEnd))
	m.Update(th.Runes("y"))

	got := store.Snapshot().Attributes.Testimonials[0]
	th.AssertEqual(t, author+"y", got.Author)
	th.AssertEqual(t, quote, got.Quote)
}

func TestRecordEditorLogsFailedWrites(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	store := collection.NewStore(collection.NewMemoryHost(models.Attributes{
		Testimonials: models.Collection{th.NewTestimonialBuilder("Ada").Build()},
	}))
	th.AssertNoError(t, store.OpenEditingSession(0))
	m := NewRecordEditorModel(store, 0, i18n.Identity{}, zap.New(core))

	m.push(models.Field("colour"), "red")
	th.AssertEqual(t, 1, logs.FilterMessage("failed to update testimonial").Len())

	// a record removed underneath the editor is not worth a warning
	th.AssertNoError(t, store.RemoveTestimonial(0))
	m.Update(th.Runes("x"))
	focusEditor(m, editRating)
	m.Update(th.Key(tea.KeyRight))
	th.AssertEqual(t, 1, logs.Len())
}

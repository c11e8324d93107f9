package tui

import (
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/pluqqy/testimonials/pkg/collection"
	"github.com/pluqqy/testimonials/pkg/i18n"
	"github.com/pluqqy/testimonials/pkg/models"
	"github.com/pluqqy/testimonials/pkg/render"
)

const statusTimeout = 3 * time.Second

// BlockHost is a collection host backed by a saveable block
type BlockHost interface {
	collection.Host
	Save() error
	Dirty() bool
	Name() string
}

// AppOptions configures NewApp
type AppOptions struct {
	Translator i18n.Translator
	Settings   *models.Settings
	Logger     *zap.Logger
	ImageDir   string
	Version    string
}

type App struct {
	host     BlockHost
	store    *collection.Store
	tr       i18n.Translator
	settings *models.Settings
	logger   *zap.Logger
	imageDir string
	version  string

	keys    panelKeyMap
	panel   *EditorPanelModel
	editor  *RecordEditorModel
	picker  *ImagePickerModel
	confirm *ConfirmationModel
	preview viewport.Model
	help    help.Model

	showPreview bool
	width       int
	height      int
	statusMsg   string
	statusSeq   int
}

func NewApp(host BlockHost, opts AppOptions) *App {
	if opts.Translator == nil {
		opts.Translator = i18n.Identity{}
	}
	if opts.Settings == nil {
		opts.Settings = models.DefaultSettings()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ImageDir == "" {
		opts.ImageDir = "."
	}

	store := collection.NewStore(host, collection.WithLogger(opts.Logger))
	a := &App{
		host:        host,
		store:       store,
		tr:          opts.Translator,
		settings:    opts.Settings,
		logger:      opts.Logger,
		imageDir:    opts.ImageDir,
		version:     opts.Version,
		keys:        defaultPanelKeyMap(),
		panel:       NewEditorPanelModel(store, opts.Translator),
		confirm:     NewConfirmation(),
		preview:     viewport.New(40, 20),
		help:        help.New(),
		showPreview: opts.Settings.UI.ShowPreview,
	}
	a.refreshPreview()
	return a
}

// Store exposes the collection store driving the app
func (a *App) Store() *collection.Store {
	return a.store
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case StatusMsg:
		return a, a.setStatus(string(msg))

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return a, nil

	case closeEditorMsg:
		var cmd tea.Cmd
		if a.store.CloseEditingSession() {
			cmd = a.setStatus(a.tr.T("Discarded testimonial without author or quote"))
		}
		a.sync()
		return a, cmd

	case openPickerMsg:
		a.picker = NewImagePickerModel(msg.index, a.imageDir, a.tr)
		return a, a.picker.Init()

	case imageSelectedMsg:
		a.picker = nil
		err := a.store.ApplyImage(msg.index, msg.media)
		if err != nil && !errors.Is(err, collection.ErrIndexOutOfRange) {
			a.logger.Warn("failed to apply image", zap.Int("index", msg.index), zap.Error(err))
		}
		a.sync()
		return a, nil

	case imagePickCanceledMsg:
		a.picker = nil
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	// Directory reads and other async results belong to the picker
	if a.picker != nil {
		var cmd tea.Cmd
		a.picker, cmd = a.picker.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.confirm.Active() {
		return a.confirm.Update(msg)
	}
	if msg.Type == tea.KeyCtrlC {
		return a.requestQuit()
	}

	if a.picker == nil && key.Matches(msg, a.keys.Save) {
		return a.save()
	}

	var cmd tea.Cmd
	switch {
	case a.picker != nil:
		a.picker, cmd = a.picker.Update(msg)
		return cmd

	case a.editor != nil:
		a.editor, cmd = a.editor.Update(msg)
		a.sync()
		return cmd
	}

	if !a.panel.CapturesText() {
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a.requestQuit()
		case key.Matches(msg, a.keys.Copy):
			return a.copyHTML()
		case key.Matches(msg, a.keys.Preview):
			a.showPreview = !a.showPreview
			a.layout()
			return nil
		case msg.String() == "pgup", msg.String() == "pgdown":
			a.preview, cmd = a.preview.Update(msg)
			return cmd
		}
	}

	a.panel, cmd = a.panel.Update(msg)
	a.sync()
	return cmd
}

// sync brings the overlays and preview in line with the store after a
// transition
func (a *App) sync() {
	if index, ok := a.store.OpenIndex(); ok {
		if a.editor == nil || a.editor.Index() != index {
			a.editor = NewRecordEditorModel(a.store, index, a.tr, a.logger)
			a.editor.SetWidth(a.width)
		}
	} else {
		a.editor = nil
	}
	a.panel.SyncHeading()
	a.refreshPreview()
}

func (a *App) refreshPreview() {
	grid := render.Build(a.store.Snapshot().Attributes, a.tr)
	a.preview.SetContent(render.Terminal(grid, render.TerminalOptions{Width: a.preview.Width}))
}

func (a *App) layout() {
	if a.width == 0 {
		return
	}
	bodyHeight := max(5, a.height-headerHeight-3)
	panelWidth := a.width - 2
	if a.showPreview {
		panelWidth = max(30, a.width*2/5)
		a.preview.Width = max(20, a.width-panelWidth-6)
		a.preview.Height = bodyHeight - 2
	}
	a.panel.SetWidth(panelWidth - 2)
	if a.editor != nil {
		a.editor.SetWidth(a.width)
	}
	a.refreshPreview()
}

func (a *App) setStatus(text string) tea.Cmd {
	a.statusMsg = text
	a.statusSeq++
	seq := a.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (a *App) save() tea.Cmd {
	if err := a.host.Save(); err != nil {
		return a.setStatus("✗ " + i18n.Tf(a.tr, "Failed to save %s: %v", a.host.Name(), err))
	}
	return a.setStatus("✓ " + i18n.Tf(a.tr, "Saved %s", a.host.Name()))
}

func (a *App) copyHTML() tea.Cmd {
	html, err := render.HTML(render.Build(a.store.Snapshot().Attributes, a.tr))
	if err != nil {
		return a.setStatus("✗ " + i18n.Tf(a.tr, "Failed to render: %v", err))
	}
	tr := a.tr
	return func() tea.Msg {
		if err := clipboard.WriteAll(html); err != nil {
			return StatusMsg("✗ " + i18n.Tf(tr, "Failed to copy to clipboard: %v", err))
		}
		return StatusMsg("✓ " + tr.T("Copied HTML to clipboard"))
	}
}

func (a *App) requestQuit() tea.Cmd {
	if !a.host.Dirty() {
		return tea.Quit
	}
	a.confirm.Show(ConfirmationConfig{
		Title:       a.tr.T("Unsaved Changes"),
		Message:     i18n.Tf(a.tr, "Quit without saving %s?", a.host.Name()),
		Warning:     a.tr.T("Press ctrl+s to save first"),
		Destructive: true,
		YesLabel:    a.tr.T("Quit"),
		NoLabel:     a.tr.T("Stay"),
	}, func() tea.Cmd {
		return tea.Quit
	}, nil)
	return nil
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	title := a.host.Name()
	if a.host.Dirty() {
		title += " •"
	}
	header := renderHeader(a.width, title, a.version)

	var body string
	switch {
	case a.confirm.Active():
		body = a.overlay(a.confirm.View())
	case a.picker != nil:
		body = a.overlay(a.picker.View())
	case a.editor != nil:
		body = a.overlay(a.editor.View())
	default:
		body = a.mainView()
	}

	helpView := a.help.ShortHelpView(a.keys.ShortHelp())
	if a.editor != nil && a.picker == nil {
		helpView = a.help.ShortHelpView(a.editor.keys.ShortHelp())
	}
	content := lipgloss.JoinVertical(lipgloss.Left, header, body, helpView)

	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)
		content = lipgloss.JoinVertical(lipgloss.Left, content, statusStyle.Render(a.statusMsg))
	}
	return content
}

func (a *App) mainView() string {
	bodyHeight := max(5, a.height-headerHeight-3)
	panelWidth := a.width - 2
	if a.showPreview {
		panelWidth = max(30, a.width*2/5)
	}

	panel := ActiveBorderStyle.
		Width(panelWidth - 2).
		Height(bodyHeight - 2).
		Padding(0, 1).
		Render(a.panel.View())
	if !a.showPreview {
		return panel
	}

	preview := InactiveBorderStyle.
		Width(a.preview.Width + 2).
		Height(bodyHeight - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			HeaderStyle.Render(a.tr.T("Preview")),
			a.preview.View()))
	return lipgloss.JoinHorizontal(lipgloss.Top, panel, " ", preview)
}

func (a *App) overlay(content string) string {
	bodyHeight := max(5, a.height-headerHeight-3)
	return lipgloss.Place(a.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
}

// StatusMsg shows a transient message in the status bar
type StatusMsg string

type clearStatusMsg struct{ seq int }

package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/testimonials/pkg/collection"
	"github.com/pluqqy/testimonials/pkg/i18n"
)

// ImageExtensions are the file types offered by the picker
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg", ".avif"}

// imageSelectedMsg carries a picked image back to the record that was
// open when the picker started
type imageSelectedMsg struct {
	index int
	media collection.Media
}

type imagePickCanceledMsg struct{}

// ImagePickerModel lets the user choose an image file for one record
type ImagePickerModel struct {
	picker filepicker.Model
	index  int
	tr     i18n.Translator
	height int
}

// NewImagePickerModel opens a picker in dir whose result targets index
func NewImagePickerModel(index int, dir string, tr i18n.Translator) *ImagePickerModel {
	fp := filepicker.New()
	fp.AllowedTypes = ImageExtensions
	fp.CurrentDirectory = dir
	fp.ShowPermissions = false
	fp.ShowSize = true
	return &ImagePickerModel{picker: fp, index: index, tr: tr}
}

// Index returns the record index captured when the picker opened
func (m *ImagePickerModel) Index() int {
	return m.index
}

func (m *ImagePickerModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m *ImagePickerModel) Update(msg tea.Msg) (*ImagePickerModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		return m, func() tea.Msg { return imagePickCanceledMsg{} }
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		index := m.index
		media := collection.Media{URL: imageURL(path)}
		return m, func() tea.Msg { return imageSelectedMsg{index: index, media: media} }
	}
	return m, cmd
}

func (m *ImagePickerModel) View() string {
	title := GetActiveHeaderStyle(true).Render(m.tr.T("Set Image"))
	hint := DescriptionStyle.Render(strings.Join(ImageExtensions, " ") + "  ·  esc " + m.tr.T("Cancel"))
	return ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, hint, "", m.picker.View()))
}

// imageURL turns a picked path into a URL usable by the renderers:
// relative to the working directory when possible, with forward slashes.
func imageURL(path string) string {
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, path); err == nil && !strings.HasPrefix(rel, "..") {
			path = rel
		}
	}
	return filepath.ToSlash(path)
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title       string // Optional dialog title
	Message     string
	Warning     string // Optional warning text (shown in orange)
	Destructive bool   // If true, Yes is red, No is green
	YesLabel    string // Default: "Yes"
	NoLabel     string // Default: "No"
	Width       int
}

// ConfirmationModel handles yes/no prompts shown over the panel
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel

	if m.config.YesLabel == "" {
		m.config.YesLabel = "Yes"
	}
	if m.config.NoLabel == "" {
		m.config.NoLabel = "No"
	}
	if m.config.Width == 0 {
		m.config.Width = 50
	}
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
	}
	return nil
}

// View renders the dialog
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWarning))
	warningStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	center := lipgloss.NewStyle().Width(m.config.Width - 6).Align(lipgloss.Center)

	var b strings.Builder
	if m.config.Title != "" {
		b.WriteString(center.Render(titleStyle.Render(m.config.Title)))
		b.WriteString("\n\n")
	}
	b.WriteString(center.Render(m.config.Message))
	b.WriteString("\n")
	if m.config.Warning != "" {
		b.WriteString("\n")
		b.WriteString(center.Render(warningStyle.Render(m.config.Warning)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(center.Render(m.options()))

	return ModalStyle.Width(m.config.Width).Render(b.String())
}

func (m *ConfirmationModel) options() string {
	yesColor, noColor := ColorSuccess, ColorDanger
	if m.config.Destructive {
		yesColor, noColor = ColorDanger, ColorSuccess
	}
	yes := lipgloss.NewStyle().Foreground(lipgloss.Color(yesColor)).Bold(true).Render("[y] " + m.config.YesLabel)
	no := lipgloss.NewStyle().Foreground(lipgloss.Color(noColor)).Bold(true).Render("[n] " + m.config.NoLabel)
	return fmt.Sprintf("%s   %s", yes, no)
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazehunt/internal/config"
	"github.com/vovakirdan/mazehunt/internal/core"
)

// ChaseSelection holds the user's selection from the difficulty menu.
type ChaseSelection struct {
	Preset config.DifficultyPreset
}

// chasePresets lists the selectable presets in menu order.
var chasePresets = []struct {
	Preset config.DifficultyPreset
	Label  string
}{
	{config.DifficultyEasy, "Easy (5 lives, fewer pursuers)"},
	{config.DifficultyNormal, "Normal"},
	{config.DifficultyHard, "Hard (2 lives, relentless hunters)"},
	{config.DifficultyFixed, "Fixed (no progression)"},
}

// ChaseMenuModel lets users choose a difficulty preset before a run.
type ChaseMenuModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection ChaseSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewChaseMenuModel creates a new difficulty selection model.
func NewChaseMenuModel(width, height int) ChaseMenuModel {
	return ChaseMenuModel{
		cursor:    1, // Normal
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m ChaseMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ChaseMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m ChaseMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(chasePresets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = ChaseSelection{Preset: chasePresets[m.cursor].Preset}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the difficulty selection.
func (m ChaseMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("M A Z E   C H A S E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range chasePresets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, p.Label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m ChaseMenuModel) Selected() *ChaseSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m ChaseMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ChaseMenuModel) WantsBack() bool {
	return m.back
}

// RunChaseMenu runs the difficulty selection and returns the selection.
// A nil selection means the user backed out or quit.
func RunChaseMenu(cfg core.RuntimeConfig) (*ChaseSelection, error) {
	model := NewChaseMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(ChaseMenuModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}

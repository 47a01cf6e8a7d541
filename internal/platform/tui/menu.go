package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tiledemo/internal/registry"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	menuFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the effect picker.
// Several effects can be marked; they run in list order.
type MenuModel struct {
	items     []registry.EffectInfo
	marked    map[string]bool
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	quitting  bool
	selected  []string // Set when user confirms
}

// NewMenuModel creates a new menu model sized for a width×height terminal.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		items:     registry.List(),
		marked:    make(map[string]bool),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionToggle:
		if len(m.items) > 0 {
			id := m.items[m.cursor].ID
			m.marked[id] = !m.marked[id]
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			m.selected = m.selection()
			return m, tea.Quit // Exit menu to start the demo
		}
	}

	return m, nil
}

// selection returns the marked effects in list order, or the effect under
// the cursor when nothing is marked.
func (m MenuModel) selection() []string {
	var ids []string
	for _, item := range m.items {
		if m.marked[item.ID] {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) == 0 {
		ids = []string{m.items[m.cursor].ID}
	}
	return ids
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T I L E D E M O"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select effects", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = menuCursorStyle.Render("> ")
		}
		mark := "[ ]"
		if m.marked[item.ID] {
			mark = "[x]"
		}

		line := fmt.Sprintf("%s%s %s", cursor, mark, item.Title)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Space: Mark  |  Enter: Play  |  Q: Quit"
	b.WriteString(centerText(menuFooterStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen effect IDs, or nil if none were chosen.
func (m MenuModel) Selected() []string {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Effects []string
	Width   int
	Height  int
	Quit    bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(width, height int) (MenuResult, error) {
	model := NewMenuModel(width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Width: width, Height: height, Quit: true}, nil
	}

	return MenuResult{
		Effects: m.Selected(),
		Width:   m.width,
		Height:  m.height,
	}, nil
}

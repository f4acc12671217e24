package term

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// frameMsg carries one matrix frame into the model.
type frameMsg [core.FrameSize]byte

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	litStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	offStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// model renders the latest frame and forwards key presses to the platform.
type model struct {
	plat *Platform
	keys keyMap
	rows [core.FrameSize]byte
}

func newModel(p *Platform) model {
	return model{
		plat: p,
		keys: newKeyMap(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.rows = msg
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.plat.pushDirection(core.DirUp)
		case key.Matches(msg, m.keys.Down):
			m.plat.pushDirection(core.DirDown)
		case key.Matches(msg, m.keys.Left):
			m.plat.pushDirection(core.DirLeft)
		case key.Matches(msg, m.keys.Right):
			m.plat.pushDirection(core.DirRight)
		case key.Matches(msg, m.keys.Button):
			m.plat.button.Store(true)
		}
	}
	return m, nil
}

func (m model) View() string {
	var grid strings.Builder
	for y := 0; y < core.FrameSize; y++ {
		if y > 0 {
			grid.WriteRune('\n')
		}
		for x := 0; x < core.FrameSize; x++ {
			if m.rows[y]&(1<<(core.FrameSize-1-x)) != 0 {
				grid.WriteString(litStyle.Render("██"))
			} else {
				grid.WriteString(offStyle.Render("··"))
			}
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(" led-arcade simulator"),
		borderStyle.Render(grid.String()),
		helpStyle.Render(" arrows/wasd move · space button · q quit"),
	)
}

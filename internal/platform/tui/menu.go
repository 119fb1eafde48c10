package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	humanize "github.com/dustin/go-humanize"

	"github.com/vovakirdan/reciclamack/internal/config"
	"github.com/vovakirdan/reciclamack/internal/core"
	"github.com/vovakirdan/reciclamack/internal/registry"
	"github.com/vovakirdan/reciclamack/internal/storage"
)

var (
	menuLogoStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	menuCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			Width(34)
	menuPickedStyle = menuCardStyle.BorderForeground(lipgloss.Color("220"))
	menuNameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem is one playable mode.
type MenuItem struct {
	GameID string
	Title  string
	Blurb  string // One line about the difficulty curve
	Best   int    // Best recorded score, 0 when unknown
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists every registered mode with its best score.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title, Blurb: blurb(config.DefaultFor(g.ID))}
		if store == nil {
			continue
		}
		if best, err := store.HighScore(g.ID); err == nil {
			items[i].Best = best
		}
	}
	return MenuModel{items: items, config: cfg, keyMapper: NewKeyMapper()}
}

// blurb describes how quickly a configuration gets harder.
func blurb(cfg config.Config) string {
	pace := "steady climb"
	if cfg.Difficulty.SpeedMode == config.SpeedMultiplicative {
		pace = "runaway speed"
	}
	if !cfg.Difficulty.Enabled {
		pace = "no ramp"
	}
	return fmt.Sprintf("%d lives, %s", cfg.Scoring.Lives, pace)
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
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		picked := m.items[m.cursor]
		m.selected = &picked
		return m, tea.Quit
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the logo and one card per mode.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	cards := make([]string, len(m.items))
	for i, item := range m.items {
		best := "no score yet"
		if item.Best > 0 {
			best = "best " + humanize.Comma(int64(item.Best))
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			menuNameStyle.Render(item.Title),
			item.Blurb,
			menuDimStyle.Render(best),
		)
		if i == m.cursor {
			cards[i] = menuPickedStyle.Render(body)
		} else {
			cards[i] = menuCardStyle.Render(body)
		}
	}

	page := lipgloss.JoinVertical(lipgloss.Center,
		"",
		menuLogoStyle.Render("R E C I C L A M A C K"),
		menuDimStyle.Render("catch the recyclables, dodge the batteries"),
		"",
		lipgloss.JoinVertical(lipgloss.Left, cards...),
		"",
		menuDimStyle.Render("↑/↓ choose · enter play · tab scores · q quit"),
	)
	return lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, page) + "\n"
}

// Selected returns the picked mode, or nil while browsing.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, resized by window events.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerStyled centers a single line that may contain ANSI sequences.
func centerStyled(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

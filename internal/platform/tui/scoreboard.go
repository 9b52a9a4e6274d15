package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avolkov/gridsnake/internal/storage"
)

// maxScores is the number of entries loaded into the scoreboard.
const maxScores = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	scoreboardBestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Padding(0, 1)
)

// ScoreboardModel displays recorded high scores in a scrollable table.
type ScoreboardModel struct {
	title string
	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap
	best  int
}

// NewScoreboardModel loads scores for the game and builds the table.
func NewScoreboardModel(store *storage.Store, gameID, title string) (ScoreboardModel, error) {
	entries, err := store.TopScores(gameID, maxScores)
	if err != nil {
		return ScoreboardModel{}, fmt.Errorf("cannot load scores: %w", err)
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	rows := make([]table.Row, 0, len(entries))
	best := 0
	for i, e := range entries {
		if e.Score > best {
			best = e.Score
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return ScoreboardModel{
		title: title,
		table: tbl,
		help:  help.New(),
		keys:  DefaultScoreboardKeyMap(),
		best:  best,
	}, nil
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	header := scoreboardTitleStyle.Render(fmt.Sprintf("High Scores — %s", m.title))
	best := scoreboardBestStyle.Render(fmt.Sprintf("Best: %d", m.best))
	if m.best == 0 {
		best = scoreboardBestStyle.Render("No scores recorded yet.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.table.View(),
		best,
		m.help.View(m.keys),
	)
}

// RunScoreboard starts an interactive scoreboard for the given game.
func RunScoreboard(store *storage.Store, gameID, title string) error {
	model, err := NewScoreboardModel(store, gameID, title)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model)
	_, err = p.Run()
	return err
}

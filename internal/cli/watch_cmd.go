package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/drivetime/internal/cli/formatter"
	"github.com/alexanderramin/drivetime/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// watchInterval is how often the dashboard recomputes while idle. Budgets
// only move at whole-minute granularity, so 30s keeps the display at most
// half a refresh behind.
const watchInterval = 30 * time.Second

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Live status dashboard, refreshed every 30 seconds",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("watch needs an interactive terminal")
			}
			p := tea.NewProgram(newWatchModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}

// ── messages ─────────────────────────────────────────────────────────────────

type watchTickMsg time.Time

// watchLoadedMsg carries a freshly computed snapshot.
type watchLoadedMsg struct {
	summary *domain.StatusSummary
	ongoing *domain.Activity
	err     error
}

// ── key bindings ─────────────────────────────────────────────────────────────

type watchKeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

func (k watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Quit}
}

func (k watchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Refresh, k.Quit}}
}

var watchKeys = watchKeyMap{
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ── model ────────────────────────────────────────────────────────────────────

type watchModel struct {
	app     *App
	help    help.Model
	summary *domain.StatusSummary
	ongoing *domain.Activity
	loading bool
	err     error
}

func newWatchModel(app *App) watchModel {
	return watchModel{
		app:     app,
		help:    help.New(),
		loading: true,
	}
}

func (m watchModel) load() tea.Msg {
	ctx := context.Background()
	summary, err := m.app.Compliance.Summary(ctx)
	if err != nil {
		return watchLoadedMsg{err: err}
	}
	ongoing, err := m.app.Activities.Ongoing(ctx)
	if err != nil {
		return watchLoadedMsg{err: err}
	}
	return watchLoadedMsg{summary: summary, ongoing: ongoing}
}

func watchTick() tea.Cmd {
	return tea.Tick(watchInterval, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.load, watchTick())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, watchKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, watchKeys.Refresh):
			m.loading = true
			return m, m.load
		}

	case watchTickMsg:
		return m, tea.Batch(m.load, watchTick())

	case watchLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.summary = msg.summary
			m.ongoing = msg.ongoing
		}
	}

	return m, nil
}

func (m watchModel) View() string {
	var body string
	switch {
	case m.err != nil:
		body = formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	case m.summary == nil:
		body = formatter.Dim("Loading...") + "\n"
	default:
		if m.ongoing != nil {
			body += fmt.Sprintf("%s  since %s\n\n",
				formatter.ActivityPill(m.ongoing.Type),
				formatter.Timestamp(m.ongoing.Start))
		}
		body += formatter.FormatSummary(m.summary) + "\n"
		if m.loading {
			body += formatter.Dim("Refreshing...") + "\n"
		}
	}

	return body + "\n" + m.help.View(watchKeys)
}

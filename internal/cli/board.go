package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/valter-silva-au/lista-tareas/internal/core"
	"github.com/valter-silva-au/lista-tareas/internal/logging"
	"github.com/valter-silva-au/lista-tareas/pkg/models"
)

// Button labels on each card.
const (
	markCompletedLabel = "Marcar como completada"
	markPendingLabel   = "Marcar como pendiente"
	emptyGroupLabel    = "Sin tareas."
)

// boardKeyMap defines the board's keybindings.
type boardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Priority key.Binding
	Select   key.Binding
	Dismiss  key.Binding
	Quit     key.Binding
}

var defaultBoardKeys = boardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "subir"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "bajar"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "completar/pendiente"),
	),
	Priority: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "prioridad"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "elegir"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "cerrar"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "salir"),
	),
}

var forceQuit = key.NewBinding(key.WithKeys("ctrl+c"))

// boardModel is the bubbletea model for the task board. It only ever
// renders from the latest snapshot it has received.
type boardModel struct {
	mgr    core.TaskManager
	labels models.UIConfig
	keys   boardKeyMap

	version uint64
	tasks   []models.Task

	// selectedID follows the highlighted task across groups.
	selectedID string

	// menuOpen holds the open/closed flag of each card's priority selector.
	menuOpen   map[string]bool
	menuCursor int

	width  int
	height int
	err    error
}

// snapshotMsg carries a new store snapshot to the model.
type snapshotMsg struct {
	snap core.Snapshot
}

// actionErrMsg reports a failed mutation.
type actionErrMsg struct {
	err error
}

// Style definitions.
var (
	boardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activeCardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	cardTitleStyle   = lipgloss.NewStyle().Bold(true)
	descriptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	completeButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("230")).
				Background(palette["red"]).
				Padding(0, 1)

	reopenButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("232")).
				Background(palette["green"]).
				Padding(0, 1)

	menuItemStyle   = lipgloss.NewStyle().PaddingLeft(2)
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)

	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// palette maps models.Priority color names to ANSI 256 codes.
	palette = map[string]lipgloss.Color{
		"red":    lipgloss.Color("196"),
		"yellow": lipgloss.Color("226"),
		"green":  lipgloss.Color("46"),
	}
)

// priorityDotColor returns the terminal color of p's dot, gray if p is unknown.
func priorityDotColor(p models.Priority) lipgloss.Color {
	if c, ok := palette[p.Color()]; ok {
		return c
	}
	return lipgloss.Color("240")
}

func newBoardModel(mgr core.TaskManager, labels models.UIConfig) boardModel {
	m := boardModel{
		mgr:      mgr,
		labels:   labels,
		keys:     defaultBoardKeys,
		menuOpen: make(map[string]bool),
	}
	m = m.applySnapshot(mgr.Snapshot())
	return m
}

func (m boardModel) Init() tea.Cmd {
	return loadSnapshot(m.mgr)
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, forceQuit) {
			return m, tea.Quit
		}
		if m.menuIsOpen() {
			return m.updateMenu(msg)
		}
		return m.updateBoard(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotMsg:
		if msg.snap.Version <= m.version {
			return m, nil
		}
		m.err = nil
		return m.applySnapshot(msg.snap), nil

	case actionErrMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func (m boardModel) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ordered := core.DisplayOrder(m.tasks)
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if i := m.cursor(ordered); i > 0 {
			m.selectedID = ordered[i-1].ID
		}
	case key.Matches(msg, m.keys.Down):
		if i := m.cursor(ordered); i >= 0 && i < len(ordered)-1 {
			m.selectedID = ordered[i+1].ID
		}
	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.selected(); ok {
			return m, toggleTask(m.mgr, task.ID)
		}
	case key.Matches(msg, m.keys.Priority):
		if task, ok := m.selected(); ok {
			m.menuOpen = map[string]bool{task.ID: true}
			m.menuCursor = priorityIndex(task.Priority)
		}
	}
	return m, nil
}

func (m boardModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := models.AllPriorities()
	task, ok := m.selected()
	if !ok {
		m.closeMenu()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Dismiss):
		m.closeMenu()
	case key.Matches(msg, m.keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.menuCursor < len(options)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.closeMenu()
		return m, changePriority(m.mgr, task.ID, options[m.menuCursor])
	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			if n := int(msg.Runes[0] - '1'); n >= 0 && n < len(options) {
				m.closeMenu()
				return m, changePriority(m.mgr, task.ID, options[n])
			}
		}
	}
	return m, nil
}

// applySnapshot replaces the rendered state with snap and keeps the
// selection on the same task, or on the first task if it disappeared.
func (m boardModel) applySnapshot(snap core.Snapshot) boardModel {
	m.version = snap.Version
	m.tasks = snap.Tasks

	ordered := core.DisplayOrder(m.tasks)
	if m.cursor(ordered) < 0 {
		m.selectedID = ""
		if len(ordered) > 0 {
			m.selectedID = ordered[0].ID
		}
	}
	return m
}

func (m boardModel) cursor(ordered []models.Task) int {
	for i, t := range ordered {
		if t.ID == m.selectedID {
			return i
		}
	}
	return -1
}

func (m boardModel) selected() (models.Task, bool) {
	for _, t := range m.tasks {
		if t.ID == m.selectedID {
			return t, true
		}
	}
	return models.Task{}, false
}

func (m boardModel) menuIsOpen() bool {
	return m.menuOpen[m.selectedID]
}

func (m *boardModel) closeMenu() {
	m.menuOpen = make(map[string]bool)
}

func (m boardModel) View() string {
	var b strings.Builder

	if m.labels.Title != "" {
		b.WriteString(boardTitleStyle.Render(" " + m.labels.Title + " "))
		b.WriteString("\n\n")
	}

	pending, completed := core.Partition(m.tasks)
	m.renderSection(&b, m.labels.PendingHeading, pending)
	b.WriteString(dividerStyle.Render(strings.Repeat("─", m.dividerWidth())))
	b.WriteString("\n\n")
	m.renderSection(&b, m.labels.CompletedHeading, completed)

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %s", m.err)))
		b.WriteString("\n")
	}

	if m.menuIsOpen() {
		b.WriteString(hintStyle.Render("↑/↓ mover | enter elegir | 1-3 directo | esc cerrar"))
	} else {
		b.WriteString(hintStyle.Render("↑/↓ mover | enter completar | p prioridad | q salir"))
	}
	return b.String()
}

func (m boardModel) renderSection(b *strings.Builder, heading string, tasks []models.Task) {
	b.WriteString(sectionStyle.Render(heading))
	b.WriteString("\n")
	if len(tasks) == 0 {
		b.WriteString(hintStyle.Render("  " + emptyGroupLabel))
		b.WriteString("\n\n")
		return
	}
	for _, t := range tasks {
		b.WriteString(m.renderCard(t))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (m boardModel) renderCard(t models.Task) string {
	dot := lipgloss.NewStyle().Foreground(priorityDotColor(t.Priority)).Render("●")

	button := completeButtonStyle.Render(markCompletedLabel)
	if t.Completed {
		button = reopenButtonStyle.Render(markPendingLabel)
	}

	lines := []string{
		dot + " " + cardTitleStyle.Render(t.Title),
		descriptionStyle.Render(t.Description),
		button + "  " + fmt.Sprintf("Prioridad: %s ▾", t.Priority.Label()),
	}
	if m.menuOpen[t.ID] {
		for i, p := range models.AllPriorities() {
			prefix := "  "
			if i == m.menuCursor {
				prefix = menuCursorStyle.Render("> ")
			}
			lines = append(lines, menuItemStyle.Render(fmt.Sprintf("%s%d. %s", prefix, i+1, p.Label())))
		}
	}

	style := cardStyle
	if t.ID == m.selectedID {
		style = activeCardStyle
	}
	if m.width > 8 {
		style = style.Width(m.width - 4)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m boardModel) dividerWidth() int {
	if m.width > 2 {
		return m.width - 2
	}
	return 40
}

func priorityIndex(p models.Priority) int {
	for i, candidate := range models.AllPriorities() {
		if candidate == p {
			return i
		}
	}
	return 0
}

func loadSnapshot(mgr core.TaskManager) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg{snap: mgr.Snapshot()}
	}
}

func toggleTask(mgr core.TaskManager, taskID string) tea.Cmd {
	return func() tea.Msg {
		if _, err := mgr.ToggleCompletion(taskID); err != nil {
			return actionErrMsg{err: err}
		}
		return snapshotMsg{snap: mgr.Snapshot()}
	}
}

func changePriority(mgr core.TaskManager, taskID string, p models.Priority) tea.Cmd {
	return func() tea.Msg {
		if _, err := mgr.ChangePriority(taskID, p); err != nil {
			return actionErrMsg{err: err}
		}
		return snapshotMsg{snap: mgr.Snapshot()}
	}
}

var boardLogFile string

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive task board",
	Long: `Open the interactive terminal board listing pending and completed tasks.

Move with the arrow keys or j/k, press enter to mark the highlighted task
completed or pending, and p to choose its priority (Alta, Media, Baja).
Quit with q.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		// The alternate screen owns the terminal, so logs go to a file or nowhere.
		restore := Logger
		if boardLogFile != "" {
			f, err := os.OpenFile(boardLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			defer func() { _ = f.Close() }()
			opts := logging.DefaultOptions()
			if Logger != nil {
				opts.Level = Logger.GetLevel().String()
			}
			opts.ReportTimestamp = true
			fileLogger, err := logging.New(f, opts)
			if err != nil {
				return err
			}
			Logger = fileLogger
		} else {
			Logger = logging.Discard()
		}
		defer func() { Logger = restore }()

		p := tea.NewProgram(newBoardModel(TaskMgr, boardLabels()), tea.WithAltScreen())
		unsubscribe := TaskMgr.Subscribe(func(snap core.Snapshot) {
			Logger.Debug("snapshot", "version", snap.Version)
			p.Send(snapshotMsg{snap: snap})
		})
		defer unsubscribe()

		_, err := p.Run()
		return err
	},
}

func init() {
	boardCmd.Flags().StringVar(&boardLogFile, "log-file", "", "write logs to this file while the board is open")
	rootCmd.AddCommand(boardCmd)
}

// Package tui provides the interactive Bubble Tea dashboard for daybook.
package tui

import (
	"fmt"
	"strings"
	"time"

	"daybook/internal/config"
	"daybook/internal/dates"
	"daybook/internal/model"
	"daybook/internal/store"
	"daybook/internal/tui/components"
	"daybook/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// StoreChangedMsg is sent when a store mutation lands, carrying the
// collection that changed.
type StoreChangedMsg struct {
	Collection store.Collection
}

// noteExpireMsg clears the transient status note if it is still the one the
// timer was armed for.
type noteExpireMsg struct {
	seq int
}

// Tab indices, matching components.Tabs.
const (
	tabOverview = iota
	tabHabits
	tabTasks
	tabCalories
	tabFinance
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
	minContentHeight = 5

	noteLifetime = 3 * time.Second
)

// App is the root Bubble Tea model.
type App struct {
	store *store.Store
	cfg   config.Config
	ws    dates.WeekStart

	// Snapshots refreshed on every StoreChangedMsg
	habits []model.Habit
	tasks  []model.Task
	cal    model.CalorieData
	fin    model.FinancialData

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab cursors
	habitCursor int
	taskCursor  int

	// Active form (nil when no form is open)
	form     *huh.Form
	formKind formKind
	vals     *formValues

	// Transient status note
	note    string
	noteSeq int

	// Mutation notifications from the store land here; a waitForChange
	// command converts them into StoreChangedMsg.
	changes chan store.Collection
}

// NewApp creates the TUI model around an opened store.
func NewApp(s *store.Store, cfg config.Config) App {
	changes := make(chan store.Collection, 8)
	s.Subscribe(func(c store.Collection) {
		// Non-blocking send: a full channel means a refresh is already
		// pending, which will pick up this change too.
		select {
		case changes <- c:
		default:
		}
	})

	a := App{
		store:   s,
		cfg:     cfg,
		ws:      dates.ParseWeekStart(cfg.General.WeekStart),
		vals:    &formValues{},
		changes: changes,
	}
	a.refresh()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return waitForChange(a.changes)
}

// refresh re-reads all collections from the store and clamps cursors.
func (a *App) refresh() {
	a.habits = a.store.Habits()
	a.tasks = a.store.Tasks()
	a.cal = a.store.CalorieData()
	a.fin = a.store.FinancialData()

	if a.habitCursor >= len(a.habits) {
		a.habitCursor = len(a.habits) - 1
	}
	if a.habitCursor < 0 {
		a.habitCursor = 0
	}
	if a.taskCursor >= len(a.tasks) {
		a.taskCursor = len(a.tasks) - 1
	}
	if a.taskCursor < 0 {
		a.taskCursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth())
		}
		return a, nil

	case StoreChangedMsg:
		a.refresh()
		return a, waitForChange(a.changes)

	case noteExpireMsg:
		if msg.seq == a.noteSeq {
			a.note = ""
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// An open form intercepts all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Tab-specific keybindings
		switch a.activeTab {
		case tabHabits:
			if m, cmd, handled := a.updateHabitsKeys(key); handled {
				return m, cmd
			}
		case tabTasks:
			if m, cmd, handled := a.updateTasksKeys(key); handled {
				return m, cmd
			}
		case tabCalories:
			if m, cmd, handled := a.updateCaloriesKeys(key); handled {
				return m, cmd
			}
		case tabFinance:
			if m, cmd, handled := a.updateFinanceKeys(key); handled {
				return m, cmd
			}
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

// ─── Per-tab keys ───────────────────────────────────────────────

func (a App) updateHabitsKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.habitCursor < len(a.habits)-1 {
			a.habitCursor++
		}
		return a, nil, true
	case "k", "up":
		if a.habitCursor > 0 {
			a.habitCursor--
		}
		return a, nil, true
	case "enter", " ":
		if a.habitCursor < len(a.habits) {
			h := a.habits[a.habitCursor]
			a.store.ToggleInteraction(h.ID, time.Now())
			return a, a.setNote("toggled " + h.Name), true
		}
		return a, nil, true
	case "a":
		return a.openForm(formAddHabit)
	case "x":
		if a.habitCursor < len(a.habits) {
			h := a.habits[a.habitCursor]
			a.store.DeleteHabit(h.ID)
			return a, a.setNote("deleted " + h.Name), true
		}
		return a, nil, true
	}
	return a, nil, false
}

func (a App) updateTasksKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.taskCursor < len(a.tasks)-1 {
			a.taskCursor++
		}
		return a, nil, true
	case "k", "up":
		if a.taskCursor > 0 {
			a.taskCursor--
		}
		return a, nil, true
	case "a":
		return a.openForm(formAddTask)
	case "e", "enter":
		if a.taskCursor < len(a.tasks) {
			return a.openForm(formEditTask)
		}
		return a, nil, true
	case "x":
		if a.taskCursor < len(a.tasks) {
			title := a.tasks[a.taskCursor].Title
			a.store.RemoveTasks([]int{a.taskCursor})
			return a, a.setNote("removed " + title), true
		}
		return a, nil, true
	}
	return a, nil, false
}

func (a App) updateCaloriesKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "g":
		return a.openForm(formSetGoal)
	case "e", "enter":
		return a.openForm(formEatCalories)
	case "b":
		return a.openForm(formBurnCalories)
	case "r":
		a.store.ResetToday()
		return a, a.setNote("reset consumed and burned"), true
	}
	return a, nil, false
}

func (a App) updateFinanceKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "i", "enter":
		return a.openForm(formSetIncome)
	}
	return a, nil, false
}

// setNote shows a transient status note and arms its expiry timer.
func (a *App) setNote(s string) tea.Cmd {
	a.note = s
	a.noteSeq++
	seq := a.noteSeq
	return tea.Tick(noteLifetime, func(time.Time) tea.Msg {
		return noteExpireMsg{seq: seq}
	})
}

func waitForChange(ch chan store.Collection) tea.Cmd {
	return func() tea.Msg {
		return StoreChangedMsg{Collection: <-ch}
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// ─── View ───────────────────────────────────────────────────────

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.form != nil {
		return a.viewForm()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  daybook needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewForm() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 2)

	card := cardStyle.Render(a.form.View())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◆ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o h t c f", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Habits"))
	b.WriteString("\n")
	habitBindings := []struct{ key, desc string }{
		{"Space", "Toggle today"},
		{"a", "Add habit"},
		{"x", "Delete habit"},
	}
	for _, bind := range habitBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Tasks"))
	b.WriteString("\n")
	taskBindings := []struct{ key, desc string }{
		{"a", "Add task"},
		{"e", "Edit task"},
		{"x", "Remove task"},
	}
	for _, bind := range taskBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Calories & Finance"))
	b.WriteString("\n")
	calBindings := []struct{ key, desc string }{
		{"g", "Set daily goal"},
		{"e / b", "Log eaten / burned"},
		{"r", "Reset today"},
		{"i", "Set monthly income"},
	}
	for _, bind := range calBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	dateStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		dateStyle.Render(" "+time.Now().Format("Monday, January 2"))

	statusBar := components.RenderStatusBar(w, a.tabHint(), a.note)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabHabits:
		content = a.renderHabitsTab(cw)
	case tabTasks:
		content = a.renderTasksTab(cw)
	case tabCalories:
		content = a.renderCaloriesTab(cw)
	case tabFinance:
		content = a.renderFinanceTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) tabHint() string {
	switch a.activeTab {
	case tabHabits:
		return "[space]toggle  [a]dd  [x]delete"
	case tabTasks:
		return "[a]dd  [e]dit  [x]remove"
	case tabCalories:
		return "[g]oal  [e]at  [b]urn  [r]eset"
	case tabFinance:
		return "[i]ncome"
	default:
		return "[o h t c f]tabs"
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color so
// gaps between cards and empty lines pick up the theme background.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

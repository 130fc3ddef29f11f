package tui

import (
	"errors"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type formKind int

const (
	formNone formKind = iota
	formAddHabit
	formAddTask
	formEditTask
	formSetGoal
	formEatCalories
	formBurnCalories
	formSetIncome
)

// formValues backs the active form's inputs. Held behind a pointer on App so
// Bubble Tea's model copies all share the same storage the form writes into.
type formValues struct {
	name   string
	title  string
	note   string
	amount string
	taskID string
}

func (v *formValues) reset() {
	*v = formValues{}
}

func notEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be empty")
	}
	return nil
}

func wholeNumber(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return errors.New("enter a whole number")
	}
	return nil
}

func moneyAmount(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return errors.New("enter an amount")
	}
	return nil
}

func (a App) formWidth() int {
	w := 60
	if a.width > 0 && w > a.width-8 {
		w = a.width - 8
	}
	if w < 30 {
		w = 30
	}
	return w
}

// openForm builds and activates the form for kind. The bool return matches
// the per-tab key handlers: an opened form always counts as handled.
func (a App) openForm(kind formKind) (tea.Model, tea.Cmd, bool) {
	a.vals.reset()

	var fields []huh.Field
	switch kind {
	case formAddHabit:
		fields = []huh.Field{
			huh.NewInput().
				Title("New habit").
				Placeholder("e.g. morning run").
				Value(&a.vals.name).
				Validate(notEmpty),
		}

	case formAddTask:
		fields = []huh.Field{
			huh.NewInput().
				Title("New task").
				Placeholder("what needs doing").
				Value(&a.vals.title).
				Validate(notEmpty),
			huh.NewInput().
				Title("Note").
				Placeholder("optional").
				Value(&a.vals.note),
		}

	case formEditTask:
		if a.taskCursor >= len(a.tasks) {
			return a, nil, true
		}
		task := a.tasks[a.taskCursor]
		a.vals.taskID = task.ID
		a.vals.title = task.Title
		a.vals.note = task.Note
		fields = []huh.Field{
			huh.NewInput().
				Title("Title").
				Value(&a.vals.title).
				Validate(notEmpty),
			huh.NewInput().
				Title("Note").
				Value(&a.vals.note),
		}

	case formSetGoal:
		fields = []huh.Field{
			huh.NewInput().
				Title("Daily calorie goal").
				Placeholder("2000").
				Value(&a.vals.amount).
				Validate(wholeNumber),
		}

	case formEatCalories:
		fields = []huh.Field{
			huh.NewInput().
				Title("Calories eaten").
				Placeholder("350").
				Value(&a.vals.amount).
				Validate(wholeNumber),
		}

	case formBurnCalories:
		fields = []huh.Field{
			huh.NewInput().
				Title("Calories burned").
				Placeholder("200").
				Value(&a.vals.amount).
				Validate(wholeNumber),
		}

	case formSetIncome:
		fields = []huh.Field{
			huh.NewInput().
				Title("Monthly income").
				Placeholder("3200.00").
				Value(&a.vals.amount).
				Validate(moneyAmount),
		}

	default:
		return a, nil, true
	}

	a.formKind = kind
	a.form = huh.NewForm(huh.NewGroup(fields...)).
		WithShowHelp(true).
		WithWidth(a.formWidth())

	return a, a.form.Init(), true
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		noteCmd := a.applyForm()
		a.form = nil
		a.formKind = formNone
		return a, noteCmd
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	return a, cmd
}

// applyForm commits the completed form to the store. The resulting change
// notification refreshes the snapshots.
func (a *App) applyForm() tea.Cmd {
	switch a.formKind {
	case formAddHabit:
		name := strings.TrimSpace(a.vals.name)
		a.store.AddHabit(name)
		return a.setNote("added " + name)

	case formAddTask:
		title := strings.TrimSpace(a.vals.title)
		a.store.AddTask(title, strings.TrimSpace(a.vals.note))
		return a.setNote("added " + title)

	case formEditTask:
		for _, t := range a.tasks {
			if t.ID == a.vals.taskID {
				t.Title = strings.TrimSpace(a.vals.title)
				t.Note = strings.TrimSpace(a.vals.note)
				a.store.UpdateTask(t)
				return a.setNote("updated " + t.Title)
			}
		}
		return nil

	case formSetGoal:
		n, err := strconv.Atoi(strings.TrimSpace(a.vals.amount))
		if err != nil {
			return nil
		}
		a.store.SetCalorieGoal(n)
		return a.setNote("goal set")

	case formEatCalories:
		n, err := strconv.Atoi(strings.TrimSpace(a.vals.amount))
		if err != nil {
			return nil
		}
		a.store.AddConsumedCalories(n)
		return a.setNote("logged " + strconv.Itoa(n) + " kcal eaten")

	case formBurnCalories:
		n, err := strconv.Atoi(strings.TrimSpace(a.vals.amount))
		if err != nil {
			return nil
		}
		a.store.AddBurnedCalories(n)
		return a.setNote("logged " + strconv.Itoa(n) + " kcal burned")

	case formSetIncome:
		f, err := strconv.ParseFloat(strings.TrimSpace(a.vals.amount), 64)
		if err != nil {
			return nil
		}
		a.store.SetMonthlyIncome(f)
		return a.setNote("income updated")
	}
	return nil
}

package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"daybook/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagTaskNote  string
	flagTaskTitle string
)

var tasksCmd = &cobra.Command{
	Use:     "tasks",
	Aliases: []string{"task"},
	Short:   "Manage the to-do list",
	RunE:    runTasksList,
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE:  runTasksList,
}

var tasksAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTasksAdd,
}

var tasksEditCmd = &cobra.Command{
	Use:   "edit <n>",
	Short: "Edit a task's title or note",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksEdit,
}

var tasksRmCmd = &cobra.Command{
	Use:   "rm <n> [n...]",
	Short: "Remove tasks by list position",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTasksRm,
}

func init() {
	tasksAddCmd.Flags().StringVarP(&flagTaskNote, "note", "n", "", "Optional note")
	tasksEditCmd.Flags().StringVarP(&flagTaskTitle, "title", "t", "", "New title")
	tasksEditCmd.Flags().StringVarP(&flagTaskNote, "note", "n", "", "New note")

	tasksCmd.AddCommand(tasksListCmd, tasksAddCmd, tasksEditCmd, tasksRmCmd)
	rootCmd.AddCommand(tasksCmd)
}

func runTasksList(_ *cobra.Command, _ []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	tasks := s.Tasks()
	if len(tasks) == 0 {
		fmt.Println("\n  No tasks. Add one with `daybook tasks add <title>`.")
		return nil
	}

	rows := make([][]string, 0, len(tasks))
	for i, t := range tasks {
		rows = append(rows, []string{strconv.Itoa(i + 1), t.Title, t.Note})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "TASKS",
		Headers: []string{"#", "Title", "Note"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

func runTasksAdd(_ *cobra.Command, args []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return errors.New("task title is empty")
	}

	t := s.AddTask(title, flagTaskNote)
	fmt.Printf("  Added task %q\n", t.Title)
	return nil
}

func runTasksEdit(cmd *cobra.Command, args []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	tasks := s.Tasks()
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(tasks) {
		return fmt.Errorf("task %q out of range (1-%d)", args[0], len(tasks))
	}

	task := tasks[n-1]
	if cmd.Flags().Changed("title") {
		title := strings.TrimSpace(flagTaskTitle)
		if title == "" {
			return errors.New("task title is empty")
		}
		task.Title = title
	}
	if cmd.Flags().Changed("note") {
		task.Note = flagTaskNote
	}

	s.UpdateTask(task)
	fmt.Printf("  Updated task %q\n", task.Title)
	return nil
}

func runTasksRm(_ *cobra.Command, args []string) error {
	s, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	count := len(s.Tasks())
	indices := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n < 1 || n > count {
			return fmt.Errorf("task %q out of range (1-%d)", a, count)
		}
		indices = append(indices, n-1)
	}

	s.RemoveTasks(indices)
	fmt.Printf("  Removed %d task(s)\n", len(indices))
	return nil
}

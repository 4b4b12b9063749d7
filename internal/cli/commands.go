package cli

import (
	"fmt"
	"time"

	"tasktracker/internal/models"
	"tasktracker/internal/tracker"
)

func builtinCommands() []*command {
	return []*command{
		{name: "add", synopsis: "Add a task", usage: "add", run: runAdd},
		{name: "rm", aliases: []string{"delete", "remove"}, synopsis: "Remove a task", usage: "rm <id>", run: runRemove},
		{name: "edit", aliases: []string{"update"}, synopsis: "Edit a task", usage: "edit <id>", run: runEdit},
		{name: "done", aliases: []string{"toggle"}, synopsis: "Toggle a task's completed flag", usage: "done <id>", run: runToggle},
		{name: "list", aliases: []string{"ls", "view"}, synopsis: "Show tasks", usage: "list [none|priority|due|created]", run: runList},
		{name: "undo", synopsis: "Undo the last change", usage: "undo", run: runUndo},
		{name: "redo", synopsis: "Redo the last undone change", usage: "redo", run: runRedo},
		{name: "history", synopsis: "Show undo and redo history", usage: "history", run: runHistory},
		{name: "help", aliases: []string{"?"}, synopsis: "Show this help", usage: "help", run: runHelp},
		{name: "quit", aliases: []string{"exit", "q"}, synopsis: "Exit", usage: "quit", run: runQuit},
	}
}

func runAdd(s *Shell, args []string) error {
	var title string
	for title == "" {
		line, err := s.ask("Task title: ")
		if err != nil {
			return err
		}
		if line == "" {
			s.printf("Title is required.\n")
		}
		title = line
	}

	description, err := s.ask("Description: ")
	if err != nil {
		return err
	}

	due, err := s.askDate(true)
	if err != nil {
		return err
	}

	priority, err := s.askPriority(true)
	if err != nil {
		return err
	}

	task, err := s.tracker.AddTask(title, description, due, priority)
	if err != nil {
		return err
	}
	s.printf("Task %d added.\n", task.ID)
	return nil
}

func runRemove(s *Shell, args []string) error {
	id, err := s.taskID(args, "Task ID to remove: ")
	if err != nil {
		return err
	}

	if s.tracker.DeleteTask(id) {
		s.printf("Task deleted.\n")
	} else {
		s.printf("Task not found.\n")
	}
	return nil
}

func runEdit(s *Shell, args []string) error {
	id, err := s.taskID(args, "Task ID to edit: ")
	if err != nil {
		return err
	}

	current, ok := s.tracker.Get(id)
	if !ok {
		s.printf("Task not found.\n")
		return nil
	}

	s.printf("Leave a field blank to keep current value.\n")

	var patch tracker.Patch

	title, err := s.ask(fmt.Sprintf("New title [%s]: ", current.Title))
	if err != nil {
		return err
	}
	if title != "" {
		patch.Title = &title
	}

	description, err := s.ask(fmt.Sprintf("New description [%s]: ", current.Description))
	if err != nil {
		return err
	}
	if description != "" {
		patch.Description = &description
	}

	due, err := s.askDate(false)
	if err != nil {
		return err
	}
	if !due.IsZero() {
		patch.DueDate = &due
	}

	priority, err := s.askPriority(false)
	if err != nil {
		return err
	}
	if priority != "" {
		patch.Priority = &priority
	}

	found, err := s.tracker.UpdateTask(id, patch)
	if !found {
		s.printf("Task not found.\n")
		return nil
	}
	if err != nil {
		return err
	}
	s.printf("Task updated.\n")
	return nil
}

func runToggle(s *Shell, args []string) error {
	id, err := s.taskID(args, "Task ID to toggle: ")
	if err != nil {
		return err
	}

	if !s.tracker.ToggleCompleted(id) {
		s.printf("Task not found.\n")
		return nil
	}

	task, _ := s.tracker.Get(id)
	if task.Completed {
		s.printf("Task %d marked completed.\n", id)
	} else {
		s.printf("Task %d reopened.\n", id)
	}
	return nil
}

func runList(s *Shell, args []string) error {
	key := s.opts.DefaultSort
	if len(args) > 0 {
		parsed, err := tracker.ParseSortKey(args[0])
		if err != nil {
			return err
		}
		key = parsed
	}

	tasks := s.tracker.ListTasks(key)
	if len(tasks) == 0 {
		s.printf("No tasks.\n")
		return nil
	}
	s.printf("%s\n", renderTaskTable(s.out, tasks, s.opts.DateLayout, time.Now()))
	return nil
}

func runUndo(s *Shell, args []string) error {
	action, ok := s.tracker.Undo()
	if !ok {
		s.printf("Nothing to undo.\n")
		return nil
	}
	s.printf("Undone: %s\n", action.Description())
	return nil
}

func runRedo(s *Shell, args []string) error {
	action, ok := s.tracker.Redo()
	if !ok {
		s.printf("Nothing to redo.\n")
		return nil
	}
	s.printf("Redone: %s\n", action.Description())
	return nil
}

func runHistory(s *Shell, args []string) error {
	info := s.tracker.History()

	s.printf("Undo (%d):\n", len(info.Undo))
	for _, e := range info.Undo {
		s.printf("  %s  %s\n", e.RecordedAt.Format("15:04:05"), e.Action.Description())
	}
	s.printf("Redo (%d):\n", len(info.Redo))
	for _, e := range info.Redo {
		s.printf("  %s  %s\n", e.RecordedAt.Format("15:04:05"), e.Action.Description())
	}
	return nil
}

func runHelp(s *Shell, args []string) error {
	s.printf("Commands:\n")
	for _, c := range s.sortedCommands() {
		s.printf("  %-34s %s\n", c.usage, c.synopsis)
	}
	return nil
}

func runQuit(s *Shell, args []string) error {
	if !s.opts.Quiet {
		s.printf("Exiting... Bye!\n")
	}
	return errQuit
}

// askDate prompts until a valid date is entered. When required is false a
// blank answer returns the zero time.
func (s *Shell) askDate(required bool) (time.Time, error) {
	hint := layoutHint(s.opts.DateLayout)
	prompt := fmt.Sprintf("Due date (%s): ", hint)
	if !required {
		prompt = fmt.Sprintf("New due date (%s) or leave blank: ", hint)
	}

	for {
		line, err := s.ask(prompt)
		if err != nil {
			return time.Time{}, err
		}
		if line == "" && !required {
			return time.Time{}, nil
		}

		due, err := models.ParseDate(s.opts.DateLayout, line)
		if err == nil {
			return due, nil
		}
		s.printf("Invalid date. Example: %s\n", time.Date(2025, 8, 13, 0, 0, 0, 0, time.UTC).Format(s.opts.DateLayout))
	}
}

// askPriority prompts until a valid priority is entered. When required is
// false a blank answer returns "".
func (s *Shell) askPriority(required bool) (models.Priority, error) {
	prompt := "Priority (Low/Medium/High): "
	if !required {
		prompt = "New priority (Low/Medium/High) or leave blank: "
	}

	for {
		line, err := s.ask(prompt)
		if err != nil {
			return "", err
		}
		if line == "" && !required {
			return "", nil
		}

		p, err := models.ParsePriority(line)
		if err == nil {
			return p, nil
		}
		s.printf("Invalid priority.\n")
	}
}

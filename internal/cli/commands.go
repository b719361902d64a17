package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/todo"
	"github.com/idilsaglam/todolist/internal/ui"
)

func newAddCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "add <TASK>...",
		Short:   "Add a new task to the todo list",
		Example: `  todo add "Buy milk"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			t, err := s.Add(strings.Join(args, " "))
			if err != nil {
				return err
			}
			a.printer.OK("Added task: " + t.Description)
			return nil
		},
	}
}

func newCompleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "complete <INDEX>",
		Short:   "Mark a task as complete",
		Long:    "Mark the task at the given 1-based index (as shown by `todo list`) as complete.",
		Example: "  todo complete 2",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := todo.ParseIndex(args[0])
			if err != nil {
				return err
			}
			s, err := a.openStore()
			if err != nil {
				return err
			}
			res, err := s.Complete(index)
			if err != nil {
				return err
			}
			if res.AlreadyCompleted {
				a.printer.Info("Task already completed: " + res.Task.Description)
				return nil
			}
			a.printer.OK("Completed task: " + res.Task.Description)
			return nil
		},
	}
}

func newDeleteCompletedCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete_completed",
		Short: "Delete all completed tasks from the todo list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			n, err := s.DeleteCompleted()
			if err != nil {
				return err
			}
			a.printer.OK(fmt.Sprintf("Deleted %d completed tasks", n))
			return nil
		},
	}
}

func newListCommand(a *app) *cobra.Command {
	var interactive bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all of the tasks in the todo list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			if !interactive {
				renderListing(a.printer, s.List())
				return nil
			}
			n, err := a.opt.Interactive(s, a.theme())
			if err != nil {
				return fmt.Errorf("interactive list: %w", err)
			}
			if n > 0 {
				a.printer.OK(fmt.Sprintf("Saved %d changes", n))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse and complete tasks in a terminal UI")
	return cmd
}

// renderListing prints completed tasks first, then uncompleted ones, each
// with its index in the full list.
func renderListing(p *ui.Printer, l todo.Listing) {
	st := p.Styles()
	if l.Empty() {
		p.Line(st.Muted, "No tasks in the todo list")
		return
	}
	p.Line(st.Accent, "Completed tasks:")
	for _, e := range l.Completed {
		fmt.Fprintf(p.Out(), "%d. %s %s\n", e.Index, st.Success.Render("[x]"), e.Description)
	}
	p.Line(st.Accent, "Uncompleted tasks:")
	for _, e := range l.Uncompleted {
		fmt.Fprintf(p.Out(), "%d. %s %s\n", e.Index, st.Pending.Render("[ ]"), e.Description)
	}
}

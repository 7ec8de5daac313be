package cli

import (
	"fmt"
	"io"
	"task-tracker/internal/domain"
	"time"
)

const programName = "task-cli"

const timeLayout = time.RFC3339

func formatTask(t domain.Task) string {
	return fmt.Sprintf("[%d] %s - %s - %s (created: %s, updated: %s)",
		t.ID, t.Name, t.Description, t.Status,
		t.CreatedAt.Format(timeLayout), t.UpdatedAt.Format(timeLayout))
}

func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, `Usage: %s [flags] <command> [arguments]

Commands:
  add <name> [description...] [status]           Add a task (status: todo, in-progress, done)
  update <id> [name] [description...] [status]   Update fields of an existing task
  delete <id>                                    Delete a task
  mark-in-progress <id>                          Mark a task as in-progress
  mark-done <id>                                 Mark a task as done
  list [status]                                  List all tasks, or only those with status
  help                                           Show this help

Flags:
  -file PATH         Task store file (default tasks.json, env TASK_CLI_FILE)
  -config PATH       YAML config file (env TASK_CLI_CONFIG)
  -log-level LEVEL   Diagnostics level on stderr (default warn, env LOG_LEVEL)
  -log-format FMT    Diagnostics format: text or json (env LOG_FORMAT)
`, programName)
}

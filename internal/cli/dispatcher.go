package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"task-tracker/internal/domain"
	"task-tracker/internal/service"

	"github.com/sirupsen/logrus"
)

type TaskService interface {
	AddTask(name, description string, status domain.TaskStatus) (domain.Task, error)
	UpdateTask(id int64, patch domain.TaskPatch) (domain.Task, error)
	DeleteTask(id int64) (bool, error)
	SetStatus(id int64, status domain.TaskStatus) (domain.Task, error)
	ListTasks(filter string) ([]domain.Task, error)
}

type StoreInitializer interface {
	EnsureInitialized() error
}

// Dispatcher runs one command per call. Every logical outcome, including
// bad input and unknown ids, is printed to out and reported as success; only
// storage failures are returned.
type Dispatcher struct {
	tasks TaskService
	store StoreInitializer
	out   io.Writer
	log   logrus.FieldLogger
}

func NewDispatcher(tasks TaskService, store StoreInitializer, out io.Writer, log logrus.FieldLogger) *Dispatcher {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Dispatcher{tasks: tasks, store: store, out: out, log: log}
}

func (d *Dispatcher) Run(args []string) error {
	req, err := ParseRequest(args)
	if err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			d.println(usageErr.Message)
			return nil
		}
		return err
	}

	if req.Command.touchesStore() {
		if err := d.store.EnsureInitialized(); err != nil {
			return err
		}
	}

	d.log.WithField("command", req.Command).Debug("dispatching")
	return d.Dispatch(req)
}

// Dispatch executes an already parsed request.
func (d *Dispatcher) Dispatch(req Request) error {
	switch req.Command {
	case CommandAdd:
		return d.add(req)
	case CommandUpdate:
		return d.update(req)
	case CommandDelete:
		return d.delete(req)
	case CommandMarkInProgress:
		return d.setStatus(req.ID, domain.StatusInProgress)
	case CommandMarkDone:
		return d.setStatus(req.ID, domain.StatusDone)
	case CommandList:
		return d.list(req)
	case CommandHelp:
		PrintUsage(d.out)
		return nil
	default:
		d.printf("Unknown command: %s\n", req.Raw)
		PrintUsage(d.out)
		return nil
	}
}

func (d *Dispatcher) add(req Request) error {
	task, err := d.tasks.AddTask(req.Name, req.Description, req.Status)
	if err != nil {
		return d.handleError(err, req.ID)
	}
	d.printf("Task added successfully (ID: %d) with status '%s'.\n", task.ID, task.Status)
	return nil
}

func (d *Dispatcher) update(req Request) error {
	var patch domain.TaskPatch
	if req.Name != "" {
		patch.Name = &req.Name
	}
	if req.Description != "" {
		patch.Description = &req.Description
	}
	if req.Status != "" {
		patch.Status = &req.Status
	}

	if _, err := d.tasks.UpdateTask(req.ID, patch); err != nil {
		return d.handleError(err, req.ID)
	}
	d.printf("Task %d updated successfully.\n", req.ID)
	return nil
}

func (d *Dispatcher) delete(req Request) error {
	if _, err := d.tasks.DeleteTask(req.ID); err != nil {
		return d.handleError(err, req.ID)
	}
	d.printf("Task %d deleted successfully.\n", req.ID)
	return nil
}

func (d *Dispatcher) setStatus(id int64, status domain.TaskStatus) error {
	if _, err := d.tasks.SetStatus(id, status); err != nil {
		return d.handleError(err, id)
	}
	d.printf("Task %d marked as %s.\n", id, status)
	return nil
}

func (d *Dispatcher) list(req Request) error {
	tasks, err := d.tasks.ListTasks(req.Filter)
	if err != nil {
		return d.handleError(err, 0)
	}

	if len(tasks) == 0 {
		d.println("No tasks found.")
		return nil
	}
	for _, t := range tasks {
		d.println(formatTask(t))
	}
	return nil
}

// handleError prints validation and lookup failures and swallows them.
// Anything else is a storage failure and is returned.
func (d *Dispatcher) handleError(err error, id int64) error {
	switch {
	case errors.Is(err, service.ErrNameRequired):
		d.println("Please provide a task name.")
	case errors.Is(err, service.ErrInvalidStatus):
		d.printf("Invalid status. Expected one of: %s.\n", statusList())
	case errors.Is(err, service.ErrInvalidID):
		d.printf("Invalid task id: %d\n", id)
	case errors.Is(err, service.ErrNotFound):
		d.printf("No task found with ID %d.\n", id)
	default:
		return err
	}

	d.log.WithError(err).WithField("task_id", id).Info("command rejected")
	return nil
}

func statusList() string {
	names := make([]string, len(domain.Statuses))
	for i, s := range domain.Statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func (d *Dispatcher) println(s string) {
	fmt.Fprintln(d.out, s)
}

func (d *Dispatcher) printf(format string, args ...any) {
	fmt.Fprintf(d.out, format, args...)
}

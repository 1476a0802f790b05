package services

import (
	"context"
	"sync"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
	"tasklist/internal/logging"
	"tasklist/internal/repository/sqlite"
	"tasklist/internal/validation"
)

// ListController owns the in-memory task list shown by a front end. The cache
// is replaced wholesale by Refresh, which runs after every mutation.
type ListController struct {
	repo      sqlite.Repository
	mapper    *domain.TaskMapper
	validator *validation.TaskValidator
	log       *logging.Logger

	mu    sync.Mutex
	tasks []domain.Task
	names []string
}

// Option configures a ListController.
type Option func(*ListController)

// WithLogger replaces the default logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *ListController) {
		c.log = l
	}
}

// NewListController creates a controller over repo with an empty cache. Call
// Refresh before reading it.
func NewListController(repo sqlite.Repository, opts ...Option) *ListController {
	c := &ListController{
		repo:      repo,
		mapper:    domain.NewTaskMapper(),
		validator: validation.NewTaskValidator(),
		log:       logging.Default().WithComponent("list"),
		tasks:     []domain.Task{},
		names:     []string{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Refresh loads every task from the store and replaces the cache.
func (c *ListController) Refresh(ctx context.Context) ([]domain.Task, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.refreshLocked(ctx); err != nil {
		return nil, err
	}
	return c.copyTasks(), nil
}

func (c *ListController) refreshLocked(ctx context.Context) error {
	rows, err := c.repo.ListTasks(ctx)
	if err != nil {
		return err
	}
	tasks := c.mapper.FromDatabaseRows(rows)
	names := make([]string, len(tasks))
	for i, t := range tasks {
		names[i] = t.String()
	}
	c.tasks = tasks
	c.names = names
	c.log.Debugf("refreshed %d tasks", len(tasks))
	return nil
}

func (c *ListController) copyTasks() []domain.Task {
	out := make([]domain.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Tasks returns a copy of the cached list.
func (c *ListController) Tasks() []domain.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyTasks()
}

// Names returns the display names, parallel to Tasks.
func (c *ListController) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// SelectByPosition returns the task at index in the last refresh.
func (c *ListController) SelectByPosition(index int) (domain.Task, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.tasks) {
		return domain.Task{}, errors.NewInvalidInputError("position", "out of range")
	}
	return c.tasks[index], nil
}

// RequestCreate adds a task named name. Surrounding whitespace is trimmed
// before the name is stored. A blank name is refused without a message and
// the store is left alone.
func (c *ListController) RequestCreate(ctx context.Context, name string) (Outcome, error) {
	trimmed, err := c.validator.ValidateTaskName(name)
	if err != nil {
		c.log.Debugf("create refused: %v", err)
		return Outcome{}, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id, err := c.repo.CreateTask(ctx, trimmed)
	if err != nil {
		return Outcome{}, err
	}
	if err := c.refreshLocked(ctx); err != nil {
		return Outcome{}, err
	}

	created := domain.Task{ID: id, Name: trimmed}
	for _, t := range c.tasks {
		if t.ID == id {
			created = t
			break
		}
	}
	return Outcome{Success: true, Message: MessageTaskAdded, Task: created}, nil
}

// RequestUpdate renames task. newName is stored trimmed of surrounding
// whitespace, not as typed. An id that no longer exists is not an error.
func (c *ListController) RequestUpdate(ctx context.Context, task domain.Task, newName string) (Outcome, error) {
	trimmed, err := c.validator.ValidateTaskName(newName)
	if err != nil {
		c.log.Debugf("update of task %d refused: %v", task.ID, err)
		msg := MessageNameRequired
		if verr, ok := err.(*validation.ValidationError); ok {
			msg = verr.GetUserFriendlyMessage()
		}
		return Outcome{Message: msg, Task: task}, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.repo.UpdateTask(ctx, task.ID, trimmed); err != nil {
		return Outcome{}, err
	}
	if err := c.refreshLocked(ctx); err != nil {
		return Outcome{}, err
	}

	task.Name = trimmed
	return Outcome{Success: true, Message: MessageTaskUpdated, Task: task}, nil
}

// RequestDelete removes task. The list is refreshed whether or not a row was
// removed.
func (c *ListController) RequestDelete(ctx context.Context, task domain.Task) (Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	deleted, err := c.repo.DeleteTask(ctx, task.ID)
	if err != nil {
		return Outcome{}, err
	}
	if err := c.refreshLocked(ctx); err != nil {
		return Outcome{}, err
	}

	if !deleted {
		c.log.Debugf("delete of task %d removed nothing", task.ID)
		return Outcome{Message: MessageDeleteFailed, Task: task}, nil
	}
	return Outcome{Success: true, Message: MessageTaskDeleted, Task: task}, nil
}

package domain

import (
	"tasklist/internal/repository/sqlite"
)

// TaskMapper converts task rows into domain tasks.
type TaskMapper struct{}

func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

func (m *TaskMapper) FromDatabase(row sqlite.Task) Task {
	return Task{ID: row.ID, Name: row.Name}
}

// FromDatabaseRows converts rows returned by ListTasks, preserving order.
// The result is never nil.
func (m *TaskMapper) FromDatabaseRows(rows []*sqlite.Task) []Task {
	tasks := make([]Task, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		tasks = append(tasks, m.FromDatabase(*row))
	}
	return tasks
}

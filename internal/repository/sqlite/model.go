package sqlite

// Task is one row of the tasks table.
type Task struct {
	ID   int64
	Name string
}

package domain

// Task is a named item on the task list. ID is assigned by the store when the
// task is created and never changes afterwards.
type Task struct {
	ID   int64
	Name string
}

// String returns the display name used in list rendering.
func (t Task) String() string {
	return t.Name
}

package models

// Task is a single work item within a project. Tasks have no id of
// their own; they are addressed by position in the project's task list.
type Task struct {
	Title   string  `json:"title" yaml:"title"`
	DueDate *string `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	Status  string  `json:"status" yaml:"status"`
}

// NewTask creates a task with status "offen"
func NewTask(title string) Task {
	return Task{
		Title:  title,
		Status: StatusOffen,
	}
}

func (t *Task) normalize() {
	if t.Status == "" {
		t.Status = StatusOffen
	}
	t.DueDate = clearEmpty(t.DueDate)
}

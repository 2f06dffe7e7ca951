// internal/model/task.go
package model

import "time"

// TaskStatus is a task-board column. Tasks have their own lifecycle,
// separate from the campaign workflow.
type TaskStatus string

const (
	TaskToDo        TaskStatus = "to-do"
	TaskInProgress  TaskStatus = "in-progress"
	TaskNeedsReview TaskStatus = "needs-review"
	TaskCompleted   TaskStatus = "completed"
)

// TaskColumns lists the board columns in display order.
func TaskColumns() []TaskStatus {
	return []TaskStatus{TaskToDo, TaskInProgress, TaskNeedsReview, TaskCompleted}
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskToDo, TaskInProgress, TaskNeedsReview, TaskCompleted:
		return true
	}
	return false
}

type Task struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	CampaignID string     `json:"campaign_id"`
	DueDate    time.Time  `json:"due_date"`
	Role       Role       `json:"role"`
	Status     TaskStatus `json:"status"`
	Priority   Priority   `json:"priority"`
	AssigneeID string     `json:"assignee_id,omitempty"`
}

package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// TaskStatus is the lifecycle state of a background task.
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusRunning TaskStatus = "running"
	TaskStatusSuccess TaskStatus = "success"
	TaskStatusFailure TaskStatus = "failure"
)

// TaskResult tracks one run of a background task so callers can poll it.
// Result holds the JSON-encoded task output; Payload exposes it unquoted.
type TaskResult struct {
	ID         string          `gorm:"primaryKey;size:36" json:"task_id"`
	Name       string          `gorm:"size:100;not null;index" json:"name"`
	Status     TaskStatus      `gorm:"type:varchar(20);not null;index" json:"status"`
	Result     string          `gorm:"type:text" json:"-"`
	Payload    json.RawMessage `gorm:"-" json:"result,omitempty"`
	Error      string          `gorm:"type:text" json:"error,omitempty"`
	CreatedAt  time.Time       `gorm:"index" json:"created_at"`
	FinishedAt *time.Time      `json:"finished_at,omitempty"`
}

// AfterFind exposes the stored result as raw JSON.
func (t *TaskResult) AfterFind(_ *gorm.DB) error {
	if t.Result != "" {
		t.Payload = json.RawMessage(t.Result)
	}
	return nil
}

// Done reports whether the task reached a terminal state.
func (t *TaskResult) Done() bool {
	return t.Status == TaskStatusSuccess || t.Status == TaskStatusFailure
}

package model

import (
	"time"
)

// Task tracks one background job (order sync, day/week report) so the
// result endpoint can poll it.
type Task struct {
	ID        uint      `gorm:"primary_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	TaskType  string    `gorm:"size:30" json:"task_type"`
	Status    string    `gorm:"size:20" json:"status"`
	Result    string    `gorm:"size:600" json:"result"`
}

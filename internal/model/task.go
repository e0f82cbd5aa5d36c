package model

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TimeAllDay is used for tasks without a specific time. They never trigger
// due-time notifications.
const TimeAllDay = "all-day"

type Task struct {
	ID        string `json:"id"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Content   string `json:"content" validate:"required"`
	Priority  string `json:"priority" validate:"oneof=high medium low"`
	Completed bool   `json:"completed"`
	Time      string `json:"time" validate:"required"`
}

var taskValidate = validator.New()

func NewTaskID() string {
	return "task_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (t Task) Validate() error {
	if err := taskValidate.Struct(t); err != nil {
		return err
	}
	if t.Time != TimeAllDay {
		return taskValidate.Var(t.Time, "datetime=15:04")
	}
	return nil
}

func (t Task) PriorityIcon() string {
	switch t.Priority {
	case "high":
		return "🔴"
	case "low":
		return "🟢"
	default:
		return "🟡"
	}
}

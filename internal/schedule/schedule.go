// Package schedule holds the time-matching logic behind the watch daemon:
// cron specs for fixed-time jobs and the per-minute due checks for custom
// reminders and daily tasks.
package schedule

import (
	"fmt"
	"log"
	"time"

	"github.com/rainchen/dwr-cli/internal/model"
)

// CronSpec converts "HH:MM" into a six-field cron spec (with seconds) firing
// once a day at that time.
func CronSpec(hhmm string) (string, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return "", fmt.Errorf("invalid time %q (want HH:MM): %w", hhmm, err)
	}
	return fmt.Sprintf("0 %d %d * * *", t.Minute(), t.Hour()), nil
}

// DueReminders returns the custom reminders that should fire at now: enabled,
// time matching the current minute, and for specific-date reminders the date
// matching today. The caller ticks once per minute, so the exact-minute match
// fires each reminder exactly once.
func DueReminders(reminders []model.CustomReminder, now time.Time) []model.CustomReminder {
	var due []model.CustomReminder
	today := now.Format("2006-01-02")

	for _, reminder := range reminders {
		if !reminder.Enabled {
			continue
		}
		reminderTime, err := time.Parse("15:04", reminder.Time)
		if err != nil {
			log.Printf("⚠️ Invalid reminder time %q, skipping", reminder.Time)
			continue
		}

		if now.Hour() != reminderTime.Hour() || now.Minute() != reminderTime.Minute() {
			continue
		}

		if !reminder.Daily {
			if reminder.SpecificDate == "" || reminder.SpecificDate != today {
				continue
			}
		}
		due = append(due, reminder)
	}
	return due
}

// TaskAlert is a single notification produced by the task check.
type TaskAlert struct {
	Task model.Task
	// Upcoming is true for the 30-minutes-ahead heads-up, false for the
	// due-time alert.
	Upcoming bool
}

type taskState struct {
	date     string
	half     bool
	due      bool
	schedule string
}

// TaskNotifier tracks which task alerts already fired today so each fires at
// most once, and re-arms when the user reschedules a task.
type TaskNotifier struct {
	state map[string]*taskState
}

func NewTaskNotifier() *TaskNotifier {
	return &TaskNotifier{state: map[string]*taskState{}}
}

// Reset drops all fired-alert state. Called while reminders are disabled so
// alerts re-arm when they come back on.
func (n *TaskNotifier) Reset() {
	n.state = map[string]*taskState{}
}

// Check returns the alerts due at now for today's timed tasks: a heads-up
// within 30 minutes of the due time and a due alert inside a -5..+1 minute
// window. Completed and all-day tasks never alert.
func (n *TaskNotifier) Check(st *model.Store, now time.Time) []TaskAlert {
	today := now.Format("2006-01-02")

	// Drop state carried over from previous days.
	for key, state := range n.state {
		if state.date != today {
			delete(n.state, key)
		}
	}

	var alerts []TaskAlert
	for _, task := range st.DailyTasks[today] {
		if task.Completed || task.Time == model.TimeAllDay || task.Time == "" {
			continue
		}

		dueTime, err := time.Parse("15:04", task.Time)
		if err != nil {
			log.Printf("⚠️ Invalid task time format: %s", task.Time)
			continue
		}
		due := time.Date(now.Year(), now.Month(), now.Day(), dueTime.Hour(), dueTime.Minute(), 0, 0, now.Location())
		diffMinutes := due.Sub(now).Minutes()

		key := task.ID
		if key == "" {
			key = fmt.Sprintf("%s_%s_%s", today, task.Content, task.Time)
		}
		state, ok := n.state[key]
		if !ok {
			state = &taskState{date: today}
			n.state[key] = state
		}

		// Rescheduling a task re-arms both alerts.
		scheduleKey := today + "_" + task.Time
		if state.schedule != scheduleKey {
			state.schedule = scheduleKey
			state.half = false
			state.due = false
			state.date = today
		}

		if diffMinutes > 0 && diffMinutes <= 30 && !state.half {
			alerts = append(alerts, TaskAlert{Task: task, Upcoming: true})
			state.half = true
		}
		if diffMinutes >= -5 && diffMinutes <= 1 && !state.due {
			alerts = append(alerts, TaskAlert{Task: task, Upcoming: false})
			state.due = true
		}
	}
	return alerts
}

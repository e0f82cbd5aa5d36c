package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rainchen/dwr-cli/internal/model"
)

func AddTask(st *model.Store, task model.Task) (model.Task, error) {
	if task.Priority == "" {
		task.Priority = "medium"
	}
	if task.Time == "" {
		task.Time = model.TimeAllDay
	}
	task.ID = model.NewTaskID()

	if err := task.Validate(); err != nil {
		return model.Task{}, fmt.Errorf("invalid task: %w", err)
	}

	st.DailyTasks[task.Date] = append(st.DailyTasks[task.Date], task)
	return task, nil
}

// FindTask locates a task by its full ID or by a unique ID prefix.
func FindTask(st *model.Store, id string) (string, *model.Task, error) {
	var foundDate string
	var found *model.Task
	matches := 0

	for _, date := range TaskDates(st) {
		tasks := st.DailyTasks[date]
		for i := range tasks {
			if tasks[i].ID == id {
				return date, &tasks[i], nil
			}
			if len(id) >= 8 && strings.HasPrefix(tasks[i].ID, id) {
				foundDate = date
				found = &tasks[i]
				matches++
			}
		}
	}

	switch matches {
	case 0:
		return "", nil, fmt.Errorf("task %q not found", id)
	case 1:
		return foundDate, found, nil
	default:
		return "", nil, fmt.Errorf("task ID prefix %q is ambiguous", id)
	}
}

func MarkTaskDone(st *model.Store, id string) (*model.Task, error) {
	_, task, err := FindTask(st, id)
	if err != nil {
		return nil, err
	}
	task.Completed = true
	return task, nil
}

func RemoveTask(st *model.Store, id string) error {
	date, task, err := FindTask(st, id)
	if err != nil {
		return err
	}

	tasks := st.DailyTasks[date]
	for i := range tasks {
		if tasks[i].ID == task.ID {
			st.DailyTasks[date] = append(tasks[:i], tasks[i+1:]...)
			break
		}
	}
	if len(st.DailyTasks[date]) == 0 {
		delete(st.DailyTasks, date)
	}
	return nil
}

func TasksOn(st *model.Store, date string) []model.Task {
	return st.DailyTasks[date]
}

func TaskDates(st *model.Store) []string {
	dates := make([]string, 0, len(st.DailyTasks))
	for date := range st.DailyTasks {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

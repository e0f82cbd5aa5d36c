package store

import (
	"testing"

	"github.com/rainchen/dwr-cli/internal/model"
)

func TestAddTaskDefaults(t *testing.T) {
	st := model.DefaultStore()

	task, err := AddTask(st, model.Task{Date: "2025-06-01", Content: "ship the batch"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if task.Priority != "medium" {
		t.Fatalf("default priority = %q, want medium", task.Priority)
	}
	if task.Time != model.TimeAllDay {
		t.Fatalf("default time = %q, want %q", task.Time, model.TimeAllDay)
	}
	if task.ID == "" {
		t.Fatal("task ID must be assigned")
	}
}

func TestAddTaskValidation(t *testing.T) {
	st := model.DefaultStore()

	cases := []struct {
		name string
		task model.Task
	}{
		{name: "bad date", task: model.Task{Date: "06/01/2025", Content: "x"}},
		{name: "empty content", task: model.Task{Date: "2025-06-01"}},
		{name: "bad priority", task: model.Task{Date: "2025-06-01", Content: "x", Priority: "urgent"}},
		{name: "bad time", task: model.Task{Date: "2025-06-01", Content: "x", Time: "25:00"}},
	}

	for _, tc := range cases {
		if _, err := AddTask(st, tc.task); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestFindTaskByPrefix(t *testing.T) {
	st := model.DefaultStore()

	task, err := AddTask(st, model.Task{Date: "2025-06-01", Content: "pack orders"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	_, found, err := FindTask(st, task.ID[:13])
	if err != nil {
		t.Fatalf("FindTask by prefix failed: %v", err)
	}
	if found.Content != "pack orders" {
		t.Fatalf("found wrong task: %+v", found)
	}

	if _, _, err := FindTask(st, "task_"); err == nil {
		t.Fatal("short prefix must not match")
	}
	if _, _, err := FindTask(st, "task_nonexistent"); err == nil {
		t.Fatal("unknown ID must not match")
	}
}

func TestMarkTaskDoneAndRemove(t *testing.T) {
	st := model.DefaultStore()

	task, err := AddTask(st, model.Task{Date: "2025-06-01", Content: "call supplier", Time: "14:30"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	done, err := MarkTaskDone(st, task.ID)
	if err != nil {
		t.Fatalf("MarkTaskDone failed: %v", err)
	}
	if !done.Completed {
		t.Fatal("task not marked completed")
	}
	if !st.DailyTasks["2025-06-01"][0].Completed {
		t.Fatal("completion not reflected in the store")
	}

	if err := RemoveTask(st, task.ID); err != nil {
		t.Fatalf("RemoveTask failed: %v", err)
	}
	if _, ok := st.DailyTasks["2025-06-01"]; ok {
		t.Fatal("emptied date should be removed")
	}
}

package schedule

import (
	"testing"
	"time"

	"github.com/rainchen/dwr-cli/internal/model"
)

func TestCronSpec(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{input: "09:00", want: "0 0 9 * * *", ok: true},
		{input: "18:30", want: "0 30 18 * * *", ok: true},
		{input: "00:00", want: "0 0 0 * * *", ok: true},
		{input: "25:00", ok: false},
		{input: "9am", ok: false},
	}

	for _, tc := range cases {
		got, err := CronSpec(tc.input)
		if tc.ok && err != nil {
			t.Fatalf("CronSpec(%q) failed: %v", tc.input, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("CronSpec(%q) should have failed", tc.input)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("CronSpec(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestDueReminders(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	reminders := []model.CustomReminder{
		{Time: "10:00", Content: "on time", Enabled: true, Daily: true},
		{Time: "10:01", Content: "next minute", Enabled: true, Daily: true},
		{Time: "09:59", Content: "last minute", Enabled: true, Daily: true},
		{Time: "10:00", Content: "disabled", Enabled: false, Daily: true},
		{Time: "10:00", Content: "right date", Enabled: true, SpecificDate: "2025-06-02"},
		{Time: "10:00", Content: "wrong date", Enabled: true, SpecificDate: "2025-06-03"},
		{Time: "bogus", Content: "bad time", Enabled: true, Daily: true},
	}

	due := DueReminders(reminders, now)
	want := map[string]bool{"on time": true, "right date": true}
	if len(due) != len(want) {
		t.Fatalf("got %d due reminders, want %d: %+v", len(due), len(want), due)
	}
	for _, reminder := range due {
		if !want[reminder.Content] {
			t.Fatalf("unexpected reminder fired: %q", reminder.Content)
		}
	}
}

func TestDueRemindersFiresOncePerDay(t *testing.T) {
	reminders := []model.CustomReminder{
		{Time: "10:00", Content: "standup", Enabled: true, Daily: true},
	}

	// Minute-by-minute ticks around the due time, like the daemon's cron job.
	fired := 0
	for _, minute := range []int{58, 59, 60, 61, 62} {
		tick := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC).Add(time.Duration(minute) * time.Minute)
		fired += len(DueReminders(reminders, tick))
	}
	if fired != 1 {
		t.Fatalf("reminder fired %d times across consecutive ticks, want 1", fired)
	}
}

func TestTaskNotifierFiresOnce(t *testing.T) {
	st := model.DefaultStore()
	date := time.Date(2025, 6, 2, 13, 40, 0, 0, time.UTC)
	today := date.Format("2006-01-02")

	st.DailyTasks[today] = []model.Task{
		{ID: "task_1", Date: today, Content: "send samples", Priority: "high", Time: "14:00"},
	}

	notifier := NewTaskNotifier()

	alerts := notifier.Check(st, date)
	if len(alerts) != 1 || !alerts[0].Upcoming {
		t.Fatalf("expected one upcoming alert, got %+v", alerts)
	}

	// Same window, no repeat.
	if alerts := notifier.Check(st, date.Add(5*time.Minute)); len(alerts) != 0 {
		t.Fatalf("upcoming alert fired twice: %+v", alerts)
	}

	// Due window.
	alerts = notifier.Check(st, date.Add(20*time.Minute))
	if len(alerts) != 1 || alerts[0].Upcoming {
		t.Fatalf("expected one due alert, got %+v", alerts)
	}
	if alerts := notifier.Check(st, date.Add(21*time.Minute)); len(alerts) != 0 {
		t.Fatalf("due alert fired twice: %+v", alerts)
	}
}

func TestTaskNotifierRearmsOnReschedule(t *testing.T) {
	st := model.DefaultStore()
	now := time.Date(2025, 6, 2, 13, 40, 0, 0, time.UTC)
	today := now.Format("2006-01-02")

	st.DailyTasks[today] = []model.Task{
		{ID: "task_1", Date: today, Content: "send samples", Priority: "high", Time: "14:00"},
	}

	notifier := NewTaskNotifier()
	if alerts := notifier.Check(st, now); len(alerts) != 1 {
		t.Fatalf("expected upcoming alert, got %+v", alerts)
	}

	st.DailyTasks[today][0].Time = "14:05"
	if alerts := notifier.Check(st, now); len(alerts) != 1 {
		t.Fatalf("reschedule must re-arm the alert, got %+v", alerts)
	}
}

func TestTaskNotifierResetRearmsAlerts(t *testing.T) {
	st := model.DefaultStore()
	now := time.Date(2025, 6, 2, 13, 40, 0, 0, time.UTC)
	today := now.Format("2006-01-02")

	st.DailyTasks[today] = []model.Task{
		{ID: "task_1", Date: today, Content: "send samples", Priority: "high", Time: "14:00"},
	}

	notifier := NewTaskNotifier()
	if alerts := notifier.Check(st, now); len(alerts) != 1 {
		t.Fatalf("expected upcoming alert, got %+v", alerts)
	}
	if alerts := notifier.Check(st, now); len(alerts) != 0 {
		t.Fatalf("alert repeated without reset: %+v", alerts)
	}

	notifier.Reset()
	if alerts := notifier.Check(st, now); len(alerts) != 1 {
		t.Fatalf("reset must re-arm the alert, got %+v", alerts)
	}
}

func TestTaskNotifierSkipsAllDayAndCompleted(t *testing.T) {
	st := model.DefaultStore()
	now := time.Date(2025, 6, 2, 13, 59, 0, 0, time.UTC)
	today := now.Format("2006-01-02")

	st.DailyTasks[today] = []model.Task{
		{ID: "task_1", Date: today, Content: "all day", Priority: "low", Time: model.TimeAllDay},
		{ID: "task_2", Date: today, Content: "already done", Priority: "low", Time: "14:00", Completed: true},
	}

	notifier := NewTaskNotifier()
	if alerts := notifier.Check(st, now); len(alerts) != 0 {
		t.Fatalf("expected no alerts, got %+v", alerts)
	}
}

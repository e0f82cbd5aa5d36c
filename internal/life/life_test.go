package life

import (
	"strings"
	"testing"
	"time"

	"github.com/rainchen/dwr-cli/internal/model"
)

func TestComputeInitializesBaseline(t *testing.T) {
	settings := model.LifeSettings{CurrentAge: 30, IdealAge: 80}
	today := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	progress, changed := Compute(&settings, today)
	if !changed {
		t.Fatal("first compute must set the baseline")
	}
	if settings.RemainBaseDate != "2025-06-01" {
		t.Fatalf("baseline date = %q, want 2025-06-01", settings.RemainBaseDate)
	}
	if settings.RemainBaseDays != 50*365 {
		t.Fatalf("baseline days = %d, want %d", settings.RemainBaseDays, 50*365)
	}
	if progress.RemainingDays != 50*365 {
		t.Fatalf("remaining = %d, want %d", progress.RemainingDays, 50*365)
	}
}

func TestComputeRebuildsPartialBaseline(t *testing.T) {
	// Only the date survived in the document; without base days the
	// countdown would sit at zero forever.
	settings := model.LifeSettings{
		CurrentAge:     30,
		IdealAge:       80,
		RemainBaseDate: "2024-01-01",
	}
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	progress, changed := Compute(&settings, today)
	if !changed {
		t.Fatal("incomplete baseline must be re-derived")
	}
	if settings.RemainBaseDate != "2025-06-01" {
		t.Fatalf("baseline date = %q, want 2025-06-01", settings.RemainBaseDate)
	}
	if progress.RemainingDays != 50*365 {
		t.Fatalf("remaining = %d, want %d", progress.RemainingDays, 50*365)
	}
}

func TestComputeDecrementsDaily(t *testing.T) {
	settings := model.LifeSettings{
		CurrentAge:     30,
		IdealAge:       80,
		RemainBaseDays: 18250,
		RemainBaseDate: "2025-06-01",
	}

	progress, changed := Compute(&settings, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC))
	if changed {
		t.Fatal("existing baseline must not be modified")
	}
	if progress.RemainingDays != 18240 {
		t.Fatalf("remaining = %d, want 18240", progress.RemainingDays)
	}
	if !strings.Contains(progress.DaysText, "18,240") {
		t.Fatalf("days text = %q, want thousands separator", progress.DaysText)
	}
}

func TestComputeClampsAtZero(t *testing.T) {
	settings := model.LifeSettings{
		CurrentAge:     79,
		IdealAge:       80,
		RemainBaseDays: 10,
		RemainBaseDate: "2020-01-01",
	}

	progress, _ := Compute(&settings, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if progress.RemainingDays != 0 {
		t.Fatalf("remaining = %d, want 0", progress.RemainingDays)
	}
	if progress.Value != 1 {
		t.Fatalf("progress = %v, want 1", progress.Value)
	}
}

func TestComputeStages(t *testing.T) {
	cases := []struct {
		age  int
		icon string
	}{
		{age: 5, icon: "👶"},
		{age: 20, icon: "🧑"},
		{age: 40, icon: "👨"},
		{age: 60, icon: "👴"},
	}

	for _, tc := range cases {
		settings := model.LifeSettings{CurrentAge: tc.age, IdealAge: 80}
		progress, _ := Compute(&settings, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
		if progress.StageIcon != tc.icon {
			t.Fatalf("age %d: icon = %q, want %q", tc.age, progress.StageIcon, tc.icon)
		}
	}
}

func TestReset(t *testing.T) {
	settings := model.LifeSettings{
		CurrentAge:     30,
		IdealAge:       80,
		RemainBaseDays: 18250,
		RemainBaseDate: "2025-06-01",
	}

	Reset(&settings, 35, 90)
	if settings.RemainBaseDate != "" || settings.RemainBaseDays != 0 {
		t.Fatalf("Reset did not clear the baseline: %+v", settings)
	}

	progress, changed := Compute(&settings, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	if !changed {
		t.Fatal("compute after reset must re-derive the baseline")
	}
	if progress.RemainingDays != 55*365 {
		t.Fatalf("remaining = %d, want %d", progress.RemainingDays, 55*365)
	}
}

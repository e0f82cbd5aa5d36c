// Package life computes the remaining-days countdown shown by `dwr life`.
package life

import (
	"fmt"
	"time"

	"github.com/rainchen/dwr-cli/internal/model"
)

type Progress struct {
	// Value is the elapsed share of the ideal lifespan, in [0, 1].
	Value         float64
	StageIcon     string
	StageText     string
	RemainingDays int
	DaysText      string
}

// Compute derives the countdown from the persisted baseline. On first use
// (or after `life set`) the baseline is initialized to
// (ideal-current)*365 days at today's date; afterwards the remaining days
// simply decrement with the calendar. The returned bool reports whether the
// settings were modified and should be saved.
func Compute(settings *model.LifeSettings, today time.Time) (Progress, bool) {
	currentAge := settings.CurrentAge
	idealAge := settings.IdealAge
	if idealAge <= 0 {
		idealAge = 80
	}

	todayStr := today.Format("2006-01-02")
	changed := false

	// A document missing either half of the baseline gets a fresh one,
	// so a lone date can't pin the countdown at zero.
	if settings.RemainBaseDate == "" || settings.RemainBaseDays == 0 {
		settings.RemainBaseDays = max(idealAge-currentAge, 0) * 365
		settings.RemainBaseDate = todayStr
		changed = true
	}

	baseDate, err := time.Parse("2006-01-02", settings.RemainBaseDate)
	if err != nil {
		baseDate = today
	}

	elapsed := int(today.Sub(baseDate).Hours() / 24)
	remaining := settings.RemainBaseDays - max(elapsed, 0)
	if remaining < 0 {
		remaining = 0
	}

	var stageIcon, stageText string
	switch {
	case currentAge < 12:
		stageIcon, stageText = "👶", "childhood"
	case currentAge < 30:
		stageIcon, stageText = "🧑", "youth"
	case currentAge < 50:
		stageIcon, stageText = "👨", "midlife"
	default:
		stageIcon, stageText = "👴", "senior"
	}

	idealTotalDays := max(idealAge, 1) * 365
	elapsedDays := idealTotalDays - remaining
	if elapsedDays < 0 {
		elapsedDays = 0
	}
	value := float64(elapsedDays) / float64(idealTotalDays)
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}

	return Progress{
		Value:         value,
		StageIcon:     stageIcon,
		StageText:     stageText,
		RemainingDays: remaining,
		DaysText:      fmt.Sprintf("%s days left", formatThousands(remaining)),
	}, changed
}

// Reset drops the countdown baseline so the next Compute re-derives it from
// the given ages.
func Reset(settings *model.LifeSettings, currentAge, idealAge int) {
	settings.CurrentAge = currentAge
	settings.IdealAge = idealAge
	settings.RemainBaseDays = 0
	settings.RemainBaseDate = ""
}

func formatThousands(n int) string {
	s := fmt.Sprint(n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}

package store

import (
	"fmt"

	"github.com/rainchen/dwr-cli/internal/model"
)

func AddReminder(st *model.Store, reminder model.CustomReminder) error {
	if err := reminder.Validate(); err != nil {
		return fmt.Errorf("invalid reminder: %w", err)
	}
	st.CustomReminders = append(st.CustomReminders, reminder)
	return nil
}

func RemoveReminder(st *model.Store, index int) (model.CustomReminder, error) {
	if index < 0 || index >= len(st.CustomReminders) {
		return model.CustomReminder{}, fmt.Errorf("reminder #%d does not exist", index+1)
	}
	removed := st.CustomReminders[index]
	st.CustomReminders = append(st.CustomReminders[:index], st.CustomReminders[index+1:]...)
	return removed, nil
}

// ToggleReminder flips the enabled flag and returns the new state.
func ToggleReminder(st *model.Store, index int) (bool, error) {
	if index < 0 || index >= len(st.CustomReminders) {
		return false, fmt.Errorf("reminder #%d does not exist", index+1)
	}
	st.CustomReminders[index].Enabled = !st.CustomReminders[index].Enabled
	return st.CustomReminders[index].Enabled, nil
}

func SetClockSettings(st *model.Store, settings model.ClockSettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid clock settings: %w", err)
	}
	st.ClockSettings = settings
	return nil
}

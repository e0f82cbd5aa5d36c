package model

import "fmt"

// Store is the whole application document persisted as data.json. It is
// loaded wholesale at startup and written wholesale on every mutation.
type Store struct {
	WorkPlan          map[string]string  `json:"work_plan"`
	ShippingOrders    map[string][]Order `json:"shipping_orders"`
	PreShippingOrders map[string][]Order `json:"pre_shipping_orders"`
	DailyTasks        map[string][]Task  `json:"daily_tasks"`
	ReminderEnabled   bool               `json:"reminder_enabled"`
	ReminderInterval  int                `json:"reminder_interval"`
	ExcelDir          string             `json:"excel_dir"`
	LifeSettings      LifeSettings       `json:"life_settings"`
	FestivalReminders map[string]string  `json:"festival_reminders"`
	ClockSettings     ClockSettings      `json:"clock_settings"`
	CustomReminders   []CustomReminder   `json:"custom_reminders"`
}

// DefaultStore returns the document with every key populated. Loading
// unmarshals on top of this value, so keys missing from an existing
// data.json keep their defaults.
func DefaultStore() *Store {
	workPlan := make(map[string]string, 7)
	for i := 0; i < 7; i++ {
		workPlan[fmt.Sprint(i)] = fmt.Sprintf("Day %d: not planned yet", i+1)
	}

	return &Store{
		WorkPlan:          workPlan,
		ShippingOrders:    map[string][]Order{},
		PreShippingOrders: map[string][]Order{},
		DailyTasks:        map[string][]Task{},
		ReminderEnabled:   true,
		ReminderInterval:  120,
		LifeSettings:      LifeSettings{CurrentAge: 25, IdealAge: 80},
		FestivalReminders: map[string]string{
			"01-01": "元旦",
			"02-14": "情人节",
			"05-01": "劳动节",
			"10-01": "国庆节",
		},
		ClockSettings: ClockSettings{
			ClockInTime:     "09:00",
			ClockOutTime:    "18:00",
			ClockInMessage:  "Work time, remember to clock in!",
			ClockOutMessage: "Time to leave, remember to clock out!",
		},
		CustomReminders: []CustomReminder{},
	}
}

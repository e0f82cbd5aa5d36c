package model

import "github.com/go-playground/validator/v10"

type CustomReminder struct {
	Time         string `json:"time" validate:"required,datetime=15:04"`
	Content      string `json:"content" validate:"required"`
	Enabled      bool   `json:"enabled"`
	Daily        bool   `json:"daily"`
	SpecificDate string `json:"specific_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type ClockSettings struct {
	ClockInEnabled  bool   `json:"clock_in_enabled"`
	ClockOutEnabled bool   `json:"clock_out_enabled"`
	ClockInTime     string `json:"clock_in_time" validate:"datetime=15:04"`
	ClockOutTime    string `json:"clock_out_time" validate:"datetime=15:04"`
	ClockInMessage  string `json:"clock_in_message"`
	ClockOutMessage string `json:"clock_out_message"`
}

var reminderValidate = validator.New()

func (r CustomReminder) Validate() error {
	return reminderValidate.Struct(r)
}

func (c ClockSettings) Validate() error {
	return reminderValidate.Struct(c)
}

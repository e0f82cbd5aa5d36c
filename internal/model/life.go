package model

type LifeSettings struct {
	CurrentAge int `json:"current_age"`
	IdealAge   int `json:"ideal_age"`
	// Baseline for the daily countdown: remaining days recorded on
	// RemainBaseDate, decremented by calendar days since.
	RemainBaseDays int    `json:"remain_base_days,omitempty"`
	RemainBaseDate string `json:"remain_base_date,omitempty"`
}

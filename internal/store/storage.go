package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rainchen/dwr-cli/internal/model"
)

func DataFilePath(config model.Config) string {
	return filepath.Join(config.DataDir, "data.json")
}

// LoadStore reads data.json and merges it over the defaults, so documents
// written by older versions keep working. A missing file yields the default
// document.
func LoadStore(config model.Config) (*model.Store, error) {
	st := model.DefaultStore()
	dataPath := DataFilePath(config)

	if _, err := os.Stat(dataPath); os.IsNotExist(err) {
		applyDerivedDefaults(st, config)
		return st, nil
	} else if err != nil {
		return nil, fmt.Errorf("❌ Failed to check data file: %w", err)
	}

	jsonBytes, err := os.ReadFile(dataPath)
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to read data file: %w", err)
	}

	if len(jsonBytes) > 0 {
		if err := mergeDocument(st, jsonBytes); err != nil {
			return nil, fmt.Errorf("❌ Failed to parse data file (%s): %w", dataPath, err)
		}
	}

	applyDerivedDefaults(st, config)
	return st, nil
}

// mergeDocument overwrites default fields with those actually present in the
// file. Key presence decides, so a saved `false` or an emptied map wins over
// the default while missing keys keep theirs.
func mergeDocument(st *model.Store, jsonBytes []byte) error {
	var doc model.Store
	if err := json.Unmarshal(jsonBytes, &doc); err != nil {
		return err
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(jsonBytes, &present); err != nil {
		return err
	}

	if _, ok := present["work_plan"]; ok {
		st.WorkPlan = doc.WorkPlan
	}
	if _, ok := present["shipping_orders"]; ok {
		st.ShippingOrders = doc.ShippingOrders
	}
	if _, ok := present["pre_shipping_orders"]; ok {
		st.PreShippingOrders = doc.PreShippingOrders
	}
	if _, ok := present["daily_tasks"]; ok {
		st.DailyTasks = doc.DailyTasks
	}
	if _, ok := present["reminder_enabled"]; ok {
		st.ReminderEnabled = doc.ReminderEnabled
	}
	if _, ok := present["reminder_interval"]; ok {
		st.ReminderInterval = doc.ReminderInterval
	}
	if _, ok := present["excel_dir"]; ok {
		st.ExcelDir = doc.ExcelDir
	}
	if _, ok := present["life_settings"]; ok {
		st.LifeSettings = doc.LifeSettings
	}
	if _, ok := present["festival_reminders"]; ok {
		st.FestivalReminders = doc.FestivalReminders
	}
	if _, ok := present["clock_settings"]; ok {
		st.ClockSettings = doc.ClockSettings
	}
	if _, ok := present["custom_reminders"]; ok {
		st.CustomReminders = doc.CustomReminders
	}

	if st.ShippingOrders == nil {
		st.ShippingOrders = map[string][]model.Order{}
	}
	if st.PreShippingOrders == nil {
		st.PreShippingOrders = map[string][]model.Order{}
	}
	if st.DailyTasks == nil {
		st.DailyTasks = map[string][]model.Task{}
	}
	if st.FestivalReminders == nil {
		st.FestivalReminders = map[string]string{}
	}
	return nil
}

// SaveStore writes the whole document back, keeping a `.backup` copy of the
// previous contents.
func SaveStore(st *model.Store, config model.Config) error {
	dataPath := DataFilePath(config)

	if err := os.MkdirAll(filepath.Dir(dataPath), 0755); err != nil {
		return fmt.Errorf("❌ Failed to create data directory: %w", err)
	}

	if previous, err := os.ReadFile(dataPath); err == nil {
		if err := os.WriteFile(dataPath+".backup", previous, 0644); err != nil {
			log.Printf("⚠️ Failed to write backup copy: %v", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("❌ Failed to convert to JSON: %w", err)
	}

	if err := os.WriteFile(dataPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("❌ Failed to write data file: %w", err)
	}

	return nil
}

func applyDerivedDefaults(st *model.Store, config model.Config) {
	if st.ExcelDir == "" {
		st.ExcelDir = filepath.Join(config.DataDir, "orders_import")
	}
	if st.ReminderInterval <= 0 {
		st.ReminderInterval = 120
	}
}

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rainchen/dwr-cli/internal/model"
)

func testConfig(t *testing.T) model.Config {
	t.Helper()
	config := model.DefaultConfig()
	config.DataDir = t.TempDir()
	return config
}

func TestLoadStoreMissingFile(t *testing.T) {
	config := testConfig(t)

	st, err := LoadStore(config)
	if err != nil {
		t.Fatalf("LoadStore failed: %v", err)
	}
	if !st.ReminderEnabled {
		t.Fatal("reminders should default to enabled")
	}
	if st.ReminderInterval != 120 {
		t.Fatalf("default interval = %d, want 120", st.ReminderInterval)
	}
	if st.ExcelDir != filepath.Join(config.DataDir, "orders_import") {
		t.Fatalf("unexpected default excel dir: %s", st.ExcelDir)
	}
	if st.FestivalReminders["10-01"] != "国庆节" {
		t.Fatal("default festivals missing")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	config := testConfig(t)

	st, err := LoadStore(config)
	if err != nil {
		t.Fatalf("LoadStore failed: %v", err)
	}
	st.WorkPlan["0"] = "weekly review"
	st.ReminderEnabled = false
	if err := AddOrder(st, true, model.DateTBD, model.Order{Number: "PO-1", Remark: "sample"}); err != nil {
		t.Fatalf("AddOrder failed: %v", err)
	}

	if err := SaveStore(st, config); err != nil {
		t.Fatalf("SaveStore failed: %v", err)
	}

	loaded, err := LoadStore(config)
	if err != nil {
		t.Fatalf("LoadStore after save failed: %v", err)
	}
	if loaded.WorkPlan["0"] != "weekly review" {
		t.Fatalf("work plan not persisted: %q", loaded.WorkPlan["0"])
	}
	if loaded.ReminderEnabled {
		t.Fatal("saved false must win over the default true")
	}
	if loaded.PreShippingOrders[model.DateTBD][0].Remark != "sample" {
		t.Fatal("pre-shipping order not persisted")
	}
}

func TestSaveStoreKeepsBackup(t *testing.T) {
	config := testConfig(t)

	st, _ := LoadStore(config)
	st.WorkPlan["0"] = "first"
	if err := SaveStore(st, config); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	first, err := os.ReadFile(DataFilePath(config))
	if err != nil {
		t.Fatalf("failed to read data file: %v", err)
	}

	st.WorkPlan["0"] = "second"
	if err := SaveStore(st, config); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	backup, err := os.ReadFile(DataFilePath(config) + ".backup")
	if err != nil {
		t.Fatalf("backup copy missing: %v", err)
	}
	if string(backup) != string(first) {
		t.Fatal("backup should hold the previous contents")
	}
}

func TestLoadStoreMergesPartialDocument(t *testing.T) {
	config := testConfig(t)

	partial := `{"work_plan": {"0": "only monday"}}`
	if err := os.MkdirAll(config.DataDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(DataFilePath(config), []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	st, err := LoadStore(config)
	if err != nil {
		t.Fatalf("LoadStore failed: %v", err)
	}
	if st.WorkPlan["0"] != "only monday" {
		t.Fatalf("work plan not merged: %q", st.WorkPlan["0"])
	}
	if len(st.FestivalReminders) == 0 {
		t.Fatal("missing keys must keep their defaults")
	}
	if !st.ReminderEnabled {
		t.Fatal("missing reminder_enabled must keep the default true")
	}
}

func TestLoadStoreRespectsEmptiedFestivals(t *testing.T) {
	config := testConfig(t)

	doc := `{"festival_reminders": {}}`
	if err := os.MkdirAll(config.DataDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(DataFilePath(config), []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	st, err := LoadStore(config)
	if err != nil {
		t.Fatalf("LoadStore failed: %v", err)
	}
	if len(st.FestivalReminders) != 0 {
		t.Fatalf("deleted festivals came back: %v", st.FestivalReminders)
	}
}

func TestLoadStoreParsesLegacyStringOrders(t *testing.T) {
	config := testConfig(t)

	doc := `{"pre_shipping_orders": {"2025-01-01": ["PO-old", {"order": "PO-new", "status": "making"}]}}`
	if err := os.MkdirAll(config.DataDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(DataFilePath(config), []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	st, err := LoadStore(config)
	if err != nil {
		t.Fatalf("LoadStore failed: %v", err)
	}

	orders := st.PreShippingOrders["2025-01-01"]
	if len(orders) != 2 {
		t.Fatalf("parsed %d orders, want 2", len(orders))
	}
	if orders[0].Number != "PO-old" || !orders[0].Legacy() {
		t.Fatalf("legacy entry parsed wrong: %+v", orders[0])
	}
	if orders[1].Status != model.StatusMaking {
		t.Fatalf("object entry parsed wrong: %+v", orders[1])
	}
}

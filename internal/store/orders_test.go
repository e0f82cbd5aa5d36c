package store

import (
	"testing"
	"time"

	"github.com/rainchen/dwr-cli/internal/model"
)

func dayOffset(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestAddOrder(t *testing.T) {
	st := model.DefaultStore()
	today := dayOffset(0)

	if err := AddOrder(st, false, today, model.Order{Number: "SO-1"}); err != nil {
		t.Fatalf("AddOrder failed: %v", err)
	}
	if got := st.ShippingOrders[today][0].Status; got != model.StatusPending {
		t.Fatalf("default status = %q, want %q", got, model.StatusPending)
	}

	if err := AddOrder(st, false, today, model.Order{Number: "SO-1"}); err == nil {
		t.Fatal("expected duplicate order to be rejected")
	}

	if err := AddOrder(st, false, model.DateTBD, model.Order{Number: "SO-2"}); err == nil {
		t.Fatal("expected TBD to be rejected for shipping orders")
	}
	if err := AddOrder(st, true, model.DateTBD, model.Order{Number: "PO-1"}); err != nil {
		t.Fatalf("TBD should be allowed for pre-shipping orders: %v", err)
	}
}

func TestAutoSyncMovesCompletedOrders(t *testing.T) {
	st := model.DefaultStore()
	yesterday := dayOffset(-1)

	st.PreShippingOrders[yesterday] = []model.Order{
		{Number: "PO-1", Status: model.StatusDone, Remark: "urgent"},
		{Number: "PO-2", Status: model.StatusDone},
	}

	if moved := AutoSync(st); moved != 2 {
		t.Fatalf("AutoSync moved %d orders, want 2", moved)
	}

	if _, ok := st.PreShippingOrders[yesterday]; ok {
		t.Fatal("emptied pre-shipping date should be removed")
	}

	shipped := st.ShippingOrders[yesterday]
	if len(shipped) != 2 {
		t.Fatalf("shipping orders = %d, want 2", len(shipped))
	}
	if shipped[0].Remark != "urgent [auto-synced]" {
		t.Fatalf("remark = %q, want %q", shipped[0].Remark, "urgent [auto-synced]")
	}
	if shipped[1].Remark != "[auto-synced]" {
		t.Fatalf("remark = %q, want %q", shipped[1].Remark, "[auto-synced]")
	}
}

func TestAutoSyncKeepsUnfinishedAndLegacy(t *testing.T) {
	st := model.DefaultStore()
	yesterday := dayOffset(-1)

	st.PreShippingOrders[yesterday] = []model.Order{
		{Number: "PO-1", Status: model.StatusMaking},
		{Number: "PO-2", Status: model.StatusPaused},
		{Number: "PO-3"}, // legacy, no status
		{Number: "PO-4", Status: model.StatusDone},
	}

	if moved := AutoSync(st); moved != 1 {
		t.Fatalf("AutoSync moved %d orders, want 1", moved)
	}

	kept := st.PreShippingOrders[yesterday]
	if len(kept) != 3 {
		t.Fatalf("kept %d pre-shipping orders, want 3", len(kept))
	}
	for _, order := range kept {
		if order.Number == "PO-4" {
			t.Fatal("completed order should have been moved")
		}
	}
}

func TestAutoSyncSkipsTBDAndFutureDates(t *testing.T) {
	st := model.DefaultStore()
	tomorrow := dayOffset(1)

	st.PreShippingOrders[model.DateTBD] = []model.Order{
		{Number: "PO-1", Status: model.StatusDone},
	}
	st.PreShippingOrders[tomorrow] = []model.Order{
		{Number: "PO-2", Status: model.StatusDone},
	}

	if moved := AutoSync(st); moved != 0 {
		t.Fatalf("AutoSync moved %d orders, want 0", moved)
	}
	if len(st.PreShippingOrders[model.DateTBD]) != 1 {
		t.Fatal("TBD orders must never be auto-synced")
	}
	if len(st.PreShippingOrders[tomorrow]) != 1 {
		t.Fatal("future orders must never be auto-synced")
	}
}

func TestAutoSyncSkipsDuplicateTargets(t *testing.T) {
	st := model.DefaultStore()
	yesterday := dayOffset(-1)

	st.ShippingOrders[yesterday] = []model.Order{{Number: "PO-1", Status: model.StatusDone}}
	st.PreShippingOrders[yesterday] = []model.Order{{Number: "PO-1", Status: model.StatusDone}}

	if moved := AutoSync(st); moved != 0 {
		t.Fatalf("AutoSync moved %d orders, want 0", moved)
	}
	if len(st.ShippingOrders[yesterday]) != 1 {
		t.Fatal("duplicate order must not be appended twice")
	}
}

func TestCycleOrderStatus(t *testing.T) {
	st := model.DefaultStore()
	today := dayOffset(0)
	st.PreShippingOrders[today] = []model.Order{{Number: "PO-1", Status: model.StatusPending}}

	want := []model.OrderStatus{model.StatusMaking, model.StatusDone, model.StatusPaused, model.StatusPending}
	for _, expected := range want {
		got, err := CycleOrderStatus(st, true, today, "PO-1")
		if err != nil {
			t.Fatalf("CycleOrderStatus failed: %v", err)
		}
		if got != expected {
			t.Fatalf("cycled to %q, want %q", got, expected)
		}
	}
}

func TestMoveOrder(t *testing.T) {
	st := model.DefaultStore()
	from := dayOffset(1)
	to := dayOffset(3)
	st.PreShippingOrders[from] = []model.Order{{Number: "PO-1", Status: model.StatusMaking, Remark: "rush"}}

	if err := MoveOrder(st, "PO-1", "", to); err != nil {
		t.Fatalf("MoveOrder failed: %v", err)
	}

	if _, ok := st.PreShippingOrders[from]; ok {
		t.Fatal("source date should be removed once empty")
	}
	moved := st.PreShippingOrders[to][0]
	if moved.Status != model.StatusMaking || moved.Remark != "rush" {
		t.Fatalf("moved order lost fields: %+v", moved)
	}
}

func TestDueIncompleteAndConfirm(t *testing.T) {
	st := model.DefaultStore()
	yesterday := dayOffset(-1)
	tomorrow := dayOffset(1)

	st.PreShippingOrders[yesterday] = []model.Order{
		{Number: "PO-1", Status: model.StatusMaking},
		{Number: "PO-2", Status: model.StatusDone},
	}
	st.PreShippingOrders[tomorrow] = []model.Order{
		{Number: "PO-3", Status: model.StatusPending},
	}

	due := DueIncomplete(st)
	if len(due) != 1 || due[0].Order.Number != "PO-1" {
		t.Fatalf("DueIncomplete = %+v, want just PO-1", due)
	}

	if moved := ConfirmDue(st, nil); moved != 2 {
		t.Fatalf("ConfirmDue moved %d orders, want 2", moved)
	}
	if len(st.ShippingOrders[yesterday]) != 2 {
		t.Fatalf("shipping orders = %d, want 2", len(st.ShippingOrders[yesterday]))
	}
	if len(st.PreShippingOrders[tomorrow]) != 1 {
		t.Fatal("future order should be untouched")
	}
}

func TestSortedDates(t *testing.T) {
	collection := map[string][]model.Order{
		"2025-01-02":  nil,
		"2025-03-01":  nil,
		model.DateTBD: nil,
		"2024-12-31":  nil,
	}

	got := SortedDates(collection)
	want := []string{"2025-03-01", "2025-01-02", "2024-12-31", model.DateTBD}
	if len(got) != len(want) {
		t.Fatalf("SortedDates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortedDates = %v, want %v", got, want)
		}
	}
}

package importer

import (
	"path/filepath"
	"testing"

	"github.com/rainchen/dwr-cli/internal/model"
	"github.com/xuri/excelize/v2"
)

func writeXlsx(t *testing.T, path string, rows [][]string) {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			axis, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to build cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, axis, cell); err != nil {
				t.Fatalf("failed to set cell: %v", err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save xlsx: %v", err)
	}
}

func TestImportDir(t *testing.T) {
	dir := t.TempDir()
	writeXlsx(t, filepath.Join(dir, "orders.xlsx"), [][]string{
		{"日期", "订单号", "类型"},
		{"2025-06-01", "SO-1", "发货"},
		{"2025/06/02", "PO-1", "预发货"},
		{"2025-06-01", "SO-2", ""},
	})

	st := model.DefaultStore()
	count, err := ImportDir(st, dir)
	if err != nil {
		t.Fatalf("ImportDir failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("imported %d orders, want 3", count)
	}

	shipping := st.ShippingOrders["2025-06-01"]
	if len(shipping) != 2 {
		t.Fatalf("shipping orders = %d, want 2", len(shipping))
	}
	if shipping[0].Status != model.StatusPending {
		t.Fatalf("imported status = %q, want pending", shipping[0].Status)
	}

	pre := st.PreShippingOrders["2025-06-02"]
	if len(pre) != 1 || pre[0].Number != "PO-1" {
		t.Fatalf("pre-shipping orders = %+v, want PO-1", pre)
	}
}

func TestImportDirSkipsDuplicatesAndBadRows(t *testing.T) {
	dir := t.TempDir()
	writeXlsx(t, filepath.Join(dir, "orders.xlsx"), [][]string{
		{"日期", "订单号", "类型"},
		{"2025-06-01", "SO-1", "发货"},
		{"2025-06-01", "SO-1", "发货"},
		{"someday", "SO-2", "发货"},
		{"2025-06-01", "", "发货"},
	})

	st := model.DefaultStore()
	st.ShippingOrders["2025-06-01"] = []model.Order{{Number: "SO-0", Status: model.StatusDone}}

	count, err := ImportDir(st, dir)
	if err != nil {
		t.Fatalf("ImportDir failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("imported %d orders, want 1", count)
	}
	if len(st.ShippingOrders["2025-06-01"]) != 2 {
		t.Fatalf("shipping orders = %+v", st.ShippingOrders["2025-06-01"])
	}
}

func TestImportDirMissingDirectory(t *testing.T) {
	st := model.DefaultStore()

	count, err := ImportDir(st, filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing directory must not error: %v", err)
	}
	if count != 0 {
		t.Fatalf("imported %d orders, want 0", count)
	}
}

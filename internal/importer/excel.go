// Package importer reads order rows from .xlsx files into the store.
package importer

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rainchen/dwr-cli/internal/model"
	"github.com/xuri/excelize/v2"
)

// Column layout expected in import files: date, order number, type keyword.
// The first row is treated as a header. A type containing 发货 lands in the
// shipping collection, everything else is a pre-shipping order.
const shippingKeyword = "发货"

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
	"2006.01.02",
	"01-02-06",
	"1/2/06",
}

// ImportDir imports every .xlsx file under dir and returns the number of
// orders added. Files or rows that cannot be parsed are skipped with a log
// line, matching the tolerant behavior expected from a drop folder.
func ImportDir(st *model.Store, dir string) (int, error) {
	if dir == "" {
		return 0, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return 0, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	if err != nil {
		return 0, fmt.Errorf("failed to scan import directory %s: %w", dir, err)
	}

	count := 0
	for _, file := range files {
		n, err := importFile(st, file)
		if err != nil {
			log.Printf("❌ Failed to read Excel file %s: %v", file, err)
			continue
		}
		count += n
	}
	return count, nil
}

func importFile(st *model.Store, path string) (int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("⚠️ Failed to close %s: %v", path, err)
		}
	}()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return 0, err
	}

	count := 0
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		dateISO, err := parseDate(strings.TrimSpace(row[0]))
		if err != nil {
			log.Printf("⚠️ Invalid date format in file %s: %s", path, row[0])
			continue
		}

		var number, typ string
		if len(row) > 1 {
			number = strings.TrimSpace(row[1])
		}
		if len(row) > 2 {
			typ = strings.TrimSpace(row[2])
		}
		if number == "" {
			continue
		}
		if typ == "" {
			typ = shippingKeyword
		}

		collection := st.PreShippingOrders
		if strings.Contains(typ, shippingKeyword) {
			collection = st.ShippingOrders
		}

		if hasOrder(collection[dateISO], number) {
			continue
		}
		collection[dateISO] = append(collection[dateISO], model.Order{
			Number: number,
			Status: model.StatusPending,
		})
		count++
	}
	return count, nil
}

func parseDate(s string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", s)
}

func hasOrder(orders []model.Order, number string) bool {
	for _, order := range orders {
		if order.Number == number {
			return true
		}
	}
	return false
}

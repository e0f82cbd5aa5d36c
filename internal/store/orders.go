package store

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/rainchen/dwr-cli/internal/model"
)

func TodayStr() string {
	return time.Now().Format("2006-01-02")
}

// Collection returns the requested order collection.
func Collection(st *model.Store, pre bool) map[string][]model.Order {
	if pre {
		return st.PreShippingOrders
	}
	return st.ShippingOrders
}

// ValidOrderDate accepts ISO dates plus the TBD sentinel for pre-shipping
// orders.
func ValidOrderDate(date string, pre bool) error {
	if date == model.DateTBD {
		if !pre {
			return fmt.Errorf("date %q is only allowed for pre-shipping orders", model.DateTBD)
		}
		return nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", date, err)
	}
	return nil
}

func containsOrder(orders []model.Order, number string) bool {
	for _, order := range orders {
		if order.Number == number {
			return true
		}
	}
	return false
}

func AddOrder(st *model.Store, pre bool, date string, order model.Order) error {
	if order.Number == "" {
		return fmt.Errorf("order number must not be empty")
	}
	if err := ValidOrderDate(date, pre); err != nil {
		return err
	}

	collection := Collection(st, pre)
	if containsOrder(collection[date], order.Number) {
		return fmt.Errorf("order %q already exists on %s", order.Number, date)
	}
	if order.Status == "" {
		order.Status = model.StatusPending
	}

	collection[date] = append(collection[date], order)
	return nil
}

func RemoveOrder(st *model.Store, pre bool, date, number string) error {
	collection := Collection(st, pre)
	orders, ok := collection[date]
	if !ok {
		return fmt.Errorf("no orders on %s", date)
	}

	for i, order := range orders {
		if order.Number == number {
			collection[date] = append(orders[:i], orders[i+1:]...)
			if len(collection[date]) == 0 {
				delete(collection, date)
			}
			return nil
		}
	}
	return fmt.Errorf("order %q not found on %s", number, date)
}

// FindOrder locates an order by number. When date is empty every date is
// searched, newest first.
func FindOrder(st *model.Store, pre bool, date, number string) (string, *model.Order, error) {
	collection := Collection(st, pre)

	dates := []string{date}
	if date == "" {
		dates = SortedDates(collection)
	}

	for _, d := range dates {
		orders := collection[d]
		for i := range orders {
			if orders[i].Number == number {
				return d, &orders[i], nil
			}
		}
	}
	return "", nil, fmt.Errorf("order %q not found", number)
}

func SetOrderStatus(st *model.Store, pre bool, date, number string, status model.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid status %q", status)
	}
	_, order, err := FindOrder(st, pre, date, number)
	if err != nil {
		return err
	}
	order.Status = status
	return nil
}

// CycleOrderStatus advances the status one step and returns the new value.
func CycleOrderStatus(st *model.Store, pre bool, date, number string) (model.OrderStatus, error) {
	_, order, err := FindOrder(st, pre, date, number)
	if err != nil {
		return "", err
	}
	order.Status = order.Status.Next()
	return order.Status, nil
}

// MoveOrder moves a pre-shipping order to another date (or TBD), keeping its
// status and remark.
func MoveOrder(st *model.Store, number, fromDate, toDate string) error {
	if err := ValidOrderDate(toDate, true); err != nil {
		return err
	}

	date, found, err := FindOrder(st, true, fromDate, number)
	if err != nil {
		return err
	}
	if date == toDate {
		return nil
	}
	if containsOrder(st.PreShippingOrders[toDate], number) {
		return fmt.Errorf("order %q already exists on %s", number, toDate)
	}

	moved := *found
	if err := RemoveOrder(st, true, date, number); err != nil {
		return err
	}
	st.PreShippingOrders[toDate] = append(st.PreShippingOrders[toDate], moved)
	return nil
}

// AutoSync migrates completed pre-shipping orders whose date has arrived into
// the shipping collection. Paused, unfinished and legacy entries stay put; a
// date entry is dropped only once nothing remains under it. Returns the
// number of migrated orders.
func AutoSync(st *model.Store) int {
	today, _ := time.Parse("2006-01-02", TodayStr())
	transferred := 0
	var datesToRemove []string

	for dateStr, preOrders := range st.PreShippingOrders {
		if dateStr == model.DateTBD {
			continue
		}

		orderDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			log.Printf("⚠️ Invalid date in pre-shipping orders: %s", dateStr)
			continue
		}
		if orderDate.After(today) {
			continue
		}

		if len(preOrders) == 0 {
			datesToRemove = append(datesToRemove, dateStr)
			continue
		}

		var kept []model.Order
		for _, preOrder := range preOrders {
			if preOrder.Legacy() {
				// No status information, wait for the user to update it.
				kept = append(kept, preOrder)
				continue
			}
			if preOrder.Status != model.StatusDone {
				kept = append(kept, preOrder)
				continue
			}

			if containsOrder(st.ShippingOrders[dateStr], preOrder.Number) {
				continue
			}

			remark := preOrder.Remark
			if remark != "" {
				remark += " [auto-synced]"
			} else {
				remark = "[auto-synced]"
			}
			st.ShippingOrders[dateStr] = append(st.ShippingOrders[dateStr], model.Order{
				Number:    preOrder.Number,
				Remark:    remark,
				Status:    model.StatusDone,
				WorkOrder: preOrder.WorkOrder,
			})
			transferred++
			log.Printf("📌 Auto-synced completed pre-order %s from %s", preOrder.Number, dateStr)
		}

		if len(kept) > 0 {
			st.PreShippingOrders[dateStr] = kept
		} else {
			datesToRemove = append(datesToRemove, dateStr)
		}
	}

	for _, dateStr := range datesToRemove {
		delete(st.PreShippingOrders, dateStr)
	}

	return transferred
}

// DueOrder is a pre-shipping order whose date has arrived but which is not
// done yet.
type DueOrder struct {
	Date  string
	Order model.Order
}

// DueIncomplete lists pre-shipping orders dated today or earlier that still
// need work, newest date first.
func DueIncomplete(st *model.Store) []DueOrder {
	today, _ := time.Parse("2006-01-02", TodayStr())
	var due []DueOrder

	for _, dateStr := range SortedDates(st.PreShippingOrders) {
		if dateStr == model.DateTBD {
			continue
		}
		orderDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil || orderDate.After(today) {
			continue
		}
		for _, order := range st.PreShippingOrders[dateStr] {
			if order.Status == model.StatusDone {
				continue
			}
			due = append(due, DueOrder{Date: dateStr, Order: order})
		}
	}
	return due
}

// ConfirmDue marks the given due orders done and runs AutoSync, mirroring the
// bulk-confirm flow of the incomplete-orders review. Empty numbers confirms
// everything due.
func ConfirmDue(st *model.Store, numbers []string) int {
	confirm := map[string]bool{}
	for _, n := range numbers {
		confirm[n] = true
	}

	for _, due := range DueIncomplete(st) {
		if len(confirm) > 0 && !confirm[due.Order.Number] {
			continue
		}
		if err := SetOrderStatus(st, true, due.Date, due.Order.Number, model.StatusDone); err != nil {
			log.Printf("⚠️ Failed to confirm order %s: %v", due.Order.Number, err)
		}
	}
	return AutoSync(st)
}

// SortedDates returns the collection's dates newest first, with TBD last.
func SortedDates(collection map[string][]model.Order) []string {
	dates := make([]string, 0, len(collection))
	hasTBD := false
	for date := range collection {
		if date == model.DateTBD {
			hasTBD = true
			continue
		}
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if hasTBD {
		dates = append(dates, model.DateTBD)
	}
	return dates
}

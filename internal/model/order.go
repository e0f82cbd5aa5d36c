package model

import (
	"encoding/json"
	"fmt"
)

type OrderStatus string

const (
	StatusPending OrderStatus = "pending"
	StatusMaking  OrderStatus = "making"
	StatusDone    OrderStatus = "done"
	StatusPaused  OrderStatus = "paused"
)

// DateTBD marks pre-shipping orders whose date is not decided yet.
// Entries under this key are never auto-synced.
const DateTBD = "TBD"

var StatusCycle = []OrderStatus{StatusPending, StatusMaking, StatusDone, StatusPaused}

var statusDisplay = map[OrderStatus]string{
	StatusPending: "⏳ pending",
	StatusMaking:  "🔨 making",
	StatusDone:    "✅ done",
	StatusPaused:  "⏸️ paused",
}

func (s OrderStatus) Valid() bool {
	_, ok := statusDisplay[s]
	return ok
}

// Display returns the icon-prefixed label. Legacy orders carry an empty
// status and are shown as pending.
func (s OrderStatus) Display() string {
	if s == "" {
		return statusDisplay[StatusPending]
	}
	if label, ok := statusDisplay[s]; ok {
		return label
	}
	return string(s)
}

// Next advances pending → making → done → paused → pending.
func (s OrderStatus) Next() OrderStatus {
	if s == "" {
		s = StatusPending
	}
	for i, status := range StatusCycle {
		if status == s {
			return StatusCycle[(i+1)%len(StatusCycle)]
		}
	}
	return StatusPending
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown order status %q (want pending, making, done or paused)", s)
	}
	return status, nil
}

type Order struct {
	Number    string      `json:"order"`
	Remark    string      `json:"remark,omitempty"`
	Status    OrderStatus `json:"status,omitempty"`
	WorkOrder string      `json:"work_order,omitempty"`
}

// UnmarshalJSON accepts both the current object form and the legacy bare
// string form. Legacy entries keep an empty status so they stay out of
// auto-sync until the user updates them.
func (o *Order) UnmarshalJSON(b []byte) error {
	var number string
	if err := json.Unmarshal(b, &number); err == nil {
		*o = Order{Number: number}
		return nil
	}

	type orderAlias Order
	var alias orderAlias
	if err := json.Unmarshal(b, &alias); err != nil {
		return err
	}
	*o = Order(alias)
	return nil
}

func (o Order) Legacy() bool {
	return o.Status == ""
}

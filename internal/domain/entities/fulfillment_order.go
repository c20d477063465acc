package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfillment status of an order created for a funded gift.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusPaid           OrderStatus = "Paid"
	OrderStatusPacking        OrderStatus = "Packing"
	OrderStatusOutForDelivery OrderStatus = "OutForDelivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusCancelled      OrderStatus = "Cancelled"
)

// Forward sequence plus administrative cancellation from any non-terminal state.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:        {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:           {OrderStatusPacking, OrderStatusCancelled},
	OrderStatusPacking:        {OrderStatusOutForDelivery, OrderStatusCancelled},
	OrderStatusOutForDelivery: {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:      {},
	OrderStatusCancelled:      {},
}

// ParseOrderStatus accepts the canonical names case-insensitively.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	raw = strings.TrimSpace(raw)
	for s := range orderTransitions {
		if strings.EqualFold(string(s), raw) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOrderStatus, raw)
}

func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) IsTerminal() bool {
	return s.IsValid() && len(orderTransitions[s]) == 0
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// OrderTab is a staff-facing view over order statuses.
type OrderTab string

const (
	OrderTabProcessing        OrderTab = "Processing"
	OrderTabPacking           OrderTab = "Packing"
	OrderTabDeliveryConfirmed OrderTab = "DeliveryConfirmed"
	OrderTabAllOrders         OrderTab = "AllOrders"
)

// orderTabStatus is the fixed tab -> status table used by staff filtering.
var orderTabStatus = map[OrderTab]OrderStatus{
	OrderTabProcessing:        OrderStatusPending,
	OrderTabPacking:           OrderStatusPaid,
	OrderTabDeliveryConfirmed: OrderStatusOutForDelivery,
	OrderTabAllOrders:         OrderStatusDelivered,
}

// ParseOrderTab resolves a tab name case-insensitively.
func ParseOrderTab(raw string) (OrderTab, error) {
	raw = strings.TrimSpace(raw)
	for tab := range orderTabStatus {
		if strings.EqualFold(string(tab), raw) {
			return tab, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTab, raw)
}

// Status returns the single order status shown under the tab.
func (t OrderTab) Status() (OrderStatus, bool) {
	s, ok := orderTabStatus[t]
	return s, ok
}

// TabForStatus is the reverse lookup of orderTabStatus.
func TabForStatus(s OrderStatus) (OrderTab, bool) {
	for tab, status := range orderTabStatus {
		if status == s {
			return tab, true
		}
	}
	return "", false
}

// StatusChange is one entry of an order's audit trail.
type StatusChange struct {
	Status    OrderStatus `json:"status"`
	UpdatedBy string      `json:"updated_by,omitempty"`
	Notes     string      `json:"notes,omitempty"`
	At        time.Time   `json:"at"`
}

// FulfillmentOrder is created once per completed contribution.
//
// Storage model (DynamoDB):
//   - PK: id (derived from the contribution id, see OrderIDFor)
//   - GSI: contribution_id-index
type FulfillmentOrder struct {
	ID             string          `json:"id"`
	ContributionID string          `json:"contribution_id"`
	ProductRef     string          `json:"product_ref"`
	ProductName    string          `json:"product_name,omitempty"`
	Total          decimal.Decimal `json:"total"`
	Collected      decimal.Decimal `json:"collected"`
	Currency       string          `json:"currency"`
	Recipient      string          `json:"recipient"`
	Status         OrderStatus     `json:"status"`
	History        []StatusChange  `json:"history"`
	TrackingNumber string          `json:"tracking_number,omitempty"`
	DeliveryNotes  string          `json:"delivery_notes,omitempty"`
	DeliveredAt    *time.Time      `json:"delivered_at,omitempty"`
	Version        int64           `json:"version"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// OrderIDFor derives the order id from the contribution id, which makes the
// contribution id the idempotency key of order creation.
func OrderIDFor(contributionID string) string {
	return "ord-" + contributionID
}

// NewFulfillmentOrder builds the Pending order for a completed contribution.
func NewFulfillmentOrder(c Contribution, now time.Time) FulfillmentOrder {
	return FulfillmentOrder{
		ID:             OrderIDFor(c.ID),
		ContributionID: c.ID,
		ProductRef:     c.ProductRef,
		ProductName:    c.ProductName,
		Total:          c.TotalPrice,
		Collected:      c.PaidTotal(),
		Currency:       c.Currency,
		Recipient:      c.Creator,
		Status:         OrderStatusPending,
		History: []StatusChange{
			{Status: OrderStatusPending, UpdatedBy: "system", Notes: "created from funded contribution", At: now},
		},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ApplyStatus validates and records a status change.
func (o *FulfillmentOrder) ApplyStatus(target OrderStatus, updatedBy, notes string, now time.Time) error {
	if !target.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidOrderStatus, target)
	}
	if !o.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: order %s cannot move from %s to %s", ErrInvalidTransition, o.ID, o.Status, target)
	}
	o.Status = target
	o.History = append(o.History, StatusChange{Status: target, UpdatedBy: updatedBy, Notes: notes, At: now})
	if notes != "" {
		o.DeliveryNotes = notes
	}
	if target == OrderStatusDelivered {
		delivered := now
		o.DeliveredAt = &delivered
	}
	return nil
}

func (o FulfillmentOrder) Clone() FulfillmentOrder {
	out := o
	out.History = append([]StatusChange(nil), o.History...)
	out.DeliveredAt = cloneTime(o.DeliveredAt)
	return out
}

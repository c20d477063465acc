package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestOrderStatus_ForwardSequenceOnly(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		ok       bool
	}{
		{OrderStatusPending, OrderStatusPaid, true},
		{OrderStatusPaid, OrderStatusPacking, true},
		{OrderStatusPacking, OrderStatusOutForDelivery, true},
		{OrderStatusOutForDelivery, OrderStatusDelivered, true},
		{OrderStatusPending, OrderStatusPacking, false},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusPaid, OrderStatusPending, false},
		{OrderStatusPacking, OrderStatusDelivered, false},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusOutForDelivery, OrderStatusCancelled, true},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.ok {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.ok, got)
		}
	}
}

func TestFulfillmentOrder_ApplyStatus(t *testing.T) {
	now := time.Now().UTC()
	c := Contribution{ID: "c-1", ProductRef: "p", TotalPrice: decimal.RequireFromString("10"), Creator: "u-1"}
	o := NewFulfillmentOrder(c, now)
	if o.ID != "ord-c-1" || o.Status != OrderStatusPending || len(o.History) != 1 {
		t.Fatalf("unexpected new order: %+v", o)
	}

	err := o.ApplyStatus(OrderStatusPacking, "staff", "", now)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	for _, s := range []OrderStatus{OrderStatusPaid, OrderStatusPacking, OrderStatusOutForDelivery, OrderStatusDelivered} {
		if err := o.ApplyStatus(s, "staff", "", now); err != nil {
			t.Fatalf("apply %s: %v", s, err)
		}
	}
	if o.DeliveredAt == nil {
		t.Fatalf("delivered_at must be set")
	}
	if len(o.History) != 5 {
		t.Fatalf("expected 5 history entries, got %d", len(o.History))
	}
	if err := o.ApplyStatus(OrderStatus("Lost"), "staff", "", now); !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
	}
}

func TestOrderTabs_TableLookup(t *testing.T) {
	want := map[OrderTab]OrderStatus{
		OrderTabProcessing:        OrderStatusPending,
		OrderTabPacking:           OrderStatusPaid,
		OrderTabDeliveryConfirmed: OrderStatusOutForDelivery,
		OrderTabAllOrders:         OrderStatusDelivered,
	}
	for tab, status := range want {
		got, ok := tab.Status()
		if !ok || got != status {
			t.Fatalf("tab %s: expected %s, got %s", tab, status, got)
		}
		back, ok := TabForStatus(status)
		if !ok || back != tab {
			t.Fatalf("status %s: expected tab %s, got %s", status, tab, back)
		}
	}
	if _, ok := TabForStatus(OrderStatusCancelled); ok {
		t.Fatalf("cancelled orders have no tab")
	}
}

func TestParseOrderTabAndStatus(t *testing.T) {
	tab, err := ParseOrderTab("packing")
	if err != nil || tab != OrderTabPacking {
		t.Fatalf("expected Packing, got %q (%v)", tab, err)
	}
	if _, err := ParseOrderTab("Shipped"); !errors.Is(err, ErrInvalidTab) {
		t.Fatalf("expected ErrInvalidTab, got %v", err)
	}
	s, err := ParseOrderStatus(" outfordelivery ")
	if err != nil || s != OrderStatusOutForDelivery {
		t.Fatalf("expected OutForDelivery, got %q (%v)", s, err)
	}
	if _, err := ParseOrderStatus("Shipped"); !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
	}
}

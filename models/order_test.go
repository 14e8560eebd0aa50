package models

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from OrderStatus
		to   OrderStatus
		ok   bool
	}{
		{OrderPending, OrderProcessing, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderConfirmed, false},
		{OrderPending, OrderShipped, false},
		{OrderPending, OrderDelivered, false},
		{OrderProcessing, OrderConfirmed, true},
		{OrderProcessing, OrderCancelled, true},
		{OrderProcessing, OrderShipped, false},
		{OrderConfirmed, OrderShipped, true},
		{OrderConfirmed, OrderCancelled, true},
		{OrderConfirmed, OrderDelivered, false},
		{OrderShipped, OrderDelivered, true},
		{OrderShipped, OrderCancelled, false},
		{OrderDelivered, OrderCancelled, false},
		{OrderDelivered, OrderShipped, false},
		{OrderCancelled, OrderPending, false},
		{OrderCancelled, OrderProcessing, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.ok {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.ok)
		}
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderProcessing, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if OrderStatus("BOGUS").Valid() {
		t.Error("BOGUS should not be valid")
	}
	if OrderStatus("pending").Valid() {
		t.Error("statuses are case sensitive")
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	terminal := map[OrderStatus]bool{
		OrderPending:    false,
		OrderProcessing: false,
		OrderConfirmed:  false,
		OrderShipped:    false,
		OrderDelivered:  true,
		OrderCancelled:  true,
	}
	for s, want := range terminal {
		if got := s.Terminal(); got != want {
			t.Errorf("%s.Terminal() = %v, want %v", s, got, want)
		}
	}
}

func TestDeliveryTypeValid(t *testing.T) {
	if !DeliveryDomicile.Valid() || !DeliveryStopdesk.Valid() {
		t.Error("known delivery types should be valid")
	}
	if DeliveryType("PICKUP").Valid() {
		t.Error("PICKUP should not be valid")
	}
}

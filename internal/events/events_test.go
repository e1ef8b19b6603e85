package events

import (
	"testing"
	"time"
)

func TestNewEvent(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ev := New(7, at, "cmd-1", EventTypeCyclePaid, CyclePaidData{Business: "Click Farm", Amount: 2, CashAfter: 5})

	if ev.ID != 7 || ev.CommandID != "cmd-1" || ev.Type != EventTypeCyclePaid {
		t.Fatalf("unexpected event fields: %+v", ev)
	}
	if !ev.At.Equal(at) {
		t.Fatalf("expected At %v got %v", at, ev.At)
	}
}

func TestEventAccessors(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		amount   float64
		business string
	}{
		{"paid", CyclePaidData{Business: "a", Amount: 3}, 3, "a"},
		{"upgraded", BusinessUpgradedData{Business: "b", Cost: 10}, -10, "b"},
		{"rejected", UpgradeRejectedData{Business: "c", Cost: 10, Cash: 1}, 0, "c"},
		{"moved", SelectionMovedData{Direction: "up", From: 2, To: 0}, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Event{Data: tt.data}
			if got := ev.Amount(); got != tt.amount {
				t.Fatalf("Amount: expected %v got %v", tt.amount, got)
			}
			if got := ev.Business(); got != tt.business {
				t.Fatalf("Business: expected %q got %q", tt.business, got)
			}
		})
	}
}

package entity

import (
	"strings"
	"testing"
	"time"
)

func TestNewBillIDUniqueWithinMillisecond(t *testing.T) {
	now := time.Now()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewBillID(now)
		if !strings.HasPrefix(id, "BILL-") {
			t.Fatalf("unexpected bill ID format: %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate bill ID %q for the same instant", id)
		}
		seen[id] = true
	}
}

func TestNewPurchaseIDUniqueWithinMillisecond(t *testing.T) {
	now := time.Now()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewPurchaseID(now)
		if !strings.HasPrefix(id, "PURCHASE-") {
			t.Fatalf("unexpected purchase ID format: %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate purchase ID %q for the same instant", id)
		}
		seen[id] = true
	}
}

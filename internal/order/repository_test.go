package order

import (
	"testing"
	"time"
)

func TestBuildOrderFilters_TotalAmountRange(t *testing.T) {
	min := 25.0
	max := 100.0
	where, args := buildOrderFilters(ListFilters{TotalAmountMin: &min, TotalAmountMax: &max})

	expected := " WHERE total_amount >= $1 AND total_amount <= $2"
	if where != expected {
		t.Errorf("Expected %q, got %q", expected, where)
	}
	if len(args) != 2 || args[0] != 25.0 || args[1] != 100.0 {
		t.Errorf("Unexpected args: %v", args)
	}
}

func TestBuildOrderFilters_AllConditions(t *testing.T) {
	after := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	min := 1.0
	max := 2.0
	where, args := buildOrderFilters(ListFilters{
		CustomerID:     "cust-1",
		OrderedAfter:   &after,
		OrderedUntil:   &until,
		TotalAmountMin: &min,
		TotalAmountMax: &max,
	})

	expected := " WHERE customer_id = $1 AND order_date >= $2 AND order_date <= $3" +
		" AND total_amount >= $4 AND total_amount <= $5"
	if where != expected {
		t.Errorf("Expected %q, got %q", expected, where)
	}
	if len(args) != 5 {
		t.Errorf("Expected 5 args, got %d", len(args))
	}
}

func TestBuildOrderFilters_Empty(t *testing.T) {
	where, args := buildOrderFilters(ListFilters{})
	if where != "" || args != nil {
		t.Errorf("Expected empty clause, got %q with args %v", where, args)
	}
}

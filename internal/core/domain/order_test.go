package domain

import "testing"

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPlaced, StatusDelivered, true},
		{StatusPlaced, StatusCancelled, true},
		{StatusPlaced, StatusPlaced, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusDelivered, StatusPlaced, false},
		{StatusCancelled, StatusDelivered, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{"PLACED", "DELIVERED", "CANCELLED"} {
		if !ValidOrderStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"placed", "SHIPPED", ""} {
		if ValidOrderStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

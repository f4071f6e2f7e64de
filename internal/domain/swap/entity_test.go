package swap

import "testing"

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusApproved, StatusRejected} {
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if Status("cancelled").Valid() {
		t.Fatalf("unexpected valid status")
	}
}

func TestStatusCanTransition(t *testing.T) {
	cases := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusApproved, false},
		{StatusRejected, StatusApproved, false},
	}

	for _, c := range cases {
		if got := c.from.CanTransition(c.to); got != c.want {
			t.Fatalf("CanTransition(%q -> %q) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

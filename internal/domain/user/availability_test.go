package user

import (
	"reflect"
	"testing"
)

func TestNormalizeAvailability(t *testing.T) {
	got, err := NormalizeAvailability([]string{" Weekends ", "evenings", "WEEKENDS", ""})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []string{"weekends", "evenings"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNormalizeAvailabilityRejectsUnknownTag(t *testing.T) {
	if _, err := NormalizeAvailability([]string{"weekends", "midnights"}); err == nil {
		t.Fatalf("expected error for unknown tag")
	}
}

func TestNormalizeAvailabilityEmpty(t *testing.T) {
	got, err := NormalizeAvailability(nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}

package models

import (
	"testing"
	"time"
)

func TestReservationOverlaps(t *testing.T) {
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	res := Reservation{StartTime: base, EndTime: base.Add(4 * time.Hour)} // 10:00-14:00

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"contained", base.Add(2 * time.Hour), base.Add(3 * time.Hour), true},
		{"straddles start", base.Add(-time.Hour), base.Add(time.Hour), true},
		{"straddles end", base.Add(3 * time.Hour), base.Add(5 * time.Hour), true},
		{"covers whole", base.Add(-time.Hour), base.Add(5 * time.Hour), true},
		{"identical", base, base.Add(4 * time.Hour), true},
		{"ends at start", base.Add(-2 * time.Hour), base, false},
		{"starts at end", base.Add(4 * time.Hour), base.Add(6 * time.Hour), false},
		{"fully before", base.Add(-3 * time.Hour), base.Add(-time.Hour), false},
		{"fully after", base.Add(5 * time.Hour), base.Add(7 * time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := res.Overlaps(tc.start, tc.end); got != tc.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestReservationStatus(t *testing.T) {
	for _, s := range []ReservationStatus{
		ReservationStatusPending,
		ReservationStatusConfirmed,
		ReservationStatusRejected,
		ReservationStatusCancelled,
		ReservationStatusPendingRejection,
	} {
		if !s.Valid() {
			t.Fatalf("%s should be valid", s)
		}
	}
	if ReservationStatus("approved").Valid() {
		t.Fatal("unknown status must not validate")
	}

	if !ReservationStatusRejected.IsTerminal() || !ReservationStatusCancelled.IsTerminal() {
		t.Fatal("rejected and cancelled are terminal")
	}
	for _, s := range []ReservationStatus{
		ReservationStatusPending,
		ReservationStatusConfirmed,
		ReservationStatusPendingRejection,
	} {
		if s.IsTerminal() {
			t.Fatalf("%s must not be terminal", s)
		}
	}
}

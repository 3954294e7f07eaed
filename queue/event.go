// Package queue defines the reservation lifecycle events published to Kafka.
package queue

import "time"

const (
	EventReservationConfirmed        = "reservation.confirmed"
	EventReservationRejected         = "reservation.rejected"
	EventReservationPendingRejection = "reservation.pending_rejection"
	EventReservationCancelled        = "reservation.cancelled"
)

// ReservationEvent carries enough state for downstream consumers to notify
// or audit without querying the primary database.
type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID uint      `json:"reservation_id"`
	UserID        uint      `json:"user_id"`
	ServerID      uint      `json:"server_id"`
	Status        string    `json:"status"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	PriorityScore int       `json:"priority_score"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

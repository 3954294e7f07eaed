package models

import (
	"time"

	"gorm.io/datatypes"
)

type ReservationStatus string

const (
	ReservationStatusPending          ReservationStatus = "pending"
	ReservationStatusConfirmed        ReservationStatus = "confirmed"
	ReservationStatusRejected         ReservationStatus = "rejected"
	ReservationStatusCancelled        ReservationStatus = "cancelled"
	ReservationStatusPendingRejection ReservationStatus = "pending_rejection"
)

// Valid reports whether s is one of the closed status set. Unknown strings
// never pass through transition logic.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusPending,
		ReservationStatusConfirmed,
		ReservationStatusRejected,
		ReservationStatusCancelled,
		ReservationStatusPendingRejection:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is defined out of s.
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusRejected || s == ReservationStatusCancelled
}

type Reservation struct {
	RID                    uint              `gorm:"primaryKey;column:r_id" json:"id"`
	UserID                 uint              `gorm:"not null;column:u_id;index" json:"user_id"`
	ServerID               uint              `gorm:"not null;column:s_id;index" json:"server_id"`
	NaturalLanguageRequest string            `gorm:"type:text;not null;column:natural_language_request" json:"natural_language_request"`
	Purpose                string            `gorm:"type:text" json:"purpose,omitempty"`
	StartTime              time.Time         `gorm:"not null;column:start_time" json:"start_time"`
	EndTime                time.Time         `gorm:"not null;column:end_time" json:"end_time"`
	PriorityScore          int               `gorm:"default:50;column:priority_score" json:"priority_score"`
	Status                 ReservationStatus `gorm:"type:reservation_status;default:'pending';not null" json:"status"`
	AIJudgmentReason       string            `gorm:"type:text;column:ai_judgment_reason" json:"ai_judgment_reason,omitempty"`
	RejectionReason        string            `gorm:"type:text;column:rejection_reason" json:"rejection_reason,omitempty"`
	InterpreterPayload     datatypes.JSON    `gorm:"column:interpreter_payload" json:"-"`
	CreatedAt              time.Time         `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time         `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

// Overlaps reports whether the reservation's half-open window [StartTime,
// EndTime) intersects [start, end).
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && r.EndTime.After(start)
}

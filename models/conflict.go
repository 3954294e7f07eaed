package models

import "time"

const (
	ResolutionAutoPriority  = "auto_priority"
	ResolutionUserConfirmed = "user_confirmed"
	ResolutionUserContested = "user_contested"
)

// ReservationConflict is the audit record written whenever a new reservation
// displaces an existing one. ReservationID is the displacing reservation,
// ConflictingReservationID the displaced one.
type ReservationConflict struct {
	ID                       uint      `gorm:"primaryKey" json:"id"`
	ReservationID            uint      `gorm:"not null;column:reservation_id;index" json:"reservation_id"`
	ConflictingReservationID uint      `gorm:"not null;column:conflicting_reservation_id;index" json:"conflicting_reservation_id"`
	Resolved                 bool      `gorm:"default:false" json:"resolved"`
	ResolutionMethod         string    `gorm:"size:30;column:resolution_method" json:"resolution_method,omitempty"`
	CreatedAt                time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
}

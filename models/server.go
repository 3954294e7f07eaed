package models

import "time"

// GPUServer is a reservable unit in the catalog. Deactivating a server only
// removes it from new-reservation eligibility; existing reservations keep
// their server reference untouched.
type GPUServer struct {
	SID         uint      `gorm:"primaryKey;column:s_id" json:"id"`
	Name        string    `gorm:"size:100;not null;unique" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	GPUType     string    `gorm:"size:50;column:gpu_type" json:"gpu_type,omitempty"`
	GPUCount    int       `gorm:"default:1;column:gpu_count" json:"gpu_count"`
	IsActive    bool      `gorm:"default:true;column:is_active" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

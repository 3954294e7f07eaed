package models

import "time"

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

type User struct {
	UID       uint      `gorm:"primaryKey;column:u_id" json:"id"`
	Username  string    `gorm:"size:50;not null;unique" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Email     *string   `gorm:"size:100" json:"email"`
	Role      UserRole  `gorm:"type:user_role;default:'user';not null" json:"role"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

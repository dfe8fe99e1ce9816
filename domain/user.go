package domain

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole accepts the upper case names only.
func ParseRole(raw string) (Role, error) {
	switch r := Role(raw); r {
	case RoleAdmin, RoleUser:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, raw)
	}
}

// User accounts are created by the auth service. This service reads them
// for order listings and lets admins change roles or remove accounts.
type User struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255)" json:"name"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	Role      Role      `gorm:"column:role;type:varchar(16);not null;default:USER" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// UserSummary is the admin user listing row.
type UserSummary struct {
	ID        uint64    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	AvatarURL *string   `json:"avatar_url"`
}

func (User) TableName() string {
	return "users"
}

package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleSuperAdmin = "SUPERADMIN"
	RoleAdmin      = "ADMIN"
	RoleEmployee   = "EMPLOYEE"
)

type User struct {
	gorm.Model
	UserID       string     `gorm:"column:user_id;unique;not null" json:"user_id"`
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"unique;not null" json:"email"`
	Mobile       string     `json:"mobile"`
	Role         string     `gorm:"not null" json:"role"`
	Password     string     `gorm:"not null" json:"-"`
	Active       bool       `gorm:"default:true" json:"active"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
}

// CanCreateRole encodes the user-administration hierarchy: SUPERADMIN
// accounts create ADMIN accounts, ADMIN accounts create EMPLOYEE accounts.
func (u *User) CanCreateRole(role string) bool {
	switch u.Role {
	case RoleSuperAdmin:
		return role == RoleAdmin
	case RoleAdmin:
		return role == RoleEmployee
	default:
		return false
	}
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleSuperAdmin || u.Role == RoleAdmin
}

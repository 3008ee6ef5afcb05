package models

import (
	"time"

	"gorm.io/gorm"
)

// RoleName is the closed set of roles recognized by the system.
type RoleName string

const (
	RoleManager      RoleName = "manager"
	RoleDeliveryCrew RoleName = "delivery_crew"
	RoleCustomer     RoleName = "customer"
)

// AllRoles lists every role; the rows are seeded at startup.
var AllRoles = []RoleName{RoleManager, RoleDeliveryCrew, RoleCustomer}

type Role struct {
	ID   uint     `json:"id" gorm:"primaryKey"`
	Name RoleName `json:"name" gorm:"uniqueIndex;not null"`
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" gorm:"not null"`
	IsAdmin      bool      `json:"is_admin" gorm:"default:false"`
	Roles        []Role    `json:"roles,omitempty" gorm:"many2many:user_roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports membership against the already-loaded role set.
func (u *User) HasRole(name RoleName) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// UserHasRole checks membership directly against the store. Role grants and
// revocations take effect immediately, regardless of when the caller's token
// was issued, so gates must use this rather than token claims.
func UserHasRole(db *gorm.DB, userID uint, name RoleName) (bool, error) {
	var n int64
	err := db.Table("user_roles").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("user_roles.user_id = ? AND roles.name = ?", userID, name).
		Count(&n).Error
	return n > 0, err
}

package models

import (
	"fmt"
	"time"
)

const (
	RoleFounder      = "founder"
	RoleEntrepreneur = "entrepreneur"
	RoleBoth         = "both"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"default:entrepreneur" json:"role"`
	Avatar    string    `json:"avatar"`
	Bio       string    `gorm:"type:text" json:"bio"`
}

func (u *User) ValidateRole() error {
	switch u.Role {
	case RoleFounder, RoleEntrepreneur, RoleBoth:
		return nil
	}
	return fmt.Errorf("invalid role: %s", u.Role)
}

package models

import (
	"fmt"
	"time"
)

const (
	CollaborationStatusPending  = "pending"
	CollaborationStatusAccepted = "accepted"
	CollaborationStatusRejected = "rejected"
)

// Collaboration links a startup with a user requesting to revive it. The
// schema is migrated but no route exposes the pending -> accepted/rejected
// transition yet.
type Collaboration struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	StartupID   uint      `gorm:"not null" json:"startupId"`
	Startup     *Startup  `gorm:"foreignKey:StartupID" json:"startup,omitempty"`
	RequesterID uint      `gorm:"not null" json:"requesterId"`
	Requester   *User     `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Status      string    `gorm:"default:pending" json:"status"`
	Message     string    `gorm:"type:text" json:"message"`
}

func (cl *Collaboration) ValidateStatus() error {
	switch cl.Status {
	case CollaborationStatusPending, CollaborationStatusAccepted, CollaborationStatusRejected:
		return nil
	}
	return fmt.Errorf("invalid collaboration status: %s", cl.Status)
}

package models

import (
	"fmt"
	"time"
)

const (
	NotificationTypeCollaborationRequest = "collaboration-request"
	NotificationTypeOffer                = "offer"
	NotificationTypeComment              = "comment"
	NotificationTypeMessage              = "message"
)

type Notification struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	RecipientID      uint      `gorm:"not null;index" json:"recipientId"`
	Recipient        *User     `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	Type             string    `gorm:"not null" json:"type"`
	Title            string    `json:"title"`
	Message          string    `gorm:"type:text" json:"message"`
	RelatedStartupID *uint     `json:"relatedStartupId,omitempty"`
	RelatedStartup   *Startup  `gorm:"foreignKey:RelatedStartupID" json:"relatedStartup,omitempty"`
	RelatedUserID    *uint     `json:"relatedUserId,omitempty"`
	RelatedUser      *User     `gorm:"foreignKey:RelatedUserID" json:"relatedUser,omitempty"`
	Read             bool      `gorm:"default:false" json:"read"`
}

func (n *Notification) ValidateType() error {
	switch n.Type {
	case NotificationTypeCollaborationRequest, NotificationTypeOffer,
		NotificationTypeComment, NotificationTypeMessage:
		return nil
	}
	return fmt.Errorf("invalid notification type: %s", n.Type)
}

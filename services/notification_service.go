package services

import (
	"failfund/config"
	"failfund/errors"
	"failfund/models"
)

// CreateNotification stores a notification row for the recipient. Delivery
// is pull-only: clients read it through the list endpoint.
func CreateNotification(notification models.Notification) error {
	if err := notification.ValidateType(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	if err := config.DB.Create(&notification).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to create notification", err)
	}
	return nil
}

// NotifyReply records a comment notification for the discussion author.
// Self-replies are skipped.
func NotifyReply(discussion models.Discussion, reply models.Reply) error {
	if discussion.AuthorID == reply.AuthorID {
		return nil
	}
	authorID := reply.AuthorID
	return CreateNotification(models.Notification{
		RecipientID:   discussion.AuthorID,
		Type:          models.NotificationTypeComment,
		Title:         "New reply to your discussion",
		Message:       "Someone replied to \"" + discussion.Title + "\"",
		RelatedUserID: &authorID,
	})
}

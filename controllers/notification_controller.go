package controllers

import (
	stderrors "errors"
	"strconv"

	"failfund/config"
	"failfund/middleware"
	"failfund/models"
	"failfund/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetMyNotifications lists the caller's notifications, newest first.
func GetMyNotifications(c *gin.Context) {
	userID, ok := middleware.PrincipalID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var notifications []models.Notification
	if err := config.DB.Preload("RelatedUser").Preload("RelatedStartup").
		Where("recipient_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, notifications)
}

// MarkNotificationRead flips the read flag to true. It never flips back.
func MarkNotificationRead(c *gin.Context) {
	userID, ok := middleware.PrincipalID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Notification not found")
		return
	}

	var notification models.Notification
	if err := config.DB.First(&notification, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Notification not found")
			return
		}
		response.ServerError(c)
		return
	}

	if notification.RecipientID != userID {
		response.Forbidden(c)
		return
	}

	if !notification.Read {
		if err := config.DB.Model(&notification).UpdateColumn("read", true).Error; err != nil {
			response.ServerError(c)
			return
		}
		notification.Read = true
	}

	response.Success(c, notification)
}

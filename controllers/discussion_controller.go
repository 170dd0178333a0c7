package controllers

import (
	stderrors "errors"
	"strconv"

	"failfund/config"
	"failfund/dto"
	"failfund/errors"
	"failfund/middleware"
	"failfund/models"
	"failfund/response"
	"failfund/services"
	"failfund/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetAllDiscussions(c *gin.Context) {
	var filters dto.DiscussionFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	query := config.DB.Preload("Author").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("replies.created_at ASC")
		}).
		Preload("Replies.Author").
		Order("created_at DESC")
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	var discussions []models.Discussion
	if err := query.Find(&discussions).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, discussions)
}

// GetDiscussionDetail increments the view counter atomically, then returns
// the discussion with author and reply authors populated.
func GetDiscussionDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Discussion not found")
		return
	}

	result := config.DB.Model(&models.Discussion{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "Discussion not found")
		return
	}

	discussion, err := loadDiscussion(uint(id))
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, discussion)
}

// CreateDiscussion opens a new thread. The author is always the calling
// principal.
func CreateDiscussion(c *gin.Context) {
	userID, ok := middleware.PrincipalID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.CreateDiscussionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Title is required")
		return
	}

	discussion := models.Discussion{
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
		AuthorID: userID,
	}
	if discussion.Category == "" {
		discussion.Category = models.DiscussionCategoryGeneral
	}

	if err := validator.ValidateDiscussion(&discussion); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	if err := config.DB.Create(&discussion).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("Author").First(&discussion, discussion.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, discussion)
}

// AddReply appends a reply with a server-assigned timestamp and returns the
// updated discussion.
func AddReply(c *gin.Context) {
	userID, ok := middleware.PrincipalID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Discussion not found")
		return
	}

	var input dto.ReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Content is required")
		return
	}

	var discussion models.Discussion
	if err := config.DB.First(&discussion, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Discussion not found")
			return
		}
		response.ServerError(c)
		return
	}

	reply := models.Reply{
		DiscussionID: discussion.ID,
		AuthorID:     userID,
		Content:      input.Content,
	}
	if err := config.DB.Create(&reply).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.NotifyReply(discussion, reply); err != nil {
		// The reply itself is committed, a lost notification is tolerable.
		appLogger.Error("Failed to create reply notification: %v", err)
	}

	updated, err := loadDiscussion(discussion.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, updated)
}

func loadDiscussion(id uint) (models.Discussion, error) {
	var discussion models.Discussion
	err := config.DB.Preload("Author").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("replies.created_at ASC")
		}).
		Preload("Replies.Author").
		First(&discussion, id).Error
	return discussion, err
}

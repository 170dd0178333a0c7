package controllers

import (
	stderrors "errors"
	"strconv"
	"time"

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

const startupListCacheKey = "startups:all"
const startupListCacheTTL = 5 * time.Minute

// GetAllStartups lists startups newest-first, optionally filtered by exact
// category/status and a case-insensitive substring search over title and
// description. The unfiltered list is served from Redis when warm.
func GetAllStartups(c *gin.Context) {
	var filters dto.StartupFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	unfiltered := filters.Category == "" && filters.Status == "" && filters.Search == ""

	var startups []models.Startup
	if unfiltered && config.RedisClient != nil {
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, startupListCacheKey, &startups); err == nil && len(startups) > 0 {
			response.Success(c, startups)
			return
		}
	}

	query := config.DB.Preload("Founder").Order("created_at DESC")
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	if err := query.Find(&startups).Error; err != nil {
		response.ServerError(c)
		return
	}

	if unfiltered && config.RedisClient != nil {
		if err := services.SetToRedis(config.Ctx, config.RedisClient, startupListCacheKey, startups, startupListCacheTTL); err != nil {
			appLogger.Error("Failed to cache startup list: %v", err)
		}
	}

	response.Success(c, startups)
}

// GetMyStartups lists the startups founded by the calling principal.
func GetMyStartups(c *gin.Context) {
	userID, ok := middleware.PrincipalID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var startups []models.Startup
	if err := config.DB.Preload("Founder").
		Where("founder_id = ?", userID).
		Order("created_at DESC").
		Find(&startups).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, startups)
}

// GetStartupDetail increments the view counter atomically, then returns the
// startup with its founder populated.
func GetStartupDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Startup not found")
		return
	}

	result := config.DB.Model(&models.Startup{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "Startup not found")
		return
	}

	var startup models.Startup
	if err := config.DB.Preload("Founder").Preload("Collaborators").
		First(&startup, id).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, startup)
}

// CreateStartup persists a new listing. The founder is always the calling
// principal, regardless of the payload.
func CreateStartup(c *gin.Context) {
	userID, ok := middleware.PrincipalID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.CreateStartupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Title is required")
		return
	}

	startup := models.Startup{
		Title:         input.Title,
		Description:   input.Description,
		FailureReason: input.FailureReason,
		TechStack:     input.TechStack,
		RepositoryURL: input.RepositoryURL,
		Images:        input.Images,
		FounderID:     userID,
		RevivalScore:  input.RevivalScore,
		Status:        input.Status,
		BuyoutPrice:   input.BuyoutPrice,
		Category:      input.Category,
		Tags:          input.Tags,
	}
	if startup.Status == "" {
		startup.Status = models.StartupStatusAvailable
	}

	if err := validator.ValidateStartup(&startup); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	if err := config.DB.Create(&startup).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("Founder").First(&startup, startup.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateStartupListCache()
	response.Created(c, startup)
}

// UpdateStartup merges the provided fields onto the stored startup. Only the
// founder may update a listing.
func UpdateStartup(c *gin.Context) {
	userID, ok := middleware.PrincipalID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Startup not found")
		return
	}

	var startup models.Startup
	if err := config.DB.First(&startup, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Startup not found")
			return
		}
		response.ServerError(c)
		return
	}

	if startup.FounderID != userID {
		response.Forbidden(c)
		return
	}

	var input dto.UpdateStartupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	input.Apply(&startup)

	if err := validator.ValidateStartup(&startup); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	// The view counter is only ever moved by the atomic increment in
	// GetStartupDetail; writing it back here would undo increments that
	// landed since the row was read.
	if err := config.DB.Model(&startup).Select("*").Omit("views").Updates(&startup).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("Founder").First(&startup, startup.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateStartupListCache()
	response.Success(c, startup)
}

// DeleteStartup removes a listing. Related notifications and collaborations
// are left in place.
func DeleteStartup(c *gin.Context) {
	userID, ok := middleware.PrincipalID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Startup not found")
		return
	}

	var startup models.Startup
	if err := config.DB.First(&startup, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Startup not found")
			return
		}
		response.ServerError(c)
		return
	}

	if startup.FounderID != userID {
		response.Forbidden(c)
		return
	}

	if err := config.DB.Delete(&startup).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateStartupListCache()
	response.Success(c, gin.H{"message": "Startup deleted successfully"})
}

func invalidateStartupListCache() {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, startupListCacheKey); err != nil {
		appLogger.Error("Failed to invalidate startup list cache: %v", err)
	}
}

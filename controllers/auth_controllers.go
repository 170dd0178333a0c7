package controllers

import (
	"context"
	stderrors "errors"
	"os"

	"failfund/config"
	"failfund/dto"
	"failfund/errors"
	"failfund/models"
	"failfund/response"
	"failfund/services"
	"failfund/validator"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Missing required fields")
		return
	}

	if err := validator.ValidateRegister(&input); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	user, err := services.CreateUser(models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	})
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			switch appErr.Code {
			case errors.ErrCodeEmailExists:
				response.Conflict(c, appErr.Message)
				return
			case errors.ErrCodeInvalidRole:
				response.ValidationError(c, appErr.Message)
				return
			}
		}
		response.ServerError(c)
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, dto.AuthResponse{
		User:        dto.NewUserResponse(user),
		AccessToken: accessToken,
	})
}

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Email and password required")
		return
	}

	user, err := services.Authenticate(input.Email, input.Password)
	if err != nil {
		response.AuthError(c, "Invalid email or password")
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.AuthResponse{
		User:        dto.NewUserResponse(user),
		AccessToken: accessToken,
	})
}

// AuthGoogle signs a user in with a Google ID token, creating the account on
// first use.
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Google token required")
		return
	}

	payload, err := verifyGoogleIDToken(input.TokenID)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	googleUser := dto.GoogleUser{
		Name:          claimString(payload.Claims, "name"),
		Email:         claimString(payload.Claims, "email"),
		VerifiedEmail: claimBool(payload.Claims, "email_verified"),
		Picture:       claimString(payload.Claims, "picture"),
	}
	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "Email has not been verified")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", googleUser.Email).First(&user)
	if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
		user, err = services.CreateGoogleUser(googleUser.Name, googleUser.Email, googleUser.Picture)
		if err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.AuthResponse{
		User:        dto.NewUserResponse(user),
		AccessToken: accessToken,
	})
}

func verifyGoogleIDToken(tokenID string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	return idtoken.Validate(context.Background(), tokenID, clientID)
}

func claimString(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func claimBool(claims map[string]interface{}, key string) bool {
	v, ok := claims[key].(bool)
	return ok && v
}

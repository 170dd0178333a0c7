package validator

import (
	"failfund/dto"
	"failfund/errors"
	"failfund/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRegister checks the register payload before any user is created.
func ValidateRegister(input *dto.RegisterInput) error {
	if input.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Name is required", nil)
	}
	if input.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email is required", nil)
	}
	if err := validate.Var(input.Email, "email"); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email is not valid", err)
	}
	if input.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password is required", nil)
	}
	if len(input.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}
	if input.Role != "" {
		user := models.User{Role: input.Role}
		if err := user.ValidateRole(); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidRole, err.Error(), nil)
		}
	}
	return nil
}

// ValidateStartup enforces the stored-field invariants: revival score in
// [0,100] and status within the enumerated set.
func ValidateStartup(startup *models.Startup) error {
	if startup.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Title is required", nil)
	}
	if err := startup.ValidateRevivalScore(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidScore, err.Error(), nil)
	}
	if err := startup.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, err.Error(), nil)
	}
	if startup.BuyoutPrice != nil && *startup.BuyoutPrice < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Buyout price must not be negative", nil)
	}
	return nil
}

func ValidateDiscussion(discussion *models.Discussion) error {
	if discussion.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Title is required", nil)
	}
	if err := discussion.ValidateCategory(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	return nil
}

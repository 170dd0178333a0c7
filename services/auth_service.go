package services

import (
	"crypto/rand"
	stderrors "errors"
	"math/big"
	"strings"

	"failfund/config"
	"failfund/errors"
	"failfund/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, errors.NewAppError(errors.ErrCodeDBNotFound, "user not found", result.Error)
	}
	if result.Error != nil {
		return user, errors.NewAppError(errors.ErrCodeDBError, "failed to look up user", result.Error)
	}
	return user, nil
}

// CreateUser registers a new account. Emails are stored lowercased and must
// be unique.
func CreateUser(user models.User) (models.User, error) {
	user.Email = strings.ToLower(user.Email)
	if user.Role == "" {
		user.Role = models.RoleEntrepreneur
	}
	if err := user.ValidateRole(); err != nil {
		return user, errors.NewAppError(errors.ErrCodeInvalidRole, err.Error(), nil)
	}

	if _, err := GetUserByEmail(user.Email); err == nil {
		return user, errors.NewAppError(errors.ErrCodeEmailExists, "Email already registered", nil)
	}

	hashed, err := HashPassword(user.Password)
	if err != nil {
		return user, errors.NewAppError(errors.ErrCodeDBError, "failed to hash password", err)
	}
	user.Password = hashed

	if err := config.DB.Create(&user).Error; err != nil {
		return user, errors.NewAppError(errors.ErrCodeDBError, "failed to create user", err)
	}
	return user, nil
}

// Authenticate returns the user matching the credentials. The error is the
// same whether the email is unknown or the password mismatches.
func Authenticate(email, password string) (models.User, error) {
	invalid := errors.NewAppError(errors.ErrCodeInvalidCredentials, "Invalid email or password", nil)

	user, err := GetUserByEmail(strings.ToLower(email))
	if err != nil {
		return user, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return user, invalid
	}
	return user, nil
}

// CreateGoogleUser provisions an account for a verified Google identity.
// The generated password is random; such accounts sign in via Google only.
func CreateGoogleUser(name, email, avatar string) (models.User, error) {
	password, err := randomPassword(32)
	if err != nil {
		return models.User{}, err
	}
	return CreateUser(models.User{
		Name:     name,
		Email:    email,
		Password: password,
		Avatar:   avatar,
		Role:     models.RoleEntrepreneur,
	})
}

func randomPassword(length int) (string, error) {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	var sb strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			return "", err
		}
		sb.WriteByte(chars[n.Int64()])
	}
	return sb.String(), nil
}

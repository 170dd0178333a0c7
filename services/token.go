package services

import (
	"os"
	"time"

	"failfund/errors"

	"github.com/dgrijalva/jwt-go"
)

// Tokens are valid for 7 days from issue.
const TokenExpiry = 7 * 24 * time.Hour

type UserInfo struct {
	UserID uint   `json:"userid"`
	Email  string `json:"email"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func secretKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func GenerateToken(userInfo UserInfo) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(TokenExpiry).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ParseToken verifies the signature and expiry and returns the embedded
// principal.
func ParseToken(tokenString string) (UserInfo, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "unexpected signing method", nil)
		}
		return secretKey(), nil
	})
	if err != nil {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid or expired token", err)
	}
	if !token.Valid {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid or expired token", nil)
	}
	if claims.UserInfo.UserID == 0 {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "user info missing from token", nil)
	}
	return claims.UserInfo, nil
}

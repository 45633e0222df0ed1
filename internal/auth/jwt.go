package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rogerio-castellano/store-api/internal/models"
)

// TokenTTL is the validity window of an issued token.
const TokenTTL = 10 * time.Minute

var jwtSecret []byte

var ErrNoSecret = errors.New("jwt secret not configured")

// SetSecret installs the process-wide signing secret. Called once at startup,
// before any token is issued or verified.
func SetSecret(secret string) {
	jwtSecret = []byte(secret)
}

// GenerateToken issues an HS256 token carrying the user's id and username,
// expiring in TokenTTL.
func GenerateToken(user models.User) (string, error) {
	if len(jwtSecret) == 0 {
		return "", ErrNoSecret
	}
	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken verifies signature and expiry of tokenStr.
func ParseToken(tokenStr string) (*jwt.Token, error) {
	if len(jwtSecret) == 0 {
		return nil, ErrNoSecret
	}
	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
}

// TokenClaims verifies an Authorization header value, with or without the
// "Bearer " prefix, and returns the decoded claims.
func TokenClaims(authorization string) (*jwt.Token, jwt.MapClaims, error) {
	tokenStr := strings.TrimPrefix(authorization, "Bearer ")
	token, err := ParseToken(tokenStr)
	if err != nil {
		return nil, nil, err
	}
	if !token.Valid {
		return nil, nil, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil, jwt.ErrTokenInvalidClaims
	}
	return token, claims, nil
}

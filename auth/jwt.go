package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/models"
)

// IssueToken signs a 7-day HMAC token carrying the user's id, email and role.
func IssueToken(secret string, user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

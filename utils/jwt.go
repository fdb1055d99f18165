package utils

import (
	"errors"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

var secretKey = []byte("rahasia-super-kuat")

func init() {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		secretKey = []byte(s)
	}
}

// GenerateToken dipakai tooling dan test; penerbitan token di produksi
// ada di layanan auth terpisah yang berbagi secret yang sama.
func GenerateToken(userID uint, nama string, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"nama":    nama,
		"role":    role,
	})
	return token.SignedString(secretKey)
}

func VerifyToken(tokenString string) (jwt.MapClaims, error) {
	token, _ := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})

	if token != nil {
		if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
			return claims, nil
		}
	}
	return nil, errors.New("token tidak valid")
}

package models

import "github.com/golang-jwt/jwt/v5"

type Claims struct {
	AccountID string `json:"accountId"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

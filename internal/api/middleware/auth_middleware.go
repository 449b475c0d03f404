package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	appErrors "github.com/commercekit/storefront-bff/internal/errors"
	"github.com/commercekit/storefront-bff/internal/models"
	"github.com/commercekit/storefront-bff/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
)

type authContextKey string

const claimsKey = authContextKey("claims")

type AuthMiddleware struct {
	jwtKey []byte
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {
	return &AuthMiddleware{jwtKey: jwtKey}
}

// Optional parses a bearer token when one is present. An invalid token is
// treated as no token: the request proceeds anonymously, it does not fail.
// Order access for anonymous shoppers is enforced by the ownership guard, not
// here.
func (m *AuthMiddleware) Optional(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, err := m.parse(r)
		if err != nil {
			LoggerFromContext(r.Context()).Debug("Ignoring invalid bearer token", slog.String("error", err.Error()))
			next.ServeHTTP(w, r)
			return
		}

		if claims == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// Require rejects requests without a valid bearer token.
func (m *AuthMiddleware) Require(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		claims, err := m.parse(r)
		if err != nil {
			logger.Warn("JWT verification failed", slog.String("error", err.Error()))
			response.Error(w, appErrors.UnauthorizedError("Invalid or expired token"))
			return
		}

		if claims == nil {
			logger.Warn("Missing authorization header")
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// parse returns (nil, nil) when no Authorization header is present.
func (m *AuthMiddleware) parse(r *http.Request) (*models.Claims, error) {

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, appErrors.UnauthorizedError("Invalid authorization format")
	}

	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.UnauthorizedError("unexpected signing method")
		}
		return m.jwtKey, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, appErrors.UnauthorizedError("Invalid token")
	}

	return claims, nil
}

func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*models.Claims)
	return claims, ok
}

// ContextWithClaims is a test helper mirroring what Require/Optional do.
func ContextWithClaims(ctx context.Context, claims *models.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

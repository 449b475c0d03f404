package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/commercekit/storefront-bff/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWTKey = []byte("test-secret")

func signedToken(t *testing.T, accountID string, key []byte) string {
	t.Helper()

	claims := &models.Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestOptional(t *testing.T) {

	mw := NewAuthMiddleware(testJWTKey)

	t.Run("no token proceeds anonymously", func(t *testing.T) {
		var sawClaims bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, sawClaims = ClaimsFromContext(r.Context())
		})

		r := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		rec := httptest.NewRecorder()

		mw.Optional(next)(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, sawClaims)
	})

	t.Run("invalid token is treated as no token", func(t *testing.T) {
		var sawClaims bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, sawClaims = ClaimsFromContext(r.Context())
		})

		r := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		r.Header.Set("Authorization", "Bearer "+signedToken(t, "acc-1", []byte("wrong-key")))
		rec := httptest.NewRecorder()

		mw.Optional(next)(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, sawClaims)
	})

	t.Run("valid token puts claims into the context", func(t *testing.T) {
		var claims *models.Claims
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, _ = ClaimsFromContext(r.Context())
		})

		r := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		r.Header.Set("Authorization", "Bearer "+signedToken(t, "acc-1", testJWTKey))
		rec := httptest.NewRecorder()

		mw.Optional(next)(rec, r)

		require.NotNil(t, claims)
		assert.Equal(t, "acc-1", claims.AccountID)
	})
}

func TestRequire(t *testing.T) {

	mw := NewAuthMiddleware(testJWTKey)

	t.Run("missing token is rejected", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		})

		r := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
		rec := httptest.NewRecorder()

		mw.Require(next)(rec, r)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		claims := &models.Claims{
			AccountID: "acc-1",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testJWTKey)
		require.NoError(t, err)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		})

		r := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		mw.Require(next)(rec, r)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		})

		r := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
		r.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()

		mw.Require(next)(rec, r)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token passes through", func(t *testing.T) {
		var claims *models.Claims
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, _ = ClaimsFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		r := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
		r.Header.Set("Authorization", "Bearer "+signedToken(t, "acc-1", testJWTKey))
		rec := httptest.NewRecorder()

		mw.Require(next)(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, claims)
		assert.Equal(t, "acc-1", claims.AccountID)
	})
}

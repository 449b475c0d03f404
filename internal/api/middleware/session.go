package middleware

import (
	"context"
	"log/slog"
	"net/http"

	appErrors "github.com/commercekit/storefront-bff/internal/errors"
	"github.com/commercekit/storefront-bff/internal/models"
	"github.com/commercekit/storefront-bff/internal/session"
	"github.com/commercekit/storefront-bff/internal/utils/response"
	"github.com/google/uuid"
)

type sessionContextKey string

const sessionKey = sessionContextKey("session")

// State is the session binding resolved for the current request. Handlers
// receive it explicitly, mutate a copy, and persist it through the store —
// never through a hidden ambient context.
type State struct {
	ID   string
	Data models.SessionData
}

type SessionMiddleware struct {
	store      session.Store
	cookieName string
}

func NewSessionMiddleware(store session.Store, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{store: store, cookieName: cookieName}
}

// Resolve loads the shopper's session binding (minting a new session id when
// the cookie is absent) and puts it into the request context. When a JWT has
// already been verified, the account id from the claims wins over whatever the
// stored session carried.
func (m *SessionMiddleware) Resolve(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		sessionID := ""
		if cookie, err := r.Cookie(m.cookieName); err == nil {
			sessionID = cookie.Value
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     m.cookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		data, err := m.store.Get(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to load session", slog.String("error", err.Error()))
			response.Error(w, appErrors.InternalError("Failed to load session"))
			return
		}

		if claims, ok := ClaimsFromContext(r.Context()); ok {
			data.AccountID = claims.AccountID
		} else {
			data.AccountID = ""
		}

		state := &State{ID: sessionID, Data: data}
		ctx := context.WithValue(r.Context(), sessionKey, state)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func SessionFromContext(ctx context.Context) (*State, bool) {
	state, ok := ctx.Value(sessionKey).(*State)
	return state, ok
}

// ContextWithSession is a test helper mirroring what Resolve does.
func ContextWithSession(ctx context.Context, state *State) context.Context {
	return context.WithValue(ctx, sessionKey, state)
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/commercekit/storefront-bff/internal/api/middleware"
	appErrors "github.com/commercekit/storefront-bff/internal/errors"
	"github.com/commercekit/storefront-bff/internal/session"
	"github.com/commercekit/storefront-bff/internal/utils"
	"github.com/commercekit/storefront-bff/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// sessionState pulls the resolved session binding out of the context; the
// session middleware guarantees it is present on every action route.
func sessionState(w http.ResponseWriter, r *http.Request) (*middleware.State, bool) {

	state, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		middleware.LoggerFromContext(r.Context()).Error("Session middleware missing on route")
		response.Error(w, appErrors.InternalError("Session is not available"))
		return nil, false
	}

	return state, true
}

// parseBody decodes and validates a JSON body, reporting a validation error
// before any backend call is made.
func parseBody(w http.ResponseWriter, r *http.Request, dest any, validate *validator.Validate) bool {

	logger := middleware.LoggerFromContext(r.Context())

	if err := utils.DecodeJSONBody(r, dest); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		response.Error(w, appErrors.ValidationError(err.Error()))
		return false
	}

	if err := utils.ValidateStruct(validate, dest); err != nil {
		logger.Warn("Request validation failed", slog.String("error", err.Error()))
		response.Error(w, appErrors.ValidationError(err.Error()))
		return false
	}

	return true
}

// parseOptionalBody tolerates an absent body; some actions (update cart,
// checkout) are valid without one.
func parseOptionalBody(w http.ResponseWriter, r *http.Request, dest any, validate *validator.Validate) bool {

	if r.Body == nil || r.ContentLength == 0 {
		return true
	}

	return parseBody(w, r, dest, validate)
}

// finish persists the projected session binding and writes the response
// envelope. Losing the session write would silently detach the shopper from
// their cart, so it fails the request.
func finish(w http.ResponseWriter, r *http.Request, store session.Store, state *middleware.State, data any) {

	if err := store.Put(r.Context(), state.ID, state.Data); err != nil {
		middleware.LoggerFromContext(r.Context()).Error("Failed to persist session", slog.String("error", err.Error()))
		response.Error(w, appErrors.InternalError("Failed to persist session"))
		return
	}

	response.Success(w, http.StatusOK, data, &state.Data)
}

package service

import (
	"github.com/commercekit/storefront-bff/internal/commerce"
	appErrors "github.com/commercekit/storefront-bff/internal/errors"
)

// wrapBackendError converts a commerce client failure into the app taxonomy.
// Version conflicts get their own kind so callers can refetch and reissue;
// everything else keeps the backend's diagnostics verbatim in the detail.
func wrapBackendError(err error, message string) error {

	apiErr, ok := commerce.AsAPIError(err)
	if !ok {
		return appErrors.ExternalSystemError(message).WithError(err)
	}

	if apiErr.IsConflict() {
		return appErrors.ConflictError(apiErr.Message).WithDetail(apiErr.Body).WithError(err)
	}

	return appErrors.ExternalSystemError(apiErr.Message).WithDetail(apiErr.Body).WithError(err)
}

func isNotFound(err error) bool {
	apiErr, ok := commerce.AsAPIError(err)
	return ok && apiErr.IsNotFound()
}

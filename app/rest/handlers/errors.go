package handlers

import (
	"github.com/labstack/echo/v4"

	apperrors "provisioning-service/app/utils/errors"
)

// respondError renders the AppError found in err's chain, so the code and
// HTTP status taxonomy stays in utils/errors. Errors carrying no AppError
// are treated as backend failures.
func respondError(c echo.Context, err error) error {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.Wrap(apperrors.ErrCodeBackendError, "backend request failed", err)
	}
	return c.JSON(appErr.StatusCode, ErrorResponse{
		Error: appErr.Message,
		Code:  string(appErr.Code),
	})
}

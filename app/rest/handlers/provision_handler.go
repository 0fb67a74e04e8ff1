package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"provisioning-service/app/domain"
	"provisioning-service/app/port"
	apperrors "provisioning-service/app/utils/errors"
	"provisioning-service/app/utils/validator"
)

// ProvisionHandler handles onboarding HTTP requests. Bearer verification
// happens upstream; the request body carries the authenticated principal.
type ProvisionHandler struct {
	provisioning port.ProvisioningUsecase
	validator    *validator.Validator
	logger       *slog.Logger
}

// NewProvisionHandler creates a new provision handler
func NewProvisionHandler(provisioning port.ProvisioningUsecase, logger *slog.Logger) *ProvisionHandler {
	return &ProvisionHandler{
		provisioning: provisioning,
		validator:    validator.New(),
		logger:       logger,
	}
}

// Provision runs the onboarding pipeline for one authenticated user
// @Summary Provision portal access
// @Tags provisioning
// @Accept json
// @Produce json
// @Success 200 {object} domain.OnboardingResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /v1/provision [post]
func (h *ProvisionHandler) Provision(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.OnboardingRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.Wrap(apperrors.ErrCodeInvalidInput, "invalid request body", err))
	}
	if err := h.validator.Validate(req); err != nil {
		return respondError(c, apperrors.Wrap(apperrors.ErrCodeValidationFailed, err.Error(), err))
	}

	h.logger.Info("provisioning requested",
		"user_id", req.UserID,
		"email", req.Email,
		"ip", c.RealIP())

	result, err := h.provisioning.Onboard(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return respondError(c, apperrors.Wrap(apperrors.ErrCodeProductNotFound, err.Error(), err))
		}
		h.logger.Error("provisioning failed",
			"user_id", req.UserID,
			"step", result.Step,
			"error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

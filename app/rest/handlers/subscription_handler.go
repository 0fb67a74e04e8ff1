package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"provisioning-service/app/domain"
	"provisioning-service/app/port"
	apperrors "provisioning-service/app/utils/errors"
)

// SubscriptionHandler handles subscription key rotation requests
type SubscriptionHandler struct {
	subscriptions port.SubscriptionUsecase
	logger        *slog.Logger
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subscriptions port.SubscriptionUsecase, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptions: subscriptions,
		logger:        logger,
	}
}

type regenerateKeyRequest struct {
	UserID string `json:"user_id"`
}

// RegeneratePrimaryKey rotates a subscription's primary key
// @Summary Regenerate primary key
// @Tags subscriptions
// @Accept json
// @Produce json
// @Success 200 {object} domain.Subscription
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /v1/subscriptions/:id/keys/primary [post]
func (h *SubscriptionHandler) RegeneratePrimaryKey(c echo.Context) error {
	return h.regenerate(c, h.subscriptions.RegeneratePrimaryKey)
}

// RegenerateSecondaryKey rotates a subscription's secondary key
// @Summary Regenerate secondary key
// @Tags subscriptions
// @Accept json
// @Produce json
// @Success 200 {object} domain.Subscription
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /v1/subscriptions/:id/keys/secondary [post]
func (h *SubscriptionHandler) RegenerateSecondaryKey(c echo.Context) error {
	return h.regenerate(c, h.subscriptions.RegenerateSecondaryKey)
}

func (h *SubscriptionHandler) regenerate(c echo.Context, rotate func(ctx context.Context, subscriptionID, userID string) (domain.Subscription, bool, error)) error {
	ctx := c.Request().Context()
	subscriptionID := c.Param("id")

	var req regenerateKeyRequest
	if err := c.Bind(&req); err != nil || req.UserID == "" {
		return respondError(c, apperrors.New(apperrors.ErrCodeInvalidInput, "user_id is required"))
	}

	subscription, ok, err := rotate(ctx, subscriptionID, req.UserID)
	if err != nil {
		h.logger.Error("key rotation failed",
			"subscription_id", subscriptionID,
			"error", err)
		return respondError(c, err)
	}
	if !ok {
		// Ownership mismatch and not-found are indistinguishable on purpose
		return respondError(c, apperrors.New(apperrors.ErrCodeSubscriptionForbidden, "subscription is not accessible"))
	}

	return c.JSON(http.StatusOK, subscription)
}

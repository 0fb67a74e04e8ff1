package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"provisioning-service/app/domain"
	mock_port "provisioning-service/app/mocks"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSubscriptionHandler_RegeneratePrimaryKey(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMocks   func(*mock_port.MockSubscriptionUsecase)
		expectStatus int
		expectCode   string
	}{
		{
			name: "owner rotates key",
			body: `{"user_id":"u1"}`,
			setupMocks: func(uc *mock_port.MockSubscriptionUsecase) {
				uc.EXPECT().RegeneratePrimaryKey(gomock.Any(), "sub-1", "u1").
					Return(domain.Subscription{
						ID:         "sub-1",
						UserID:     "u1",
						PrimaryKey: "fresh-key",
					}, true, nil)
			},
			expectStatus: http.StatusOK,
		},
		{
			name:         "missing user id",
			body:         `{}`,
			expectStatus: http.StatusBadRequest,
			expectCode:   "INVALID_INPUT",
		},
		{
			name: "non-owner is refused",
			body: `{"user_id":"intruder"}`,
			setupMocks: func(uc *mock_port.MockSubscriptionUsecase) {
				uc.EXPECT().RegeneratePrimaryKey(gomock.Any(), "sub-1", "intruder").
					Return(domain.Subscription{}, false, nil)
			},
			expectStatus: http.StatusForbidden,
			expectCode:   "SUBSCRIPTION_FORBIDDEN",
		},
		{
			name: "backend failure maps to 502",
			body: `{"user_id":"u1"}`,
			setupMocks: func(uc *mock_port.MockSubscriptionUsecase) {
				uc.EXPECT().RegeneratePrimaryKey(gomock.Any(), "sub-1", "u1").
					Return(domain.Subscription{}, false, assert.AnError)
			},
			expectStatus: http.StatusBadGateway,
			expectCode:   "BACKEND_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsecase := mock_port.NewMockSubscriptionUsecase(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(mockUsecase)
			}

			handler := NewSubscriptionHandler(mockUsecase, testLogger())

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions/sub-1/keys/primary", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues("sub-1")

			err := handler.RegeneratePrimaryKey(c)
			require.NoError(t, err)
			assert.Equal(t, tt.expectStatus, rec.Code)

			if tt.expectCode != "" {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectCode, resp.Code)
			}

			if tt.expectStatus == http.StatusOK {
				var subscription domain.Subscription
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subscription))
				assert.Equal(t, "fresh-key", subscription.PrimaryKey)
			}
		})
	}
}

func TestSubscriptionHandler_RegenerateSecondaryKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mock_port.NewMockSubscriptionUsecase(ctrl)
	mockUsecase.EXPECT().RegenerateSecondaryKey(gomock.Any(), "sub-1", "u1").
		Return(domain.Subscription{ID: "sub-1", UserID: "u1", SecondaryKey: "fresh-key"}, true, nil)

	handler := NewSubscriptionHandler(mockUsecase, testLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions/sub-1/keys/secondary", strings.NewReader(`{"user_id":"u1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("sub-1")

	err := handler.RegenerateSecondaryKey(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var subscription domain.Subscription
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subscription))
	assert.Equal(t, "fresh-key", subscription.SecondaryKey)
}

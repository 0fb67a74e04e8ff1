package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"provisioning-service/app/domain"
	mock_port "provisioning-service/app/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCredentialCache_Ensure(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		setupMocks func(*mock_port.MockIdentityGateway)
		expectErr  bool
	}{
		{
			name: "successful refresh on empty cache",
			setupMocks: func(gw *mock_port.MockIdentityGateway) {
				gw.EXPECT().Login(gomock.Any()).Return("mgmt-key", nil)
				gw.EXPECT().FetchToken(gomock.Any(), "mgmt-key").
					Return(domain.TokenResponse{AccessToken: "token-1"}, nil)
			},
			expectErr: false,
		},
		{
			name: "login failure propagates without retry",
			setupMocks: func(gw *mock_port.MockIdentityGateway) {
				gw.EXPECT().Login(gomock.Any()).Return("", assert.AnError)
			},
			expectErr: true,
		},
		{
			name: "token fetch failure propagates without retry",
			setupMocks: func(gw *mock_port.MockIdentityGateway) {
				gw.EXPECT().Login(gomock.Any()).Return("mgmt-key", nil)
				gw.EXPECT().FetchToken(gomock.Any(), "mgmt-key").
					Return(domain.TokenResponse{}, assert.AnError)
			},
			expectErr: true,
		},
		{
			name: "empty access token is rejected",
			setupMocks: func(gw *mock_port.MockIdentityGateway) {
				gw.EXPECT().Login(gomock.Any()).Return("mgmt-key", nil)
				gw.EXPECT().FetchToken(gomock.Any(), "mgmt-key").
					Return(domain.TokenResponse{AccessToken: ""}, nil)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGateway := mock_port.NewMockIdentityGateway(ctrl)
			tt.setupMocks(mockGateway)

			cache := NewCredentialCache(mockGateway, time.Hour, func() time.Time { return base }, testLogger())

			cred, err := cache.Ensure(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
				assert.True(t, cred.IsZero())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "mgmt-key", cred.ManagementKey)
				assert.Equal(t, "token-1", cred.AccessToken)
				assert.Equal(t, base.Add(time.Hour), cred.ExpiresAt)
			}
		})
	}
}

func TestCredentialCache_Ensure_ReusesValidCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockGateway := mock_port.NewMockIdentityGateway(ctrl)
	mockGateway.EXPECT().Login(gomock.Any()).Return("mgmt-key", nil).Times(1)
	mockGateway.EXPECT().FetchToken(gomock.Any(), "mgmt-key").
		Return(domain.TokenResponse{AccessToken: "token-1"}, nil).Times(1)

	cache := NewCredentialCache(mockGateway, time.Hour, func() time.Time { return now }, testLogger())

	first, err := cache.Ensure(context.Background())
	require.NoError(t, err)

	// Anywhere inside the TTL window the cached credential comes back
	// unchanged with no identity provider traffic.
	now = now.Add(59 * time.Minute)
	second, err := cache.Ensure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCredentialCache_Ensure_RefreshesAfterTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockGateway := mock_port.NewMockIdentityGateway(ctrl)
	first := mockGateway.EXPECT().Login(gomock.Any()).Return("mgmt-key-1", nil)
	mockGateway.EXPECT().FetchToken(gomock.Any(), "mgmt-key-1").
		Return(domain.TokenResponse{AccessToken: "token-1"}, nil).After(first)
	second := mockGateway.EXPECT().Login(gomock.Any()).Return("mgmt-key-2", nil)
	mockGateway.EXPECT().FetchToken(gomock.Any(), "mgmt-key-2").
		Return(domain.TokenResponse{AccessToken: "token-2"}, nil).After(second)

	cache := NewCredentialCache(mockGateway, time.Hour, func() time.Time { return now }, testLogger())

	cred, err := cache.Ensure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", cred.AccessToken)

	// Exactly at expiry the credential is no longer valid.
	now = now.Add(time.Hour)
	cred, err = cache.Ensure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-2", cred.AccessToken)
	assert.Equal(t, now.Add(time.Hour), cred.ExpiresAt)
}

func TestCredentialCache_Ensure_FailedRefreshKeepsCacheEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockGateway := mock_port.NewMockIdentityGateway(ctrl)
	mockGateway.EXPECT().Login(gomock.Any()).Return("", assert.AnError)
	mockGateway.EXPECT().Login(gomock.Any()).Return("mgmt-key", nil)
	mockGateway.EXPECT().FetchToken(gomock.Any(), "mgmt-key").
		Return(domain.TokenResponse{AccessToken: "token-1"}, nil)

	cache := NewCredentialCache(mockGateway, time.Hour, func() time.Time { return now }, testLogger())

	_, err := cache.Ensure(context.Background())
	require.Error(t, err)

	// The next call attempts a fresh login rather than serving a broken
	// credential.
	cred, err := cache.Ensure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", cred.AccessToken)
}

func TestCredentialCache_Ensure_RefreshDoesNotBlockConcurrentCallers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := mock_port.NewMockIdentityGateway(ctrl)

	// Both refreshes must reach the identity provider at the same time; a
	// cache that held its lock across the remote call would deadlock here.
	var inFlight sync.WaitGroup
	inFlight.Add(2)
	mockGateway.EXPECT().Login(gomock.Any()).
		DoAndReturn(func(context.Context) (string, error) {
			inFlight.Done()
			inFlight.Wait()
			return "mgmt-key", nil
		}).Times(2)
	mockGateway.EXPECT().FetchToken(gomock.Any(), "mgmt-key").
		Return(domain.TokenResponse{AccessToken: "token-1"}, nil).
		Times(2)

	cache := NewCredentialCache(mockGateway, time.Hour, nil, testLogger())

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := cache.Ensure(context.Background())
			errs <- err
		}()
	}
	for i := 0; i < 2; i++ {
		assert.NoError(t, <-errs)
	}

	// Last write won; subsequent calls serve the cached credential.
	cred, err := cache.Ensure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", cred.AccessToken)
}

package usecase

import (
	"context"
	"testing"

	"provisioning-service/app/domain"
	mock_port "provisioning-service/app/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGroupReconciler_AddUserToGroups(t *testing.T) {
	user := domain.DirectoryUser{ID: "/users/u1", Name: "u1"}

	tests := []struct {
		name        string
		user        domain.DirectoryUser
		desired     []string
		setupMocks  func(*mock_port.MockDirectoryGateway)
		expectAdded []string
		expectErr   error
	}{
		{
			name:    "adds only missing groups in desired order",
			user:    user,
			desired: []string{"readers", "writers", "admins"},
			setupMocks: func(gw *mock_port.MockDirectoryGateway) {
				gw.EXPECT().ListGroupsForUser(gomock.Any(), "u1").
					Return([]string{"writers"}, nil)
				gomock.InOrder(
					gw.EXPECT().AddUserToGroup(gomock.Any(), "readers", "u1").Return(nil),
					gw.EXPECT().AddUserToGroup(gomock.Any(), "admins", "u1").Return(nil),
				)
			},
			expectAdded: []string{"readers", "admins"},
		},
		{
			name:    "already satisfied set issues zero adds",
			user:    user,
			desired: []string{"readers", "writers"},
			setupMocks: func(gw *mock_port.MockDirectoryGateway) {
				gw.EXPECT().ListGroupsForUser(gomock.Any(), "u1").
					Return([]string{"readers", "writers", "extra"}, nil)
			},
			expectAdded: []string{},
		},
		{
			name:    "duplicate desired names collapse to one add",
			user:    user,
			desired: []string{"readers", "readers"},
			setupMocks: func(gw *mock_port.MockDirectoryGateway) {
				gw.EXPECT().ListGroupsForUser(gomock.Any(), "u1").
					Return([]string{}, nil)
				gw.EXPECT().AddUserToGroup(gomock.Any(), "readers", "u1").Return(nil)
			},
			expectAdded: []string{"readers"},
		},
		{
			name:      "missing user name refuses reconciliation",
			user:      domain.DirectoryUser{ID: "/users/u1"},
			desired:   []string{"readers"},
			expectErr: domain.ErrMissingUserName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGateway := mock_port.NewMockDirectoryGateway(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(mockGateway)
			}

			reconciler := NewGroupReconciler(mockGateway, testLogger())

			added, err := reconciler.AddUserToGroups(context.Background(), tt.user, tt.desired)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectAdded, added)
		})
	}
}

func TestGroupReconciler_AddUserToGroups_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := domain.DirectoryUser{Name: "u1"}
	desired := []string{"readers", "writers"}

	mockGateway := mock_port.NewMockDirectoryGateway(ctrl)
	mockGateway.EXPECT().ListGroupsForUser(gomock.Any(), "u1").Return([]string{}, nil)
	mockGateway.EXPECT().AddUserToGroup(gomock.Any(), "readers", "u1").Return(nil)
	mockGateway.EXPECT().AddUserToGroup(gomock.Any(), "writers", "u1").Return(nil)
	// Second pass sees the memberships the first pass created.
	mockGateway.EXPECT().ListGroupsForUser(gomock.Any(), "u1").
		Return([]string{"readers", "writers"}, nil)

	reconciler := NewGroupReconciler(mockGateway, testLogger())

	added, err := reconciler.AddUserToGroups(context.Background(), user, desired)
	require.NoError(t, err)
	assert.Equal(t, []string{"readers", "writers"}, added)

	added, err = reconciler.AddUserToGroups(context.Background(), user, desired)
	require.NoError(t, err)
	assert.Empty(t, added)
}

func TestGroupReconciler_AddUserToGroups_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := domain.DirectoryUser{Name: "u1"}

	mockGateway := mock_port.NewMockDirectoryGateway(ctrl)
	mockGateway.EXPECT().ListGroupsForUser(gomock.Any(), "u1").Return([]string{}, nil)
	mockGateway.EXPECT().AddUserToGroup(gomock.Any(), "readers", "u1").Return(nil)
	mockGateway.EXPECT().AddUserToGroup(gomock.Any(), "writers", "u1").Return(assert.AnError)

	reconciler := NewGroupReconciler(mockGateway, testLogger())

	// Applied memberships stay applied; the error reports what remained.
	added, err := reconciler.AddUserToGroups(context.Background(), user, []string{"readers", "writers", "admins"})
	assert.Error(t, err)
	assert.Equal(t, []string{"readers"}, added)
}

func TestGroupReconciler_AddUserToGroups_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := mock_port.NewMockDirectoryGateway(ctrl)
	mockGateway.EXPECT().ListGroupsForUser(gomock.Any(), "u1").Return(nil, assert.AnError)

	reconciler := NewGroupReconciler(mockGateway, testLogger())

	added, err := reconciler.AddUserToGroups(context.Background(), domain.DirectoryUser{Name: "u1"}, []string{"readers"})
	assert.Error(t, err)
	assert.Nil(t, added)
}

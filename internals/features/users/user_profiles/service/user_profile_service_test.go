package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/features/users/user_profiles/dto"
	"github.com/z-anah/nomor-surat/internals/features/users/user_profiles/model"
	"github.com/z-anah/nomor-surat/internals/helpers/supabase"
)

const authUserID = "6f1c2a9e-3f0b-4c1d-9a55-9b1f0e8c1d23"

type profilesMock struct{ mock.Mock }

func (m *profilesMock) Create(ctx context.Context, row *model.UserProfileModel) error {
	return m.Called(ctx, row).Error(0)
}

func (m *profilesMock) Update(ctx context.Context, id string, updates map[string]interface{}) (*model.UserProfileModel, error) {
	args := m.Called(ctx, id, updates)
	row, _ := args.Get(0).(*model.UserProfileModel)
	return row, args.Error(1)
}

func (m *profilesMock) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type authMock struct{ mock.Mock }

func (m *authMock) InviteUserByEmail(ctx context.Context, email string, data datatypes.JSONMap, redirectTo string) (*supabase.User, error) {
	args := m.Called(ctx, email, data, redirectTo)
	u, _ := args.Get(0).(*supabase.User)
	return u, args.Error(1)
}

func (m *authMock) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type names map[string]int64

func (n names) FindIDByName(_ context.Context, name string) (*int64, error) {
	id, ok := n[name]
	if !ok {
		return nil, nil
	}
	return &id, nil
}

func newService(profiles *profilesMock, auth *authMock, log *zap.Logger) *UserProfileService {
	return &UserProfileService{
		Profiles:     profiles,
		UserTypes:    names{"admin": 1, "staff": 2},
		UserStatuses: names{"Aktif": 5},
		Auth:         auth,
		SiteURL:      "https://surat.example.org",
		Log:          log,
	}
}

func code(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "want *fiber.Error, got %T", err)
	return fe.Code
}

func ptr[T any](v T) *T { return &v }

func inviteRequest() dto.InviteUserRequest {
	return dto.InviteUserRequest{
		Email:      "budi@example.org",
		FullName:   "Budi Santoso",
		Username:   "budi",
		UserTypeID: ptr(int64(2)),
	}
}

func TestInviteDuplicateUsername(t *testing.T) {
	profiles, auth := new(profilesMock), new(authMock)
	profiles.On("UsernameExists", mock.Anything, "budi").Return(true, nil)

	_, err := newService(profiles, auth, zap.NewNop()).Invite(context.Background(), inviteRequest())

	assert.Equal(t, fiber.StatusConflict, code(t, err))
	assert.Equal(t, "Username already exists", err.Error())
	auth.AssertNotCalled(t, "InviteUserByEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInviteSuccess(t *testing.T) {
	profiles, auth := new(profilesMock), new(authMock)
	profiles.On("UsernameExists", mock.Anything, "budi").Return(false, nil)
	auth.On("InviteUserByEmail", mock.Anything, "budi@example.org",
		datatypes.JSONMap{"full_name": "Budi Santoso", "username": "budi", "user_type_id": int64(2)},
		"https://surat.example.org/auth/callback").
		Return(&supabase.User{ID: authUserID, Email: "budi@example.org"}, nil)
	profiles.On("Create", mock.Anything, mock.MatchedBy(func(m *model.UserProfileModel) bool {
		return m.ID == authUserID && m.Username == "budi" && *m.UserTypeID == 2 && m.UserStatusID == nil &&
			m.Email != nil && *m.Email == "budi@example.org"
	})).Return(nil)

	res, err := newService(profiles, auth, zap.NewNop()).Invite(context.Background(), inviteRequest())

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, authUserID, res.User.ID)
	auth.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
	auth.AssertExpectations(t)
}

func TestInviteAuthError(t *testing.T) {
	profiles, auth := new(profilesMock), new(authMock)
	profiles.On("UsernameExists", mock.Anything, "budi").Return(false, nil)
	auth.On("InviteUserByEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &supabase.APIError{Status: 422, Msg: "A user with this email address has already been registered"})

	_, err := newService(profiles, auth, zap.NewNop()).Invite(context.Background(), inviteRequest())

	assert.Equal(t, fiber.StatusInternalServerError, code(t, err))
	assert.Equal(t, "A user with this email address has already been registered", err.Error())
	profiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInviteProfileFailureDeletesAuthUser(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	profiles, auth := new(profilesMock), new(authMock)
	profiles.On("UsernameExists", mock.Anything, "budi").Return(false, nil)
	auth.On("InviteUserByEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&supabase.User{ID: authUserID}, nil)
	profiles.On("Create", mock.Anything, mock.Anything).
		Return(errors.New(`duplicate key value violates unique constraint "ns_user_profile_username_key"`))
	auth.On("DeleteUser", mock.Anything, authUserID).Return(nil).Once()

	_, err := newService(profiles, auth, zap.New(core)).Invite(context.Background(), inviteRequest())

	assert.Equal(t, fiber.StatusInternalServerError, code(t, err))
	assert.Contains(t, err.Error(), "ns_user_profile_username_key")
	auth.AssertExpectations(t)
	assert.Equal(t, 1, logs.FilterMessage("invited auth user removed after profile insert failed").Len())
}

func TestInviteRollbackFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	profiles, auth := new(profilesMock), new(authMock)
	profiles.On("UsernameExists", mock.Anything, "budi").Return(false, nil)
	auth.On("InviteUserByEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&supabase.User{ID: authUserID}, nil)
	profiles.On("Create", mock.Anything, mock.Anything).Return(errors.New("boom"))
	auth.On("DeleteUser", mock.Anything, authUserID).Return(errors.New("gotrue down"))

	_, err := newService(profiles, auth, zap.New(core)).Invite(context.Background(), inviteRequest())

	assert.EqualError(t, err, "boom")
	assert.Equal(t, 1, logs.FilterMessage("rollback invited auth user failed").Len())
}

func TestUpdateResolvesNames(t *testing.T) {
	profiles := new(profilesMock)
	profiles.On("Update", mock.Anything, authUserID, map[string]interface{}{
		"full_name":      "Budi S.",
		"user_type_id":   int64(1),
		"user_status_id": int64(5),
	}).Return(&model.UserProfileModel{ID: authUserID, FullName: "Budi S."}, nil)

	row, err := newService(profiles, new(authMock), nil).Update(context.Background(), authUserID, dto.UpdateUserProfileRequest{
		FullName:       ptr(" Budi S. "),
		UserTypeID:     ptr(int64(2)),
		UserTypeName:   ptr("admin"),
		UserStatusName: ptr("Aktif"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Budi S.", row.FullName)
	profiles.AssertExpectations(t)
}

func TestUpdateUnknownName(t *testing.T) {
	profiles := new(profilesMock)

	_, err := newService(profiles, new(authMock), nil).Update(context.Background(), authUserID, dto.UpdateUserProfileRequest{
		UserStatusName: ptr("Pensiun"),
	})

	assert.Equal(t, fiber.StatusBadRequest, code(t, err))
	assert.Equal(t, `user_status_name "Pensiun" not found`, err.Error())
	profiles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateNothingAndMissingRow(t *testing.T) {
	profiles := new(profilesMock)
	profiles.On("Update", mock.Anything, authUserID, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
	svc := newService(profiles, new(authMock), nil)

	_, err := svc.Update(context.Background(), authUserID, dto.UpdateUserProfileRequest{})
	assert.Equal(t, fiber.StatusBadRequest, code(t, err))

	_, err = svc.Update(context.Background(), authUserID, dto.UpdateUserProfileRequest{Username: ptr("budi2")})
	assert.Equal(t, fiber.StatusNotFound, code(t, err))
}

func TestUpdateClearsClassification(t *testing.T) {
	profiles := new(profilesMock)
	profiles.On("Update", mock.Anything, authUserID, map[string]interface{}{
		"user_type_id":   nil,
		"user_status_id": nil,
	}).Return(&model.UserProfileModel{ID: authUserID}, nil)

	row, err := newService(profiles, new(authMock), nil).Update(context.Background(), authUserID, dto.UpdateUserProfileRequest{
		ClearUserType:   true,
		ClearUserStatus: true,
	})

	require.NoError(t, err)
	assert.Nil(t, row.UserTypeID)
	assert.Nil(t, row.UserStatusID)
	profiles.AssertExpectations(t)
}

func TestUpdateNameWinsOverClear(t *testing.T) {
	profiles := new(profilesMock)
	profiles.On("Update", mock.Anything, authUserID, map[string]interface{}{
		"user_type_id": int64(2),
	}).Return(&model.UserProfileModel{ID: authUserID}, nil)

	_, err := newService(profiles, new(authMock), nil).Update(context.Background(), authUserID, dto.UpdateUserProfileRequest{
		ClearUserType: true,
		UserTypeName:  ptr("staff"),
	})

	require.NoError(t, err)
	profiles.AssertExpectations(t)
}

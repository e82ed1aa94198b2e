package controller

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/features/users/user_profiles/dto"
	"github.com/z-anah/nomor-surat/internals/features/users/user_profiles/model"
	"github.com/z-anah/nomor-surat/internals/helpers/testapp"
)

const validID = "6f1c2a9e-3f0b-4c1d-9a55-9b1f0e8c1d23"

type stubReader struct{}

func (stubReader) List(context.Context) ([]dto.UserProfileResponse, error) {
	name := "admin"
	return []dto.UserProfileResponse{{ID: validID, FullName: "Budi", Username: "budi", UserTypeName: &name}}, nil
}

func (stubReader) FindByID(_ context.Context, id string) (*dto.UserProfileResponse, error) {
	if id != validID {
		return nil, gorm.ErrRecordNotFound
	}
	return &dto.UserProfileResponse{ID: id, FullName: "Budi", Username: "budi"}, nil
}

type recordingService struct {
	created []dto.CreateUserProfileRequest
	invited []dto.InviteUserRequest
	updated []dto.UpdateUserProfileRequest
}

func (s *recordingService) Create(_ context.Context, req dto.CreateUserProfileRequest) (*model.UserProfileModel, error) {
	s.created = append(s.created, req)
	m := req.ToModel()
	return &m, nil
}

func (s *recordingService) Update(_ context.Context, id string, req dto.UpdateUserProfileRequest) (*model.UserProfileModel, error) {
	s.updated = append(s.updated, req)
	return &model.UserProfileModel{ID: id}, nil
}

func (s *recordingService) Invite(_ context.Context, req dto.InviteUserRequest) (*dto.InviteUserResponse, error) {
	s.invited = append(s.invited, req)
	return &dto.InviteUserResponse{Success: true, User: model.UserProfileModel{ID: validID, Username: req.Username}}, nil
}

func newApp(svc *recordingService) *fiber.App {
	ctrl := NewUserProfileController(stubReader{}, svc)
	app := testapp.New()
	g := app.Group("/user-profiles")
	g.Get("/", ctrl.GetAllUserProfiles)
	g.Post("/", ctrl.CreateUserProfile)
	g.Post("/invite", ctrl.InviteUser)
	g.Get("/:id", ctrl.GetUserProfile)
	g.Patch("/:id", ctrl.UpdateUserProfile)
	return app
}

func TestCreateUserProfileValidation(t *testing.T) {
	svc := &recordingService{}
	app := newApp(svc)

	code, body := testapp.Do(t, app, "POST", "/user-profiles", `{"full_name":"Budi"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body, "id and username are required")

	code, body = testapp.Do(t, app, "POST", "/user-profiles", `{"id":"123","full_name":"Budi","username":"budi"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body, "id must be a valid UUID")
	assert.Empty(t, svc.created)

	code, _ = testapp.Do(t, app, "POST", "/user-profiles", `{"id":"`+validID+`","full_name":"Budi","username":"budi"}`)
	assert.Equal(t, fiber.StatusCreated, code)
	assert.Len(t, svc.created, 1)
}

func TestInviteUserValidation(t *testing.T) {
	svc := &recordingService{}
	app := newApp(svc)

	code, body := testapp.Do(t, app, "POST", "/user-profiles/invite", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body, "email, full_name, and username are required")

	code, body = testapp.Do(t, app, "POST", "/user-profiles/invite", `{"email":"bukan-email","full_name":"Budi","username":"budi"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body, "email must be a valid email address")
	assert.Empty(t, svc.invited)

	code, body = testapp.Do(t, app, "POST", "/user-profiles/invite", `{"email":" Budi@Example.org ","full_name":"Budi","username":"budi"}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, `"success":true`)
	assert.Equal(t, "budi@example.org", svc.invited[0].Email)
}

func TestGetUserProfile(t *testing.T) {
	app := newApp(&recordingService{})

	code, body := testapp.Do(t, app, "GET", "/user-profiles/"+validID, "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, `"username":"budi"`)
	assert.Contains(t, body, `"user_type_name":null`)

	code, _ = testapp.Do(t, app, "GET", "/user-profiles/7a1c2a9e-3f0b-4c1d-9a55-9b1f0e8c1d23", "")
	assert.Equal(t, fiber.StatusNotFound, code)

	code, _ = testapp.Do(t, app, "GET", "/user-profiles/not-a-uuid", "")
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestListUserProfiles(t *testing.T) {
	code, body := testapp.Do(t, newApp(&recordingService{}), "GET", "/user-profiles", "")

	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, `"user_type_name":"admin"`)
}

func TestUpdateUserProfilePassesPartialBody(t *testing.T) {
	svc := &recordingService{}

	code, _ := testapp.Do(t, newApp(svc), "PATCH", "/user-profiles/"+validID, `{"user_status_name":"Aktif"}`)

	assert.Equal(t, fiber.StatusOK, code)
	if assert.Len(t, svc.updated, 1) {
		assert.Nil(t, svc.updated[0].FullName)
		assert.Equal(t, "Aktif", *svc.updated[0].UserStatusName)
	}
}

func TestUpdateUserProfileExplicitNullClears(t *testing.T) {
	svc := &recordingService{}

	code, _ := testapp.Do(t, newApp(svc), "PATCH", "/user-profiles/"+validID, `{"user_type_id":null,"full_name":"Budi"}`)

	assert.Equal(t, fiber.StatusOK, code)
	if assert.Len(t, svc.updated, 1) {
		assert.True(t, svc.updated[0].ClearUserType)
		// tidak dikirim → tidak disentuh
		assert.False(t, svc.updated[0].ClearUserStatus)
		assert.Nil(t, svc.updated[0].UserTypeID)
	}
}

func TestCreateUserProfileOptionalEmail(t *testing.T) {
	svc := &recordingService{}
	app := newApp(svc)

	code, body := testapp.Do(t, app, "POST", "/user-profiles", `{"id":"`+validID+`","full_name":"Budi","username":"budi","email":"salah"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body, "email must be a valid email address")

	code, body = testapp.Do(t, app, "POST", "/user-profiles", `{"id":"`+validID+`","full_name":"Budi","username":"budi","email":" Budi@Example.ORG "}`)
	assert.Equal(t, fiber.StatusCreated, code)
	assert.Contains(t, body, `"email":"budi@example.org"`)

	code, body = testapp.Do(t, app, "POST", "/user-profiles", `{"id":"`+validID+`","full_name":"Budi","username":"budi"}`)
	assert.Equal(t, fiber.StatusCreated, code)
	assert.Contains(t, body, `"email":null`)
}

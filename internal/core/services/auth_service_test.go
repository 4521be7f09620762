package services

import (
	"context"
	"testing"

	"github.com/sandhu28/HOCMAN/internal/adapters/persistence/models"
	"github.com/sandhu28/HOCMAN/internal/config"
	"github.com/sandhu28/HOCMAN/internal/core/domain"
	"github.com/sandhu28/HOCMAN/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
}

func newAuthService() (*AuthService, *MockUserRepository, *MockRefreshTokenRepository, *MockAdminRepository) {
	userRepo := new(MockUserRepository)
	refreshTokenRepo := new(MockRefreshTokenRepository)
	adminRepo := new(MockAdminRepository)
	svc := NewAuthService(userRepo, refreshTokenRepo, adminRepo, testConfig())
	return svc, userRepo, refreshTokenRepo, adminRepo
}

func hashed(t *testing.T, plain string) string {
	t.Helper()
	h, err := password.Hash(plain)
	assert.NoError(t, err)
	return h
}

func TestLogin_ResolvesAdminFromRegistry(t *testing.T) {
	svc, userRepo, refreshTokenRepo, adminRepo := newAuthService()
	ctx := context.Background()

	user := &models.User{
		ID:       1,
		Email:    "warden@hocman.app",
		Password: hashed(t, "correct-horse"),
		IsActive: true,
	}
	userRepo.On("GetByEmail", ctx, "warden@hocman.app").Return(user, nil)
	adminRepo.On("List", ctx).Return([]*models.AdminRecord{
		{UserID: 5, Email: "other@hocman.app", Hostel: "B2"},
		{UserID: 1, Email: "warden@hocman.app", Hostel: "G1"},
	}, nil)
	refreshTokenRepo.On("Create", ctx, mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	result, err := svc.Login(ctx, &LoginInput{Email: "warden@hocman.app", Password: "correct-horse"})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, result.Role)
	assert.NotNil(t, result.AdminRecord)
	assert.Equal(t, "G1", result.AdminRecord.Hostel)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
}

func TestLogin_AbsentFromRegistryIsResident(t *testing.T) {
	svc, userRepo, refreshTokenRepo, adminRepo := newAuthService()
	ctx := context.Background()

	user := &models.User{
		ID:       2,
		Email:    "resident@hocman.app",
		Password: hashed(t, "correct-horse"),
		IsActive: true,
	}
	userRepo.On("GetByEmail", ctx, "resident@hocman.app").Return(user, nil)
	adminRepo.On("List", ctx).Return([]*models.AdminRecord{
		{UserID: 1, Email: "warden@hocman.app", Hostel: "G1"},
	}, nil)
	refreshTokenRepo.On("Create", ctx, mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	result, err := svc.Login(ctx, &LoginInput{Email: "resident@hocman.app", Password: "correct-horse"})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleResident, result.Role)
	assert.Nil(t, result.AdminRecord)
}

func TestLogin_EmptyCredentialsRejectedBeforeStore(t *testing.T) {
	svc, userRepo, _, adminRepo := newAuthService()

	_, err := svc.Login(context.Background(), &LoginInput{Email: "", Password: ""})

	assert.ErrorIs(t, err, domain.ErrEmptyCredentials)
	userRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	adminRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, userRepo, _, adminRepo := newAuthService()
	ctx := context.Background()

	user := &models.User{
		ID:       2,
		Email:    "resident@hocman.app",
		Password: hashed(t, "correct-horse"),
		IsActive: true,
	}
	userRepo.On("GetByEmail", ctx, "resident@hocman.app").Return(user, nil)

	_, err := svc.Login(ctx, &LoginInput{Email: "resident@hocman.app", Password: "wrong"})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	// Role resolution never runs for a failed authentication
	adminRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, userRepo, _, _ := newAuthService()
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "ghost@hocman.app").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(ctx, &LoginInput{Email: "ghost@hocman.app", Password: "whatever"})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	svc, userRepo, _, _ := newAuthService()
	ctx := context.Background()

	user := &models.User{
		ID:       3,
		Email:    "inactive@hocman.app",
		Password: hashed(t, "correct-horse"),
		IsActive: false,
	}
	userRepo.On("GetByEmail", ctx, "inactive@hocman.app").Return(user, nil)

	_, err := svc.Login(ctx, &LoginInput{Email: "inactive@hocman.app", Password: "correct-horse"})

	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestRegister_AlwaysResident(t *testing.T) {
	svc, userRepo, refreshTokenRepo, adminRepo := newAuthService()
	ctx := context.Background()

	userRepo.On("ExistsByEmail", ctx, "new@hocman.app").Return(false, nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil)
	refreshTokenRepo.On("Create", ctx, mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	result, err := svc.Register(ctx, &RegisterInput{
		Name:     "New Resident",
		Email:    "new@hocman.app",
		Password: "longenough",
		Hostel:   "B2",
		Room:     "201",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleResident, result.Role)
	// Registration never consults the administrator registry
	adminRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestRegister_ValidationBeforeStore(t *testing.T) {
	tests := []struct {
		name  string
		input RegisterInput
		want  error
	}{
		{"empty credentials", RegisterInput{Email: "", Password: ""}, domain.ErrEmptyCredentials},
		{"malformed email", RegisterInput{Email: "not-an-email", Password: "longenough"}, domain.ErrInvalidEmail},
		{"short password", RegisterInput{Email: "a@b.c", Password: "short"}, domain.ErrPasswordTooShort},
		{"unknown hostel", RegisterInput{Email: "a@b.c", Password: "longenough", Hostel: "Z9"}, domain.ErrInvalidHostel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, userRepo, _, _ := newAuthService()

			_, err := svc.Register(context.Background(), &tt.input)

			assert.ErrorIs(t, err, tt.want)
			userRepo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
			userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, userRepo, _, _ := newAuthService()
	ctx := context.Background()

	userRepo.On("ExistsByEmail", ctx, "taken@hocman.app").Return(true, nil)

	_, err := svc.Register(ctx, &RegisterInput{
		Email:    "taken@hocman.app",
		Password: "longenough",
	})

	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogout_RevokesByHash(t *testing.T) {
	svc, _, refreshTokenRepo, _ := newAuthService()
	ctx := context.Background()

	refreshTokenRepo.On("RevokeByTokenHash", ctx, mock.AnythingOfType("string")).Return(nil)

	err := svc.Logout(ctx, "some-refresh-token")

	assert.NoError(t, err)
	refreshTokenRepo.AssertExpectations(t)
}

func TestLogoutAll_RevokesEverySession(t *testing.T) {
	svc, _, refreshTokenRepo, _ := newAuthService()
	ctx := context.Background()

	refreshTokenRepo.On("RevokeAllByUserID", ctx, uint(7)).Return(nil)

	err := svc.LogoutAll(ctx, 7)

	assert.NoError(t, err)
	refreshTokenRepo.AssertExpectations(t)
}

func TestRefreshToken_InvalidTokenRejected(t *testing.T) {
	svc, _, _, _ := newAuthService()

	_, err := svc.RefreshToken(context.Background(), "garbage")

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

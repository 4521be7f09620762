package services

import (
	"context"
	"errors"
	"log"

	"github.com/sandhu28/HOCMAN/internal/adapters/persistence/repositories"
	"github.com/sandhu28/HOCMAN/internal/core/domain"
	"github.com/sandhu28/HOCMAN/internal/pkg/password"

	"gorm.io/gorm"
)

// ProfileService handles identity-sensitive profile mutations. Every
// mutation goes through the re-auth gate: the caller's current password is
// verified immediately before the mutation runs, once per mutation. A
// session being valid is not enough.
type ProfileService struct {
	userRepo         repositories.UserRepository
	adminRepo        repositories.AdminRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

// NewProfileService creates a new profile service
func NewProfileService(
	userRepo repositories.UserRepository,
	adminRepo repositories.AdminRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) *ProfileService {
	return &ProfileService{
		userRepo:         userRepo,
		adminRepo:        adminRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

// ChangePasswordInput represents change password input
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangeHostelInput represents hostel reassignment input
type ChangeHostelInput struct {
	CurrentPassword string `json:"current_password"`
	Hostel          string `json:"hostel"`
}

// withReauth verifies the caller's current password, then runs exactly one
// mutation. The mutation is never attempted when re-authentication fails.
func (s *ProfileService) withReauth(ctx context.Context, userID uint, currentPassword string, mutation func(ctx context.Context) error) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if !password.Verify(currentPassword, user.Password) {
		return domain.ErrReauthFailed
	}

	return mutation(ctx)
}

// ChangePassword replaces the caller's password after re-authentication
// and revokes every session. The caller must sign in again with the new
// credentials; nothing keeps a stale session alive.
func (s *ProfileService) ChangePassword(ctx context.Context, userID uint, input *ChangePasswordInput) error {
	if !password.Validate(input.NewPassword) {
		return domain.ErrPasswordTooShort
	}

	err := s.withReauth(ctx, userID, input.CurrentPassword, func(ctx context.Context) error {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		hashed, err := password.Hash(input.NewPassword)
		if err != nil {
			return err
		}

		user.Password = hashed
		return s.userRepo.Update(ctx, user)
	})
	if err != nil {
		return err
	}

	// Forced sign-out: the old credential no longer vouches for any session
	if err := s.refreshTokenRepo.RevokeAllByUserID(ctx, userID); err != nil {
		return err
	}

	log.Printf("✅ Password changed for user ID: %d (all sessions revoked)", userID)
	return nil
}

// ChangeHostel reassigns an admin's hostel after re-authentication. The
// target hostel is validated against the fixed code set before anything
// touches the store or the identity layer.
func (s *ProfileService) ChangeHostel(ctx context.Context, userID uint, input *ChangeHostelInput) error {
	if input.Hostel == "" {
		return domain.ErrHostelRequired
	}
	if !domain.IsValidHostel(input.Hostel) {
		return domain.ErrInvalidHostel
	}

	return s.withReauth(ctx, userID, input.CurrentPassword, func(ctx context.Context) error {
		if _, err := s.adminRepo.GetByUserID(ctx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotAdmin
			}
			return err
		}

		if err := s.adminRepo.UpdateHostel(ctx, userID, input.Hostel); err != nil {
			return err
		}

		log.Printf("✅ Hostel reassigned for admin user ID: %d -> %s", userID, input.Hostel)
		return nil
	})
}

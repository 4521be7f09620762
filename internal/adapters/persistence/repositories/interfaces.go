package repositories

import (
	"context"

	"github.com/sandhu28/HOCMAN/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// AdminRepository defines the administrator registry interface.
// Records are seeded out-of-band; the registry scan in List is the single
// source of truth for role resolution.
type AdminRepository interface {
	List(ctx context.Context) ([]*models.AdminRecord, error)
	GetByUserID(ctx context.Context, userID uint) (*models.AdminRecord, error)
	UpdateHostel(ctx context.Context, userID uint, hostel string) error
}

// ComplaintRepository defines complaint repository interface. Every query
// is scoped to a single owner or hostel; there is no unscoped listing.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByID(ctx context.Context, userID uint, id string) (*models.Complaint, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Complaint, error)
	ListByHostel(ctx context.Context, hostel, complaintType, status string, offset, limit int) ([]*models.Complaint, int64, error)
	SetDone(ctx context.Context, userID uint, id string) error
}

package repositories

import (
	"context"

	"github.com/sandhu28/HOCMAN/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// adminRepository implements AdminRepository interface
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin registry repository
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// List returns every record in the administrator registry
func (r *adminRepository) List(ctx context.Context) ([]*models.AdminRecord, error) {
	var admins []*models.AdminRecord
	err := r.db.WithContext(ctx).Find(&admins).Error
	if err != nil {
		return nil, err
	}
	return admins, nil
}

// GetByUserID gets an admin record by user ID
func (r *adminRepository) GetByUserID(ctx context.Context, userID uint) (*models.AdminRecord, error) {
	var admin models.AdminRecord
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// UpdateHostel updates the hostel assignment for an admin record
func (r *adminRepository) UpdateHostel(ctx context.Context, userID uint, hostel string) error {
	return r.db.WithContext(ctx).
		Model(&models.AdminRecord{}).
		Where("user_id = ?", userID).
		Update("hostel", hostel).Error
}

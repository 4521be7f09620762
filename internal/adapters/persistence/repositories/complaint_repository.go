package repositories

import (
	"context"

	"github.com/sandhu28/HOCMAN/internal/adapters/persistence/models"
	"github.com/sandhu28/HOCMAN/internal/core/domain"

	"gorm.io/gorm"
)

// complaintRepository implements ComplaintRepository interface
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

// Create creates a new complaint
func (r *complaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

// GetByID gets a complaint by ID, scoped to its owner
func (r *complaintRepository) GetByID(ctx context.Context, userID uint, id string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		First(&complaint).Error
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// ListByUser lists all complaints owned by a resident, oldest first.
// A resident with no complaints gets an empty slice, not an error.
func (r *complaintRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Complaint, error) {
	complaints := []*models.Complaint{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

// ListByHostel lists complaints for a hostel with pagination, newest first.
// Type and status narrow the query when set; the "None" sentinel disables
// them. Predicates apply before pagination so pages stay full.
func (r *complaintRepository) ListByHostel(ctx context.Context, hostel, complaintType, status string, offset, limit int) ([]*models.Complaint, int64, error) {
	scoped := func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("hostel = ?", hostel)
		if complaintType != domain.FilterNone {
			tx = tx.Where("type = ?", complaintType)
		}
		if status != domain.FilterNone {
			tx = tx.Where("status = ?", status)
		}
		return tx
	}

	var total int64
	if err := scoped(r.db.WithContext(ctx).Model(&models.Complaint{})).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	complaints := []*models.Complaint{}
	err := scoped(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&complaints).Error
	if err != nil {
		return nil, 0, err
	}
	return complaints, total, nil
}

// SetDone flips a complaint to done. Only the forward transition exists on
// this interface; calling it on an already-done complaint is a no-op success.
func (r *complaintRepository) SetDone(ctx context.Context, userID uint, id string) error {
	return r.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Update("status", domain.StatusDone).Error
}

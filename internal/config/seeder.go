package config

import (
	"log"
	"os"

	"github.com/sandhu28/HOCMAN/internal/adapters/persistence/models"
	"github.com/sandhu28/HOCMAN/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding. Admin records are provisioned here, not
// through the API: the registry is the source of truth for role resolution
// and only operations deliberately run out-of-band may add to it.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdmin(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdmin seeds the default admin user and its registry record.
// Override the defaults with SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD;
// in production, provision admins through a secure process instead.
func (s *Seeder) seedAdmin() error {
	var count int64
	s.db.Model(&models.AdminRecord{}).Count(&count)
	if count > 0 {
		return nil // Registry already provisioned
	}

	email := getEnv("SEED_ADMIN_EMAIL", "admin@hocman.app")
	plain := os.Getenv("SEED_ADMIN_PASSWORD")
	if plain == "" {
		log.Println("⚠️ Skipping admin seed: SEED_ADMIN_PASSWORD not set")
		return nil
	}

	hashedPassword, err := password.Hash(plain)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     "Warden",
		Email:    email,
		Password: hashedPassword,
		IsActive: true,
	}

	// Reuse an existing user with the seed email if one was registered
	var existing models.User
	err = s.db.Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil:
		admin = &existing
	case err == gorm.ErrRecordNotFound:
		if err := s.db.Create(admin).Error; err != nil {
			return err
		}
	default:
		return err
	}

	record := &models.AdminRecord{
		UserID: admin.ID,
		Email:  admin.Email,
	}
	if err := s.db.Create(record).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin record created: %s", admin.Email)
	return nil
}

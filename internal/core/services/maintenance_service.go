package services

import (
	"context"
	"log"

	"github.com/sandhu28/HOCMAN/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// MaintenanceService runs scheduled cleanup jobs
type MaintenanceService struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	complaintService *ComplaintService
	cron             *cron.Cron
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(
	refreshTokenRepo repositories.RefreshTokenRepository,
	complaintService *ComplaintService,
) *MaintenanceService {
	return &MaintenanceService{
		refreshTokenRepo: refreshTokenRepo,
		complaintService: complaintService,
		cron:             cron.New(),
	}
}

// Start schedules the cleanup jobs
func (s *MaintenanceService) Start() {
	// Purge expired refresh tokens nightly at 03:00
	s.cron.AddFunc("0 3 * * *", s.purgeExpiredTokens)

	// Drop stale confirmation proposals every 10 minutes
	s.cron.AddFunc("*/10 * * * *", s.purgeExpiredProposals)

	s.cron.Start()
	log.Println("🚀 MaintenanceService started")
}

// Stop stops the scheduler, waiting for running jobs to finish
func (s *MaintenanceService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 MaintenanceService stopped")
}

func (s *MaintenanceService) purgeExpiredTokens() {
	if err := s.refreshTokenRepo.DeleteExpired(context.Background()); err != nil {
		log.Printf("❌ Expired token cleanup error: %v", err)
		return
	}
	log.Println("🗑️ Expired refresh tokens purged")
}

func (s *MaintenanceService) purgeExpiredProposals() {
	if purged := s.complaintService.PurgeExpiredProposals(); purged > 0 {
		log.Printf("🗑️ Dropped %d expired confirmation proposals", purged)
	}
}

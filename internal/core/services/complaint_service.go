package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/sandhu28/HOCMAN/internal/adapters/persistence/models"
	"github.com/sandhu28/HOCMAN/internal/adapters/persistence/repositories"
	"github.com/sandhu28/HOCMAN/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProposalTTL is how long a mark-done confirmation token stays valid
const ProposalTTL = 2 * time.Minute

// ComplaintService handles complaint submission, retrieval and the status
// lifecycle. Marking a complaint done is a two-phase protocol: Propose
// issues a single-use token, Confirm redeems it. A token that is never
// redeemed simply expires and nothing is mutated.
type ComplaintService struct {
	complaintRepo repositories.ComplaintRepository
	userRepo      repositories.UserRepository

	mu        sync.Mutex
	proposals map[string]proposal
}

type proposal struct {
	UserID      uint
	ComplaintID string
	ExpiresAt   time.Time
}

// NewComplaintService creates a new complaint service
func NewComplaintService(
	complaintRepo repositories.ComplaintRepository,
	userRepo repositories.UserRepository,
) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		proposals:     make(map[string]proposal),
	}
}

// CreateComplaintInput represents complaint submission input
type CreateComplaintInput struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Room        string `json:"room"`
}

// Create submits a new complaint for a resident. Status always starts
// pending; the hostel attribute is copied from the resident's profile.
func (s *ComplaintService) Create(ctx context.Context, userID uint, input *CreateComplaintInput) (*models.Complaint, error) {
	if !domain.IsValidComplaintType(input.Type) {
		return nil, domain.ErrInvalidComplaintType
	}
	if input.Description == "" {
		return nil, domain.ErrDescriptionRequired
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	room := input.Room
	if room == "" {
		room = user.Room
	}

	complaint := &models.Complaint{
		UserID:      userID,
		Type:        input.Type,
		Status:      domain.StatusPending,
		Description: input.Description,
		Hostel:      user.Hostel,
		Room:        room,
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	log.Printf("✅ Complaint created: %s [%s] by user %d", complaint.ID, complaint.Type, userID)
	return complaint, nil
}

// ListMine lists a resident's complaints narrowed by the filter spec
func (s *ComplaintService) ListMine(ctx context.Context, userID uint, spec FilterSpec) ([]*models.Complaint, error) {
	complaints, err := s.complaintRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ApplyFilter(complaints, spec), nil
}

// ListByHostel lists complaints for a hostel page by page (admin view).
// Type and status narrow the listing; pass the "None" sentinel to disable.
// Predicates are pushed to the store so pagination counts stay correct.
func (s *ComplaintService) ListByHostel(ctx context.Context, hostel, complaintType, status string, offset, limit int) ([]*models.Complaint, int64, error) {
	if !domain.IsValidHostel(hostel) {
		return nil, 0, domain.ErrInvalidHostel
	}
	if complaintType != domain.FilterNone && !domain.IsValidComplaintType(complaintType) {
		return nil, 0, domain.ErrInvalidComplaintType
	}
	if status != domain.FilterNone && !domain.IsValidStatus(status) {
		return nil, 0, domain.ErrInvalidStatus
	}
	return s.complaintRepo.ListByHostel(ctx, hostel, complaintType, status, offset, limit)
}

// ProposeMarkDone starts the mark-done protocol for a complaint. It
// verifies the complaint exists under the caller before issuing a token;
// nothing is mutated until the token is confirmed.
func (s *ComplaintService) ProposeMarkDone(ctx context.Context, userID uint, complaintID string) (string, error) {
	if _, err := s.complaintRepo.GetByID(ctx, userID, complaintID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrComplaintNotFound
		}
		return "", err
	}

	token := uuid.New().String()

	s.mu.Lock()
	s.proposals[token] = proposal{
		UserID:      userID,
		ComplaintID: complaintID,
		ExpiresAt:   time.Now().Add(ProposalTTL),
	}
	s.mu.Unlock()

	return token, nil
}

// ConfirmMarkDone redeems a confirmation token and flips the complaint to
// done. The token is single-use: it is consumed whether or not the store
// update succeeds, so a retry needs a fresh proposal. Confirming an
// already-done complaint succeeds without touching the store.
func (s *ComplaintService) ConfirmMarkDone(ctx context.Context, userID uint, token string) (*models.Complaint, error) {
	p, ok := s.takeProposal(userID, token)
	if !ok {
		return nil, domain.ErrProposalNotFound
	}

	complaint, err := s.complaintRepo.GetByID(ctx, p.UserID, p.ComplaintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, err
	}

	if complaint.Status == domain.StatusDone {
		return complaint, nil
	}

	if err := s.complaintRepo.SetDone(ctx, p.UserID, p.ComplaintID); err != nil {
		return nil, err
	}

	complaint.Status = domain.StatusDone
	log.Printf("✅ Complaint marked done: %s by user %d", complaint.ID, userID)
	return complaint, nil
}

// CancelMarkDone discards a pending proposal. Cancelling is always safe:
// the guarded mutation has not happened yet.
func (s *ComplaintService) CancelMarkDone(userID uint, token string) {
	s.takeProposal(userID, token)
}

// takeProposal removes and returns a live proposal owned by userID
func (s *ComplaintService) takeProposal(userID uint, token string) (proposal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.proposals[token]
	if !ok {
		return proposal{}, false
	}
	delete(s.proposals, token)

	if p.UserID != userID || time.Now().After(p.ExpiresAt) {
		return proposal{}, false
	}
	return p, true
}

// PurgeExpiredProposals drops expired confirmation tokens (cleanup job)
func (s *ComplaintService) PurgeExpiredProposals() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	purged := 0
	for token, p := range s.proposals {
		if now.After(p.ExpiresAt) {
			delete(s.proposals, token)
			purged++
		}
	}
	return purged
}

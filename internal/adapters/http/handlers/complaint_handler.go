package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/sandhu28/HOCMAN/internal/core/domain"
	"github.com/sandhu28/HOCMAN/internal/core/services"
	"github.com/sandhu28/HOCMAN/internal/pkg/pagination"
	"github.com/sandhu28/HOCMAN/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// dateLayout is the wire format for filter date bounds
const dateLayout = "2006-01-02"

// ComplaintHandler handles complaint endpoints
type ComplaintHandler struct {
	complaintService *services.ComplaintService
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintService *services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
	}
}

// CreateComplaintRequest represents complaint submission request body
type CreateComplaintRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Room        string `json:"room"`
}

// ConfirmDoneRequest represents mark-done confirmation request body
type ConfirmDoneRequest struct {
	Token string `json:"token"`
}

// Create handles complaint submission
// @Summary Submit a complaint
// @Description Submit a new maintenance complaint for the caller's hostel
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateComplaintRequest true "Complaint data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /complaints [post]
func (h *ComplaintHandler) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.CreateComplaintInput{
		Type:        strings.TrimSpace(req.Type),
		Description: strings.TrimSpace(req.Description),
		Room:        strings.TrimSpace(req.Room),
	}

	complaint, err := h.complaintService.Create(c.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidComplaintType):
			return response.BadRequest(c, "Unknown complaint type")
		case errors.Is(err, domain.ErrDescriptionRequired):
			return response.BadRequest(c, "Description is required")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.Unauthorized(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to submit complaint")
		}
	}

	return response.Created(c, "Complaint submitted", fiber.Map{
		"complaint": complaint,
	})
}

// List handles the caller's complaint listing with filters
// @Summary List my complaints
// @Description List the caller's complaints narrowed by date range, type and status
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param from query string false "From date (YYYY-MM-DD, inclusive)"
// @Param to query string false "To date (YYYY-MM-DD, inclusive)"
// @Param type query string false "Complaint type or None"
// @Param status query string false "Status (pending/done) or None"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /complaints [get]
func (h *ComplaintHandler) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	spec, err := parseFilterSpec(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	complaints, err := h.complaintService.ListMine(c.Context(), userID, spec)
	if err != nil {
		return response.InternalServerError(c, "Failed to list complaints")
	}

	return response.Success(c, "Complaints retrieved", fiber.Map{
		"complaints": complaints,
		"count":      len(complaints),
	})
}

// ProposeDone starts the mark-done confirmation flow
// @Summary Propose marking a complaint done
// @Description Issue a single-use confirmation token for marking a complaint done
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /complaints/{id}/done [post]
func (h *ComplaintHandler) ProposeDone(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	complaintID := c.Params("id")
	if complaintID == "" {
		return response.BadRequest(c, "Complaint ID is required")
	}

	token, err := h.complaintService.ProposeMarkDone(c.Context(), userID, complaintID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrComplaintNotFound):
			return response.NotFound(c, "Complaint not found")
		default:
			return response.InternalServerError(c, "Failed to start confirmation")
		}
	}

	return response.Success(c, "Confirmation required", fiber.Map{
		"token":      token,
		"expires_in": int(services.ProposalTTL.Seconds()),
	})
}

// ConfirmDone redeems a confirmation token and marks the complaint done
// @Summary Confirm marking a complaint done
// @Description Redeem a confirmation token; the complaint flips to done
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ConfirmDoneRequest true "Confirmation token"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /complaints/confirm [post]
func (h *ComplaintHandler) ConfirmDone(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req ConfirmDoneRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Token == "" {
		return response.BadRequest(c, "Confirmation token is required")
	}

	complaint, err := h.complaintService.ConfirmMarkDone(c.Context(), userID, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProposalNotFound):
			return response.NotFound(c, "Confirmation token invalid or expired")
		case errors.Is(err, domain.ErrComplaintNotFound):
			return response.NotFound(c, "Complaint not found")
		default:
			return response.InternalServerError(c, "Failed to mark complaint done")
		}
	}

	return response.Success(c, "Complaint marked done", fiber.Map{
		"complaint": complaint,
	})
}

// CancelDone discards a pending confirmation token
// @Summary Cancel a mark-done confirmation
// @Description Discard an unredeemed confirmation token; nothing is mutated
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ConfirmDoneRequest true "Confirmation token"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /complaints/cancel [post]
func (h *ComplaintHandler) CancelDone(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req ConfirmDoneRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	h.complaintService.CancelMarkDone(userID, req.Token)

	return response.Success(c, "Confirmation cancelled", nil)
}

// AdminList handles the hostel-scoped complaint listing for admins
// @Summary List hostel complaints
// @Description List all complaints of a hostel, newest first, paginated
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hostel query string true "Hostel code"
// @Param type query string false "Complaint type or None"
// @Param status query string false "Status (pending/done) or None"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/complaints [get]
func (h *ComplaintHandler) AdminList(c *fiber.Ctx) error {
	hostel := c.Query("hostel")
	if hostel == "" {
		return response.BadRequest(c, "Hostel code is required")
	}

	complaintType := c.Query("type", domain.FilterNone)
	status := c.Query("status", domain.FilterNone)
	params := pagination.GetParams(c)

	complaints, total, err := h.complaintService.ListByHostel(c.Context(), hostel, complaintType, status, params.Offset, params.Limit)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidHostel):
			return response.BadRequest(c, "Unknown hostel code")
		case errors.Is(err, domain.ErrInvalidComplaintType):
			return response.BadRequest(c, "Unknown complaint type")
		case errors.Is(err, domain.ErrInvalidStatus):
			return response.BadRequest(c, "Unknown status")
		default:
			return response.InternalServerError(c, "Failed to list complaints")
		}
	}

	return response.Success(c, "Complaints retrieved", fiber.Map{
		"complaints": complaints,
		"pagination": pagination.GetMeta(params, total),
	})
}

// parseFilterSpec builds a filter spec from query parameters, falling back
// to the default look-back window when a bound is omitted. The to bound is
// extended to the end of its day so the range stays inclusive.
func parseFilterSpec(c *fiber.Ctx) (services.FilterSpec, error) {
	spec := services.DefaultFilterSpec()

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			return spec, errors.New("invalid from date, expected YYYY-MM-DD")
		}
		spec.FromDate = t
	}

	if to := c.Query("to"); to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			return spec, errors.New("invalid to date, expected YYYY-MM-DD")
		}
		spec.ToDate = t.Add(24*time.Hour - time.Nanosecond)
	}

	if typ := c.Query("type"); typ != "" {
		if typ != domain.FilterNone && !domain.IsValidComplaintType(typ) {
			return spec, errors.New("unknown complaint type")
		}
		spec.Type = typ
	}

	if status := c.Query("status"); status != "" {
		if status != domain.FilterNone && !domain.IsValidStatus(status) {
			return spec, errors.New("unknown status")
		}
		spec.Status = status
	}

	return spec, nil
}

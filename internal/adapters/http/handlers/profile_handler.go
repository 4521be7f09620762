package handlers

import (
	"errors"
	"time"

	"github.com/sandhu28/HOCMAN/internal/config"
	"github.com/sandhu28/HOCMAN/internal/core/domain"
	"github.com/sandhu28/HOCMAN/internal/core/services"
	"github.com/sandhu28/HOCMAN/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles identity-sensitive profile endpoints
type ProfileHandler struct {
	profileService *services.ProfileService
	cfg            *config.Config
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *services.ProfileService, cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		cfg:            cfg,
	}
}

// ChangePasswordRequest represents change password request body
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangeHostelRequest represents hostel reassignment request body
type ChangeHostelRequest struct {
	CurrentPassword string `json:"current_password"`
	Hostel          string `json:"hostel"`
}

// ChangePassword handles password change with re-authentication
// @Summary Change password
// @Description Change the caller's password; requires the current password and revokes every session
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ChangePasswordRequest true "Password change data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /profile/password [put]
func (h *ProfileHandler) ChangePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.CurrentPassword == "" {
		return response.BadRequest(c, "Current password is required")
	}

	input := &services.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}

	if err := h.profileService.ChangePassword(c.Context(), userID, input); err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordTooShort):
			return response.BadRequest(c, "New password must be at least 8 characters")
		case errors.Is(err, domain.ErrReauthFailed):
			return response.Unauthorized(c, "Current password is incorrect")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.Unauthorized(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to change password")
		}
	}

	// Every session was revoked; drop this one's cookies too
	h.clearAuthCookies(c)

	return response.Success(c, "Password changed, please login again", nil)
}

// ChangeHostel handles admin hostel reassignment with re-authentication
// @Summary Change assigned hostel
// @Description Reassign the admin caller to another hostel; requires the current password
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ChangeHostelRequest true "Hostel reassignment data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /profile/hostel [put]
func (h *ProfileHandler) ChangeHostel(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req ChangeHostelRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.CurrentPassword == "" {
		return response.BadRequest(c, "Current password is required")
	}

	input := &services.ChangeHostelInput{
		CurrentPassword: req.CurrentPassword,
		Hostel:          req.Hostel,
	}

	if err := h.profileService.ChangeHostel(c.Context(), userID, input); err != nil {
		switch {
		case errors.Is(err, domain.ErrHostelRequired):
			return response.BadRequest(c, "Hostel code is required")
		case errors.Is(err, domain.ErrInvalidHostel):
			return response.BadRequest(c, "Unknown hostel code")
		case errors.Is(err, domain.ErrReauthFailed):
			return response.Unauthorized(c, "Current password is incorrect")
		case errors.Is(err, domain.ErrNotAdmin):
			return response.Forbidden(c, "Not an administrator")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.Unauthorized(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to change hostel")
		}
	}

	return response.Success(c, "Hostel reassigned", fiber.Map{
		"hostel": req.Hostel,
	})
}

// clearAuthCookies clears auth cookies
func (h *ProfileHandler) clearAuthCookies(c *fiber.Ctx) {
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Expires:  time.Now().Add(-1 * time.Hour),
			Secure:   h.cfg.Cookie.Secure,
			HTTPOnly: true,
			SameSite: h.cfg.Cookie.SameSite,
			Domain:   h.cfg.Cookie.Domain,
		})
	}
}

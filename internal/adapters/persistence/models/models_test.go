package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestComplaintBeforeCreate_GeneratesID(t *testing.T) {
	c := &Complaint{UserID: 1, Type: "AC"}

	err := c.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	_, parseErr := uuid.Parse(c.ID)
	assert.NoError(t, parseErr)
}

func TestComplaintBeforeCreate_KeepsExistingID(t *testing.T) {
	c := &Complaint{ID: "fixed-id", UserID: 1, Type: "AC"}

	err := c.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.Equal(t, "fixed-id", c.ID)
}

func TestUserToResponse_OmitsPassword(t *testing.T) {
	u := &User{
		ID:       1,
		Name:     "Resident",
		Email:    "resident@hocman.app",
		Password: "bcrypt-hash",
		Hostel:   "G1",
		Room:     "114",
		IsActive: true,
	}

	resp := u.ToResponse()

	assert.Equal(t, u.ID, resp.ID)
	assert.Equal(t, u.Email, resp.Email)
	assert.Equal(t, u.Hostel, resp.Hostel)
}

func TestRefreshTokenState(t *testing.T) {
	now := time.Now()

	live := &RefreshToken{ExpiresAt: now.Add(time.Hour)}
	assert.False(t, live.IsRevoked())
	assert.False(t, live.IsExpired())

	expired := &RefreshToken{ExpiresAt: now.Add(-time.Hour)}
	assert.True(t, expired.IsExpired())

	revoked := &RefreshToken{ExpiresAt: now.Add(time.Hour), RevokedAt: &now}
	assert.True(t, revoked.IsRevoked())
}

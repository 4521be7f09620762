package domain

import "errors"

// Validation errors - malformed or missing local input, raised before any
// store or identity call is made
var (
	ErrEmptyCredentials     = errors.New("email and password are required")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrPasswordTooShort     = errors.New("password must be at least 8 characters")
	ErrInvalidComplaintType = errors.New("invalid complaint type")
	ErrInvalidStatus        = errors.New("invalid complaint status")
	ErrDescriptionRequired  = errors.New("complaint description is required")
	ErrHostelRequired       = errors.New("hostel is required")
	ErrInvalidHostel        = errors.New("invalid hostel code")
)

// Auth errors - the identity layer rejected the credentials or session
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token revoked")
)

// Re-auth errors - a fresh credential check failed at a mutation
// precondition; the guarded mutation is never attempted
var (
	ErrReauthFailed = errors.New("re-authentication failed")
	ErrNotAdmin     = errors.New("no administrator record for this user")
)

// Store errors
var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrProposalNotFound  = errors.New("confirmation expired or not found")
)

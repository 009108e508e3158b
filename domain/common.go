package domain

import (
	"errors"
)

const (
	RoleDonor = "donor"
	RoleNGO   = "ngo"
	RoleAdmin = "admin"
)

var (
	MesaageUserNotAllowed    = "user not allowed"
	MessageFailedBodyRequest = "failed to parse request body"
	MessageAccessNotApproved = "account is waiting for admin approval"

	ErrParseUUID         = errors.New("failed to parse UUID")
	ErrUserNotAllowed    = errors.New("user not allowed")
	ErrTokenNotFound     = errors.New("failed to token not found")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenInvalid      = errors.New("token invalid")
	ErrAccessNotApproved = errors.New("account is waiting for admin approval")
)

// UserSummary is the joined view of a user embedded in listings, orders and
// donations.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

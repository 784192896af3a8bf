package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role identifiers. Admins and supervisors can act across tenants; clients
// are scoped to their own tenant slug.
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleClient     = 3
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	TenantSlug   string     `json:"tenant_slug"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID         int     `json:"id"`
	Name       *string `json:"name"`
	Lastname   *string `json:"lastname"`
	Email      *string `json:"email"`
	Active     *bool   `json:"active"`
	RoleID     *int    `json:"role_id"`
	TenantSlug *string `json:"tenant_slug"`
	Deleted    *bool   `json:"deleted"`
}

// Claims is the authenticated caller's identity: who they are, their role
// and the tenant subdomain they belong to.
type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserActive bool
	UserRoleID int
	TenantSlug string
	jwt.RegisteredClaims
}

package user

import "strings"

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleGrower Role = "grower"
	RoleAdmin  Role = "admin"
)

// NormalizeRole maps arbitrary input casing onto the canonical lowercase
// values. Unknown or empty roles fall back to buyer.
func NormalizeRole(raw string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleGrower:
		return RoleGrower
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleBuyer
	}
}

type User struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Password string  `json:"-"`
	Name     string  `json:"name"`
	Role     Role    `json:"role"`
	Bio      *string `json:"bio"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
}

type UpdateProfileParams struct {
	Name     string
	Bio      *string
	Phone    *string
	Location *string
}

// AngelaMos | 2026
// dto.go

package member

import (
	"time"

	"github.com/forgegym/api/internal/store"
)

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=100"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=5,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

type UserResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	MembershipType   string     `json:"membershipType,omitempty"`
	MembershipExpiry *time.Time `json:"membershipExpiry,omitempty"`
	JoinedAt         time.Time  `json:"joinedAt"`
}

func ToUserResponse(u *store.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Role:             u.Role,
		MembershipType:   u.MembershipType,
		MembershipExpiry: u.MembershipExpiry,
		JoinedAt:         u.JoinedAt,
	}
}

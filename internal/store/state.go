// AngelaMos | 2026
// state.go

package store

import (
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

const (
	PaymentCompleted = "Completed"
	PaymentPending   = "Pending"
)

// AttendanceDateLayout is the date-only format used for check-in records.
const AttendanceDateLayout = "2006-01-02"

// CheckInTimeLayout is the display format captured at check-in time.
const CheckInTimeLayout = "3:04:05 PM"

type User struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	MembershipType   string     `json:"membershipType,omitempty"`
	MembershipExpiry *time.Time `json:"membershipExpiry,omitempty"`
	JoinedAt         time.Time  `json:"joinedAt"`
	PasswordHash     string     `json:"password"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasActivePlan reports whether the membership expiry is strictly in the
// future. There is no stored status flag; activity is always recomputed
// against the clock.
func (u *User) HasActivePlan(now time.Time) bool {
	return u.MembershipExpiry != nil && u.MembershipExpiry.After(now)
}

type Payment struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	UserName string    `json:"userName"`
	Amount   int       `json:"amount"`
	Date     time.Time `json:"date"`
	Plan     string    `json:"plan"`
	Status   string    `json:"status"`
}

type Attendance struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Date        string `json:"date"`
	CheckInTime string `json:"checkInTime"`
}

// State is the aggregate: the single source of truth for every durable
// entity plus the nullable session reference. It is loaded wholesale and
// rewritten wholesale on every mutation.
type State struct {
	Users         []User       `json:"users"`
	Payments      []Payment    `json:"payments"`
	Attendance    []Attendance `json:"attendance"`
	CurrentUserID *string      `json:"currentUserId"`
}

func (s *State) UserByID(id string) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// UserByEmail matches the stored email exactly. No normalization: the
// email is the de-facto login key, compared case-sensitively.
func (s *State) UserByEmail(email string) *User {
	for i := range s.Users {
		if s.Users[i].Email == email {
			return &s.Users[i]
		}
	}
	return nil
}

// CurrentUser resolves the session reference by id. A dangling reference
// behaves like no session at all.
func (s *State) CurrentUser() *User {
	if s.CurrentUserID == nil {
		return nil
	}
	return s.UserByID(*s.CurrentUserID)
}

// Seed describes the admin account present in the initial state.
type Seed struct {
	AdminName         string
	AdminEmail        string
	AdminPasswordHash string
}

const seededAdminID = "admin-001"

// NewState builds the first-run aggregate: one seeded admin, empty
// collections, no session.
func NewState(seed Seed, now time.Time) *State {
	return &State{
		Users: []User{
			{
				ID:           seededAdminID,
				Name:         seed.AdminName,
				Email:        seed.AdminEmail,
				Role:         RoleAdmin,
				JoinedAt:     now,
				PasswordHash: seed.AdminPasswordHash,
			},
		},
		Payments:   []Payment{},
		Attendance: []Attendance{},
	}
}

// AngelaMos | 2026
// service.go

package member

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/forgegym/api/internal/core"
	"github.com/forgegym/api/internal/store"
)

type Service struct {
	store *store.Store
	now   func() time.Time
}

func NewService(st *store.Store) *Service {
	return &Service{
		store: st,
		now:   time.Now,
	}
}

// Register creates a customer account. The email is the login key and must
// be unique under exact comparison; no normalization is applied.
func (s *Service) Register(
	ctx context.Context,
	name, email, password string,
) (*store.User, error) {
	passwordHash, err := core.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	created := store.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Role:         store.RoleCustomer,
		JoinedAt:     s.now(),
		PasswordHash: passwordHash,
	}

	err = s.store.Update(ctx, func(state *store.State) error {
		if state.UserByEmail(email) != nil {
			return fmt.Errorf("register %q: %w", email, core.ErrDuplicateEmail)
		}
		state.Users = append(state.Users, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// Authenticate checks the email and password against the stored account.
// It never starts a session; session establishment is a separate,
// caller-driven step.
func (s *Service) Authenticate(
	ctx context.Context,
	email, password string,
) (*store.User, error) {
	var matched *store.User

	err := s.store.View(ctx, func(state *store.State) error {
		var storedHash *string
		user := state.UserByEmail(email)
		if user != nil {
			storedHash = &user.PasswordHash
		}

		valid, err := core.VerifyPasswordTimingSafe(password, storedHash)
		if err != nil {
			return fmt.Errorf("authenticate: %w", err)
		}
		if !valid {
			return fmt.Errorf("authenticate %q: %w", email, core.ErrInvalidCredentials)
		}

		copied := *user
		matched = &copied
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matched, nil
}

// StartSession points the persisted session reference at the given user,
// so a restart restores the login.
func (s *Service) StartSession(ctx context.Context, userID string) error {
	return s.store.Update(ctx, func(state *store.State) error {
		if state.UserByID(userID) == nil {
			return fmt.Errorf("start session: %w", core.ErrUserNotFound)
		}
		state.CurrentUserID = &userID
		return nil
	})
}

func (s *Service) EndSession(ctx context.Context) error {
	return s.store.Update(ctx, func(state *store.State) error {
		state.CurrentUserID = nil
		return nil
	})
}

// CurrentUser resolves the session reference against the authoritative
// user collection. Returns nil without error when no session is active or
// the reference dangles.
func (s *Service) CurrentUser(ctx context.Context) (*store.User, error) {
	var current *store.User

	err := s.store.View(ctx, func(state *store.State) error {
		if user := state.CurrentUser(); user != nil {
			copied := *user
			current = &copied
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return current, nil
}

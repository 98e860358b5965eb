package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aksarabali/aksara-api/internal/domain"
	"github.com/aksarabali/aksara-api/internal/domain/progression"
	"github.com/aksarabali/aksara-api/internal/store"
)

// UserService provides user-related operations, including the gamification
// rules: experience awards, streak updates, and the hearts/gems currencies.
type UserService interface {
	// CreateUser creates a new user with the specified email and display name.
	CreateUser(ctx context.Context, email, name string) (*domain.User, error)

	// GetUser retrieves a user by their ID.
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// GetUserByEmail retrieves a user by their email address.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// AwardExperience adds experience to a user and recomputes their level.
	// Returns the updated user.
	AwardExperience(ctx context.Context, userID uuid.UUID, amount int) (*domain.User, error)

	// UpdateStreak transitions the user's consecutive-day streak for
	// activity happening now. Same-day calls are no-ops; a backwards clock
	// is logged and ignored. Returns the (possibly unchanged) user.
	UpdateStreak(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// AdjustHearts adds delta (which may be negative) to the user's hearts,
	// clamping the result into [0, MaxHearts]. Returns the updated user.
	AdjustHearts(ctx context.Context, userID uuid.UUID, delta int) (*domain.User, error)

	// AdjustGems adds delta (which may be negative) to the user's gems.
	// Returns ErrInsufficientGems if the balance would go negative.
	AdjustGems(ctx context.Context, userID uuid.UUID, delta int) (*domain.User, error)

	// DeleteUser deletes a user by their ID.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	rules     progression.Service
	db        *sql.DB
	logger    *slog.Logger
	now       func() time.Time
}

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	rules progression.Service,
	db *sql.DB,
	logger *slog.Logger,
) *UserServiceImpl {
	return &UserServiceImpl{
		userStore: userStore,
		rules:     rules,
		db:        db,
		logger:    logger.With(slog.String("component", "user_service")),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the service's clock. Used by tests to inject a fixed
// time.
func (s *UserServiceImpl) WithClock(now func() time.Time) *UserServiceImpl {
	s.now = now
	return s
}

// CreateUser creates a new user with the specified email and display name.
func (s *UserServiceImpl) CreateUser(ctx context.Context, email, name string) (*domain.User, error) {
	user, err := domain.NewUser(email, name)
	if err != nil {
		s.logger.Warn("rejected invalid user input",
			"error", err,
			"email", email)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to create user with existing email",
				"email", email)
		} else {
			s.logger.Error("failed to save user",
				"error", err,
				"email", email)
		}
		return nil, err
	}

	s.logger.Info("user created",
		"user_id", user.ID,
		"email", user.Email)
	return user, nil
}

// GetUser retrieves a user by their ID.
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"user_id", userID)
		}
		return nil, err
	}
	return user, nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *UserServiceImpl) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to retrieve user by email",
				"error", err,
				"email", email)
		}
		return nil, err
	}
	return user, nil
}

// AwardExperience adds experience to a user and recomputes their level.
// The read-modify-write runs inside a transaction.
func (s *UserServiceImpl) AwardExperience(
	ctx context.Context,
	userID uuid.UUID,
	amount int,
) (*domain.User, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, progression.ErrNegativeAmount)
	}

	var updated *domain.User
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		updated, err = s.rules.AwardExperience(user, amount, s.now())
		if err != nil {
			return err
		}

		return txStore.Update(ctx, updated)
	})
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to award experience",
				"error", err,
				"user_id", userID,
				"amount", amount)
		}
		return nil, err
	}

	s.logger.Info("experience awarded",
		"user_id", userID,
		"amount", amount,
		"experience", updated.Experience,
		"level", updated.Level)
	return updated, nil
}

// UpdateStreak transitions the user's consecutive-day streak.
//
// Same-day activity leaves the user untouched and skips the write, so the
// operation is idempotent within a day. Clock skew (a reference time before
// the user's last update) is treated as a no-op and logged at warn level;
// streaks never decrement.
func (s *UserServiceImpl) UpdateStreak(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	var result *domain.User
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		updated, err := s.rules.UpdateStreak(user, s.now())
		if errors.Is(err, progression.ErrClockSkew) {
			s.logger.Warn("clock skew detected during streak update, ignoring",
				"user_id", userID,
				"last_updated", user.UpdatedAt)
			result = user
			return nil
		}
		if err != nil {
			return err
		}

		// Same-day call: nothing changed, skip the write entirely.
		if updated.Streak == user.Streak && updated.UpdatedAt.Equal(user.UpdatedAt) {
			result = user
			return nil
		}

		if err := txStore.Update(ctx, updated); err != nil {
			return err
		}
		result = updated
		return nil
	})
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to update streak",
				"error", err,
				"user_id", userID)
		}
		return nil, err
	}

	return result, nil
}

// AdjustHearts adds delta to the user's hearts, clamping into [0, MaxHearts].
func (s *UserServiceImpl) AdjustHearts(
	ctx context.Context,
	userID uuid.UUID,
	delta int,
) (*domain.User, error) {
	return s.adjustCurrency(ctx, userID, func(user *domain.User) error {
		hearts := user.Hearts + delta
		if hearts < 0 {
			hearts = 0
		}
		if hearts > domain.MaxHearts {
			hearts = domain.MaxHearts
		}
		user.Hearts = hearts
		return nil
	})
}

// AdjustGems adds delta to the user's gems.
// Returns ErrInsufficientGems if the balance would go negative.
func (s *UserServiceImpl) AdjustGems(
	ctx context.Context,
	userID uuid.UUID,
	delta int,
) (*domain.User, error) {
	return s.adjustCurrency(ctx, userID, func(user *domain.User) error {
		gems := user.Gems + delta
		if gems < 0 {
			return ErrInsufficientGems
		}
		user.Gems = gems
		return nil
	})
}

// DeleteUser deletes a user by their ID.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.userStore.Delete(ctx, userID); err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to delete user",
				"error", err,
				"user_id", userID)
		}
		return err
	}

	s.logger.Info("user deleted", "user_id", userID)
	return nil
}

// adjustCurrency applies a currency mutation to the user inside a
// transaction and persists the result.
func (s *UserServiceImpl) adjustCurrency(
	ctx context.Context,
	userID uuid.UUID,
	mutate func(*domain.User) error,
) (*domain.User, error) {
	var updated *domain.User
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		if err := mutate(user); err != nil {
			return err
		}
		user.UpdatedAt = s.now()

		if err := txStore.Update(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) && !errors.Is(err, ErrInsufficientGems) {
			s.logger.Error("failed to adjust currency",
				"error", err,
				"user_id", userID)
		}
		return nil, err
	}

	return updated, nil
}

// Ensure UserServiceImpl implements UserService
var _ UserService = (*UserServiceImpl)(nil)

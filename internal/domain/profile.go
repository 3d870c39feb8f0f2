// Package domain contains the core business entities, ports and the pure
// metric calculators.
package domain

import (
	"context"
	"errors"
	"strings"
)

// Sentinel errors shared by the store, the dialogs and the read side.
var (
	// ErrProfileNotFound is returned when a logging or reporting operation
	// is attempted for a user that has not completed profile setup.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrFoodNotFound is returned by a food lookup with no matching product.
	ErrFoodNotFound = errors.New("food not found")
)

// Gender is the closed gender vocabulary consumed by the calorie formula.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender normalizes free-form input (case and surrounding whitespace
// insensitive) to a Gender. The second return value reports whether the
// input belonged to the accepted vocabulary.
func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, true
	case "female", "f":
		return Female, true
	}
	return "", false
}

// UserProfile is the per-user record owned by the profile store. It is
// created whole on profile-setup commit and mutated in place by the logging
// operations; it is never partially persisted.
type UserProfile struct {
	UserID         int64
	WeightKg       float64
	HeightCm       float64
	AgeYears       int
	Gender         Gender
	ActivityMin    int
	City           string
	WaterGoalMl    float64
	CalorieGoal    float64
	LoggedWater    []float64
	LoggedCalories []float64
	BurnedCalories float64
}

// ProfileStore is the port for profile storage. Entries live for the process
// lifetime; there is no eviction and no TTL.
type ProfileStore interface {
	// Get returns the profile for the user, or nil when absent.
	Get(ctx context.Context, userID int64) (*UserProfile, error)
	// Put stores the profile, overwriting any previous one unconditionally.
	Put(ctx context.Context, userID int64, p *UserProfile) error
	// Mutate applies fn to the stored profile under the store's lock.
	// It returns ErrProfileNotFound when the user has no profile.
	Mutate(ctx context.Context, userID int64, fn func(*UserProfile)) error
}

package app

import (
	"context"
	"errors"

	"kcalbot/internal/domain"
)

// ErrNotEnoughData is returned by Series when a time series is too short to
// draw (fewer than two entries).
var ErrNotEnoughData = errors.New("not enough data points")

// Progress is the read-only view over a user's profile.
type Progress struct {
	store domain.ProfileStore
}

// NewProgress creates a Progress view backed by the given store.
func NewProgress(store domain.ProfileStore) *Progress {
	return &Progress{store: store}
}

// Report is a snapshot of the day's totals against the derived goals.
type Report struct {
	TotalWaterMl   float64
	WaterGoalMl    float64
	TotalCalories  float64
	CalorieGoal    float64
	BurnedCalories float64
	Balance        float64
}

// Report computes the user's running totals. It fails with
// domain.ErrProfileNotFound before profile setup.
func (pr *Progress) Report(ctx context.Context, userID int64) (*Report, error) {
	p, err := pr.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProfileNotFound
	}

	totalCalories := sum(p.LoggedCalories)
	return &Report{
		TotalWaterMl:   sum(p.LoggedWater),
		WaterGoalMl:    p.WaterGoalMl,
		TotalCalories:  totalCalories,
		CalorieGoal:    p.CalorieGoal,
		BurnedCalories: p.BurnedCalories,
		Balance:        totalCalories - p.BurnedCalories,
	}, nil
}

// Series returns the ordered water and calorie sequences for graphing. Both
// must hold at least two entries; otherwise it fails with ErrNotEnoughData.
func (pr *Progress) Series(ctx context.Context, userID int64) (water, calories []float64, err error) {
	p, err := pr.store.Get(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, domain.ErrProfileNotFound
	}
	if len(p.LoggedWater) < 2 || len(p.LoggedCalories) < 2 {
		return nil, nil, ErrNotEnoughData
	}
	return p.LoggedWater, p.LoggedCalories, nil
}

package app

import (
	"context"

	"kcalbot/internal/domain"
)

// Tracker implements the direct, single-message logging commands that do not
// go through a dialog flow.
type Tracker struct {
	store domain.ProfileStore
}

// NewTracker creates a Tracker backed by the given store.
func NewTracker(store domain.ProfileStore) *Tracker {
	return &Tracker{store: store}
}

// WaterStatus summarizes the day's water intake after a log entry.
type WaterStatus struct {
	LoggedMl    float64
	TotalMl     float64
	GoalMl      float64
	RemainingMl float64
}

// LogWater appends one water entry and returns the running totals. It fails
// with domain.ErrProfileNotFound before profile setup.
func (t *Tracker) LogWater(ctx context.Context, userID int64, amountMl float64) (WaterStatus, error) {
	var st WaterStatus
	err := t.store.Mutate(ctx, userID, func(p *domain.UserProfile) {
		p.LoggedWater = append(p.LoggedWater, amountMl)
		st = WaterStatus{
			LoggedMl: amountMl,
			TotalMl:  sum(p.LoggedWater),
			GoalMl:   p.WaterGoalMl,
		}
	})
	if err != nil {
		return WaterStatus{}, err
	}
	st.RemainingMl = st.GoalMl - st.TotalMl
	return st, nil
}

// SetCalorieGoal overwrites the derived calorie goal directly, independent of
// the dialog machine. It fails with domain.ErrProfileNotFound before setup.
func (t *Tracker) SetCalorieGoal(ctx context.Context, userID int64, goal float64) error {
	return t.store.Mutate(ctx, userID, func(p *domain.UserProfile) {
		p.CalorieGoal = goal
	})
}

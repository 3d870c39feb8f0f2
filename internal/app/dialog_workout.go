package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"kcalbot/internal/domain"
)

const (
	promptWorkoutType     = "Enter the workout type (run, walk, swim, ...):"
	promptWorkoutDuration = "Enter the workout duration (minutes):"
	repromptDuration      = "Enter a whole number of minutes."
)

// Bonus hydration: 200 ml per complete 30-minute workout block.
const (
	bonusWaterBlockMin = 30
	bonusWaterMlPer    = 200
)

// handleWorkoutStep collects workout type and duration. The type is free
// text kept verbatim after case folding; vocabulary matching happens only at
// burn-calculation time, with unknown labels falling back to the default
// coefficient. The duration step is the commit.
func (d *Dialogs) handleWorkoutStep(ctx context.Context, userID int64, sess *session, text string) ([]string, bool) {
	switch sess.machine.Current() {
	case stepType:
		sess.workout.label = strings.ToLower(strings.TrimSpace(text))
		sess.advance(ctx)
		return []string{promptWorkoutDuration}, false

	case stepDuration:
		minutes, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || minutes < 0 {
			return []string{repromptDuration}, false
		}

		bonusWater := float64(minutes / bonusWaterBlockMin * bonusWaterMlPer)
		var burned float64
		mErr := d.store.Mutate(ctx, userID, func(p *domain.UserProfile) {
			burned = domain.WorkoutBurn(p.WeightKg, minutes, sess.workout.label)
			p.BurnedCalories += burned
			p.LoggedWater = append(p.LoggedWater, bonusWater)
		})
		if mErr != nil {
			return []string{MsgProfileRequired}, true
		}

		reply := fmt.Sprintf("Workout: %s, %d min.\nBurned: %.1f kcal.\nAdded %.0f ml of bonus water.",
			sess.workout.label, minutes, burned, bonusWater)
		return []string{reply}, true
	}
	return nil, true
}

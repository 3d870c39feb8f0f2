package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"kcalbot/internal/domain"
)

const (
	promptWeight   = "Enter your weight (kg):"
	promptHeight   = "Enter your height (cm):"
	promptAge      = "Enter your age:"
	promptGender   = "Enter your gender (male/female):"
	promptActivity = "How many minutes of activity per day?"
	promptCity     = "Which city are you in?"

	repromptWeight   = "Enter a positive number for your weight (kg)."
	repromptHeight   = "Enter a positive number for your height (cm)."
	repromptAge      = "Enter a whole positive number for your age."
	repromptGender   = `Answer "male" or "female".`
	repromptActivity = "Enter a whole non-negative number of minutes."
)

// handleProfileStep collects one profile field per message. Invalid input
// re-prompts without touching the accumulator or the step. The city step is
// the commit: it resolves the local temperature, derives both goals and
// replaces the stored profile whole, with all logs reset.
func (d *Dialogs) handleProfileStep(ctx context.Context, userID int64, sess *session, text string) ([]string, bool) {
	switch sess.machine.Current() {
	case stepWeight:
		v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil || v <= 0 {
			return []string{repromptWeight}, false
		}
		sess.profile.weightKg = v
		sess.advance(ctx)
		return []string{promptHeight}, false

	case stepHeight:
		v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil || v <= 0 {
			return []string{repromptHeight}, false
		}
		sess.profile.heightCm = v
		sess.advance(ctx)
		return []string{promptAge}, false

	case stepAge:
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || n <= 0 {
			return []string{repromptAge}, false
		}
		sess.profile.ageYears = n
		sess.advance(ctx)
		return []string{promptGender}, false

	case stepGender:
		g, ok := domain.ParseGender(text)
		if !ok {
			return []string{repromptGender}, false
		}
		sess.profile.gender = g
		sess.advance(ctx)
		return []string{promptActivity}, false

	case stepActivity:
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || n < 0 {
			return []string{repromptActivity}, false
		}
		sess.profile.activityMin = n
		sess.advance(ctx)
		return []string{promptCity}, false

	case stepCity:
		city := strings.TrimSpace(text)
		tempC := d.weather.CurrentTempC(ctx, city)

		dr := sess.profile
		waterGoal := domain.WaterGoalMl(dr.weightKg, dr.activityMin, tempC)
		calorieGoal := domain.CalorieGoal(dr.weightKg, dr.heightCm, dr.ageYears, dr.activityMin, dr.gender)

		profile := &domain.UserProfile{
			UserID:      userID,
			WeightKg:    dr.weightKg,
			HeightCm:    dr.heightCm,
			AgeYears:    dr.ageYears,
			Gender:      dr.gender,
			ActivityMin: dr.activityMin,
			City:        city,
			WaterGoalMl: waterGoal,
			CalorieGoal: calorieGoal,
		}
		if err := d.store.Put(ctx, userID, profile); err != nil {
			return []string{"Could not save your profile. Try again with /set_profile."}, true
		}

		reply := fmt.Sprintf(
			"Profile saved!\nWater goal: %.0f ml\nCalorie goal: %.0f kcal\n(Temperature in %s: %.1f°C)",
			waterGoal, calorieGoal, city, tempC)
		return []string{reply}, true
	}
	return nil, true
}

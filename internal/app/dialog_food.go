package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"kcalbot/internal/domain"
)

const (
	promptProduct = "Enter the product name:"
	repromptGrams = "Enter the number of grams you ate."

	promptMethod = "How was the product prepared?\n" +
		"- \"fried\"\n" +
		"- \"boiled\"\n" +
		"- \"baked\"\n" +
		"\"-\" if no preparation applies"

	msgFoodNotFound     = "No information found for that product. The food log was cancelled; try again with /log_food."
	msgFoodLookupFailed = "The food database is unavailable right now. The food log was cancelled; try again later."
)

// calorieWarningShare is the fraction of the calorie goal that triggers the
// low-calorie suggestions.
const calorieWarningShare = 0.8

var lowCalorieSuggestions = []string{
	"Cucumbers (~15 kcal / 100 g)",
	"Lettuce (~17 kcal / 100 g)",
	"Cabbage (~25 kcal / 100 g)",
	"Chicken breast (~110 kcal / 100 g)",
}

// handleFoodStep collects product, mass and preparation method. A lookup
// miss aborts the flow; an unrecognized method is accepted at the neutral
// multiplier. The method step is the commit and re-checks the profile guard
// through the store's Mutate.
func (d *Dialogs) handleFoodStep(ctx context.Context, userID int64, sess *session, text string) ([]string, bool) {
	switch sess.machine.Current() {
	case stepProduct:
		query := strings.ToLower(strings.TrimSpace(text))
		info, err := d.food.Find(ctx, query)
		if err != nil {
			if errors.Is(err, domain.ErrFoodNotFound) {
				return []string{msgFoodNotFound}, true
			}
			return []string{msgFoodLookupFailed}, true
		}

		sess.food.productName = info.Name
		sess.food.kcal100g = domain.FoodCalories100g(
			info.Protein100g, info.Fat100g, info.Carb100g, info.OfficialKcal100g)
		sess.advance(ctx)

		reply := fmt.Sprintf("%s has ~%.1f kcal per 100 g.\nHow many grams did you eat?",
			info.Name, sess.food.kcal100g)
		return []string{reply}, false

	case stepGrams:
		v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil || v <= 0 {
			return []string{repromptGrams}, false
		}
		sess.food.grams = v
		sess.advance(ctx)
		return []string{promptMethod}, false

	case stepMethod:
		method := strings.ToLower(strings.TrimSpace(text))
		factor := domain.MethodFactor(method)
		baseKcal := sess.food.kcal100g * sess.food.grams / 100
		finalKcal := domain.AppliedFoodCalories(sess.food.kcal100g, sess.food.grams, method)

		var total, goal float64
		err := d.store.Mutate(ctx, userID, func(p *domain.UserProfile) {
			p.LoggedCalories = append(p.LoggedCalories, finalKcal)
			total = sum(p.LoggedCalories)
			goal = p.CalorieGoal
		})
		if err != nil {
			return []string{MsgProfileRequired}, true
		}

		replies := []string{fmt.Sprintf(
			"Product: %s\nWeight: %.1f g\nBase calories: %.1f kcal\nPreparation: %s (x%.2f)\nTotal: %.1f kcal\n\nToday so far: %.1f kcal.",
			sess.food.productName, sess.food.grams, baseKcal, method, factor, finalKcal, total)}

		if total >= calorieWarningShare*goal {
			var b strings.Builder
			b.WriteString("You are getting close to your daily calorie goal.\nA few low-calorie options:\n")
			for _, item := range lowCalorieSuggestions {
				b.WriteString("• " + item + "\n")
			}
			replies = append(replies, b.String())
		}
		return replies, true
	}
	return nil, true
}

package domain

import "strings"

// workoutFactors maps the closed workout-label vocabulary to its empirical
// kcal coefficient. Labels outside the table burn at defaultWorkoutFactor.
var workoutFactors = map[string]float64{
	"run":         0.14,
	"walk":        0.05,
	"swim":        0.13,
	"cycle":       0.12,
	"yoga":        0.06,
	"strength":    0.11,
	"soccer":      0.14,
	"basketball":  0.15,
	"dance":       0.10,
	"aerobics":    0.09,
	"nordic walk": 0.07,
	"nordic-walk": 0.07,
}

const defaultWorkoutFactor = 0.10

// methodFactors maps a preparation method to its calorie multiplier. "-" is
// the no-preparation sentinel; unrecognized methods are neutral.
var methodFactors = map[string]float64{
	"fried":  1.20,
	"boiled": 1.00,
	"baked":  1.10,
	"none":   1.00,
	"-":      1.00,
}

// WaterGoalMl returns the daily water target in milliliters: 30 ml per kg of
// body weight, 500 ml per complete 30-minute activity block, and an extra
// 500 ml on hot days (above 25 °C).
func WaterGoalMl(weightKg float64, activityMin int, tempC float64) float64 {
	goal := weightKg*30 + float64(activityMin/30)*500
	if tempC > 25 {
		goal += 500
	}
	return goal
}

// CalorieGoal returns the daily calorie target in kcal: the Mifflin-St Jeor
// basal rate plus 5 kcal per daily activity minute.
func CalorieGoal(weightKg, heightCm float64, ageYears, activityMin int, gender Gender) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender == Male {
		base += 5
	} else {
		base -= 161
	}
	return base + float64(activityMin)*5
}

// WorkoutBurn returns the kcal burned by a workout. The label is matched
// against the closed vocabulary after trimming and case folding; unknown
// labels are still computed, at the default coefficient.
func WorkoutBurn(weightKg float64, durationMin int, label string) float64 {
	factor, ok := workoutFactors[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		factor = defaultWorkoutFactor
	}
	return factor * weightKg * float64(durationMin)
}

// FoodCalories100g derives the per-100g calorie value from macros
// (4 kcal/g protein, 9 kcal/g fat, 4 kcal/g carbohydrate). When the macro
// data is sparse or zeroed the provider's official value is used instead.
func FoodCalories100g(protein100g, fat100g, carb100g, officialKcal100g float64) float64 {
	kcal := 4*protein100g + 9*fat100g + 4*carb100g
	if kcal < 1 {
		return officialKcal100g
	}
	return kcal
}

// MethodFactor returns the calorie multiplier for a preparation method. Input
// is trimmed and case folded; anything outside the table is neutral (1.00).
func MethodFactor(method string) float64 {
	if f, ok := methodFactors[strings.ToLower(strings.TrimSpace(method))]; ok {
		return f
	}
	return 1.00
}

// AppliedFoodCalories returns the final kcal for an ingested portion.
func AppliedFoodCalories(kcal100g, grams float64, method string) float64 {
	return kcal100g * grams / 100 * MethodFactor(method)
}

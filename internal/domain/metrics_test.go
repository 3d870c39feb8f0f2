package domain_test

import (
	"math"
	"testing"

	"kcalbot/internal/domain"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestWaterGoalMl(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		activity int
		temp     float64
		want     float64
	}{
		{"no activity, mild", 70, 0, 20, 2100},
		{"one activity block", 60, 30, 20, 2300},
		{"partial block ignored", 60, 29, 20, 1800},
		{"two blocks", 70, 60, 20, 3100},
		{"hot day bonus", 70, 0, 26, 2600},
		{"exactly 25 is not hot", 70, 0, 25, 2100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.WaterGoalMl(tc.weight, tc.activity, tc.temp)
			if !almostEqual(got, tc.want, 0.001) {
				t.Errorf("WaterGoalMl(%v, %d, %v) = %v; want %v",
					tc.weight, tc.activity, tc.temp, got, tc.want)
			}
		})
	}
}

func TestCalorieGoal(t *testing.T) {
	tests := []struct {
		name                string
		weight, height      float64
		age, activity       int
		gender              domain.Gender
		want                float64
	}{
		{"male reference", 70, 175, 30, 60, domain.Male, 1948.75},
		{"female reference", 60, 160, 25, 30, domain.Female, 1464},
		{"male no activity", 70, 175, 30, 0, domain.Male, 1648.75},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.CalorieGoal(tc.weight, tc.height, tc.age, tc.activity, tc.gender)
			if !almostEqual(got, tc.want, 0.001) {
				t.Errorf("CalorieGoal(%v, %v, %d, %d, %q) = %v; want %v",
					tc.weight, tc.height, tc.age, tc.activity, tc.gender, got, tc.want)
			}
		})
	}
}

func TestWorkoutBurn(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		duration int
		label    string
		want     float64
	}{
		{"run", 70, 30, "run", 294},
		{"walk", 70, 30, "walk", 105},
		{"basketball", 80, 60, "basketball", 720},
		{"label is normalized", 70, 30, "  RUN ", 294},
		{"nordic walk", 70, 30, "nordic walk", 147},
		{"nordic walk hyphenated", 70, 30, "nordic-walk", 147},
		{"unknown label uses default", 70, 30, "juggling", 210},
		{"zero duration", 70, 0, "run", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.WorkoutBurn(tc.weight, tc.duration, tc.label)
			if !almostEqual(got, tc.want, 0.001) {
				t.Errorf("WorkoutBurn(%v, %d, %q) = %v; want %v",
					tc.weight, tc.duration, tc.label, got, tc.want)
			}
		})
	}
}

func TestFoodCalories100g(t *testing.T) {
	tests := []struct {
		name                         string
		protein, fat, carb, official float64
		want                         float64
	}{
		{"from macros", 10, 5, 20, 300, 165},
		{"sparse macros fall back to official", 0, 0, 0, 42, 42},
		{"just below threshold falls back", 0.1, 0, 0.1, 99, 99},
		{"at threshold keeps macros", 0.25, 0, 0, 99, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.FoodCalories100g(tc.protein, tc.fat, tc.carb, tc.official)
			if !almostEqual(got, tc.want, 0.001) {
				t.Errorf("FoodCalories100g(%v, %v, %v, %v) = %v; want %v",
					tc.protein, tc.fat, tc.carb, tc.official, got, tc.want)
			}
		})
	}
}

func TestAppliedFoodCalories(t *testing.T) {
	tests := []struct {
		name     string
		kcal100g float64
		grams    float64
		method   string
		want     float64
	}{
		{"fried", 100, 200, "fried", 240},
		{"boiled", 100, 200, "boiled", 200},
		{"baked", 100, 100, "baked", 110},
		{"no preparation sentinel", 100, 100, "-", 100},
		{"unrecognized method is neutral", 100, 100, "pickled", 100},
		{"method is normalized", 100, 200, " Fried ", 240},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.AppliedFoodCalories(tc.kcal100g, tc.grams, tc.method)
			if !almostEqual(got, tc.want, 0.001) {
				t.Errorf("AppliedFoodCalories(%v, %v, %q) = %v; want %v",
					tc.kcal100g, tc.grams, tc.method, got, tc.want)
			}
		})
	}
}

func TestParseGender(t *testing.T) {
	tests := []struct {
		in     string
		want   domain.Gender
		wantOK bool
	}{
		{"male", domain.Male, true},
		{"  Female ", domain.Female, true},
		{"M", domain.Male, true},
		{"f", domain.Female, true},
		{"other", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := domain.ParseGender(tc.in)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("ParseGender(%q) = (%q, %v); want (%q, %v)",
					tc.in, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

package domain

import "context"

// FoodInfo is the transient result of a food lookup. It is consumed inside a
// LogFood dialog and never stored.
type FoodInfo struct {
	Name             string
	Protein100g      float64
	Fat100g          float64
	Carb100g         float64
	OfficialKcal100g float64
}

// FoodLookup is the port for the external food-composition provider.
type FoodLookup interface {
	// Find returns the first product matching query, or ErrFoodNotFound.
	Find(ctx context.Context, query string) (*FoodInfo, error)
}

// WeatherLookup is the port for the external weather provider.
// Implementations map any transport or parse failure to a fixed default
// temperature; callers never see an error.
type WeatherLookup interface {
	CurrentTempC(ctx context.Context, city string) float64
}

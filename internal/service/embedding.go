package service

import (
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/pageza/brewshare/backend/internal/models"
)

// Scale factors that bring each brew parameter into roughly [0, 1]
const (
	ratioScale    = 20.0
	tempScale     = 100.0
	doseScale     = 30.0
	brewTimeScale = 600.0
)

var immersionMethods = map[string]bool{
	"french_press": true,
	"aeropress":    true,
	"cold_brew":    true,
	"siphon":       true,
}

var pressureMethods = map[string]bool{
	"espresso": true,
	"moka_pot": true,
}

// BrewProfile returns the deterministic embedding used for similarity search.
// Dimensions: ratio, water temperature, dose, brew time, immersion, pressure.
func BrewProfile(r *models.Recipe) pgvector.Vector {
	v := make([]float32, models.ProfileDimensions)
	v[0] = clamp(r.Ratio() / ratioScale)
	v[1] = clamp(r.WaterTempC / tempScale)
	v[2] = clamp(r.DoseGrams / doseScale)
	v[3] = clamp(float64(r.BrewSeconds) / brewTimeScale)
	if immersionMethods[r.BrewMethod] {
		v[4] = 1
	}
	if pressureMethods[r.BrewMethod] {
		v[5] = 1
	}
	return pgvector.NewVector(v)
}

func clamp(x float64) float32 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return float32(x)
	}
}

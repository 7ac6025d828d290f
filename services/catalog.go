package services

import (
	"math/rand"

	"github.com/ana-coahuila/IA-MetaFit/models"
)

// MealPool names one compensation strategy's pool of candidate meals.
type MealPool string

const (
	PoolLight   MealPool = "light"
	PoolProtein MealPool = "protein-forward"
	PoolDetox   MealPool = "detox"
)

// PoolForClass maps an impact class to the pool its compensating days draw
// from. This mapping is the only behavioral difference between classes.
func PoolForClass(class ImpactClass) MealPool {
	switch class {
	case ImpactDeficit:
		return PoolProtein
	case ImpactMildExcess:
		return PoolDetox
	default:
		return PoolLight
	}
}

// MealCatalog holds the static candidate meals per pool.
type MealCatalog struct {
	pools map[MealPool][]models.MealEntry
}

// compensationCatalog is the canonical catalog, loaded once with the process.
var compensationCatalog = &MealCatalog{pools: map[MealPool][]models.MealEntry{
	PoolLight: {
		{Name: "chicken salad", Calories: 150, Category: "Light"},
		{Name: "vegetable soup", Calories: 100, Category: "Light"},
		{Name: "tuna with cucumber", Calories: 120, Category: "Light"},
		{Name: "steamed chicken", Calories: 180, Category: "Light"},
	},
	PoolProtein: {
		{Name: "egg white omelette", Calories: 200, Category: "Protein"},
		{Name: "grilled chicken", Calories: 220, Category: "Protein"},
		{Name: "protein shake", Calories: 250, Category: "Protein"},
		{Name: "tofu with vegetables", Calories: 180, Category: "Protein"},
	},
	PoolDetox: {
		{Name: "green salad", Calories: 90, Category: "Detox"},
		{Name: "fresh juice", Calories: 80, Category: "Detox"},
		{Name: "lentil soup", Calories: 120, Category: "Detox"},
		{Name: "pumpkin puree", Calories: 110, Category: "Detox"},
	},
}}

// DefaultMealCatalog returns the process-wide substitution catalog.
func DefaultMealCatalog() *MealCatalog {
	return compensationCatalog
}

// Pool returns the candidate meals for a pool. Callers must not mutate the
// returned slice.
func (c *MealCatalog) Pool(pool MealPool) []models.MealEntry {
	return c.pools[pool]
}

// Draw picks one meal from the pool uniformly at random. Draws are
// independent, so consecutive draws may repeat the same meal.
func (c *MealCatalog) Draw(pool MealPool) models.MealEntry {
	meals := c.pools[pool]
	return meals[rand.Intn(len(meals))]
}

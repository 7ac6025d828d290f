package services

import (
	"fmt"

	"github.com/ana-coahuila/IA-MetaFit/models"
)

// mealsPerDay is the fixed slot count per plan day: breakfast, lunch, dinner.
const mealsPerDay = 3

// SubstituteMeals replaces the meals of each target day that exists in the
// plan with three independent draws from the pool matching the impact class.
// Target days missing from the plan are skipped without comment; the plan
// store owns which days a user has, and fabricating one here would orphan it.
//
// With preserveIdentity set, replacement entries adopt the original entries'
// store identifiers slot for slot so the plan store can reconcile the update.
// A day with fewer than mealsPerDay existing entries is still substituted,
// but without identifiers; that is reported as a warning, not an error.
//
// The incoming plan is never mutated; untouched days come back exactly as
// received.
func SubstituteMeals(plan models.WeekPlan, targetDays []string, class ImpactClass, catalog *MealCatalog, preserveIdentity bool) (models.WeekPlan, []string) {
	updated := plan.Clone()
	pool := PoolForClass(class)

	var warnings []string
	for _, day := range targetDays {
		original, ok := updated[day]
		if !ok {
			continue
		}

		fresh := make([]models.MealEntry, mealsPerDay)
		for slot := range fresh {
			fresh[slot] = catalog.Draw(pool)
		}

		if preserveIdentity {
			if len(original) >= mealsPerDay {
				for slot := 0; slot < mealsPerDay; slot++ {
					fresh[slot].ID = original[slot].ID
				}
			} else {
				warnings = append(warnings, fmt.Sprintf(
					"day %q has %d meal entries, identifiers were not preserved", day, len(original)))
			}
		}

		updated[day] = fresh
	}
	return updated, warnings
}

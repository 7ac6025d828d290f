package services

import (
	"reflect"
	"testing"

	"github.com/ana-coahuila/IA-MetaFit/models"
)

func fullWeekPlan() models.WeekPlan {
	plan := models.WeekPlan{}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		plan[day] = []models.MealEntry{
			{Name: "oatmeal", Calories: 300, Category: "Normal", ID: day + "-b"},
			{Name: "rice and beans", Calories: 550, Category: "Normal", ID: day + "-l"},
			{Name: "pasta", Calories: 600, Category: "Normal", ID: day + "-d"},
		}
	}
	return plan
}

func poolNames(pool MealPool) map[string]bool {
	names := map[string]bool{}
	for _, m := range DefaultMealCatalog().Pool(pool) {
		names[m.Name] = true
	}
	return names
}

func TestSubstituteMeals_DrawsOnlyFromMatchingPool(t *testing.T) {
	cases := []struct {
		class ImpactClass
		pool  MealPool
	}{
		{ImpactExcess, PoolLight},
		{ImpactDeficit, PoolProtein},
		{ImpactMildExcess, PoolDetox},
	}

	targets := []string{"tuesday", "wednesday", "thursday"}
	for _, tc := range cases {
		allowed := poolNames(tc.pool)
		// substitution is randomized; check exclusivity over many runs
		for run := 0; run < 50; run++ {
			updated, _ := SubstituteMeals(fullWeekPlan(), targets, tc.class, DefaultMealCatalog(), true)
			for _, day := range targets {
				for _, meal := range updated[day] {
					if !allowed[meal.Name] {
						t.Fatalf("class %s drew %q from outside the %s pool", tc.class, meal.Name, tc.pool)
					}
				}
			}
		}
	}
}

func TestSubstituteMeals_PreservesIdentifiersSlotForSlot(t *testing.T) {
	plan := fullWeekPlan()
	updated, warnings := SubstituteMeals(plan, []string{"tuesday"}, ImpactExcess, DefaultMealCatalog(), true)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	got := updated["tuesday"]
	if len(got) != 3 {
		t.Fatalf("expected 3 meals, got %d", len(got))
	}
	for slot, wantID := range []string{"tuesday-b", "tuesday-l", "tuesday-d"} {
		if got[slot].ID != wantID {
			t.Fatalf("slot %d identifier = %q, want %q", slot, got[slot].ID, wantID)
		}
		if got[slot].Name == plan["tuesday"][slot].Name && got[slot].Calories == plan["tuesday"][slot].Calories {
			// a draw can legitimately collide; only the ID must be stable,
			// so no assertion on name/calories here
			continue
		}
	}
}

func TestSubstituteMeals_ShortDayGetsWarningNotIdentifiers(t *testing.T) {
	plan := models.WeekPlan{
		"tuesday": {
			{Name: "oatmeal", Calories: 300, Category: "Normal", ID: "t-b"},
			{Name: "pasta", Calories: 600, Category: "Normal", ID: "t-l"},
		},
	}

	updated, warnings := SubstituteMeals(plan, []string{"tuesday"}, ImpactExcess, DefaultMealCatalog(), true)
	if len(warnings) != 1 {
		t.Fatalf("expected one warning for the short day, got %v", warnings)
	}
	if len(updated["tuesday"]) != 3 {
		t.Fatalf("short day must still receive 3 meals, got %d", len(updated["tuesday"]))
	}
	for slot, meal := range updated["tuesday"] {
		if meal.ID != "" {
			t.Fatalf("slot %d unexpectedly carries identifier %q", slot, meal.ID)
		}
	}
}

func TestSubstituteMeals_SkipsDaysAbsentFromPlan(t *testing.T) {
	plan := models.WeekPlan{
		"monday": {
			{Name: "oatmeal", Calories: 300, Category: "Normal"},
			{Name: "rice", Calories: 500, Category: "Normal"},
			{Name: "pasta", Calories: 600, Category: "Normal"},
		},
	}

	updated, warnings := SubstituteMeals(plan, []string{"friday"}, ImpactExcess, DefaultMealCatalog(), true)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if _, ok := updated["friday"]; ok {
		t.Fatalf("friday was fabricated although absent from the input plan")
	}
	if !reflect.DeepEqual(updated["monday"], plan["monday"]) {
		t.Fatalf("untouched day changed: %v", updated["monday"])
	}
}

func TestSubstituteMeals_DoesNotMutateInput(t *testing.T) {
	plan := fullWeekPlan()
	before := plan.Clone()

	_, _ = SubstituteMeals(plan, []string{"monday", "tuesday"}, ImpactDeficit, DefaultMealCatalog(), true)

	if !reflect.DeepEqual(plan, before) {
		t.Fatalf("input plan was mutated")
	}
}

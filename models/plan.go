package models

// MealEntry is one slot of a day's plan as exchanged with the plan store.
// ID is the store's stable identifier; when an incoming entry carries one,
// any replacement written into that slot must keep it so the store can
// reconcile the updated plan against its own records.
type MealEntry struct {
    Name     string  `json:"name"`
    Calories float64 `json:"calories"`
    Category string  `json:"category"`
    ID       string  `json:"_id,omitempty"`
}

// WeekPlan maps lower-case weekday names to that day's three meal slots
// (breakfast, lunch, dinner). Incoming plans may omit days; only the days
// present are eligible for substitution.
type WeekPlan map[string][]MealEntry

// Clone returns a copy whose day slices are independent of the original, so
// substitution never mutates the caller's plan in place.
func (p WeekPlan) Clone() WeekPlan {
    out := make(WeekPlan, len(p))
    for day, meals := range p {
        cp := make([]MealEntry, len(meals))
        copy(cp, meals)
        out[day] = cp
    }
    return out
}

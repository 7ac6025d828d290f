package services

import (
	"fmt"
	"sort"
)

// ImpactClass is the coarse behavioral bucket of an event. It decides which
// substitution pool compensating days draw from, and nothing else.
type ImpactClass string

const (
	ImpactExcess     ImpactClass = "excess"
	ImpactDeficit    ImpactClass = "deficit"
	ImpactMildExcess ImpactClass = "mild-excess"
)

// EventImpact is one knowledge-base entry for a reported life event.
type EventImpact struct {
	CaloricImpact           int         // positive = excess, negative = deficit
	DefaultCompensationDays int         // used when the predictor lacks history
	Class                   ImpactClass
}

// eventKnowledgeBase is the canonical event table: one read-only map loaded
// with the process, shared by every request.
var eventKnowledgeBase = map[string]EventImpact{
	"party":   {CaloricImpact: 600, DefaultCompensationDays: 3, Class: ImpactExcess},
	"trip":    {CaloricImpact: 400, DefaultCompensationDays: 2, Class: ImpactExcess},
	"illness": {CaloricImpact: -300, DefaultCompensationDays: 2, Class: ImpactDeficit},
	"stress":  {CaloricImpact: 200, DefaultCompensationDays: 1, Class: ImpactMildExcess},
	"day-off": {CaloricImpact: 300, DefaultCompensationDays: 2, Class: ImpactExcess},
}

// ClassifyEvent looks a normalized category key up in the knowledge base.
// This is the single validation gate for event input: anything not in the
// table is an error, never a silent default.
func ClassifyEvent(category string) (EventImpact, error) {
	impact, ok := eventKnowledgeBase[category]
	if !ok {
		return EventImpact{}, fmt.Errorf("%w: %q", ErrUnknownEvent, category)
	}
	return impact, nil
}

// KnownEventCategories returns the table's keys, sorted, for error messages.
func KnownEventCategories() []string {
	keys := make([]string, 0, len(eventKnowledgeBase))
	for k := range eventKnowledgeBase {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

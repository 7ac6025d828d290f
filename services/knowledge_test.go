package services

import (
	"errors"
	"testing"
)

func TestClassifyEvent_KnownCategories(t *testing.T) {
	cases := map[string]EventImpact{
		"party":   {CaloricImpact: 600, DefaultCompensationDays: 3, Class: ImpactExcess},
		"trip":    {CaloricImpact: 400, DefaultCompensationDays: 2, Class: ImpactExcess},
		"illness": {CaloricImpact: -300, DefaultCompensationDays: 2, Class: ImpactDeficit},
		"stress":  {CaloricImpact: 200, DefaultCompensationDays: 1, Class: ImpactMildExcess},
		"day-off": {CaloricImpact: 300, DefaultCompensationDays: 2, Class: ImpactExcess},
	}
	for key, want := range cases {
		got, err := ClassifyEvent(key)
		if err != nil {
			t.Fatalf("ClassifyEvent(%q) failed: %v", key, err)
		}
		if got != want {
			t.Fatalf("ClassifyEvent(%q) = %+v, want %+v", key, got, want)
		}
	}
}

func TestClassifyEvent_UnknownCategory(t *testing.T) {
	_, err := ClassifyEvent("marathon")
	if err == nil {
		t.Fatalf("expected error for unknown category")
	}
	if !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("expected ErrUnknownEvent, got %v", err)
	}
}

func TestPoolForClass(t *testing.T) {
	if PoolForClass(ImpactExcess) != PoolLight {
		t.Fatalf("excess should draw from the light pool")
	}
	if PoolForClass(ImpactDeficit) != PoolProtein {
		t.Fatalf("deficit should draw from the protein-forward pool")
	}
	if PoolForClass(ImpactMildExcess) != PoolDetox {
		t.Fatalf("mild-excess should draw from the detox pool")
	}
}

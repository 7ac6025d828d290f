package services

import (
	"errors"
	"testing"

	"github.com/ana-coahuila/IA-MetaFit/models"
)

func rec(user, category string, days int) models.EventRecord {
	return models.EventRecord{UserID: user, EventCategory: category, CompensationDays: days}
}

func TestPredict_InsufficientHistory(t *testing.T) {
	p := &CompensationPredictor{Scope: ScopeGlobal}

	for _, history := range [][]models.EventRecord{
		nil,
		{rec("u1", "party", 3)},
		{rec("u1", "party", 3), rec("u1", "trip", 2)},
	} {
		_, err := p.Predict(600, history, "u1")
		if !errors.Is(err, ErrInsufficientHistory) {
			t.Fatalf("expected ErrInsufficientHistory for %d records, got %v", len(history), err)
		}
	}
}

func TestPredict_FitsLinearHistory(t *testing.T) {
	p := &CompensationPredictor{Scope: ScopeGlobal}
	// stress(200)→1, trip(400)→2, party(600)→3 lie on days = impact/200
	history := []models.EventRecord{
		rec("u1", "stress", 1),
		rec("u1", "trip", 2),
		rec("u1", "party", 3),
	}

	days, err := p.Predict(600, history, "u1")
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if days != 3 {
		t.Fatalf("expected 3 days at impact 600, got %d", days)
	}

	days, err = p.Predict(400, history, "u1")
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if days != 2 {
		t.Fatalf("expected 2 days at impact 400, got %d", days)
	}
}

func TestPredict_ClampsToOneDay(t *testing.T) {
	p := &CompensationPredictor{Scope: ScopeGlobal}
	history := []models.EventRecord{
		rec("u1", "stress", 1),
		rec("u1", "trip", 2),
		rec("u1", "party", 3),
	}

	// illness impact is -300; the fitted line goes well below zero there
	days, err := p.Predict(-300, history, "u1")
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if days < 1 {
		t.Fatalf("prediction must clamp to at least 1 day, got %d", days)
	}
}

func TestPredict_ConstantImpactHistoryUsesMean(t *testing.T) {
	p := &CompensationPredictor{Scope: ScopeGlobal}
	// every sample shares x=600, so the slope is undefined
	history := []models.EventRecord{
		rec("u1", "party", 2),
		rec("u2", "party", 3),
		rec("u3", "party", 4),
	}

	days, err := p.Predict(600, history, "u1")
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if days != 3 {
		t.Fatalf("expected mean fallback of 3 days, got %d", days)
	}
}

func TestPredict_SkipsRetiredAndMalformedRecords(t *testing.T) {
	p := &CompensationPredictor{Scope: ScopeGlobal}
	history := []models.EventRecord{
		rec("u1", "siesta", 5), // retired category, not in the knowledge base
		rec("u1", "party", 0),  // malformed day count
		rec("u1", "stress", 1),
		rec("u1", "trip", 2),
	}

	_, err := p.Predict(600, history, "u1")
	if !errors.Is(err, ErrInsufficientHistory) {
		t.Fatalf("only 2 usable samples remain, expected ErrInsufficientHistory, got %v", err)
	}
}

func TestPredict_UserScopeFiltersToUser(t *testing.T) {
	p := &CompensationPredictor{Scope: ScopeUser}
	history := []models.EventRecord{
		rec("u1", "stress", 1),
		rec("u1", "trip", 2),
		rec("u2", "party", 3),
		rec("u2", "party", 3),
	}

	// u1 has only two records of their own: not enough, even though the
	// global pool has four
	_, err := p.Predict(600, history, "u1")
	if !errors.Is(err, ErrInsufficientHistory) {
		t.Fatalf("expected ErrInsufficientHistory under user scope, got %v", err)
	}
}

func TestPredict_UserWithNoHistoryTrainsOnGlobalPool(t *testing.T) {
	p := &CompensationPredictor{Scope: ScopeUser}
	history := []models.EventRecord{
		rec("u1", "stress", 1),
		rec("u1", "trip", 2),
		rec("u2", "party", 3),
	}

	days, err := p.Predict(600, history, "u3")
	if err != nil {
		t.Fatalf("expected global fallback for unseen user, got %v", err)
	}
	if days != 3 {
		t.Fatalf("expected 3 days, got %d", days)
	}
}

func TestNewCompensationPredictor_ScopeFromEnv(t *testing.T) {
	t.Setenv("HISTORY_SCOPE", "global")
	if p := NewCompensationPredictor(); p.Scope != ScopeGlobal {
		t.Fatalf("expected global scope, got %q", p.Scope)
	}

	t.Setenv("HISTORY_SCOPE", "")
	if p := NewCompensationPredictor(); p.Scope != ScopeUser {
		t.Fatalf("expected user scope default, got %q", p.Scope)
	}
}

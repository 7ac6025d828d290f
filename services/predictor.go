package services

import (
	"log"
	"math"
	"os"

	"github.com/ana-coahuila/IA-MetaFit/models"
)

// HistoryScope selects whose event records the predictor trains on.
type HistoryScope string

const (
	ScopeUser   HistoryScope = "user"   // the requesting user's records
	ScopeGlobal HistoryScope = "global" // every user's records
)

// minTrainingSamples is the smallest history that yields a model instead of
// the knowledge-base default.
const minTrainingSamples = 3

// CompensationPredictor maps an event's caloric impact to a compensation-day
// count with a least-squares line refit from the event history on every call.
// It owns no state between calls; a stale history snapshot is acceptable
// because the model is advisory.
type CompensationPredictor struct {
	Scope HistoryScope
}

// NewCompensationPredictor reads the scope from HISTORY_SCOPE (user|global).
// Anything other than "global" means per-user.
func NewCompensationPredictor() *CompensationPredictor {
	scope := HistoryScope(os.Getenv("HISTORY_SCOPE"))
	if scope != ScopeGlobal {
		scope = ScopeUser
	}
	return &CompensationPredictor{Scope: scope}
}

// Predict fits days ≈ a·impact + b over the usable history and evaluates it
// at caloricImpact. With fewer than minTrainingSamples usable samples it
// returns ErrInsufficientHistory so the caller falls back to the default.
// Predictions never go below one day.
func (p *CompensationPredictor) Predict(caloricImpact int, history []models.EventRecord, userID string) (int, error) {
	records := history
	if p.Scope == ScopeUser && userID != "" {
		mine := make([]models.EventRecord, 0, len(records))
		for _, r := range history {
			if r.UserID == userID {
				mine = append(mine, r)
			}
		}
		// A user with no history at all trains on the global pool.
		if len(mine) > 0 {
			records = mine
		}
	}

	xs := make([]float64, 0, len(records))
	ys := make([]float64, 0, len(records))
	for _, r := range records {
		impact, ok := eventKnowledgeBase[r.EventCategory]
		if !ok {
			continue // retired category, skip
		}
		if r.CompensationDays <= 0 {
			log.Printf("predictor: skipping malformed event record %d (compensation_days=%d)", r.ID, r.CompensationDays)
			continue
		}
		xs = append(xs, float64(impact.CaloricImpact))
		ys = append(ys, float64(r.CompensationDays))
	}

	if len(xs) < minTrainingSamples {
		return 0, ErrInsufficientHistory
	}

	slope, intercept := fitLine(xs, ys)
	days := int(math.Round(intercept + slope*float64(caloricImpact)))
	if days < 1 {
		days = 1
	}
	return days, nil
}

// fitLine is closed-form ordinary least squares for a single feature. When
// every sample shares the same x the slope is undefined; the best constant
// fit (the mean of y) is returned instead.
func fitLine(xs, ys []float64) (slope, intercept float64) {
	n := float64(len(xs))
	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

package services

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/ana-coahuila/IA-MetaFit/models"
)

// PlanSourceService talks to the external plan store that owns the users'
// sample plans, keyed by BMI classification tag. It sits entirely outside
// the adaptation engine; the engine substitutes from the static catalog.
type PlanSourceService struct {
	baseURL string
	client  *http.Client
}

func NewPlanSourceService() *PlanSourceService {
	return &PlanSourceService{
		baseURL: os.Getenv("PLAN_API_URL"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SamplePlan is one candidate plan from the store: a named set of meals
// keyed by slot type ("breakfast", "lunch", "dinner").
type SamplePlan struct {
	Name  string                      `json:"name"`
	Meals map[string]models.MealEntry `json:"meals"`
}

// SamplePlans fetches candidate plans for a BMI classification tag.
func (s *PlanSourceService) SamplePlans(bmiCategory string) ([]SamplePlan, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("PLAN_API_URL not set")
	}

	u := fmt.Sprintf("%s/plans/sample?bmiCategory=%s", s.baseURL, url.QueryEscape(bmiCategory))
	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call plan source: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan source response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("plan source API error %d: %s", resp.StatusCode, string(body))
	}

	var plans []SamplePlan
	if err := json.Unmarshal(body, &plans); err != nil {
		return nil, fmt.Errorf("failed to parse plan source JSON: %w", err)
	}
	return plans, nil
}

// MealByType picks one meal of the given slot type at random across the
// fetched plans. ok is false when no plan carries that slot.
func (s *PlanSourceService) MealByType(plans []SamplePlan, mealType string) (models.MealEntry, bool) {
	var candidates []models.MealEntry
	for _, p := range plans {
		if m, ok := p.Meals[mealType]; ok {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return models.MealEntry{}, false
	}
	return candidates[rand.Intn(len(candidates))], true
}

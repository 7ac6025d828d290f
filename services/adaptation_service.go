package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ana-coahuila/IA-MetaFit/models"
	"github.com/ana-coahuila/IA-MetaFit/utils"
)

// AdaptRequest is the engine-facing shape of a plan adaptation call.
type AdaptRequest struct {
	UserID        string          `json:"userId" binding:"required"`
	EventCategory string          `json:"eventType" binding:"required"`
	AnchorDay     string          `json:"day"`
	Plan          models.WeekPlan `json:"plan" binding:"required"`
	// NotifyEmail, when set, asks the transport to mail the user a summary
	// of the adjustment. The engine itself never sends mail.
	NotifyEmail string `json:"notifyEmail,omitempty"`
}

// AdaptResult is what a successful adaptation hands back to the transport.
type AdaptResult struct {
	Message          string          `json:"message"`
	Event            string          `json:"event"`
	UpdatedPlan      models.WeekPlan `json:"updatedPlan"`
	CompensationDays int             `json:"compensationDays"`
	AdjustedDays     []string        `json:"adjustedDays"`
	Warnings         []string        `json:"warnings,omitempty"`
	FromModel        bool            `json:"fromModel"`
}

// AdaptationService runs the full adaptation pipeline: classify the event,
// pick a day count (model or default), resolve which calendar days to touch,
// substitute their meals, and record the decision for future training.
type AdaptationService struct {
	store     EventStore
	catalog   *MealCatalog
	predictor *CompensationPredictor
	hub       *AdaptationHub // optional
}

func NewAdaptationService(store EventStore, catalog *MealCatalog, predictor *CompensationPredictor, hub *AdaptationHub) *AdaptationService {
	return &AdaptationService{store: store, catalog: catalog, predictor: predictor, hub: hub}
}

// AdaptPlan is all-or-nothing from the caller's side: any validation or store
// failure returns an error and no plan. The history append is part of the
// operation — a plan whose record was never written would let the feedback
// loop drift from what users actually received, so a failed append fails the
// request too.
func (s *AdaptationService) AdaptPlan(req AdaptRequest) (*AdaptResult, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidRequest)
	}
	if _, err := uuid.Parse(req.UserID); err != nil {
		return nil, fmt.Errorf("%w: userId is not a valid plan-store id", ErrInvalidRequest)
	}
	if len(req.Plan) == 0 {
		return nil, fmt.Errorf("%w: plan is required", ErrInvalidRequest)
	}

	eventKey := utils.NormalizeEventKey(req.EventCategory)
	impact, err := ClassifyEvent(eventKey)
	if err != nil {
		return nil, err
	}

	// Snapshot the history before predicting. Concurrent appends may land in
	// between; the model is advisory, so training on a slightly stale
	// snapshot is fine as long as this request's own append comes after.
	history, err := s.store.ListAll()
	if err != nil {
		return nil, fmt.Errorf("event history read failed: %w", err)
	}

	fromModel := true
	days, err := s.predictor.Predict(impact.CaloricImpact, history, req.UserID)
	if err != nil {
		if !errors.Is(err, ErrInsufficientHistory) {
			return nil, err
		}
		days = impact.DefaultCompensationDays
		fromModel = false
	}

	anchor := utils.NormalizeDayKey(req.AnchorDay)
	targets := utils.ResolveCompensationDays(anchor, days)
	updated, warnings := SubstituteMeals(req.Plan, targets, impact.Class, s.catalog, true)

	rec := &models.EventRecord{
		UserID:           req.UserID,
		EventCategory:    eventKey,
		AnchorDay:        anchor,
		CompensationDays: days,
	}
	if err := s.store.Append(rec); err != nil {
		return nil, fmt.Errorf("event history append failed: %w", err)
	}

	if s.hub != nil {
		s.hub.BroadcastAdaptation(req.UserID, map[string]any{
			"kind":         "plan.adapted",
			"event":        eventKey,
			"days":         days,
			"adjustedDays": targets,
		})
	}

	return &AdaptResult{
		Message:          fmt.Sprintf("Plan adjusted for '%s' (%d days)", eventKey, days),
		Event:            eventKey,
		UpdatedPlan:      updated,
		CompensationDays: days,
		AdjustedDays:     targets,
		Warnings:         warnings,
		FromModel:        fromModel,
	}, nil
}

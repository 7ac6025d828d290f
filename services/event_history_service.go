package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/ana-coahuila/IA-MetaFit/models"
)

// EventStore is the history collaborator the adaptation engine reads before
// predicting and appends to after substituting.
type EventStore interface {
	Append(rec *models.EventRecord) error
	ListAll() ([]models.EventRecord, error)
	ListByUser(userID string) ([]models.EventRecord, error)
	ResetUser(userID string) (int64, error)
	ResetAll() error
}

// EventHistoryService is the GORM-backed EventStore.
type EventHistoryService struct {
	db *gorm.DB
}

func NewEventHistoryService(db *gorm.DB) *EventHistoryService {
	return &EventHistoryService{db: db}
}

func (s *EventHistoryService) Append(rec *models.EventRecord) error {
	if err := s.db.Create(rec).Error; err != nil {
		return fmt.Errorf("append event record: %w", err)
	}
	return nil
}

func (s *EventHistoryService) ListAll() ([]models.EventRecord, error) {
	var recs []models.EventRecord
	err := s.db.Order("created_at ASC").Find(&recs).Error
	return recs, err
}

func (s *EventHistoryService) ListByUser(userID string) ([]models.EventRecord, error) {
	var recs []models.EventRecord
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&recs).Error
	return recs, err
}

// ResetUser removes one user's records and reports how many were deleted.
func (s *EventHistoryService) ResetUser(userID string) (int64, error) {
	res := s.db.Where("user_id = ?", userID).Delete(&models.EventRecord{})
	return res.RowsAffected, res.Error
}

func (s *EventHistoryService) ResetAll() error {
	return s.db.Where("1 = 1").Delete(&models.EventRecord{}).Error
}

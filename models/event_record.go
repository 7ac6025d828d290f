package models

import (
    "gorm.io/gorm"
)

// EventRecord is one row of the adaptation feedback loop: which event a user
// reported, where in the week it landed, and how many days were adjusted for
// it. Rows are append-only; only the admin reset endpoint removes them.
type EventRecord struct {
    gorm.Model
    UserID           string `gorm:"index;not null"`
    EventCategory    string `gorm:"not null"`
    AnchorDay        string
    CompensationDays int `gorm:"not null"`
}

package models

import (
    "time"

    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Email            string `gorm:"uniqueIndex;not null"`
    Password         string `gorm:"not null"`
    FullName         string
    Birthday         time.Time
    Height           float64 // cm
    Weight           float64 // kg
    HealthConditions string
    FitnessGoals     string
}

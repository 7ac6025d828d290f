package services

import (
	"errors"
	"time"

	"github.com/ana-coahuila/IA-MetaFit/config"
	"github.com/ana-coahuila/IA-MetaFit/models"
	"github.com/ana-coahuila/IA-MetaFit/utils"
)

type ProfileInput struct {
	FullName         string  `json:"full_name"`
	Birthday         string  `json:"birthday"` // sent as YYYY-MM-DD
	Height           float64 `json:"height"`
	Weight           float64 `json:"weight"`
	HealthConditions string  `json:"health_conditions"`
	FitnessGoals     string  `json:"fitness_goals"`
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil, err
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	return map[string]interface{}{
		"id":                user.ID,
		"email":             user.Email,
		"full_name":         user.FullName,
		"birthday":          user.Birthday.Format("2006-01-02"),
		"age":               age,
		"height":            user.Height,
		"weight":            user.Weight,
		"health_conditions": user.HealthConditions,
		"fitness_goals":     user.FitnessGoals,
		"bmi_category":      ClassificationTag(user),
	}, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return err
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", input.Birthday)
		if err == nil {
			user.Birthday = birthday
		}
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.HealthConditions != "" {
		user.HealthConditions = input.HealthConditions
	}
	if input.FitnessGoals != "" {
		user.FitnessGoals = input.FitnessGoals
	}

	return config.DB.Save(user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// ClassificationTag derives the plan-source tag from the user's BMI.
// Users without usable height/weight sample the "Normal" plans, matching
// what the plan store does for unclassified users.
func ClassificationTag(user *models.User) string {
	bmi, err := utils.CalculateBMI(user.Height, user.Weight)
	if err != nil {
		return "Normal"
	}
	return utils.BMICategory(bmi)
}

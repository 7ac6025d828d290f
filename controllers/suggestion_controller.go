package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ana-coahuila/IA-MetaFit/services"
)

type SuggestionController struct {
	Plans *services.PlanSourceService
}

func NewSuggestionController(plans *services.PlanSourceService) *SuggestionController {
	return &SuggestionController{Plans: plans}
}

// PlanSuggestions handles GET /user/plan-suggestions: samples one meal per
// slot from the external plan source matching the caller's BMI tag.
func (s *SuggestionController) PlanSuggestions(c *gin.Context) {
	email := c.GetString("email")
	user, err := services.FindUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	tag := services.ClassificationTag(user)
	plans, err := s.Plans.SamplePlans(tag)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	suggestions := gin.H{}
	for _, slot := range []string{"breakfast", "lunch", "dinner"} {
		if meal, ok := s.Plans.MealByType(plans, slot); ok {
			suggestions[slot] = meal
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"bmi_category": tag,
		"suggestions":  suggestions,
	})
}

package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ana-coahuila/IA-MetaFit/services"
	"github.com/ana-coahuila/IA-MetaFit/utils"
)

type AdaptController struct {
	Svc *services.AdaptationService
}

func NewAdaptController(svc *services.AdaptationService) *AdaptController {
	return &AdaptController{Svc: svc}
}

// AdaptPlan handles POST /adapt: a reported life event plus the user's week
// plan in, the compensated plan out.
func (a *AdaptController) AdaptPlan(c *gin.Context) {
	var req services.AdaptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := a.Svc.AdaptPlan(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownEvent):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "validEvents": services.KnownEventCategories()})
		case errors.Is(err, services.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if req.NotifyEmail != "" {
		// best effort: the adaptation already succeeded and was recorded
		if err := utils.SendPlanAdjustedEmail(req.NotifyEmail, res.Event, res.CompensationDays); err != nil {
			log.Printf("adapt: notification email failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, res)
}

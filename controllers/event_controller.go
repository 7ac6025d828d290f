package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ana-coahuila/IA-MetaFit/services"
)

type EventController struct {
	Store services.EventStore
}

func NewEventController(store services.EventStore) *EventController {
	return &EventController{Store: store}
}

// ListEvents handles GET /events?userId= and returns that user's adaptation
// history, oldest first.
func (e *EventController) ListEvents(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is not a valid plan-store id"})
		return
	}

	recs, err := e.Store.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recs)
}

type resetRequest struct {
	UserID string `json:"userId"`
}

// ResetRules handles POST /admin/reset_rules: clears one user's history when
// a userId is given, or the whole table when the body is empty.
func (e *EventController) ResetRules(c *gin.Context) {
	var req resetRequest
	// body is optional; an empty or absent body means reset everything
	_ = c.ShouldBindJSON(&req)

	if req.UserID != "" {
		deleted, err := e.Store.ResetUser(req.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if deleted == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no events for user %s", req.UserID)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("history reset for user %s", req.UserID)})
		return
	}

	if err := e.Store.ResetAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all history reset"})
}

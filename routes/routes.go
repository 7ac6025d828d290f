package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ana-coahuila/IA-MetaFit/config"
	"github.com/ana-coahuila/IA-MetaFit/controllers"
	"github.com/ana-coahuila/IA-MetaFit/middlewares"
	"github.com/ana-coahuila/IA-MetaFit/services"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// engine wiring
	hub := services.NewAdaptationHub()
	store := services.NewEventHistoryService(config.DB)
	adaptSvc := services.NewAdaptationService(store, services.DefaultMealCatalog(), services.NewCompensationPredictor(), hub)

	adaptCtl := controllers.NewAdaptController(adaptSvc)
	eventCtl := controllers.NewEventController(store)
	rtCtl := controllers.NewRealtimeController(hub)
	sugCtl := controllers.NewSuggestionController(services.NewPlanSourceService())

	r.GET("/health", controllers.HealthCheck)

	// adaptation engine routes, called service-to-service by the plan store
	r.POST("/adapt", adaptCtl.AdaptPlan)
	r.GET("/events", eventCtl.ListEvents)
	r.POST("/admin/reset_rules", eventCtl.ResetRules)
	r.GET("/ws/adaptations", rtCtl.AdaptationsWS)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.GET("/plan-suggestions", sugCtl.PlanSuggestions)
	}

	return r
}

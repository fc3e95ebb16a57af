package routes

import (
	"net/http"
	"time"

	"github.com/eassylife/b2bportal/handlers"
	"github.com/eassylife/b2bportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login plus the guarded session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.SessionAuthMiddleware())
		api.POST("/logout", hb.Auth.LogoutHandler)
		api.GET("/me", hb.Auth.MeHandler)
		api.POST("/refresh-profile", hb.Auth.RefreshProfileHandler)
	}
}

// RegisterOrderRoutes sets up the order-creation workflow endpoints.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	draft := r.Group("/api/order")
	{
		draft.Use(middleware.SessionAuthMiddleware())
		draft.POST("/draft", hb.Order.OpenDraftHandler)
		draft.PUT("/draft/:draftID", hb.Order.ApplyEventHandler)
		draft.POST("/draft/:draftID/submit", hb.Order.SubmitHandler)
		draft.DELETE("/draft/:draftID", hb.Order.CloseDraftHandler)
	}

	orders := r.Group("/api/orders")
	{
		orders.Use(middleware.SessionAuthMiddleware())
		orders.GET("", hb.Orders.ListHandler)
		orders.GET("/:id/attachments", hb.Orders.AttachmentsHandler)
		orders.GET("/:id/invoice", hb.Orders.InvoiceHandler)
	}
}

// RegisterAddressRoutes sets up the address book endpoints.
func RegisterAddressRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/addresses")
	{
		api.Use(middleware.SessionAuthMiddleware())
		api.GET("", hb.Address.ListHandler)
		api.POST("", hb.Address.AddHandler)
		api.POST("/extract-place", hb.Address.ExtractPlaceHandler)
	}
}

// RegisterWorkflowRoutes sets up approval and quotation endpoints.
func RegisterWorkflowRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	approvals := r.Group("/api/approvals")
	{
		approvals.Use(middleware.SessionAuthMiddleware())
		approvals.GET("", hb.Workflow.ApprovalsHandler)
		approvals.POST("/:id/action", hb.Workflow.ApprovalActionHandler)
	}

	quotations := r.Group("/api/quotations")
	{
		quotations.Use(middleware.SessionAuthMiddleware())
		quotations.GET("", hb.Workflow.QuotationsHandler)
		quotations.POST("/:id/action", hb.Workflow.QuotationActionHandler)
	}
}

// RegisterTeamRoutes sets up the roles/team management endpoints.
func RegisterTeamRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/team")
	{
		api.Use(middleware.SessionAuthMiddleware())
		api.GET("/employees", hb.Team.EmployeesHandler)
		api.PATCH("/employees/:id/status", hb.Team.SetStatusHandler)
		api.GET("/roles", hb.Team.RolesHandler)
		api.PUT("/roles/user-role", hb.Team.AssignRoleHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "B2B portal up"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterAddressRoutes(r, hb)
	RegisterWorkflowRoutes(r, hb)
	RegisterTeamRoutes(r, hb)
	RegisterHealthRoute(r)
}

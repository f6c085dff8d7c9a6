package routes

import (
	"github.com/gin-gonic/gin"

	attachmenthandlers "alumnet/internal/interfaces/http/handlers/attachment"
	bulkhandlers "alumnet/internal/interfaces/http/handlers/bulk"
	messagehandlers "alumnet/internal/interfaces/http/handlers/message"
	searchhandlers "alumnet/internal/interfaces/http/handlers/search"
	tickethandlers "alumnet/internal/interfaces/http/handlers/ticket"
	"alumnet/internal/interfaces/http/middleware"
	"alumnet/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler     *tickethandlers.TicketHandler
	MessageHandler    *messagehandlers.MessageHandler
	AttachmentHandler *attachmenthandlers.AttachmentHandler
	BulkHandler       *bulkhandlers.BulkHandler
	SearchHandler     *searchhandlers.SearchHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("",
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)
		tickets.GET("/stats",
			config.TicketHandler.GetStats)
		tickets.GET("/categories",
			config.TicketHandler.ListCategories)
		tickets.POST("/search",
			config.SearchHandler.Search)

		// Saved filters
		tickets.GET("/filters",
			config.SearchHandler.ListFilters)
		tickets.POST("/filters",
			config.SearchHandler.CreateFilter)
		tickets.GET("/filters/:id/apply",
			config.SearchHandler.ApplyFilter)
		tickets.PUT("/filters/:id",
			config.SearchHandler.UpdateFilter)
		tickets.DELETE("/filters/:id",
			config.SearchHandler.DeleteFilter)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.POST("/:id/reopen",
			config.TicketHandler.ReopenTicket)
		tickets.POST("/:id/rating",
			config.TicketHandler.RateSatisfaction)
		tickets.POST("/:id/email-copy",
			config.TicketHandler.EmailCopy)
		tickets.POST("/:id/messages",
			config.MessageHandler.AddMessage)
		tickets.PUT("/:id/draft",
			config.MessageHandler.SaveDraft)
		tickets.GET("/:id/draft",
			config.MessageHandler.GetDraft)
		tickets.DELETE("/:id/draft",
			config.MessageHandler.DeleteDraft)
		tickets.POST("/:id/attachments",
			config.AttachmentHandler.Upload)
		tickets.GET("/:id/attachments",
			config.AttachmentHandler.List)
		tickets.GET("/:id/attachments/:attachmentID",
			config.AttachmentHandler.Download)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
		tickets.PATCH("/:id",
			config.TicketHandler.UpdateTicket)
	}

	messages := engine.Group("/messages")
	messages.Use(config.AuthMiddleware.RequireAuth())
	{
		messages.PATCH("/:id",
			config.MessageHandler.EditMessage)
		messages.GET("/:id/history",
			config.MessageHandler.GetEditHistory)
		messages.POST("/:id/reactions",
			config.MessageHandler.ToggleReaction)
		messages.GET("/:id/reactions",
			config.MessageHandler.ListReactions)
	}

	admin := engine.Group("/admin/tickets")
	admin.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireSuperAdmin())
	{
		admin.GET("",
			config.TicketHandler.ListAdminTickets)
		admin.GET("/stats",
			config.TicketHandler.GetStats)
		admin.GET("/admins",
			config.TicketHandler.ListAvailableAdmins)

		// Bulk operations
		admin.POST("/bulk",
			config.BulkHandler.Start)
		admin.GET("/bulk",
			config.BulkHandler.List)
		admin.GET("/bulk/:id",
			config.BulkHandler.Get)

		admin.PATCH("/:id/status",
			config.TicketHandler.UpdateStatus)
		admin.POST("/:id/assign",
			config.TicketHandler.AssignTicket)
		admin.POST("/:id/close",
			config.TicketHandler.CloseTicket)
		admin.GET("/:id/audit",
			config.TicketHandler.GetAuditTrail)
	}
}

package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	attachmentUC "alumnet/internal/application/attachment/usecases"
	bulkUC "alumnet/internal/application/bulk/usecases"
	messageUC "alumnet/internal/application/message/usecases"
	searchUC "alumnet/internal/application/search/usecases"
	ticketUC "alumnet/internal/application/ticket/usecases"
	"alumnet/internal/domain/shared/events"
	"alumnet/internal/infrastructure/adapters"
	"alumnet/internal/infrastructure/auth"
	ticketCache "alumnet/internal/infrastructure/cache"
	"alumnet/internal/infrastructure/config"
	"alumnet/internal/infrastructure/database"
	"alumnet/internal/infrastructure/email"
	"alumnet/internal/infrastructure/migration"
	"alumnet/internal/infrastructure/repository"
	"alumnet/internal/infrastructure/services"
	"alumnet/internal/infrastructure/subscribers"
	attachmenthandlers "alumnet/internal/interfaces/http/handlers/attachment"
	bulkhandlers "alumnet/internal/interfaces/http/handlers/bulk"
	messagehandlers "alumnet/internal/interfaces/http/handlers/message"
	searchhandlers "alumnet/internal/interfaces/http/handlers/search"
	tickethandlers "alumnet/internal/interfaces/http/handlers/ticket"
	"alumnet/internal/interfaces/http/middleware"
	"alumnet/internal/interfaces/http/routes"
	"alumnet/internal/shared/db"
	"alumnet/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the AlumNet support ticket server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	ginMode := mapEnvToGinMode(env)

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = ginMode

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting server",
		"environment", env,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			logger.Warn("auto-migration is enabled in production environment - this is not recommended!")
		}
		if err := database.Get().AutoMigrate(migration.AutoMigrateModels()...); err != nil {
			logger.Fatal("auto-migration failed", "error", err)
		}
		logger.Info("auto-migration completed")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("failed to connect to redis", "error", err)
	}
	logger.Info("redis connection established")

	log := logger.NewLogger()

	dispatcher := events.NewInMemoryEventDispatcher(100, log)
	if err := dispatcher.Start(); err != nil {
		logger.Fatal("failed to start event dispatcher", "error", err)
	}
	defer func() {
		if err := dispatcher.Stop(); err != nil {
			logger.Error("failed to stop event dispatcher", "error", err)
		}
	}()
	logger.Info("event dispatcher started")

	// Persistence
	gormDB := database.Get()
	txMgr := db.NewTransactionManager(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)
	reactionRepo := repository.NewReactionRepository(gormDB)
	draftRepo := repository.NewDraftRepository(gormDB)
	attachmentRepo := repository.NewAttachmentRepository(gormDB)
	auditRepo := repository.NewAuditLogRepository(gormDB)
	bulkRepo := repository.NewBulkOperationRepository(gormDB)
	filterRepo := repository.NewSavedFilterRepository(gormDB)

	// Platform directories and domain services
	categories := adapters.NewGormCategoryDirectory(gormDB)
	admins := adapters.NewGormAdminDirectory(gormDB)
	numberGen := services.NewTicketNumberGenerator(gormDB)
	renderer := services.NewMarkdownRenderer()
	probe := services.NewContentProbe()
	mailer := email.NewSMTPTicketMailer(cfg.Email)

	cache := ticketCache.NewRedisTicketCache(redisClient, cfg.Cache, log)

	// Event subscribers
	auditWriter := subscribers.NewAuditWriter(auditRepo, log)
	for _, eventType := range auditWriter.EventTypes() {
		if err := dispatcher.Subscribe(eventType, auditWriter); err != nil {
			logger.Fatal("failed to subscribe audit writer", "event_type", eventType, "error", err)
		}
	}
	invalidator := subscribers.NewCacheInvalidator(cache, log)
	for _, eventType := range invalidator.EventTypes() {
		if err := dispatcher.Subscribe(eventType, invalidator); err != nil {
			logger.Fatal("failed to subscribe cache invalidator", "event_type", eventType, "error", err)
		}
	}

	// Use cases
	createTicket := ticketUC.NewCreateTicketUseCase(ticketRepo, attachmentRepo, categories, admins, numberGen, txMgr, dispatcher, log)
	getTicket := ticketUC.NewGetTicketUseCase(ticketRepo, messageRepo, attachmentRepo, cache, log)
	listTickets := ticketUC.NewListTicketsUseCase(ticketRepo, cache, log)
	listAdminTickets := ticketUC.NewListAdminTicketsUseCase(ticketRepo, cache, log)
	updateTicket := ticketUC.NewUpdateTicketUseCase(ticketRepo, categories, dispatcher, log)
	updateStatus := ticketUC.NewUpdateStatusUseCase(ticketRepo, dispatcher, log)
	assignTicket := ticketUC.NewAssignTicketUseCase(ticketRepo, admins, dispatcher, log)
	closeTicket := ticketUC.NewCloseTicketUseCase(ticketRepo, dispatcher, log)
	reopenTicket := ticketUC.NewReopenTicketUseCase(ticketRepo, messageRepo, txMgr, dispatcher, log)
	rateSatisfaction := ticketUC.NewRateSatisfactionUseCase(ticketRepo, dispatcher, log)
	getStats := ticketUC.NewGetTicketStatsUseCase(ticketRepo, cache, log)
	listCategories := ticketUC.NewListCategoriesUseCase(categories, cache, log)
	listAdmins := ticketUC.NewListAvailableAdminsUseCase(admins, cache, log)
	emailCopy := ticketUC.NewEmailTicketCopyUseCase(ticketRepo, messageRepo, mailer, log)
	getAuditTrail := ticketUC.NewGetAuditTrailUseCase(ticketRepo, auditRepo, log)

	addMessage := messageUC.NewAddMessageUseCase(ticketRepo, messageRepo, draftRepo, attachmentRepo, renderer, txMgr, dispatcher, log)
	editMessage := messageUC.NewEditMessageUseCase(ticketRepo, messageRepo, renderer, txMgr, dispatcher, log)
	getEditHistory := messageUC.NewGetEditHistoryUseCase(ticketRepo, messageRepo, log)
	toggleReaction := messageUC.NewToggleReactionUseCase(ticketRepo, messageRepo, reactionRepo, dispatcher, log)
	listReactions := messageUC.NewListReactionsUseCase(ticketRepo, messageRepo, reactionRepo, admins, log)
	saveDraft := messageUC.NewSaveDraftUseCase(ticketRepo, draftRepo, log)
	getDraft := messageUC.NewGetDraftUseCase(draftRepo, log)
	deleteDraft := messageUC.NewDeleteDraftUseCase(draftRepo, log)

	uploadAttachment := attachmentUC.NewUploadAttachmentUseCase(ticketRepo, attachmentRepo, probe, txMgr, dispatcher, log)
	listAttachments := attachmentUC.NewListAttachmentsUseCase(ticketRepo, attachmentRepo, log)
	getAttachment := attachmentUC.NewGetAttachmentUseCase(ticketRepo, attachmentRepo, log)

	startBulk := bulkUC.NewStartBulkOperationUseCase(ticketRepo, bulkRepo, admins, categories, txMgr, dispatcher, log)
	getBulk := bulkUC.NewGetBulkOperationUseCase(bulkRepo, log)
	listBulk := bulkUC.NewListBulkOperationsUseCase(bulkRepo, log)

	advancedSearch := searchUC.NewAdvancedSearchUseCase(ticketRepo, log)
	createFilter := searchUC.NewCreateSavedFilterUseCase(filterRepo, txMgr, log)
	updateFilter := searchUC.NewUpdateSavedFilterUseCase(filterRepo, txMgr, log)
	deleteFilter := searchUC.NewDeleteSavedFilterUseCase(filterRepo, log)
	listFilters := searchUC.NewListSavedFiltersUseCase(filterRepo, log)
	applyFilter := searchUC.NewApplySavedFilterUseCase(filterRepo, advancedSearch, log)

	// Handlers
	ticketHandler := tickethandlers.NewTicketHandler(
		createTicket, getTicket, listTickets, listAdminTickets,
		updateTicket, updateStatus, assignTicket, closeTicket,
		reopenTicket, rateSatisfaction, getStats, listCategories,
		listAdmins, emailCopy, getAuditTrail,
	)
	messageHandler := messagehandlers.NewMessageHandler(
		addMessage, editMessage, getEditHistory,
		toggleReaction, listReactions,
		saveDraft, getDraft, deleteDraft,
	)
	attachmentHandler := attachmenthandlers.NewAttachmentHandler(
		uploadAttachment, listAttachments, getAttachment, cfg.Server.UploadDir,
	)
	bulkHandler := bulkhandlers.NewBulkHandler(startBulk, getBulk, listBulk)
	searchHandler := searchhandlers.NewSearchHandler(
		advancedSearch, createFilter, updateFilter, deleteFilter, listFilters, applyFilter,
	)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	rateLimiter := middleware.NewRateLimiter(redisClient, 300, time.Minute)

	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.Logger(log),
		middleware.CORS(cfg.Server.AllowedOrigins),
		rateLimiter.Limit(),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:     ticketHandler,
		MessageHandler:    messageHandler,
		AttachmentHandler: attachmentHandler,
		BulkHandler:       bulkHandler,
		SearchHandler:     searchHandler,
		AuthMiddleware:    authMiddleware,
	})

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}

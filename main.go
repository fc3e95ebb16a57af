package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eassylife/b2bportal/config"
	"github.com/eassylife/b2bportal/handlers"
	"github.com/eassylife/b2bportal/middleware"
	"github.com/eassylife/b2bportal/routes"
	"github.com/eassylife/b2bportal/services/address"
	"github.com/eassylife/b2bportal/services/auth"
	"github.com/eassylife/b2bportal/services/order"
	"github.com/eassylife/b2bportal/services/team"
	"github.com/eassylife/b2bportal/services/workflow"
	"github.com/eassylife/b2bportal/upstream"
	"github.com/eassylife/b2bportal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.InitSessionCache()

	timeout := time.Duration(config.AppConfig.UpstreamTimeoutSeconds) * time.Second
	apiClient, err := upstream.New(config.AppConfig.UpstreamBaseURL, timeout, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to configure upstream client: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	authService := &auth.DefaultAuthService{API: apiClient}
	orderService := &order.DefaultOrderService{
		API:    apiClient,
		Cache:  utils.GetCacheClient(),
		Drafts: utils.GetSessionCacheClient(),
	}
	workflowService := workflow.NewDefaultWorkflowService(apiClient)
	teamService := &team.DefaultTeamService{API: apiClient}
	addressService := &address.DefaultAddressService{API: apiClient}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:     handlers.NewAuthHandler(authService),
		Order:    handlers.NewOrderHandler(orderService),
		Orders:   handlers.NewOrdersHandler(apiClient),
		Address:  handlers.NewAddressHandler(addressService),
		Workflow: handlers.NewWorkflowHandler(workflowService),
		Team:     handlers.NewTeamHandler(teamService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

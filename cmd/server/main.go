package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/config"
	"github.com/Supriya-gouda/ZenBus-sub001/internal/database"
	"github.com/Supriya-gouda/ZenBus-sub001/internal/handlers"
	"github.com/Supriya-gouda/ZenBus-sub001/internal/middleware"
	"github.com/Supriya-gouda/ZenBus-sub001/internal/services"
	"github.com/Supriya-gouda/ZenBus-sub001/pkg/jwt"
)

var version = "1.0.0"

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting ZenBus booking backend")
	logger.Infof("Version: %s", version)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Repositories
	userRepo := database.NewUserRepository(db)
	busRepo := database.NewBusRepository(db)
	routeRepo := database.NewRouteRepository(db)
	scheduleRepo := database.NewScheduleRepository(db)
	bookingRepo := database.NewBookingRepository(db)
	paymentRepo := database.NewPaymentRepository(db)
	refundRepo := database.NewRefundRepository(db)
	auditRepo := database.NewAuditRepository(db)

	// Services
	jwtService := jwt.NewService(
		cfg.JWT.Secret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	authService := services.NewAuthService(userRepo, jwtService)
	fleetService := services.NewFleetService(busRepo, routeRepo)
	scheduleService := services.NewScheduleService(scheduleRepo, routeRepo)
	auditService := services.NewAuditService(auditRepo)
	bookingService := services.NewBookingService(
		bookingRepo,
		scheduleRepo,
		paymentRepo,
		refundRepo,
		services.NewRefundCalculator(),
	)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	bookingHandler := handlers.NewBookingHandler(bookingService, auditService)
	adminHandler := handlers.NewAdminHandler(bookingService, fleetService, auditService, bookingRepo)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", healthCheckHandler(db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.GET("/profile", middleware.AuthMiddleware(jwtService), authHandler.Profile)
		}

		schedules := v1.Group("/schedules")
		{
			schedules.GET("", scheduleHandler.Search)
			schedules.GET("/:id", scheduleHandler.GetSchedule)
		}

		bookings := v1.Group("/bookings")
		bookings.Use(middleware.AuthMiddleware(jwtService))
		{
			bookings.POST("", bookingHandler.CreateBooking)
			bookings.GET("", bookingHandler.ListMyBookings)
			bookings.GET("/:id", bookingHandler.GetBooking)
			bookings.POST("/:id/cancel", bookingHandler.CancelBooking)
			bookings.GET("/:id/refund", bookingHandler.PreviewRefund)
			bookings.GET("/:id/ticket", bookingHandler.DownloadTicket)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(jwtService), middleware.RequireRole("admin"))
		{
			admin.GET("/bookings", adminHandler.ListBookings)
			admin.GET("/bookings/:id/audit", adminHandler.BookingAuditTrail)
			admin.POST("/bookings/:id/refund", adminHandler.EnsureRefund)
			admin.POST("/refunds/:id/process", adminHandler.ProcessRefund)
			admin.GET("/stats", adminHandler.DashboardStats)

			admin.POST("/buses", adminHandler.CreateBus)
			admin.GET("/buses", adminHandler.ListBuses)
			admin.PUT("/buses/:id/status", adminHandler.UpdateBusStatus)

			admin.POST("/routes", adminHandler.CreateRoute)
			admin.GET("/routes", adminHandler.ListRoutes)

			admin.POST("/schedules", scheduleHandler.CreateSchedule)
			admin.DELETE("/schedules/:id", scheduleHandler.DeleteSchedule)
			admin.PUT("/schedules/:id/status", scheduleHandler.UpdateScheduleStatus)
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		fields := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
			"user_agent": c.Request.UserAgent(),
		}

		if userCtx, exists := middleware.GetUserContext(c); exists {
			fields["user_id"] = userCtx.UserID
		}

		entry := logger.WithFields(fields)

		switch {
		case c.Writer.Status() >= 500:
			entry.Error("Request failed")
		case c.Writer.Status() >= 400:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request completed")
		}
	}
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unhealthy",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}

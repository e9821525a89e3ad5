package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitdesk/internal/client"
	"fitdesk/internal/config"
	"fitdesk/internal/db"
	"fitdesk/internal/email"
	"fitdesk/internal/gym"
	"fitdesk/internal/logger"
	"fitdesk/internal/messaging"
	"fitdesk/internal/notification"
	"fitdesk/internal/scheduler"
	"fitdesk/internal/server"
	"fitdesk/internal/user"

	"github.com/gin-gonic/gin"
)

// @title FitDesk API
// @version 1.0
// @description Multi-tenant gym management API: gyms and plans for the platform admin, clients, payments, trainers and reports for gym owners.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name fitdesk_session
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init()
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logger.Info("Starting FitDesk", "mode", cfg.Mode, "port", cfg.Port)
	gin.SetMode(cfg.Mode)

	database, err := db.Connect(context.Background(), cfg.DatabaseURL, db.Pool{
		MaxOpen:     cfg.DBMaxOpenConns,
		MaxIdle:     cfg.DBMaxIdleConns,
		MaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	version, err := db.RunMigrations(database, cfg.MigrationsPath)
	if err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed", "version", version)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		created, err := user.EnsureSuperAdmin(context.Background(), database, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			logger.Fatalf("Failed to bootstrap admin account: %v", err)
		}
		if created {
			logger.Info("Super admin created", "email", cfg.AdminEmail)
		}
	}

	emailService := email.New(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.RedisAddr,
	)
	defer emailService.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := emailService.Ping(ctx); err != nil {
		logger.Warn("Redis unreachable, emails will fail until it is up", "addr", cfg.RedisAddr, "error", err)
	}
	go emailService.Start(ctx)

	var sender messaging.Sender
	if twilio := messaging.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber, cfg.TwilioWhatsAppNumber); twilio != nil {
		sender = twilio
	} else {
		logger.Warn("Twilio credentials missing, reminders are disabled")
	}

	sweeps, err := scheduler.New(cfg.CronSchedule, client.NewRepository(database), gym.NewRepository(database))
	if err != nil {
		logger.Fatalf("Failed to set up scheduler: %v", err)
	}
	sweeps.Start()

	srv, err := server.New(server.Deps{
		DB:     database,
		Config: cfg,
		Email:  emailService,
		Bus:    notification.NewBus(),
		Sender: sender,
	})
	if err != nil {
		logger.Fatalf("Failed to build server: %v", err)
	}

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()
	sweeps.Stop(shutdownCtx)

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

package server

import (
	"context"
	"net/http"
	"time"

	"fitdesk/internal/auth"
	"fitdesk/internal/client"
	"fitdesk/internal/config"
	"fitdesk/internal/dashboard"
	"fitdesk/internal/email"
	"fitdesk/internal/gym"
	"fitdesk/internal/messaging"
	"fitdesk/internal/notification"
	"fitdesk/internal/payment"
	"fitdesk/internal/plan"
	"fitdesk/internal/report"
	"fitdesk/internal/trainer"
	"fitdesk/internal/user"
	"fitdesk/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

const loginLimiterTTL = 10 * time.Minute

// Deps are the long-lived collaborators the HTTP layer is built from.
type Deps struct {
	DB     *sqlx.DB
	Config *config.Config
	Email  *email.Service
	Bus    *notification.Bus
	Sender messaging.Sender
}

type Server struct {
	router  *gin.Engine
	http    *http.Server
	config  *config.Config
	limiter *LoginLimiter
}

func New(d Deps) (*Server, error) {
	cfg := d.Config
	if d.Bus == nil {
		d.Bus = notification.NewBus()
	}
	cookie := auth.Cookie{Name: cfg.CookieName, Secure: cfg.CookieSecure, MaxAge: cfg.TokenTTL}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		corsMiddleware(),
		auth.Gate(cfg.JWTSecret, cookie),
	)

	if err := web.Register(router); err != nil {
		return nil, err
	}

	users := user.NewRepository(d.DB)
	userHandler := user.NewHandler(user.NewService(users, cfg.JWTSecret, cfg.TokenTTL), cookie)
	planHandler := plan.NewHandler(plan.NewService(plan.NewRepository(d.DB)))
	gyms := gym.NewRepository(d.DB)
	gymHandler := gym.NewHandler(gym.NewService(gyms, users, d.Email))
	clientHandler := client.NewHandler(client.NewService(client.NewRepository(d.DB), d.Sender, d.Bus))
	paymentHandler := payment.NewHandler(payment.NewService(payment.NewRepository(d.DB), d.Email, d.Bus))
	trainerHandler := trainer.NewHandler(trainer.NewService(trainer.NewRepository(d.DB)))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(dashboard.NewRepository(d.DB)))
	reportHandler := report.NewHandler(report.NewService(report.NewRepository(d.DB)))
	notificationHandler := notification.NewHandler(d.Bus)

	checks := []Check{{Name: "database", Critical: true, Ping: d.DB.PingContext}}
	if d.Email != nil {
		checks = append(checks, Check{Name: "email_queue", Ping: d.Email.Ping})
	}
	health := Health(checks...)

	limiter := NewLoginLimiter(cfg.LoginRateRPS, cfg.LoginRateBurst, loginLimiterTTL)
	go limiter.Run()

	router.GET("/health", health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	api := router.Group("/api")
	api.GET("/health", health)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", limiter.Middleware(), userHandler.Login)
		authGroup.POST("/logout", userHandler.Logout)
		authGroup.GET("/me", userHandler.GetMe)
	}

	admin := api.Group("/admin")
	admin.Use(auth.RequireRole(auth.RoleSuperAdmin))
	{
		admin.GET("/plans", planHandler.List)
		admin.POST("/plans", planHandler.Create)
		admin.GET("/plans/:id", planHandler.Get)
		admin.PUT("/plans/:id", planHandler.Update)
		admin.DELETE("/plans/:id", planHandler.Delete)

		admin.GET("/gyms", gymHandler.List)
		admin.POST("/gyms", gymHandler.Create)
		admin.GET("/gyms/:id", gymHandler.Get)
		admin.PUT("/gyms/:id", gymHandler.Update)
		admin.PATCH("/gyms/:id/toggle", gymHandler.Toggle)
		admin.DELETE("/gyms/:id", gymHandler.Delete)

		admin.GET("/stats", gymHandler.Stats)
	}

	dash := api.Group("/dashboard")
	dash.Use(auth.RequireRole(auth.RoleGymOwner), auth.RequireTenant(), auth.RequireActiveGym(gyms))
	{
		dash.GET("/overview", dashboardHandler.Overview)

		dash.GET("/clients", clientHandler.List)
		dash.POST("/clients", clientHandler.Create)
		dash.GET("/clients/:id", clientHandler.Get)
		dash.PUT("/clients/:id", clientHandler.Update)
		dash.DELETE("/clients/:id", clientHandler.Delete)
		dash.POST("/clients/:id/reminder", clientHandler.SendReminder)
		dash.GET("/clients/:id/reminders", clientHandler.Reminders)

		dash.GET("/payments", paymentHandler.List)
		dash.POST("/payments", paymentHandler.Create)
		dash.DELETE("/payments/:id", paymentHandler.Delete)
		dash.GET("/payments/:id/invoice", paymentHandler.Invoice)

		dash.GET("/trainers", trainerHandler.List)
		dash.POST("/trainers", trainerHandler.Create)
		dash.PUT("/trainers/:id", trainerHandler.Update)
		dash.DELETE("/trainers/:id", trainerHandler.Delete)

		dash.GET("/attendance", trainerHandler.Day)
		dash.POST("/attendance", trainerHandler.Mark)
		dash.GET("/attendance/summary", trainerHandler.Summary)

		dash.GET("/reports/:kind", reportHandler.Export)

		dash.GET("/notifications", notificationHandler.List)
		dash.GET("/notifications/stream", notificationHandler.Stream)

		dash.GET("/settings", gymHandler.GetSettings)
		dash.PUT("/settings", gymHandler.UpdateSettings)
	}

	return &Server{
		router:  router,
		config:  cfg,
		limiter: limiter,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

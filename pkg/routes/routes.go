package routes

import (
	"context"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"CampusHire/internal/application"
	"CampusHire/internal/auth"
	"CampusHire/internal/company"
	"CampusHire/internal/config"
	"CampusHire/internal/job"
	"CampusHire/internal/notification"
	"CampusHire/internal/student"
	"CampusHire/pkg/middleware"
)

// Module assembles the whole application: collaborators, repositories,
// services, handlers and the route table. Interface bindings live here so the
// packages themselves only declare what they need.
var Module = fx.Module("campushire",
	fx.Provide(
		config.NewLogger,
		config.NewMongoDBConfig,
		config.NewMongoDBClient,
		config.NewResendConfig,
		config.NewEmailService,
		auth.KeyFromEnv,

		auth.NewUserRepository,
		company.NewRepository,
		job.NewRepository,
		student.NewRepository,
		application.NewRepository,
		notification.NewRepository,

		func(r *auth.UserRepository) auth.UserStore { return r },
		func(r *company.Repository) company.Store { return r },
		func(r *job.Repository) job.Store { return r },
		func(r *student.Repository) student.Store { return r },
		func(r *application.Repository) application.Store { return r },
		func(r *notification.Repository) notification.Store { return r },
		func(e *config.EmailService) auth.Sender { return e },
		func(r *application.Repository) job.ApplicationCascade { return r },
		func(sp *student.Repository, ap *application.Repository, np *notification.Repository) []auth.Cascade {
			return []auth.Cascade{sp, ap, np}
		},

		auth.NewUserService,
		auth.NewOTPService,
		auth.NewResetCodeSweeper,
		company.NewService,
		job.NewService,
		student.NewService,
		notification.NewService,
		application.NewService,

		auth.NewAuthHandler,
		company.NewHandler,
		job.NewHandler,
		student.NewHandler,
		application.NewHandler,
		notification.NewHandler,

		NewEchoServer,
	),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(func(s *auth.ResetCodeSweeper, lc fx.Lifecycle) { s.Start(lc) }),
)

// NewEchoServer builds the HTTP server and ties start/stop to the fx
// lifecycle.
func NewEchoServer(lc fx.Lifecycle, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	middleware.Setup(e)
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"http://localhost:5173"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting HTTP server", zap.String("addr", addr))
			go func() {
				if err := e.Start(addr); err != nil {
					logger.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down HTTP server")
			return e.Shutdown(ctx)
		},
	})
	return e
}

// RegisterRoutes lays out the whole HTTP surface. Role gating happens only
// here, through the JWT and RequireRole middleware, never inside handlers.
func RegisterRoutes(
	e *echo.Echo,
	jwtKey []byte,
	authHandler *auth.AuthHandler,
	companyHandler *company.Handler,
	jobHandler *job.Handler,
	studentHandler *student.Handler,
	applicationHandler *application.Handler,
	notificationHandler *notification.Handler,
) {
	// Public.
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/forgot-password", authHandler.ForgotPassword)
	e.POST("/resend-otp", authHandler.ResendOTP)
	e.POST("/verify-otp", authHandler.VerifyOTP)
	e.POST("/reset-password", authHandler.ResetPassword)
	e.GET("/jobs", jobHandler.List)
	e.GET("/jobs/:id", jobHandler.Get)
	e.GET("/companies", companyHandler.List)
	e.GET("/companies/:id", companyHandler.Get)

	// Any authenticated user.
	api := e.Group("/api", middleware.JWT(jwtKey))
	api.GET("/profile", authHandler.Profile)

	// Student-only.
	studentAPI := api.Group("/student", middleware.RequireRole(auth.RoleStudent))
	studentAPI.PUT("/profile", studentHandler.Save)
	studentAPI.GET("/profile", studentHandler.Me)
	studentAPI.POST("/applications", applicationHandler.Apply)
	studentAPI.GET("/applications", applicationHandler.Mine)
	studentAPI.GET("/notifications", notificationHandler.List)
	studentAPI.PUT("/notifications/:id/read", notificationHandler.MarkRead)
	studentAPI.DELETE("/notifications/:id", notificationHandler.Delete)

	// Admin-only.
	adminAPI := api.Group("/admin", middleware.RequireRole(auth.RoleAdmin))
	adminAPI.POST("/jobs", jobHandler.Create)
	adminAPI.PUT("/jobs/:id", jobHandler.Update)
	adminAPI.DELETE("/jobs/:id", jobHandler.Delete)
	adminAPI.GET("/jobs/:id/applications", applicationHandler.ListForJob)
	adminAPI.PUT("/applications/:id/status", applicationHandler.UpdateStatus)
	adminAPI.POST("/companies", companyHandler.Create)
	adminAPI.PUT("/companies/:id", companyHandler.Update)
	adminAPI.DELETE("/companies/:id", companyHandler.Delete)
	adminAPI.GET("/students", studentHandler.List)
	adminAPI.GET("/students/:id", studentHandler.Get)
	adminAPI.DELETE("/users/:id", authHandler.DeleteUser)
}

package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/sathishrouthu1909/fitness-booking-api/internal/auth"
	"github.com/sathishrouthu1909/fitness-booking-api/internal/booking"
	"github.com/sathishrouthu1909/fitness-booking-api/internal/class"
	"github.com/sathishrouthu1909/fitness-booking-api/internal/clock"
	"github.com/sathishrouthu1909/fitness-booking-api/internal/config"
	"github.com/sathishrouthu1909/fitness-booking-api/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, clk clock.Clock) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	userHandler := user.NewHandler(user.NewService(user.NewRepository(db), cfg.JWTSecret))
	classHandler := class.NewHandler(class.NewService(class.NewRepository(db), clk))
	bookingHandler := booking.NewHandler(booking.NewService(booking.NewRepository(db), clk))

	router.GET("/", Welcome)
	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	// class reads are public; only mutations need an identity
	router.GET("/classes", classHandler.ListClasses)
	router.GET("/classes/:classID", classHandler.GetClass)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", userHandler.Signup)
		authGroup.POST("/login", userHandler.Login)
		authGroup.POST("/refresh", userHandler.Refresh)
	}

	protected := router.Group("/")
	protected.Use(auth.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/me", userHandler.GetMe)

		protected.POST("/classes", classHandler.CreateClass)

		protected.POST("/bookings", bookingHandler.Reserve)
		protected.GET("/bookings", bookingHandler.ListMyBookings)
		protected.DELETE("/bookings/:bookingID", bookingHandler.Cancel)
	}

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

package main

import (
	"taskpulse/handler"
	"taskpulse/middleware"
	"taskpulse/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routerDeps struct {
	auth      *handler.AuthHandler
	todos     *handler.TodoHandler
	goals     *handler.GoalHandler
	analytics *handler.AnalyticsHandler
	health    *handler.HealthHandler

	tokens         *services.TokenService
	blacklist      *services.RedisTokenBlacklist
	limiter        *middleware.RateLimiter
	allowedOrigins []string
	maxBodyBytes   int64
}

func setupRouter(d routerDeps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORSMiddleware(d.allowedOrigins))
	router.Use(middleware.RequestSizeLimiter(d.maxBodyBytes))

	router.GET("/health/live", d.health.Liveness)
	router.GET("/health/ready", d.health.Readiness)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	public.Use(middleware.NoStoreMiddleware())
	{
		auth := public.Group("/auth")
		auth.Use(d.limiter.Middleware())
		{
			auth.POST("/register", d.auth.Register)
			auth.POST("/login", d.auth.Login)
			auth.POST("/forgot-password", d.auth.ForgotPassword)
		}
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(
		middleware.NoStoreMiddleware(),
		middleware.AuthMiddleware(d.tokens, d.blacklist),
		d.limiter.Middleware(),
	)
	{
		protected.POST("/auth/logout", d.auth.Logout)
		protected.GET("/users/me", d.auth.Profile)

		todos := protected.Group("/todos")
		{
			todos.GET("", d.todos.GetUserTodos)
			todos.POST("", d.todos.CreateTodo)
			todos.PUT("/:id", d.todos.UpdateTodo)
			todos.DELETE("/:id", d.todos.DeleteTodo)
			todos.DELETE("", d.todos.DeleteAllTodos)
		}

		goals := protected.Group("/goals")
		{
			goals.GET("", d.goals.GetUserGoals)
			goals.POST("", d.goals.CreateGoal)
			goals.PUT("/:id/toggle", d.goals.ToggleGoal)
			goals.DELETE("/:id", d.goals.DeleteGoal)
		}

		analytics := protected.Group("/analytics")
		{
			analytics.GET("/dashboard", d.analytics.Dashboard)
			analytics.GET("/streak", d.analytics.Streak)
		}
	}

	return router
}

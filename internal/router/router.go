package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/social-sphere/backend/internal/handlers"
	"github.com/social-sphere/backend/internal/middleware"
	"github.com/social-sphere/backend/internal/repositories"
	"github.com/social-sphere/backend/internal/store"
	"github.com/social-sphere/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, st store.Client, firebaseAuthClient *auth.Client, cfg *config.Config) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	postRepo := repositories.NewStorePostRepository(st)
	contactRepo := repositories.NewStoreContactRepository(st)
	userRepo := repositories.NewStoreUserRepository(st)

	// --- Unprotected routes ---
	public := e.Group("/api/v1")

	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(public.Group("/auth"))
	log.Println("Auth routes configured.")

	contactHandler := handlers.NewContactHandler(contactRepo)
	contactHandler.RegisterContactRoutes(public)
	log.Println("Contact routes configured.")

	// --- Protected routes ---
	api := e.Group("/api/v1")
	if cfg.AuthMode == "firebase" && firebaseAuthClient != nil {
		api.Use(middleware.FirebaseAuthMiddleware(firebaseAuthClient))
		log.Println("Firebase ID-token middleware applied to /api/v1 group.")
	} else {
		api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
		log.Println("JWT authentication middleware applied to /api/v1 group.")
	}

	postHandler := handlers.NewPostHandler(postRepo)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	feedHandler := handlers.NewFeedHandler(postRepo)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	commentHandler := handlers.NewCommentHandler(postRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	likeHandler := handlers.NewLikeHandler(postRepo)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(api)
	log.Println("User routes configured.")

	log.Println("All routes configured.")
}

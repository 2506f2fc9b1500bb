package main

import (
	"context"
	"fmt"
	"log"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"github.com/social-sphere/backend/internal/router"
	"github.com/social-sphere/backend/internal/store"
	"github.com/social-sphere/backend/pkg/config"
	"github.com/social-sphere/backend/pkg/firebase"
	"github.com/social-sphere/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	ctx := context.Background()

	// Initialize the document store and, when credentials allow, Firebase auth
	st, authClient, err := initStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize document store: %v", err)
	}
	defer st.Close()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	router.SetupRoutes(e, st, authClient, cfg)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

// initStore builds the configured store backend. Firestore comes with a
// Firebase auth client; the Mongo backend picks one up too when credentials
// are present, and the memory backend runs credential-less.
func initStore(ctx context.Context, cfg *config.Config) (store.Client, *fbauth.Client, error) {
	switch cfg.StoreBackend {
	case "firestore":
		app, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
		if err != nil {
			return nil, nil, err
		}
		return store.NewFirestoreStore(app.FirestoreClient), app.AuthClient, nil

	case "mongo":
		client, err := config.InitMongo(cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		var authClient *fbauth.Client
		if app, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath); err == nil {
			authClient = app.AuthClient
		} else {
			log.Printf("Firebase not initialized, continuing without it: %v", err)
		}
		return store.NewMongoStore(client, cfg.MongoDatabase), authClient, nil

	case "memory":
		log.Println("Using in-memory document store; data will not survive restarts.")
		return store.NewMemoryStore(), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
}

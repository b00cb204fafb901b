package router

import (
	"firebase.google.com/go/v4/auth"
	"github.com/collegegram/backend/internal/handlers"
	"github.com/collegegram/backend/internal/middleware"
	"github.com/collegegram/backend/internal/models"
	"github.com/collegegram/backend/internal/repositories"
	"github.com/collegegram/backend/internal/services"
	"github.com/collegegram/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.Logger())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client, log *logrus.Logger) error {
	if err := pgdb.AutoMigrate(
		&models.Profile{},
		&models.Friendship{},
		&models.Notification{},
	); err != nil {
		return err
	}
	log.Info("PostgreSQL auto-migrations completed.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Repositories ---
	profileRepo := repositories.NewPostgresProfileRepository(pgdb)
	friendshipRepo := repositories.NewPostgresFriendshipRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	postRepo := repositories.NewMongoPostRepository(mgClient.Database(cfg.MongoDatabase))

	// --- Services ---
	timeout := cfg.StorageTimeout
	relationshipSvc := services.NewRelationshipService(profileRepo, friendshipRepo, notificationRepo, log, timeout)
	postSvc := services.NewPostService(postRepo, profileRepo, friendshipRepo, notificationRepo, log, timeout)
	likeSvc := services.NewLikeService(postRepo, notificationRepo, log, timeout)
	notificationSvc := services.NewNotificationService(notificationRepo, profileRepo, friendshipRepo, log, timeout)
	feedSvc := services.NewFeedService(postRepo, profileRepo, friendshipRepo, cfg.FeedPolicy(), timeout)
	directorySvc := services.NewDirectoryService(profileRepo, timeout)

	// --- Protected routes (require a verified Firebase identity) ---
	api := e.Group("/api/v1")
	api.Use(middleware.FirebaseAuthMiddleware(firebaseAuthClient))

	authHandler := handlers.NewAuthHandler(profileRepo)
	authHandler.RegisterAuthRoutes(api)

	profileHandler := handlers.NewProfileHandler(profileRepo, directorySvc)
	profileHandler.RegisterProfileRoutes(api)

	relationshipHandler := handlers.NewRelationshipHandler(relationshipSvc)
	relationshipHandler.RegisterRelationshipRoutes(api)

	postHandler := handlers.NewPostHandler(postSvc, likeSvc)
	postHandler.RegisterPostRoutes(api)

	feedHandler := handlers.NewFeedHandler(feedSvc)
	feedHandler.RegisterFeedRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationSvc)
	notificationHandler.RegisterNotificationRoutes(api)

	log.Info("All routes configured.")
	return nil
}

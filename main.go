package main

import (
	"context"
	"log"

	"ndis_connect/config"
	"ndis_connect/firebase"
	"ndis_connect/handlers"
	"ndis_connect/middlewares"
	"ndis_connect/tasks"
	"ndis_connect/tools"
	"ndis_connect/types"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	"cloud.google.com/go/logging"
	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v\n", err)
	}
	opts := cfg.ClientOptions()

	// Initialize logging client
	loggingClient, err := logging.NewClient(ctx, cfg.Firebase.ProjectID, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize logging client: %v\n", err)
	}
	defer loggingClient.Close()
	logger := loggingClient.Logger(cfg.LogName)

	// Initialize the Firebase handles
	firebaseApp, err := firebase.InitFirebaseApp(ctx, cfg.Firebase, logger, firebase.NewSDKFactory(opts...))
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v\n", err)
	}
	defer firebaseApp.Close()

	// Initialize the Storage client
	gcs, err := storage.NewClient(ctx, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Google Cloud Storage client: %v\n", err)
	}
	defer gcs.Close()

	// Initialize the Cloud Tasks client
	taskClient, err := cloudtasks.NewClient(ctx, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Tasks client: %v\n", err)
	}
	defer taskClient.Close()

	if cfg.ServiceURL == "" || cfg.TasksServiceAccount == "" {
		log.Fatalf("SERVICE_URL and CLOUD_TASKS_SERVICE_ACCOUNT must be set\n")
	}
	queue := tasks.Queue{
		ProjectID:           cfg.Firebase.ProjectID,
		LocationID:          cfg.TasksLocation,
		QueueID:             cfg.TasksQueue,
		ServiceURL:          cfg.ServiceURL,
		ServiceAccountEmail: cfg.TasksServiceAccount,
	}

	// Verifies the OIDC tokens Cloud Tasks attaches to queued notifications
	taskTokenValidator, err := idtoken.NewValidator(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize OIDC token validator: %v\n", err)
	}
	tokenStore := tools.NewFirestoreTokenStore(firebaseApp.DB)

	r := gin.Default()

	// Disable TrustedProxies feature
	err = r.SetTrustedProxies(nil)
	if err != nil {
		log.Fatalf("Failed to set trusted proxies: %v\n", err)
	}

	r.GET(types.FIREBASE_WEB_CONFIG_PATH, handlers.WebConfigHandler(firebaseApp.Config))
	r.GET("/api/health", handlers.HealthHandler(logger,
		handlers.HealthCheck{Name: "firestore", Check: func(ctx context.Context) error {
			_, err := tools.GetFirestoreDocument(ctx, firebaseApp.DB, types.FIREBASE_HEALTH_COLLECTION, types.FIREBASE_HEALTH_DOCUMENT)
			return err
		}},
		handlers.HealthCheck{Name: "storage", Check: func(ctx context.Context) error {
			return tools.CheckStorageBucket(ctx, gcs, cfg.Firebase.StorageBucket)
		}},
	))

	// Define the route for the tasks handler
	r.POST(types.CLOUD_TASKS_HANDLER_PATH, tasks.NotificationTaskHandler(logger, queue, taskTokenValidator, firebaseApp.MessageClient, tokenStore))

	messagingGroup := r.Group("/api/messaging")
	messagingGroup.Use(middlewares.AuthMiddleware(logger, firebaseApp.Auth))
	messagingGroup.POST("", handlers.SetMessagingRegistrationToken(logger, tokenStore))
	messagingGroup.DELETE("", handlers.DeleteMessagingRegistrationToken(logger, tokenStore))

	analyticsGroup := r.Group("/api/analytics")
	analyticsGroup.Use(middlewares.AuthMiddleware(logger, firebaseApp.Auth))
	analyticsGroup.POST("/events", handlers.LogAnalyticsEventHandler(logger, firebaseApp.Analytics))

	notificationsGroup := r.Group("/api/notifications")
	notificationsGroup.Use(middlewares.AuthMiddleware(logger, firebaseApp.Auth))
	notificationsGroup.Use(middlewares.AdminAuthMiddleware(logger))
	notificationsGroup.POST("", handlers.SendNotificationHandler(logger, taskClient, queue))

	logger.Log(logging.Entry{
		Severity: logging.Info,
		Payload:  "Starting server",
		Labels:   map[string]string{"port": cfg.Port},
	})

	// Start the server on the Cloud Run-specified port
	if err := r.Run("0.0.0.0:" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v\n", err)
	}
}

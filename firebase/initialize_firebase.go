package firebase

import (
	"context"

	"ndis_connect/config"
	"ndis_connect/types"

	"cloud.google.com/go/logging"
)

// InitFirebaseApp validates cfg and builds the root app followed by the auth,
// Firestore, messaging and analytics handles. Any failure aborts the whole
// initialization: handles created so far are released and an *InitError is
// returned.
func InitFirebaseApp(ctx context.Context, cfg config.FirebaseConfig, logger types.Logger, factory Factory) (*types.FirebaseApp, error) {
	if err := cfg.Validate(); err != nil {
		return nil, stageResult(logger, CapabilityConfig, true, err)
	}

	fa := &types.FirebaseApp{
		Context: ctx,
		Config:  cfg,
	}

	// Initialize the root app
	app, err := factory.NewApp(ctx, cfg)
	if err := stageResult(logger, CapabilityApp, app != nil, err); err != nil {
		return nil, err
	}
	fa.Admin = app

	// Initialize the Auth client
	authClient, err := factory.Auth(ctx, app)
	if err := stageResult(logger, CapabilityAuth, authClient != nil, err); err != nil {
		return nil, err
	}
	fa.Auth = authClient

	// Initialize the Firestore client
	db, err := factory.Firestore(ctx, app)
	if err := stageResult(logger, CapabilityFirestore, db != nil, err); err != nil {
		return nil, err
	}
	fa.DB = db

	// Initialize the Messaging client
	messagingClient, err := factory.Messaging(ctx, app)
	if err := stageResult(logger, CapabilityMessaging, messagingClient != nil, err); err != nil {
		release(logger, fa)
		return nil, err
	}
	fa.MessageClient = messagingClient

	// Initialize the Analytics client
	analyticsClient, err := factory.Analytics(ctx, app, cfg)
	if err := stageResult(logger, CapabilityAnalytics, analyticsClient != nil, err); err != nil {
		release(logger, fa)
		return nil, err
	}
	fa.Analytics = analyticsClient

	return fa, nil
}

// stageResult logs the outcome of one initialization stage and converts a
// failure into an *InitError.
func stageResult(logger types.Logger, capability string, created bool, err error) error {
	if err == nil && !created {
		err = errNilHandle
	}

	if err != nil {
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error initializing Firebase " + capability,
			Labels:   map[string]string{"capability": capability, "error": err.Error()},
		})
		return &InitError{Capability: capability, Err: err}
	}

	logger.Log(logging.Entry{
		Severity: logging.Info,
		Payload:  "Firebase " + capability + " initialized successfully",
		Labels:   map[string]string{"capability": capability, "status": "success"},
	})
	return nil
}

func release(logger types.Logger, fa *types.FirebaseApp) {
	if err := fa.Close(); err != nil {
		logger.Log(logging.Entry{
			Severity: logging.Warning,
			Payload:  "Error releasing partially initialized Firebase handles",
			Labels:   map[string]string{"error": err.Error()},
		})
	}
}

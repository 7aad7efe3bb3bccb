package firebase

import (
	"context"
	"fmt"

	"ndis_connect/analytics"
	"ndis_connect/config"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/logging"
	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

// AnalyticsLogName is the Cloud Logging log analytics events are written to.
const AnalyticsLogName = "ndis-connect-analytics"

// Factory creates the root app and the capability handles derived from it.
type Factory interface {
	NewApp(ctx context.Context, cfg config.FirebaseConfig) (*firebase.App, error)
	Auth(ctx context.Context, app *firebase.App) (*auth.Client, error)
	Firestore(ctx context.Context, app *firebase.App) (*firestore.Client, error)
	Messaging(ctx context.Context, app *firebase.App) (*messaging.Client, error)
	Analytics(ctx context.Context, app *firebase.App, cfg config.FirebaseConfig) (*analytics.Client, error)
}

type sdkFactory struct {
	opts []option.ClientOption
}

// NewSDKFactory returns a Factory backed by the Firebase Admin SDK. opts are
// passed to every client it creates.
func NewSDKFactory(opts ...option.ClientOption) Factory {
	return &sdkFactory{opts: opts}
}

func (f *sdkFactory) NewApp(ctx context.Context, cfg config.FirebaseConfig) (*firebase.App, error) {
	return firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}, f.opts...)
}

func (f *sdkFactory) Auth(ctx context.Context, app *firebase.App) (*auth.Client, error) {
	return app.Auth(ctx)
}

func (f *sdkFactory) Firestore(ctx context.Context, app *firebase.App) (*firestore.Client, error) {
	return app.Firestore(ctx)
}

func (f *sdkFactory) Messaging(ctx context.Context, app *firebase.App) (*messaging.Client, error) {
	return app.Messaging(ctx)
}

// Analytics writes events to a dedicated Cloud Logging log in the app's
// project. The v3 *firebase.App exposes neither its project ID nor its
// client options, so the log is addressed through cfg, the record the root
// app was built from in NewApp.
func (f *sdkFactory) Analytics(ctx context.Context, _ *firebase.App, cfg config.FirebaseConfig) (*analytics.Client, error) {
	client, err := logging.NewClient(ctx, cfg.ProjectID, f.opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating logging client: %w", err)
	}

	logger := client.Logger(AnalyticsLogName, logging.CommonLabels(map[string]string{
		"app_id": cfg.AppID,
	}))

	ac, err := analytics.NewClient(cfg.ProjectID, cfg.AppID, logger, client.Close)
	if err != nil {
		client.Close()
		return nil, err
	}
	return ac, nil
}

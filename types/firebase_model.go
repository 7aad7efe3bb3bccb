package types

import (
	"context"

	"ndis_connect/analytics"
	"ndis_connect/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"firebase.google.com/go/messaging"
)

// FirebaseApp holds the handles built once at startup. Consumers receive the
// handle they need from main and never construct their own.
type FirebaseApp struct {
	Context       context.Context
	Config        config.FirebaseConfig
	Admin         *firebase.App
	Auth          *auth.Client
	DB            *firestore.Client
	MessageClient *messaging.Client
	Analytics     *analytics.Client
}

// Close releases the database and analytics handles.
func (f *FirebaseApp) Close() error {
	var firstErr error
	if f.DB != nil {
		if err := f.DB.Close(); err != nil {
			firstErr = err
		}
	}
	if f.Analytics != nil {
		if err := f.Analytics.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

package firebase

import (
	"errors"
	"fmt"
)

// ErrInitialization matches every error returned by InitFirebaseApp.
var ErrInitialization = errors.New("firebase initialization failed")

var errNilHandle = errors.New("factory returned no handle")

// Capabilities, in initialization order.
const (
	CapabilityConfig    = "config"
	CapabilityApp       = "app"
	CapabilityAuth      = "auth"
	CapabilityFirestore = "firestore"
	CapabilityMessaging = "messaging"
	CapabilityAnalytics = "analytics"
)

// InitError reports the capability whose initialization failed.
type InitError struct {
	Capability string
	Err        error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("error initializing firebase %s: %v", e.Capability, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

func (e *InitError) Is(target error) bool { return target == ErrInitialization }

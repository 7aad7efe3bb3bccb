package config

import "errors"

// Configuration record errors
var (
	ErrMissingAPIKey            = errors.New("firebase apiKey is required")
	ErrMissingAuthDomain        = errors.New("firebase authDomain is required")
	ErrMissingProjectID         = errors.New("firebase projectId is required")
	ErrMissingStorageBucket     = errors.New("firebase storageBucket is required")
	ErrMissingMessagingSenderID = errors.New("firebase messagingSenderId is required")
	ErrMissingAppID             = errors.New("firebase appId is required")

	ErrInvalidAuthDomain        = errors.New("firebase authDomain must be a bare hostname")
	ErrInvalidMessagingSenderID = errors.New("firebase messagingSenderId must be numeric")
	ErrInvalidAppID             = errors.New("firebase appId must have the form 1:<messagingSenderId>:<platform>:<hash>")
)

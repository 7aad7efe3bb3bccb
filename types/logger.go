package types

import "cloud.google.com/go/logging"

// Logger is the part of *logging.Logger the handlers use.
type Logger interface {
	Log(e logging.Entry)
}

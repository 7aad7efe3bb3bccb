// Package analytics records product usage events for the NDIS Connect app.
//
// Events follow the naming rules of the Firebase Analytics web SDK and are
// written as structured Cloud Logging entries, one per event, labelled with
// the project and app they belong to.
package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"cloud.google.com/go/logging"
	"github.com/google/uuid"
)

const (
	maxEventNameLength  = 40
	maxParamNameLength  = 40
	maxParamValueLength = 100
	maxParams           = 25
)

var (
	ErrInvalidEventName  = errors.New("analytics: invalid event name")
	ErrReservedEventName = errors.New("analytics: reserved event name")
	ErrInvalidParamName  = errors.New("analytics: invalid parameter name")
	ErrInvalidParamValue = errors.New("analytics: parameter value must be a string or a number")
	ErrParamValueTooLong = errors.New("analytics: parameter value too long")
	ErrTooManyParams     = errors.New("analytics: too many parameters")
	ErrClosed            = errors.New("analytics: client closed")
)

var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

var reservedPrefixes = []string{"firebase_", "google_", "ga_"}

var reservedNames = map[string]bool{
	"ad_activeview":           true,
	"ad_click":                true,
	"ad_exposure":             true,
	"ad_query":                true,
	"adunit_exposure":         true,
	"app_clear_data":          true,
	"app_exception":           true,
	"app_install":             true,
	"app_remove":              true,
	"app_store_refund":        true,
	"app_update":              true,
	"app_upgrade":             true,
	"dynamic_link_app_open":   true,
	"error":                   true,
	"first_open":              true,
	"first_visit":             true,
	"in_app_purchase":         true,
	"notification_dismiss":    true,
	"notification_foreground": true,
	"notification_open":       true,
	"notification_receive":    true,
	"os_update":               true,
	"session_start":           true,
	"user_engagement":         true,
}

// Sink receives analytics entries. *logging.Logger satisfies it.
type Sink interface {
	Log(e logging.Entry)
}

// Event is a single analytics event.
type Event struct {
	Name   string                 `json:"name"`
	Params map[string]interface{} `json:"params,omitempty"`
	UserID string                 `json:"userId,omitempty"`
}

type entryPayload struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Params    map[string]interface{} `json:"params,omitempty"`
	UserID    string                 `json:"userId,omitempty"`
	AppID     string                 `json:"appId"`
	ProjectID string                 `json:"projectId"`
	Timestamp time.Time              `json:"timestamp"`
}

// Client is the analytics handle for one Firebase app.
type Client struct {
	projectID string
	appID     string
	sink      Sink
	closer    func() error
	closed    atomic.Bool
	now       func() time.Time
}

// NewClient returns a Client that writes events for appID to sink. closer,
// if not nil, is invoked once by Close.
func NewClient(projectID, appID string, sink Sink, closer func() error) (*Client, error) {
	if projectID == "" || appID == "" {
		return nil, errors.New("analytics: project id and app id are required")
	}
	if sink == nil {
		return nil, errors.New("analytics: sink is required")
	}
	return &Client{
		projectID: projectID,
		appID:     appID,
		sink:      sink,
		closer:    closer,
		now:       time.Now,
	}, nil
}

// ProjectID returns the project the client reports to.
func (c *Client) ProjectID() string { return c.projectID }

// AppID returns the app the client reports for.
func (c *Client) AppID() string { return c.appID }

// LogEvent validates e and writes it to the sink.
func (c *Client) LogEvent(ctx context.Context, e Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.closed.Load() {
		return ErrClosed
	}
	if err := ValidateEvent(e); err != nil {
		return err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("error generating event id: %w", err)
	}

	c.sink.Log(logging.Entry{
		Severity: logging.Info,
		Payload: entryPayload{
			ID:        id.String(),
			Name:      e.Name,
			Params:    e.Params,
			UserID:    e.UserID,
			AppID:     c.appID,
			ProjectID: c.projectID,
			Timestamp: c.now().UTC(),
		},
		Labels: map[string]string{
			"event":      e.Name,
			"app_id":     c.appID,
			"project_id": c.projectID,
		},
	})

	return nil
}

// Close releases the underlying sink. Events logged afterwards fail with
// ErrClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if c.closer != nil {
		return c.closer()
	}
	return nil
}

// ValidateEvent applies the Firebase Analytics naming limits to e.
func ValidateEvent(e Event) error {
	if len(e.Name) == 0 || len(e.Name) > maxEventNameLength || !namePattern.MatchString(e.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidEventName, e.Name)
	}
	if reservedNames[e.Name] {
		return fmt.Errorf("%w: %q", ErrReservedEventName, e.Name)
	}
	for _, prefix := range reservedPrefixes {
		if strings.HasPrefix(e.Name, prefix) {
			return fmt.Errorf("%w: %q", ErrReservedEventName, e.Name)
		}
	}

	if len(e.Params) > maxParams {
		return fmt.Errorf("%w: %d > %d", ErrTooManyParams, len(e.Params), maxParams)
	}
	for name, value := range e.Params {
		if len(name) > maxParamNameLength || !namePattern.MatchString(name) {
			return fmt.Errorf("%w: %q", ErrInvalidParamName, name)
		}
		for _, prefix := range reservedPrefixes {
			if strings.HasPrefix(name, prefix) {
				return fmt.Errorf("%w: %q", ErrInvalidParamName, name)
			}
		}
		switch v := value.(type) {
		case string:
			if len(v) > maxParamValueLength {
				return fmt.Errorf("%w: %q", ErrParamValueTooLong, name)
			}
		case json.Number,
			int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
		default:
			return fmt.Errorf("%w: %q is %T", ErrInvalidParamValue, name, value)
		}
	}

	return nil
}

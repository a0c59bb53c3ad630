// Package backend publishes the handles to the managed backend: the
// authentication client and the document store. Handles are published once
// and read-only afterwards; dependents wait on a single-shot readiness signal.
package backend

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcoot/scoreboard/internal/model"
	"github.com/mcoot/scoreboard/internal/services/auth"
	"github.com/mcoot/scoreboard/internal/storage"
)

// Handles is the context object passed to everything that talks to the backend
type Handles struct {
	AppName string
	Auth    *auth.Service
	Store   storage.Store
}

// DB returns the document store or a ConfigError naming the missing handle
func (h *Handles) DB() (storage.Store, error) {
	if h == nil || h.Store == nil {
		return nil, &model.ConfigError{Handle: "store"}
	}
	return h.Store, nil
}

// AuthClient returns the authentication client or a ConfigError naming the missing handle
func (h *Handles) AuthClient() (*auth.Service, error) {
	if h == nil || h.Auth == nil {
		return nil, &model.ConfigError{Handle: "auth"}
	}
	return h.Auth, nil
}

// Opener builds the handles. It runs at most once per Connector.
type Opener func(ctx context.Context) (*Handles, error)

// Source is what dependents need from the connector
type Source interface {
	Wait(ctx context.Context) (*Handles, error)
}

// Connector initializes the backend once and broadcasts readiness
type Connector struct {
	logger *slog.Logger

	once    sync.Once
	ready   chan struct{}
	handles *Handles
	err     error
}

// Ensure Connector implements Source
var _ Source = (*Connector)(nil)

// NewConnector creates a connector with nothing published yet
func NewConnector(logger *slog.Logger) *Connector {
	return &Connector{
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Connect runs open on the first call and publishes its result.
// Later calls do nothing and report the first call's outcome.
func (c *Connector) Connect(ctx context.Context, open Opener) error {
	c.once.Do(func() {
		c.handles, c.err = open(ctx)
		if c.err == nil && c.handles == nil {
			c.handles = &Handles{}
		}
		if c.err != nil {
			c.logger.Error("backend initialization failed", slog.String("error", c.err.Error()))
		} else {
			c.logger.Info("backend initialized", slog.String("app", c.handles.AppName))
		}
		close(c.ready)
	})
	<-c.ready
	return c.err
}

// Publish makes already-built handles available
func (c *Connector) Publish(h *Handles) error {
	return c.Connect(context.Background(), func(context.Context) (*Handles, error) {
		return h, nil
	})
}

// Ready is closed once Connect has finished, successfully or not
func (c *Connector) Ready() <-chan struct{} {
	return c.ready
}

// Handles returns the published handles without blocking
func (c *Connector) Handles() (*Handles, error) {
	select {
	case <-c.ready:
		if c.err != nil {
			return nil, c.err
		}
		return c.handles, nil
	default:
		return nil, model.ErrBackendUnavailable
	}
}

// Wait blocks until the handles are published or ctx is done
func (c *Connector) Wait(ctx context.Context) (*Handles, error) {
	select {
	case <-c.ready:
		return c.Handles()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close releases the store if it holds a connection
func (c *Connector) Close() error {
	h, err := c.Handles()
	if err != nil || h == nil {
		return nil
	}
	if closer, ok := h.Store.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// Static is a Source over handles that are already built
type Static struct {
	H *Handles
}

// Wait returns the wrapped handles
func (s Static) Wait(context.Context) (*Handles, error) {
	return s.H, nil
}

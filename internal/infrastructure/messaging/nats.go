// Package messaging publishes domain events to NATS.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/benjaminhze/cribhunter/internal/infrastructure/logging"
)

// Subjects published by the service.
const (
	SubjectUserRegistered  = "user.registered"
	SubjectUserDeleted     = "user.deleted"
	SubjectPropertyCreated = "property.created"
	SubjectPropertyUpdated = "property.updated"
	SubjectPropertyDeleted = "property.deleted"
)

// Event is the envelope written on every subject.
type Event struct {
	Subject    string    `json:"subject"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// Publisher wraps a NATS connection. A Publisher without a connection is
// disabled and drops events silently.
type Publisher struct {
	nc     *nats.Conn
	logger *logging.Logger
}

// Connect dials url. An empty url yields a disabled publisher.
func Connect(url string, logger *logging.Logger) (*Publisher, error) {
	logger = logger.With("component", "nats")
	if url == "" {
		logger.Info("nats not configured, event publishing disabled")
		return NewDisabledPublisher(), nil
	}

	nc, err := nats.Connect(url,
		nats.Name("cribhunter"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats: %w", err)
	}

	logger.Info("connected to nats", "url", nc.ConnectedUrl())
	return &Publisher{nc: nc, logger: logger}, nil
}

func NewDisabledPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Enabled() bool {
	return p.nc != nil
}

// Publish marshals data into an Event and sends it on subject.
func (p *Publisher) Publish(_ context.Context, subject string, data any) error {
	if p.nc == nil {
		return nil
	}
	if !p.nc.IsConnected() && !p.nc.IsReconnecting() {
		return nats.ErrConnectionClosed
	}

	payload, err := json.Marshal(Event{
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	})
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", subject, err)
	}
	if err := p.nc.Publish(subject, payload); err != nil {
		return fmt.Errorf("publishing %s event: %w", subject, err)
	}
	return nil
}

// Close drains pending messages before closing the connection.
func (p *Publisher) Close() {
	if p.nc == nil {
		return
	}
	if err := p.nc.Drain(); err != nil {
		p.logger.Warn("nats drain failed", "error", err)
		p.nc.Close()
	}
}

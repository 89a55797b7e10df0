// Package app wires together the menage modules: it builds the shared event
// bus from configuration and owns the cross-module subscriptions.
package app

import (
	"github.com/rs/zerolog"

	"github.com/foyerlabs/menage/internal/config"
	"github.com/foyerlabs/menage/internal/event"
)

// Application is the composition root. One event bus instance is created
// here and shared by reference with every module.
type Application struct {
	cfg  config.Config
	log  zerolog.Logger
	bus  event.Bus
	subs *event.Subscriber
}

// New builds the application from configuration.
func New(cfg config.Config, log zerolog.Logger) (*Application, error) {
	bus := event.NewBus(
		event.WithLogger(log.With().Str("component", "event-bus").Logger()),
		event.WithSlowHandlerWarning(cfg.Events.SlowHandlerWarning),
		event.WithPanicStacks(cfg.Events.CaptureStacks),
	)

	app := &Application{
		cfg:  cfg,
		log:  log,
		bus:  bus,
		subs: event.NewSubscriber(bus),
	}

	if err := app.setupSubscriptions(); err != nil {
		return nil, err
	}

	return app, nil
}

// Bus returns the shared event bus.
func (a *Application) Bus() event.Bus {
	return a.bus
}

// Config returns the application configuration.
func (a *Application) Config() config.Config {
	return a.cfg
}

// Stats returns a diagnostic snapshot of the event bus.
func (a *Application) Stats() event.Stats {
	return a.bus.Stats()
}

// Close cancels the application's own subscriptions. Module subscriptions
// created through their own Subscribers are unaffected.
func (a *Application) Close() error {
	return a.subs.Close()
}

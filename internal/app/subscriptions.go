package app

import (
	"context"

	"github.com/foyerlabs/menage/internal/event"
)

// setupSubscriptions registers the application-level subscriptions.
// Module-specific handlers belong to their modules; only cross-cutting
// concerns live here.
func (a *Application) setupSubscriptions() error {
	// Every occurrence -> audit trail
	if err := a.subscribeAuditTrail(); err != nil {
		return err
	}

	// Recipe changes -> diagnostics
	if err := a.subscribeRecipeDiagnostics(); err != nil {
		return err
	}

	return nil
}

// subscribeAuditTrail records every published event. It runs at low
// priority so domain handlers observe the event first.
func (a *Application) subscribeAuditTrail() error {
	_, err := a.subs.SubscribeFunc(
		TopicAll,
		a.handleAudit,
		event.WithPriority(event.PriorityLow),
	)
	return err
}

// subscribeRecipeDiagnostics traces recipe lifecycle events at debug level.
func (a *Application) subscribeRecipeDiagnostics() error {
	_, err := a.subs.SubscribeFunc(
		TopicRecipeAll,
		a.handleRecipeDiagnostics,
		event.WithPriority(event.PriorityLow),
	)
	return err
}

func (a *Application) handleAudit(ctx context.Context, evt event.Event) error {
	a.log.Info().
		Str("event", evt.Name.String()).
		Str("source", evt.Meta.Source).
		Str("id", evt.Meta.ID).
		Time("at", evt.Meta.Timestamp).
		Msg("event published")
	return nil
}

func (a *Application) handleRecipeDiagnostics(ctx context.Context, evt event.Event) error {
	a.log.Debug().
		Str("event", evt.Name.String()).
		Interface("payload", evt.Payload).
		Msg("recipe event")
	return nil
}

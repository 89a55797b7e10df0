package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/foyerlabs/menage/internal/app"
	"github.com/foyerlabs/menage/internal/event"
	"github.com/foyerlabs/menage/internal/event/topic"
)

// NewEventsCommand groups event bus diagnostics.
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Event bus diagnostics",
	}

	cmd.AddCommand(newEventsDemoCommand())

	return cmd
}

// newEventsDemoCommand wires a demo that publishes a simulated household
// event sequence through a fully configured bus and prints the resulting
// statistics.
func newEventsDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Publish a simulated event sequence and print bus statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			logger := loggerFromContext(ctx)

			application, err := app.New(cfg, logger)
			if err != nil {
				return fmt.Errorf("initialize application: %w", err)
			}
			defer application.Close()

			bus := application.Bus()

			// A cache-invalidation subscriber covering all recipe events.
			_, err = bus.SubscribeFunc(app.TopicRecipeAll, func(ctx context.Context, evt event.Event) error {
				logger.Info().Str("event", evt.Name.String()).Msg("recipe cache invalidated")
				return nil
			}, event.WithPriority(event.PriorityHigh))
			if err != nil {
				return err
			}

			// A deliberately failing subscriber, to show failure isolation.
			_, err = bus.SubscribeFunc(app.TopicShoppingListGenerated, func(ctx context.Context, evt event.Event) error {
				return fmt.Errorf("printer offline")
			}, event.WithPriority(event.PriorityNormal))
			if err != nil {
				return err
			}

			recettes := event.NewPublisher(bus, "recettes")
			courses := event.NewPublisher(bus, "courses")

			steps := []struct {
				pub     *event.Publisher
				name    topic.Topic
				payload event.Payload
			}{
				{recettes, app.TopicRecipeCreated, event.Payload{"id": 1, "nom": "ratatouille"}},
				{recettes, app.TopicRecipeUpdated, event.Payload{"id": 1, "nom": "ratatouille niçoise"}},
				{courses, app.TopicShoppingListGenerated, event.Payload{"articles": 12}},
				{recettes, app.TopicRecipeDeleted, event.Payload{"id": 1}},
			}

			for _, step := range steps {
				n, err := step.pub.Publish(ctx, step.name, step.payload)
				if err != nil {
					return fmt.Errorf("publish %s: %w", step.name, err)
				}
				fmt.Printf("%-25s -> %d handler(s) succeeded\n", step.name, n)
				time.Sleep(50 * time.Millisecond)
			}

			stats := application.Stats()
			fmt.Println()
			fmt.Printf("events published:   %d\n", stats.EventsPublished)
			fmt.Printf("handlers succeeded: %d\n", stats.HandlersSucceeded)
			fmt.Printf("handler errors:     %d\n", stats.HandlerErrors)
			fmt.Printf("subscriptions:      %d\n", stats.TotalSubscriptions)

			return nil
		},
	}
}

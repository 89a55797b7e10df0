package app

import "github.com/foyerlabs/menage/internal/event/topic"

// Event topics used throughout the application. Names follow the
// module.action convention; the *All variants are subscription patterns and
// must never be published.
const (
	// Recipe events
	TopicRecipeCreated topic.Topic = "recette.creee"
	TopicRecipeUpdated topic.Topic = "recette.modifiee"
	TopicRecipeDeleted topic.Topic = "recette.supprimee"
	TopicRecipeAll     topic.Topic = "recette.*"

	// Inventory events
	TopicInventoryItemAdded    topic.Topic = "inventaire.article.ajoute"
	TopicInventoryItemRemoved  topic.Topic = "inventaire.article.retire"
	TopicInventoryItemDepleted topic.Topic = "inventaire.article.epuise"

	// Shopping list events
	TopicShoppingListGenerated topic.Topic = "courses.liste.generee"
	TopicShoppingListCompleted topic.Topic = "courses.liste.terminee"

	// Menu planning events
	TopicMenuPlanned topic.Topic = "menu.planifie"
	TopicMenuAll     topic.Topic = "menu.*"

	// Catch-all pattern for audit subscribers.
	TopicAll topic.Topic = "**"
)

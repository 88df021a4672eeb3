// Package events implements the event-source plugin core: flavor
// descriptors with schema introspection, strict configuration decoding,
// and the dispatch engine that matches inbound events to triggers.
//
// Architecture Overview:
//
// Each event-source flavor (webhook, schedule, ...) registers a Descriptor
// binding its Flavor metadata to a running Plugin instance. The Plugin is
// the dispatch engine; flavor-specific behavior plugs in through the Hooks
// interface.
//
//	┌─────────────────┐
//	│    Registry     │ ← Maps flavor names to descriptors
//	└────────┬────────┘
//	         │
//	┌────────▼────────┐
//	│   Descriptor    │ ← Flavor metadata + plugin instance
//	└────────┬────────┘
//	         │
//	┌────────▼────────┐
//	│     Plugin      │ ← CreateEventSource / ProcessEvent
//	└────────┬────────┘
//	         │
//	┌────────▼────────┐
//	│      Hooks      │ ← Flavor extension points
//	└─────────────────┘
//
// Creation flow: CreateEventSource decodes and validates the raw
// configuration payload against the flavor's source config type, then
// delegates persistence to Hooks.CreateSource. Validation happens exactly
// once, strictly before any persistence attempt.
//
// Event flow: ProcessEvent asks Hooks.RelevantSources for the event
// sources whose static identity matches the event, asks
// Hooks.MatchingTriggers for the triggers whose filters match, and hands
// the deduplicated trigger-identifier set to the Hub.
//
// Adding a New Flavor:
//
// 1. Define an event type implementing Event and config types implementing
// SourceConfig and FilterConfig, with a hand-declared schema for each
// config type (see the schema package).
//
// 2. Implement Flavor for the static metadata and Hooks for the extension
// points; MatchEngine provides a ready-made MatchingTriggers built on the
// store collaborator.
//
// 3. Register a Descriptor in the Registry.
package events

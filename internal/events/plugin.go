package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"event-dispatch/internal/common/errors"
	"event-dispatch/internal/common/logging"
)

// CreateSourceRequest carries a raw event source creation payload. The
// flavor name routes the request to the right plugin instance; the
// configuration is validated against that flavor's source config type
// before anything is persisted.
type CreateSourceRequest struct {
	FlavorName    string                 `json:"flavorName"`
	Configuration map[string]interface{} `json:"configuration"`
}

// SourceResponse is the result of a successful event source creation:
// the assigned identifier plus the validated configuration.
type SourceResponse struct {
	ID            string          `json:"id"`
	Flavor        string          `json:"flavor"`
	Configuration json.RawMessage `json:"configuration"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Hooks are the flavor extension points the dispatch engine delegates to.
//
// CreateSource persists a validated event source via the store
// collaborator and may add flavor-specific side effects (registering a
// webhook with a third party, say). It runs only after validation
// succeeded.
//
// RelevantSources is a structural pre-filter: it returns the identifiers
// of all persisted event sources of this flavor whose static identity
// fields match fields embedded in the event. It is cheaper than full
// predicate evaluation and avoids loading filters for sources that cannot
// possibly apply.
//
// MatchingTriggers evaluates the stored filter of every trigger
// registered against any of the given event sources and returns the
// identifiers whose filters match, deduplicated. MatchEngine provides a
// ready-made implementation. Matched identifiers are returned even when
// the error is non-nil; the error aggregates per-trigger failures.
type Hooks interface {
	CreateSource(ctx context.Context, req *CreateSourceRequest, config SourceConfig) (*SourceResponse, error)
	RelevantSources(ctx context.Context, event Event) ([]string, error)
	MatchingTriggers(ctx context.Context, sourceIDs []string, event Event) ([]string, error)
}

// Hub is the downstream collaborator that fans matched trigger
// identifiers out to subscribers. Delivery mechanics, retry and delivery
// guarantees belong to the hub, not to the dispatch engine.
type Hub interface {
	Dispatch(ctx context.Context, event Event, triggerIDs []string) error
}

// Plugin is the dispatch engine for one event-source flavor. It is
// stateless across calls: CreateEventSource and ProcessEvent are safe to
// invoke concurrently.
type Plugin struct {
	flavor Flavor
	hooks  Hooks
	hub    Hub
	logger logging.Logger
}

// NewPlugin creates the dispatch engine for a flavor.
func NewPlugin(flavor Flavor, hooks Hooks, hub Hub) *Plugin {
	logger := logging.GetGlobalLogger().WithFields(
		logging.Field{Key: "flavor", Value: flavor.Name()},
		logging.Field{Key: "plugin_type", Value: string(flavor.Type())},
	)

	return &Plugin{
		flavor: flavor,
		hooks:  hooks,
		hub:    hub,
		logger: logger,
	}
}

// Flavor returns the flavor this plugin handles.
func (p *Plugin) Flavor() Flavor {
	return p.flavor
}

// CreateEventSource validates the raw configuration payload against this
// flavor's source config type, then delegates persistence to the flavor
// hooks. Validation happens exactly once and strictly before any
// persistence attempt; an invalid payload persists nothing.
func (p *Plugin) CreateEventSource(ctx context.Context, req *CreateSourceRequest) (*SourceResponse, error) {
	if req.FlavorName != p.flavor.Name() {
		return nil, errors.InvalidConfigurationError(
			fmt.Sprintf("request flavor %q does not match plugin flavor %q", req.FlavorName, p.flavor.Name()))
	}

	config, err := DecodeSourceConfig(p.flavor, req.Configuration)
	if err != nil {
		p.logger.Warn("Rejected event source configuration",
			logging.Err(err),
		)
		return nil, err
	}

	response, err := p.hooks.CreateSource(ctx, req, config)
	if err != nil {
		return nil, err
	}

	p.logger.Info("Event source created",
		logging.String("event_source_id", response.ID),
	)
	return response, nil
}

// ProcessEvent resolves the event sources relevant to the event, matches
// their triggers' filters against it, and hands the resulting
// trigger-identifier set to the hub. The hand-off is a boundary crossing:
// ProcessEvent does not wait for delivery confirmations.
//
// The matched identifiers are returned alongside any error; per-trigger
// evaluation failures are aggregated and never abort the batch.
func (p *Plugin) ProcessEvent(ctx context.Context, event Event) ([]string, error) {
	sourceIDs, err := p.hooks.RelevantSources(ctx, event)
	if err != nil {
		if errors.IsType(err, errors.ErrTypeSourceResolution) {
			return nil, err
		}
		return nil, errors.SourceResolutionError("failed to resolve relevant event sources", err)
	}

	if len(sourceIDs) == 0 {
		p.logger.Debug("No relevant event sources for event")
		return nil, nil
	}

	triggerIDs, matchErr := p.hooks.MatchingTriggers(ctx, sourceIDs, event)
	if matchErr != nil && !errors.IsType(matchErr, errors.ErrTypeFilterEvaluation) {
		matchErr = errors.FilterEvaluationError("failed to evaluate trigger filters", matchErr)
	}

	var combined *multierror.Error
	combined = multierror.Append(combined, matchErr)

	if err := p.hub.Dispatch(ctx, event, triggerIDs); err != nil {
		combined = multierror.Append(combined,
			errors.DispatchError("failed to hand off matched triggers to event hub", err))
	}

	p.logger.Info("Event processed",
		logging.Int("relevant_sources", len(sourceIDs)),
		logging.Int("matched_triggers", len(triggerIDs)),
		logging.Strings("trigger_ids", triggerIDs),
	)

	return triggerIDs, combined.ErrorOrNil()
}

package events

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"event-dispatch/internal/common/errors"
	"event-dispatch/internal/common/logging"
	"event-dispatch/internal/storage"
)

// DefaultMaxParallelEvaluations bounds concurrent filter evaluations per
// event when no explicit limit is configured.
const DefaultMaxParallelEvaluations = 8

// MatchEngine is the shared trigger-matching implementation flavors build
// their MatchingTriggers hook on. For every trigger registered against
// any of the relevant event sources it re-hydrates the stored filter
// configuration into the flavor's filter type and tests it against the
// event.
//
// Evaluations are independent and run on a bounded worker pool. A failure
// evaluating one trigger's filter never prevents evaluation of the rest:
// failures are collected per trigger and reported once as an aggregate,
// alongside the successfully matched identifiers.
type MatchEngine struct {
	flavor      Flavor
	store       storage.Store
	maxParallel int
	logger      logging.Logger
}

// MatchOption customizes a match engine at construction time.
type MatchOption func(*MatchEngine)

// WithMaxParallel bounds the number of concurrent filter evaluations
// per event.
func WithMaxParallel(n int) MatchOption {
	return func(e *MatchEngine) {
		e.SetMaxParallel(n)
	}
}

// NewMatchEngine creates a match engine for a flavor backed by the given
// store collaborator.
func NewMatchEngine(flavor Flavor, store storage.Store, opts ...MatchOption) *MatchEngine {
	e := &MatchEngine{
		flavor:      flavor,
		store:       store,
		maxParallel: DefaultMaxParallelEvaluations,
		logger: logging.GetGlobalLogger().WithFields(
			logging.Field{Key: "component", Value: "match_engine"},
			logging.Field{Key: "flavor", Value: flavor.Name()},
		),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetMaxParallel bounds the number of concurrent filter evaluations.
// Values below one fall back to serial evaluation.
func (e *MatchEngine) SetMaxParallel(n int) {
	if n < 1 {
		n = 1
	}
	e.maxParallel = n
}

// MaxParallel returns the evaluation concurrency bound.
func (e *MatchEngine) MaxParallel() int {
	return e.maxParallel
}

type evalResult struct {
	triggerID string
	matched   bool
	err       error
}

// MatchingTriggers returns the identifiers of all triggers on the given
// event sources whose filter matches the event, deduplicated and sorted.
// Matched identifiers are valid even when the returned error is non-nil;
// the error aggregates the triggers that could not be evaluated.
func (e *MatchEngine) MatchingTriggers(ctx context.Context, sourceIDs []string, event Event) ([]string, error) {
	rows, err := e.store.GetTriggersForEventSources(ctx, sourceIDs)
	if err != nil {
		return nil, errors.FilterEvaluationError("failed to load triggers for event sources", err)
	}

	// A trigger reachable through several relevant sources is evaluated once.
	seen := make(map[string]bool, len(rows))
	unique := make([]storage.TriggerFilter, 0, len(rows))
	for _, row := range rows {
		if seen[row.TriggerID] {
			continue
		}
		seen[row.TriggerID] = true
		unique = append(unique, row)
	}

	results := make([]evalResult, len(unique))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.maxParallel)
	for i, row := range unique {
		i, row := i, row
		group.Go(func() error {
			results[i] = e.evaluate(groupCtx, row, event)
			return nil
		})
	}
	// Workers report failures through their result slot, never as group
	// errors, so one bad filter cannot cancel the batch.
	_ = group.Wait()

	var matched []string
	var aggregate *multierror.Error
	for _, result := range results {
		if result.err != nil {
			aggregate = multierror.Append(aggregate, result.err)
			e.logger.Warn("Trigger filter evaluation failed",
				logging.String("trigger_id", result.triggerID),
				logging.Err(result.err),
			)
			continue
		}
		if result.matched {
			matched = append(matched, result.triggerID)
		}
	}

	sort.Strings(matched)
	return matched, aggregate.ErrorOrNil()
}

// evaluate decodes one trigger's stored filter and tests it against the
// event. All failure modes, including a panicking filter, degrade to a
// per-trigger error.
func (e *MatchEngine) evaluate(ctx context.Context, row storage.TriggerFilter, event Event) (result evalResult) {
	result.triggerID = row.TriggerID

	defer func() {
		if r := recover(); r != nil {
			result.matched = false
			result.err = errors.FilterEvaluationError(fmt.Sprintf("filter panicked: %v", r), nil).
				WithContext("trigger_id", row.TriggerID)
		}
	}()

	if err := ctx.Err(); err != nil {
		result.err = errors.FilterEvaluationError("filter evaluation cancelled", err).
			WithContext("trigger_id", row.TriggerID)
		return result
	}

	filter, err := DecodeFilterConfig(e.flavor, row.FilterConfig)
	if err != nil {
		result.err = errors.FilterEvaluationError("stored filter configuration is malformed", err).
			WithContext("trigger_id", row.TriggerID)
		return result
	}

	result.matched = filter.Matches(event)
	return result
}

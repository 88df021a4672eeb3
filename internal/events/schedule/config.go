package schedule

import (
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"event-dispatch/internal/events"
	"event-dispatch/internal/schema"
)

// SourceConfig parameterizes one configured schedule event source.
type SourceConfig struct {
	Name     string `json:"name" validate:"required,min=1"`
	CronSpec string `json:"cronSpec" validate:"required,cron_expression"`
	Timezone string `json:"timezone,omitempty" validate:"omitempty,timezone"`
}

// Validate enforces rules beyond struct tags.
func (c *SourceConfig) Validate() error {
	return nil
}

// NextRun returns the first firing strictly after the given instant,
// evaluated in the configured timezone.
func (c *SourceConfig) NextRun(from time.Time) (time.Time, error) {
	spec, err := cron.ParseStandard(c.CronSpec)
	if err != nil {
		return time.Time{}, err
	}

	location := time.UTC
	if c.Timezone != "" {
		location, err = time.LoadLocation(c.Timezone)
		if err != nil {
			return time.Time{}, err
		}
	}

	return spec.Next(from.In(location)), nil
}

// FilterConfig is the per-trigger predicate over schedule firings.
// Empty fields match anything.
type FilterConfig struct {
	// Weekdays restricts matches to firings on the named days, e.g.
	// "monday". Matching is case-insensitive.
	Weekdays []string `json:"weekdays,omitempty"`
	// MaxLateness rejects firings delivered more than this duration
	// after their scheduled instant, e.g. "5m".
	MaxLateness string `json:"maxLateness,omitempty" validate:"omitempty,duration"`
}

// Matches implements events.FilterConfig. A firing shape this filter
// cannot interpret yields false, never an error.
func (f *FilterConfig) Matches(event events.Event) bool {
	firing, ok := event.(*Event)
	if !ok {
		return false
	}

	if len(f.Weekdays) > 0 && !f.matchesWeekday(firing.FiredAt.Weekday()) {
		return false
	}

	if f.MaxLateness != "" {
		maxLateness, err := time.ParseDuration(f.MaxLateness)
		if err != nil {
			return false
		}
		if firing.FiredAt.Sub(firing.ScheduledFor) > maxLateness {
			return false
		}
	}

	return true
}

func (f *FilterConfig) matchesWeekday(day time.Weekday) bool {
	for _, weekday := range f.Weekdays {
		if strings.EqualFold(weekday, day.String()) {
			return true
		}
	}
	return false
}

// Schemas are declared alongside the config types they describe.
var (
	sourceConfigSchema = schema.Object("ScheduleSourceConfig",
		schema.Property("name", schema.TypeString,
			schema.Required(),
			schema.Description("Unique schedule name, echoed in every firing")),
		schema.Property("cronSpec", schema.TypeString,
			schema.Required(),
			schema.Description("Standard 5-field cron expression")),
		schema.Property("timezone", schema.TypeString,
			schema.Default("UTC"),
			schema.Description("IANA timezone the cron expression is evaluated in")),
	)

	filterConfigSchema = schema.Object("ScheduleFilterConfig",
		schema.Property("weekdays", schema.TypeArray,
			schema.Items(schema.TypeString),
			schema.Description("Only match firings on these weekdays")),
		schema.Property("maxLateness", schema.TypeString,
			schema.Description("Only match firings delivered within this duration of their scheduled instant")),
	)
)

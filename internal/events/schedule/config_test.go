package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceConfig_NextRun(t *testing.T) {
	config := &SourceConfig{
		Name:     "nightly",
		CronSpec: "0 3 * * *",
	}

	from := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	next, err := config.NextRun(from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 11, 3, 0, 0, 0, time.UTC), next)
}

func TestSourceConfig_NextRunHonorsTimezone(t *testing.T) {
	config := &SourceConfig{
		Name:     "nightly",
		CronSpec: "0 3 * * *",
		Timezone: "America/New_York",
	}

	from := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	next, err := config.NextRun(from)
	require.NoError(t, err)

	// 03:00 New York on Jun 11 is 07:00 UTC during daylight saving.
	assert.Equal(t, time.Date(2024, 6, 11, 7, 0, 0, 0, time.UTC), next.UTC())
}

func TestSourceConfig_NextRunBadSpec(t *testing.T) {
	config := &SourceConfig{Name: "broken", CronSpec: "every day at noon"}

	_, err := config.NextRun(time.Now())
	require.Error(t, err)
}

func TestFilterConfig_Matches(t *testing.T) {
	// Monday, fired two minutes late.
	firing := &Event{
		ScheduleName: "nightly",
		ScheduledFor: time.Date(2024, 6, 10, 3, 0, 0, 0, time.UTC),
		FiredAt:      time.Date(2024, 6, 10, 3, 2, 0, 0, time.UTC),
	}

	tests := []struct {
		name   string
		filter FilterConfig
		want   bool
	}{
		{"empty filter matches anything", FilterConfig{}, true},
		{"weekday match", FilterConfig{Weekdays: []string{"monday"}}, true},
		{"weekday match is case-insensitive", FilterConfig{Weekdays: []string{"MONDAY"}}, true},
		{"weekday mismatch", FilterConfig{Weekdays: []string{"sunday"}}, false},
		{"lateness within bound", FilterConfig{MaxLateness: "5m"}, true},
		{"lateness beyond bound", FilterConfig{MaxLateness: "1m"}, false},
		{"unparseable lateness never matches", FilterConfig{MaxLateness: "soonish"}, false},
		{"weekday and lateness combined", FilterConfig{Weekdays: []string{"monday"}, MaxLateness: "5m"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(firing))
		})
	}
}

func TestFilterConfig_MatchesForeignEventShape(t *testing.T) {
	filter := &FilterConfig{}
	assert.False(t, filter.Matches(foreignEvent{}), "unknown shapes never match")
}

type foreignEvent struct{}

func (foreignEvent) Flavor() string { return "foreign" }

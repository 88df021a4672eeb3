package events

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"event-dispatch/internal/common/errors"
	"event-dispatch/internal/common/validation"
)

// SourceConfig is the typed configuration parameterizing one configured
// event source instance. Immutable after validation.
type SourceConfig interface {
	// Validate enforces flavor-specific rules beyond struct tags
	Validate() error
}

// FilterConfig is a typed predicate over events, configured per trigger.
//
// Matches must be pure and total: it never errors and never panics for a
// well-typed event. An event shape the filter cannot interpret yields
// false, not a failure.
type FilterConfig interface {
	Matches(event Event) bool
}

// DecodeSourceConfig constructs a flavor's typed source configuration from
// a raw key/value payload. Construction is strict and total: unknown
// fields, wrong-typed fields, missing required fields or any flavor rule
// failure reject the whole payload with an invalid-configuration error.
func DecodeSourceConfig(flavor Flavor, raw map[string]interface{}) (SourceConfig, error) {
	config := flavor.NewSourceConfig()
	if err := decodeStrict(raw, config); err != nil {
		return nil, err
	}
	if err := validation.ValidateStruct(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		if errors.IsType(err, errors.ErrTypeInvalidConfig) {
			return nil, err
		}
		return nil, errors.InvalidConfigurationError(err.Error())
	}
	return config, nil
}

// DecodeFilterConfig constructs a flavor's typed filter configuration from
// its stored serialized form, with the same strictness as source configs.
func DecodeFilterConfig(flavor Flavor, stored json.RawMessage) (FilterConfig, error) {
	config := flavor.NewFilterConfig()
	if err := unmarshalStrict(stored, config); err != nil {
		return nil, err
	}
	if err := validation.ValidateStruct(config); err != nil {
		return nil, err
	}
	return config, nil
}

func decodeStrict(raw map[string]interface{}, out interface{}) error {
	payload, err := json.Marshal(raw)
	if err != nil {
		return errors.InvalidConfigurationError("configuration payload is not serializable")
	}
	return unmarshalStrict(payload, out)
}

func unmarshalStrict(payload []byte, out interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "(root)"
			}
			return errors.InvalidConfigurationError(
				fmt.Sprintf("field '%s' must be of type %s", field, typeErr.Type)).
				WithContext("field", field)
		}
		return errors.InvalidConfigurationError(err.Error())
	}
	return nil
}

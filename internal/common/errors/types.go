package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorType classifies an error within the dispatch pipeline.
type ErrorType string

const (
	// ErrTypeInvalidConfig represents configuration validation failures.
	// These are terminal and caller-visible; nothing is persisted.
	ErrTypeInvalidConfig ErrorType = "invalid_configuration"
	// ErrTypeNotFound represents unknown flavors, event sources or triggers
	ErrTypeNotFound ErrorType = "not_found"
	// ErrTypeSourceResolution represents failures resolving relevant event sources
	ErrTypeSourceResolution ErrorType = "source_resolution"
	// ErrTypeFilterEvaluation represents per-trigger filter evaluation failures
	ErrTypeFilterEvaluation ErrorType = "filter_evaluation"
	// ErrTypeDispatch represents event hub boundary failures
	ErrTypeDispatch ErrorType = "dispatch"
	// ErrTypeInternal represents internal system errors
	ErrTypeInternal ErrorType = "internal"
	// ErrTypeTimeout represents timeout errors
	ErrTypeTimeout ErrorType = "timeout"
)

// AppError is a structured application error carrying a type, an optional
// cause and free-form context for identifying the offending entity.
type AppError struct {
	Type    ErrorType              `json:"type"`
	Message string                 `json:"message"`
	Code    string                 `json:"code,omitempty"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	parts := []string{string(e.Type), e.Message}

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("code=%s", e.Code))
	}

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%v", e.Cause))
	}

	if len(e.Context) > 0 {
		contextParts := make([]string, 0, len(e.Context))
		for k, v := range e.Context {
			contextParts = append(contextParts, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, fmt.Sprintf("context={%s}", strings.Join(contextParts, ", ")))
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithCode adds an error code
func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

// InvalidConfigurationError creates a configuration validation error
func InvalidConfigurationError(msg string) *AppError {
	return &AppError{
		Type:    ErrTypeInvalidConfig,
		Message: msg,
	}
}

// NotFoundError creates a new not found error
func NotFoundError(resource string) *AppError {
	return &AppError{
		Type:    ErrTypeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// SourceResolutionError creates an error for failures while resolving
// relevant event sources
func SourceResolutionError(msg string, cause error) *AppError {
	return &AppError{
		Type:    ErrTypeSourceResolution,
		Message: msg,
		Cause:   cause,
	}
}

// FilterEvaluationError creates an error for a single trigger filter
// evaluation failure
func FilterEvaluationError(msg string, cause error) *AppError {
	return &AppError{
		Type:    ErrTypeFilterEvaluation,
		Message: msg,
		Cause:   cause,
	}
}

// DispatchError creates an error for event hub boundary failures
func DispatchError(msg string, cause error) *AppError {
	return &AppError{
		Type:    ErrTypeDispatch,
		Message: msg,
		Cause:   cause,
	}
}

// InternalError creates a new internal error
func InternalError(msg string, cause error) *AppError {
	return &AppError{
		Type:    ErrTypeInternal,
		Message: msg,
		Cause:   cause,
	}
}

// TimeoutError creates a new timeout error
func TimeoutError(operation string) *AppError {
	return &AppError{
		Type:    ErrTypeTimeout,
		Message: fmt.Sprintf("timeout during %s", operation),
	}
}

// IsType reports whether err or any error in its chain is an AppError of
// the given type. Aggregated errors wrap their members, so this also works
// on single-member aggregates.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return false
	}
	return appErr.Type == errType
}

// GetType returns the error type if it's an AppError, otherwise ErrTypeInternal
func GetType(err error) ErrorType {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return ErrTypeInternal
	}
	return appErr.Type
}

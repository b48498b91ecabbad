package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the base for all error types in this package.
// They enable classification via errors.Is without inspecting concrete types.
var (
	// ErrObjectNotFound indicates a referenced object does not exist in storage.
	ErrObjectNotFound = errors.New("object not found")
	// ErrObjectAlreadyExists indicates a uniqueness violation on a stored object.
	ErrObjectAlreadyExists = errors.New("object already exists")
	// ErrValueIsInvalid indicates a value failed domain validation.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrValueIsOutOfRange indicates a value is outside its permitted bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")
	// ErrValueIsRequired indicates a required value is missing.
	ErrValueIsRequired = errors.New("value is required")
	// ErrInvalidTransition indicates a state-machine edge that is not permitted.
	ErrInvalidTransition = errors.New("invalid transition")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", " "), "\n", " ")
}

// ObjectNotFoundError reports that an object referenced by ID is absent.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and ID.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError reports a uniqueness violation, for example a duplicate
// drone serial number.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectAlreadyExistsError creates an ObjectAlreadyExistsError for the given parameter and ID.
func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id}
}

// NewObjectAlreadyExistsErrorWithCause creates an ObjectAlreadyExistsError wrapping an underlying cause.
func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectAlreadyExists, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectAlreadyExists, e.ID))
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// ValueIsInvalidError reports that a named value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports that a named value lies outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given parameter and bounds.
func NewValueIsOutOfRangeError(paramName string, value any, minimum any, maximum any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minimum, Max: maximum}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value any, minimum any, maximum any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minimum, Max: maximum, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports that a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidTransitionError reports a state-machine edge that the entity's lifecycle
// does not permit, such as moving a drone out of the retired status or regressing
// an order to an earlier status.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
	Cause  error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given entity and edge.
func NewInvalidTransitionError(entity string, from string, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(entity string, from string, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s cannot move from %s to %s (cause: %s)",
			ErrInvalidTransition, e.Entity, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s cannot move from %s to %s",
		ErrInvalidTransition, e.Entity, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

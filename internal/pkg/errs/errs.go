package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrValueIsRequired      = errors.New("value is required")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrObjectNotFound       = errors.New("object not found")
	ErrInvalidReference     = errors.New("referenced object is not eligible")
	ErrAlreadyAssigned      = errors.New("delivery item is already assigned")
	ErrNotAssigned          = errors.New("delivery item is not assigned")
	ErrInvalidStatus        = errors.New("status is not recognized")
	ErrInvalidTransition    = errors.New("status transition is not allowed")
	ErrInvalidOperation     = errors.New("operation is not allowed for current status")
	ErrUnsupportedMediaType = errors.New("media type is not supported")
	ErrPayloadTooLarge      = errors.New("payload exceeds the size limit")
	ErrStorageFailure       = errors.New("storage failure")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("value is required: %s", sanitize(e.ParamName)), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error { return ErrValueIsRequired }

// ValueIsInvalidError reports a value that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("value is invalid: %s", sanitize(e.ParamName)), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error { return ErrValueIsInvalid }

// ObjectNotFoundError reports a missing item, account or other entity.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("object not found: %s", e.ID)
	}
	return withCause(fmt.Sprintf("object not found: param is: %s, ID is: %s", e.ParamName, e.ID), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error { return ErrObjectNotFound }

// InvalidReferenceError reports a reference to an entity that exists in the
// wrong shape for the operation, such as assigning an account without the
// agent role.
type InvalidReferenceError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewInvalidReferenceError(paramName string, id any) *InvalidReferenceError {
	return &InvalidReferenceError{ParamName: paramName, ID: id}
}

func NewInvalidReferenceErrorWithCause(paramName string, id any, cause error) *InvalidReferenceError {
	return &InvalidReferenceError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *InvalidReferenceError) Error() string {
	return withCause(fmt.Sprintf("referenced %s is not eligible: %v", sanitize(e.ParamName), e.ID), e.Cause)
}

func (e *InvalidReferenceError) Unwrap() error { return ErrInvalidReference }

// AlreadyAssignedError reports an assignment attempt on an item that already
// carries an agent. The item must be unassigned first.
type AlreadyAssignedError struct {
	ItemID  int64
	AgentID string
}

func NewAlreadyAssignedError(itemID int64, agentID string) *AlreadyAssignedError {
	return &AlreadyAssignedError{ItemID: itemID, AgentID: agentID}
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("delivery item %d is already assigned to agent %s", e.ItemID, e.AgentID)
}

func (e *AlreadyAssignedError) Unwrap() error { return ErrAlreadyAssigned }

// NotAssignedError reports an unassign attempt on an item with no agent.
type NotAssignedError struct {
	ItemID int64
}

func NewNotAssignedError(itemID int64) *NotAssignedError {
	return &NotAssignedError{ItemID: itemID}
}

func (e *NotAssignedError) Error() string {
	return fmt.Sprintf("delivery item %d is not assigned to any agent", e.ItemID)
}

func (e *NotAssignedError) Unwrap() error { return ErrNotAssigned }

// InvalidStatusError reports a status string that did not resolve to any
// recognized lifecycle status after normalization.
type InvalidStatusError struct {
	Raw string
}

func NewInvalidStatusError(raw string) *InvalidStatusError {
	return &InvalidStatusError{Raw: raw}
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("status is not recognized: %q", sanitize(e.Raw))
}

func (e *InvalidStatusError) Unwrap() error { return ErrInvalidStatus }

// InvalidTransitionError reports a lifecycle edge that is not in the
// transition graph. The message always names both endpoints.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// InvalidOperationError reports an operation (delete, edit, unassign)
// attempted on an item whose status does not permit it.
type InvalidOperationError struct {
	Operation string
	Status    string
}

func NewInvalidOperationError(operation, status string) *InvalidOperationError {
	return &InvalidOperationError{Operation: operation, Status: status}
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("cannot %s delivery item in status %s", sanitize(e.Operation), e.Status)
}

func (e *InvalidOperationError) Unwrap() error { return ErrInvalidOperation }

// UnsupportedMediaTypeError reports an upload whose declared content type is
// not in the attachment allow-list.
type UnsupportedMediaTypeError struct {
	ContentType string
}

func NewUnsupportedMediaTypeError(contentType string) *UnsupportedMediaTypeError {
	return &UnsupportedMediaTypeError{ContentType: contentType}
}

func (e *UnsupportedMediaTypeError) Error() string {
	return fmt.Sprintf("media type is not supported: %q, only JPEG, JPG and PNG images are allowed", sanitize(e.ContentType))
}

func (e *UnsupportedMediaTypeError) Unwrap() error { return ErrUnsupportedMediaType }

// PayloadTooLargeError reports an upload exceeding the attachment size cap.
type PayloadTooLargeError struct {
	Size  int64
	Limit int64
}

func NewPayloadTooLargeError(size, limit int64) *PayloadTooLargeError {
	return &PayloadTooLargeError{Size: size, Limit: limit}
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("payload of %d bytes exceeds the %d byte limit", e.Size, e.Limit)
}

func (e *PayloadTooLargeError) Unwrap() error { return ErrPayloadTooLarge }

// StorageFailureError wraps an error from the persistence or file layer.
// The underlying cause is kept for logs but is not exposed to clients
// outside development mode.
type StorageFailureError struct {
	Operation string
	Cause     error
}

func NewStorageFailureError(operation string, cause error) *StorageFailureError {
	return &StorageFailureError{Operation: operation, Cause: cause}
}

func (e *StorageFailureError) Error() string {
	return withCause(fmt.Sprintf("storage failure during %s", sanitize(e.Operation)), e.Cause)
}

func (e *StorageFailureError) Unwrap() error { return ErrStorageFailure }

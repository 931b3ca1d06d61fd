package appointment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound          = errors.New("appointment not found")
	ErrSlotTaken         = errors.New("time slot already booked")
	ErrSlotUnavailable   = errors.New("time slot unavailable")
	ErrAppointmentClosed = errors.New("appointment is closed")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNoDraft           = errors.New("no booking in progress")
	ErrServiceNotOffered = errors.New("service not offered by salon")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that stopped a draft from confirming.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// FieldNames returns the offending field names in report order.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return names
}

// StorageError wraps a blob store read, write, or decode failure.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

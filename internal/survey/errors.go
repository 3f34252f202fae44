package survey

import (
	"strings"

	"github.com/rshade/ecoquest/internal/engine"
)

type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidField is matched by every ValidationError.
const ErrInvalidField = constError("invalid survey field")

// FieldError is the message shown under one form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

// ValidationError collects the field errors of one survey, in form order.
type ValidationError struct {
	Category engine.Category
	Fields   []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return string(e.Category) + " survey: " + strings.Join(msgs, "; ")
}

// Unwrap exposes ErrInvalidField followed by each FieldError.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields)+1)
	errs = append(errs, ErrInvalidField)
	for _, f := range e.Fields {
		errs = append(errs, f)
	}
	return errs
}

// Message returns the error shown under field, or "".
func (e *ValidationError) Message(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// AsMap returns the messages keyed by field.
func (e *ValidationError) AsMap() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Message
	}
	return out
}

type collector struct {
	category engine.Category
	fields   []FieldError
}

func (c *collector) add(field, message string) {
	for _, f := range c.fields {
		if f.Field == field {
			return
		}
	}
	c.fields = append(c.fields, FieldError{Field: field, Message: message})
}

func (c *collector) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Category: c.category, Fields: c.fields}
}

package core

import "fmt"

// ErrorKind classifies a deserialization failure.
type ErrorKind string

// Error kinds. Every one of them is fatal to the enclosing document.
const (
	// KindUnsupportedDefinition: a top-level definition is not an object type.
	KindUnsupportedDefinition ErrorKind = "UnsupportedDefinitionKind"
	// KindInvalidDefinition: a node expected to be a field or object definition is not.
	KindInvalidDefinition ErrorKind = "InvalidDefinitionKind"
	// KindUnexpectedTypeShape: a field type is not T, T!, [T] or [T]! (element non-null allowed).
	KindUnexpectedTypeShape ErrorKind = "UnexpectedTypeShape"
	// KindInvalidDirectiveName: a directive name does not match <provider>_<name>.
	KindInvalidDirectiveName ErrorKind = "InvalidDirectiveName"
	// KindMissingSource: a model has neither a source directive nor a default source.
	KindMissingSource ErrorKind = "MissingSource"
	// KindUnsupportedValue: a literal value kind is not supported.
	KindUnsupportedValue ErrorKind = "UnsupportedValueKind"
)

// Sentinel errors for use with errors.Is.
var (
	ErrUnsupportedDefinitionKind = &Error{Kind: KindUnsupportedDefinition}
	ErrInvalidDefinitionKind     = &Error{Kind: KindInvalidDefinition}
	ErrUnexpectedTypeShape       = &Error{Kind: KindUnexpectedTypeShape}
	ErrInvalidDirectiveName      = &Error{Kind: KindInvalidDirectiveName}
	ErrMissingSource             = &Error{Kind: KindMissingSource}
	ErrUnsupportedValueKind      = &Error{Kind: KindUnsupportedValue}
)

// Error is a deserialization failure. Subject names the offending construct
// (a definition kind, model, field, directive or value kind).
type Error struct {
	Kind    ErrorKind
	Subject string
	Message string
}

// NewError creates an Error with a formatted message.
func NewError(kind ErrorKind, subject string, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Subject: subject,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrMissingSource)
// holds for every missing source failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

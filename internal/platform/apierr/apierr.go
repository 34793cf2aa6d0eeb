package apierr

import (
	"errors"
	"fmt"
)

// Kind clasifica los errores que la API expone al cliente.
// El envelope serializa el Kind tal cual, así que los nombres son parte del contrato.
type Kind string

const (
	KindValidation Kind = "ValidationError"
	KindReference  Kind = "ReferenceError"
	KindNotFound   Kind = "NotFoundError"
	KindStore      Kind = "StoreError"
)

// Error es el único tipo de error que los services devuelven hacia los handlers.
// Message es apto para el cliente; cause queda solo para logs.
type Error struct {
	Kind    Kind
	Message string

	// Solo para ReferenceError: campo y valor que no resolvió.
	Field       string
	AttemptedID string

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Validation arma un ValidationError con mensaje para el cliente.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Reference arma un ReferenceError para una FK que no resolvió.
func Reference(field, attemptedID string) error {
	return &Error{
		Kind:        KindReference,
		Message:     fmt.Sprintf("%s %q does not reference an existing document", field, attemptedID),
		Field:       field,
		AttemptedID: attemptedID,
	}
}

// NotFound arma un NotFoundError para un recurso por nombre (owner, dog, ...).
func NotFound(resource string) error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

// Store envuelve una falla del adapter de persistencia.
// El mensaje hacia el cliente es genérico; el detalle va en cause (para logs).
func Store(err error) error {
	return &Error{Kind: KindStore, Message: "storage operation failed", cause: err}
}

// KindOf extrae el Kind de un error; ok=false si no es un *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// MessageOf devuelve el mensaje apto para cliente, o un fallback genérico.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}

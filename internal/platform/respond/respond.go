package respond

import (
	"encoding/json"
	"net/http"

	"pet-sitting-service/internal/platform/apierr"
)

// Envelope es la única forma de respuesta de la API, en éxito y en error.
// data es null en errores; error es null en éxitos.
type Envelope struct {
	Status string     `json:"status"`
	Data   any        `json:"data"`
	Error  *ErrorBody `json:"error"`
}

type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// DeleteAck es el payload de confirmación de borrado, igual para todos los recursos.
type DeleteAck struct {
	ID string `json:"id"`
}

const (
	statusSuccess = "success"
	statusError   = "error"
)

// OK escribe 200 con data.
func OK(w http.ResponseWriter, data any) {
	writeEnvelope(w, http.StatusOK, Envelope{Status: statusSuccess, Data: data})
}

// Created escribe 201 con el documento recién creado.
func Created(w http.ResponseWriter, data any) {
	writeEnvelope(w, http.StatusCreated, Envelope{Status: statusSuccess, Data: data})
}

// Deleted escribe 200 con el ack de borrado.
func Deleted(w http.ResponseWriter, id string) {
	writeEnvelope(w, http.StatusOK, Envelope{Status: statusSuccess, Data: DeleteAck{ID: id}})
}

// Error mapea el Kind del error a un status HTTP y escribe el envelope de error.
// Un error sin Kind se trata como falla de store (500) con mensaje genérico.
func Error(w http.ResponseWriter, err error) {
	kind, ok := apierr.KindOf(err)
	if !ok {
		kind = apierr.KindStore
	}

	writeEnvelope(w, statusFor(kind), Envelope{
		Status: statusError,
		Error: &ErrorBody{
			Kind:    string(kind),
			Message: apierr.MessageOf(err),
		},
	})
}

func statusFor(kind apierr.Kind) int {
	switch kind {
	case apierr.KindValidation, apierr.KindReference:
		return http.StatusBadRequest
	case apierr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeEnvelope(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

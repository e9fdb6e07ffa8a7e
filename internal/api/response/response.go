package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody is the wire shape of every failed request. Code is a stable
// machine-readable kind; Error is the human-readable message the calendar
// client displays.
type ErrorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// MessageBody acknowledges a mutation that returns no entity.
type MessageBody struct {
	Message string `json:"message"`
}

// CreatedBody acknowledges a creation and carries the generated id.
type CreatedBody struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// Error codes forming the closed error taxonomy. Handlers map domain errors
// onto these; nothing else crosses the HTTP boundary.
const (
	CodeInvalidJSON     = "INVALID_JSON"
	CodeInvalidID       = "INVALID_ID"
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInternalError   = "INTERNAL_ERROR"
)

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Message writes a {"message": ...} acknowledgement.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, MessageBody{Message: msg})
}

// Created writes a 201 {"id": ..., "message": ...} acknowledgement.
func Created(w http.ResponseWriter, id int64, msg string) {
	JSON(w, http.StatusCreated, CreatedBody{ID: id, Message: msg})
}

// Err writes an error JSON response.
func Err(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, ErrorBody{Error: message, Code: code})
}

// ErrWithDetails writes an error JSON response with additional details,
// typically per-field validation messages.
func ErrWithDetails(w http.ResponseWriter, status int, code, message string, details any) {
	JSON(w, status, ErrorBody{Error: message, Code: code, Details: details})
}

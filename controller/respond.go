package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"twitter-clone/service"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// writeError maps a service error to an HTTP status. Unexpected faults are
// logged and reported as a generic 500 without internals.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrSelfFollow):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrAuth):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	default:
		log.Printf("internal error: %v", err)
		message = "Internal server error"
	}

	writeJSON(w, status, map[string]string{"error": message})
}

// pathID parses an ObjectID path variable; a malformed id is a 400.
func pathID(value string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NilObjectID, &badIDError{}
	}
	return id, nil
}

type badIDError struct{}

func (e *badIDError) Error() string { return "invalid id" }

func (e *badIDError) Unwrap() error { return service.ErrValidation }

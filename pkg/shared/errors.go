package shared

import (
	"errors"
	"net/http"

	"church-finder-service/pkg/shared/schedule"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTPStatusFromError map usecase errors to rest status codes, input validation
// becomes bad request and a missing document becomes not found
func HTTPStatusFromError(err error) int {
	switch {
	case schedule.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, mongo.ErrNoDocuments):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

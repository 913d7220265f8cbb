package httpadapter

import (
	"net/http"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrAnalysisNotFound):
		return http.StatusNotFound
	case domain.IsKind(err, domain.ErrEmptyInput),
		domain.IsKind(err, domain.ErrInsufficientText):
		return http.StatusUnprocessableEntity
	case domain.IsKind(err, domain.ErrOCRFailure),
		domain.IsKind(err, domain.ErrTemporary):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError sends the technical error plus a Hindi message the frontend can
// show to the user as-is.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{
		"error":   err.Error(),
		"message": domain.UserMessage(err),
	})
}

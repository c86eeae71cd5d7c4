package http

import (
	"errors"
	"net/http"

	"github.com/utilkit-io/utilkit"
	"github.com/utilkit-io/utilkit/internal/utils"
	"github.com/utilkit-io/utilkit/models"
)

var errorStatusMap = map[error]int{
	utilkit.ErrInvalidArgument:       http.StatusBadRequest,
	utilkit.ErrMalformedPayload:      http.StatusBadRequest,
	utilkit.ErrInvalidDate:           http.StatusBadRequest,
	utilkit.ErrDateFormattingFailed:  http.StatusBadRequest,
	utilkit.ErrInvalidPrice:          http.StatusBadRequest,
	utilkit.ErrNegativePrice:         http.StatusBadRequest,
	utilkit.ErrPriceFormattingFailed: http.StatusBadRequest,

	utilkit.ErrDecryptionFailed: http.StatusUnprocessableEntity,

	utilkit.ErrEnvironmentUnsupported: http.StatusServiceUnavailable,

	utilkit.ErrKeyGenerationFailed: http.StatusInternalServerError,
	utilkit.ErrEncryptionFailed:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as the API's JSON error body with the mapped
// status code.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
}

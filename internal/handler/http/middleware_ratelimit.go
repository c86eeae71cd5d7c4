package http

import (
	"net/http"

	"github.com/utilkit-io/utilkit/internal/errmsg"
	"github.com/utilkit-io/utilkit/internal/logger"
	"github.com/utilkit-io/utilkit/internal/utils"
	"github.com/utilkit-io/utilkit/models"
)

func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.Allow() {
			log := logger.FromRequest(r)
			log.Warn().Str("uri", r.RequestURI).Msg(errmsg.MsgTooManyRequests)

			w.Header().Set("Retry-After", "1")
			utils.WriteJSON(w, models.ErrorResponse{Error: errmsg.MsgTooManyRequests}, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

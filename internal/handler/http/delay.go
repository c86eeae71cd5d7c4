package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/utilkit-io/utilkit"
	"github.com/utilkit-io/utilkit/delay"
	"github.com/utilkit-io/utilkit/internal/errmsg"
	"github.com/utilkit-io/utilkit/internal/logger"
	"github.com/utilkit-io/utilkit/internal/utils"
	"github.com/utilkit-io/utilkit/models"
)

func (h *Handler) delay(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DelayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.delay").Msg("Invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: invalid JSON body", utilkit.ErrInvalidArgument))
		return
	}

	if err := req.Validate(); err != nil {
		log.Err(err).Str("func", "*Handler.delay").Msg(errmsg.MsgInvalidDataProvided)
		writeError(w, err)
		return
	}

	d, err := delay.FromMillis(*req.Milliseconds)
	if err != nil {
		log.Err(err).Str("func", "*Handler.delay").Msg("error converting delay")
		writeError(w, err)
		return
	}

	// the cap keeps the sleep inside the server's write timeout
	if d > h.cfg.Server.MaxDelay {
		log.Warn().Float64("milliseconds", *req.Milliseconds).Msg(errmsg.MsgDelayTooLong)
		writeError(w, fmt.Errorf("%w: %s", utilkit.ErrInvalidArgument, errmsg.MsgDelayTooLong))
		return
	}

	start := time.Now()
	if err := delay.Sleep(d); err != nil {
		log.Err(err).Str("func", "*Handler.delay").Msg("error during delay")
		writeError(w, err)
		return
	}
	elapsed := time.Since(start)

	response := models.DelayResponse{
		Milliseconds: *req.Milliseconds,
		Elapsed:      elapsed.String(),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

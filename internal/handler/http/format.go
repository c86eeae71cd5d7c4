package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/utilkit-io/utilkit"
	"github.com/utilkit-io/utilkit/datefmt"
	"github.com/utilkit-io/utilkit/internal/errmsg"
	"github.com/utilkit-io/utilkit/internal/logger"
	"github.com/utilkit-io/utilkit/internal/utils"
	"github.com/utilkit-io/utilkit/models"
	"github.com/utilkit-io/utilkit/pricefmt"
)

func (h *Handler) formatDate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.formatDate").Msg("Invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: invalid JSON body", utilkit.ErrInvalidArgument))
		return
	}

	if err := req.Validate(); err != nil {
		log.Err(err).Str("func", "*Handler.formatDate").Msg(errmsg.MsgInvalidDataProvided)
		writeError(w, err)
		return
	}

	result, err := datefmt.Format(req.Date, req.Pattern)
	if err != nil {
		log.Err(err).Str("func", "*Handler.formatDate").Msg("error formatting date")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.TextResponse{Result: result}, http.StatusOK)
}

func (h *Handler) formatPrice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.PriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.formatPrice").Msg("Invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: invalid JSON body", utilkit.ErrInvalidArgument))
		return
	}

	if err := req.Validate(); err != nil {
		log.Err(err).Str("func", "*Handler.formatPrice").Msg(errmsg.MsgInvalidDataProvided)
		writeError(w, err)
		return
	}

	opts := pricefmt.Options{
		Currency: req.Currency,
		Notation: pricefmt.Notation(req.Notation),
	}

	result, err := pricefmt.Format(req.Price, opts)
	if err != nil {
		log.Err(err).Str("func", "*Handler.formatPrice").Msg("error formatting price")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.TextResponse{Result: result}, http.StatusOK)
}

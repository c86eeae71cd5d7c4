package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/utilkit-io/utilkit"
	"github.com/utilkit-io/utilkit/internal/errmsg"
	"github.com/utilkit-io/utilkit/internal/logger"
	"github.com/utilkit-io/utilkit/internal/utils"
	"github.com/utilkit-io/utilkit/models"
	"github.com/utilkit-io/utilkit/textutil"
)

func (h *Handler) slugify(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SlugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.slugify").Msg("Invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: invalid JSON body", utilkit.ErrInvalidArgument))
		return
	}

	if err := req.Validate(); err != nil {
		log.Err(err).Str("func", "*Handler.slugify").Msg(errmsg.MsgInvalidDataProvided)
		writeError(w, err)
		return
	}

	replacement := textutil.DefaultReplacement
	if req.Replacement != nil {
		replacement = *req.Replacement
	}

	slug, err := textutil.SlugifyWith(req.Title, replacement)
	if err != nil {
		log.Err(err).Str("func", "*Handler.slugify").Msg("error building slug")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.TextResponse{Result: slug}, http.StatusOK)
}

func (h *Handler) titleCase(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.TitleCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.titleCase").Msg("Invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: invalid JSON body", utilkit.ErrInvalidArgument))
		return
	}

	if err := req.Validate(); err != nil {
		log.Err(err).Str("func", "*Handler.titleCase").Msg(errmsg.MsgInvalidDataProvided)
		writeError(w, err)
		return
	}

	result, err := textutil.ToTitleCase(req.Text)
	if err != nil {
		log.Err(err).Str("func", "*Handler.titleCase").Msg("error title-casing text")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.TextResponse{Result: result}, http.StatusOK)
}

func (h *Handler) slugToTitle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SlugTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.slugToTitle").Msg("Invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: invalid JSON body", utilkit.ErrInvalidArgument))
		return
	}

	if err := req.Validate(); err != nil {
		log.Err(err).Str("func", "*Handler.slugToTitle").Msg(errmsg.MsgInvalidDataProvided)
		writeError(w, err)
		return
	}

	result, err := textutil.SlugToTitleCase(req.Slug)
	if err != nil {
		log.Err(err).Str("func", "*Handler.slugToTitle").Msg("error rebuilding title from slug")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.TextResponse{Result: result}, http.StatusOK)
}

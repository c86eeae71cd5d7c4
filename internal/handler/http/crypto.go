package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/utilkit-io/utilkit"
	"github.com/utilkit-io/utilkit/crypt"
	"github.com/utilkit-io/utilkit/internal/errmsg"
	"github.com/utilkit-io/utilkit/internal/logger"
	"github.com/utilkit-io/utilkit/internal/utils"
	"github.com/utilkit-io/utilkit/models"
)

func (h *Handler) generateKey(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// an empty body requests a random key, so EOF is not a decode failure
	var req models.KeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Str("func", "*Handler.generateKey").Msg("Invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: invalid JSON body", utilkit.ErrInvalidArgument))
		return
	}

	if err := req.Validate(); err != nil {
		log.Err(err).Str("func", "*Handler.generateKey").Msg(errmsg.MsgInvalidDataProvided)
		writeError(w, err)
		return
	}

	if req.Passphrase == "" {
		key, err := h.cipher.GenerateKey()
		if err != nil {
			log.Err(err).Str("func", "*Handler.generateKey").Msg("error generating key")
			writeError(w, err)
			return
		}

		utils.WriteJSON(w, models.KeyResponse{Key: key.Base64()}, http.StatusOK)
		return
	}

	// derive the key from the passphrase, minting a fresh salt when the
	// caller did not supply one
	var salt []byte
	if req.Salt != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.Salt)
		if err != nil {
			log.Err(err).Str("func", "*Handler.generateKey").Msg("error decoding salt")
			writeError(w, fmt.Errorf("%w: decode salt: %v", utilkit.ErrInvalidArgument, err))
			return
		}
		salt = decoded
	} else {
		generated, err := h.cipher.GenerateSalt()
		if err != nil {
			log.Err(err).Str("func", "*Handler.generateKey").Msg("error generating salt")
			writeError(w, err)
			return
		}
		salt = generated
	}

	key, err := crypt.KeyFromPassphrase(req.Passphrase, salt)
	if err != nil {
		log.Err(err).Str("func", "*Handler.generateKey").Msg("error deriving key from passphrase")
		writeError(w, err)
		return
	}

	response := models.KeyResponse{
		Key:  key.Base64(),
		Salt: base64.StdEncoding.EncodeToString(salt),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EncryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.encrypt").Msg("Invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: invalid JSON body", utilkit.ErrInvalidArgument))
		return
	}

	if err := req.Validate(); err != nil {
		log.Err(err).Str("func", "*Handler.encrypt").Msg(errmsg.MsgInvalidDataProvided)
		writeError(w, err)
		return
	}

	key, err := crypt.KeyFromBase64(req.Key)
	if err != nil {
		log.Err(err).Str("func", "*Handler.encrypt").Msg("error decoding key")
		writeError(w, err)
		return
	}

	payload, err := h.cipher.EncryptText(req.Text, key)
	if err != nil {
		log.Err(err).Str("func", "*Handler.encrypt").Msg("error encrypting text")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.EnvelopeResponse{Payload: json.RawMessage(payload)}, http.StatusOK)
}

func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DecryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.decrypt").Msg("Invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: invalid JSON body", utilkit.ErrInvalidArgument))
		return
	}

	if err := req.Validate(); err != nil {
		log.Err(err).Str("func", "*Handler.decrypt").Msg(errmsg.MsgInvalidDataProvided)
		writeError(w, err)
		return
	}

	key, err := crypt.KeyFromBase64(req.Key)
	if err != nil {
		log.Err(err).Str("func", "*Handler.decrypt").Msg("error decoding key")
		writeError(w, err)
		return
	}

	text, err := h.cipher.DecryptText(string(req.Payload), key)
	if err != nil {
		log.Err(err).Str("func", "*Handler.decrypt").Msg("error decrypting payload")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.TextResponse{Result: text}, http.StatusOK)
}

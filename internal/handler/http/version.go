package http

import (
	"net/http"

	"github.com/utilkit-io/utilkit/internal/utils"
	"github.com/utilkit-io/utilkit/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	// a configured version wins over the one linked into the binary
	version := h.cfg.App.Version
	if version == "" {
		version = h.buildInfo.BuildVersion()
	}

	response := models.VersionResponse{
		Version:     version,
		BuildDate:   h.buildInfo.BuildDate(),
		BuildCommit: h.buildInfo.BuildCommit(),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}

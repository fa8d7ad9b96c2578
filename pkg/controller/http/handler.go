package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/wildcards-gg/wcadmin/pkg/domain/interfaces"
	"github.com/wildcards-gg/wcadmin/pkg/domain/model"
	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
)

// Handler maps bridge operations onto JSON endpoints
type Handler struct {
	bridge interfaces.Bridge
}

// NewHandler creates a Handler
func NewHandler(bridge interfaces.Bridge) *Handler {
	return &Handler{bridge: bridge}
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(err, "invalid request body")
	}
	return nil
}

// HandleAuth handles POST /api/auth
func (h *Handler) HandleAuth(w http.ResponseWriter, r *http.Request) {
	var req model.AuthRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	ok, err := h.bridge.Authenticate(r.Context(), req.Token)
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, model.AuthResponse{OK: ok})
}

// HandleListGuilds handles GET /api/guilds
func (h *Handler) HandleListGuilds(w http.ResponseWriter, r *http.Request) {
	guilds, err := h.bridge.ListGuilds(r.Context())
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, guilds)
}

// HandleListChannels handles GET /api/channels?guild_id=
func (h *Handler) HandleListChannels(w http.ResponseWriter, r *http.Request) {
	guildID := types.GuildID(r.URL.Query().Get("guild_id"))

	channels, err := h.bridge.ListChannels(r.Context(), guildID)
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, channels)
}

// HandleListMembers handles GET /api/guilds/{guildID}/members
func (h *Handler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	guildID := types.GuildID(chi.URLParam(r, "guildID"))

	members, err := h.bridge.ListMembers(r.Context(), guildID)
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, members)
}

// HandlePickImage handles POST /api/image. It blocks until the dialog closes.
func (h *Handler) HandlePickImage(w http.ResponseWriter, r *http.Request) {
	path, err := h.bridge.PickImageFile(r.Context())
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, model.ImageResponse{Path: path})
}

// HandleDispatchMessage handles POST /api/messages
func (h *Handler) HandleDispatchMessage(w http.ResponseWriter, r *http.Request) {
	var req model.MessageRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	result, err := h.bridge.DispatchMessage(r.Context(), req)
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, result)
}

// HandleDispatchProspect handles POST /api/prospects
func (h *Handler) HandleDispatchProspect(w http.ResponseWriter, r *http.Request) {
	var req model.ThreadRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	result, err := h.bridge.DispatchProspectThread(r.Context(), req)
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, result)
}

package handler

import (
	"io"
	"net/http"
	"path"

	"github.com/gorilla/mux"

	"github.com/hooplog/hooplog/internal/api/middleware"
	"github.com/hooplog/hooplog/internal/api/response"
	"github.com/hooplog/hooplog/internal/services/avatar"
)

// Uploads beyond this size are rejected before sniffing
const maxAvatarBytes = 5 << 20

// AvatarHandler handles avatar endpoints
type AvatarHandler struct {
	avatarStore *avatar.Store
}

// NewAvatarHandler creates a new avatar handler
func NewAvatarHandler(avatarStore *avatar.Store) *AvatarHandler {
	return &AvatarHandler{
		avatarStore: avatarStore,
	}
}

// Get handles GET /api/v1/players/{name}/avatar
func (h *AvatarHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	file, err := h.avatarStore.Get(name)
	if err != nil {
		WriteError(w, err)
		return
	}

	http.ServeFile(w, r, file)
}

// Put handles PUT /api/v1/players/me/avatar
// The body is the raw image; the extension comes from the Content-Type.
func (h *AvatarHandler) Put(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	ext := extFromContentType(r.Header.Get("Content-Type"))
	if ext == "" {
		WriteError(w, NewInvalidRequestError("Content-Type must be image/png or image/jpeg"))
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxAvatarBytes+1))
	if err != nil {
		WriteError(w, NewInvalidRequestError("could not read request body"))
		return
	}
	if len(data) > maxAvatarBytes {
		WriteError(w, NewInvalidRequestError("avatar too large"))
		return
	}

	if err := h.avatarStore.Put(player.Name, data, ext); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Delete handles DELETE /api/v1/players/me/avatar
func (h *AvatarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	if err := h.avatarStore.Delete(player.Name); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

func extFromContentType(contentType string) string {
	switch path.Base(contentType) {
	case "png":
		return "png"
	case "jpeg", "jpg":
		return "jpg"
	default:
		return ""
	}
}

package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hooplog/hooplog/internal/services/avatar"
)

// AvatarHandler serves avatar images to the web pages
type AvatarHandler struct {
	avatarStore *avatar.Store
}

// NewAvatarHandler creates a new AvatarHandler
func NewAvatarHandler(avatarStore *avatar.Store) *AvatarHandler {
	return &AvatarHandler{
		avatarStore: avatarStore,
	}
}

// Serve handles GET /avatars/{name}
// Players without an avatar get the bundled placeholder.
func (h *AvatarHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	file, err := h.avatarStore.Get(name)
	if err != nil {
		http.Redirect(w, r, "/static/default-avatar.svg", http.StatusFound)
		return
	}

	http.ServeFile(w, r, file)
}

package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hooplog/hooplog/internal/model"
	"github.com/hooplog/hooplog/internal/services/avatar"
	"github.com/hooplog/hooplog/internal/services/roster"
	"github.com/hooplog/hooplog/internal/web/middleware"
	"github.com/hooplog/hooplog/internal/web/templates"
)

const maxAvatarUpload = 5 << 20

// ProfileHandler handles the settings page, avatar uploads and profile edits
type ProfileHandler struct {
	rosterService *roster.Service
	avatarStore   *avatar.Store
	templates     *templates.Templates
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(rosterService *roster.Service, avatarStore *avatar.Store, t *templates.Templates) *ProfileHandler {
	return &ProfileHandler{
		rosterService: rosterService,
		avatarStore:   avatarStore,
		templates:     t,
	}
}

// ProfileData is the view model for the settings page
type ProfileData struct {
	templates.PageData
	Positions []model.Position
	HasAvatar bool
	Error     string
}

// Page handles GET /profile
func (h *ProfileHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "")
}

// Update handles POST /profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	if err := r.ParseForm(); err != nil {
		h.renderPage(w, r, "Invalid form data")
		return
	}

	height, err1 := strconv.Atoi(r.FormValue("height"))
	weight, err2 := strconv.Atoi(r.FormValue("weight"))
	if err1 != nil || err2 != nil {
		h.renderPage(w, r, "Height and weight must be whole numbers")
		return
	}

	_, err := h.rosterService.UpdateProfile(r.Context(), player.Name, height, weight, model.Position(r.FormValue("position")))
	if err != nil {
		h.renderPage(w, r, profileErrorMessage(err))
		return
	}

	middleware.SetFlash(w, "success", "Profile saved")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// AvatarUpload handles POST /profile/avatar
func (h *ProfileHandler) AvatarUpload(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	if err := r.ParseMultipartForm(maxAvatarUpload); err != nil {
		h.renderPage(w, r, "Upload too large or malformed")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		h.renderPage(w, r, "No file selected")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarUpload))
	if err != nil {
		h.renderPage(w, r, "Could not read the upload")
		return
	}

	ext := strings.TrimPrefix(filepath.Ext(header.Filename), ".")
	if err := h.avatarStore.Put(player.Name, data, ext); err != nil {
		if errors.Is(err, model.ErrUnsupportedAvatar) {
			h.renderPage(w, r, "Avatar must be a png or jpeg image")
			return
		}
		h.renderPage(w, r, "Could not store the avatar")
		return
	}

	middleware.SetFlash(w, "success", "Avatar updated")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// AvatarDelete handles POST /profile/avatar/delete
func (h *ProfileHandler) AvatarDelete(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	if err := h.avatarStore.Delete(player.Name); err != nil {
		h.renderPage(w, r, "Could not remove the avatar")
		return
	}

	middleware.SetFlash(w, "info", "Avatar removed")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (h *ProfileHandler) renderPage(w http.ResponseWriter, r *http.Request, errMsg string) {
	player := middleware.GetPlayer(r.Context())

	_, avatarErr := h.avatarStore.Get(player.Name)

	render(w, h.templates, "profile", ProfileData{
		PageData: templates.PageData{
			Title:  "Settings",
			Player: player,
			Flash:  middleware.GetFlash(r.Context()),
		},
		Positions: model.Positions,
		HasAvatar: avatarErr == nil,
		Error:     errMsg,
	})
}

func profileErrorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrHeightOutOfRange):
		return "Height must be between 140 and 230 cm"
	case errors.Is(err, model.ErrWeightOutOfRange):
		return "Weight must be between 40 and 150 kg"
	case errors.Is(err, model.ErrInvalidPosition):
		return "Position must be PG, SG, SF, PF or C"
	default:
		return "Could not save the profile"
	}
}

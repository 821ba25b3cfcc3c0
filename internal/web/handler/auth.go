package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/hooplog/hooplog/internal/services/auth"
	"github.com/hooplog/hooplog/internal/web/middleware"
	"github.com/hooplog/hooplog/internal/web/templates"
)

// AuthHandler handles the login and registration pages and actions
type AuthHandler struct {
	authService *auth.Service
	templates   *templates.Templates
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service, t *templates.Templates) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		templates:   t,
	}
}

// LoginData is the view model for the login page
type LoginData struct {
	templates.PageData
	Name  string
	Error string
}

// RegisterData is the view model for the registration page
type RegisterData struct {
	templates.PageData
	Name  string
	Error string
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetPlayer(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	render(w, h.templates, "login", LoginData{
		PageData: templates.PageData{
			Title: "Login",
			Flash: middleware.GetFlash(r.Context()),
		},
	})
}

// RegisterPage renders the registration page
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetPlayer(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	render(w, h.templates, "register", RegisterData{
		PageData: templates.PageData{
			Title: "Register",
			Flash: middleware.GetFlash(r.Context()),
		},
	})
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, "", "Invalid form data")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	password := r.FormValue("password")

	if name == "" || password == "" {
		h.renderLoginError(w, name, "Name and password are required")
		return
	}

	session, err := h.authService.Login(r.Context(), name, password)
	if err != nil {
		h.renderLoginError(w, name, "Invalid name or password")
		return
	}

	h.setSessionCookie(w, session.Token)
	middleware.SetFlash(w, "success", "Welcome back, "+name+"!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Register handles registration form submission
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegisterError(w, "", "Invalid form data")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	password := r.FormValue("password")

	session, err := h.authService.Register(r.Context(), name, password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmptyCredentials):
			h.renderRegisterError(w, name, "Name and password are required")
		case errors.Is(err, auth.ErrNameTaken):
			h.renderRegisterError(w, name, "That name is already registered")
		default:
			h.renderRegisterError(w, name, "Registration failed")
		}
		return
	}

	h.setSessionCookie(w, session.Token)
	middleware.SetFlash(w, "success", "Welcome to the league, "+name+"!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout invalidates the session and clears its cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("session"); err == nil {
		h.authService.InvalidateSession(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.SetFlash(w, "info", "You have been logged out")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, name, message string) {
	render(w, h.templates, "login", LoginData{
		PageData: templates.PageData{Title: "Login"},
		Name:     name,
		Error:    message,
	})
}

func (h *AuthHandler) renderRegisterError(w http.ResponseWriter, name, message string) {
	render(w, h.templates, "register", RegisterData{
		PageData: templates.PageData{Title: "Register"},
		Name:     name,
		Error:    message,
	})
}

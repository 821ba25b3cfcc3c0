package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hooplog/hooplog/internal/dependencies/clock"
	"github.com/hooplog/hooplog/internal/metrics"
	"github.com/hooplog/hooplog/internal/model"
	"github.com/hooplog/hooplog/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrNameTaken          = errors.New("name already registered")
	ErrEmptyCredentials   = errors.New("name and password are required")
)

// Session represents an authenticated session. It is the explicit object that
// replaces the original dashboard's process-global logged_in flag: every
// operation that needs the current identity receives one.
type Session struct {
	Token      string
	PlayerName string
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// Service handles registration, login and session management
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
	metrics metrics.Metrics

	mu       sync.RWMutex
	sessions map[string]*Session

	sessionDuration time.Duration
	adminNames      map[string]bool
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
	// AdminNames are granted the admin role at registration time. This is the
	// bootstrap path for the explicit role attribute; capability checks read
	// Player.Role, never a name.
	AdminNames []string
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth Service
func New(storage storage.Storage, clock clock.Clock, cfg Config, logger *slog.Logger, m metrics.Metrics) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}

	admins := make(map[string]bool, len(cfg.AdminNames))
	for _, name := range cfg.AdminNames {
		admins[name] = true
	}

	return &Service{
		storage:         storage,
		clock:           clock,
		logger:          logger,
		metrics:         m,
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
		adminNames:      admins,
	}
}

// Register creates a player account with profile defaults and returns a
// session. The name must be unused; the match is case-sensitive and exact.
func (s *Service) Register(ctx context.Context, name, password string) (*Session, error) {
	if name == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	player := model.NewPlayer(name, string(hash))
	if s.adminNames[name] {
		player.Role = model.RoleAdmin
	}

	if err := s.storage.CreatePlayer(ctx, player); err != nil {
		if errors.Is(err, model.ErrPlayerExists) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	s.logger.Info("player registered", slog.String("name", name), slog.String("role", string(player.Role)))
	s.metrics.IncRegistrations()
	return s.createSession(name), nil
}

// Login authenticates a player and creates a session
func (s *Service) Login(ctx context.Context, name, password string) (*Session, error) {
	player, err := s.storage.GetPlayer(ctx, name)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			s.metrics.IncLoginFailures()
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(password)); err != nil {
		s.metrics.IncLoginFailures()
		return nil, ErrInvalidCredentials
	}

	s.metrics.IncLogins()
	return s.createSession(name), nil
}

// ValidateSession checks if a session token is valid and returns the session
func (s *Service) ValidateSession(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.metrics.SetActiveSessions(float64(len(s.sessions)))
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	return session, nil
}

// InvalidateSession removes a session. Logging out always succeeds, including
// for tokens that were never valid.
func (s *Service) InvalidateSession(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.metrics.SetActiveSessions(float64(len(s.sessions)))
	s.mu.Unlock()
}

// CurrentPlayer resolves a session token to the player's roster row. The row
// is fetched fresh so profile and role changes take effect immediately.
func (s *Service) CurrentPlayer(ctx context.Context, token string) (*model.Player, error) {
	session, err := s.ValidateSession(token)
	if err != nil {
		return nil, err
	}
	return s.storage.GetPlayer(ctx, session.PlayerName)
}

// createSession creates a new session for a player
func (s *Service) createSession(name string) *Session {
	token := generateToken()
	now := s.clock.Now()

	session := &Session{
		Token:      token,
		PlayerName: name,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.metrics.SetActiveSessions(float64(len(s.sessions)))
	s.mu.Unlock()

	return session
}

// generateToken generates a random opaque session token
func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}

// CleanExpiredSessions removes expired sessions (call periodically)
func (s *Service) CleanExpiredSessions() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
	s.metrics.SetActiveSessions(float64(len(s.sessions)))
}

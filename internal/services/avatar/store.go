package avatar

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/hooplog/hooplog/internal/model"
)

// Extensions accepted for avatar files, in probe priority order
var extensions = []string{"png", "jpg", "jpeg"}

// Store keeps one image file per player under a single directory, named
// "<player name>.<ext>". The filesystem is the source of truth; there is no
// database row for avatars.
type Store struct {
	dir    string
	logger *slog.Logger
}

// New creates the avatar directory if needed and returns a Store
func New(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create avatar dir: %w", err)
	}
	return &Store{
		dir:    dir,
		logger: logger,
	}, nil
}

// Get returns the path of name's avatar, probing the accepted extensions in
// priority order. ErrAvatarNotFound when the player has no image.
func (s *Store) Get(name string) (string, error) {
	for _, ext := range extensions {
		path := s.path(name, ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", model.ErrAvatarNotFound
}

// Put stores data as name's avatar. Any existing avatar for the name is
// removed first, whatever its extension, so a player has at most one file
// even when the extension changes between uploads.
func (s *Store) Put(name string, data []byte, ext string) error {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if !allowedExt(ext) {
		return model.ErrUnsupportedAvatar
	}

	// Sniff the payload; an extension alone proves nothing
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return model.ErrUnsupportedAvatar
	}

	if err := s.Delete(name); err != nil {
		return err
	}

	path := s.path(name, ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write avatar: %w", err)
	}

	s.logger.Info("avatar stored", slog.String("player", name), slog.String("ext", ext))
	return nil
}

// Delete removes name's avatar if one exists. Idempotent.
func (s *Store) Delete(name string) error {
	for _, ext := range extensions {
		path := s.path(name, ext)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func (s *Store) path(name, ext string) string {
	// The player name is the filename stem, as the legacy avatar folder used.
	// filepath.Base guards against names that try to escape the directory.
	return filepath.Join(s.dir, filepath.Base(name)+"."+ext)
}

func allowedExt(ext string) bool {
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

package avatar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hooplog/hooplog/internal/model"
	"github.com/hooplog/hooplog/internal/testutil"
)

// Smallest valid PNG header; enough for content sniffing
var pngData = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

// JPEG SOI marker plus JFIF segment
var jpegData = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

type StoreSuite struct {
	suite.Suite
	dir   string
	store *Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.dir = s.T().TempDir()

	store, err := New(s.dir, testutil.NopLogger())
	s.Require().NoError(err)
	s.store = store
}

func (s *StoreSuite) TestNewCreatesDirectory() {
	nested := filepath.Join(s.T().TempDir(), "a", "b")
	_, err := New(nested, testutil.NopLogger())
	s.Require().NoError(err)

	info, err := os.Stat(nested)
	s.Require().NoError(err)
	s.True(info.IsDir())
}

func (s *StoreSuite) TestPutAndGet() {
	s.Require().NoError(s.store.Put("alice", pngData, "png"))

	path, err := s.store.Get("alice")
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.dir, "alice.png"), path)

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal(pngData, data)
}

func (s *StoreSuite) TestGetNotFound() {
	_, err := s.store.Get("alice")
	s.ErrorIs(err, model.ErrAvatarNotFound)
}

func (s *StoreSuite) TestPutNormalisesExtension() {
	s.Require().NoError(s.store.Put("alice", pngData, ".PNG"))

	path, err := s.store.Get("alice")
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.dir, "alice.png"), path)
}

func (s *StoreSuite) TestPutRejectsUnknownExtension() {
	err := s.store.Put("alice", pngData, "gif")
	s.ErrorIs(err, model.ErrUnsupportedAvatar)
}

func (s *StoreSuite) TestPutRejectsNonImagePayload() {
	err := s.store.Put("alice", []byte("just some text, definitely not pixels"), "png")
	s.ErrorIs(err, model.ErrUnsupportedAvatar)
}

func (s *StoreSuite) TestPutReplacesOldExtension() {
	s.Require().NoError(s.store.Put("alice", jpegData, "jpg"))
	s.Require().NoError(s.store.Put("alice", pngData, "png"))

	path, err := s.store.Get("alice")
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.dir, "alice.png"), path)

	_, err = os.Stat(filepath.Join(s.dir, "alice.jpg"))
	s.True(os.IsNotExist(err))
}

func (s *StoreSuite) TestGetProbesPngFirst() {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "alice.jpg"), jpegData, 0o644))
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "alice.png"), pngData, 0o644))

	path, err := s.store.Get("alice")
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.dir, "alice.png"), path)
}

func (s *StoreSuite) TestDelete() {
	s.Require().NoError(s.store.Put("alice", pngData, "png"))

	s.Require().NoError(s.store.Delete("alice"))

	_, err := s.store.Get("alice")
	s.ErrorIs(err, model.ErrAvatarNotFound)
}

func (s *StoreSuite) TestDeleteIdempotent() {
	s.NoError(s.store.Delete("alice"))
}

func (s *StoreSuite) TestPathTraversalNameStaysInDir() {
	s.Require().NoError(s.store.Put("../../evil", pngData, "png"))

	path, err := s.store.Get("../../evil")
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.dir, "evil.png"), path)
}

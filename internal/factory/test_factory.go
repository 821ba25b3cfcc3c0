package factory

import (
	"os"
	"time"

	"github.com/hooplog/hooplog/internal/dependencies/mocks"
	"github.com/hooplog/hooplog/internal/metrics"
	"github.com/hooplog/hooplog/internal/services/auth"
	"github.com/hooplog/hooplog/internal/storage/memory"
	"github.com/hooplog/hooplog/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock   *mocks.MockClock
	MockMetrics *metrics.Mock

	avatarDir string
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Any names given are registered with the admin role.
func NewTestApp(adminNames ...string) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockMetrics := metrics.NewMock()

	avatarDir, err := os.MkdirTemp("", "avatars")
	if err != nil {
		panic(err)
	}

	authCfg := auth.DefaultConfig()
	authCfg.AdminNames = adminNames

	app, err := newWithDependencies(store, mockClock, mockMetrics, authCfg, avatarDir, testutil.NopLogger())
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:         app,
		MockClock:   mockClock,
		MockMetrics: mockMetrics,
		avatarDir:   avatarDir,
	}
}

// Cleanup removes the temp avatar directory
func (t *TestApp) Cleanup() {
	_ = os.RemoveAll(t.avatarDir)
}

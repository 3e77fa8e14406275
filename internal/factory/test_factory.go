package factory

import (
	"time"

	"github.com/mcoot/kohlenschlagen/internal/dependencies/mocks"
	"github.com/mcoot/kohlenschlagen/internal/metrics"
	"github.com/mcoot/kohlenschlagen/internal/storage/memory"
	"github.com/mcoot/kohlenschlagen/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MemoryStorage *memory.Storage
	MockClock     *mocks.MockClock
	MockIDs       *mocks.MockIDs
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockIDs := mocks.NewMockIDs()

	app := newWithDependencies(store, mockClock, mockIDs, metrics.New(), testutil.NopLogger())

	return &TestApp{
		App:           app,
		MemoryStorage: store,
		MockClock:     mockClock,
		MockIDs:       mockIDs,
	}
}

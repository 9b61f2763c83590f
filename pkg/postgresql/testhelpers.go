package postgresql

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// IntegrationEnv enables tests that start containers when set to 1.
const IntegrationEnv = "STOCKMARKET_INTEGRATION"

// SkipUnlessIntegration skips t in short mode or when IntegrationEnv is not enabled.
func SkipUnlessIntegration(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if os.Getenv(IntegrationEnv) != "1" {
		t.Skipf("Skipping integration test, set %s=1 to run it", IntegrationEnv)
	}
}

// TestHelper provides a PostgreSQL container scoped to a test.
type TestHelper struct {
	Container *TestContainer
	T         *testing.T
}

// NewTestHelper starts a container that is terminated when t completes.
func NewTestHelper(t *testing.T) *TestHelper {
	SkipUnlessIntegration(t)

	ctx := context.Background()
	container, err := NewTestContainer(ctx, DefaultTestContainerConfig())
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Close(context.Background()); err != nil {
			t.Logf("Failed to close test container: %v", err)
		}
	})

	return &TestHelper{
		Container: container,
		T:         t,
	}
}

// GetClient returns the client connected to the container.
func (h *TestHelper) GetClient() PostgreSQLClient {
	return h.Container.Client
}

// Truncate empties tables between tests.
func (h *TestHelper) Truncate(tables ...string) {
	require.NoError(h.T, h.Container.Truncate(context.Background(), tables...))
}

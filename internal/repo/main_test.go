package repo_test

import (
	"os"
	"testing"

	"github.com/pkordes/hostel-desk/testutil"
)

// TestMain migrates the test database once for the whole package. Without
// TEST_DATABASE_URL the integration tests skip themselves and only the
// sqlmock tests run.
func TestMain(m *testing.M) {
	if dsn := os.Getenv("TEST_DATABASE_URL"); dsn != "" {
		testutil.MustMigrate(dsn)
	}
	os.Exit(m.Run())
}

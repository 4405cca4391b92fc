// Package dbtest opens throwaway Postgres databases for adapter tests.
package dbtest

import (
	"context"
	"database/sql"
	"net/url"
	"os"
	"strings"
	"testing"

	"shipping-tools/internal/platform/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Tests needing Postgres are skipped unless this variable holds a URL.
const EnvURL = "SHIPTOOLS_TEST_DATABASE_URL"

// Postgres returns a connection whose search_path is a new schema, dropped
// when the test ends, so tests in different packages can share a server.
func Postgres(t testing.TB) *sql.DB {
	t.Helper()

	base := strings.TrimSpace(os.Getenv(EnvURL))
	if base == "" {
		t.Skipf("%s not set", EnvURL)
	}

	admin, err := db.Open(base)
	require.NoError(t, err)

	schema := "shiptools_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	_, err = admin.ExecContext(context.Background(), "CREATE SCHEMA "+schema)
	require.NoError(t, err)

	conn, err := db.Open(withSearchPath(base, schema))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		_, _ = admin.ExecContext(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
		_ = admin.Close()
	})
	return conn
}

// withSearchPath adds a search_path runtime parameter to a URL or
// keyword/value connection string.
func withSearchPath(dsn, schema string) string {
	if u, err := url.Parse(dsn); err == nil && (u.Scheme == "postgres" || u.Scheme == "postgresql") {
		q := u.Query()
		q.Set("search_path", schema)
		u.RawQuery = q.Encode()
		return u.String()
	}
	return dsn + " search_path=" + schema
}
